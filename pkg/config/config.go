// Package config loads the YAML document described in the external
// interfaces: pool credentials, backup directories, retention counts
// and mail settings, with CLI flags overriding config keys the same
// way the original tooling layers argparse over a YAML load.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xenbackup/xenbackup/internal/common/core"
)

// Pool is one hypervisor pool's connection and scope settings.
type Pool struct {
	Name         string   `yaml:"name"`
	Master       string   `yaml:"master"`
	Username     string   `yaml:"username"`
	Password     string   `yaml:"password"`
	ExcludedVMs  []string `yaml:"excluded_vms,omitempty"`
	TestVMUUID   string   `yaml:"test_vm_uuid,omitempty"`
	VMUUIDList   []string `yaml:"-"` // CLI-only: --uuid, never persisted
}

// Mail holds the SMTP delivery settings for the `mail` subcommand and
// the JSON report artefact's subject template and destination path.
type Mail struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	User    string `yaml:"user"`
	Password string `yaml:"password"`
	From    string `yaml:"from"`
	To      []string `yaml:"to"`
	Subject string `yaml:"subject"`
	Content string `yaml:"content"`
}

// Config is the full YAML document.
type Config struct {
	Pools []Pool `yaml:"pools"`

	DeltaBackupDir string `yaml:"delta_backup_dir"`
	FullBackupDir  string `yaml:"full_backup_dir"`

	DeltaBackupsToRetain int `yaml:"delta_backups_to_retain"`
	FullBackupsToRetain  int `yaml:"full_backups_to_retain"`

	BackupNewSnap bool `yaml:"backup_new_snap"`

	// MaxSubproc bounds how many pools the Run Orchestrator processes
	// in parallel. Spec Design Notes: "expose it as configuration"
	// instead of the fixed constant the original hard-codes.
	MaxSubproc int `yaml:"max_subproc"`

	Mail Mail `yaml:"mail"`
}

var errMissingPools = errors.New("config: no pools configured")

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: opening %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.MaxSubproc <= 0 {
		cfg.MaxSubproc = core.DefaultMaxSubproc
	}
	return &cfg, nil
}

// NewWithValues builds a Config directly from a single pool's
// credentials, the shape CLI-only invocations (--master/-U/-P with no
// --config pools section) take — mirroring backup.py's override of
// config["pools"] when --master/--username/--password are all set.
func NewWithValues(name, master, username, password string) *Config {
	return &Config{
		Pools:      []Pool{{Name: name, Master: master, Username: username, Password: password}},
		MaxSubproc: core.DefaultMaxSubproc,
	}
}

// Validate ensures the config carries at least one pool to act on;
// a Config error here aborts the process before any session opens,
// per the spec's error-handling severity ordering.
func (c *Config) Validate() error {
	if len(c.Pools) == 0 {
		return errMissingPools
	}
	for i, p := range c.Pools {
		if p.Master == "" || p.Username == "" {
			return fmt.Errorf("config: pool[%d] %q missing master or username", i, p.Name)
		}
	}
	return nil
}

// ApplyOverrides layers non-zero CLI flag values over the config,
// following the same "CLI flag wins if set" precedence as
// backup.py's `args.X if args.X is not None else config[...]` chain.
func (c *Config) ApplyOverrides(baseDir string, backupNewSnap *bool, backupsToRetain int, uuids []string) {
	if baseDir != "" {
		c.DeltaBackupDir = baseDir
		c.FullBackupDir = baseDir
	}
	if backupNewSnap != nil {
		c.BackupNewSnap = *backupNewSnap
	}
	if backupsToRetain > 0 {
		c.DeltaBackupsToRetain = backupsToRetain
		c.FullBackupsToRetain = backupsToRetain
	}
	if len(uuids) > 0 {
		for i := range c.Pools {
			c.Pools[i].VMUUIDList = uuids
		}
	}
}
