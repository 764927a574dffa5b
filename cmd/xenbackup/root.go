package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/xenbackup/xenbackup/internal/common/logger"
	"github.com/xenbackup/xenbackup/pkg/config"
	"github.com/xenbackup/xenbackup/pkg/orchestrator"
	"github.com/xenbackup/xenbackup/pkg/xapi"
	"github.com/xenbackup/xenbackup/pkg/xapi/iface"
)

// globalFlags holds the connection/config flags every subcommand
// shares, mirroring the original CLI's single argparse namespace.
type globalFlags struct {
	configPath string
	master     string
	username   string
	password   string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "xenbackup",
		Short:         "Xen pool VM backup, restore and transfer tool",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to config.yml")
	root.PersistentFlags().StringVar(&flags.master, "master", "", "pool master address (single-pool invocation)")
	root.PersistentFlags().StringVarP(&flags.username, "username", "U", "", "hypervisor username")
	root.PersistentFlags().StringVarP(&flags.password, "password", "P", "", "hypervisor password")

	root.AddCommand(
		newBackupCmd(flags, log),
		newRestoreCmd(flags, log),
		newTransferCmd(flags, log),
		newCleanCmd(flags, log),
		newMailCmd(flags, log),
	)
	return root
}

// loadConfig builds a Config from --config if given, else from the
// single-pool --master/-U/-P flags, matching backup.py's
// config-file-or-explicit-flags precedence.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	if f.configPath != "" {
		return config.Load(f.configPath)
	}
	return config.NewWithValues("default", f.master, f.username, f.password), nil
}

// realDialer is the production orchestrator.Dialer: dial the pool
// master and log in with its configured credentials.
func realDialer(log *logger.Logger) orchestrator.Dialer {
	return func(ctx context.Context, pool config.Pool) (iface.Gateway, error) {
		sess, err := xapi.Dial(pool.Master, log)
		if err != nil {
			return nil, err
		}
		if err := sess.Login(ctx, pool.Username, pool.Password); err != nil {
			return nil, err
		}
		return sess, nil
	}
}
