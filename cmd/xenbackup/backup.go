package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xenbackup/xenbackup/internal/common/logger"
	"github.com/xenbackup/xenbackup/pkg/orchestrator"
	"github.com/xenbackup/xenbackup/pkg/report"
)

func newBackupCmd(flags *globalFlags, log *logger.Logger) *cobra.Command {
	var (
		backupType      string
		newSnapshot     bool
		uuids           []string
		backupsToRetain int
		baseDir         string
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Run a full or delta backup across configured pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			var newSnapshotOverride *bool
			if cmd.Flags().Changed("new-snapshot") {
				newSnapshotOverride = &newSnapshot
			}
			cfg.ApplyOverrides(baseDir, newSnapshotOverride, backupsToRetain, uuids)
			if err := cfg.Validate(); err != nil {
				return err
			}

			mode := orchestrator.ModeFullBackup
			if backupType == "delta" {
				mode = orchestrator.ModeDeltaBackup
			}

			results := orchestrator.Run(cmd.Context(), cfg, mode, realDialer(log), log)

			rpt, hasErrors := report.Build(fmt.Sprintf("%s backup report", titleCase(backupType)), results)
			if cfg.Mail.Content != "" {
				if err := report.Write(cfg.Mail.Content, rpt); err != nil {
					log.WithError(err).Error("failed to write report")
				}
			}
			if hasErrors {
				return fmt.Errorf("backup: one or more pools or VMs failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&backupType, "type", "delta", "backup type: full or delta")
	cmd.Flags().BoolVar(&newSnapshot, "new-snapshot", false, "force a fresh snapshot for full backups")
	cmd.Flags().StringArrayVar(&uuids, "uuid", nil, "restrict to these VM uuids (repeatable)")
	cmd.Flags().IntVar(&backupsToRetain, "backups-to-retain", 0, "override configured retention count")
	cmd.Flags().StringVar(&baseDir, "base-dir", "", "override configured backup directory")

	return cmd
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
