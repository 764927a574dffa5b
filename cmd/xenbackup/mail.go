package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xenbackup/xenbackup/internal/common/logger"
	"github.com/xenbackup/xenbackup/pkg/report"
)

func newMailCmd(flags *globalFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Mail a previously written backup report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Mail.Content == "" {
				return fmt.Errorf("mail: no report path configured")
			}

			rpt, err := report.Read(cfg.Mail.Content)
			if err != nil {
				return err
			}
			if cfg.Mail.Subject != "" {
				rpt.Subject = cfg.Mail.Subject
			}
			return report.Send(cfg.Mail, rpt)
		},
	}
	return cmd
}
