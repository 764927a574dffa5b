package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xenbackup/xenbackup/internal/common/logger"
	"github.com/xenbackup/xenbackup/pkg/orchestrator"
)

func newCleanCmd(flags *globalFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Destroy stray backup snapshots left behind on configured pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			results := orchestrator.Run(cmd.Context(), cfg, orchestrator.ModeClean, realDialer(log), log)

			var failed int
			for _, r := range results {
				if r.HasErrors() {
					log.WithField("pool", r.PoolName).Error("clean failed")
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("clean: %d pool(s) failed", failed)
			}
			return nil
		},
	}
	return cmd
}
