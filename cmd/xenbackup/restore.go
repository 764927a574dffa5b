package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xenbackup/xenbackup/internal/common/logger"
	"github.com/xenbackup/xenbackup/pkg/restore"
	"github.com/xenbackup/xenbackup/pkg/xapi"
)

func newRestoreCmd(flags *globalFlags, log *logger.Logger) *cobra.Command {
	var (
		file        string
		storageMap  map[string]string
		networkMap  map[string]string
		restoreFlag bool
	)

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore a full (.xva) or delta (.json definition) backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if len(cfg.Pools) == 0 {
				return fmt.Errorf("restore: no pool configured")
			}
			pool := cfg.Pools[0]

			sess, err := xapi.Dial(pool.Master, log)
			if err != nil {
				return err
			}
			if err := sess.Login(cmd.Context(), pool.Username, pool.Password); err != nil {
				return err
			}
			defer sess.Logout(cmd.Context())

			eng := restore.New(sess, log)

			if strings.HasSuffix(file, ".json") {
				_, err = eng.RestoreDelta(cmd.Context(), file, filepath.Dir(file), storageMap, networkMap, false, restoreFlag)
				return err
			}
			_, err = eng.RestoreFull(cmd.Context(), file, xapi.NullRef, restoreFlag)
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "backup artefact to restore (.xva or .json)")
	cmd.Flags().StringToStringVar(&storageMap, "storage-map", nil, "uuid-or-label=destination-sr mappings (repeatable)")
	cmd.Flags().StringToStringVar(&networkMap, "network-map", nil, "uuid-or-label=destination-network mappings (repeatable)")
	cmd.Flags().BoolVar(&restoreFlag, "restore", false, "same-pool restore: keep original MAC addresses")
	cmd.MarkFlagRequired("file")

	return cmd
}
