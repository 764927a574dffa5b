package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xenbackup/xenbackup/internal/common/logger"
	"github.com/xenbackup/xenbackup/pkg/transfer"
	"github.com/xenbackup/xenbackup/pkg/xapi"
)

func newTransferCmd(flags *globalFlags, log *logger.Logger) *cobra.Command {
	var (
		srcMaster   string
		dstMaster   string
		uuids       []string
		restoreFlag bool
		shutdown    bool
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer VMs from one pool to another",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, err := xapi.Dial(srcMaster, log)
			if err != nil {
				return err
			}
			if err := src.Login(ctx, flags.username, flags.password); err != nil {
				return err
			}
			defer src.Logout(ctx)

			dst, err := xapi.Dial(dstMaster, log)
			if err != nil {
				return err
			}
			if err := dst.Login(ctx, flags.username, flags.password); err != nil {
				return err
			}
			defer dst.Logout(ctx)

			workDir, err := os.MkdirTemp("", "xenbackup-transfer-")
			if err != nil {
				return err
			}
			defer os.RemoveAll(workDir)

			eng := transfer.New(src, dst, workDir, log)

			var failed int
			for _, uuid := range uuids {
				vmRef, err := src.GetVMByUUID(ctx, uuid)
				if err != nil {
					log.WithError(err).WithField("uuid", uuid).Error("VM lookup failed")
					failed++
					continue
				}
				if err := eng.Run(ctx, vmRef, xapi.NullRef, shutdown, restoreFlag); err != nil {
					log.WithError(err).WithField("uuid", uuid).Error("transfer failed")
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("transfer: %d VM(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&srcMaster, "src-master", "", "source pool master address")
	cmd.Flags().StringVar(&dstMaster, "dst-master", "", "destination pool master address")
	cmd.Flags().StringArrayVar(&uuids, "uuid", nil, "VM uuids to transfer (repeatable)")
	cmd.Flags().BoolVar(&restoreFlag, "restore", false, "keep original MAC addresses on the destination")
	cmd.Flags().BoolVar(&shutdown, "shutdown", false, "shut the source VM down cleanly before export")
	cmd.MarkFlagRequired("src-master")
	cmd.MarkFlagRequired("dst-master")

	return cmd
}
