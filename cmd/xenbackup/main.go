// Command xenbackup dispatches to the backup, restore, transfer,
// clean and mail subcommands described in the external interfaces.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/xenbackup/xenbackup/internal/common/logger"
)

func main() {
	log, err := logger.New(false)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(log).ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
