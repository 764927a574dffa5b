// Package transfer implements the src-pool-to-dst-pool VM transfer:
// export from source (snapshot-if-needed), full-restore onto
// destination, rename, power-state reconciliation. Grounded on
// transfer.py.
package transfer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xenbackup/xenbackup/internal/common/core"
	"github.com/xenbackup/xenbackup/internal/common/logger"
	"github.com/xenbackup/xenbackup/pkg/restore"
	"github.com/xenbackup/xenbackup/pkg/xapi"
	"github.com/xenbackup/xenbackup/pkg/xapi/iface"
)

type Engine struct {
	src, dst      iface.Gateway
	restoreEngine *restore.Engine
	log           *logger.Logger
	workDir       string
}

func New(src, dst iface.Gateway, workDir string, log *logger.Logger) *Engine {
	return &Engine{src: src, dst: dst, restoreEngine: restore.New(dst, log), log: log, workDir: workDir}
}

// Run transfers one VM from src to dst. shutdownFirst requests a
// clean shutdown before export when the VM supports it; restoreFlag
// is forwarded to the destination import (suppresses MAC
// regeneration). On any error after the source record is read, the
// source VM's original power state is restored. On success the
// source's power state is not touched again (a VM halted by
// shutdownFirst stays halted) and a source renamed for export gets
// its original label back.
func (e *Engine) Run(ctx context.Context, vmRef xapi.Ref, srRef xapi.Ref, shutdownFirst, restoreFlag bool) error {
	vm, err := e.src.GetVMRecord(ctx, vmRef)
	if err != nil {
		return err
	}
	origPowerState := vm.PowerState
	origLabel := vm.NameLabel

	if shutdownFirst && !strings.EqualFold(origPowerState, "Halted") {
		if err := e.src.VMCleanShutdown(ctx, vmRef); err != nil {
			e.log.WithError(err).Warn("clean shutdown failed before transfer")
		}
	}

	ops, err := e.src.GetVMAllowedOperations(ctx, vmRef)
	if err != nil {
		return e.restorePowerState(ctx, vmRef, origPowerState, err)
	}
	takeSnapshot := !contains(ops, "export")

	exportName := fmt.Sprintf("%s__%s__%s", vm.UUID, core.Timestamp(time.Now()), vm.NameLabel)

	exportRef := vmRef
	if takeSnapshot {
		exportRef, err = e.src.SnapshotVM(ctx, vmRef, exportName)
		if err != nil {
			return e.restorePowerState(ctx, vmRef, origPowerState, err)
		}
		if err := e.src.SetVMIsATemplate(ctx, exportRef, false); err != nil {
			return e.restorePowerState(ctx, vmRef, origPowerState, err)
		}
	} else {
		if err := e.src.SetVMNameLabel(ctx, vmRef, exportName); err != nil {
			return e.restorePowerState(ctx, vmRef, origPowerState, err)
		}
	}

	exportPath := filepath.Join(e.workDir, exportName+".xva")
	exportErr := e.exportAndCleanup(ctx, exportRef, exportPath, takeSnapshot, vmRef, origLabel)
	if exportErr != nil {
		return e.restorePowerState(ctx, vmRef, origPowerState, exportErr)
	}
	defer os.Remove(exportPath)

	if _, err := e.restoreEngine.RestoreFull(ctx, exportPath, srRef, restoreFlag); err != nil {
		return e.restorePowerState(ctx, vmRef, origPowerState, err)
	}

	dstRefs, err := e.dst.GetVMByLabel(ctx, exportName)
	if err != nil || len(dstRefs) == 0 {
		return e.restorePowerState(ctx, vmRef, origPowerState, fmt.Errorf("transfer: imported VM %q not found on destination", exportName))
	}
	dstRef := dstRefs[0]

	if err := e.dst.SetVMNameLabel(ctx, dstRef, origLabel); err != nil {
		return e.restorePowerState(ctx, vmRef, origPowerState, err)
	}
	if err := setPowerState(ctx, e.dst, dstRef, origPowerState); err != nil {
		return e.restorePowerState(ctx, vmRef, origPowerState, err)
	}

	return nil
}

// exportAndCleanup streams exportRef to exportPath, then either
// destroys the transient snapshot (takeSnapshot) or renames the
// source VM back to its original label.
func (e *Engine) exportAndCleanup(ctx context.Context, exportRef xapi.Ref, exportPath string, takeSnapshot bool, vmRef xapi.Ref, origLabel string) error {
	f, err := os.Create(exportPath)
	if err != nil {
		return fmt.Errorf("transfer: creating %s: %w", exportPath, err)
	}
	exportErr := e.src.ExportVM(ctx, exportRef, true, f)
	f.Close()

	var cleanupErr error
	if takeSnapshot {
		cleanupErr = e.src.DestroyVM(ctx, exportRef)
	} else {
		cleanupErr = e.src.SetVMNameLabel(ctx, vmRef, origLabel)
	}

	if exportErr != nil {
		os.Remove(exportPath)
		return exportErr
	}
	return cleanupErr
}

// restorePowerState re-applies origPowerState to the source VM on any
// failure path, per the spec's resolution of the power-state Open
// Question, then returns origErr so callers can propagate it.
func (e *Engine) restorePowerState(ctx context.Context, vmRef xapi.Ref, origPowerState string, origErr error) error {
	if err := setPowerState(ctx, e.src, vmRef, origPowerState); err != nil {
		e.log.WithError(err).Error("failed to restore source VM power state after failed transfer")
	}
	return origErr
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

// setPowerState drives ref toward the named power state using the
// minimal transition, best-effort (Xen power states: Halted, Running,
// Suspended, Paused).
func setPowerState(ctx context.Context, gw iface.Gateway, ref xapi.Ref, state string) error {
	switch strings.ToLower(state) {
	case "running":
		return gw.VMStart(ctx, ref, false, false)
	case "suspended":
		return gw.VMSuspend(ctx, ref)
	case "halted":
		return gw.VMCleanShutdown(ctx, ref)
	default:
		return nil
	}
}
