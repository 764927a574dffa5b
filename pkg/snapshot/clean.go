package snapshot

import (
	"context"
	"strings"

	"github.com/xenbackup/xenbackup/internal/common/core"
	"github.com/xenbackup/xenbackup/pkg/xapi"
	"github.com/xenbackup/xenbackup/pkg/xapi/iface"
)

// CleanPool destroys every backup snapshot (any sub-kind) on every VM
// of the pool gw is connected to, for the "full wipe" clean
// subcommand. Grounded on clean.py.
func CleanPool(ctx context.Context, gw iface.Gateway) ([]xapi.Ref, error) {
	vmRefs, err := gw.GetAllVMRefs(ctx)
	if err != nil {
		return nil, err
	}

	var destroyed []xapi.Ref
	for _, vmRef := range vmRefs {
		vm, err := gw.GetVMRecord(ctx, vmRef)
		if err != nil {
			return destroyed, err
		}
		if vm.IsASnapshot {
			continue
		}
		for _, snapRef := range vm.Snapshots {
			snap, err := gw.GetVMRecord(ctx, snapRef)
			if err != nil {
				return destroyed, err
			}
			if !strings.HasPrefix(snap.NameLabel, core.BackupSnapshotPrefix) {
				continue
			}
			if err := gw.DestroyVM(ctx, snapRef); err != nil {
				return destroyed, err
			}
			destroyed = append(destroyed, snapRef)
		}
	}
	return destroyed, nil
}
