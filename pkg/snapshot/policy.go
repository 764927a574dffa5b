// Package snapshot implements the naming, discovery and rename/revert
// rules for "backup snapshots": hypervisor VM snapshots whose label
// marks them as belonging to this tool rather than to a human or
// another product, grounded on handlers/vm.py's backup_snapshot and
// get_backup_snapshots.
package snapshot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xenbackup/xenbackup/internal/common/core"
	"github.com/xenbackup/xenbackup/pkg/entities"
	"github.com/xenbackup/xenbackup/pkg/xapi"
	"github.com/xenbackup/xenbackup/pkg/xapi/iface"
)

// Kind is the backup-snapshot sub-kind encoded after the prefix.
type Kind string

const (
	KindBase     Kind = "base"
	KindFullTmp  Kind = "full_tmp"
	KindDeltaTmp Kind = "delta_tmp"
)

// Name builds the canonical label for a backup snapshot. origLabel is
// only appended for transient kinds, mirroring the source's
// "__backup__<kind>[__<origlabel>]" convention (the base snapshot
// carries no suffix since it is unique per VM and origLabel can
// change across cycles).
func Name(kind Kind, origLabel string) string {
	if kind == KindBase {
		return core.BackupSnapshotPrefix + string(kind)
	}
	return fmt.Sprintf("%s%s__%s", core.BackupSnapshotPrefix, kind, origLabel)
}

// Found is a backup snapshot discovered on a VM.
type Found struct {
	Ref  xapi.Ref
	Kind Kind
	VM   entities.VM
}

// kindOf extracts the sub-kind from a backup-snapshot label, or ""
// if label does not carry the backup prefix.
func kindOf(label string) Kind {
	if !strings.HasPrefix(label, core.BackupSnapshotPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(label, core.BackupSnapshotPrefix)
	if idx := strings.Index(rest, "__"); idx >= 0 {
		rest = rest[:idx]
	}
	return Kind(rest)
}

// Discover lists every backup snapshot of vmRef, across all sub-kinds.
func Discover(ctx context.Context, gw iface.Gateway, vmRef xapi.Ref) ([]Found, error) {
	vm, err := gw.GetVMRecord(ctx, vmRef)
	if err != nil {
		return nil, err
	}

	var found []Found
	for _, snapRef := range vm.Snapshots {
		snap, err := gw.GetVMRecord(ctx, snapRef)
		if err != nil {
			return nil, err
		}
		kind := kindOf(snap.NameLabel)
		if kind == "" {
			continue
		}
		found = append(found, Found{Ref: snapRef, Kind: kind, VM: snap})
	}
	return found, nil
}

// FindBase returns the VM's single base snapshot. Per spec Design
// Notes Open Question (a), base-candidate uniqueness is enforced
// here rather than silently taking an arbitrary match: more than one
// violates invariant 1 and is a programming or out-of-band-tampering
// error, not a condition to paper over.
func FindBase(ctx context.Context, gw iface.Gateway, vmRef xapi.Ref) (*Found, error) {
	all, err := Discover(ctx, gw, vmRef)
	if err != nil {
		return nil, err
	}
	var bases []Found
	for _, f := range all {
		if f.Kind == KindBase {
			bases = append(bases, f)
		}
	}
	switch len(bases) {
	case 0:
		return nil, nil
	case 1:
		return &bases[0], nil
	default:
		return nil, fmt.Errorf("snapshot: VM %s has %d base snapshots, expected at most one: %w", vmRef, len(bases), xapi.ErrConfig)
	}
}

// RenameForExport temporarily renames a backup snapshot to a
// human-readable label and clears its template flag so it streams
// cleanly through /export, returning the prior label to pass to
// Revert. Grounded on handlers/vm.py's rename-before-export step.
func RenameForExport(ctx context.Context, gw iface.Gateway, ref xapi.Ref, origVMLabel string) (priorLabel string, err error) {
	snap, err := gw.GetVMRecord(ctx, ref)
	if err != nil {
		return "", err
	}
	priorLabel = snap.NameLabel

	exportLabel := fmt.Sprintf("%s - backup %s", origVMLabel, time.Now().UTC().Format(time.RFC3339))
	if err := gw.SetVMNameLabel(ctx, ref, exportLabel); err != nil {
		return "", err
	}
	if err := gw.SetVMIsATemplate(ctx, ref, false); err != nil {
		return "", err
	}
	return priorLabel, nil
}

// Revert restores a snapshot's label after a retained (not disposed)
// export, undoing RenameForExport.
func Revert(ctx context.Context, gw iface.Gateway, ref xapi.Ref, priorLabel string) error {
	return gw.SetVMNameLabel(ctx, ref, priorLabel)
}

// Dispose destroys a transient snapshot (full_tmp or delta_tmp). It
// is never called on a base snapshot; no code path destroys the base,
// and pkg/deltabackup destroys only its own delta_tmp snapshot.
func Dispose(ctx context.Context, gw iface.Gateway, ref xapi.Ref) error {
	return gw.DestroyVM(ctx, ref)
}
