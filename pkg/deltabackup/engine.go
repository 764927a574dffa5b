// Package deltabackup implements the Delta Engine: base detection,
// per-disk full-or-delta export, definition writing and base
// promotion. Grounded on handlers/vm.py:backup_delta and
// handlers/vdi.py:backup.
package deltabackup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v3"

	"github.com/xenbackup/xenbackup/internal/common/core"
	"github.com/xenbackup/xenbackup/internal/common/logger"
	"github.com/xenbackup/xenbackup/pkg/definition"
	"github.com/xenbackup/xenbackup/pkg/entities"
	"github.com/xenbackup/xenbackup/pkg/retention"
	"github.com/xenbackup/xenbackup/pkg/snapshot"
	"github.com/xenbackup/xenbackup/pkg/xapi"
	"github.com/xenbackup/xenbackup/pkg/xapi/iface"
)

const (
	maxExportAttempts  = 3
	maxDestroyAttempts = 3
	destroyRetryPause  = 5 * time.Second
)

type Engine struct {
	gw  iface.Gateway
	log *logger.Logger
}

func New(gw iface.Gateway, log *logger.Logger) *Engine {
	return &Engine{gw: gw, log: log}
}

// Run performs one delta-backup cycle for vmRef and returns the
// relative path (under destDir) of the written definition file.
func (e *Engine) Run(ctx context.Context, vmRef xapi.Ref, destDir string, retain int) (string, error) {
	vm, err := e.gw.GetVMRecord(ctx, vmRef)
	if err != nil {
		return "", err
	}

	base, err := snapshot.FindBase(ctx, e.gw, vmRef)
	if err != nil {
		return "", err
	}
	isDelta := base != nil

	var snapRef xapi.Ref
	baseVDIs := map[xapi.Ref]xapi.Ref{} // original VDI ref -> base snapshot's VDI ref
	if isDelta {
		snapRef, err = e.gw.SnapshotVM(ctx, vmRef, snapshot.Name(snapshot.KindDeltaTmp, vm.NameLabel))
		if err != nil {
			return "", err
		}
		baseVDIs, err = e.baseVDIMap(ctx, base.Ref)
		if err != nil {
			return "", err
		}
	} else {
		snapRef, err = e.gw.SnapshotVM(ctx, vmRef, snapshot.Name(snapshot.KindBase, vm.NameLabel))
		if err != nil {
			return "", err
		}
	}

	vmBackDir := fmt.Sprintf("vm_%s", vm.UUID)
	vmDir := filepath.Join(destDir, vmBackDir)
	if err := os.MkdirAll(vmDir, 0o755); err != nil {
		return "", fmt.Errorf("deltabackup: creating %s: %w", vmDir, err)
	}

	snap, err := e.gw.GetVMRecord(ctx, snapRef)
	if err != nil {
		return "", err
	}

	def := definition.New()
	var writtenFiles []string
	retainVBDs := map[xapi.Ref]map[string]any{} // new (full) VDI ref -> VBD create-record, VM set to base.Ref

	runErr := e.backupDisks(ctx, snap, vmDir, vmBackDir, isDelta, baseVDIs, base, def, &writtenFiles, retainVBDs)

	if runErr == nil {
		if err := os.WriteFile(filepath.Join(vmDir, core.SaneName(vm.NameLabel)), []byte(vm.NameLabel), 0o644); err != nil {
			runErr = fmt.Errorf("deltabackup: writing label file: %w", err)
		}
	}

	if runErr == nil {
		def.VM = vmDefinitionRecord(vm, snap)
		if err := e.collectVBDsAndVIFs(ctx, snap, def); err != nil {
			runErr = err
		}
	}

	var defRelPath string
	if runErr == nil {
		defName := core.Timestamp(time.Now()) + ".json"
		defRelPath = filepath.Join(vmBackDir, defName)
		if err := definition.WriteFile(filepath.Join(destDir, defRelPath), def); err != nil {
			runErr = err
		}
	}

	if runErr != nil {
		for _, f := range writtenFiles {
			if rmErr := os.Remove(f); rmErr != nil && !os.IsNotExist(rmErr) {
				e.log.WithError(rmErr).Warn("failed to remove partial delta export")
			}
		}
	}

	// The base-promotion teardown always runs for a delta-type run
	// (error or not): the transient snapshot never survives a cycle.
	if isDelta {
		if cleanupErr := e.promoteBase(ctx, snapRef, base.Ref, retainVBDs); cleanupErr != nil {
			e.log.WithError(cleanupErr).Error("base promotion failed")
			if runErr == nil {
				runErr = cleanupErr
			}
		}
	}

	if runErr != nil {
		return "", runErr
	}

	if err := retention.PruneDeltaBackups(vmDir, retain); err != nil {
		return "", err
	}
	return defRelPath, nil
}

// baseVDIMap walks baseRef's disk VBDs and maps each VDI's
// snapshot_of (the original, live disk) to the base's own VDI ref.
func (e *Engine) baseVDIMap(ctx context.Context, baseRef xapi.Ref) (map[xapi.Ref]xapi.Ref, error) {
	base, err := e.gw.GetVMRecord(ctx, baseRef)
	if err != nil {
		return nil, err
	}
	m := map[xapi.Ref]xapi.Ref{}
	for _, vbdRef := range base.VBDs {
		vbd, err := e.gw.GetVBDRecord(ctx, vbdRef)
		if err != nil {
			return nil, err
		}
		if !vbd.IsDisk() {
			continue
		}
		vdi, err := e.gw.GetVDIRecord(ctx, vbd.VDI)
		if err != nil {
			return nil, err
		}
		m[vdi.SnapshotOf] = vbd.VDI
	}
	return m, nil
}

// backupDisks exports every disk VBD of snap, full or delta depending
// on baseVDIs, and fills def.VDIs.
func (e *Engine) backupDisks(
	ctx context.Context,
	snap entities.VM,
	vmDir, vmBackDir string,
	isDelta bool,
	baseVDIs map[xapi.Ref]xapi.Ref,
	base *snapshot.Found,
	def *definition.Definition,
	writtenFiles *[]string,
	retainVBDs map[xapi.Ref]map[string]any,
) error {
	for _, vbdRef := range snap.VBDs {
		vbd, err := e.gw.GetVBDRecord(ctx, vbdRef)
		if err != nil {
			return err
		}
		if !vbd.IsDisk() {
			continue
		}

		vdi, err := e.gw.GetVDIRecord(ctx, vbd.VDI)
		if err != nil {
			return err
		}

		vdiBackDir := "vdi_" + e.uuidOf(ctx, vdi.SnapshotOf)

		var baseFileName string
		if isDelta {
			if baseVDI, ok := baseVDIs[vdi.SnapshotOf]; ok {
				baseFileName, err = e.exportVDI(ctx, vmDir, vdiBackDir, baseVDI, xapi.NullRef, "full", false, writtenFiles)
				if err != nil {
					return err
				}
			} else {
				vbdRecord, err := e.vbdCreateRecord(ctx, vbdRef)
				if err != nil {
					return err
				}
				vbdRecord["VM"] = base.Ref.String()
				vbdRecord["VDI"] = vbd.VDI.String()
				retainVBDs[vbd.VDI] = vbdRecord
			}
		}

		baseVDI := xapi.NullRef
		exportType := "full"
		if baseFileName != "" {
			baseVDI = baseVDIs[vdi.SnapshotOf]
			exportType = "delta"
		}
		fileName, err := e.exportVDI(ctx, vmDir, vdiBackDir, vbd.VDI, baseVDI, exportType, true, writtenFiles)
		if err != nil {
			return err
		}

		srLabel, err := e.gw.GetSRLabel(ctx, vdi.SR)
		if err != nil {
			return err
		}

		rec := map[string]any{
			"uuid":       vdi.UUID,
			"name_label": vdi.NameLabel,
			"SR":         vdi.SR.String(),
			"SR_label":   srLabel,
			"type":       vdi.Type,
			"virtual_size": vdi.VirtualSize,
			"backup_file": fileName,
		}
		if baseFileName != "" {
			rec["backup_base_file"] = baseFileName
		}
		def.VDIs[vbd.VDI.String()] = rec
	}
	return nil
}

func (e *Engine) uuidOf(ctx context.Context, ref xapi.Ref) string {
	if ref.IsNull() {
		return "unknown"
	}
	vdi, err := e.gw.GetVDIRecord(ctx, ref)
	if err != nil {
		return "unknown"
	}
	return vdi.UUID
}

func (e *Engine) vbdCreateRecord(ctx context.Context, vbdRef xapi.Ref) (map[string]any, error) {
	vbd, err := e.gw.GetVBDRecord(ctx, vbdRef)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"type":     vbd.Type,
		"device":   vbd.Device,
		"bootable": vbd.Bootable,
		"mode":     vbd.Mode,
	}, nil
}

// exportVDI streams one VDI (full or delta) with retry, skipping the
// transfer entirely when overwrite is false and the target file
// already exists (the "re-export missing base" shortcut).
func (e *Engine) exportVDI(
	ctx context.Context,
	vmDir, vdiBackDir string,
	vdiRef, baseRef xapi.Ref,
	exportType string,
	overwrite bool,
	writtenFiles *[]string,
) (string, error) {
	vdi, err := e.gw.GetVDIRecord(ctx, vdiRef)
	if err != nil {
		return "", err
	}
	ts, err := core.ParseTimestamp(vdi.SnapshotTime)
	if err != nil {
		ts = time.Now()
	}
	fileName := filepath.Join(vdiBackDir, fmt.Sprintf("%s_%s.vhd", core.Timestamp(ts), exportType))
	fullPath := filepath.Join(vmDir, fileName)

	if !overwrite {
		if _, err := os.Stat(fullPath); err == nil {
			return fileName, nil
		}
	}

	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(0), uint64(maxExportAttempts-1))
	err = backoff.Retry(func() error {
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return backoff.Permanent(err)
		}
		f, err := os.Create(fullPath)
		if err != nil {
			return backoff.Permanent(err)
		}
		defer f.Close()

		err = e.gw.ExportRawVDI(ctx, vdiRef, baseRef, f)
		if err == nil {
			return nil
		}
		if removeErr := os.Remove(fullPath); removeErr != nil && !os.IsNotExist(removeErr) {
			e.log.WithError(removeErr).Warn("failed to remove partial VDI export")
		}
		if errors.Is(err, xapi.ErrNoSpace) {
			return backoff.Permanent(err)
		}
		return err
	}, b)
	if err != nil {
		return "", err
	}

	*writtenFiles = append(*writtenFiles, fullPath)
	return fileName, nil
}

// promoteBase destroys the transient snapshot, sparing the VDIs held
// in retainVBDs, then recreates VBDs attaching them to baseRef so the
// base keeps advertising every disk it has ever backed up. This is
// the literal base-swap behaviour: the base snapshot object itself is
// never replaced, only its VBD set grows.
func (e *Engine) promoteBase(ctx context.Context, snapRef, baseRef xapi.Ref, retainVBDs map[xapi.Ref]map[string]any) error {
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(destroyRetryPause), uint64(maxDestroyAttempts-1))
	destroyErr := backoff.Retry(func() error {
		return e.destroySnapshotRetaining(ctx, snapRef, retainVBDs)
	}, b)
	if destroyErr != nil {
		e.log.WithError(destroyErr).Error("failed to destroy transient delta snapshot")
	}

	var firstErr error
	for _, vbdRecord := range retainVBDs {
		if _, err := e.gw.CreateVBD(ctx, vbdRecord); err != nil {
			e.log.WithError(err).Error("failed to recreate retained VBD on base")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if destroyErr != nil {
		return destroyErr
	}
	return firstErr
}

// destroySnapshotRetaining destroys the VDI behind every disk VBD
// whose VDI is not in retainVBDs, then destroys the snapshot VM
// object. No VBD is detached individually; the VBDs of retained VDIs
// go away with the snapshot too (VBDs are cheap to recreate; the VDI
// itself is what must survive).
func (e *Engine) destroySnapshotRetaining(ctx context.Context, snapRef xapi.Ref, retainVBDs map[xapi.Ref]map[string]any) error {
	snap, err := e.gw.GetVMRecord(ctx, snapRef)
	if err != nil {
		return err
	}
	for _, vbdRef := range snap.VBDs {
		vbd, err := e.gw.GetVBDRecord(ctx, vbdRef)
		if err != nil {
			continue
		}
		if _, retained := retainVBDs[vbd.VDI]; !retained && vbd.IsDisk() {
			if err := e.gw.DestroyVDI(ctx, vbd.VDI); err != nil {
				e.log.WithError(err).Warn("failed to destroy superseded VDI")
			}
		}
	}
	return e.gw.DestroyVM(ctx, snapRef)
}

// vmDefinitionRecord builds the "vm" entry of the definition file: the
// snapshot's record with is_a_template cleared and a human label,
// matching the original's in-memory-only mutation (the live snapshot
// object on the hypervisor is never renamed).
func vmDefinitionRecord(vm, snap entities.VM) map[string]any {
	return map[string]any{
		"uuid":          snap.UUID,
		"name_label":    fmt.Sprintf("%s - backup %s", vm.NameLabel, time.Now().UTC().Format(time.RFC3339)),
		"is_a_template": false,
		"power_state":   snap.PowerState,
	}
}

// collectVBDsAndVIFs fills def.VBDs and def.VIFs from snap's live
// attachments, tagging each VIF with its network's current label as a
// restore-time fallback.
func (e *Engine) collectVBDsAndVIFs(ctx context.Context, snap entities.VM, def *definition.Definition) error {
	for _, vbdRef := range snap.VBDs {
		vbd, err := e.gw.GetVBDRecord(ctx, vbdRef)
		if err != nil {
			return err
		}
		def.VBDs[vbdRef.String()] = map[string]any{
			"type":     vbd.Type,
			"device":   vbd.Device,
			"bootable": vbd.Bootable,
			"mode":     vbd.Mode,
			"VDI":      vbd.VDI.String(),
		}
	}
	for _, vifRef := range snap.VIFs {
		vif, err := e.gw.GetVIFRecord(ctx, vifRef)
		if err != nil {
			return err
		}
		label := vif.NetworkLabel
		if label == "" && !vif.Network.IsNull() {
			if net, err := e.gw.GetNetworkRecord(ctx, vif.Network); err == nil {
				label = net.NameLabel
			}
		}
		def.VIFs[vifRef.String()] = map[string]any{
			"uuid":          vif.UUID,
			"MAC":           vif.MAC,
			"device":        vif.Device,
			"network":       vif.Network.String(),
			"network_label": label,
		}
	}
	return nil
}
