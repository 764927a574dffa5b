// Package orchestrator runs a backup or clean job across
// every configured pool in parallel, bounded by max_subproc, and
// aggregates per-pool results for the Report Writer. Grounded on
// backup.py's multiprocessing.Pool(apply_async per-pool) fan-out.
package orchestrator

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/xenbackup/xenbackup/internal/common/logger"
	"github.com/xenbackup/xenbackup/pkg/backupresult"
	"github.com/xenbackup/xenbackup/pkg/config"
	"github.com/xenbackup/xenbackup/pkg/deltabackup"
	"github.com/xenbackup/xenbackup/pkg/fullbackup"
	"github.com/xenbackup/xenbackup/pkg/snapshot"
	"github.com/xenbackup/xenbackup/pkg/xapi"
	"github.com/xenbackup/xenbackup/pkg/xapi/iface"
)

// Mode selects which engine runPool runs per VM.
type Mode string

const (
	ModeFullBackup  Mode = "full"
	ModeDeltaBackup Mode = "delta"
	ModeClean       Mode = "clean"
)

// Dialer opens and authenticates a Gateway for one pool. Production
// code passes a function wrapping xapi.Dial + Session.Login; tests
// substitute a function returning a MockGateway, so the orchestrator
// itself never imports *xapi.Session directly.
type Dialer func(ctx context.Context, pool config.Pool) (iface.Gateway, error)

// Run fans out over cfg.Pools, bounded by cfg.MaxSubproc, running
// mode against every pool. A failing pool worker never aborts its
// siblings, matching the independent-per-pool-process behaviour of
// the original tool.
func Run(ctx context.Context, cfg *config.Config, mode Mode, dial Dialer, log *logger.Logger) []backupresult.PoolResult {
	results := make([]backupresult.PoolResult, len(cfg.Pools))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.MaxSubproc)

	for i, pool := range cfg.Pools {
		i, pool := i, pool
		g.Go(func() error {
			results[i] = runPool(gctx, cfg, pool, mode, dial, log)
			return nil
		})
	}
	// Errors are carried in PoolResult, not returned from Wait: a pool
	// failure must not cancel sibling pools still in flight.
	_ = g.Wait()
	return results
}

func runPool(ctx context.Context, cfg *config.Config, pool config.Pool, mode Mode, dial Dialer, log *logger.Logger) backupresult.PoolResult {
	result := backupresult.PoolResult{PoolName: pool.Name}
	plog := log.WithField("pool", pool.Name)

	gw, err := dial(ctx, pool)
	if err != nil {
		result.Error = err
		return result
	}
	defer func() {
		if err := gw.Logout(ctx); err != nil {
			plog.WithError(err).Warn("logout failed")
		}
	}()

	if mode == ModeClean {
		if _, err := snapshot.CleanPool(ctx, gw); err != nil {
			result.Error = err
		}
		return result
	}

	vmRefs, err := selectVMs(ctx, gw, pool)
	if err != nil {
		result.Error = err
		return result
	}

	full := fullbackup.New(gw, plog)
	delta := deltabackup.New(gw, plog)

	for _, vmRef := range vmRefs {
		vm, err := gw.GetVMRecord(ctx, vmRef)
		if err != nil {
			result.Failed = append(result.Failed, backupresult.NewVMFailure("", "", err))
			continue
		}

		var runErr error
		switch mode {
		case ModeFullBackup:
			runErr = full.Run(ctx, vmRef, cfg.FullBackupDir, cfg.FullBackupsToRetain, cfg.BackupNewSnap)
		case ModeDeltaBackup:
			_, runErr = delta.Run(ctx, vmRef, cfg.DeltaBackupDir, cfg.DeltaBackupsToRetain)
		}
		if runErr != nil {
			result.Failed = append(result.Failed, backupresult.NewVMFailure(vm.UUID, vm.NameLabel, runErr))
			if isFatal(runErr) {
				plog.WithError(runErr).Error("fatal error, aborting pool")
				break
			}
		}
	}
	return result
}

// isFatal reports whether err must abort the enclosing pool's VM loop
// immediately rather than being recorded and skipped: an out-of-space
// destination only gets worse for the remaining VMs, and a cancelled
// run (signal or context deadline) must not keep dialing more work.
func isFatal(err error) bool {
	return errors.Is(err, xapi.ErrNoSpace) || errors.Is(err, xapi.ErrCancelled)
}

// selectVMs resolves the pool's actual VM set: explicit VMUUIDList if
// given, else every non-template non-snapshot VM minus ExcludedVMs.
func selectVMs(ctx context.Context, gw iface.Gateway, pool config.Pool) ([]xapi.Ref, error) {
	if len(pool.VMUUIDList) > 0 {
		refs := make([]xapi.Ref, 0, len(pool.VMUUIDList))
		for _, uuid := range pool.VMUUIDList {
			ref, err := gw.GetVMByUUID(ctx, uuid)
			if err != nil {
				return nil, err
			}
			refs = append(refs, ref)
		}
		return refs, nil
	}

	excluded := map[string]bool{}
	for _, uuid := range pool.ExcludedVMs {
		excluded[uuid] = true
	}

	all, err := gw.GetAllVMRefs(ctx)
	if err != nil {
		return nil, err
	}
	var refs []xapi.Ref
	for _, ref := range all {
		vm, err := gw.GetVMRecord(ctx, ref)
		if err != nil {
			return nil, err
		}
		if vm.IsATemplate || vm.IsASnapshot {
			continue
		}
		if excluded[vm.UUID] {
			continue
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
