// Package backupresult holds the per-VM and per-pool result shapes
// every backup, restore and transfer engine reports through, so the
// Run Orchestrator and Report Writer can aggregate them uniformly.
// Grounded on backup.py's failed_vms dict and mail_content structure.
package backupresult

import (
	"fmt"

	"github.com/xenbackup/xenbackup/pkg/xapi"
)

// VMFailure records one VM's failed backup/restore/transfer attempt,
// tagged with the user-visible sub-category the spec requires.
type VMFailure struct {
	VMUUID   string
	VMLabel  string
	Category xapi.Category
	Err      error
}

func (f VMFailure) String() string {
	return fmt.Sprintf("[%s] VM %q (%s): %v", f.Category, f.VMLabel, f.VMUUID, f.Err)
}

// NewVMFailure classifies err and builds a VMFailure from it.
func NewVMFailure(uuid, label string, err error) VMFailure {
	return VMFailure{VMUUID: uuid, VMLabel: label, Category: xapi.Classify(err), Err: err}
}

// PoolResult is one pool worker's outcome: either a pool-level error
// (login failure, report I/O) that aborted the whole pool before any
// per-VM processing, or a list of individual VM failures. VMs that
// succeeded are not recorded.
type PoolResult struct {
	PoolName string
	Error    error
	Failed   []VMFailure
}

// HasErrors reports whether this pool's run should flip the process
// exit code to 1.
func (r PoolResult) HasErrors() bool {
	return r.Error != nil || len(r.Failed) > 0
}
