// Package iface declares the Hypervisor Gateway surface as a pure Go
// interface, the way the teacher SDK's pkg/services/library package
// declares one interface per resource ahead of a generated mock.
// *xapi.Session satisfies Gateway; engine packages depend on Gateway,
// never on *xapi.Session directly, so tests can substitute MockGateway.
package iface

//go:generate go run go.uber.org/mock/mockgen -source=$GOFILE -destination=mock_iface.go -package=iface

import (
	"context"
	"io"

	"github.com/xenbackup/xenbackup/pkg/entities"
	"github.com/xenbackup/xenbackup/pkg/xapi"
)

// Gateway is the full set of hypervisor operations every backup,
// restore and transfer engine is built against.
type Gateway interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error

	GetAllVMRefs(ctx context.Context) ([]xapi.Ref, error)
	GetVMRecord(ctx context.Context, ref xapi.Ref) (entities.VM, error)
	GetVMByUUID(ctx context.Context, uuid string) (xapi.Ref, error)
	GetVMByLabel(ctx context.Context, label string) ([]xapi.Ref, error)
	CreateVM(ctx context.Context, record map[string]any) (xapi.Ref, error)
	DestroyVM(ctx context.Context, ref xapi.Ref) error
	SnapshotVM(ctx context.Context, ref xapi.Ref, label string) (xapi.Ref, error)
	SetVMNameLabel(ctx context.Context, ref xapi.Ref, label string) error
	SetVMIsATemplate(ctx context.Context, ref xapi.Ref, isTemplate bool) error
	GetVMAllowedOperations(ctx context.Context, ref xapi.Ref) ([]string, error)
	VMStart(ctx context.Context, ref xapi.Ref, paused, force bool) error
	VMCleanShutdown(ctx context.Context, ref xapi.Ref) error
	VMHardShutdown(ctx context.Context, ref xapi.Ref) error
	VMCleanReboot(ctx context.Context, ref xapi.Ref) error
	VMSuspend(ctx context.Context, ref xapi.Ref) error
	VMResume(ctx context.Context, ref xapi.Ref, paused, force bool) error

	GetVBDRecord(ctx context.Context, ref xapi.Ref) (entities.VBD, error)
	CreateVBD(ctx context.Context, record map[string]any) (xapi.Ref, error)
	DestroyVBD(ctx context.Context, ref xapi.Ref) error

	GetVDIRecord(ctx context.Context, ref xapi.Ref) (entities.VDI, error)
	CreateVDI(ctx context.Context, record map[string]any) (xapi.Ref, error)
	DestroyVDI(ctx context.Context, ref xapi.Ref) error
	VDIExists(ctx context.Context, ref xapi.Ref) bool

	GetVIFRecord(ctx context.Context, ref xapi.Ref) (entities.VIF, error)
	CreateVIF(ctx context.Context, record map[string]any) (xapi.Ref, error)
	DestroyVIF(ctx context.Context, ref xapi.Ref) error

	GetNetworkRecord(ctx context.Context, ref xapi.Ref) (entities.Network, error)
	GetNetworkByUUID(ctx context.Context, uuid string) (xapi.Ref, error)
	GetNetworkByLabel(ctx context.Context, label string) (xapi.Ref, error)
	GetAnyNetworkRef(ctx context.Context) (xapi.Ref, error)

	GetSRRecord(ctx context.Context, ref xapi.Ref) (entities.SR, error)
	GetSRLabel(ctx context.Context, ref xapi.Ref) (string, error)
	GetSRByUUID(ctx context.Context, uuid string) (xapi.Ref, error)
	GetSRByLabel(ctx context.Context, label string) (xapi.Ref, error)
	SRExists(ctx context.Context, ref xapi.Ref) bool

	GetPoolRef(ctx context.Context) (xapi.Ref, error)
	GetDefaultSR(ctx context.Context) (xapi.Ref, error)
	GetDefaultNetwork(ctx context.Context) (xapi.Ref, error)

	CreateTask(ctx context.Context, label, description string) (xapi.Ref, error)
	CancelTask(ctx context.Context, ref xapi.Ref) error
	GetTaskStatus(ctx context.Context, ref xapi.Ref) (string, error)

	ExportVM(ctx context.Context, snapRef xapi.Ref, useCompression bool, w io.Writer) error
	ImportVM(ctx context.Context, r io.Reader, size int64, srRef xapi.Ref, restore bool) (xapi.Ref, error)
	ExportRawVDI(ctx context.Context, vdiRef, baseRef xapi.Ref, w io.Writer) error
	ImportRawVDI(ctx context.Context, vdiRef xapi.Ref, r io.Reader, size int64) error
}

var _ Gateway = (*xapi.Session)(nil)
