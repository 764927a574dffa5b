// Package entities holds the in-memory records for the objects the
// Hypervisor Gateway exposes: VM, VBD, VDI, VIF, Network, SR and Task.
// Each wraps an opaque reference plus the attributes the backup and
// restore engines actually touch; every other field the hypervisor
// reports is kept in Extra when a record is decoded. The definition
// file pkg/deltabackup writes does not include Extra: it carries only
// the fields that engine names explicitly.
package entities

import (
	"github.com/mitchellh/mapstructure"
	"github.com/xenbackup/xenbackup/pkg/xapi"
)

// Decode turns the generic map the Gateway's XML-RPC layer produces
// into a typed record, using mapstructure instead of a hand-written
// field-by-field walk (the teacher SDK does the analogous conversion
// with a JSON marshal/unmarshal round-trip; mapstructure.Decode is the
// pack's more direct equivalent for a map[string]any source).
func Decode(raw map[string]any, out any) error {
	return decode(raw, out)
}

func decode(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "xen",
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// VM is a single virtual machine's record.
type VM struct {
	Ref              xapi.Ref       `xen:"-"`
	UUID             string         `xen:"uuid"`
	NameLabel        string         `xen:"name_label"`
	IsATemplate      bool           `xen:"is_a_template"`
	IsASnapshot      bool           `xen:"is_a_snapshot"`
	PowerState       string         `xen:"power_state"`
	AllowedOps       []string       `xen:"allowed_operations"`
	SnapshotOf       xapi.Ref       `xen:"snapshot_of"`
	SnapshotTime     string         `xen:"snapshot_time"`
	VBDs             []xapi.Ref     `xen:"VBDs"`
	VIFs             []xapi.Ref     `xen:"VIFs"`
	Snapshots        []xapi.Ref     `xen:"snapshots"`
	Extra            map[string]any `xen:",remain"`
}

// DecodeVM builds a VM from the raw record a VM.get_record call
// returns, keeping ref (the record call does not embed its own
// reference in the XenAPI wire format).
func DecodeVM(ref xapi.Ref, raw map[string]any) (VM, error) {
	var vm VM
	if err := decode(raw, &vm); err != nil {
		return VM{}, err
	}
	vm.Ref = ref
	return vm, nil
}

// VBD is a virtual block device: the attachment of a VDI to a VM.
type VBD struct {
	Ref      xapi.Ref       `xen:"-"`
	UUID     string         `xen:"uuid"`
	VM       xapi.Ref       `xen:"VM"`
	VDI      xapi.Ref       `xen:"VDI"`
	Type     string         `xen:"type"`
	Device   string         `xen:"device"`
	Bootable bool           `xen:"bootable"`
	Mode     string         `xen:"mode"`
	Extra    map[string]any `xen:",remain"`
}

// IsDisk reports whether this attachment is a disk (as opposed to a
// CD or floppy), the only kind the backup engines export.
func (v VBD) IsDisk() bool {
	return v.Type == "Disk"
}

func DecodeVBD(ref xapi.Ref, raw map[string]any) (VBD, error) {
	var vbd VBD
	if err := decode(raw, &vbd); err != nil {
		return VBD{}, err
	}
	vbd.Ref = ref
	return vbd, nil
}

// VDI is a virtual disk image: the stored contents of a disk.
type VDI struct {
	Ref              xapi.Ref       `xen:"-"`
	UUID             string         `xen:"uuid"`
	NameLabel        string         `xen:"name_label"`
	SR               xapi.Ref       `xen:"SR"`
	Type             string         `xen:"type"`
	VirtualSize      int64          `xen:"virtual_size"`
	SnapshotOf       xapi.Ref       `xen:"snapshot_of"`
	SnapshotTime     string         `xen:"snapshot_time"`
	AllowedOps       []string       `xen:"allowed_operations"`
	VBDs             []xapi.Ref     `xen:"VBDs"`

	// Populated by the backup engines at write time, never read back
	// from the hypervisor.
	SRLabel        string `xen:"SR_label"`
	BackupFile     string `xen:"backup_file"`
	BackupBaseFile string `xen:"backup_base_file,omitempty"`

	Extra map[string]any `xen:",remain"`
}

func DecodeVDI(ref xapi.Ref, raw map[string]any) (VDI, error) {
	var vdi VDI
	if err := decode(raw, &vdi); err != nil {
		return VDI{}, err
	}
	vdi.Ref = ref
	return vdi, nil
}

// VIF is a virtual network interface attached to a VM.
type VIF struct {
	Ref      xapi.Ref       `xen:"-"`
	UUID     string         `xen:"uuid"`
	VM       xapi.Ref       `xen:"VM"`
	Network  xapi.Ref       `xen:"network"`
	MAC      string         `xen:"MAC"`
	Device   string         `xen:"device"`

	// NetworkLabel is filled in at backup time from the live Network
	// record so restore has a fallback when the destination pool has
	// no network with the same reference or uuid.
	NetworkLabel string `xen:"network_label"`

	Extra map[string]any `xen:",remain"`
}

func DecodeVIF(ref xapi.Ref, raw map[string]any) (VIF, error) {
	var vif VIF
	if err := decode(raw, &vif); err != nil {
		return VIF{}, err
	}
	vif.Ref = ref
	return vif, nil
}

// Network is a virtual switch VIFs attach to.
type Network struct {
	Ref       xapi.Ref `xen:"-"`
	UUID      string   `xen:"uuid"`
	NameLabel string   `xen:"name_label"`
}

// SR is a storage repository backing VDIs.
type SR struct {
	Ref       xapi.Ref `xen:"-"`
	UUID      string   `xen:"uuid"`
	NameLabel string   `xen:"name_label"`
}

// Pool is a cluster of hosts sharing a master.
type Pool struct {
	Ref          xapi.Ref `xen:"-"`
	NameLabel    string   `xen:"name_label"`
	Master       xapi.Ref `xen:"master"`
	DefaultSR    xapi.Ref `xen:"default_SR"`
}

// Task is a hypervisor-side handle on an in-progress bulk transfer,
// created ahead of every streaming GET/PUT and cancelled on local
// error so the master stops writing to (or reading from) a connection
// nobody is consuming any more.
type Task struct {
	Ref    xapi.Ref `xen:"-"`
	Status string   `xen:"status"`
}
