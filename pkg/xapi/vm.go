package xapi

import (
	"context"

	"github.com/xenbackup/xenbackup/internal/common/core"
	"github.com/xenbackup/xenbackup/pkg/entities"
)

// GetAllVMRefs returns every VM reference known to the pool,
// templates and snapshots included; callers filter as needed.
func (s *Session) GetAllVMRefs(ctx context.Context) ([]Ref, error) {
	v, err := s.Call(ctx, core.Method("VM", "get_all"))
	if err != nil {
		return nil, err
	}
	return toRefs(v)
}

// GetVMRecord fetches and decodes a single VM's record.
func (s *Session) GetVMRecord(ctx context.Context, ref Ref) (entities.VM, error) {
	v, err := s.Call(ctx, core.Method("VM", "get_record"), ref)
	if err != nil {
		return entities.VM{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return entities.VM{}, core.ErrUnexpectedValueShape.WithArgs(v)
	}
	return entities.DecodeVM(ref, m)
}

// GetVMByUUID resolves a VM reference from its uuid, returning
// ErrNotFound if the lookup misses.
func (s *Session) GetVMByUUID(ctx context.Context, uuid string) (Ref, error) {
	v, err := s.Call(ctx, core.Method("VM", "get_by_uuid"), uuid)
	if err != nil {
		return "", err
	}
	ref, ok := v.(string)
	if !ok || RefOrNull(ref).IsNull() {
		return "", ErrNotFound
	}
	return Ref(ref), nil
}

// GetVMByLabel resolves every VM reference whose name_label matches
// label exactly, used by the Transfer Engine to find the VM the
// destination pool just imported under its transfer-tagged name.
func (s *Session) GetVMByLabel(ctx context.Context, label string) ([]Ref, error) {
	v, err := s.Call(ctx, core.Method("VM", "get_by_name_label"), label)
	if err != nil {
		return nil, err
	}
	return toRefs(v)
}

// CreateVM creates a VM from a full record, preserving every field
// the caller supplies (including fields this module does not
// otherwise know about) so restore can pass a decoded definition
// record straight through.
func (s *Session) CreateVM(ctx context.Context, record map[string]any) (Ref, error) {
	v, err := s.Call(ctx, core.Method("VM", "create"), record)
	if err != nil {
		return "", err
	}
	ref, ok := v.(string)
	if !ok {
		return "", core.ErrUnexpectedValueShape.WithArgs(v)
	}
	return Ref(ref), nil
}

func (s *Session) DestroyVM(ctx context.Context, ref Ref) error {
	_, err := s.Call(ctx, core.Method("VM", "destroy"), ref)
	return err
}

// SnapshotVM takes a new snapshot of ref named label and returns its
// reference.
func (s *Session) SnapshotVM(ctx context.Context, ref Ref, label string) (Ref, error) {
	v, err := s.Call(ctx, core.Method("VM", "snapshot"), ref, label)
	if err != nil {
		return "", err
	}
	snap, ok := v.(string)
	if !ok {
		return "", core.ErrUnexpectedValueShape.WithArgs(v)
	}
	return Ref(snap), nil
}

func (s *Session) SetVMNameLabel(ctx context.Context, ref Ref, label string) error {
	_, err := s.Call(ctx, core.Method("VM", "set_name_label"), ref, label)
	return err
}

func (s *Session) SetVMIsATemplate(ctx context.Context, ref Ref, isTemplate bool) error {
	_, err := s.Call(ctx, core.Method("VM", "set_is_a_template"), ref, isTemplate)
	return err
}

func (s *Session) GetVMAllowedOperations(ctx context.Context, ref Ref) ([]string, error) {
	v, err := s.Call(ctx, core.Method("VM", "get_allowed_operations"), ref)
	if err != nil {
		return nil, err
	}
	return toStrings(v), nil
}

// Power operations. Each mirrors a VM.<verb> XML-RPC call with no
// return value beyond success/failure.
func (s *Session) VMStart(ctx context.Context, ref Ref, paused, force bool) error {
	_, err := s.Call(ctx, core.Method("VM", "start"), ref, paused, force)
	return err
}

func (s *Session) VMCleanShutdown(ctx context.Context, ref Ref) error {
	_, err := s.Call(ctx, core.Method("VM", "clean_shutdown"), ref)
	return err
}

func (s *Session) VMHardShutdown(ctx context.Context, ref Ref) error {
	_, err := s.Call(ctx, core.Method("VM", "hard_shutdown"), ref)
	return err
}

func (s *Session) VMCleanReboot(ctx context.Context, ref Ref) error {
	_, err := s.Call(ctx, core.Method("VM", "clean_reboot"), ref)
	return err
}

func (s *Session) VMSuspend(ctx context.Context, ref Ref) error {
	_, err := s.Call(ctx, core.Method("VM", "suspend"), ref)
	return err
}

func (s *Session) VMResume(ctx context.Context, ref Ref, paused, force bool) error {
	_, err := s.Call(ctx, core.Method("VM", "resume"), ref, paused, force)
	return err
}

func toRefs(v any) ([]Ref, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, core.ErrUnexpectedValueShape.WithArgs(v)
	}
	out := make([]Ref, 0, len(arr))
	for _, item := range arr {
		s, _ := item.(string)
		out = append(out, Ref(s))
	}
	return out, nil
}

func toStrings(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
