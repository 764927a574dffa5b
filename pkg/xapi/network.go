package xapi

import (
	"context"

	"github.com/xenbackup/xenbackup/internal/common/core"
	"github.com/xenbackup/xenbackup/pkg/entities"
)

func (s *Session) GetNetworkRecord(ctx context.Context, ref Ref) (entities.Network, error) {
	v, err := s.Call(ctx, core.Method("network", "get_record"), ref)
	if err != nil {
		return entities.Network{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return entities.Network{}, core.ErrUnexpectedValueShape.WithArgs(v)
	}
	var net entities.Network
	if err := entities.Decode(m, &net); err != nil {
		return entities.Network{}, err
	}
	net.Ref = ref
	return net, nil
}

func (s *Session) GetNetworkByUUID(ctx context.Context, uuid string) (Ref, error) {
	v, err := s.Call(ctx, core.Method("network", "get_by_uuid"), uuid)
	if err != nil {
		return "", err
	}
	ref, ok := v.(string)
	if !ok || RefOrNull(ref).IsNull() {
		return "", ErrNotFound
	}
	return Ref(ref), nil
}

// GetNetworkByLabel returns the first network matching label, or
// ErrNotFound if none does.
func (s *Session) GetNetworkByLabel(ctx context.Context, label string) (Ref, error) {
	v, err := s.Call(ctx, core.Method("network", "get_by_name_label"), label)
	if err != nil {
		return "", err
	}
	refs, err := toRefs(v)
	if err != nil || len(refs) == 0 {
		return "", ErrNotFound
	}
	return refs[0], nil
}

// GetAnyNetworkRef returns an arbitrary network reference in the
// pool, used as the restore-time fallback when no map entry and no
// matching label exist on the destination.
func (s *Session) GetAnyNetworkRef(ctx context.Context) (Ref, error) {
	v, err := s.Call(ctx, core.Method("network", "get_all"))
	if err != nil {
		return "", err
	}
	refs, err := toRefs(v)
	if err != nil || len(refs) == 0 {
		return "", ErrNotFound
	}
	return refs[0], nil
}
