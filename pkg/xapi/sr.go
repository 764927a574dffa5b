package xapi

import (
	"context"

	"github.com/xenbackup/xenbackup/internal/common/core"
	"github.com/xenbackup/xenbackup/pkg/entities"
)

func (s *Session) GetSRRecord(ctx context.Context, ref Ref) (entities.SR, error) {
	v, err := s.Call(ctx, core.Method("SR", "get_record"), ref)
	if err != nil {
		return entities.SR{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return entities.SR{}, core.ErrUnexpectedValueShape.WithArgs(v)
	}
	var sr entities.SR
	if err := entities.Decode(m, &sr); err != nil {
		return entities.SR{}, err
	}
	sr.Ref = ref
	return sr, nil
}

func (s *Session) GetSRLabel(ctx context.Context, ref Ref) (string, error) {
	v, err := s.Call(ctx, core.Method("SR", "get_name_label"), ref)
	if err != nil {
		return "", err
	}
	label, _ := v.(string)
	return label, nil
}

func (s *Session) GetSRByUUID(ctx context.Context, uuid string) (Ref, error) {
	v, err := s.Call(ctx, core.Method("SR", "get_by_uuid"), uuid)
	if err != nil {
		return "", err
	}
	ref, ok := v.(string)
	if !ok || RefOrNull(ref).IsNull() {
		return "", ErrNotFound
	}
	return Ref(ref), nil
}

// GetSRByLabel returns the first SR matching label, or ErrNotFound.
func (s *Session) GetSRByLabel(ctx context.Context, label string) (Ref, error) {
	v, err := s.Call(ctx, core.Method("SR", "get_by_name_label"), label)
	if err != nil {
		return "", err
	}
	refs, err := toRefs(v)
	if err != nil || len(refs) == 0 {
		return "", ErrNotFound
	}
	return refs[0], nil
}

func (s *Session) SRExists(ctx context.Context, ref Ref) bool {
	if ref.IsNull() {
		return false
	}
	_, err := s.Call(ctx, core.Method("SR", "get_uuid"), ref)
	return err == nil
}
