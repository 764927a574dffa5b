package xapi

import (
	"context"

	"github.com/xenbackup/xenbackup/internal/common/core"
	"github.com/xenbackup/xenbackup/pkg/entities"
)

func (s *Session) GetVDIRecord(ctx context.Context, ref Ref) (entities.VDI, error) {
	v, err := s.Call(ctx, core.Method("VDI", "get_record"), ref)
	if err != nil {
		return entities.VDI{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return entities.VDI{}, core.ErrUnexpectedValueShape.WithArgs(v)
	}
	return entities.DecodeVDI(ref, m)
}

func (s *Session) CreateVDI(ctx context.Context, record map[string]any) (Ref, error) {
	v, err := s.Call(ctx, core.Method("VDI", "create"), record)
	if err != nil {
		return "", err
	}
	ref, ok := v.(string)
	if !ok {
		return "", core.ErrUnexpectedValueShape.WithArgs(v)
	}
	return Ref(ref), nil
}

func (s *Session) DestroyVDI(ctx context.Context, ref Ref) error {
	_, err := s.Call(ctx, core.Method("VDI", "destroy"), ref)
	return err
}

func (s *Session) VDIExists(ctx context.Context, ref Ref) bool {
	if ref.IsNull() {
		return false
	}
	_, err := s.Call(ctx, core.Method("VDI", "get_uuid"), ref)
	return err == nil
}
