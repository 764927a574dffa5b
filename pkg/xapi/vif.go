package xapi

import (
	"context"

	"github.com/xenbackup/xenbackup/internal/common/core"
	"github.com/xenbackup/xenbackup/pkg/entities"
)

func (s *Session) GetVIFRecord(ctx context.Context, ref Ref) (entities.VIF, error) {
	v, err := s.Call(ctx, core.Method("VIF", "get_record"), ref)
	if err != nil {
		return entities.VIF{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return entities.VIF{}, core.ErrUnexpectedValueShape.WithArgs(v)
	}
	return entities.DecodeVIF(ref, m)
}

func (s *Session) CreateVIF(ctx context.Context, record map[string]any) (Ref, error) {
	v, err := s.Call(ctx, core.Method("VIF", "create"), record)
	if err != nil {
		return "", err
	}
	ref, ok := v.(string)
	if !ok {
		return "", core.ErrUnexpectedValueShape.WithArgs(v)
	}
	return Ref(ref), nil
}

func (s *Session) DestroyVIF(ctx context.Context, ref Ref) error {
	_, err := s.Call(ctx, core.Method("VIF", "destroy"), ref)
	return err
}
