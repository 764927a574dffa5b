package xapi

import (
	"context"

	"github.com/xenbackup/xenbackup/internal/common/core"
	"github.com/xenbackup/xenbackup/pkg/entities"
)

func (s *Session) GetVBDRecord(ctx context.Context, ref Ref) (entities.VBD, error) {
	v, err := s.Call(ctx, core.Method("VBD", "get_record"), ref)
	if err != nil {
		return entities.VBD{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return entities.VBD{}, core.ErrUnexpectedValueShape.WithArgs(v)
	}
	return entities.DecodeVBD(ref, m)
}

func (s *Session) CreateVBD(ctx context.Context, record map[string]any) (Ref, error) {
	v, err := s.Call(ctx, core.Method("VBD", "create"), record)
	if err != nil {
		return "", err
	}
	ref, ok := v.(string)
	if !ok {
		return "", core.ErrUnexpectedValueShape.WithArgs(v)
	}
	return Ref(ref), nil
}

func (s *Session) DestroyVBD(ctx context.Context, ref Ref) error {
	_, err := s.Call(ctx, core.Method("VBD", "destroy"), ref)
	return err
}
