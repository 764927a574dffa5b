package xapi

import (
	"context"

	"github.com/xenbackup/xenbackup/internal/common/core"
)

// CreateTask registers a new task on the master ahead of a streaming
// transfer, so the transfer URL can be parameterised with its id and
// the task can be cancelled if the local side aborts.
func (s *Session) CreateTask(ctx context.Context, label, description string) (Ref, error) {
	v, err := s.Call(ctx, core.Method("task", "create"), label, description)
	if err != nil {
		return "", err
	}
	ref, ok := v.(string)
	if !ok {
		return "", core.ErrUnexpectedValueShape.WithArgs(v)
	}
	return Ref(ref), nil
}

// CancelTask is always a best-effort call: failures are logged by the
// caller, never propagated, since it only runs on an error path that
// already has a primary error to report.
func (s *Session) CancelTask(ctx context.Context, ref Ref) error {
	_, err := s.Call(ctx, core.Method("task", "cancel"), ref)
	return err
}

func (s *Session) GetTaskStatus(ctx context.Context, ref Ref) (string, error) {
	v, err := s.Call(ctx, core.Method("task", "get_status"), ref)
	if err != nil {
		return "", err
	}
	status, _ := v.(string)
	return status, nil
}
