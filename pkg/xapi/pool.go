package xapi

import (
	"context"
	"fmt"

	"github.com/xenbackup/xenbackup/internal/common/core"
)

// GetPoolRef returns the single pool reference for this master. A
// Xen pool always has exactly one pool object; more or less than one
// is a configuration error, not a transient condition.
func (s *Session) GetPoolRef(ctx context.Context) (Ref, error) {
	v, err := s.Call(ctx, core.Method("pool", "get_all"))
	if err != nil {
		return "", err
	}
	refs, err := toRefs(v)
	if err != nil {
		return "", err
	}
	if len(refs) != 1 {
		return "", fmt.Errorf("xapi: expected exactly one pool, found %d: %w", len(refs), ErrConfig)
	}
	return refs[0], nil
}

// GetDefaultSR returns the pool's configured default storage
// repository, used as the last fallback when restoring a VDI whose
// SR the destination pool does not recognise.
func (s *Session) GetDefaultSR(ctx context.Context) (Ref, error) {
	pool, err := s.GetPoolRef(ctx)
	if err != nil {
		return "", err
	}
	v, err := s.Call(ctx, core.Method("pool", "get_default_SR"), pool)
	if err != nil {
		return "", err
	}
	ref, _ := v.(string)
	if RefOrNull(ref).IsNull() {
		return "", ErrNotFound
	}
	return Ref(ref), nil
}

// GetDefaultNetwork returns an arbitrary network of the pool. Unlike
// storage, XenAPI pools carry no "default network" attribute, so this
// is the same "first network" fallback VIF restore uses when no map
// entry and no matching label are found.
func (s *Session) GetDefaultNetwork(ctx context.Context) (Ref, error) {
	return s.GetAnyNetworkRef(ctx)
}
