package memory

import (
	"context"
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

func (s *Store) GetPolicy(ctx context.Context) (*domain.PolicyPatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.policy == nil {
		return nil, nil
	}
	out := domain.CombinePatches(domain.PolicyPatch{}, *s.policy)
	return &out, nil
}

func (s *Store) SavePolicy(ctx context.Context, patch domain.PolicyPatch, updatedBy string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := domain.PolicyPatch{}
	if s.policy != nil {
		prev = *s.policy
	}
	merged := domain.CombinePatches(prev, patch)
	s.policy = &merged
	return nil
}
