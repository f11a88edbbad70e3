package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

func (s *Store) SetPresence(ctx context.Context, presence domain.Presence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presence[presence.AccountID] = presence
	return nil
}

func (s *Store) GetPresence(ctx context.Context, accountID string) (*domain.Presence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.presence[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (s *Store) ListPresence(ctx context.Context) ([]domain.Presence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Presence, 0, len(s.presence))
	for _, p := range s.presence {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}
