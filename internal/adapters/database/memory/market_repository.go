package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

func (s *Store) SaveMarket(ctx context.Context, m domain.Market) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.markets {
		if existing.MarketID == m.MarketID || domain.SameMarketName(existing.Name, m.Name) {
			return fmt.Errorf("%w: market %q", apperrors.ErrDuplicate, m.Name)
		}
	}
	s.markets[m.MarketID] = m
	return nil
}

func (s *Store) ListMarkets(ctx context.Context) ([]domain.Market, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Market, 0, len(s.markets))
	for _, m := range s.markets {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
