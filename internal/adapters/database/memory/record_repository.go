package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
)

func matches(f portsrepo.RecordFilter, market string, audit domain.RecordAudit) bool {
	if f.Month != "" && audit.Date.Format("2006-01") != f.Month {
		return false
	}
	if f.Market != "" && market != f.Market {
		return false
	}
	if f.CreatedByName != "" && audit.CreatedByName != f.CreatedByName {
		return false
	}
	return true
}

// newestFirst orders by record date, then capture time.
func newestFirst(a, b domain.RecordAudit) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	return a.Timestamp.After(b.Timestamp)
}

func (s *Store) SaveSale(ctx context.Context, rec domain.SaleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sales[rec.RecordID]; ok {
		return fmt.Errorf("%w: sale %s", apperrors.ErrDuplicate, rec.RecordID)
	}
	s.sales[rec.RecordID] = rec
	return nil
}

func (s *Store) ListSales(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.SaleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SaleRecord, 0)
	for _, r := range s.sales {
		if matches(filter, r.Market, r.RecordAudit) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return newestFirst(out[i].RecordAudit, out[j].RecordAudit) })
	return out, nil
}

func (s *Store) FindSaleByID(ctx context.Context, recordID string) (*domain.SaleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.sales[recordID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (s *Store) DeleteSale(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sales[recordID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.sales, recordID)
	return nil
}

func (s *Store) SaveInventory(ctx context.Context, rec domain.InventoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inventory[rec.RecordID]; ok {
		return fmt.Errorf("%w: inventory %s", apperrors.ErrDuplicate, rec.RecordID)
	}
	s.inventory[rec.RecordID] = rec
	return nil
}

func (s *Store) ListInventory(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.InventoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.InventoryRecord, 0)
	for _, r := range s.inventory {
		if matches(filter, r.Market, r.RecordAudit) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return newestFirst(out[i].RecordAudit, out[j].RecordAudit) })
	return out, nil
}

func (s *Store) DeleteInventory(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inventory[recordID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.inventory, recordID)
	return nil
}

func (s *Store) SaveCompetitorPrice(ctx context.Context, rec domain.CompetitorPriceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.competitor[rec.RecordID]; ok {
		return fmt.Errorf("%w: competitor price %s", apperrors.ErrDuplicate, rec.RecordID)
	}
	s.competitor[rec.RecordID] = rec
	return nil
}

func (s *Store) ListCompetitorPrices(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.CompetitorPriceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CompetitorPriceRecord, 0)
	for _, r := range s.competitor {
		if matches(filter, r.Market, r.RecordAudit) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return newestFirst(out[i].RecordAudit, out[j].RecordAudit) })
	return out, nil
}

func (s *Store) DeleteCompetitorPrice(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.competitor[recordID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.competitor, recordID)
	return nil
}
