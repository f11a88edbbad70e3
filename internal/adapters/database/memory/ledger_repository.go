package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/utils/pagination"
)

func (s *Store) FindTransactionByID(ctx context.Context, transactionID string) (*domain.LeaveTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.ledger[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (s *Store) ListTransactions(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LeaveTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	s.mu.Lock()
	all := make([]domain.LeaveTransaction, 0, len(s.ledger))
	for _, t := range s.ledger {
		if accountID == "" || t.AccountID == accountID {
			all = append(all, t)
		}
	}
	s.mu.Unlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].Timestamp.After(all[j].Timestamp)
	})

	if nextToken != nil && *nextToken != "" {
		lastDate, lastTimestamp, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		start := len(all)
		for i, t := range all {
			if t.Date.Before(lastDate) || (t.Date.Equal(lastDate) && t.Timestamp.Before(lastTimestamp)) {
				start = i
				break
			}
		}
		all = all[start:]
	}

	if len(all) <= limit {
		return all, nil, nil
	}
	page := all[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.Date, last.Timestamp)
	return page, &token, nil
}

func (s *Store) RecordDebit(ctx context.Context, txn domain.LeaveTransaction, expected int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[txn.AccountID]
	if !ok {
		return apperrors.ErrNotFound
	}
	current, err := a.Balance.Get(txn.Pool)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if current != expected {
		return apperrors.ErrBalanceChanged
	}
	if current < txn.Days {
		return apperrors.ErrInsufficientBalance
	}
	if _, exists := s.ledger[txn.TransactionID]; exists {
		return fmt.Errorf("%w: transaction %s already recorded", apperrors.ErrDuplicate, txn.TransactionID)
	}

	a.Balance, _ = a.Balance.With(txn.Pool, current-txn.Days)
	a.LastUpdatedAt = txn.Timestamp
	a.LastUpdatedBy = txn.RecordedBy
	s.accounts[a.AccountID] = a
	s.ledger[txn.TransactionID] = txn
	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ledger[transactionID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.ledger, transactionID)
	return nil
}
