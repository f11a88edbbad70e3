package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

func copyAccount(a domain.Account) domain.Account {
	if a.CustomProducts != nil {
		a.CustomProducts = append([]string(nil), a.CustomProducts...)
	}
	return a
}

func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := copyAccount(a)
	return &out, nil
}

func (s *Store) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Username == username {
			out := copyAccount(a)
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, copyAccount(a))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayName != out[j].DisplayName {
			return out[i].DisplayName < out[j].DisplayName
		}
		return out[i].AccountID < out[j].AccountID
	})
	return out, nil
}

func (s *Store) CountAdmins(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.accounts {
		if a.Role == domain.RoleAdmin {
			n++
		}
	}
	return n, nil
}

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.AccountID]; ok {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	for _, a := range s.accounts {
		if a.Username == account.Username {
			return fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, account.Username)
		}
	}
	s.accounts[account.AccountID] = copyAccount(account)
	return nil
}

// modify applies fn to the stored account under the lock.
func (s *Store) modify(accountID string, fn func(a *domain.Account)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[accountID]
	if !ok {
		return apperrors.ErrNotFound
	}
	fn(&a)
	s.accounts[accountID] = a
	return nil
}

func (s *Store) UpdateProfile(ctx context.Context, account domain.Account) error {
	return s.modify(account.AccountID, func(a *domain.Account) {
		a.DisplayName = account.DisplayName
		a.EmployeeCode = account.EmployeeCode
		a.Phone = account.Phone
		a.Role = account.Role
		a.LastUpdatedAt = account.LastUpdatedAt
		a.LastUpdatedBy = account.LastUpdatedBy
	})
}

func (s *Store) UpdateGrants(ctx context.Context, accountID string, grants domain.Grants, updatedBy string, now time.Time) error {
	return s.modify(accountID, func(a *domain.Account) {
		a.Grants = grants
		a.LastUpdatedAt = now
		a.LastUpdatedBy = updatedBy
	})
}

func (s *Store) UpdateCredential(ctx context.Context, accountID string, secret string, updatedBy string, now time.Time) error {
	return s.modify(accountID, func(a *domain.Account) {
		a.CredentialSecret = secret
		a.LastUpdatedAt = now
		a.LastUpdatedBy = updatedBy
	})
}

func (s *Store) SetBalance(ctx context.Context, accountID string, balance domain.LeaveBalance, updatedBy string, now time.Time) error {
	return s.modify(accountID, func(a *domain.Account) {
		a.Balance = balance
		a.LastUpdatedAt = now
		a.LastUpdatedBy = updatedBy
	})
}

func (s *Store) SetCustomProducts(ctx context.Context, accountID string, products []string, now time.Time) error {
	return s.modify(accountID, func(a *domain.Account) {
		a.CustomProducts = append([]string(nil), products...)
		a.LastUpdatedAt = now
	})
}

func (s *Store) DeleteAccount(ctx context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[accountID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.accounts, accountID)
	delete(s.presence, accountID)
	return nil
}
