package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByUsername retrieves an account by its login name.
	FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error)

	// ListAccounts retrieves every account ordered by display name.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// CountAdmins returns the number of accounts holding the admin role.
	CountAdmins(ctx context.Context) (int, error)
}

// AccountWriter defines write operations for account data.
// Each writer touches only its own columns so a profile edit never races a ledger debit.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateProfile overwrites the descriptive fields and role of an account.
	UpdateProfile(ctx context.Context, account domain.Account) error

	// UpdateGrants overwrites the capability grants of an account.
	UpdateGrants(ctx context.Context, accountID string, grants domain.Grants, updatedBy string, now time.Time) error

	// UpdateCredential replaces the stored credential secret.
	UpdateCredential(ctx context.Context, accountID string, secret string, updatedBy string, now time.Time) error

	// SetBalance overwrites all leave pools of an account.
	SetBalance(ctx context.Context, accountID string, balance domain.LeaveBalance, updatedBy string, now time.Time) error

	// SetCustomProducts overwrites the account's custom product list.
	SetCustomProducts(ctx context.Context, accountID string, products []string, now time.Time) error

	// DeleteAccount removes an account permanently.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
