package services

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account in the directory.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines the administrator's write operations on the directory
type AccountWriterSvc interface {
	// CreateAccount creates a new account with default grants and balances unless overridden.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actorID string) (*domain.Account, error)

	// UpdateAccount changes profile fields of an account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actorID string) (*domain.Account, error)

	// UpdateGrants replaces the capability grants of an account.
	UpdateGrants(ctx context.Context, accountID string, grants domain.Grants, actorID string) (*domain.Account, error)

	// UpdateCredential replaces the password of an account.
	UpdateCredential(ctx context.Context, accountID string, password string, actorID string) error

	// SetBalance overwrites the leave pools of an account.
	SetBalance(ctx context.Context, accountID string, balance domain.LeaveBalance, actorID string) (*domain.Account, error)

	// DeleteAccount removes an account permanently.
	DeleteAccount(ctx context.Context, accountID string, actorID string) error
}

// CustomProductSvc manages the caller's own product list.
type CustomProductSvc interface {
	ListCustomProducts(ctx context.Context, accountID string) ([]string, error)
	AddCustomProduct(ctx context.Context, accountID string, name string) ([]string, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	CustomProductSvc
}
