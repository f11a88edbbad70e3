package services

import (
	"context"
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// AuthSvc verifies credentials and issues session tokens.
type AuthSvc interface {
	// Login checks username and password and returns a signed token for the account.
	Login(ctx context.Context, username, password string) (token string, expiresAt time.Time, account *domain.Account, err error)

	// Logout ends the caller's visible presence.
	Logout(ctx context.Context, accountID string) error

	// EnsureBootstrapAdmin creates an administrator when none exists.
	EnsureBootstrapAdmin(ctx context.Context, username, password string) error
}
