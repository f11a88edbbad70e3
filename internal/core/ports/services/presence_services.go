package services

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// PresenceSvc tracks which accounts currently hold a live connection.
type PresenceSvc interface {
	// Connect marks the account online and returns the hook that must run when the
	// connection ends, however it ends.
	Connect(ctx context.Context, accountID string) (disconnect func(), err error)

	// Logout marks the account offline immediately.
	Logout(ctx context.Context, accountID string) error

	// Snapshot returns every presence record for admins and only the viewer's own otherwise.
	Snapshot(ctx context.Context, viewer *domain.Account) (map[string]domain.Presence, error)
}
