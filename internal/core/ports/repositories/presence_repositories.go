package repositories

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// PresenceRepository keeps the latest presence value per account.
type PresenceRepository interface {
	SetPresence(ctx context.Context, presence domain.Presence) error
	GetPresence(ctx context.Context, accountID string) (*domain.Presence, error)
	ListPresence(ctx context.Context) ([]domain.Presence, error)
}
