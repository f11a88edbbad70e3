package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// PolicyRepository stores the singleton global policy as a partial record.
type PolicyRepository interface {
	// GetPolicy returns the stored patch, or nil when nothing was ever saved.
	GetPolicy(ctx context.Context) (*domain.PolicyPatch, error)

	// SavePolicy merges patch over the stored record field by field.
	SavePolicy(ctx context.Context, patch domain.PolicyPatch, updatedBy string, now time.Time) error
}
