package services

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// PolicySvc reads and updates the singleton global policy.
type PolicySvc interface {
	// GetPolicy returns the complete policy, stored values merged over defaults.
	GetPolicy(ctx context.Context) (domain.GlobalPolicy, error)

	// UpdatePolicy merges patch into the stored policy and returns the result.
	UpdatePolicy(ctx context.Context, patch domain.PolicyPatch, actorID string) (domain.GlobalPolicy, error)
}
