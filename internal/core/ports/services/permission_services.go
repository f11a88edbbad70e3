package services

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// PermissionSvc resolves capabilities against the live account and policy.
type PermissionSvc interface {
	// MatrixFor loads the account and the merged policy now and resolves the matrix.
	MatrixFor(ctx context.Context, accountID string) (*domain.Account, domain.CapabilityMatrix, error)

	// Require returns apperrors.ErrForbidden unless the account holds capability c.
	Require(ctx context.Context, accountID string, c domain.Capability) (*domain.Account, domain.CapabilityMatrix, error)
}
