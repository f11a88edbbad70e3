package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
)

// permissionService resolves capabilities from the account and policy as stored right now.
// Nothing is cached, so grant and policy changes apply to the very next request.
type permissionService struct {
	accounts portsrepo.AccountReader
	policies portsrepo.PolicyRepository
}

// NewPermissionService creates a new PermissionSvc.
func NewPermissionService(accounts portsrepo.AccountReader, policies portsrepo.PolicyRepository) portssvc.PermissionSvc {
	return &permissionService{accounts: accounts, policies: policies}
}

var _ portssvc.PermissionSvc = (*permissionService)(nil)

func (s *permissionService) MatrixFor(ctx context.Context, accountID string) (*domain.Account, domain.CapabilityMatrix, error) {
	account, err := s.accounts.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	stored, err := s.policies.GetPolicy(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load policy: %w", err)
	}
	return account, domain.Resolve(account, domain.ResolvePolicy(stored)), nil
}

func (s *permissionService) Require(ctx context.Context, accountID string, c domain.Capability) (*domain.Account, domain.CapabilityMatrix, error) {
	account, matrix, err := s.MatrixFor(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if !matrix.Allows(c) {
		return account, matrix, fmt.Errorf("%w: missing capability %s", apperrors.ErrForbidden, c)
	}
	return account, matrix, nil
}
