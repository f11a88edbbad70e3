package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/platform/clock"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
)

type policyService struct {
	BaseService
	repo  portsrepo.PolicyRepository
	clock clock.Clock
}

// NewPolicyService creates a new PolicySvc.
func NewPolicyService(repo portsrepo.PolicyRepository, clk clock.Clock, options ...ServiceOption) portssvc.PolicySvc {
	return &policyService{
		BaseService: newBase(options),
		repo:        repo,
		clock:       clk,
	}
}

var _ portssvc.PolicySvc = (*policyService)(nil)

// GetPolicy returns the stored policy merged over the defaults. A store that was never
// written yields the defaults.
func (s *policyService) GetPolicy(ctx context.Context) (domain.GlobalPolicy, error) {
	stored, err := s.repo.GetPolicy(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load global policy")
		return domain.GlobalPolicy{}, err
	}
	return domain.ResolvePolicy(stored), nil
}

func (s *policyService) UpdatePolicy(ctx context.Context, patch domain.PolicyPatch, actorID string) (domain.GlobalPolicy, error) {
	if _, err := s.Authorize(ctx, actorID, domain.CapManageSettings); err != nil {
		return domain.GlobalPolicy{}, err
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return domain.GlobalPolicy{}, fmt.Errorf("%w: title must not be blank", apperrors.ErrValidation)
	}

	if err := s.repo.SavePolicy(ctx, patch, actorID, s.clock.Now()); err != nil {
		s.LogError(ctx, err, "Failed to save global policy", slog.String("actor_id", actorID))
		return domain.GlobalPolicy{}, err
	}
	s.LogInfo(ctx, "Global policy updated", slog.String("actor_id", actorID))
	s.Publish(realtime.TopicPolicy)

	return s.GetPolicy(ctx)
}
