package services

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/platform/clock"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
	"github.com/google/uuid"
)

type marketService struct {
	BaseService
	repo        portsrepo.MarketRepository
	accountRepo portsrepo.AccountReader
	clock       clock.Clock
}

// NewMarketService creates a new MarketSvc.
func NewMarketService(repo portsrepo.MarketRepository, accounts portsrepo.AccountReader, clk clock.Clock, options ...ServiceOption) portssvc.MarketSvc {
	return &marketService{
		BaseService: newBase(options),
		repo:        repo,
		accountRepo: accounts,
		clock:       clk,
	}
}

var _ portssvc.MarketSvc = (*marketService)(nil)

func (s *marketService) List(ctx context.Context) ([]domain.Market, error) {
	added, err := s.repo.ListMarkets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list markets")
		return nil, err
	}
	return append(domain.BuiltinMarkets(), added...), nil
}

// Add is open to every account, the same way the catalogue was shared in the field app.
func (s *marketService) Add(ctx context.Context, actorID string, req dto.CreateMarketRequest) (*domain.Market, error) {
	name := domain.NormaliseMarketName(req.Name)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxMarketNameLength {
		return nil, fmt.Errorf("%w: market name must be 1 to %d characters", apperrors.ErrValidation, domain.MaxMarketNameLength)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, actorID); err != nil {
		return nil, err
	}
	for _, b := range domain.BuiltinMarkets() {
		if domain.SameMarketName(b.Name, name) {
			return nil, fmt.Errorf("%w: market %q already exists", apperrors.ErrDuplicate, name)
		}
	}

	m := domain.Market{
		MarketID:  uuid.NewString(),
		Name:      name,
		CreatedBy: actorID,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.SaveMarket(ctx, m); err != nil {
		s.LogError(ctx, err, "Failed to save market", slog.String("name", name))
		return nil, err
	}
	s.Publish(realtime.TopicMarkets)
	s.LogInfo(ctx, "Market added", slog.String("market_id", m.MarketID), slog.String("created_by", actorID))
	return &m, nil
}
