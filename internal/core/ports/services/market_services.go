package services

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/dto"
)

// MarketSvc manages the shared market catalogue.
type MarketSvc interface {
	// List returns the built-in markets followed by the added ones.
	List(ctx context.Context) ([]domain.Market, error)
	Add(ctx context.Context, actorID string, req dto.CreateMarketRequest) (*domain.Market, error)
}
