package repositories

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// MarketRepository persists the markets added on top of the built-in catalogue.
type MarketRepository interface {
	// SaveMarket returns apperrors.ErrDuplicate when a stored market has the same name,
	// compared case-insensitively.
	SaveMarket(ctx context.Context, m domain.Market) error

	// ListMarkets returns the stored markets, oldest first.
	ListMarkets(ctx context.Context) ([]domain.Market, error)
}
