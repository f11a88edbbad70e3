package mapping

import (
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/models"
)

func ToModelMarket(d domain.Market) models.Market {
	return models.Market{
		MarketID:  d.MarketID,
		Name:      d.Name,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
	}
}

func ToDomainMarketSlice(ms []models.Market) []domain.Market {
	ds := make([]domain.Market, len(ms))
	for i, m := range ms {
		ds[i] = domain.Market(m)
	}
	return ds
}
