package repositories

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// RecordFilter narrows a field-record listing. Zero values mean no filter.
type RecordFilter struct {
	Month         string // YYYY-MM, matched against the record date
	Market        string
	CreatedByName string
}

// SaleRepository defines persistence for sale records
type SaleRepository interface {
	SaveSale(ctx context.Context, rec domain.SaleRecord) error
	ListSales(ctx context.Context, filter RecordFilter) ([]domain.SaleRecord, error)
	FindSaleByID(ctx context.Context, recordID string) (*domain.SaleRecord, error)
	DeleteSale(ctx context.Context, recordID string) error
}

// InventoryRepository defines persistence for inventory counts
type InventoryRepository interface {
	SaveInventory(ctx context.Context, rec domain.InventoryRecord) error
	ListInventory(ctx context.Context, filter RecordFilter) ([]domain.InventoryRecord, error)
	DeleteInventory(ctx context.Context, recordID string) error
}

// CompetitorPriceRepository defines persistence for competitor price reports
type CompetitorPriceRepository interface {
	SaveCompetitorPrice(ctx context.Context, rec domain.CompetitorPriceRecord) error
	ListCompetitorPrices(ctx context.Context, filter RecordFilter) ([]domain.CompetitorPriceRecord, error)
	DeleteCompetitorPrice(ctx context.Context, recordID string) error
}
