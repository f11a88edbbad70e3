package services

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/dto"
)

// SaleSvc captures and lists sales
type SaleSvc interface {
	CreateSale(ctx context.Context, actorID string, req dto.CreateSaleRequest) (*domain.SaleRecord, error)
	ListSales(ctx context.Context, viewerID string, params dto.ListRecordsParams) ([]domain.SaleRecord, error)
	SummariseSales(ctx context.Context, viewerID string, params dto.ListRecordsParams) (*domain.SalesSummary, error)
	DeleteSale(ctx context.Context, actorID string, recordID string) error
}

// InventorySvc captures and lists stock counts
type InventorySvc interface {
	CreateInventory(ctx context.Context, actorID string, req dto.CreateInventoryRequest) (*domain.InventoryRecord, error)
	ListInventory(ctx context.Context, viewerID string, params dto.ListRecordsParams) ([]domain.InventoryRecord, error)
	DeleteInventory(ctx context.Context, actorID string, recordID string) error
}

// CompetitorPriceSvc captures and lists competitor price reports
type CompetitorPriceSvc interface {
	CreateCompetitorPrice(ctx context.Context, actorID string, req dto.CreateCompetitorPriceRequest) (*domain.CompetitorPriceRecord, error)
	ListCompetitorPrices(ctx context.Context, viewerID string, params dto.ListRecordsParams) ([]domain.CompetitorPriceRecord, error)
	DeleteCompetitorPrice(ctx context.Context, actorID string, recordID string) error
}

// RecordSvcFacade combines the field-record services
type RecordSvcFacade interface {
	SaleSvc
	InventorySvc
	CompetitorPriceSvc
}
