package dto

import (
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one product line of a sale.
type SaleItemRequest struct {
	Product  string          `json:"product" binding:"required,max=100"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" binding:"required,gte=1"`
}

// CreateSaleRequest records a sale at a market.
type CreateSaleRequest struct {
	Market string            `json:"market" binding:"required,max=120"`
	Date   string            `json:"date" binding:"required,datetime=2006-01-02"`
	Items  []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InventoryItemRequest is one counted product.
type InventoryItemRequest struct {
	Product  string `json:"product" binding:"required,max=100"`
	Quantity int    `json:"quantity" binding:"gte=0"`
}

// CreateInventoryRequest records a stock count at a market.
type CreateInventoryRequest struct {
	Market string                 `json:"market" binding:"required,max=120"`
	Date   string                 `json:"date" binding:"required,datetime=2006-01-02"`
	Items  []InventoryItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CompetitorItemRequest is one observed shelf price.
type CompetitorItemRequest struct {
	Product string          `json:"product" binding:"required,max=100"`
	Price   decimal.Decimal `json:"price"`
}

// CreateCompetitorPriceRequest records the prices of one company at a market.
type CreateCompetitorPriceRequest struct {
	Market  string                  `json:"market" binding:"required,max=120"`
	Company string                  `json:"company" binding:"required,max=120"`
	Date    string                  `json:"date" binding:"required,datetime=2006-01-02"`
	Items   []CompetitorItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ListRecordsParams defines query filters for field-record listings.
type ListRecordsParams struct {
	Month     string `form:"month" binding:"omitempty,datetime=2006-01"`
	Market    string `form:"market"`
	CreatedBy string `form:"createdBy"` // creator display name, sales only
}
