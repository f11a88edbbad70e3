package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordAudit holds the columns every field-record table shares.
type RecordAudit struct {
	RecordDate    time.Time `db:"record_date"` // DATE
	RecordedAt    time.Time `db:"recorded_at"`
	CreatedBy     string    `db:"created_by"`
	CreatedByName string    `db:"created_by_name"`
}

// SaleItem is one element of the sale_records.items JSONB array.
type SaleItem struct {
	Product  string          `json:"product"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// SaleRecord is a row of the sale_records table.
type SaleRecord struct {
	RecordID string          `db:"record_id"`
	Market   string          `db:"market"`
	Items    []SaleItem      `db:"items"`
	Total    decimal.Decimal `db:"total"`
	RecordAudit
}

// InventoryItem is one element of the inventory_records.items JSONB array.
type InventoryItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// InventoryRecord is a row of the inventory_records table.
type InventoryRecord struct {
	RecordID string          `db:"record_id"`
	Market   string          `db:"market"`
	Items    []InventoryItem `db:"items"`
	RecordAudit
}

// CompetitorItem is one element of the competitor_price_records.items JSONB array.
type CompetitorItem struct {
	Product string          `json:"product"`
	Price   decimal.Decimal `json:"price"`
}

// CompetitorPriceRecord is a row of the competitor_price_records table.
type CompetitorPriceRecord struct {
	RecordID string           `db:"record_id"`
	Market   string           `db:"market"`
	Company  string           `db:"company"`
	Items    []CompetitorItem `db:"items"`
	RecordAudit
}
