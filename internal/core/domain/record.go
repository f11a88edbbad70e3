package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind names one of the field-data collections.
type RecordKind string

const (
	RecordKindSale       RecordKind = "sale"
	RecordKindInventory  RecordKind = "inventory"
	RecordKindCompetitor RecordKind = "competitor"
)

// ViewAllCapability is the capability that lets a member see every record of kind k,
// not just their own.
func (k RecordKind) ViewAllCapability() Capability {
	switch k {
	case RecordKindSale:
		return CapViewAllSales
	case RecordKindInventory:
		return CapViewInventoryLog
	case RecordKindCompetitor:
		return CapViewCompetitorReports
	}
	return ""
}

// RecordMeta is the part of a field record the visibility filter looks at.
type RecordMeta struct {
	Kind      RecordKind
	CreatedBy string
	Company   string // competitor records only
}

// CanViewRecord decides whether viewer may see rec. Admins see everything; anyone else
// sees what they created, everything of a kind they hold the view-all capability for, and
// competitor rows reported for their own company.
func CanViewRecord(viewer *Account, matrix CapabilityMatrix, rec RecordMeta, ownCompany string) bool {
	if viewer == nil {
		return false
	}
	if viewer.IsAdmin() {
		return true
	}
	if rec.CreatedBy != "" && rec.CreatedBy == viewer.AccountID {
		return true
	}
	if c := rec.Kind.ViewAllCapability(); c != "" && matrix.Allows(c) {
		return true
	}
	return rec.Kind == RecordKindCompetitor && ownCompany != "" && rec.Company == ownCompany
}

// RecordAudit is shared by every field record.
type RecordAudit struct {
	Date          time.Time `json:"date"`
	Timestamp     time.Time `json:"timestamp"`
	CreatedBy     string    `json:"createdBy"`
	CreatedByName string    `json:"createdByName"`
}

// SaleItem is one product line on a sale.
type SaleItem struct {
	Product  string          `json:"product"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// LineTotal is price times quantity.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SaleRecord is a sale captured at a market.
type SaleRecord struct {
	RecordID string          `json:"recordID"`
	Market   string          `json:"market"`
	Items    []SaleItem      `json:"items"`
	Total    decimal.Decimal `json:"total"`
	RecordAudit
}

// Meta returns the visibility view of the record.
func (r SaleRecord) Meta() RecordMeta {
	return RecordMeta{Kind: RecordKindSale, CreatedBy: r.CreatedBy}
}

// ComputeTotal sums the line totals of items.
func ComputeTotal(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// InventoryItem is one counted product.
type InventoryItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// InventoryRecord is a stock count taken at a market.
type InventoryRecord struct {
	RecordID string          `json:"recordID"`
	Market   string          `json:"market"`
	Items    []InventoryItem `json:"items"`
	RecordAudit
}

func (r InventoryRecord) Meta() RecordMeta {
	return RecordMeta{Kind: RecordKindInventory, CreatedBy: r.CreatedBy}
}

// CompetitorItem is one observed shelf price.
type CompetitorItem struct {
	Product string          `json:"product"`
	Price   decimal.Decimal `json:"price"`
}

// CompetitorPriceRecord is a set of prices observed for one company at a market.
type CompetitorPriceRecord struct {
	RecordID string           `json:"recordID"`
	Market   string           `json:"market"`
	Company  string           `json:"company"`
	Items    []CompetitorItem `json:"items"`
	RecordAudit
}

func (r CompetitorPriceRecord) Meta() RecordMeta {
	return RecordMeta{Kind: RecordKindCompetitor, CreatedBy: r.CreatedBy, Company: r.Company}
}
