package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ProductSummary aggregates every sale line of one product.
type ProductSummary struct {
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
	UnitPrice decimal.Decimal `json:"unitPrice"` // last seen
}

// SalesSummary is the read-side aggregation of a set of sale records.
type SalesSummary struct {
	Products   []ProductSummary `json:"products"`
	GrandTotal decimal.Decimal  `json:"grandTotal"`
	BestDay    decimal.Decimal  `json:"bestDay"`
	BestDate   string           `json:"bestDate,omitempty"`
	Count      int              `json:"count"`
}

// SummariseSales groups records by product and finds the best single day. Records are
// processed in the given order, so UnitPrice is the price on the last line seen.
func SummariseSales(records []SaleRecord) SalesSummary {
	summary := SalesSummary{
		Products:   []ProductSummary{},
		GrandTotal: decimal.Zero,
		BestDay:    decimal.Zero,
		Count:      len(records),
	}

	byProduct := make(map[string]*ProductSummary)
	order := make([]string, 0)
	byDate := make(map[string]decimal.Decimal)

	for _, rec := range records {
		recTotal := decimal.Zero
		for _, it := range rec.Items {
			line := it.LineTotal()
			recTotal = recTotal.Add(line)

			ps, ok := byProduct[it.Product]
			if !ok {
				ps = &ProductSummary{Product: it.Product, Value: decimal.Zero}
				byProduct[it.Product] = ps
				order = append(order, it.Product)
			}
			ps.Quantity += it.Quantity
			ps.Value = ps.Value.Add(line)
			ps.UnitPrice = it.Price
		}
		summary.GrandTotal = summary.GrandTotal.Add(recTotal)

		day := rec.Date.Format(periodDateLayout)
		byDate[day] = byDate[day].Add(recTotal)
	}

	for _, name := range order {
		summary.Products = append(summary.Products, *byProduct[name])
	}
	sort.SliceStable(summary.Products, func(i, j int) bool {
		return summary.Products[i].Value.GreaterThan(summary.Products[j].Value)
	})

	for day, total := range byDate {
		if total.GreaterThan(summary.BestDay) || (total.Equal(summary.BestDay) && summary.BestDate != "" && day < summary.BestDate) {
			summary.BestDay = total
			summary.BestDate = day
		}
	}
	return summary
}
