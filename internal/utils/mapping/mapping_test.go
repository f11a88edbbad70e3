package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountMapping_FlattensGrantsAndPools(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	acc := domain.Account{
		AccountID:   "acc-1",
		Username:    "sara",
		Role:        domain.RoleMember,
		DisplayName: "Sara",
		Grants:      domain.Grants{CanViewSalesLog: true, CanViewOthersSales: true},
		Balance:     domain.LeaveBalance{Annual: 10, Casual: 2, Sick: 5, Exam: 1},
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "system", LastUpdatedAt: now, LastUpdatedBy: "system"},
	}

	row := ToModelAccount(acc)
	assert.True(t, row.CanViewSalesLog)
	assert.False(t, row.CanViewAllSales)
	assert.Equal(t, 10, row.AnnualBalance)
	assert.Equal(t, 1, row.ExamBalance)
	assert.NotNil(t, row.CustomProducts, "text[] column must not receive NULL")

	back := ToDomainAccount(row)
	back.CustomProducts = nil
	assert.Equal(t, acc, back)
}

func TestSaleRecordMapping_KeepsDecimalPrices(t *testing.T) {
	rec := domain.SaleRecord{
		RecordID: "s-1",
		Market:   "Carrefour",
		Items: []domain.SaleItem{
			{Product: "Rose 1L", Price: decimal.RequireFromString("12.50"), Quantity: 2},
		},
		Total: decimal.RequireFromString("25"),
		RecordAudit: domain.RecordAudit{
			Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			CreatedBy: "acc-1",
		},
	}

	row := ToModelSaleRecord(rec)
	assert.Equal(t, rec.Date, row.RecordDate)
	assert.True(t, row.Items[0].Price.Equal(decimal.RequireFromString("12.5")))

	assert.Equal(t, rec, ToDomainSaleRecord(row))
}
