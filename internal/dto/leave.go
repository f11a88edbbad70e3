package dto

import (
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// DebitLeaveRequest is the intent to debit a leave pool.
// AccountID is honoured for administrators only; members always debit themselves.
type DebitLeaveRequest struct {
	AccountID string `json:"accountID"`
	Pool      string `json:"pool" binding:"required,oneof=annual casual sick exams"`
	Days      int    `json:"days" binding:"required,gte=1,lte=366"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
}

// ListLeaveTransactionsParams defines query parameters for listing ledger transactions.
type ListLeaveTransactionsParams struct {
	AccountID string `form:"accountID"`
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListLeaveTransactionsResponse wraps a page of ledger transactions.
type ListLeaveTransactionsResponse struct {
	Transactions []domain.LeaveTransaction `json:"transactions"`
	NextToken    *string                   `json:"nextToken,omitempty"`
}

// PeriodResponse describes the current accounting period.
type PeriodResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// ToPeriodResponse converts a domain period to its wire form.
func ToPeriodResponse(p domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		Start: p.Start.Format(DateLayout),
		End:   p.End.Format(DateLayout),
		Label: p.Label(),
	}
}

// BalanceResponse is the leave balance of one account.
type BalanceResponse struct {
	AccountID string              `json:"accountID"`
	Balance   domain.LeaveBalance `json:"balance"`
	AsOf      time.Time           `json:"asOf"`
}
