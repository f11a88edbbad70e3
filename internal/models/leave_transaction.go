package models

import "time"

// LeaveTransaction is a row of the leave_transactions table.
type LeaveTransaction struct {
	TransactionID string    `db:"transaction_id"`
	AccountID     string    `db:"account_id"`
	AccountName   string    `db:"account_name"`
	LeaveDate     time.Time `db:"leave_date"` // DATE
	Pool          string    `db:"pool"`
	Days          int       `db:"days"`
	RecordedBy    string    `db:"recorded_by"`
	PeriodLabel   string    `db:"period_label"`
	RecordedAt    time.Time `db:"recorded_at"`
}
