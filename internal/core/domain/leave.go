package domain

import (
	"fmt"
	"time"
)

// periodCutoverDay is the first day of a new accounting period.
const periodCutoverDay = 21

const periodDateLayout = "2006-01-02"

// AccountingPeriod is the inclusive window [Start, End] running from the 21st of one month
// to the 20th of the next.
type AccountingPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Label renders the period as "YYYY-MM-DD_YYYY-MM-DD".
func (p AccountingPeriod) Label() string {
	return fmt.Sprintf("%s_%s", p.Start.Format(periodDateLayout), p.End.Format(periodDateLayout))
}

// Contains reports whether the calendar date of t falls inside the period.
func (p AccountingPeriod) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.Start.Location())
	return !d.Before(p.Start) && !d.After(p.End)
}

// PeriodFor returns the accounting period containing the calendar date of today.
// Before the 21st the period started on the 21st of the previous month.
func PeriodFor(today time.Time) AccountingPeriod {
	loc := today.Location()
	year, month, day := today.Date()
	if day < periodCutoverDay {
		month--
	}
	// time.Date normalises month 0 to December of the previous year.
	start := time.Date(year, month, periodCutoverDay, 0, 0, 0, 0, loc)
	end := time.Date(year, month+1, periodCutoverDay-1, 0, 0, 0, 0, loc)
	return AccountingPeriod{Start: start, End: end}
}

// LeaveTransaction is one approved debit against a leave pool. It is immutable once
// recorded.
type LeaveTransaction struct {
	TransactionID string    `json:"transactionID"`
	AccountID     string    `json:"accountID"`
	AccountName   string    `json:"accountName"`
	Date          time.Time `json:"date"`
	Pool          Pool      `json:"pool"`
	Days          int       `json:"days"`
	RecordedBy    string    `json:"recordedBy"`
	PeriodLabel   string    `json:"periodLabel"`
	Timestamp     time.Time `json:"timestamp"`
}
