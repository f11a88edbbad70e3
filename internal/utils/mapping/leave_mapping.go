package mapping

import (
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/models"
)

func ToModelLeaveTransaction(d domain.LeaveTransaction) models.LeaveTransaction {
	return models.LeaveTransaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		AccountName:   d.AccountName,
		LeaveDate:     d.Date,
		Pool:          string(d.Pool),
		Days:          d.Days,
		RecordedBy:    d.RecordedBy,
		PeriodLabel:   d.PeriodLabel,
		RecordedAt:    d.Timestamp,
	}
}

func ToDomainLeaveTransaction(m models.LeaveTransaction) domain.LeaveTransaction {
	return domain.LeaveTransaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		AccountName:   m.AccountName,
		Date:          m.LeaveDate,
		Pool:          domain.Pool(m.Pool),
		Days:          m.Days,
		RecordedBy:    m.RecordedBy,
		PeriodLabel:   m.PeriodLabel,
		Timestamp:     m.RecordedAt,
	}
}

func ToDomainLeaveTransactionSlice(ms []models.LeaveTransaction) []domain.LeaveTransaction {
	ds := make([]domain.LeaveTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveTransaction(m)
	}
	return ds
}
