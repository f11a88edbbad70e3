package services

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/dto"
)

// LedgerWriterSvc records and voids leave debits
type LedgerWriterSvc interface {
	// Debit subtracts days from a pool and records the transaction, exactly once.
	Debit(ctx context.Context, requesterID string, req dto.DebitLeaveRequest) (*domain.LeaveTransaction, error)

	// Void deletes a transaction record without restoring the balance.
	Void(ctx context.Context, requesterID string, transactionID string) error
}

// LedgerReaderSvc reads the ledger
type LedgerReaderSvc interface {
	// ListTransactions returns a page of transactions visible to the requester.
	ListTransactions(ctx context.Context, requesterID string, params dto.ListLeaveTransactionsParams) (*dto.ListLeaveTransactionsResponse, error)

	// GetBalance reads the current balance of accountID (the requester's own unless admin).
	GetBalance(ctx context.Context, requesterID string, accountID string) (*dto.BalanceResponse, error)

	// CurrentPeriod returns the accounting period containing today.
	CurrentPeriod() domain.AccountingPeriod
}

// LedgerSvcFacade combines the ledger service interfaces
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}
