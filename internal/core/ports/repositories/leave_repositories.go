package repositories

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// LeaveLedgerReader defines read operations for ledger transactions
type LeaveLedgerReader interface {
	// FindTransactionByID retrieves a single ledger transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.LeaveTransaction, error)

	// ListTransactions retrieves a page of transactions ordered by date then timestamp, newest first.
	// An empty accountID lists every account. It returns the transactions and a token for the next page.
	ListTransactions(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LeaveTransaction, *string, error)
}

// LeaveLedgerWriter defines write operations for ledger transactions
type LeaveLedgerWriter interface {
	// RecordDebit atomically checks that the stored balance of txn.Pool still equals expected,
	// inserts txn and subtracts txn.Days from the pool. It returns apperrors.ErrBalanceChanged
	// when the check fails and apperrors.ErrInsufficientBalance if the result would go negative.
	RecordDebit(ctx context.Context, txn domain.LeaveTransaction, expected int) error

	// DeleteTransaction removes a transaction record. Balances are not touched.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// LeaveLedgerRepositoryFacade combines all ledger repository interfaces
type LeaveLedgerRepositoryFacade interface {
	LeaveLedgerReader
	LeaveLedgerWriter
}
