package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	"github.com/SscSPs/fieldops_console/internal/models"
	"github.com/SscSPs/fieldops_console/internal/utils/mapping"
	"github.com/SscSPs/fieldops_console/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const leaveTransactionColumns = `transaction_id, account_id, account_name, leave_date, pool, days, recorded_by, period_label, recorded_at`

// poolColumns maps a leave pool to its balance column on accounts.
var poolColumns = map[domain.Pool]string{
	domain.PoolAnnual: "annual_balance",
	domain.PoolCasual: "casual_balance",
	domain.PoolSick:   "sick_balance",
	domain.PoolExam:   "exam_balance",
}

type PgxLeaveLedgerRepository struct {
	BaseRepository
}

func NewPgxLeaveLedgerRepository(pool *pgxpool.Pool) *PgxLeaveLedgerRepository {
	return &PgxLeaveLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LeaveLedgerRepositoryFacade = (*PgxLeaveLedgerRepository)(nil)

func (r *PgxLeaveLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.LeaveTransaction, error) {
	query := `SELECT ` + leaveTransactionColumns + ` FROM leave_transactions WHERE transaction_id = $1`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, mapError(err, "failed to query leave transaction")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.LeaveTransaction])
	if err != nil {
		return nil, mapError(err, "failed to scan leave transaction")
	}
	txn := mapping.ToDomainLeaveTransaction(m)
	return &txn, nil
}

// ListTransactions pages with a keyset on (leave_date, recorded_at). One extra row is
// fetched to know whether a next page exists.
func (r *PgxLeaveLedgerRepository) ListTransactions(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LeaveTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	var (
		conds []string
		args  []any
	)
	if accountID != "" {
		args = append(args, accountID)
		conds = append(conds, fmt.Sprintf("account_id = $%d", len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastTimestamp, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		args = append(args, lastDate, lastTimestamp)
		conds = append(conds, fmt.Sprintf("(leave_date, recorded_at) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + leaveTransactionColumns + ` FROM leave_transactions`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY leave_date DESC, recorded_at DESC LIMIT $%d`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapError(err, "failed to list leave transactions")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LeaveTransaction])
	if err != nil {
		return nil, nil, mapError(err, "failed to scan leave transactions")
	}

	txns := mapping.ToDomainLeaveTransactionSlice(ms)
	if len(txns) <= limit {
		return txns, nil, nil
	}
	page := txns[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.Date, last.Timestamp)
	return page, &token, nil
}

// RecordDebit locks the account row, compares the pool against expected, inserts the
// transaction and writes the new balance, all in one transaction.
func (r *PgxLeaveLedgerRepository) RecordDebit(ctx context.Context, txn domain.LeaveTransaction, expected int) error {
	column, ok := poolColumns[txn.Pool]
	if !ok {
		return fmt.Errorf("%w: unknown leave pool %q", apperrors.ErrValidation, txn.Pool)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var current int
	lockQuery := fmt.Sprintf(`SELECT %s FROM accounts WHERE account_id = $1 FOR UPDATE`, column)
	if err := tx.QueryRow(ctx, lockQuery, txn.AccountID).Scan(&current); err != nil {
		return mapError(err, "failed to lock account balance")
	}
	if current != expected {
		return apperrors.ErrBalanceChanged
	}
	if current < txn.Days {
		return apperrors.ErrInsufficientBalance
	}

	m := mapping.ToModelLeaveTransaction(txn)
	insertQuery := `INSERT INTO leave_transactions (` + leaveTransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := tx.Exec(ctx, insertQuery,
		m.TransactionID, m.AccountID, m.AccountName, m.LeaveDate, m.Pool, m.Days, m.RecordedBy, m.PeriodLabel, m.RecordedAt,
	); err != nil {
		return mapError(err, "failed to insert leave transaction")
	}

	updateQuery := fmt.Sprintf(`UPDATE accounts SET %s = $2, last_updated_at = $3, last_updated_by = $4 WHERE account_id = $1`, column)
	if _, err := tx.Exec(ctx, updateQuery, txn.AccountID, current-txn.Days, txn.Timestamp, txn.RecordedBy); err != nil {
		return mapError(err, "failed to update leave balance")
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes the transaction row only; balances are left as they are.
func (r *PgxLeaveLedgerRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM leave_transactions WHERE transaction_id = $1`, transactionID)
	if err != nil {
		return mapError(err, "failed to delete leave transaction")
	}
	return expectOne(tag)
}
