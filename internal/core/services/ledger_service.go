package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/platform/clock"
	"github.com/SscSPs/fieldops_console/internal/platform/metrics"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
	"github.com/google/uuid"
)

// maxDebitAttempts bounds the compare-and-set loop of Debit.
const maxDebitAttempts = 3

const defaultLedgerPageSize = 20

// ledgerService debits leave pools. Every debit is a compare-and-set against the balance it
// read, so two concurrent debits of the same pool can never both apply to the same value.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	ledgerRepo  portsrepo.LeaveLedgerRepositoryFacade
	clock       clock.Clock
	metrics     *metrics.Metrics
}

// NewLedgerService creates a new LedgerSvcFacade.
func NewLedgerService(accounts portsrepo.AccountReader, ledger portsrepo.LeaveLedgerRepositoryFacade, clk clock.Clock, m *metrics.Metrics, options ...ServiceOption) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: newBase(options),
		accountRepo: accounts,
		ledgerRepo:  ledger,
		clock:       clk,
		metrics:     m,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CurrentPeriod() domain.AccountingPeriod {
	return domain.PeriodFor(s.clock.Now())
}

func (s *ledgerService) Debit(ctx context.Context, requesterID string, req dto.DebitLeaveRequest) (*domain.LeaveTransaction, error) {
	if err := validateStruct(req); err != nil {
		s.metrics.DebitRefused("validation")
		return nil, err
	}
	date, err := time.ParseInLocation(dto.DateLayout, req.Date, s.clock.Now().Location())
	if err != nil {
		s.metrics.DebitRefused("validation")
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}
	pool := domain.Pool(req.Pool)

	requester, err := s.accountRepo.FindAccountByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	targetID := requester.AccountID
	if requester.IsAdmin() && req.AccountID != "" {
		targetID = req.AccountID
	}

	var txn domain.LeaveTransaction
	for attempt := 1; ; attempt++ {
		target, err := s.accountRepo.FindAccountByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		current, err := target.Balance.Get(pool)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if current < req.Days {
			s.metrics.DebitRefused("insufficient")
			s.LogInfo(ctx, "Leave debit refused, insufficient balance",
				slog.String("account_id", targetID),
				slog.String("pool", string(pool)),
				slog.Int("available", current),
				slog.Int("requested", req.Days))
			return nil, fmt.Errorf("%w: %d %s days available, %d requested",
				apperrors.ErrInsufficientBalance, current, pool, req.Days)
		}

		now := s.clock.Now()
		txn = domain.LeaveTransaction{
			TransactionID: uuid.NewString(),
			AccountID:     target.AccountID,
			AccountName:   target.DisplayName,
			Date:          date,
			Pool:          pool,
			Days:          req.Days,
			RecordedBy:    requester.AccountID,
			PeriodLabel:   domain.PeriodFor(now).Label(),
			Timestamp:     now,
		}

		err = s.ledgerRepo.RecordDebit(ctx, txn, current)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrBalanceChanged) && attempt < maxDebitAttempts {
			s.metrics.DebitRetried()
			s.LogDebug(ctx, "Balance changed during debit, retrying",
				slog.String("account_id", targetID),
				slog.Int("attempt", attempt))
			continue
		}
		switch {
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			s.metrics.DebitRefused("insufficient")
		case errors.Is(err, apperrors.ErrBalanceChanged):
			s.metrics.DebitRefused("contention")
			s.LogError(ctx, err, "Giving up on leave debit after concurrent updates",
				slog.String("account_id", targetID),
				slog.Int("attempts", attempt))
		default:
			s.LogError(ctx, err, "Failed to record leave debit", slog.String("account_id", targetID))
		}
		return nil, err
	}

	s.Publish(realtime.AccountTopic(txn.AccountID))
	s.metrics.LeaveDebited(string(txn.Pool), txn.Days)
	s.LogInfo(ctx, "Leave debited",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("pool", string(txn.Pool)),
		slog.Int("days", txn.Days),
		slog.String("period", txn.PeriodLabel))
	return &txn, nil
}

// Void removes a transaction record and leaves the balance as it is. Restoring the days
// is a separate, explicit SetBalance by an administrator.
func (s *ledgerService) Void(ctx context.Context, requesterID string, transactionID string) error {
	if _, err := s.Authorize(ctx, requesterID, domain.CapManageLedger); err != nil {
		return err
	}
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if err := s.ledgerRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to void leave transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogWarn(ctx, "Leave transaction voided, balance not restored",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("pool", string(txn.Pool)),
		slog.Int("days", txn.Days),
		slog.String("voided_by", requesterID))
	s.Publish(realtime.AccountTopic(txn.AccountID))
	return nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, requesterID string, params dto.ListLeaveTransactionsParams) (*dto.ListLeaveTransactionsResponse, error) {
	requester, err := s.accountRepo.FindAccountByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	accountID := requester.AccountID
	if requester.IsAdmin() {
		accountID = params.AccountID
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	txns, next, err := s.ledgerRepo.ListTransactions(ctx, accountID, limit, token)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list leave transactions", slog.String("account_id", accountID))
		}
		return nil, err
	}
	if txns == nil {
		txns = []domain.LeaveTransaction{}
	}
	return &dto.ListLeaveTransactionsResponse{Transactions: txns, NextToken: next}, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, requesterID string, accountID string) (*dto.BalanceResponse, error) {
	if accountID == "" {
		accountID = requesterID
	}
	if accountID != requesterID {
		if _, err := s.Authorize(ctx, requesterID, domain.CapManageLedger); err != nil {
			return nil, err
		}
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		AccountID: account.AccountID,
		Balance:   account.Balance,
		AsOf:      s.clock.Now(),
	}, nil
}
