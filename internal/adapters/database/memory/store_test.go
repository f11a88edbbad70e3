package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/fieldops_console/internal/adapters/database/memory"
	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, s *memory.Store, id string) {
	t.Helper()
	require.NoError(t, s.SaveAccount(context.Background(), domain.Account{
		AccountID:   id,
		Username:    "user-" + id,
		Role:        domain.RoleMember,
		DisplayName: "User " + id,
		Balance:     domain.LeaveBalance{Annual: 10, Casual: 2},
	}))
}

func debit(id, account string, days int, day int) domain.LeaveTransaction {
	date := time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
	return domain.LeaveTransaction{
		TransactionID: id,
		AccountID:     account,
		Pool:          domain.PoolAnnual,
		Days:          days,
		Date:          date,
		Timestamp:     date.Add(time.Hour),
	}
}

func TestStore_SaveAccountRejectsDuplicateUsername(t *testing.T) {
	s := memory.NewStore()
	seedAccount(t, s, "a")

	err := s.SaveAccount(context.Background(), domain.Account{AccountID: "b", Username: "user-a"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestStore_RecordDebit(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedAccount(t, s, "a")

	require.NoError(t, s.RecordDebit(ctx, debit("t1", "a", 3, 1), 10))

	acc, err := s.FindAccountByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 7, acc.Balance.Annual)

	// stale expectation
	err = s.RecordDebit(ctx, debit("t2", "a", 1, 2), 10)
	assert.ErrorIs(t, err, apperrors.ErrBalanceChanged)

	// more than remains
	err = s.RecordDebit(ctx, debit("t3", "a", 8, 3), 7)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)

	acc, err = s.FindAccountByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 7, acc.Balance.Annual, "failed debits leave the balance unchanged")

	_, err = s.FindTransactionByID(ctx, "t2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = s.RecordDebit(ctx, debit("t4", "missing", 1, 3), 0)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_DeleteTransactionKeepsBalance(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedAccount(t, s, "a")
	require.NoError(t, s.RecordDebit(ctx, debit("t1", "a", 4, 1), 10))

	require.NoError(t, s.DeleteTransaction(ctx, "t1"))
	assert.ErrorIs(t, s.DeleteTransaction(ctx, "t1"), apperrors.ErrNotFound)

	acc, err := s.FindAccountByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 6, acc.Balance.Annual)
}

func TestStore_ListTransactionsPaginates(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedAccount(t, s, "a")
	seedAccount(t, s, "b")

	expected := 10
	for day := 1; day <= 5; day++ {
		require.NoError(t, s.RecordDebit(ctx, debit(fmt.Sprintf("a%d", day), "a", 1, day), expected))
		expected--
	}
	require.NoError(t, s.RecordDebit(ctx, debit("b1", "b", 1, 9), 10))

	page, next, err := s.ListTransactions(ctx, "a", 2, nil)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, []string{"a5", "a4"}, ids(page))

	page, next, err = s.ListTransactions(ctx, "a", 2, next)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, []string{"a3", "a2"}, ids(page))

	page, next, err = s.ListTransactions(ctx, "a", 2, next)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, []string{"a1"}, ids(page))

	all, _, err := s.ListTransactions(ctx, "", 50, nil)
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, "b1", all[0].TransactionID)

	bad := "%%%"
	_, _, err = s.ListTransactions(ctx, "a", 2, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func ids(txns []domain.LeaveTransaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.TransactionID
	}
	return out
}

func TestStore_PolicyMergesPatches(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	stored, err := s.GetPolicy(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)

	title := "North"
	off := false
	require.NoError(t, s.SavePolicy(ctx, domain.PolicyPatch{Title: &title}, "admin", time.Now()))
	require.NoError(t, s.SavePolicy(ctx, domain.PolicyPatch{Visibility: &domain.VisibilityPatch{SalesLog: &off}}, "admin", time.Now()))

	stored, err = s.GetPolicy(ctx)
	require.NoError(t, err)
	got := domain.ResolvePolicy(stored)
	assert.Equal(t, "North", got.Title)
	assert.False(t, got.Visibility.SalesLog)
	assert.True(t, got.Visibility.InventoryLog)
}

func TestStore_RecordFilters(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	mk := func(id, market, by string, month time.Month) domain.SaleRecord {
		return domain.SaleRecord{
			RecordID: id,
			Market:   market,
			RecordAudit: domain.RecordAudit{
				Date:          time.Date(2024, month, 10, 0, 0, 0, 0, time.UTC),
				CreatedBy:     by,
				CreatedByName: "Name " + by,
			},
		}
	}
	require.NoError(t, s.SaveSale(ctx, mk("1", "Carrefour", "a", time.April)))
	require.NoError(t, s.SaveSale(ctx, mk("2", "Spinneys", "a", time.May)))
	require.NoError(t, s.SaveSale(ctx, mk("3", "Carrefour", "b", time.May)))

	got, err := s.ListSales(ctx, portsrepo.RecordFilter{Month: "2024-05"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.ListSales(ctx, portsrepo.RecordFilter{Market: "Carrefour", CreatedByName: "Name b"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].RecordID)

	assert.ErrorIs(t, s.DeleteSale(ctx, "nope"), apperrors.ErrNotFound)
}

func TestStore_NotificationsReadOnlyByTarget(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.SaveNotification(ctx, domain.Notification{NotificationID: "n1", TargetAccountID: "a", Timestamp: time.Now()}))

	assert.ErrorIs(t, s.MarkNotificationRead(ctx, "n1", "b"), apperrors.ErrNotFound)
	require.NoError(t, s.MarkNotificationRead(ctx, "n1", "a"))

	list, err := s.ListNotificationsByTarget(ctx, "a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRead)
}

func TestStore_Markets(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	at := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveMarket(ctx, domain.Market{MarketID: "m2", Name: "Spinneys", CreatedAt: at.Add(time.Hour)}))
	require.NoError(t, s.SaveMarket(ctx, domain.Market{MarketID: "m1", Name: "Carrefour", CreatedAt: at}))

	err := s.SaveMarket(ctx, domain.Market{MarketID: "m3", Name: "CARREFOUR", CreatedAt: at})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	list, err := s.ListMarkets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m1", list[0].MarketID, "oldest first")
	assert.Equal(t, "m2", list[1].MarketID)
}
