package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fieldops_console/internal/adapters/database/memory"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/core/services"
	"github.com/SscSPs/fieldops_console/internal/platform/clock"
	"github.com/SscSPs/fieldops_console/internal/platform/config"
	"github.com/SscSPs/fieldops_console/internal/platform/metrics"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
	"github.com/SscSPs/fieldops_console/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const ownCompany = "Own Co"

// fixture wires the real services over the memory store.
type fixture struct {
	store   *memory.Store
	hub     *realtime.Hub
	clock   *clock.FakeClock
	metrics *metrics.Metrics
	cfg     *config.Config
	svc     *portssvc.ServiceContainer

	admin  domain.Account
	member domain.Account
	other  domain.Account
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:   memory.NewStore(),
		hub:     realtime.NewHub(),
		clock:   clock.Fake(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)),
		metrics: metrics.New(),
		cfg: &config.Config{
			JWTSecret:         "test-secret",
			JWTExpiryDuration: time.Hour,
			JWTIssuer:         "test",
			OwnCompanyName:    ownCompany,
		},
	}
	f.svc = services.NewServiceContainer(f.cfg, f.store.Provider(), f.hub, f.clock, f.metrics)

	f.admin = f.seed(t, "admin", domain.RoleAdmin, domain.Grants{})
	f.member = f.seed(t, "member", domain.RoleMember, domain.DefaultMemberGrants())
	f.other = f.seed(t, "other", domain.RoleMember, domain.DefaultMemberGrants())
	return f
}

func (f *fixture) seed(t *testing.T, username string, role domain.Role, grants domain.Grants) domain.Account {
	t.Helper()
	hash, err := utils.HashPassword("pass-" + username)
	require.NoError(t, err)
	acc := domain.Account{
		AccountID:        uuid.NewString(),
		Username:         username,
		CredentialSecret: hash,
		Role:             role,
		DisplayName:      "Name " + username,
		Grants:           grants,
		Balance:          domain.DefaultLeaveBalance(),
		CustomProducts:   []string{},
	}
	require.NoError(t, f.store.SaveAccount(context.Background(), acc))
	return acc
}

func (f *fixture) setAnnual(t *testing.T, accountID string, days int) {
	t.Helper()
	acc, err := f.store.FindAccountByID(context.Background(), accountID)
	require.NoError(t, err)
	bal, err := acc.Balance.With(domain.PoolAnnual, days)
	require.NoError(t, err)
	require.NoError(t, f.store.SetBalance(context.Background(), accountID, bal, "test", f.clock.Now()))
}

func (f *fixture) annual(t *testing.T, accountID string) int {
	t.Helper()
	acc, err := f.store.FindAccountByID(context.Background(), accountID)
	require.NoError(t, err)
	return acc.Balance.Annual
}

func (f *fixture) setGrants(t *testing.T, accountID string, g domain.Grants) {
	t.Helper()
	require.NoError(t, f.store.UpdateGrants(context.Background(), accountID, g, "test", f.clock.Now()))
}

// expectEvent waits briefly for an event on sub.
func expectEvent(t *testing.T, sub *realtime.Subscription) realtime.Event {
	t.Helper()
	select {
	case evt := <-sub.C:
		return evt
	case <-time.After(time.Second):
		t.Fatal("no event published")
		return realtime.Event{}
	}
}
