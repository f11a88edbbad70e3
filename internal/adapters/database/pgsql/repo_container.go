package pgsql

import (
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates a new RepositoryProvider with all repositories initialized
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	records := NewPgxRecordRepository(dbPool)
	return portsrepo.RepositoryProvider{
		AccountRepo:      NewPgxAccountRepository(dbPool),
		PolicyRepo:       NewPgxPolicyRepository(dbPool),
		LedgerRepo:       NewPgxLeaveLedgerRepository(dbPool),
		PresenceRepo:     NewPgxPresenceRepository(dbPool),
		SaleRepo:         records,
		InventoryRepo:    records,
		CompetitorRepo:   records,
		NotificationRepo: NewPgxNotificationRepository(dbPool),
		MarketRepo:       NewPgxMarketRepository(dbPool),
	}
}
