package services

import (
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/platform/clock"
	"github.com/SscSPs/fieldops_console/internal/platform/config"
	"github.com/SscSPs/fieldops_console/internal/platform/metrics"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, hub realtime.Publisher, clk clock.Clock, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The resolver reads repositories directly, so every other service can depend on it.
	container.Permission = NewPermissionService(repos.AccountRepo, repos.PolicyRepo)

	opts := []ServiceOption{
		WithPermissions(container.Permission),
		WithPublisher(hub),
	}

	container.Policy = NewPolicyService(repos.PolicyRepo, clk, opts...)
	container.Account = NewAccountService(repos.AccountRepo, clk, opts...)
	container.Presence = NewPresenceService(repos.PresenceRepo, clk, m, opts...)
	container.Auth = NewAuthService(cfg, repos.AccountRepo, container.Presence, clk)
	container.Ledger = NewLedgerService(repos.AccountRepo, repos.LedgerRepo, clk, m, opts...)
	container.Record = NewRecordService(repos.SaleRepo, repos.InventoryRepo, repos.CompetitorRepo, clk, cfg.OwnCompanyName, opts...)
	container.Notification = NewNotificationService(repos.NotificationRepo, repos.AccountRepo, clk, opts...)
	container.Market = NewMarketService(repos.MarketRepo, repos.AccountRepo, clk, opts...)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade = (*accountService)(nil)
	_ portssvc.LedgerSvcFacade  = (*ledgerService)(nil)
	_ portssvc.RecordSvcFacade  = (*recordService)(nil)
)
