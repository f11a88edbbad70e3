package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	PolicyRepo       PolicyRepository
	LedgerRepo       LeaveLedgerRepositoryFacade
	PresenceRepo     PresenceRepository
	SaleRepo         SaleRepository
	InventoryRepo    InventoryRepository
	CompetitorRepo   CompetitorPriceRepository
	NotificationRepo NotificationRepository
	MarketRepo       MarketRepository
}
