package memory

import (
	"sync"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
)

// Store is an in-process implementation of every repository port. One mutex guards all
// collections, so each method is a single critical section.
type Store struct {
	mu sync.Mutex

	accounts      map[string]domain.Account
	policy        *domain.PolicyPatch
	ledger        map[string]domain.LeaveTransaction
	presence      map[string]domain.Presence
	sales         map[string]domain.SaleRecord
	inventory     map[string]domain.InventoryRecord
	competitor    map[string]domain.CompetitorPriceRecord
	notifications map[string]domain.Notification
	markets       map[string]domain.Market
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts:      make(map[string]domain.Account),
		ledger:        make(map[string]domain.LeaveTransaction),
		presence:      make(map[string]domain.Presence),
		sales:         make(map[string]domain.SaleRecord),
		inventory:     make(map[string]domain.InventoryRecord),
		competitor:    make(map[string]domain.CompetitorPriceRecord),
		notifications: make(map[string]domain.Notification),
		markets:       make(map[string]domain.Market),
	}
}

// NewRepositoryProvider wires a fresh Store into every repository slot.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return NewStore().Provider()
}

// Provider exposes s through the repository ports.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      s,
		PolicyRepo:       s,
		LedgerRepo:       s,
		PresenceRepo:     s,
		SaleRepo:         s,
		InventoryRepo:    s,
		CompetitorRepo:   s,
		NotificationRepo: s,
		MarketRepo:       s,
	}
}

var (
	_ portsrepo.AccountRepositoryFacade     = (*Store)(nil)
	_ portsrepo.PolicyRepository            = (*Store)(nil)
	_ portsrepo.LeaveLedgerRepositoryFacade = (*Store)(nil)
	_ portsrepo.PresenceRepository          = (*Store)(nil)
	_ portsrepo.SaleRepository              = (*Store)(nil)
	_ portsrepo.InventoryRepository         = (*Store)(nil)
	_ portsrepo.CompetitorPriceRepository   = (*Store)(nil)
	_ portsrepo.NotificationRepository      = (*Store)(nil)
	_ portsrepo.MarketRepository            = (*Store)(nil)
)
