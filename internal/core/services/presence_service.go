package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/platform/clock"
	"github.com/SscSPs/fieldops_console/internal/platform/metrics"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
)

// disconnectTimeout bounds the offline write made after a connection is gone.
const disconnectTimeout = 5 * time.Second

// presenceService counts live connections per account. The stored record is true while the
// count is positive; the last disconnect writes false.
//
// Lock order is account lock, then mu. The account lock is held across a count change and
// the write it implies, so the stored value always follows the latest count.
type presenceService struct {
	BaseService
	repo    portsrepo.PresenceRepository
	clock   clock.Clock
	metrics *metrics.Metrics

	mu          sync.Mutex
	connections map[string]*connectionSet
	accountMu   map[string]*sync.Mutex
	nextGen     uint64
}

// connectionSet counts the live connections of one account. A logout drops the set, and
// hooks of an older generation then release nothing.
type connectionSet struct {
	gen uint64
	n   int
}

// NewPresenceService creates a new PresenceSvc.
func NewPresenceService(repo portsrepo.PresenceRepository, clk clock.Clock, m *metrics.Metrics, options ...ServiceOption) portssvc.PresenceSvc {
	return &presenceService{
		BaseService: newBase(options),
		repo:        repo,
		clock:       clk,
		metrics:     m,
		connections: make(map[string]*connectionSet),
		accountMu:   make(map[string]*sync.Mutex),
	}
}

var _ portssvc.PresenceSvc = (*presenceService)(nil)

// lockAccount serialises presence writes for one account and returns the unlock func.
func (s *presenceService) lockAccount(accountID string) func() {
	s.mu.Lock()
	l, ok := s.accountMu[accountID]
	if !ok {
		l = &sync.Mutex{}
		s.accountMu[accountID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *presenceService) Connect(ctx context.Context, accountID string) (func(), error) {
	unlock := s.lockAccount(accountID)
	gen, err := s.connect(ctx, accountID)
	unlock()
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Connection registered", slog.String("account_id", accountID))

	var once sync.Once
	return func() {
		once.Do(func() { s.disconnect(ctx, accountID, gen) })
	}, nil
}

// connect must be called with the account lock held.
func (s *presenceService) connect(ctx context.Context, accountID string) (uint64, error) {
	s.mu.Lock()
	set, ok := s.connections[accountID]
	if !ok {
		s.nextGen++
		set = &connectionSet{gen: s.nextGen}
		s.connections[accountID] = set
	}
	set.n++
	first, gen := set.n == 1, set.gen
	s.reportOnline()
	s.mu.Unlock()

	if first {
		if err := s.write(ctx, accountID, true); err != nil {
			s.release(accountID, gen)
			return 0, err
		}
	}
	return gen, nil
}

func (s *presenceService) disconnect(ctx context.Context, accountID string, gen uint64) {
	unlock := s.lockAccount(accountID)
	defer unlock()

	if !s.release(accountID, gen) {
		return
	}
	// the request context is usually already cancelled here
	dctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := s.write(dctx, accountID, false); err != nil {
		s.LogError(ctx, err, "Failed to record disconnect", slog.String("account_id", accountID))
	}
}

// release drops one connection and reports whether it was the last one.
func (s *presenceService) release(accountID string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.connections[accountID]
	if !ok || set.gen != gen {
		// cleared by a logout since this connection was made
		return false
	}
	set.n--
	if set.n > 0 {
		return false
	}
	delete(s.connections, accountID)
	s.reportOnline()
	return true
}

func (s *presenceService) Logout(ctx context.Context, accountID string) error {
	unlock := s.lockAccount(accountID)
	defer unlock()

	s.mu.Lock()
	delete(s.connections, accountID)
	s.reportOnline()
	s.mu.Unlock()

	if err := s.write(ctx, accountID, false); err != nil {
		s.LogError(ctx, err, "Failed to record logout", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account logged out", slog.String("account_id", accountID))
	return nil
}

func (s *presenceService) Snapshot(ctx context.Context, viewer *domain.Account) (map[string]domain.Presence, error) {
	out := make(map[string]domain.Presence)
	if viewer == nil {
		return out, nil
	}
	if !viewer.IsAdmin() {
		p, err := s.repo.GetPresence(ctx, viewer.AccountID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out[p.AccountID] = *p
		return out, nil
	}
	all, err := s.repo.ListPresence(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list presence")
		return nil, err
	}
	for _, p := range all {
		out[p.AccountID] = p
	}
	return out, nil
}

func (s *presenceService) write(ctx context.Context, accountID string, online bool) error {
	err := s.repo.SetPresence(ctx, domain.Presence{
		AccountID: accountID,
		Online:    online,
		UpdatedAt: s.clock.Now(),
	})
	if err != nil {
		return err
	}
	s.Publish(realtime.TopicPresence)
	return nil
}

// reportOnline must be called with mu held.
func (s *presenceService) reportOnline() {
	s.metrics.SetOnline(len(s.connections))
}
