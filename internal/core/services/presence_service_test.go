package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	"github.com/SscSPs/fieldops_console/internal/core/services"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func online(t *testing.T, f *fixture, accountID string) bool {
	t.Helper()
	p, err := f.store.GetPresence(context.Background(), accountID)
	require.NoError(t, err)
	return p.Online
}

func TestPresence_DisconnectFlipsOffline(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	sub := f.hub.Subscribe(8, realtime.TopicPresence)
	defer f.hub.Unsubscribe(sub)

	disconnect, err := f.svc.Presence.Connect(ctx, f.member.AccountID)
	require.NoError(t, err)
	assert.True(t, online(t, f, f.member.AccountID))
	assert.Equal(t, realtime.TopicPresence, expectEvent(t, sub).Topic)

	// the connection drops: request context gone, hook runs anyway
	cancel()
	disconnect()
	assert.False(t, online(t, f, f.member.AccountID))
	assert.Equal(t, realtime.TopicPresence, expectEvent(t, sub).Topic)

	// running the hook again changes nothing
	disconnect()
	assert.False(t, online(t, f, f.member.AccountID))
}

func TestPresence_LastConnectionWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Presence.Connect(ctx, f.member.AccountID)
	require.NoError(t, err)
	second, err := f.svc.Presence.Connect(ctx, f.member.AccountID)
	require.NoError(t, err)

	first()
	assert.True(t, online(t, f, f.member.AccountID), "another tab is still open")
	second()
	assert.False(t, online(t, f, f.member.AccountID))
}

func TestPresence_LogoutClearsConnections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	disconnect, err := f.svc.Presence.Connect(ctx, f.member.AccountID)
	require.NoError(t, err)
	require.NoError(t, f.svc.Presence.Logout(ctx, f.member.AccountID))
	assert.False(t, online(t, f, f.member.AccountID))

	reconnect, err := f.svc.Presence.Connect(ctx, f.member.AccountID)
	require.NoError(t, err)
	// the stale hook from before logout must not knock the new connection offline
	disconnect()
	assert.True(t, online(t, f, f.member.AccountID))
	reconnect()
	assert.False(t, online(t, f, f.member.AccountID))
}

func TestPresence_Snapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.svc.Presence.Snapshot(ctx, &f.member)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = f.svc.Presence.Connect(ctx, f.member.AccountID)
	require.NoError(t, err)
	_, err = f.svc.Presence.Connect(ctx, f.other.AccountID)
	require.NoError(t, err)

	all, err := f.svc.Presence.Snapshot(ctx, &f.admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.True(t, all[f.other.AccountID].Online)

	own, err := f.svc.Presence.Snapshot(ctx, &f.member)
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Presence{f.member.AccountID: own[f.member.AccountID]}, own)
	assert.True(t, own[f.member.AccountID].Online)

	none, err := f.svc.Presence.Snapshot(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// slowOfflineRepo holds the first offline write until release is closed.
type slowOfflineRepo struct {
	portsrepo.PresenceRepository
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *slowOfflineRepo) SetPresence(ctx context.Context, p domain.Presence) error {
	if !p.Online {
		held := false
		r.once.Do(func() { held = true })
		if held {
			close(r.entered)
			<-r.release
		}
	}
	return r.PresenceRepository.SetPresence(ctx, p)
}

func TestPresence_ReloadDuringOfflineWriteStaysOnline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := &slowOfflineRepo{
		PresenceRepository: f.store,
		entered:            make(chan struct{}),
		release:            make(chan struct{}),
	}
	presence := services.NewPresenceService(repo, f.clock, nil)

	oldTab, err := presence.Connect(ctx, f.member.AccountID)
	require.NoError(t, err)

	oldClosed := make(chan struct{})
	go func() {
		oldTab()
		close(oldClosed)
	}()
	<-repo.entered

	type connected struct {
		disconnect func()
		err        error
	}
	newTab := make(chan connected, 1)
	go func() {
		d, err := presence.Connect(ctx, f.member.AccountID)
		newTab <- connected{d, err}
	}()

	select {
	case <-newTab:
		t.Fatal("new connection wrote while the offline write was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(repo.release)
	<-oldClosed
	reload := <-newTab
	require.NoError(t, reload.err)
	assert.True(t, online(t, f, f.member.AccountID), "the reloaded tab is live")

	reload.disconnect()
	assert.False(t, online(t, f, f.member.AccountID))
}
