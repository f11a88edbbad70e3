package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sub := f.hub.Subscribe(4, realtime.TopicMarkets)
	defer f.hub.Unsubscribe(sub)

	builtin := domain.BuiltinMarkets()
	list, err := f.svc.Market.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, builtin, list)

	m, err := f.svc.Market.Add(ctx, f.member.AccountID, dto.CreateMarketRequest{Name: "  Carrefour   Maadi "})
	require.NoError(t, err)
	assert.Equal(t, "Carrefour Maadi", m.Name)
	assert.Equal(t, f.member.AccountID, m.CreatedBy)
	assert.Equal(t, f.clock.Now(), m.CreatedAt)
	assert.Equal(t, realtime.TopicMarkets, expectEvent(t, sub).Topic)

	list, err = f.svc.Market.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(builtin)+1)
	assert.Equal(t, m.MarketID, list[len(list)-1].MarketID)

	tests := []struct {
		name    string
		actorID string
		market  string
		want    error
	}{
		{"same name other case", f.other.AccountID, "carrefour maadi", apperrors.ErrDuplicate},
		{"built-in name", f.admin.AccountID, builtin[0].Name, apperrors.ErrDuplicate},
		{"blank", f.member.AccountID, "   ", apperrors.ErrValidation},
		{"unknown actor", "missing", "Spinneys", apperrors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Market.Add(ctx, tt.actorID, dto.CreateMarketRequest{Name: tt.market})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
