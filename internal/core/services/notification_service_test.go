package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	n, err := f.svc.Notification.Send(ctx, f.admin.AccountID, dto.SendNotificationRequest{
		TargetAccountID: f.member.AccountID,
		Message:         "Inventory due Thursday",
	})
	require.NoError(t, err)
	assert.Equal(t, f.admin.DisplayName, n.SenderName)
	assert.False(t, n.IsRead)

	_, err = f.svc.Notification.Send(ctx, f.member.AccountID, dto.SendNotificationRequest{
		TargetAccountID: f.other.AccountID,
		Message:         "hi",
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = f.svc.Notification.Send(ctx, f.admin.AccountID, dto.SendNotificationRequest{
		TargetAccountID: f.member.AccountID,
		Message:         strings.Repeat("ب", 1001),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.Notification.Send(ctx, f.admin.AccountID, dto.SendNotificationRequest{
		TargetAccountID: "missing",
		Message:         "hello",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	list, err := f.svc.Notification.ListOwn(ctx, f.member.AccountID)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, 1, list.Unread)

	// only the recipient can mark it read
	err = f.svc.Notification.MarkRead(ctx, f.other.AccountID, n.NotificationID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, f.svc.Notification.MarkRead(ctx, f.member.AccountID, n.NotificationID))
	list, err = f.svc.Notification.ListOwn(ctx, f.member.AccountID)
	require.NoError(t, err)
	assert.Zero(t, list.Unread)
	assert.True(t, list.Notifications[0].IsRead)

	empty, err := f.svc.Notification.ListOwn(ctx, f.other.AccountID)
	require.NoError(t, err)
	assert.NotNil(t, empty.Notifications)
	assert.Empty(t, empty.Notifications)
}
