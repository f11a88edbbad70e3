package repositories

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// NotificationRepository defines persistence for account notifications
type NotificationRepository interface {
	SaveNotification(ctx context.Context, n domain.Notification) error

	// ListNotificationsByTarget returns the notifications addressed to accountID, newest first.
	ListNotificationsByTarget(ctx context.Context, accountID string) ([]domain.Notification, error)

	// MarkNotificationRead sets the read flag. It returns apperrors.ErrNotFound when the
	// notification does not exist or is addressed to another account.
	MarkNotificationRead(ctx context.Context, notificationID string, accountID string) error
}
