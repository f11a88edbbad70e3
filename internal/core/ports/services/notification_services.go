package services

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/dto"
)

// NotificationSvc delivers administrator messages to accounts.
type NotificationSvc interface {
	Send(ctx context.Context, actorID string, req dto.SendNotificationRequest) (*domain.Notification, error)
	ListOwn(ctx context.Context, accountID string) (*dto.ListNotificationsResponse, error)
	MarkRead(ctx context.Context, accountID string, notificationID string) error
}
