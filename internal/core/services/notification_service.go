package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/platform/clock"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
	"github.com/google/uuid"
)

type notificationService struct {
	BaseService
	repo        portsrepo.NotificationRepository
	accountRepo portsrepo.AccountReader
	clock       clock.Clock
}

// NewNotificationService creates a new NotificationSvc.
func NewNotificationService(repo portsrepo.NotificationRepository, accounts portsrepo.AccountReader, clk clock.Clock, options ...ServiceOption) portssvc.NotificationSvc {
	return &notificationService{
		BaseService: newBase(options),
		repo:        repo,
		accountRepo: accounts,
		clock:       clk,
	}
}

var _ portssvc.NotificationSvc = (*notificationService)(nil)

func (s *notificationService) Send(ctx context.Context, actorID string, req dto.SendNotificationRequest) (*domain.Notification, error) {
	sender, err := s.Authorize(ctx, actorID, domain.CapManageAccounts)
	if err != nil {
		return nil, err
	}
	message := strings.TrimSpace(req.Message)
	if message == "" || utf8.RuneCountInString(message) > domain.MaxNotificationLength {
		return nil, fmt.Errorf("%w: message must be 1 to %d characters", apperrors.ErrValidation, domain.MaxNotificationLength)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, req.TargetAccountID); err != nil {
		return nil, err
	}

	n := domain.Notification{
		NotificationID:  uuid.NewString(),
		TargetAccountID: req.TargetAccountID,
		Message:         message,
		SenderName:      sender.DisplayName,
		Timestamp:       s.clock.Now(),
	}
	if err := s.repo.SaveNotification(ctx, n); err != nil {
		s.LogError(ctx, err, "Failed to save notification", slog.String("target_account_id", n.TargetAccountID))
		return nil, err
	}
	s.Publish(realtime.AccountTopic(n.TargetAccountID))
	s.LogInfo(ctx, "Notification sent",
		slog.String("notification_id", n.NotificationID),
		slog.String("target_account_id", n.TargetAccountID))
	return &n, nil
}

func (s *notificationService) ListOwn(ctx context.Context, accountID string) (*dto.ListNotificationsResponse, error) {
	list, err := s.repo.ListNotificationsByTarget(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications", slog.String("account_id", accountID))
		return nil, err
	}
	if list == nil {
		list = []domain.Notification{}
	}
	unread := 0
	for _, n := range list {
		if !n.IsRead {
			unread++
		}
	}
	return &dto.ListNotificationsResponse{Notifications: list, Unread: unread}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, accountID string, notificationID string) error {
	if err := s.repo.MarkNotificationRead(ctx, notificationID, accountID); err != nil {
		return err
	}
	s.Publish(realtime.AccountTopic(accountID))
	return nil
}
