package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

func (s *Store) SaveNotification(ctx context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notifications[n.NotificationID]; ok {
		return fmt.Errorf("%w: notification %s", apperrors.ErrDuplicate, n.NotificationID)
	}
	s.notifications[n.NotificationID] = n
	return nil
}

func (s *Store) ListNotificationsByTarget(ctx context.Context, accountID string) ([]domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, 0)
	for _, n := range s.notifications {
		if n.TargetAccountID == accountID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, notificationID string, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[notificationID]
	if !ok || n.TargetAccountID != accountID {
		return apperrors.ErrNotFound
	}
	n.IsRead = true
	s.notifications[notificationID] = n
	return nil
}
