package mapping

import (
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/models"
)

func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID:  d.NotificationID,
		TargetAccountID: d.TargetAccountID,
		Message:         d.Message,
		SenderName:      d.SenderName,
		SentAt:          d.Timestamp,
		IsRead:          d.IsRead,
	}
}

func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID:  m.NotificationID,
		TargetAccountID: m.TargetAccountID,
		Message:         m.Message,
		SenderName:      m.SenderName,
		Timestamp:       m.SentAt,
		IsRead:          m.IsRead,
	}
}

func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}

func ToDomainPresence(m models.Presence) domain.Presence {
	return domain.Presence{AccountID: m.AccountID, Online: m.Online, UpdatedAt: m.UpdatedAt}
}
