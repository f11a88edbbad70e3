package dto

import "github.com/SscSPs/fieldops_console/internal/core/domain"

// SendNotificationRequest addresses a message to one account.
type SendNotificationRequest struct {
	TargetAccountID string `json:"targetAccountID" binding:"required"`
	Message         string `json:"message" binding:"required,min=1,max=1000"`
}

// ListNotificationsResponse wraps the caller's notifications.
type ListNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}
