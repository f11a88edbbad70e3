package domain

import "time"

// MaxNotificationLength bounds the message body in characters.
const MaxNotificationLength = 1000

// Notification is a message an administrator addressed to one account.
type Notification struct {
	NotificationID  string    `json:"notificationID"`
	TargetAccountID string    `json:"targetAccountID"`
	Message         string    `json:"message"`
	SenderName      string    `json:"senderName"`
	Timestamp       time.Time `json:"timestamp"`
	IsRead          bool      `json:"isRead"`
}
