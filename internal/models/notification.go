package models

import "time"

type Notification struct {
	NotificationID  string    `db:"notification_id"`
	TargetAccountID string    `db:"target_account_id"`
	Message         string    `db:"message"`
	SenderName      string    `db:"sender_name"`
	SentAt          time.Time `db:"sent_at"`
	IsRead          bool      `db:"is_read"`
}
