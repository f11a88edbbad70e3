package domain

import "time"

// Presence is the latest online state of an account. Only the most recent value is kept.
type Presence struct {
	AccountID string    `json:"accountID"`
	Online    bool      `json:"online"`
	UpdatedAt time.Time `json:"updatedAt"`
}
