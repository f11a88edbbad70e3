package models

import "time"

// Presence is a row of the presence table, one per account.
type Presence struct {
	AccountID string    `db:"account_id"`
	Online    bool      `db:"online"`
	UpdatedAt time.Time `db:"updated_at"`
}
