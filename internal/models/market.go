package models

import "time"

type Market struct {
	MarketID  string    `db:"market_id"`
	Name      string    `db:"name"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}
