package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room is a bookable hotel room. IsAvailable is kept in lockstep with
// CHECKED_IN bookings: false exactly while one active booking references
// the room.
type Room struct {
	ID          int64           `json:"id"`
	Number      string          `json:"number"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
