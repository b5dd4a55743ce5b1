package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
)

type Booking struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	RoomID     int64           `json:"room_id"`
	CheckIn    time.Time       `json:"check_in"`
	CheckOut   *time.Time      `json:"check_out,omitempty"`
	Status     BookingStatus   `json:"status"`
	FinalPrice decimal.Decimal `json:"final_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Active reports whether the booking still occupies its room.
func (b *Booking) Active() bool {
	return b.Status == BookingCheckedIn
}
