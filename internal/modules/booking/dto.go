package booking

import (
	"time"

	"hotelbooking/internal/domain"
)

type CreateBookingRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
}

type UpdateBookingRequest struct {
	RoomNumber string     `json:"room_number"`
	CheckOut   *time.Time `json:"check_out"`
}

type CheckoutRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
}

type BookingResponse struct {
	ID         int64      `json:"id"`
	User       int64      `json:"user"`
	Room       int64      `json:"room"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	Status     string     `json:"status"`
	FinalPrice string     `json:"final_price"`
}

func toResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		User:       b.UserID,
		Room:       b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Status:     string(b.Status),
		FinalPrice: b.FinalPrice.StringFixed(2),
	}
}

func toResponseList(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toResponse(&bookings[i]))
	}
	return out
}
