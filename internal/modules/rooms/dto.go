package rooms

import (
	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
)

type RoomRequest struct {
	Number      string           `json:"number" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	IsAvailable *bool            `json:"is_available"`
}

type RoomResponse struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"`
	Price       string `json:"price"`
	IsAvailable bool   `json:"is_available"`
}

func toResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Number:      r.Number,
		Price:       r.Price.StringFixed(2),
		IsAvailable: r.IsAvailable,
	}
}

func toResponseList(list []domain.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(list))
	for i := range list {
		out = append(out, toResponse(&list[i]))
	}
	return out
}
