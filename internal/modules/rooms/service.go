package rooms

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/shopspring/decimal"
)

// Service is the room catalog: plain CRUD plus the availability listing.
// Availability itself is owned by the booking lifecycle; the catalog only
// refuses to delete rooms that still have an active stay.
type Service struct {
	rooms    *repository.RoomRepository
	bookings *repository.BookingRepository
}

func NewService(rooms *repository.RoomRepository, bookings *repository.BookingRepository) *Service {
	return &Service{rooms: rooms, bookings: bookings}
}

func (s *Service) List(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) ListAvailable(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.ListAvailable(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, number string, price decimal.Decimal, isAvailable bool) (*domain.Room, error) {
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	room := &domain.Room{
		Number:      number,
		Price:       price,
		IsAvailable: isAvailable,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) Update(ctx context.Context, id int64, number string, price decimal.Decimal, isAvailable bool) (*domain.Room, error) {
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Number = number
	room.Price = price
	room.IsAvailable = isAvailable

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return err
	}

	active, err := s.bookings.CountActiveForRoom(ctx, room.ID)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.ErrRoomOccupied
	}

	return s.rooms.Delete(ctx, room.ID)
}
