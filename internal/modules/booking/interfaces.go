package booking

import (
	"context"

	"hotelbooking/internal/domain"
)

// TxRunner wraps a unit of work in one database transaction; every
// repository call made from fn must share it.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingRepository defines the booking store operations the lifecycle needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	GetActiveByUserAndRoomNumber(ctx context.Context, userID int64, roomNumber string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}

// RoomRegistry exposes room lookups plus the atomic availability toggles.
// Reserve must fail with domain.ErrRoomNotAvailable when it loses the race;
// Release is idempotent.
type RoomRegistry interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	Reserve(ctx context.Context, roomID int64) error
	Release(ctx context.Context, roomID int64) error
}
