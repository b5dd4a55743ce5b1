package booking

import (
	"context"
	"time"

	"hotelbooking/internal/clock"
	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
)

// Service is the booking lifecycle manager. Every mutating operation runs as
// one transaction so the room availability flag and the booking record can
// never diverge on partial failure.
type Service struct {
	tx       TxRunner
	bookings BookingRepository
	rooms    RoomRegistry
	clock    clock.Clock
}

func NewService(tx TxRunner, bookings BookingRepository, rooms RoomRegistry, clk clock.Clock) *Service {
	return &Service{
		tx:       tx,
		bookings: bookings,
		rooms:    rooms,
		clock:    clk,
	}
}

// CheckIn creates an active booking for the caller and marks the room
// unavailable. The room is resolved and validated inside the transaction
// that reserves it; losing the reserve race surfaces as
// domain.ErrRoomNotAvailable with nothing persisted.
func (s *Service) CheckIn(ctx context.Context, userID int64, roomNumber string) (*domain.Booking, error) {
	var result *domain.Booking
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		room, err := s.rooms.GetByNumber(txCtx, roomNumber)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if err := validateStay(room, now, nil, now); err != nil {
			return err
		}
		if err := s.rooms.Reserve(txCtx, room.ID); err != nil {
			return err
		}

		b := &domain.Booking{
			UserID:     userID,
			RoomID:     room.ID,
			CheckIn:    now,
			Status:     domain.BookingCheckedIn,
			FinalPrice: decimal.Zero,
		}
		if err := s.bookings.Create(txCtx, b); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	return s.bookings.GetByIDForUser(ctx, bookingID, userID)
}

type UpdateInput struct {
	RoomNumber string     // new room number; empty means keep the current room
	CheckOut   *time.Time // planned check-out; nil means leave unset
}

// Update reassigns an active booking to another room and/or records a
// planned check-out. A room change releases the old room and reserves the
// new one in the same transaction, so no interleaving can observe both or
// neither reserved. Status and final price are not updatable.
func (s *Service) Update(ctx context.Context, bookingID, userID int64, in UpdateInput) (*domain.Booking, error) {
	var result *domain.Booking
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		b, err := s.bookings.GetByIDForUser(txCtx, bookingID, userID)
		if err != nil {
			return err
		}
		if !b.Active() {
			return domain.ErrBookingNotActive
		}

		if in.CheckOut != nil {
			if !b.CheckIn.Before(*in.CheckOut) {
				return domain.ErrInvalidDateRange
			}
			b.CheckOut = in.CheckOut
		}

		if in.RoomNumber != "" {
			current, err := s.rooms.GetByID(txCtx, b.RoomID)
			if err != nil {
				return err
			}
			if in.RoomNumber != current.Number {
				next, err := s.rooms.GetByNumber(txCtx, in.RoomNumber)
				if err != nil {
					return err
				}
				if err := validateStay(next, b.CheckIn, b.CheckOut, s.clock.Now()); err != nil {
					return err
				}
				if err := s.rooms.Release(txCtx, current.ID); err != nil {
					return err
				}
				if err := s.rooms.Reserve(txCtx, next.ID); err != nil {
					return err
				}
				b.RoomID = next.ID
			}
		}

		if err := s.bookings.Update(txCtx, b); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete cancels the caller's booking. An active booking gives its room
// back; a checked-out one leaves availability alone, since the room may
// already be occupied by someone else.
func (s *Service) Delete(ctx context.Context, bookingID, userID int64) error {
	return s.tx.WithTx(ctx, func(txCtx context.Context) error {
		b, err := s.bookings.GetByIDForUser(txCtx, bookingID, userID)
		if err != nil {
			return err
		}
		if b.Active() {
			if err := s.rooms.Release(txCtx, b.RoomID); err != nil {
				return err
			}
		}
		return s.bookings.Delete(txCtx, b.ID)
	})
}

// CheckOut finishes the caller's active stay in the given room: stamps the
// check-out time, computes the final price exactly once and releases the
// room, all in one transaction.
func (s *Service) CheckOut(ctx context.Context, userID int64, roomNumber string) (*domain.Booking, error) {
	var result *domain.Booking
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		b, err := s.bookings.GetActiveByUserAndRoomNumber(txCtx, userID, roomNumber)
		if err != nil {
			return err
		}
		room, err := s.rooms.GetByID(txCtx, b.RoomID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		b.CheckOut = &now
		b.Status = domain.BookingCheckedOut
		b.FinalPrice = stayPrice(room.Price, b.CheckIn, now)

		if err := s.rooms.Release(txCtx, room.ID); err != nil {
			return err
		}
		if err := s.bookings.Update(txCtx, b); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
