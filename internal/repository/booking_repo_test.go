package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkIn(t *testing.T, bookings *BookingRepository, userID, roomID int64) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		UserID:     userID,
		RoomID:     roomID,
		CheckIn:    time.Now().UTC(),
		Status:     domain.BookingCheckedIn,
		FinalPrice: decimal.Zero,
	}
	require.NoError(t, bookings.Create(context.Background(), b))
	return b
}

func TestBookingRepository_OwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	roomsRepo := NewRoomRepository(db)
	bookings := NewBookingRepository(db)
	ctx := context.Background()

	room := createRoom(t, roomsRepo, "101", "100.00", true)
	b := checkIn(t, bookings, 1, room.ID)

	got, err := bookings.GetByIDForUser(ctx, b.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	// a different user sees the same 404 as a missing booking
	_, err = bookings.GetByIDForUser(ctx, b.ID, 2)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	_, err = bookings.GetByIDForUser(ctx, 9999, 1)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_GetActiveByUserAndRoomNumber(t *testing.T) {
	db := newTestDB(t)
	roomsRepo := NewRoomRepository(db)
	bookings := NewBookingRepository(db)
	ctx := context.Background()

	room := createRoom(t, roomsRepo, "101", "100.00", true)
	b := checkIn(t, bookings, 1, room.ID)

	got, err := bookings.GetActiveByUserAndRoomNumber(ctx, 1, "101")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	// unknown room and foreign user both read as missing
	_, err = bookings.GetActiveByUserAndRoomNumber(ctx, 1, "999")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	_, err = bookings.GetActiveByUserAndRoomNumber(ctx, 2, "101")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	// after checkout there is no active stay anymore
	now := time.Now().UTC()
	b.CheckOut = &now
	b.Status = domain.BookingCheckedOut
	b.FinalPrice = decimal.RequireFromString("100.00")
	require.NoError(t, bookings.Update(ctx, b))

	_, err = bookings.GetActiveByUserAndRoomNumber(ctx, 1, "101")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_CountActiveForRoom(t *testing.T) {
	db := newTestDB(t)
	roomsRepo := NewRoomRepository(db)
	bookings := NewBookingRepository(db)
	ctx := context.Background()

	room := createRoom(t, roomsRepo, "101", "100.00", true)

	cnt, err := bookings.CountActiveForRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Zero(t, cnt)

	checkIn(t, bookings, 1, room.ID)

	cnt, err = bookings.CountActiveForRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func TestTxRunner_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	roomsRepo := NewRoomRepository(db)
	bookings := NewBookingRepository(db)
	runner := NewTxRunner(db)
	ctx := context.Background()

	room := createRoom(t, roomsRepo, "101", "100.00", true)

	boom := errors.New("boom")
	err := runner.WithTx(ctx, func(txCtx context.Context) error {
		if err := roomsRepo.Reserve(txCtx, room.ID); err != nil {
			return err
		}
		b := &domain.Booking{
			UserID:     1,
			RoomID:     room.ID,
			CheckIn:    time.Now().UTC(),
			Status:     domain.BookingCheckedIn,
			FinalPrice: decimal.Zero,
		}
		if err := bookings.Create(txCtx, b); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// both writes rolled back together
	got, err := roomsRepo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)

	list, err := bookings.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTxRunner_NestedReusesTransaction(t *testing.T) {
	db := newTestDB(t)
	runner := NewTxRunner(db)

	var calls int
	err := runner.WithTx(context.Background(), func(outer context.Context) error {
		calls++
		return runner.WithTx(outer, func(inner context.Context) error {
			calls++
			assert.Same(t, txFromContext(outer), txFromContext(inner))
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
