package booking

import (
	"testing"
	"time"

	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testRoom(available bool) *domain.Room {
	return &domain.Room{
		ID:          1,
		Number:      "101",
		Price:       decimal.RequireFromString("100.00"),
		IsAvailable: available,
	}
}

func TestValidateStay(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("ok without check-out", func(t *testing.T) {
		assert.NoError(t, validateStay(testRoom(true), now, nil, now))
	})

	t.Run("zero check-in defaults to now", func(t *testing.T) {
		assert.NoError(t, validateStay(testRoom(true), time.Time{}, nil, now))
	})

	t.Run("check-in earlier today is not a past date", func(t *testing.T) {
		earlier := time.Date(2026, 3, 15, 0, 30, 0, 0, time.UTC)
		assert.NoError(t, validateStay(testRoom(true), earlier, nil, now))
	})

	t.Run("check-in yesterday fails", func(t *testing.T) {
		yesterday := now.Add(-24 * time.Hour)
		assert.ErrorIs(t, validateStay(testRoom(true), yesterday, nil, now), domain.ErrPastDate)
	})

	t.Run("unavailable room fails", func(t *testing.T) {
		assert.ErrorIs(t, validateStay(testRoom(false), now, nil, now), domain.ErrRoomNotAvailable)
	})

	t.Run("check-out before check-in fails", func(t *testing.T) {
		out := now.Add(-time.Hour)
		assert.ErrorIs(t, validateStay(testRoom(true), now, &out, now), domain.ErrInvalidDateRange)
	})

	t.Run("check-out equal to check-in fails", func(t *testing.T) {
		out := now
		assert.ErrorIs(t, validateStay(testRoom(true), now, &out, now), domain.ErrInvalidDateRange)
	})

	t.Run("valid check-out passes", func(t *testing.T) {
		out := now.Add(48 * time.Hour)
		assert.NoError(t, validateStay(testRoom(true), now, &out, now))
	})
}
