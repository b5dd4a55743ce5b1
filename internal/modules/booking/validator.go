package booking

import (
	"time"

	"hotelbooking/internal/domain"
)

// validateStay is the pure rule-checker for a prospective stay. The room must
// be a fresh read from the store (not a caller-held copy) so the availability
// check is not stale; callers run it inside the same transaction that
// reserves the room.
func validateStay(room *domain.Room, checkIn time.Time, checkOut *time.Time, now time.Time) error {
	if checkIn.IsZero() {
		checkIn = now
	}
	if dateOf(checkIn).Before(dateOf(now)) {
		return domain.ErrPastDate
	}
	if !room.IsAvailable {
		return domain.ErrRoomNotAvailable
	}
	if checkOut != nil && !checkIn.Before(*checkOut) {
		return domain.ErrInvalidDateRange
	}
	return nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
