package domain

import "errors"

var (
	ErrRoomNotFound     = errors.New("room does not exist")
	ErrRoomNumberTaken  = errors.New("room number already exists")
	ErrRoomNotAvailable = errors.New("room is not available")
	ErrRoomOccupied     = errors.New("room has an active booking")
	ErrPastDate         = errors.New("check-in date cannot be in the past")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingNotActive = errors.New("booking is not active")
)
