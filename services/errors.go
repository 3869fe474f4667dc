package services

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrDatesInPast      = errors.New("cannot book dates in the past")
	ErrCheckOutNotAfter = errors.New("check-out date must be after check-in date")
	ErrGuestCount       = errors.New("guest count must be between 1 and the room capacity")
	ErrDateConflict     = errors.New("selected dates conflict with an existing booking")
	ErrPriceMismatch    = errors.New("total price does not match the server-computed price")
	ErrBookingNotActive = errors.New("booking is not confirmed or completed")
	ErrNotBookingOwner  = errors.New("booking belongs to another user")
)
