package services

import (
	"math"
	"time"

	"github.com/visheshkakadiya/hotel-management/models"
)

// TaxRate is applied on top of the room rate for every stay.
const TaxRate = 0.15

type StayQuote struct {
	Nights     int     `json:"nights"`
	RoomRate   float64 `json:"roomRate"`
	Tax        float64 `json:"tax"`
	TotalPrice float64 `json:"totalPrice"`
}

type DateRange struct {
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
}

// DateOnly strips the time-of-day so all stay math works on whole days.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back stays sharing a boundary day
// do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// NightsBetween rounds partial days up, so any positive stay is at
// least one night.
func NightsBetween(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func QuoteStay(pricePerNight float64, checkIn, checkOut time.Time) StayQuote {
	nights := NightsBetween(checkIn, checkOut)
	roomRate := float64(nights) * pricePerNight
	tax := roomRate * TaxRate
	return StayQuote{
		Nights:     nights,
		RoomRate:   roomRate,
		Tax:        tax,
		TotalPrice: roomRate + tax,
	}
}

// IsActiveBookingStatus reports whether a booking counts toward
// occupancy and conflict checks.
func IsActiveBookingStatus(status string) bool {
	return status == models.BookingStatusConfirmed || status == models.BookingStatusCompleted
}

// HasConflict checks a proposed stay against existing bookings.
// Cancelled and pending bookings never conflict.
func HasConflict(checkIn, checkOut time.Time, existing []models.Booking) bool {
	for _, b := range existing {
		if !IsActiveBookingStatus(b.Status) {
			continue
		}
		if Overlaps(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
			return true
		}
	}
	return false
}

// IsOccupiedNow reports whether any active booking covers now
// (checkIn <= now <= checkOut, both ends inclusive to match how the
// occupancy window has always been read).
func IsOccupiedNow(bookings []models.Booking, now time.Time) bool {
	for _, b := range bookings {
		if !IsActiveBookingStatus(b.Status) {
			continue
		}
		if !b.CheckInDate.After(now) && !b.CheckOutDate.Before(now) {
			return true
		}
	}
	return false
}

// DeriveRoomStatus maps current occupancy to a room status. An
// unoccupied room always comes back available, even if it was parked in
// maintenance; the reconciler has behaved that way since the first
// release and callers depend on it.
func DeriveRoomStatus(occupiedNow bool) string {
	if occupiedNow {
		return models.RoomStatusOccupied
	}
	return models.RoomStatusAvailable
}
