package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/visheshkakadiya/hotel-management/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Client-supplied totals are accepted when they agree with the
// server-computed quote to the cent.
const priceTolerance = 0.01

type BookRoomInput struct {
	CheckInDate    time.Time
	CheckOutDate   time.Time
	Guests         int
	SpecialRequest string
	// TotalPrice is the client's pre-computed total, if it sent one.
	// The server quote is authoritative either way.
	TotalPrice *float64
}

// BookRoom validates a proposed stay and creates a confirmed booking.
// The conflict check and the insert run in one transaction holding a
// row lock on the room, so two overlapping requests for the same room
// serialize instead of both passing the read-then-write check.
func BookRoom(db *gorm.DB, roomID, userID uuid.UUID, in BookRoomInput) (*models.Booking, error) {
	checkIn := DateOnly(in.CheckInDate)
	checkOut := DateOnly(in.CheckOutDate)
	today := DateOnly(time.Now())

	var booking models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, "id = ?", roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room: %w", err)
		}

		if checkIn.Before(today) || checkOut.Before(today) {
			return ErrDatesInPast
		}
		if !checkOut.After(checkIn) {
			return ErrCheckOutNotAfter
		}
		if in.Guests < 1 || in.Guests > room.Capacity {
			return ErrGuestCount
		}

		var existing []models.Booking
		if err := tx.
			Where("room_id = ? AND status IN ?", roomID,
				[]string{models.BookingStatusConfirmed, models.BookingStatusCompleted}).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load bookings for room: %w", err)
		}
		if HasConflict(checkIn, checkOut, existing) {
			return ErrDateConflict
		}

		quote := QuoteStay(room.Price, checkIn, checkOut)
		if in.TotalPrice != nil && math.Abs(*in.TotalPrice-quote.TotalPrice) > priceTolerance {
			return ErrPriceMismatch
		}

		booking = models.Booking{
			CheckInDate:    checkIn,
			CheckOutDate:   checkOut,
			Guests:         in.Guests,
			SpecialRequest: in.SpecialRequest,
			Status:         models.BookingStatusConfirmed,
			TotalPrice:     quote.TotalPrice,
			RoomID:         roomID,
			UserID:         userID,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking zeroes the price and frees the room. The two writes are
// sequential and unwrapped: if the room update is lost the reconciler
// repairs the status on its next pass.
func CancelBooking(db *gorm.DB, roomID, bookingID uuid.UUID) (*models.Booking, error) {
	var room models.Room
	if err := db.First(&room, "id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	var booking models.Booking
	if err := db.Preload("User").First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if err := db.Model(&models.Booking{}).Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"status":      models.BookingStatusCancelled,
			"total_price": 0,
		}).Error; err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if err := db.Model(&models.Room{}).Where("id = ?", roomID).
		Update("status", models.RoomStatusAvailable).Error; err != nil {
		return nil, fmt.Errorf("failed to release room: %w", err)
	}

	booking.Status = models.BookingStatusCancelled
	booking.TotalPrice = 0
	return &booking, nil
}

// CompletePastBookings marks every stay whose check-out has passed as
// completed and returns the number of rows touched. Safe to re-run.
func CompletePastBookings(db *gorm.DB) (int64, error) {
	now := time.Now()

	result := db.Model(&models.Booking{}).
		Where("check_out_date < ? AND status NOT IN ?", now,
			[]string{models.BookingStatusCancelled, models.BookingStatusCompleted}).
		Update("status", models.BookingStatusCompleted)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to complete past bookings: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// OccupiedDates returns the active date ranges for a room so clients
// can pre-check conflicts before submitting.
func OccupiedDates(db *gorm.DB, roomID uuid.UUID) ([]DateRange, error) {
	var bookings []models.Booking
	if err := db.
		Select("check_in_date", "check_out_date").
		Where("room_id = ? AND status IN ?", roomID,
			[]string{models.BookingStatusConfirmed, models.BookingStatusCompleted}).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load occupied dates: %w", err)
	}

	ranges := make([]DateRange, 0, len(bookings))
	for _, b := range bookings {
		ranges = append(ranges, DateRange{CheckInDate: b.CheckInDate, CheckOutDate: b.CheckOutDate})
	}
	return ranges, nil
}

type BookingSummary struct {
	ID           uuid.UUID `json:"id"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Guests       int       `json:"guests"`
	TotalPrice   float64   `json:"totalPrice"`
	Status       string    `json:"status"`
	RoomNo       string    `json:"roomNo"`
	RoomType     string    `json:"roomType"`
}

// BookingHistory returns all of a user's bookings joined to a minimal
// room projection. No pagination: the original surface returns the
// full set.
func BookingHistory(db *gorm.DB, userID uuid.UUID) ([]BookingSummary, error) {
	var bookings []models.Booking
	if err := db.
		Preload("Room").
		Where("user_id = ?", userID).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load booking history: %w", err)
	}

	history := make([]BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		history = append(history, BookingSummary{
			ID:           b.ID,
			CheckInDate:  b.CheckInDate,
			CheckOutDate: b.CheckOutDate,
			Guests:       b.Guests,
			TotalPrice:   b.TotalPrice,
			Status:       b.Status,
			RoomNo:       b.Room.RoomNo,
			RoomType:     b.Room.RoomType,
		})
	}
	return history, nil
}
