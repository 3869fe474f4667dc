package services

import (
	"fmt"
	"time"

	"github.com/visheshkakadiya/hotel-management/models"
	"gorm.io/gorm"
)

// ReconcileRoomStatuses re-derives every room's status from its booking
// records and writes the result back unconditionally. Full scan,
// read-then-write per room; idempotent, so it doubles as the repair
// path for any drift left behind by partial cancel failures.
func ReconcileRoomStatuses(db *gorm.DB) ([]models.Room, error) {
	now := time.Now()

	var rooms []models.Room
	if err := db.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	for _, room := range rooms {
		var count int64
		if err := db.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ? AND check_in_date <= ? AND check_out_date >= ?",
				room.ID,
				[]string{models.BookingStatusConfirmed, models.BookingStatusCompleted},
				now, now).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check occupancy for room %s: %w", room.RoomNo, err)
		}

		status := DeriveRoomStatus(count > 0)
		if err := db.Model(&models.Room{}).Where("id = ?", room.ID).
			Update("status", status).Error; err != nil {
			return nil, fmt.Errorf("failed to update status for room %s: %w", room.RoomNo, err)
		}
	}

	var updated []models.Room
	if err := db.Find(&updated).Error; err != nil {
		return nil, fmt.Errorf("failed to reload rooms: %w", err)
	}
	return updated, nil
}
