package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoomTypeStandard = "standard"
	RoomTypeDeluxe   = "deluxe"
	RoomTypeLuxury   = "luxury"
)

const (
	RoomStatusAvailable   = "available"
	RoomStatusMaintenance = "maintenance"
	RoomStatusOccupied    = "occupied"
)

type Room struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RoomNo   string    `gorm:"size:20;not null;unique" json:"roomNo"`
	RoomType string    `gorm:"size:20;not null;default:'standard'" json:"roomType"`

	RoomImageURL      string `gorm:"size:255;not null" json:"roomImageUrl"`
	RoomImagePublicID string `gorm:"size:255;not null" json:"-"`

	// Derived by the reconciler from booking state, except when an admin
	// parks the room in maintenance.
	Status string `gorm:"size:20;not null;default:'maintenance'" json:"status"`

	Price    float64 `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Capacity int     `gorm:"not null;default:0" json:"capacity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
