package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CheckInDate    time.Time `gorm:"not null" json:"checkInDate"`
	CheckOutDate   time.Time `gorm:"not null" json:"checkOutDate"`
	Guests         int       `gorm:"not null" json:"guests"`
	SpecialRequest string    `gorm:"type:text" json:"specialRequest"`
	Status         string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	TotalPrice     float64   `gorm:"type:numeric(10,2);not null;default:0" json:"totalPrice"`

	RoomID uuid.UUID `gorm:"type:uuid;not null" json:"roomId"`
	UserID uuid.UUID `gorm:"type:uuid;not null" json:"userId"`

	ReceiptURL *string `gorm:"size:255" json:"receiptUrl,omitempty"`

	Room Room `gorm:"foreignkey:RoomID" json:"room,omitempty"`
	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
