package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName      string    `gorm:"size:255;not null" json:"fullName"`
	Email         string    `gorm:"size:255;not null;unique" json:"email"`
	Password      string    `gorm:"not null" json:"-"`
	ContactNumber string    `gorm:"size:30;not null" json:"contactNumber"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	Role          string    `gorm:"size:20;not null;default:'user'" json:"role"`

	AvatarURL      string `gorm:"size:255;not null" json:"avatarUrl"`
	AvatarPublicID string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
