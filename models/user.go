package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a client enrolled in the program. Passwords are stored as bcrypt hashes only.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	PasswordHash   string    `gorm:"size:255" json:"-"`
	FirstName      string    `gorm:"size:64;not null" json:"firstName"`
	LastName       string    `gorm:"size:64;not null" json:"lastName"`
	Email          string    `gorm:"size:255" json:"email"`
	Role           string    `gorm:"size:32;default:'client'" json:"role"` // client, chw, peer_mentor, case_manager, admin
	AvatarInitials string    `gorm:"size:8" json:"avatarInitials"`
	Tier           string    `gorm:"size:16;default:'bronze'" json:"tier"` // bronze, silver, gold, platinum
	CreatedAt      time.Time `json:"createdAt"`
}

// BeforeCreate hook ensures the creation timestamp is set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	return nil
}
