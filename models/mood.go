package models

import "time"

// Mood is a daily mood log entry.
type Mood struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Mood      string    `gorm:"size:32;not null" json:"mood"` // great, good, okay, low, struggling
	Emoji     string    `gorm:"size:16;not null" json:"emoji"`
	Notes     string    `gorm:"size:512" json:"notes"`
	Date      string    `gorm:"type:date;not null" json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
