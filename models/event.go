package models

import "time"

// Event is a community event the user can attend.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:512" json:"description"`
	Date        string    `gorm:"type:date;not null" json:"date"`
	StartTime   string    `gorm:"size:16" json:"startTime"`
	EndTime     string    `gorm:"size:16" json:"endTime"`
	Location    string    `gorm:"size:255" json:"location"`
	Status      string    `gorm:"size:16;default:'upcoming'" json:"status"` // upcoming, confirmed, cancelled
	CreatedAt   time.Time `json:"createdAt"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
