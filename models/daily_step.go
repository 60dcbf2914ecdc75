package models

import "time"

// DailyStep is a single user-defined to-do item contributing to engagement.
type DailyStep struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:512" json:"description"`
	Completed   bool      `gorm:"default:false" json:"completed"`
	DueDate     string    `gorm:"type:date;not null" json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
