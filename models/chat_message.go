package models

import "time"

// ChatMessage is one turn in an AI companion conversation.
type ChatMessage struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"userId"`
	Role          string    `gorm:"size:16;not null" json:"role"` // user or assistant
	Content       string    `gorm:"type:text;not null" json:"content"`
	ChatSessionID string    `gorm:"size:64;index;not null" json:"chatSessionId"`
	CreatedAt     time.Time `json:"createdAt"`
	User          User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
