package models

import "time"

// SccsScore is one Social Capital Credit Score snapshot per user per date.
// The four sub-scores are each bounded to [0,30] by convention; the total
// score is stored as-is and is not derived from them.
type SccsScore struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Score       int       `gorm:"not null" json:"score"`
	Consistency int       `gorm:"not null" json:"consistency"`
	Engagement  int       `gorm:"not null" json:"engagement"`
	Milestones  int       `gorm:"not null" json:"milestones"`
	PeerSupport int       `gorm:"not null" json:"peerSupport"`
	Date        string    `gorm:"type:date;not null" json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
