package models

import "time"

// Resource is a shared article, guide, or program clients can be pointed at.
// Resources are global, not owned by a user.
type Resource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:512" json:"description"`
	Category    string    `gorm:"size:64;not null" json:"category"` // employment, housing, health, education, etc.
	Date        string    `gorm:"type:date" json:"date"`
	URL         string    `gorm:"size:512" json:"url"`
	ReadTime    string    `gorm:"size:32" json:"readTime"`
	IsFeatured  bool      `gorm:"default:false" json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RecommendedResource decorates a Resource with the requesting user's bookmark state.
type RecommendedResource struct {
	Resource
	IsBookmarked bool `json:"isBookmarked"`
}
