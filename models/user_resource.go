package models

import "time"

// UserResource links a user to a resource, carrying the bookmark flag.
// The (user, resource) pair is unique: bookmarking twice updates the
// existing row instead of duplicating it.
type UserResource struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:uniq_user_resource" json:"userId"`
	ResourceID   uint      `gorm:"not null;uniqueIndex:uniq_user_resource" json:"resourceId"`
	IsBookmarked bool      `gorm:"default:false" json:"isBookmarked"`
	CreatedAt    time.Time `json:"createdAt"`
	User         User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Resource     Resource  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
