package models

import "time"

// CareTeamMember is a support-staff contact assigned to a user.
type CareTeamMember struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"index;not null" json:"userId"`
	TeamMemberName     string    `gorm:"size:128;not null" json:"teamMemberName"`
	TeamMemberRole     string    `gorm:"size:64;not null" json:"teamMemberRole"`
	TeamMemberInitials string    `gorm:"size:8;not null" json:"teamMemberInitials"`
	ContactEmail       string    `gorm:"size:255" json:"contactEmail"`
	ContactPhone       string    `gorm:"size:32" json:"contactPhone"`
	CreatedAt          time.Time `json:"createdAt"`
	User               User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
