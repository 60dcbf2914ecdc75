package models

import "time"

// AiInsight stores one generated progress analysis. Insights younger than
// 24 hours are served from storage instead of regenerating.
type AiInsight struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"index;not null" json:"userId"`
	Insights            string    `gorm:"type:text;not null" json:"insights"`
	StrengthsIdentified []string  `gorm:"type:json;serializer:json" json:"strengthsIdentified"`
	SuggestedResources  []string  `gorm:"type:json;serializer:json" json:"suggestedResources"`
	CreatedAt           time.Time `json:"createdAt"`
	User                User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
