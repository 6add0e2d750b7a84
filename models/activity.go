package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity types
const (
	ActivityUser    = "user"
	ActivityMovie   = "movie"
	ActivityComment = "comment"
	ActivityPremium = "premium"
	ActivitySystem  = "system"
)

// Activity is an append-only record shown in the admin activity feed.
type Activity struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Type      string         `json:"type" gorm:"type:varchar(50);not null"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Activity) TableName() string {
	return "activities"
}
