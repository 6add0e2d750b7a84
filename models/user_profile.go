package models

import (
	"gorm.io/gorm"
)

// UserProfile stores per-user preferences. Every user has exactly one
// profile; CreateUserWithProfile creates both rows in a single transaction.
type UserProfile struct {
	gorm.Model
	UserID               uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Language             string `json:"language" gorm:"type:varchar(10);default:'en'"`
	Theme                string `json:"theme" gorm:"type:varchar(10);default:'light'"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	EmailNotifications   bool   `json:"email_notifications"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// CreateUserWithProfile inserts the user and its profile atomically, so no
// user row ever exists without a profile row.
func CreateUserWithProfile(db *gorm.DB, user *User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := UserProfile{
			UserID:               user.ID,
			NotificationsEnabled: true,
			EmailNotifications:   true,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		user.Profile = &profile
		return nil
	})
}
