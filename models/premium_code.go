package models

import (
	"time"

	"gorm.io/gorm"
)

// PremiumCode is a single-use code that grants premium days when redeemed.
// Codes are generated by admins; redeeming extends the user's premium window
// from max(now, premium_until).
type PremiumCode struct {
	gorm.Model
	Code         string     `json:"code" gorm:"type:varchar(64);uniqueIndex;not null"`
	Days         int        `json:"days" gorm:"not null"`
	IsUsed       bool       `json:"is_used" gorm:"default:false"`
	UsedByUserID *uint      `json:"used_by_user_id,omitempty"`
	UsedByUser   *User      `json:"used_by_user,omitempty" gorm:"foreignKey:UsedByUserID"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	GeneratedBy  *uint      `json:"generated_by,omitempty"`
	Generator    *User      `json:"generator,omitempty" gorm:"foreignKey:GeneratedBy"`
}

func (PremiumCode) TableName() string {
	return "premium_codes"
}

// Redeemable reports whether the code can still be used at the given instant.
func (pc *PremiumCode) Redeemable(now time.Time) bool {
	if pc.IsUsed {
		return false
	}
	if pc.ExpiresAt != nil && !now.Before(*pc.ExpiresAt) {
		return false
	}
	return true
}

// RedeemPremiumCode marks the code used and extends the user's premium
// window, all in one transaction. The UPDATE is guarded on is_used so two
// racing redemptions cannot both succeed.
func RedeemPremiumCode(db *gorm.DB, code *PremiumCode, user *User, now time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&PremiumCode{}).
			Where("id = ? AND is_used = ?", code.ID, false).
			Updates(map[string]interface{}{
				"is_used":         true,
				"used_by_user_id": user.ID,
				"used_at":         now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		from := now
		if user.PremiumUntil != nil && user.PremiumUntil.After(now) {
			from = *user.PremiumUntil
		}
		until := from.AddDate(0, 0, code.Days)
		user.IsPremium = true
		user.PremiumUntil = &until
		return tx.Model(&User{}).Where("id = ?", user.ID).
			Updates(map[string]interface{}{
				"is_premium":    true,
				"premium_until": until,
			}).Error
	})
}
