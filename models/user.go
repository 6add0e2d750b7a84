package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin   = "admin"
	RoleRegular = "regular"
)

// User account model
type User struct {
	gorm.Model
	Username    string     `json:"username" gorm:"type:varchar(150);uniqueIndex;not null"`
	Email       string     `json:"email" gorm:"type:varchar(254);uniqueIndex;not null"`
	Phone       *string    `json:"phone,omitempty" gorm:"type:varchar(20);index"`
	Password    string     `json:"-" gorm:"type:varchar(255);not null"`
	FirstName   string     `json:"first_name" gorm:"type:varchar(150)"`
	LastName    string     `json:"last_name" gorm:"type:varchar(150)"`
	Bio         string     `json:"bio" gorm:"type:varchar(500)"`
	Avatar      string     `json:"avatar" gorm:"type:varchar(255)"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	Role        string     `json:"role" gorm:"type:varchar(20);default:'regular'"`
	IsActive    bool       `json:"is_active"`

	IsPremium    bool       `json:"is_premium" gorm:"default:false"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`

	Profile *UserProfile `json:"profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// FullName joins first and last name, trimming when either is empty.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// HasActivePremium reports whether the premium flag is honored at the given
// instant. Callers must pass the current clock on every evaluation: the
// premium window can lapse between two requests, so the result is never
// cached on the user.
func (u *User) HasActivePremium(now time.Time) bool {
	if !u.IsPremium {
		return false
	}
	if u.PremiumUntil != nil {
		return now.Before(*u.PremiumUntil)
	}
	return true
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PublicInfo is the representation of a user safe to embed in other payloads.
type PublicInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

func (u *User) PublicInfo() PublicInfo {
	return PublicInfo{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}
