package models

import (
	"time"

	"gorm.io/gorm"
)

// Entitlement decisions for a principal (nil = anonymous) against a movie.
//
// The rules, in order:
//   - inactive movies exist only for admins; everyone else gets a not-found,
//     never a forbidden, so hidden items do not leak;
//   - premium movies can be watched only by principals whose premium window
//     covers the evaluation instant.
//
// Listings apply the same rules as a query filter (ScopeViewable) instead of
// erroring per item.

// CanView reports whether the principal may see the movie exists at all
// (detail fetch). Premium movies are visible in detail to everyone; only the
// watch path is gated.
func CanView(principal *User, movie *Movie) bool {
	if movie.IsActive {
		return true
	}
	return principal != nil && principal.IsAdmin()
}

// CanWatch reports whether the principal may play the movie at the given
// instant. The clock is read per evaluation so a lapsed premium window is
// never honored from a stale check.
func CanWatch(principal *User, movie *Movie, now time.Time) bool {
	if !CanView(principal, movie) {
		return false
	}
	if !movie.IsPremium {
		return true
	}
	return principal != nil && principal.HasActivePremium(now)
}

// ScopeViewable filters a movie query down to what the principal may see in
// listings: active movies, and premium ones only for active-premium
// principals. Admins see everything.
func ScopeViewable(principal *User, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if principal != nil && principal.IsAdmin() {
			return db
		}
		db = db.Where("is_active = ?", true)
		if principal == nil || !principal.HasActivePremium(now) {
			db = db.Where("is_premium = ?", false)
		}
		return db
	}
}
