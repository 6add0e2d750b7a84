package models

import (
	"time"

	"gorm.io/gorm"
)

// MovieView is an append-only watch record. Repeat views by the same user
// record separately; nothing here is deduplicated. When the user is removed
// the reference nulls out instead of cascading, so the record survives.
type MovieView struct {
	gorm.Model
	MovieID         uint   `json:"movie_id" gorm:"not null;index"`
	Movie           Movie  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID          *uint  `json:"user_id,omitempty" gorm:"index"`
	User            *User  `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	IPAddress       string `json:"ip_address" gorm:"type:varchar(45)"`
	DurationWatched int    `json:"duration_watched" gorm:"default:0;comment:seconds watched"`
}

func (MovieView) TableName() string {
	return "movie_views"
}

// RecordView appends a view row and bumps the movie's views_count with a SQL
// expression. The counter is a convenience aggregate, not an exactly-once
// count; a momentarily stale value under concurrent increments is fine.
func RecordView(db *gorm.DB, movieID uint, userID *uint, ip string) error {
	view := MovieView{MovieID: movieID, UserID: userID, IPAddress: ip}
	if err := db.Create(&view).Error; err != nil {
		return err
	}
	return db.Model(&Movie{}).Where("id = ?", movieID).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

// MovieViewStats aggregates watch records for the admin analytics view.
type MovieViewStats struct {
	MovieID      uint    `json:"movie_id"`
	TotalViews   int64   `json:"total_views"`
	UniqueUsers  int64   `json:"unique_users"`
	AvgWatchSecs float64 `json:"avg_watch_seconds"`
}

// ViewStats computes aggregates over the raw view records since the cutoff.
func ViewStats(db *gorm.DB, movieID uint, since time.Time) (MovieViewStats, error) {
	stats := MovieViewStats{MovieID: movieID}
	if err := db.Model(&MovieView{}).
		Where("movie_id = ? AND created_at >= ?", movieID, since).
		Count(&stats.TotalViews).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&MovieView{}).
		Where("movie_id = ? AND created_at >= ? AND user_id IS NOT NULL", movieID, since).
		Distinct("user_id").
		Count(&stats.UniqueUsers).Error; err != nil {
		return stats, err
	}
	var avg *float64
	if err := db.Model(&MovieView{}).
		Where("movie_id = ? AND created_at >= ?", movieID, since).
		Select("AVG(duration_watched)").Scan(&avg).Error; err != nil {
		return stats, err
	}
	if avg != nil {
		stats.AvgWatchSecs = *avg
	}
	return stats, nil
}
