package models

import (
	"gorm.io/gorm"
)

// Favorite marks a movie as liked by a user. One row per (user, movie);
// the pair is unique at the database level. Favorites drive likes_count.
type Favorite struct {
	gorm.Model
	UserID  uint  `json:"user_id" gorm:"index:idx_user_movie_fav;uniqueIndex:uniq_user_movie_fav"`
	MovieID uint  `json:"movie_id" gorm:"index:idx_user_movie_fav;uniqueIndex:uniq_user_movie_fav"`
	User    User  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Movie   Movie `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// AddFavorite inserts the pair and bumps likes_count. The unique index wins
// over racing duplicates; callers translate duplicate-key errors.
func AddFavorite(db *gorm.DB, userID, movieID uint) error {
	fav := Favorite{UserID: userID, MovieID: movieID}
	if err := db.Create(&fav).Error; err != nil {
		return err
	}
	return db.Model(&Movie{}).Where("id = ?", movieID).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
}

// RemoveFavorite deletes the pair and decrements likes_count when a row was
// actually removed.
func RemoveFavorite(db *gorm.DB, userID, movieID uint) error {
	res := db.Unscoped().Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return db.Model(&Movie{}).Where("id = ? AND likes_count > 0", movieID).
		UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error
}
