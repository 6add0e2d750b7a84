package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Rating score bounds
const (
	RatingMin = 1
	RatingMax = 10
)

// Rating is one user's score for one movie. The (user, movie) pair is unique
// at the database level; racing requests past the application check are still
// rejected by the store.
type Rating struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"not null;uniqueIndex:uniq_user_movie_rating"`
	User    User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	MovieID uint   `json:"movie_id" gorm:"not null;uniqueIndex:uniq_user_movie_rating"`
	Movie   Movie  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Score   int    `json:"score" gorm:"not null"`
	Comment string `json:"comment" gorm:"type:text"`
}

func (Rating) TableName() string {
	return "ratings"
}

// BeforeSave clamps the score into [1,10]. Boundary validation rejects
// out-of-range input before it gets here; the clamp is the model-level
// backstop for writes that bypass the API layer.
func (r *Rating) BeforeSave(tx *gorm.DB) error {
	if r.Score < RatingMin {
		r.Score = RatingMin
	} else if r.Score > RatingMax {
		r.Score = RatingMax
	}
	return nil
}

// AverageRating returns the mean score of a movie rounded to one decimal
// place, or 0 when it has no ratings.
func AverageRating(db *gorm.DB, movieID uint) float64 {
	var avg *float64
	db.Model(&Rating{}).Where("movie_id = ?", movieID).
		Select("AVG(score)").Scan(&avg)
	if avg == nil {
		return 0
	}
	return math.Round(*avg*10) / 10
}

// RatingResponse is the public representation of a rating.
type RatingResponse struct {
	ID         uint      `json:"id"`
	User       PublicInfo `json:"user"`
	MovieID    uint      `json:"movie_id"`
	MovieTitle string    `json:"movie_title,omitempty"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *Rating) ToResponse(lang string) RatingResponse {
	resp := RatingResponse{
		ID:        r.ID,
		User:      r.User.PublicInfo(),
		MovieID:   r.MovieID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Movie.ID != 0 {
		resp.MovieTitle = r.Movie.TitleTr.Resolve(lang, r.Movie.Title)
	}
	return resp
}
