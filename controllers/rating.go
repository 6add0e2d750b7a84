package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/middleware"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

// isDuplicateKey matches unique-index violations from both the mysql and
// sqlite drivers.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// RatingRequest carries the 1..10 score and an optional review comment.
type RatingRequest struct {
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

// GetMovieRatings godoc
// @Summary      List a movie's ratings
// @Tags         ratings
// @Produce      json
// @Param        slug path string true "Movie slug"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /movies/{slug}/ratings [get]
func GetMovieRatings(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var movie models.Movie
	if err := models.DB.Where("slug = ?", c.Param("slug")).First(&movie).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}
	if !models.CanView(user, &movie) {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	var ratings []models.Rating
	if err := models.DB.Preload("User").
		Where("movie_id = ?", movie.ID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		utils.InternalError(c, "rating listing failed", err)
		return
	}

	lang := utils.ResolveLanguage(c)
	items := make([]models.RatingResponse, 0, len(ratings))
	for i := range ratings {
		items = append(items, ratings[i].ToResponse(lang))
	}
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"average": models.AverageRating(models.DB, movie.ID),
		"count":   len(items),
		"items":   items,
	})
}

// CreateRating godoc
// @Summary      Rate a movie
// @Description  One rating per user per movie; a second attempt is rejected
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        slug   path string        true "Movie slug"
// @Param        rating body RatingRequest true "Score between 1 and 10"
// @Success      201  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /movies/{slug}/ratings [post]
func CreateRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}
	if req.Score < models.RatingMin || req.Score > models.RatingMax {
		utils.Error(c, "INVALID_RATING", nil)
		return
	}

	user := middleware.CurrentUser(c)

	var movie models.Movie
	if err := models.DB.Where("slug = ?", c.Param("slug")).First(&movie).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}
	if !models.CanView(user, &movie) {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	var n int64
	models.DB.Model(&models.Rating{}).
		Where("user_id = ? AND movie_id = ?", user.ID, movie.ID).Count(&n)
	if n > 0 {
		utils.Error(c, "ALREADY_RATED", nil)
		return
	}

	rating := models.Rating{UserID: user.ID, MovieID: movie.ID, Score: req.Score, Comment: req.Comment}
	if err := models.DB.Create(&rating).Error; err != nil {
		// the unique index wins a race past the count above
		if isDuplicateKey(err) {
			utils.Error(c, "ALREADY_RATED", nil)
			return
		}
		utils.InternalError(c, "rating creation failed", err)
		return
	}

	rating.User = *user
	lang := utils.ResolveLanguage(c)
	utils.Success(c, "CREATED", rating.ToResponse(lang))
}

// UpdateRating godoc
// @Summary      Change your rating
// @Description  Only the owner may update; others get a not-found
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id     path int           true "Rating ID"
// @Param        rating body RatingRequest true "New score"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /ratings/{id} [put]
func UpdateRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}
	if req.Score < models.RatingMin || req.Score > models.RatingMax {
		utils.Error(c, "INVALID_RATING", nil)
		return
	}

	user := middleware.CurrentUser(c)

	var rating models.Rating
	if err := models.DB.Preload("User").
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&rating).Error; err != nil {
		utils.NotFound(c, "NOT_FOUND")
		return
	}

	rating.Score = req.Score
	rating.Comment = req.Comment
	if err := models.DB.Save(&rating).Error; err != nil {
		utils.InternalError(c, "rating update failed", err)
		return
	}

	lang := utils.ResolveLanguage(c)
	utils.Success(c, "UPDATED", rating.ToResponse(lang))
}

// DeleteRating godoc
// @Summary      Remove your rating
// @Tags         ratings
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Rating ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /ratings/{id} [delete]
func DeleteRating(c *gin.Context) {
	user := middleware.CurrentUser(c)

	// hard delete so the unique (user, movie) pair frees up for re-rating
	result := models.DB.Unscoped().
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		Delete(&models.Rating{})
	if result.Error != nil {
		utils.InternalError(c, "rating deletion failed", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "NOT_FOUND")
		return
	}
	utils.Success(c, "DELETED", nil)
}
