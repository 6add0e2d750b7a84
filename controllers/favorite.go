package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/middleware"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

// GetMyFavorites godoc
// @Summary      List the current user's favorites
// @Tags         favorites
// @Produce      json
// @Security     Bearer
// @Param        page      query int false "Page number"
// @Param        page_size query int false "Items per page"
// @Success      200  {object}  utils.Envelope
// @Router       /users/me/favorites [get]
func GetMyFavorites(c *gin.Context) {
	user := middleware.CurrentUser(c)
	now := time.Now()

	query := models.DB.Model(&models.Movie{}).
		Scopes(models.ScopeViewable(user, now)).
		Joins("JOIN favorites f ON f.movie_id = movies.id AND f.deleted_at IS NULL").
		Where("f.user_id = ?", user.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalError(c, "favorite count failed", err)
		return
	}

	page := utils.GetPage(c)
	pageSize := utils.GetPageSize(c)

	var movies []models.Movie
	if err := query.
		Preload("Categories").Preload("Genres").
		Order("f.created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&movies).Error; err != nil {
		utils.InternalError(c, "favorite listing failed", err)
		return
	}

	lang := utils.ResolveLanguage(c)
	items := make([]models.MovieListResponse, 0, len(movies))
	for i := range movies {
		items = append(items, movies[i].ToListResponse(models.DB, lang))
	}
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"items":      items,
		"pagination": utils.Paginate(total, page, pageSize),
	})
}

// AddFavorite godoc
// @Summary      Favorite a movie
// @Tags         favorites
// @Produce      json
// @Security     Bearer
// @Param        slug path string true "Movie slug"
// @Success      201  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /movies/{slug}/favorite [post]
func AddFavorite(c *gin.Context) {
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
	models.DB.Model(&models.Favorite{}).
		Where("user_id = ? AND movie_id = ?", user.ID, movie.ID).Count(&n)
	if n > 0 {
		utils.Error(c, "ALREADY_FAVORITED", nil)
		return
	}

	if err := models.AddFavorite(models.DB, user.ID, movie.ID); err != nil {
		if isDuplicateKey(err) {
			utils.Error(c, "ALREADY_FAVORITED", nil)
			return
		}
		utils.InternalError(c, "favorite creation failed", err)
		return
	}
	utils.Success(c, "CREATED", gin.H{"movie_id": movie.ID, "is_favorite": true})
}

// RemoveFavorite godoc
// @Summary      Unfavorite a movie
// @Tags         favorites
// @Produce      json
// @Security     Bearer
// @Param        slug path string true "Movie slug"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /movies/{slug}/favorite [delete]
func RemoveFavorite(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var movie models.Movie
	if err := models.DB.Where("slug = ?", c.Param("slug")).First(&movie).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	if err := models.RemoveFavorite(models.DB, user.ID, movie.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "NOT_FOUND")
			return
		}
		utils.InternalError(c, "favorite removal failed", err)
		return
	}
	utils.Success(c, "DELETED", gin.H{"movie_id": movie.ID, "is_favorite": false})
}
