package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

type AdminDashboardController struct {
	DB *gorm.DB
}

func NewAdminDashboardController(db *gorm.DB) *AdminDashboardController {
	return &AdminDashboardController{DB: db}
}

// Dashboard godoc
// @Summary      Back-office overview counters
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  utils.Envelope
// @Router       /admin/dashboard [get]
func (adc *AdminDashboardController) Dashboard(c *gin.Context) {
	now := time.Now()
	dayAgo := now.AddDate(0, 0, -1)
	weekAgo := now.AddDate(0, 0, -7)

	var totalUsers, premiumUsers, newUsersWeek int64
	adc.DB.Model(&models.User{}).Count(&totalUsers)
	adc.DB.Model(&models.User{}).Where("is_premium = ?", true).Count(&premiumUsers)
	adc.DB.Model(&models.User{}).Where("created_at >= ?", weekAgo).Count(&newUsersWeek)

	var totalMovies, activeMovies, premiumMovies int64
	adc.DB.Model(&models.Movie{}).Count(&totalMovies)
	adc.DB.Model(&models.Movie{}).Where("is_active = ?", true).Count(&activeMovies)
	adc.DB.Model(&models.Movie{}).Where("is_premium = ?", true).Count(&premiumMovies)

	var viewsToday, viewsWeek int64
	adc.DB.Model(&models.MovieView{}).Where("created_at >= ?", dayAgo).Count(&viewsToday)
	adc.DB.Model(&models.MovieView{}).Where("created_at >= ?", weekAgo).Count(&viewsWeek)

	var totalComments, totalRatings int64
	adc.DB.Model(&models.Comment{}).Where("is_active = ?", true).Count(&totalComments)
	adc.DB.Model(&models.Rating{}).Count(&totalRatings)

	var unusedCodes int64
	adc.DB.Model(&models.PremiumCode{}).Where("is_used = ?", false).Count(&unusedCodes)

	// top titles of the last week by raw view records
	type topMovie struct {
		MovieID uint   `json:"movie_id"`
		Title   string `json:"title"`
		Views   int64  `json:"views"`
	}
	var top []topMovie
	adc.DB.Model(&models.MovieView{}).
		Select("movie_views.movie_id, movies.title, COUNT(*) as views").
		Joins("JOIN movies ON movies.id = movie_views.movie_id").
		Where("movie_views.created_at >= ?", weekAgo).
		Group("movie_views.movie_id, movies.title").
		Order("views DESC").
		Limit(10).
		Scan(&top)

	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"users": gin.H{
			"total":         totalUsers,
			"premium":       premiumUsers,
			"new_this_week": newUsersWeek,
		},
		"movies": gin.H{
			"total":   totalMovies,
			"active":  activeMovies,
			"premium": premiumMovies,
		},
		"views": gin.H{
			"today":     viewsToday,
			"this_week": viewsWeek,
		},
		"comments":             totalComments,
		"ratings":              totalRatings,
		"unused_premium_codes": unusedCodes,
		"top_movies":           top,
	})
}
