package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diyorbe-beep/kino11111/config"
	"github.com/diyorbe-beep/kino11111/middleware"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/services/activity"
	"github.com/diyorbe-beep/kino11111/services/mail"
	"github.com/diyorbe-beep/kino11111/utils"
)

// envelope mirrors utils.Envelope for decoding responses in tests.
type envelope struct {
	ID      string          `json:"id"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func setupRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	models.SetDB(db)

	activityService := activity.NewActivityService(db)
	mailService := mail.NewMailService()

	authController := NewAuthController(db, activityService, mailService)
	premiumController := NewPremiumController(db, activityService)

	r := gin.New()
	r.Use(middleware.LanguageMiddleware())
	v1 := r.Group("/api/v1")

	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/token/refresh", authController.RefreshToken)

	public := v1.Group("")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("/movies", GetMovies)
		public.GET("/movies/:slug", GetMovieBySlug)
		public.GET("/movies/:slug/watch", WatchMovie)
		public.GET("/movies/:slug/comments", GetMovieComments)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/movies/:slug/comments", CreateComment)
		protected.POST("/comments/:id/reply", ReplyToComment)
		protected.DELETE("/comments/:id", DeleteComment)
		protected.POST("/movies/:slug/ratings", CreateRating)
		protected.POST("/movies/:slug/favorite", AddFavorite)
		protected.POST("/premium/redeem", premiumController.RedeemCode)
	}

	return db, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func authHeader(t *testing.T, user *models.User) map[string]string {
	t.Helper()
	access, _, err := middleware.GenerateTokenPair(user)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + access}
}

func seedUser(t *testing.T, db *gorm.DB, username string, premiumUntil *time.Time) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
		IsActive: true,
		Role:     models.RoleRegular,
	}
	require.NoError(t, user.HashPassword())
	if premiumUntil != nil {
		user.IsPremium = true
		user.PremiumUntil = premiumUntil
	}
	require.NoError(t, models.CreateUserWithProfile(db, user))
	return user
}

func seedMovie(t *testing.T, db *gorm.DB, slug string, premium bool) *models.Movie {
	t.Helper()
	movie := &models.Movie{
		Title:       slug,
		Slug:        utils.UniqueSlug(db, "movies", slug),
		ReleaseYear: 2024,
		Duration:    120,
		ContentType: models.ContentTypeMovie,
		IsPremium:   premium,
		IsActive:    true,
	}
	require.NoError(t, db.Create(movie).Error)
	return movie
}
