package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diyorbe-beep/kino11111/middleware"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

// GetMovies godoc
// @Summary      List movies
// @Description  Paginated catalog listing filtered to what the caller may see
// @Tags         movies
// @Produce      json
// @Param        page          query int    false "Page number"
// @Param        page_size     query int    false "Items per page"
// @Param        search        query string false "Title or description substring"
// @Param        content_type  query string false "movie, tv_show, cartoon, documentary or anime"
// @Param        category      query string false "Category slug"
// @Param        genre         query string false "Genre slug"
// @Param        release_year  query int    false "Release year"
// @Param        ordering      query string false "latest, popular or rating"
// @Success      200  {object}  utils.Envelope
// @Router       /movies [get]
func GetMovies(c *gin.Context) {
	user := middleware.CurrentUser(c)
	now := time.Now()

	query := models.DB.Model(&models.Movie{}).Scopes(models.ScopeViewable(user, now))

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"title LIKE ? OR title_en LIKE ? OR title_uz LIKE ? OR title_ru LIKE ? OR description LIKE ?",
			like, like, like, like, like)
	}
	if ct := c.Query("content_type"); ct != "" {
		if !models.ValidContentType(ct) {
			utils.ValidationError(c, gin.H{"content_type": "unknown content type"})
			return
		}
		query = query.Where("content_type = ?", ct)
	}
	if slug := c.Query("category"); slug != "" {
		query = query.
			Joins("JOIN movie_categories mc ON mc.movie_id = movies.id").
			Joins("JOIN categories cat ON cat.id = mc.category_id").
			Where("cat.slug = ?", slug)
	}
	if slug := c.Query("genre"); slug != "" {
		query = query.
			Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
			Joins("JOIN genres g ON g.id = mg.genre_id").
			Where("g.slug = ?", slug)
	}
	if year := c.Query("release_year"); year != "" {
		query = query.Where("release_year = ?", year)
	}

	switch c.DefaultQuery("ordering", "latest") {
	case "popular":
		query = query.Order("views_count DESC")
	case "rating":
		query = query.Order("imdb_rating DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalError(c, "movie count failed", err)
		return
	}

	page := utils.GetPage(c)
	pageSize := utils.GetPageSize(c)

	var movies []models.Movie
	if err := query.
		Preload("Categories").Preload("Genres").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&movies).Error; err != nil {
		utils.InternalError(c, "movie listing failed", err)
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

// GetFeaturedMovies godoc
// @Summary      List featured movies
// @Tags         movies
// @Produce      json
// @Success      200  {object}  utils.Envelope
// @Router       /movies/featured [get]
func GetFeaturedMovies(c *gin.Context) {
	listFlagged(c, "is_featured = ?")
}

// GetTrendingMovies godoc
// @Summary      List trending movies
// @Tags         movies
// @Produce      json
// @Success      200  {object}  utils.Envelope
// @Router       /movies/trending [get]
func GetTrendingMovies(c *gin.Context) {
	listFlagged(c, "is_trending = ?")
}

func listFlagged(c *gin.Context, cond string) {
	user := middleware.CurrentUser(c)
	var movies []models.Movie
	if err := models.DB.
		Scopes(models.ScopeViewable(user, time.Now())).
		Where(cond, true).
		Preload("Categories").Preload("Genres").
		Order("created_at DESC").Limit(20).
		Find(&movies).Error; err != nil {
		utils.InternalError(c, "movie listing failed", err)
		return
	}
	lang := utils.ResolveLanguage(c)
	items := make([]models.MovieListResponse, 0, len(movies))
	for i := range movies {
		items = append(items, movies[i].ToListResponse(models.DB, lang))
	}
	utils.Success(c, "SUCCESS_MESSAGE", items)
}

// GetPremierMovies godoc
// @Summary      List current premiers
// @Description  Premier titles whose window covers the current instant
// @Tags         movies
// @Produce      json
// @Success      200  {object}  utils.Envelope
// @Router       /movies/premiers [get]
func GetPremierMovies(c *gin.Context) {
	user := middleware.CurrentUser(c)
	now := time.Now()
	var movies []models.Movie
	if err := models.DB.
		Scopes(models.ScopeViewable(user, now)).
		Where("is_premier = ?", true).
		Where("premier_date IS NULL OR premier_date <= ?", now).
		Where("available_until IS NULL OR available_until > ?", now).
		Preload("Categories").Preload("Genres").
		Order("premier_date DESC").Limit(20).
		Find(&movies).Error; err != nil {
		utils.InternalError(c, "premier listing failed", err)
		return
	}
	lang := utils.ResolveLanguage(c)
	items := make([]models.MovieListResponse, 0, len(movies))
	for i := range movies {
		items = append(items, movies[i].ToListResponse(models.DB, lang))
	}
	utils.Success(c, "SUCCESS_MESSAGE", items)
}

// GetMovieBySlug godoc
// @Summary      Get movie detail
// @Description  Full detail with videos, episodes and viewer state; records a view
// @Tags         movies
// @Produce      json
// @Param        slug path string true "Movie slug"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /movies/{slug} [get]
func GetMovieBySlug(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var movie models.Movie
	if err := models.DB.
		Preload("Categories").Preload("Genres").
		Preload("Videos").Preload("Episodes").
		Where("slug = ?", c.Param("slug")).
		First(&movie).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	// hidden titles answer not-found, not forbidden
	if !models.CanView(user, &movie) {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	var userID *uint
	if user != nil {
		userID = &user.ID
	}
	if err := models.RecordView(models.DB, movie.ID, userID, c.ClientIP()); err != nil {
		utils.LogError("view recording failed", err)
	}

	lang := utils.ResolveLanguage(c)
	utils.Success(c, "SUCCESS_MESSAGE", movie.ToDetailResponse(models.DB, lang, user))
}

// WatchMovie godoc
// @Summary      Get playable sources
// @Description  Returns the video sources; premium titles require an active premium window
// @Tags         movies
// @Produce      json
// @Param        slug path string true "Movie slug"
// @Success      200  {object}  utils.Envelope
// @Failure      403  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /movies/{slug}/watch [get]
func WatchMovie(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var movie models.Movie
	if err := models.DB.Preload("Videos").
		Where("slug = ?", c.Param("slug")).
		First(&movie).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}
	if !models.CanView(user, &movie) {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}
	if !models.CanWatch(user, &movie, time.Now()) {
		utils.Error(c, "PREMIUM_REQUIRED", nil)
		return
	}

	videos := make([]models.VideoResponse, 0, len(movie.Videos))
	for i := range movie.Videos {
		if movie.Videos[i].IsActive {
			videos = append(videos, movie.Videos[i].ToResponse())
		}
	}
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"movie_id": movie.ID,
		"slug":     movie.Slug,
		"videos":   videos,
	})
}

// GetMovieEpisodes godoc
// @Summary      List a show's episodes
// @Tags         movies
// @Produce      json
// @Param        slug   path  string true  "Show slug"
// @Param        season query int    false "Season number"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /movies/{slug}/episodes [get]
func GetMovieEpisodes(c *gin.Context) {
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

	query := models.DB.Where("tv_show_id = ?", movie.ID)
	if season := c.Query("season"); season != "" {
		query = query.Where("season_number = ?", season)
	}

	var episodes []models.Episode
	if err := query.Order("season_number ASC, episode_number ASC").
		Find(&episodes).Error; err != nil {
		utils.InternalError(c, "episode listing failed", err)
		return
	}

	lang := utils.ResolveLanguage(c)
	items := make([]models.EpisodeResponse, 0, len(episodes))
	for i := range episodes {
		items = append(items, episodes[i].ToResponse(lang))
	}
	utils.Success(c, "SUCCESS_MESSAGE", items)
}

// WatchProgressRequest reports how far into a title the viewer got.
type WatchProgressRequest struct {
	DurationWatched int `json:"duration_watched" binding:"required,min=1"`
}

// ReportWatchProgress godoc
// @Summary      Report watch progress
// @Description  Appends a watch record carrying the seconds watched
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        slug     path string               true "Movie slug"
// @Param        progress body WatchProgressRequest true "Progress data"
// @Success      201  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /movies/{slug}/progress [post]
func ReportWatchProgress(c *gin.Context) {
	var req WatchProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
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

	view := models.MovieView{
		MovieID:         movie.ID,
		UserID:          &user.ID,
		IPAddress:       c.ClientIP(),
		DurationWatched: req.DurationWatched,
	}
	if err := models.DB.Create(&view).Error; err != nil {
		utils.InternalError(c, "progress recording failed", err)
		return
	}
	utils.Success(c, "CREATED", gin.H{"id": view.ID})
}
