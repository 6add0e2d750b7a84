package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/services/activity"
	"github.com/diyorbe-beep/kino11111/services/metadata"
	"github.com/diyorbe-beep/kino11111/utils"
)

type AdminMovieController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
	metadataService *metadata.MetadataService
}

func NewAdminMovieController(db *gorm.DB, activityService *activity.ActivityService, metadataService *metadata.MetadataService) *AdminMovieController {
	return &AdminMovieController{
		DB:              db,
		activityService: activityService,
		metadataService: metadataService,
	}
}

// MovieRequest is the admin create/update payload for a catalog item.
type MovieRequest struct {
	Title         string               `json:"title" binding:"required"`
	TitleTr       models.LocalizedText `json:"title_tr"`
	Description   string               `json:"description"`
	DescriptionTr models.LocalizedText `json:"description_tr"`
	ReleaseYear   int                  `json:"release_year" binding:"required"`
	Duration      int                  `json:"duration" binding:"required"`
	ContentType   string               `json:"content_type"`
	AgeRating     string               `json:"age_rating"`
	Poster        string               `json:"poster"`
	TrailerURL    string               `json:"trailer_url"`

	IsPremium  *bool `json:"is_premium"`
	IsActive   *bool `json:"is_active"`
	IsFeatured *bool `json:"is_featured"`
	IsTrending *bool `json:"is_trending"`

	IsPremier      *bool      `json:"is_premier"`
	PremierDate    *time.Time `json:"premier_date"`
	AvailableUntil *time.Time `json:"available_until"`

	CategoryIDs []uint `json:"category_ids"`
	GenreIDs    []uint `json:"genre_ids"`
}

// VideoRequest is the admin payload for a playable source.
type VideoRequest struct {
	Quality          string  `json:"quality" binding:"required"`
	Language         string  `json:"language" binding:"required"`
	SubtitleLanguage *string `json:"subtitle_language"`
	VideoFile        string  `json:"video_file" binding:"required"`
	Thumbnail        string  `json:"thumbnail"`
	Size             *int64  `json:"size"`
	Duration         *int    `json:"duration"`
	IsActive         *bool   `json:"is_active"`
}

// EpisodeRequest is the admin payload for a show episode.
type EpisodeRequest struct {
	SeasonNumber  int                  `json:"season_number" binding:"required"`
	EpisodeNumber int                  `json:"episode_number" binding:"required"`
	Title         string               `json:"title" binding:"required"`
	TitleTr       models.LocalizedText `json:"title_tr"`
	Description   string               `json:"description"`
	DescriptionTr models.LocalizedText `json:"description_tr"`
	Duration      int                  `json:"duration"`
	FileURL       string               `json:"file_url" binding:"required"`
	Thumbnail     string               `json:"thumbnail"`
}

// BulkMovieRequest names the movies and the action to run over them.
type BulkMovieRequest struct {
	MovieIDs []uint `json:"movie_ids" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

func (amc *AdminMovieController) validateMovieRequest(c *gin.Context, req *MovieRequest) bool {
	fieldErrors := utils.FieldErrors{}
	if req.ContentType != "" && !models.ValidContentType(req.ContentType) {
		fieldErrors["content_type"] = map[string]string{
			"en": "Unknown content type.",
			"uz": "Noma'lum kontent turi.",
			"ru": "Неизвестный тип контента.",
		}
	}
	if req.AgeRating != "" && !models.ValidAgeRating(req.AgeRating) {
		fieldErrors["age_rating"] = map[string]string{
			"en": "Unknown age rating.",
			"uz": "Noma'lum yosh chegarasi.",
			"ru": "Неизвестный возрастной рейтинг.",
		}
	}
	if len(fieldErrors) > 0 {
		utils.ValidationError(c, fieldErrors)
		return false
	}
	return true
}

func (amc *AdminMovieController) applyRelations(movie *models.Movie, req *MovieRequest) error {
	if req.CategoryIDs != nil {
		var categories []models.Category
		if err := amc.DB.Find(&categories, req.CategoryIDs).Error; err != nil {
			return err
		}
		if err := amc.DB.Model(movie).Association("Categories").Replace(categories); err != nil {
			return err
		}
	}
	if req.GenreIDs != nil {
		var genres []models.Genre
		if err := amc.DB.Find(&genres, req.GenreIDs).Error; err != nil {
			return err
		}
		if err := amc.DB.Model(movie).Association("Genres").Replace(genres); err != nil {
			return err
		}
	}
	return nil
}

// AdminListMovies godoc
// @Summary      List all movies, hidden ones included
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        page      query int    false "Page number"
// @Param        page_size query int    false "Items per page"
// @Param        search    query string false "Title substring"
// @Success      200  {object}  utils.Envelope
// @Router       /admin/movies [get]
func (amc *AdminMovieController) AdminListMovies(c *gin.Context) {
	query := amc.DB.Model(&models.Movie{})
	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
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
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&movies).Error; err != nil {
		utils.InternalError(c, "movie listing failed", err)
		return
	}

	lang := utils.ResolveLanguage(c)
	items := make([]models.MovieListResponse, 0, len(movies))
	for i := range movies {
		items = append(items, movies[i].ToListResponse(amc.DB, lang))
	}
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"items":      items,
		"pagination": utils.Paginate(total, page, pageSize),
	})
}

// CreateMovie godoc
// @Summary      Create a movie
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        movie body MovieRequest true "Movie data"
// @Success      201  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /admin/movies [post]
func (amc *AdminMovieController) CreateMovie(c *gin.Context) {
	var req MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}
	if !amc.validateMovieRequest(c, &req) {
		return
	}

	movie := models.Movie{
		Title:         req.Title,
		TitleTr:       req.TitleTr,
		Slug:          utils.UniqueSlug(amc.DB, "movies", req.Title),
		Description:   req.Description,
		DescriptionTr: req.DescriptionTr,
		ReleaseYear:   req.ReleaseYear,
		Duration:      req.Duration,
		ContentType:   models.ContentTypeMovie,
		AgeRating:     "PG-13",
		Poster:        req.Poster,
		TrailerURL:    req.TrailerURL,
		IsActive:      true,
	}
	if req.ContentType != "" {
		movie.ContentType = req.ContentType
	}
	if req.AgeRating != "" {
		movie.AgeRating = req.AgeRating
	}
	if req.IsPremium != nil {
		movie.IsPremium = *req.IsPremium
	}
	if req.IsActive != nil {
		movie.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		movie.IsFeatured = *req.IsFeatured
	}
	if req.IsTrending != nil {
		movie.IsTrending = *req.IsTrending
	}
	if req.IsPremier != nil {
		movie.IsPremier = *req.IsPremier
	}
	movie.PremierDate = req.PremierDate
	movie.AvailableUntil = req.AvailableUntil

	if err := amc.DB.Create(&movie).Error; err != nil {
		utils.InternalError(c, "movie creation failed", err)
		return
	}
	if err := amc.applyRelations(&movie, &req); err != nil {
		utils.InternalError(c, "movie relation update failed", err)
		return
	}

	amc.activityService.RecordActivity(models.ActivityMovie,
		fmt.Sprintf("movie %q created", movie.Title))

	amc.DB.Preload("Categories").Preload("Genres").First(&movie, movie.ID)
	utils.Success(c, "CREATED", movie.ToDetailResponse(amc.DB, utils.ResolveLanguage(c), nil))
}

// UpdateMovie godoc
// @Summary      Update a movie
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path int          true "Movie ID"
// @Param        movie body MovieRequest true "Movie data"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/movies/{id} [put]
func (amc *AdminMovieController) UpdateMovie(c *gin.Context) {
	var movie models.Movie
	if err := amc.DB.First(&movie, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	var req MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}
	if !amc.validateMovieRequest(c, &req) {
		return
	}

	// the slug survives retitles so shared links keep working
	movie.Title = req.Title
	movie.TitleTr = req.TitleTr
	movie.Description = req.Description
	movie.DescriptionTr = req.DescriptionTr
	movie.ReleaseYear = req.ReleaseYear
	movie.Duration = req.Duration
	if req.ContentType != "" {
		movie.ContentType = req.ContentType
	}
	if req.AgeRating != "" {
		movie.AgeRating = req.AgeRating
	}
	movie.Poster = req.Poster
	movie.TrailerURL = req.TrailerURL
	if req.IsPremium != nil {
		movie.IsPremium = *req.IsPremium
	}
	if req.IsActive != nil {
		movie.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		movie.IsFeatured = *req.IsFeatured
	}
	if req.IsTrending != nil {
		movie.IsTrending = *req.IsTrending
	}
	if req.IsPremier != nil {
		movie.IsPremier = *req.IsPremier
	}
	movie.PremierDate = req.PremierDate
	movie.AvailableUntil = req.AvailableUntil

	if err := amc.DB.Save(&movie).Error; err != nil {
		utils.InternalError(c, "movie update failed", err)
		return
	}
	if err := amc.applyRelations(&movie, &req); err != nil {
		utils.InternalError(c, "movie relation update failed", err)
		return
	}

	amc.DB.Preload("Categories").Preload("Genres").First(&movie, movie.ID)
	utils.Success(c, "UPDATED", movie.ToDetailResponse(amc.DB, utils.ResolveLanguage(c), nil))
}

// DeleteMovie godoc
// @Summary      Delete a movie
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Movie ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/movies/{id} [delete]
func (amc *AdminMovieController) DeleteMovie(c *gin.Context) {
	var movie models.Movie
	if err := amc.DB.First(&movie, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	if err := amc.DB.Delete(&movie).Error; err != nil {
		utils.InternalError(c, "movie deletion failed", err)
		return
	}

	amc.activityService.RecordActivity(models.ActivityMovie,
		fmt.Sprintf("movie %q deleted", movie.Title))
	utils.Success(c, "DELETED", nil)
}

// BulkMovieAction godoc
// @Summary      Run an action over a set of movies
// @Description  Actions: activate, deactivate, feature, unfeature, mark_premium, unmark_premium, delete
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        bulk body BulkMovieRequest true "Movie IDs and action"
// @Success      200  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /admin/movies/bulk [post]
func (amc *AdminMovieController) BulkMovieAction(c *gin.Context) {
	var req BulkMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	if req.Action == "delete" {
		res := amc.DB.Where("id IN ?", req.MovieIDs).Delete(&models.Movie{})
		if res.Error != nil {
			utils.InternalError(c, "bulk movie delete failed", res.Error)
			return
		}
		amc.activityService.RecordActivity(models.ActivityMovie,
			fmt.Sprintf("bulk delete over %d movies", res.RowsAffected))
		utils.Success(c, "DELETED", gin.H{"affected": res.RowsAffected})
		return
	}

	var column string
	var value bool
	switch req.Action {
	case "activate":
		column, value = "is_active", true
	case "deactivate":
		column, value = "is_active", false
	case "feature":
		column, value = "is_featured", true
	case "unfeature":
		column, value = "is_featured", false
	case "mark_premium":
		column, value = "is_premium", true
	case "unmark_premium":
		column, value = "is_premium", false
	default:
		utils.ValidationError(c, gin.H{"action": "unknown action"})
		return
	}

	res := amc.DB.Model(&models.Movie{}).
		Where("id IN ?", req.MovieIDs).
		Update(column, value)
	if res.Error != nil {
		utils.InternalError(c, "bulk movie update failed", res.Error)
		return
	}

	amc.activityService.RecordActivity(models.ActivityMovie,
		fmt.Sprintf("bulk %s over %d movies", req.Action, res.RowsAffected))
	utils.Success(c, "UPDATED", gin.H{"affected": res.RowsAffected})
}

// MovieAnalytics godoc
// @Summary      View analytics for a movie
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path  int true  "Movie ID"
// @Param        days query int false "Window in days, default 30"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/movies/{id}/analytics [get]
func (amc *AdminMovieController) MovieAnalytics(c *gin.Context) {
	var movie models.Movie
	if err := amc.DB.First(&movie, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	days := 30
	if v := c.Query("days"); v != "" {
		fmt.Sscanf(v, "%d", &days)
		if days < 1 {
			days = 30
		}
	}

	since := time.Now().AddDate(0, 0, -days)
	stats, err := models.ViewStats(amc.DB, movie.ID, since)
	if err != nil {
		utils.InternalError(c, "analytics aggregation failed", err)
		return
	}

	var ratings int64
	amc.DB.Model(&models.Rating{}).Where("movie_id = ?", movie.ID).Count(&ratings)
	var comments int64
	amc.DB.Model(&models.Comment{}).Where("movie_id = ? AND is_active = ?", movie.ID, true).Count(&comments)

	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"movie_id":       movie.ID,
		"window_days":    days,
		"views":          stats,
		"total_views":    movie.ViewsCount,
		"likes":          movie.LikesCount,
		"average_rating": movie.AverageRating(amc.DB),
		"ratings_count":  ratings,
		"comments_count": comments,
	})
}

// RefreshIMDbRating godoc
// @Summary      Refresh a movie's IMDb rating
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id      path  int    true "Movie ID"
// @Param        imdb_id query string true "IMDb title ID, e.g. tt0111161"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/movies/{id}/refresh-rating [post]
func (amc *AdminMovieController) RefreshIMDbRating(c *gin.Context) {
	var movie models.Movie
	if err := amc.DB.First(&movie, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	imdbID := c.Query("imdb_id")
	if imdbID == "" {
		utils.ValidationError(c, gin.H{"imdb_id": "required"})
		return
	}

	rating, err := amc.metadataService.RefreshMovieRating(movie.ID, imdbID)
	if err != nil {
		utils.InternalError(c, "imdb rating fetch failed", err)
		return
	}
	utils.Success(c, "UPDATED", gin.H{"movie_id": movie.ID, "imdb_rating": rating})
}

// AddVideo godoc
// @Summary      Add a playable source to a movie
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path int          true "Movie ID"
// @Param        video body VideoRequest true "Video data"
// @Success      201  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /admin/movies/{id}/videos [post]
func (amc *AdminMovieController) AddVideo(c *gin.Context) {
	var movie models.Movie
	if err := amc.DB.First(&movie, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	fieldErrors := utils.FieldErrors{}
	if !models.ValidQuality(req.Quality) {
		fieldErrors["quality"] = map[string]string{
			"en": "Unknown quality.",
			"uz": "Noma'lum sifat.",
			"ru": "Неизвестное качество.",
		}
	}
	if !models.ValidVideoLanguage(req.Language) {
		fieldErrors["language"] = map[string]string{
			"en": "Unknown audio language.",
			"uz": "Noma'lum audio til.",
			"ru": "Неизвестный язык аудио.",
		}
	}
	if len(fieldErrors) > 0 {
		utils.ValidationError(c, fieldErrors)
		return
	}

	video := models.Video{
		MovieID:          movie.ID,
		Quality:          req.Quality,
		Language:         req.Language,
		SubtitleLanguage: req.SubtitleLanguage,
		VideoFile:        req.VideoFile,
		Thumbnail:        req.Thumbnail,
		Size:             req.Size,
		Duration:         req.Duration,
		IsActive:         true,
	}
	if req.IsActive != nil {
		video.IsActive = *req.IsActive
	}

	if err := amc.DB.Create(&video).Error; err != nil {
		// the (movie, quality, language) triple is unique
		utils.ValidationError(c, utils.FieldErrors{
			"quality": {
				"en": "A source with this quality and language already exists.",
				"uz": "Bu sifat va tildagi manba allaqachon mavjud.",
				"ru": "Источник с таким качеством и языком уже существует.",
			},
		})
		return
	}
	utils.Success(c, "CREATED", video.ToResponse())
}

// UpdateVideo godoc
// @Summary      Update a playable source
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path int          true "Video ID"
// @Param        video body VideoRequest true "Video data"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/videos/{id} [put]
func (amc *AdminMovieController) UpdateVideo(c *gin.Context) {
	var video models.Video
	if err := amc.DB.First(&video, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "NOT_FOUND")
		return
	}

	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	video.Quality = req.Quality
	video.Language = req.Language
	video.SubtitleLanguage = req.SubtitleLanguage
	video.VideoFile = req.VideoFile
	video.Thumbnail = req.Thumbnail
	video.Size = req.Size
	video.Duration = req.Duration
	if req.IsActive != nil {
		video.IsActive = *req.IsActive
	}

	if err := amc.DB.Save(&video).Error; err != nil {
		utils.InternalError(c, "video update failed", err)
		return
	}
	utils.Success(c, "UPDATED", video.ToResponse())
}

// DeleteVideo godoc
// @Summary      Delete a playable source
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Video ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/videos/{id} [delete]
func (amc *AdminMovieController) DeleteVideo(c *gin.Context) {
	res := amc.DB.Unscoped().Delete(&models.Video{}, c.Param("id"))
	if res.Error != nil {
		utils.InternalError(c, "video deletion failed", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "NOT_FOUND")
		return
	}
	utils.Success(c, "DELETED", nil)
}

// AddEpisode godoc
// @Summary      Add an episode to a show
// @Description  The movie must be a tv_show; other content types are rejected
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id      path int            true "Show ID"
// @Param        episode body EpisodeRequest true "Episode data"
// @Success      201  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /admin/movies/{id}/episodes [post]
func (amc *AdminMovieController) AddEpisode(c *gin.Context) {
	var show models.Movie
	if err := amc.DB.First(&show, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	var req EpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	episode := models.Episode{
		TVShowID:      show.ID,
		SeasonNumber:  req.SeasonNumber,
		EpisodeNumber: req.EpisodeNumber,
		Title:         req.Title,
		TitleTr:       req.TitleTr,
		Description:   req.Description,
		DescriptionTr: req.DescriptionTr,
		Duration:      req.Duration,
		FileURL:       req.FileURL,
		Thumbnail:     req.Thumbnail,
	}
	if err := amc.DB.Create(&episode).Error; err != nil {
		if errors.Is(err, models.ErrNotTVShow) {
			utils.ValidationError(c, utils.FieldErrors{
				"content_type": {
					"en": "Episodes can only be added to TV shows.",
					"uz": "Epizodlar faqat seriallarga qo'shilishi mumkin.",
					"ru": "Эпизоды можно добавлять только к сериалам.",
				},
			})
			return
		}
		utils.ValidationError(c, utils.FieldErrors{
			"episode_number": {
				"en": "This season and episode number already exists.",
				"uz": "Bu mavsum va epizod raqami allaqachon mavjud.",
				"ru": "Этот сезон и номер эпизода уже существуют.",
			},
		})
		return
	}
	utils.Success(c, "CREATED", episode.ToResponse(utils.ResolveLanguage(c)))
}

// UpdateEpisode godoc
// @Summary      Update an episode
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id      path int            true "Episode ID"
// @Param        episode body EpisodeRequest true "Episode data"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/episodes/{id} [put]
func (amc *AdminMovieController) UpdateEpisode(c *gin.Context) {
	var episode models.Episode
	if err := amc.DB.First(&episode, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "NOT_FOUND")
		return
	}

	var req EpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	episode.SeasonNumber = req.SeasonNumber
	episode.EpisodeNumber = req.EpisodeNumber
	episode.Title = req.Title
	episode.TitleTr = req.TitleTr
	episode.Description = req.Description
	episode.DescriptionTr = req.DescriptionTr
	episode.Duration = req.Duration
	episode.FileURL = req.FileURL
	episode.Thumbnail = req.Thumbnail

	if err := amc.DB.Save(&episode).Error; err != nil {
		utils.InternalError(c, "episode update failed", err)
		return
	}
	utils.Success(c, "UPDATED", episode.ToResponse(utils.ResolveLanguage(c)))
}

// DeleteEpisode godoc
// @Summary      Delete an episode
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Episode ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/episodes/{id} [delete]
func (amc *AdminMovieController) DeleteEpisode(c *gin.Context) {
	res := amc.DB.Unscoped().Delete(&models.Episode{}, c.Param("id"))
	if res.Error != nil {
		utils.InternalError(c, "episode deletion failed", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "NOT_FOUND")
		return
	}
	utils.Success(c, "DELETED", nil)
}
