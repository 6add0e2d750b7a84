package models

import (
	"time"

	"gorm.io/gorm"
)

// Content types
const (
	ContentTypeMovie       = "movie"
	ContentTypeTVShow      = "tv_show"
	ContentTypeCartoon     = "cartoon"
	ContentTypeDocumentary = "documentary"
	ContentTypeAnime       = "anime"
)

// ValidContentType reports whether ct is one of the known content types.
func ValidContentType(ct string) bool {
	switch ct {
	case ContentTypeMovie, ContentTypeTVShow, ContentTypeCartoon,
		ContentTypeDocumentary, ContentTypeAnime:
		return true
	}
	return false
}

// Age ratings
var AgeRatings = []string{"G", "PG", "PG-13", "R", "NC-17"}

// ValidAgeRating reports whether r is a known age rating.
func ValidAgeRating(r string) bool {
	for _, v := range AgeRatings {
		if v == r {
			return true
		}
	}
	return false
}

// Movie is the catalog content item. TV shows, cartoons, documentaries and
// anime share the same table, distinguished by ContentType.
type Movie struct {
	gorm.Model
	Title         string        `json:"title" gorm:"type:varchar(255);not null"`
	TitleTr       LocalizedText `json:"title_tr" gorm:"embedded;embeddedPrefix:title_"`
	Slug          string        `json:"slug" gorm:"type:varchar(270);uniqueIndex;not null"`
	Description   string        `json:"description" gorm:"type:text"`
	DescriptionTr LocalizedText `json:"description_tr" gorm:"embedded;embeddedPrefix:description_"`
	ReleaseYear   int           `json:"release_year" gorm:"index;not null"`
	Duration      int           `json:"duration" gorm:"not null;comment:duration in minutes"`
	ContentType   string        `json:"content_type" gorm:"type:varchar(20);default:'movie';index"`
	AgeRating     string        `json:"age_rating" gorm:"type:varchar(10);default:'PG-13'"`

	Poster     string   `json:"poster" gorm:"type:varchar(255)"`
	TrailerURL string   `json:"trailer_url" gorm:"type:varchar(255)"`
	IMDbRating *float64 `json:"imdb_rating,omitempty" gorm:"type:decimal(3,1)"`

	IsPremium  bool `json:"is_premium" gorm:"default:false;index:idx_premium_active"`
	// No column default: gorm drops zero values for defaulted columns on
	// Create, which would silently flip an explicit false back to true.
	IsActive   bool `json:"is_active" gorm:"index:idx_premium_active"`
	IsFeatured bool `json:"is_featured" gorm:"default:false;index"`
	IsTrending bool `json:"is_trending" gorm:"default:false;index"`

	IsPremier      bool       `json:"is_premier" gorm:"default:false;index:idx_premier_date"`
	PremierDate    *time.Time `json:"premier_date,omitempty" gorm:"index:idx_premier_date"`
	AvailableUntil *time.Time `json:"available_until,omitempty"`

	ViewsCount int64 `json:"views_count" gorm:"default:0"`
	LikesCount int64 `json:"likes_count" gorm:"default:0"`

	Categories []Category `json:"categories,omitempty" gorm:"many2many:movie_categories"`
	Genres     []Genre    `json:"genres,omitempty" gorm:"many2many:movie_genres"`
	Videos     []Video    `json:"videos,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Episodes   []Episode  `json:"episodes,omitempty" gorm:"foreignKey:TVShowID;constraint:OnDelete:CASCADE"`
}

func (Movie) TableName() string {
	return "movies"
}

// AverageRating returns the arithmetic mean of all scores for the movie,
// rounded to one decimal place, or 0 when the movie has no ratings.
func (m *Movie) AverageRating(db *gorm.DB) float64 {
	return AverageRating(db, m.ID)
}

// MovieListResponse is the localized card representation used by listings.
type MovieListResponse struct {
	ID            uint               `json:"id"`
	Title         string             `json:"title"`
	Slug          string             `json:"slug"`
	Description   string             `json:"description"`
	ReleaseYear   int                `json:"release_year"`
	Duration      int                `json:"duration"`
	ContentType   string             `json:"content_type"`
	AgeRating     string             `json:"age_rating"`
	Poster        string             `json:"poster,omitempty"`
	IsPremium     bool               `json:"is_premium"`
	IsPremier     bool               `json:"is_premier"`
	IsFeatured    bool               `json:"is_featured"`
	IsTrending    bool               `json:"is_trending"`
	Categories    []CategoryResponse `json:"categories"`
	Genres        []GenreResponse    `json:"genres"`
	AverageRating float64            `json:"average_rating"`
	IMDbRating    *float64           `json:"imdb_rating,omitempty"`
	ViewsCount    int64              `json:"views_count"`
	LikesCount    int64              `json:"likes_count"`
	CreatedAt     time.Time          `json:"created_at"`
}

// MovieDetailResponse extends the card with videos, episodes and viewer state.
type MovieDetailResponse struct {
	MovieListResponse
	TrailerURL     string            `json:"trailer_url,omitempty"`
	PremierDate    *time.Time        `json:"premier_date,omitempty"`
	AvailableUntil *time.Time        `json:"available_until,omitempty"`
	Videos         []VideoResponse   `json:"videos"`
	Episodes       []EpisodeResponse `json:"episodes"`
	CommentsCount  int64             `json:"comments_count"`
	IsWatched      bool              `json:"is_watched"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (m *Movie) ToListResponse(db *gorm.DB, lang string) MovieListResponse {
	categories := make([]CategoryResponse, 0, len(m.Categories))
	for i := range m.Categories {
		categories = append(categories, m.Categories[i].ToResponse(lang))
	}
	genres := make([]GenreResponse, 0, len(m.Genres))
	for i := range m.Genres {
		genres = append(genres, m.Genres[i].ToResponse(lang))
	}
	return MovieListResponse{
		ID:            m.ID,
		Title:         m.TitleTr.Resolve(lang, m.Title),
		Slug:          m.Slug,
		Description:   m.DescriptionTr.Resolve(lang, m.Description),
		ReleaseYear:   m.ReleaseYear,
		Duration:      m.Duration,
		ContentType:   m.ContentType,
		AgeRating:     m.AgeRating,
		Poster:        m.Poster,
		IsPremium:     m.IsPremium,
		IsPremier:     m.IsPremier,
		IsFeatured:    m.IsFeatured,
		IsTrending:    m.IsTrending,
		Categories:    categories,
		Genres:        genres,
		AverageRating: m.AverageRating(db),
		IMDbRating:    m.IMDbRating,
		ViewsCount:    m.ViewsCount,
		LikesCount:    m.LikesCount,
		CreatedAt:     m.CreatedAt,
	}
}

func (m *Movie) ToDetailResponse(db *gorm.DB, lang string, viewer *User) MovieDetailResponse {
	videos := make([]VideoResponse, 0, len(m.Videos))
	for i := range m.Videos {
		if m.Videos[i].IsActive {
			videos = append(videos, m.Videos[i].ToResponse())
		}
	}
	episodes := make([]EpisodeResponse, 0, len(m.Episodes))
	for i := range m.Episodes {
		episodes = append(episodes, m.Episodes[i].ToResponse(lang))
	}

	var commentsCount int64
	db.Model(&Comment{}).Where("movie_id = ? AND is_active = ?", m.ID, true).Count(&commentsCount)

	isWatched := false
	if viewer != nil {
		var n int64
		db.Model(&MovieView{}).Where("movie_id = ? AND user_id = ?", m.ID, viewer.ID).Count(&n)
		isWatched = n > 0
	}

	return MovieDetailResponse{
		MovieListResponse: m.ToListResponse(db, lang),
		TrailerURL:        m.TrailerURL,
		PremierDate:       m.PremierDate,
		AvailableUntil:    m.AvailableUntil,
		Videos:            videos,
		Episodes:          episodes,
		CommentsCount:     commentsCount,
		IsWatched:         isWatched,
		UpdatedAt:         m.UpdatedAt,
	}
}
