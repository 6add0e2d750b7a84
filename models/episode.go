package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotTVShow is returned when an episode is attached to content that is
// not a TV show.
var ErrNotTVShow = errors.New("episodes can only belong to a tv_show")

// Episode belongs to a Movie whose content type is tv_show. The constraint is
// enforced at write time in BeforeCreate, not by the schema.
type Episode struct {
	gorm.Model
	TVShowID      uint          `json:"tv_show_id" gorm:"not null;uniqueIndex:uniq_show_season_episode"`
	SeasonNumber  int           `json:"season_number" gorm:"default:1;uniqueIndex:uniq_show_season_episode"`
	EpisodeNumber int           `json:"episode_number" gorm:"not null;uniqueIndex:uniq_show_season_episode"`
	Title         string        `json:"title" gorm:"type:varchar(255);not null"`
	TitleTr       LocalizedText `json:"title_tr" gorm:"embedded;embeddedPrefix:title_"`
	Description   string        `json:"description" gorm:"type:text"`
	DescriptionTr LocalizedText `json:"description_tr" gorm:"embedded;embeddedPrefix:description_"`
	Duration      int           `json:"duration" gorm:"not null;comment:duration in minutes"`
	FileURL       string        `json:"file_url" gorm:"type:varchar(255);not null"`
	Thumbnail     string        `json:"thumbnail" gorm:"type:varchar(255)"`
}

func (Episode) TableName() string {
	return "episodes"
}

// BeforeCreate rejects episodes whose parent content is not a tv_show.
func (e *Episode) BeforeCreate(tx *gorm.DB) error {
	var show Movie
	if err := tx.Select("id", "content_type").First(&show, e.TVShowID).Error; err != nil {
		return fmt.Errorf("tv show %d: %w", e.TVShowID, err)
	}
	if show.ContentType != ContentTypeTVShow {
		return ErrNotTVShow
	}
	return nil
}

// EpisodeResponse is the localized public representation.
type EpisodeResponse struct {
	ID            uint   `json:"id"`
	TVShowID      uint   `json:"tv_show_id"`
	SeasonNumber  int    `json:"season_number"`
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      int    `json:"duration"`
	FileURL       string `json:"file_url"`
	Thumbnail     string `json:"thumbnail,omitempty"`
}

func (e *Episode) ToResponse(lang string) EpisodeResponse {
	return EpisodeResponse{
		ID:            e.ID,
		TVShowID:      e.TVShowID,
		SeasonNumber:  e.SeasonNumber,
		EpisodeNumber: e.EpisodeNumber,
		Title:         e.TitleTr.Resolve(lang, e.Title),
		Description:   e.DescriptionTr.Resolve(lang, e.Description),
		Duration:      e.Duration,
		FileURL:       e.FileURL,
		Thumbnail:     e.Thumbnail,
	}
}
