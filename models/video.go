package models

import (
	"gorm.io/gorm"
)

// Video qualities
const (
	QualitySD  = "SD"
	QualityHD  = "HD"
	QualityFHD = "FHD"
	QualityUHD = "UHD"
)

// ValidQuality reports whether q is a known quality tag.
func ValidQuality(q string) bool {
	switch q {
	case QualitySD, QualityHD, QualityFHD, QualityUHD:
		return true
	}
	return false
}

// Audio track languages a video file can carry. Wider than the interface
// languages: dubs exist that the UI is never translated into.
var VideoLanguages = []string{"en", "uz", "ru", "kr", "jp"}

// ValidVideoLanguage reports whether lang is a known audio language.
func ValidVideoLanguage(lang string) bool {
	for _, v := range VideoLanguages {
		if v == lang {
			return true
		}
	}
	return false
}

// Video is one playable file variant of a movie. The system stores file
// references and size/duration metadata only; encoding is out of scope.
type Video struct {
	gorm.Model
	MovieID          uint    `json:"movie_id" gorm:"not null;uniqueIndex:uniq_movie_quality_lang"`
	Quality          string  `json:"quality" gorm:"type:varchar(10);default:'HD';uniqueIndex:uniq_movie_quality_lang"`
	Language         string  `json:"language" gorm:"type:varchar(10);default:'en';uniqueIndex:uniq_movie_quality_lang"`
	SubtitleLanguage *string `json:"subtitle_language,omitempty" gorm:"type:varchar(10)"`
	VideoFile        string  `json:"video_file" gorm:"type:varchar(255);not null"`
	Thumbnail        string  `json:"thumbnail" gorm:"type:varchar(255)"`
	Size             *int64  `json:"size,omitempty" gorm:"comment:file size in bytes"`
	Duration         *int    `json:"duration,omitempty" gorm:"comment:duration in seconds"`
	IsActive         bool    `json:"is_active"`
}

func (Video) TableName() string {
	return "videos"
}

// VideoResponse is the public representation of a video variant.
type VideoResponse struct {
	ID               uint    `json:"id"`
	Quality          string  `json:"quality"`
	Language         string  `json:"language"`
	SubtitleLanguage *string `json:"subtitle_language,omitempty"`
	VideoFile        string  `json:"video_file"`
	Thumbnail        string  `json:"thumbnail,omitempty"`
	Size             *int64  `json:"size,omitempty"`
	Duration         *int    `json:"duration,omitempty"`
}

func (v *Video) ToResponse() VideoResponse {
	return VideoResponse{
		ID:               v.ID,
		Quality:          v.Quality,
		Language:         v.Language,
		SubtitleLanguage: v.SubtitleLanguage,
		VideoFile:        v.VideoFile,
		Thumbnail:        v.Thumbnail,
		Size:             v.Size,
		Duration:         v.Duration,
	}
}
