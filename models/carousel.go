package models

import (
	"time"
)

// Carousel is a home-page slide, admin managed, optionally linking to a
// movie and limited to a display window.
type Carousel struct {
	ID         uint          `json:"-" gorm:"primarykey"`
	CreatedAt  time.Time     `json:"-"`
	UpdatedAt  time.Time     `json:"-"`
	Title      string        `json:"-" gorm:"type:varchar(255);not null"`
	TitleTr    LocalizedText `json:"-" gorm:"embedded;embeddedPrefix:title_"`
	Subtitle   string        `json:"-" gorm:"type:varchar(255)"`
	SubtitleTr LocalizedText `json:"-" gorm:"embedded;embeddedPrefix:subtitle_"`
	ImageURL   string        `json:"-" gorm:"type:varchar(255);not null"`
	MovieID    *uint         `json:"-" gorm:"index"`
	Link       string        `json:"-" gorm:"type:varchar(255)"`
	Order      int           `json:"-" gorm:"type:int;default:0"`
	IsActive   bool          `json:"-"`
	StartDate  *time.Time    `json:"-"`
	EndDate    *time.Time    `json:"-"`
}

func (Carousel) TableName() string {
	return "carousels"
}

// VisibleAt reports whether the slide should be shown at the given instant.
func (c *Carousel) VisibleAt(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.StartDate != nil && now.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && now.After(*c.EndDate) {
		return false
	}
	return true
}

// CarouselResponse is the localized public representation of a slide.
type CarouselResponse struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle,omitempty"`
	ImageURL  string     `json:"image_url"`
	MovieID   *uint      `json:"movie_id,omitempty"`
	Link      string     `json:"link,omitempty"`
	Order     int        `json:"order"`
	IsActive  bool       `json:"is_active"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToResponse converts the model to its localized response form.
func (c *Carousel) ToResponse(lang string) CarouselResponse {
	return CarouselResponse{
		ID:        c.ID,
		Title:     c.TitleTr.Resolve(lang, c.Title),
		Subtitle:  c.SubtitleTr.Resolve(lang, c.Subtitle),
		ImageURL:  c.ImageURL,
		MovieID:   c.MovieID,
		Link:      c.Link,
		Order:     c.Order,
		IsActive:  c.IsActive,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
