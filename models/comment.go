package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a threaded comment on a movie. Parent is a nullable
// self-reference; a reply always belongs to the same movie as its parent.
// Nesting depth is unbounded: the write path only validates the parent, and
// the read path nests active replies recursively. Deleting is a soft delete
// (IsActive=false) and never cascades to replies, which stay visible or
// hidden by their own flag.
type Comment struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null;index"`
	User     User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	MovieID  uint   `json:"movie_id" gorm:"not null;index"`
	Movie    Movie  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Text     string `json:"text" gorm:"type:text;not null"`
	ParentID *uint  `json:"parent_id,omitempty" gorm:"index"`
	IsActive bool   `json:"is_active"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentResponse carries a comment with its active replies nested.
type CommentResponse struct {
	ID         uint              `json:"id"`
	User       PublicInfo        `json:"user"`
	MovieID    uint              `json:"movie_id"`
	MovieTitle string            `json:"movie_title,omitempty"`
	Text       string            `json:"text"`
	ParentID   *uint             `json:"parent_id,omitempty"`
	Replies    []CommentResponse `json:"replies"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ToResponse builds the nested representation, loading active replies
// recursively. Inactive comments are excluded at every depth.
func (c *Comment) ToResponse(db *gorm.DB, lang string) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		User:      c.User.PublicInfo(),
		MovieID:   c.MovieID,
		Text:      c.Text,
		ParentID:  c.ParentID,
		Replies:   []CommentResponse{},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Movie.ID != 0 {
		resp.MovieTitle = c.Movie.TitleTr.Resolve(lang, c.Movie.Title)
	}

	var replies []Comment
	if err := db.Preload("User").
		Where("parent_id = ? AND is_active = ?", c.ID, true).
		Order("created_at ASC").
		Find(&replies).Error; err == nil {
		for i := range replies {
			resp.Replies = append(resp.Replies, replies[i].ToResponse(db, lang))
		}
	}
	return resp
}
