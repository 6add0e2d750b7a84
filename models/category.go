package models

import (
	"gorm.io/gorm"
)

// Category is the top level of the catalog taxonomy.
type Category struct {
	gorm.Model
	Name          string        `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	NameTr        LocalizedText `json:"name_tr" gorm:"embedded;embeddedPrefix:name_"`
	Slug          string        `json:"slug" gorm:"type:varchar(110);uniqueIndex;not null"`
	Description   string        `json:"description" gorm:"type:text"`
	DescriptionTr LocalizedText `json:"description_tr" gorm:"embedded;embeddedPrefix:description_"`
	Icon          string        `json:"icon" gorm:"type:varchar(50)"`
	Order         int           `json:"order" gorm:"default:0"`
	IsActive      bool          `json:"is_active"`

	Genres []Genre `json:"genres,omitempty" gorm:"constraint:OnDelete:SET NULL"`
}

func (Category) TableName() string {
	return "categories"
}

// Genre belongs optionally to a category.
type Genre struct {
	gorm.Model
	Name          string        `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	NameTr        LocalizedText `json:"name_tr" gorm:"embedded;embeddedPrefix:name_"`
	Slug          string        `json:"slug" gorm:"type:varchar(110);uniqueIndex;not null"`
	Description   string        `json:"description" gorm:"type:text"`
	DescriptionTr LocalizedText `json:"description_tr" gorm:"embedded;embeddedPrefix:description_"`
	CategoryID    *uint         `json:"category_id,omitempty" gorm:"index"`
}

func (Genre) TableName() string {
	return "genres"
}

// CategoryResponse is the localized public representation.
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
}

func (c *Category) ToResponse(lang string) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.NameTr.Resolve(lang, c.Name),
		Slug:        c.Slug,
		Description: c.DescriptionTr.Resolve(lang, c.Description),
		Icon:        c.Icon,
		Order:       c.Order,
	}
}

// GenreResponse is the localized public representation.
type GenreResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	CategoryID  *uint  `json:"category_id,omitempty"`
}

func (g *Genre) ToResponse(lang string) GenreResponse {
	return GenreResponse{
		ID:          g.ID,
		Name:        g.NameTr.Resolve(lang, g.Name),
		Slug:        g.Slug,
		Description: g.DescriptionTr.Resolve(lang, g.Description),
		CategoryID:  g.CategoryID,
	}
}
