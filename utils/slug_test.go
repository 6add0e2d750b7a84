package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Matrix", "the-matrix"},
		{"  Spaced  Out  ", "spaced-out"},
		{"Movie: Part 2!", "movie-part-2"},
		{"Брат", "brat"},
		{"O'tkan kunlar", "o-tkan-kunlar"},
		{"", "item"},
		{"!!!", "item"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestUniqueSlugAppendsCounter(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	type row struct {
		ID   uint   `gorm:"primarykey"`
		Slug string `gorm:"uniqueIndex"`
	}
	require.NoError(t, db.Table("items").AutoMigrate(&row{}))

	first := UniqueSlug(db, "items", "Some Title")
	assert.Equal(t, "some-title", first)
	require.NoError(t, db.Table("items").Create(&row{Slug: first}).Error)

	second := UniqueSlug(db, "items", "Some Title")
	assert.Equal(t, "some-title-2", second)
	require.NoError(t, db.Table("items").Create(&row{Slug: second}).Error)

	assert.Equal(t, "some-title-3", UniqueSlug(db, "items", "Some Title"))
}
