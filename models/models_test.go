package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&User{}, &UserProfile{}, &Category{}, &Genre{},
		&Movie{}, &Video{}, &Episode{},
		&Comment{}, &Rating{}, &MovieView{}, &Favorite{},
		&PremiumCode{}, &Carousel{}, &Activity{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *User {
	t.Helper()
	user := &User{
		Username: username,
		Email:    username + "@example.com",
		Password: "irrelevant",
		IsActive: true,
		Role:     RoleRegular,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestMovie(t *testing.T, db *gorm.DB, title string, premium bool) *Movie {
	t.Helper()
	movie := &Movie{
		Title:       title,
		Slug:        title,
		ReleaseYear: 2024,
		Duration:    120,
		ContentType: ContentTypeMovie,
		IsPremium:   premium,
		IsActive:    true,
	}
	require.NoError(t, db.Create(movie).Error)
	return movie
}
