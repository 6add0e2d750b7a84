package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/models"
)

// InitDB opens the MySQL connection from env settings and migrates the
// schema. Uniqueness constraints on users, slugs, ratings, favorites, videos
// and episodes live in the column tags and are created here.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	return db, nil
}

// Migrate runs schema migration for every model. Split out so tests can run
// it against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Category{},
		&models.Genre{},
		&models.Movie{},
		&models.Video{},
		&models.Episode{},
		&models.Comment{},
		&models.Rating{},
		&models.MovieView{},
		&models.Favorite{},
		&models.PremiumCode{},
		&models.Carousel{},
		&models.Activity{},
	)
}
