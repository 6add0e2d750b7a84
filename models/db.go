package models

import (
	"gorm.io/gorm"
)

// DB is the global database handle shared by model-level helpers
var DB *gorm.DB

// SetDB sets the global database handle
func SetDB(db *gorm.DB) {
	DB = db
}
