package activity

import (
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

// ActivityService appends entries to the admin activity feed.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// RecordActivity appends a new feed entry.
func (s *ActivityService) RecordActivity(activityType string, content string) error {
	entry := models.Activity{
		Type:    activityType,
		Content: content,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		utils.LogError("failed to record activity", err)
		return err
	}

	return nil
}

// GetRecentActivities returns the newest feed entries.
func (s *ActivityService) GetRecentActivities(limit int) ([]models.Activity, error) {
	var activities []models.Activity

	if err := s.db.Order("created_at DESC").Limit(limit).Find(&activities).Error; err != nil {
		utils.LogError("failed to fetch recent activities", err)
		return nil, err
	}

	return activities, nil
}
