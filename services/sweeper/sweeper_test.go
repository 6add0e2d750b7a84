package sweeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diyorbe-beep/kino11111/config"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/services/activity"
	"github.com/diyorbe-beep/kino11111/services/mail"
)

func newTestSweeper(t *testing.T) (*gorm.DB, *Sweeper) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	models.SetDB(db)

	s := NewSweeper(db, time.Minute, mail.NewMailService(), activity.NewActivityService(db))
	return db, s
}

func TestSweepClearsLapsedPremium(t *testing.T) {
	db, s := newTestSweeper(t)
	now := time.Now()

	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)
	lapsed := models.User{Username: "lapsed", Email: "lapsed@example.com", Password: "x", IsActive: true, IsPremium: true, PremiumUntil: &past}
	active := models.User{Username: "active", Email: "active@example.com", Password: "x", IsActive: true, IsPremium: true, PremiumUntil: &future}
	require.NoError(t, db.Create(&lapsed).Error)
	require.NoError(t, db.Create(&active).Error)

	s.Sweep(now)

	// one dest per lookup: gorm folds a stale primary key from a reused
	// dest into the WHERE clause
	var freshLapsed models.User
	require.NoError(t, db.First(&freshLapsed, lapsed.ID).Error)
	assert.False(t, freshLapsed.IsPremium)

	var freshActive models.User
	require.NoError(t, db.First(&freshActive, active.ID).Error)
	assert.True(t, freshActive.IsPremium)
}

func TestSweepDeactivatesExpiredPremiers(t *testing.T) {
	db, s := newTestSweeper(t)
	now := time.Now()

	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)
	expired := models.Movie{Title: "over", Slug: "over", ContentType: models.ContentTypeMovie, IsActive: true, IsPremier: true, AvailableUntil: &past}
	running := models.Movie{Title: "running", Slug: "running", ContentType: models.ContentTypeMovie, IsActive: true, IsPremier: true, AvailableUntil: &future}
	regular := models.Movie{Title: "plain", Slug: "plain", ContentType: models.ContentTypeMovie, IsActive: true}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&running).Error)
	require.NoError(t, db.Create(&regular).Error)

	s.Sweep(now)

	var freshExpired models.Movie
	require.NoError(t, db.First(&freshExpired, expired.ID).Error)
	assert.False(t, freshExpired.IsActive)

	var freshRunning models.Movie
	require.NoError(t, db.First(&freshRunning, running.ID).Error)
	assert.True(t, freshRunning.IsActive)

	var freshRegular models.Movie
	require.NoError(t, db.First(&freshRegular, regular.ID).Error)
	assert.True(t, freshRegular.IsActive)
}

func TestStartStop(t *testing.T) {
	_, s := newTestSweeper(t)

	assert.False(t, s.IsRunning())
	s.Start()
	assert.True(t, s.IsRunning())

	// a second Start is a no-op, so one Stop still shuts the loop down
	s.Start()
	s.Stop()
	assert.False(t, s.IsRunning())

	s.Stop()
	assert.False(t, s.IsRunning())
}
