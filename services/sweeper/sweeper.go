// Package sweeper runs the periodic maintenance loop: lapsed premium
// windows are cleared (with a notice mail) and premier titles past their
// availability window are deactivated.
package sweeper

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/services/activity"
	"github.com/diyorbe-beep/kino11111/services/mail"
	"github.com/diyorbe-beep/kino11111/utils"
)

// Sweeper is the periodic maintenance scheduler.
type Sweeper struct {
	db           *gorm.DB
	interval     time.Duration
	mailService  *mail.MailService
	activitySvc  *activity.ActivityService
	mu           sync.Mutex
	isRunning    bool
	stopChan     chan bool
	completeChan chan bool
}

func NewSweeper(db *gorm.DB, interval time.Duration, mailService *mail.MailService, activitySvc *activity.ActivityService) *Sweeper {
	return &Sweeper{
		db:           db,
		interval:     interval,
		mailService:  mailService,
		activitySvc:  activitySvc,
		stopChan:     make(chan bool),
		completeChan: make(chan bool),
	}
}

// Start launches the sweep loop in its own goroutine. Safe to call once at
// startup.
func (s *Sweeper) Start() {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		utils.LogInfo("sweeper already running")
		return
	}
	s.isRunning = true
	s.mu.Unlock()
	utils.LogInfo("sweeper started")

	go func() {
		for {
			select {
			case <-time.After(s.interval):
				s.Sweep(time.Now())
			case <-s.stopChan:
				utils.LogInfo("sweeper stopped")
				s.mu.Lock()
				s.isRunning = false
				s.mu.Unlock()
				s.completeChan <- true
				return
			}
		}
	}()
}

// Stop shuts the loop down and waits for it to exit.
func (s *Sweeper) Stop() {
	if !s.IsRunning() {
		return
	}
	s.stopChan <- true
	<-s.completeChan
}

// IsRunning reports whether the loop is active.
func (s *Sweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// Sweep runs one maintenance pass at the given instant. Exported so tests
// and admin tooling can trigger it directly.
func (s *Sweeper) Sweep(now time.Time) {
	s.expirePremium(now)
	s.expirePremiers(now)
}

// expirePremium clears the premium flag of users whose window has lapsed.
// Entitlement checks recompute from premium_until on every call, so this is
// cleanup plus notification rather than enforcement.
func (s *Sweeper) expirePremium(now time.Time) {
	var lapsed []models.User
	if err := s.db.Where("is_premium = ? AND premium_until IS NOT NULL AND premium_until <= ?", true, now).
		Find(&lapsed).Error; err != nil {
		utils.LogError("sweep: querying lapsed premium users failed", err)
		return
	}

	for i := range lapsed {
		user := &lapsed[i]
		if err := s.db.Model(user).Update("is_premium", false).Error; err != nil {
			utils.LogError("sweep: clearing premium flag failed", err)
			continue
		}
		s.activitySvc.RecordActivity(models.ActivityPremium,
			fmt.Sprintf("premium subscription of %q expired", user.Username))
		s.mailService.SendPremiumExpired(user.Email, user.Username)
	}

	if len(lapsed) > 0 {
		utils.LogInfo(fmt.Sprintf("sweep: cleared %d lapsed premium subscriptions", len(lapsed)))
	}
}

// expirePremiers deactivates premier titles whose availability window ended.
func (s *Sweeper) expirePremiers(now time.Time) {
	res := s.db.Model(&models.Movie{}).
		Where("is_premier = ? AND is_active = ? AND available_until IS NOT NULL AND available_until <= ?", true, true, now).
		Update("is_active", false)
	if res.Error != nil {
		utils.LogError("sweep: deactivating expired premiers failed", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		s.activitySvc.RecordActivity(models.ActivitySystem,
			fmt.Sprintf("%d premier title(s) reached the end of availability and were deactivated", res.RowsAffected))
	}
}
