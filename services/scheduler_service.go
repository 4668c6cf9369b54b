package services

import (
	"log"
	"time"

	"taskping/taskping/database"
	"taskping/taskping/models"
)

type SchedulerServiceInterface interface {
	ShouldPing(user *models.User, now time.Time) bool
	Sweep(db *database.Database, now time.Time) error
}

type SchedulerService struct {
	notifier NotifierServiceInterface
}

func NewSchedulerService(notifier NotifierServiceInterface) *SchedulerService {
	return &SchedulerService{notifier: notifier}
}

// ShouldPing decides whether a user is due for a summary at the given time.
// No webhook or a disabled interval means never due. A user who has never
// been pinged is due immediately; otherwise the full interval must have
// elapsed since the last ping.
func (s *SchedulerService) ShouldPing(user *models.User, now time.Time) bool {
	if !user.HasWebhook() {
		return false
	}
	if user.PingIntervalHours <= 0 {
		return false
	}
	if user.LastPingAt == nil {
		return true
	}
	interval := time.Duration(user.PingIntervalHours) * time.Hour
	return now.Sub(*user.LastPingAt) >= interval
}

// Sweep runs one full pass over all users, delivering to every due user and
// recording the ping time. All last_ping_at updates commit together at the
// end of the pass; a user whose delivery failed internally is still marked
// pinged, so a bad webhook is retried at most once per interval.
func (s *SchedulerService) Sweep(db *database.Database, now time.Time) error {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		return err
	}

	var pinged []models.User
	for i := range users {
		user := &users[i]
		if !s.ShouldPing(user, now) {
			continue
		}
		log.Printf("sweep: user %s is due, sending summary", user.ID)
		s.notifier.Send(db, user)
		pinged = append(pinged, *user)
	}

	if len(pinged) == 0 {
		log.Println("sweep: no users due")
		return nil
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	for i := range pinged {
		if err := tx.Model(&pinged[i]).Update("last_ping_at", now).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	log.Printf("sweep: pinged %d of %d users", len(pinged), len(users))
	return nil
}

var SchedulerServiceInstance SchedulerServiceInterface
