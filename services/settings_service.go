package services

import (
	"errors"
	"strconv"
	"strings"

	"taskping/taskping/database"
	"taskping/taskping/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinPingIntervalHours = 0
	MaxPingIntervalHours = 24
)

type SettingsServiceInterface interface {
	GetSettings(db *database.Database, userID uuid.UUID) (models.User, error)
	UpdateSettings(db *database.Database, userID uuid.UUID, webhookURL, intervalRaw string) (models.User, error)
}

type SettingsService struct{}

// ClampInterval parses a raw interval string into hours. Unparseable input
// falls back to 0 rather than surfacing an error; out-of-range values are
// clamped to [0,24].
func ClampInterval(raw string) int {
	hours, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return MinPingIntervalHours
	}
	if hours < MinPingIntervalHours {
		return MinPingIntervalHours
	}
	if hours > MaxPingIntervalHours {
		return MaxPingIntervalHours
	}
	return hours
}

func (s *SettingsService) GetSettings(db *database.Database, userID uuid.UUID) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *SettingsService) UpdateSettings(db *database.Database, userID uuid.UUID, webhookURL, intervalRaw string) (models.User, error) {
	user, err := s.GetSettings(db, userID)
	if err != nil {
		return models.User{}, err
	}

	// Empty webhook is stored as NULL, not as an empty string.
	webhookURL = strings.TrimSpace(webhookURL)
	var webhook *string
	if webhookURL != "" {
		webhook = &webhookURL
	}

	updates := map[string]interface{}{
		"webhook_url":         webhook,
		"ping_interval_hours": ClampInterval(intervalRaw),
	}
	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		return models.User{}, err
	}

	user.WebhookURL = webhook
	user.PingIntervalHours = updates["ping_interval_hours"].(int)
	return user, nil
}

var SettingsServiceInstance SettingsServiceInterface = &SettingsService{}
