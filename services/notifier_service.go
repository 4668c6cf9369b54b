package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"taskping/taskping/broker"
	"taskping/taskping/database"
	"taskping/taskping/models"
)

const (
	embedColor      = 0x00FF99
	emptyNoteFiller = "No extra info"
)

type NotifierServiceInterface interface {
	BuildMessage(user *models.User, tasks []models.Task, now time.Time) models.WebhookMessage
	Send(db *database.Database, user *models.User)
}

type NotifierService struct {
	client *http.Client
}

func NewNotifierService(timeout time.Duration) *NotifierService {
	return &NotifierService{
		client: &http.Client{Timeout: timeout},
	}
}

// BuildMessage renders a user's pending tasks as a Discord embed. Tasks that
// are already done are skipped; with nothing pending the embed carries only
// the celebratory description, no fields.
func (s *NotifierService) BuildMessage(user *models.User, tasks []models.Task, now time.Time) models.WebhookMessage {
	var pending []models.Task
	for _, t := range tasks {
		if !t.Done {
			pending = append(pending, t)
		}
	}

	description := "No pending tasks 🎉"
	if len(pending) > 0 {
		description = fmt.Sprintf("You have **%d** pending tasks.", len(pending))
	}

	embed := models.Embed{
		Title:       fmt.Sprintf("📝 Tasks for %s", user.Email),
		Description: description,
		Color:       embedColor,
		Timestamp:   now.UTC().Format(time.RFC3339),
	}

	for _, t := range pending {
		value := t.Note
		if value == "" {
			value = emptyNoteFiller
		}
		embed.Fields = append(embed.Fields, models.EmbedField{
			Name:   fmt.Sprintf("%d. %s", t.ID, t.Title),
			Value:  value,
			Inline: false,
		})
	}

	return models.WebhookMessage{Embeds: []models.Embed{embed}}
}

// Send posts the user's pending-task summary to their webhook. Delivery is
// best effort: transport errors and non-2xx responses are logged and
// swallowed, never surfaced to the caller, never retried.
func (s *NotifierService) Send(db *database.Database, user *models.User) {
	if !user.HasWebhook() {
		log.Printf("user %s has no webhook configured, skipping notification", user.ID)
		return
	}

	tasks, err := TaskServiceInstance.PendingTasks(db, user.ID)
	if err != nil {
		log.Printf("failed to load pending tasks for user %s: %v", user.ID, err)
		return
	}
	if len(tasks) == 0 {
		log.Printf("user %s has no pending tasks, skipping notification", user.ID)
		return
	}

	message := s.BuildMessage(user, tasks, time.Now())

	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("failed to encode webhook payload for user %s: %v", user.ID, err)
		return
	}

	resp, err := s.client.Post(*user.WebhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("webhook delivery failed for user %s: %v", user.ID, err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	log.Printf("webhook response for user %s: status=%d body=%s", user.ID, resp.StatusCode, string(body))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("webhook delivery for user %s returned non-success status %d", user.ID, resp.StatusCode)
		return
	}

	broker.PublishEvent(broker.PingEventsSubject, string(broker.PingSent), map[string]interface{}{
		"user_id":       user.ID.String(),
		"pending_tasks": len(tasks),
	})
}

var NotifierServiceInstance NotifierServiceInterface
