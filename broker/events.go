package broker

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	// Standardized event types in format: <resource>.<action>
	UserRegistered EventType = "user.registered"

	TaskCreated   EventType = "task.created"
	TaskCompleted EventType = "task.completed"

	PingSent EventType = "ping.sent"
)

// Event is the JSON envelope published for every domain event.
type Event struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

func NewEvent(eventType string, data map[string]interface{}) ([]byte, error) {
	return json.Marshal(Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}
