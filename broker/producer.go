package broker

import (
	"log"

	"github.com/nats-io/nats.go"
)

const (
	UserEventsSubject = "taskping.user_events"
	TaskEventsSubject = "taskping.task_events"
	PingEventsSubject = "taskping.ping_events"
)

var conn *nats.Conn

// InitProducer connects to the event broker. Publishing is optional: an
// empty URL or a failed connection leaves the producer disabled and every
// PublishEvent call becomes a no-op.
func InitProducer(natsURL string) error {
	if natsURL == "" {
		log.Println("NATS_URL not set, event publishing is disabled")
		return nil
	}

	var err error
	conn, err = nats.Connect(natsURL)
	if err != nil {
		return err
	}

	log.Printf("NATS producer connected to %s", natsURL)
	return nil
}

func PublishEvent(subject string, eventType string, data map[string]interface{}) {
	if conn == nil {
		return
	}

	payload, err := NewEvent(eventType, data)
	if err != nil {
		log.Printf("Failed to encode event %s: %v", eventType, err)
		return
	}

	if err := conn.Publish(subject, payload); err != nil {
		log.Printf("Failed to publish event to %s: %v", subject, err)
	} else {
		log.Printf("Published %s event to %s", eventType, subject)
	}
}

func CloseProducer() {
	if conn != nil {
		conn.Close()
		conn = nil
	}
}
