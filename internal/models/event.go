package models

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSyncChanged     EventType = "sync_changed"
	EventBookOnChanged   EventType = "book_on_changed"
	EventCallsignChanged EventType = "callsign_changed"
	EventNotificationDue EventType = "notification_due"
)

// StateEvent - событие изменения состояния, рассылаемое подписчикам
type StateEvent struct {
	ID             uuid.UUID `json:"id"`
	Type           EventType `json:"type"`
	Callsign       string    `json:"callsign,omitempty"`
	IncidentNumber string    `json:"incident_number,omitempty"`
	Title          string    `json:"title,omitempty"`
	Body           string    `json:"body,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

func NewStateEvent(eventType EventType) StateEvent {
	return StateEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
	}
}

// ScheduledNotification - локальное уведомление, которое нужно показать в FireAt
type ScheduledNotification struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	FireAt time.Time `json:"fire_at"`
}
