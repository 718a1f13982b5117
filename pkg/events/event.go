package events

import "time"

// Event is the contract all published system events satisfy.
type Event interface {
	// EventType returns the subject suffix for this event (e.g. "chat.activity").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain Event implementation for ad-hoc publishing.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// EventChatActivity is emitted after every handled chat message.
const EventChatActivity = "chat.activity"

// NewChatActivity records one routed chat exchange for downstream analytics.
func NewChatActivity(userId, route string, replyChars int) Event {
	return BaseEvent{
		Type: EventChatActivity,
		Data: map[string]interface{}{
			"user_id":     userId,
			"route":       route,
			"reply_chars": replyChars,
		},
		OccurredAt: time.Now(),
	}
}
