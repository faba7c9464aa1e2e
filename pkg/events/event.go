package events

import "time"

// Event type codes published on the bus.
const (
	TypeSessionAudioComplete = "SESSION_AUDIO_COMPLETE"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_AUDIO_COMPLETE").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic carrier used by both the publisher and the subscriber.
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

// NewSessionAudioComplete signals that the final audio chunk of a session has
// been uploaded and the recording is ready for downstream processing.
func NewSessionAudioComplete(sessionID string, totalChunks int) Event {
	return BaseEvent{
		Type: TypeSessionAudioComplete,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"total_chunks": totalChunks,
		},
		OccurredAt: time.Now(),
	}
}
