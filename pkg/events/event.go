package events

import "time"

// Event types published by the note lifecycle. Consumers fan these out
// to notifications; publishing is best-effort and never fails a request.
const (
	TypeNotePublished = "NOTE_PUBLISHED"
	TypeNoteVoted     = "NOTE_VOTED"
	TypeCompanyJoined = "COMPANY_JOINED"
)

type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

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
