package dto

import (
	"time"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	Id        uuid.UUID              `json:"id"`
	TypeCode  string                 `json:"type_code"`
	EntityId  *uuid.UUID             `json:"entity_id,omitempty"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

// NoteEventMessage is the payload carried on the in-process event bus
// between the note lifecycle and the notification consumer.
type NoteEventMessage struct {
	Type     string    `json:"type"`
	NoteId   uuid.UUID `json:"note_id"`
	AuthorId uuid.UUID `json:"author_id"`
	ActorId  uuid.UUID `json:"actor_id"`
	Title    string    `json:"title"`
	VoteKind string    `json:"vote_kind,omitempty"`
}
