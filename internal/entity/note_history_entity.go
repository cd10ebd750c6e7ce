package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoteHistory is an append-only snapshot of a note's title/content taken
// before a mutation. Rows are never updated; they go away only when the
// owning note is deleted.
type NoteHistory struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	UserId    uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
}
