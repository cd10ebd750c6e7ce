package contract

import (
	"context"

	"github.com/google/uuid"
)

type NoteTagRepository interface {
	// Replace drops every association for the note and links the given
	// tag ids. Replace semantics, not a diff.
	Replace(ctx context.Context, noteId uuid.UUID, tagIds []uuid.UUID) error
	DeleteAllForNote(ctx context.Context, noteId uuid.UUID) error
}
