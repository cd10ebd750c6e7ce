package contract

import (
	"context"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	// FindOneForUpdate takes a row-level lock on the matched note.
	// Voting serializes concurrent callers on this lock so the vote row
	// and the counters move together.
	FindOneForUpdate(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
