package contract

import (
	"context"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteVoteRepository interface {
	Create(ctx context.Context, vote *entity.NoteVote) error
	Update(ctx context.Context, vote *entity.NoteVote) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteVote, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
