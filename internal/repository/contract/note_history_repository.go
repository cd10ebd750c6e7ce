package contract

import (
	"context"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/repository/specification"
)

type NoteHistoryRepository interface {
	Create(ctx context.Context, history *entity.NoteHistory) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteHistory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteHistory, error)
}
