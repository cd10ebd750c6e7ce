package contract

import (
	"context"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/repository/specification"
)

type TagRepository interface {
	// GetOrCreate resolves a tag by exact name, creating it when missing.
	// A concurrent create of the same name must resolve to the winner's
	// row instead of failing.
	GetOrCreate(ctx context.Context, name string) (*entity.Tag, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
}
