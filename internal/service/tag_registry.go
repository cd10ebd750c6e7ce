package service

import (
	"context"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/repository/unitofwork"
)

// TagRegistry resolves tag names to rows, creating missing ones. Tags are
// global and case-sensitive; two workspaces using "golang" share one row.
type TagRegistry struct{}

func NewTagRegistry() *TagRegistry {
	return &TagRegistry{}
}

// ResolveOrCreate returns tags in input order with duplicates collapsed
// onto their first occurrence. Creation races inside the repository
// resolve to the surviving row, so a conflict never reaches the caller.
func (r *TagRegistry) ResolveOrCreate(ctx context.Context, uow unitofwork.UnitOfWork, names []string) ([]entity.Tag, error) {
	tags := make([]entity.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		tag, err := uow.TagRepository().GetOrCreate(ctx, name)
		if err != nil {
			return nil, apperr.Storage("could not resolve tag", err)
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}
