package implementation

import (
	"context"
	"errors"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/mapper"
	"note-sharing-be/internal/model"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/repository/contract"
	"note-sharing-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteVoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteVoteMapper
}

func NewNoteVoteRepository(db *gorm.DB) contract.NoteVoteRepository {
	return &NoteVoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteVoteMapper(),
	}
}

func (r *NoteVoteRepositoryImpl) Create(ctx context.Context, vote *entity.NoteVote) error {
	m := r.mapper.ToModel(vote)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			// A second vote row for the same (note, user) pair lost a
			// race past the note lock; surface it as a conflict so the
			// transaction aborts cleanly instead of corrupting counters.
			return apperr.Conflict("vote already exists for this note and user")
		}
		return err
	}
	*vote = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteVoteRepositoryImpl) Update(ctx context.Context, vote *entity.NoteVote) error {
	m := r.mapper.ToModel(vote)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*vote = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteVoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.NoteVote{}, id).Error
}

func (r *NoteVoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteVote, error) {
	var m model.NoteVote
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteVoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.NoteVote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
