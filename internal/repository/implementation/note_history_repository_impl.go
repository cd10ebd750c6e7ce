package implementation

import (
	"context"
	"errors"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/mapper"
	"note-sharing-be/internal/model"
	"note-sharing-be/internal/repository/contract"
	"note-sharing-be/internal/repository/specification"

	"gorm.io/gorm"
)

type NoteHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteHistoryMapper
}

func NewNoteHistoryRepository(db *gorm.DB) contract.NoteHistoryRepository {
	return &NoteHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteHistoryMapper(),
	}
}

func (r *NoteHistoryRepositoryImpl) Create(ctx context.Context, history *entity.NoteHistory) error {
	m := r.mapper.ToModel(history)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*history = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteHistoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteHistory, error) {
	var m model.NoteHistory
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteHistory, error) {
	var models []*model.NoteHistory
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
