package implementation

import (
	"context"

	"note-sharing-be/internal/model"
	"note-sharing-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteTagRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteTagRepository(db *gorm.DB) contract.NoteTagRepository {
	return &NoteTagRepositoryImpl{db: db}
}

func (r *NoteTagRepositoryImpl) Replace(ctx context.Context, noteId uuid.UUID, tagIds []uuid.UUID) error {
	if err := r.DeleteAllForNote(ctx, noteId); err != nil {
		return err
	}
	if len(tagIds) == 0 {
		return nil
	}

	rows := make([]model.NoteTag, 0, len(tagIds))
	for _, tagId := range tagIds {
		rows = append(rows, model.NoteTag{NoteId: noteId, TagId: tagId})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *NoteTagRepositoryImpl) DeleteAllForNote(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteTag{}).Error
}
