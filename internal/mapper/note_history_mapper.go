package mapper

import (
	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/model"
)

type NoteHistoryMapper struct{}

func NewNoteHistoryMapper() *NoteHistoryMapper {
	return &NoteHistoryMapper{}
}

func (m *NoteHistoryMapper) ToEntity(h *model.NoteHistory) *entity.NoteHistory {
	if h == nil {
		return nil
	}
	return &entity.NoteHistory{
		Id:        h.Id,
		NoteId:    h.NoteId,
		UserId:    h.UserId,
		Title:     h.Title,
		Content:   h.Content,
		CreatedAt: h.CreatedAt,
	}
}

func (m *NoteHistoryMapper) ToModel(h *entity.NoteHistory) *model.NoteHistory {
	if h == nil {
		return nil
	}
	return &model.NoteHistory{
		Id:        h.Id,
		NoteId:    h.NoteId,
		UserId:    h.UserId,
		Title:     h.Title,
		Content:   h.Content,
		CreatedAt: h.CreatedAt,
	}
}

func (m *NoteHistoryMapper) ToEntities(entries []*model.NoteHistory) []*entity.NoteHistory {
	entities := make([]*entity.NoteHistory, len(entries))
	for i, h := range entries {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
