package mapper

import (
	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/model"
)

type NoteMapper struct {
	tagMapper *TagMapper
}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{
		tagMapper: NewTagMapper(),
	}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}
	return &entity.Note{
		Id:             n.Id,
		WorkspaceId:    n.WorkspaceId,
		AuthorId:       n.AuthorId,
		Title:          n.Title,
		Content:        n.Content,
		Visibility:     entity.NoteVisibility(n.Visibility),
		Status:         entity.NoteStatus(n.Status),
		UpvotesCount:   n.UpvotesCount,
		DownvotesCount: n.DownvotesCount,
		PublishedAt:    n.PublishedAt,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      updatedAtPtr(n.UpdatedAt),
		Tags:           m.tagMapper.ToEntityValues(n.Tags),
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	// Tags are deliberately not mapped back: associations are written
	// through the note_tags repository, never via gorm association saves.
	return &model.Note{
		Id:             n.Id,
		WorkspaceId:    n.WorkspaceId,
		AuthorId:       n.AuthorId,
		Title:          n.Title,
		Content:        n.Content,
		Visibility:     string(n.Visibility),
		Status:         string(n.Status),
		UpvotesCount:   n.UpvotesCount,
		DownvotesCount: n.DownvotesCount,
		PublishedAt:    n.PublishedAt,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      updatedAtVal(n.UpdatedAt),
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
