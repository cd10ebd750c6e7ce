package mapper

import (
	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/model"
)

type NoteVoteMapper struct{}

func NewNoteVoteMapper() *NoteVoteMapper {
	return &NoteVoteMapper{}
}

func (m *NoteVoteMapper) ToEntity(v *model.NoteVote) *entity.NoteVote {
	if v == nil {
		return nil
	}
	return &entity.NoteVote{
		Id:        v.Id,
		NoteId:    v.NoteId,
		UserId:    v.UserId,
		Kind:      entity.VoteKind(v.Kind),
		CreatedAt: v.CreatedAt,
		UpdatedAt: updatedAtPtr(v.UpdatedAt),
	}
}

func (m *NoteVoteMapper) ToModel(v *entity.NoteVote) *model.NoteVote {
	if v == nil {
		return nil
	}
	return &model.NoteVote{
		Id:        v.Id,
		NoteId:    v.NoteId,
		UserId:    v.UserId,
		Kind:      string(v.Kind),
		CreatedAt: v.CreatedAt,
		UpdatedAt: updatedAtVal(v.UpdatedAt),
	}
}
