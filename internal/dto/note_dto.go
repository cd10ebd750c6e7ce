package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=255"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags" validate:"omitempty,dive,min=1,max=50"`
	Visibility  string    `json:"visibility" validate:"omitempty,oneof=public private"`
	Status      string    `json:"status" validate:"omitempty,oneof=draft published"`
	WorkspaceId uuid.UUID `json:"workspace_id" validate:"required"`
}

// UpdateNoteRequest applies a partial update: nil fields keep the note's
// current value, and a nil Tags leaves associations untouched while an
// empty non-nil slice clears them.
type UpdateNoteRequest struct {
	Id         uuid.UUID
	Title      *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags" validate:"omitempty,dive,min=1,max=50"`
	Visibility *string   `json:"visibility" validate:"omitempty,oneof=public private"`
	Status     *string   `json:"status" validate:"omitempty,oneof=draft published"`
}

type VoteRequest struct {
	Kind string `json:"vote_kind" validate:"required,oneof=upvote downvote"`
}

type PrivateListQuery struct {
	PageQuery
	Query string `query:"q"`
}

type PublicListQuery struct {
	PageQuery
	Query string `query:"q"`
	Sort  string `query:"sort" validate:"omitempty,oneof=new old most_upvotes most_downvotes"`
	Tag   string `query:"tag"`
}

type NoteResponse struct {
	Id             uuid.UUID  `json:"id"`
	WorkspaceId    uuid.UUID  `json:"workspace_id"`
	AuthorId       uuid.UUID  `json:"author_id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Visibility     string     `json:"visibility"`
	Status         string     `json:"status"`
	UpvotesCount   int        `json:"upvotes_count"`
	DownvotesCount int        `json:"downvotes_count"`
	Tags           []string   `json:"tags"`
	PublishedAt    *time.Time `json:"published_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type NoteHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	NoteId    uuid.UUID `json:"note_id"`
	UserId    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
