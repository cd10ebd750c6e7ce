package entity

import (
	"time"

	"github.com/google/uuid"
)

type VoteKind string

const (
	VoteKindUpvote   VoteKind = "upvote"
	VoteKindDownvote VoteKind = "downvote"
)

// NoteVote holds at most one row per (note, user) pair, enforced by a
// composite unique index in storage.
type NoteVote struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	UserId    uuid.UUID
	Kind      VoteKind
	CreatedAt time.Time
	UpdatedAt *time.Time
}
