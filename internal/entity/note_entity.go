package entity

import (
	"time"

	"github.com/google/uuid"
)

type NoteVisibility string

const (
	NoteVisibilityPublic  NoteVisibility = "public"
	NoteVisibilityPrivate NoteVisibility = "private"
)

type NoteStatus string

const (
	NoteStatusDraft     NoteStatus = "draft"
	NoteStatusPublished NoteStatus = "published"
)

type Note struct {
	Id             uuid.UUID
	WorkspaceId    uuid.UUID
	AuthorId       uuid.UUID
	Title          string
	Content        string
	Visibility     NoteVisibility
	Status         NoteStatus
	UpvotesCount   int
	DownvotesCount int
	PublishedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	Tags           []Tag
}

// IsPubliclyVisible reports whether the note may be served without a
// tenant check: both flags must hold, not just one.
func (n *Note) IsPubliclyVisible() bool {
	return n.Visibility == NoteVisibilityPublic && n.Status == NoteStatusPublished
}
