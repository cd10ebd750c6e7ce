package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteVote enforces one vote per user per note with the composite unique
// index; the vote state machine relies on storage rejecting a second row.
type NoteVote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_note_votes_note_user,priority:1"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_note_votes_note_user,priority:2"`
	Kind      string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Note Note `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
}

func (NoteVote) TableName() string {
	return "note_votes"
}
