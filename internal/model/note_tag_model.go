package model

import (
	"github.com/google/uuid"
)

// NoteTag is the notes<->tags join row. Associations are replaced
// wholesale on note update, so the row carries no payload of its own.
// Deleting a note cascades here; deleting the rows never touches the tag.
type NoteTag struct {
	NoteId uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagId  uuid.UUID `gorm:"type:uuid;primaryKey"`

	Note Note `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
	Tag  Tag  `gorm:"foreignKey:TagId;constraint:OnDelete:CASCADE"`
}

func (NoteTag) TableName() string {
	return "note_tags"
}
