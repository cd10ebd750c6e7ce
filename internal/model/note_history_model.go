package model

import (
	"time"

	"github.com/google/uuid"
)

type NoteHistory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;index:idx_note_histories_note_created,priority:1"`
	UserId    uuid.UUID `gorm:"type:uuid;not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_note_histories_note_created,priority:2,sort:desc"`

	Note Note `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
}

func (NoteHistory) TableName() string {
	return "note_histories"
}
