package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	AuthorId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Content        string     `gorm:"type:text"`
	Visibility     string     `gorm:"type:varchar(10);not null;default:'private';index:idx_notes_public,priority:1"`
	Status         string     `gorm:"type:varchar(10);not null;default:'draft';index:idx_notes_public,priority:2"`
	UpvotesCount   int        `gorm:"not null;default:0;check:upvotes_count >= 0"`
	DownvotesCount int        `gorm:"not null;default:0;check:downvotes_count >= 0"`
	PublishedAt    *time.Time `gorm:"index"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime;index"`

	Workspace Workspace `gorm:"foreignKey:WorkspaceId;constraint:OnDelete:CASCADE"`
	Tags      []Tag     `gorm:"many2many:note_tags"`
}

func (Note) TableName() string {
	return "notes"
}
