package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Hostname  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatorId uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}
