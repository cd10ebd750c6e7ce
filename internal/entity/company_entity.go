package entity

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	Id        uuid.UUID
	Name      string
	Hostname  string
	CreatorId uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
