package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag names are global and case-sensitive; tags are shared across tenants
// and never deleted when a note goes away.
type Tag struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
}
