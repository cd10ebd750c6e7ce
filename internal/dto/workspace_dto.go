package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkspaceRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateWorkspaceRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required,max=255"`
}

type WorkspaceResponse struct {
	Id        uuid.UUID `json:"id"`
	CompanyId uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
