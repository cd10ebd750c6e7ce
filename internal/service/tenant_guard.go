package service

import (
	"context"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/repository/specification"
	"note-sharing-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// TenantGuard is the single tenant-isolation checkpoint. Every private
// workspace operation authorizes through here; no other component
// re-derives company scoping on its own.
type TenantGuard struct{}

func NewTenantGuard() *TenantGuard {
	return &TenantGuard{}
}

// AuthorizeWorkspace loads the workspace and confirms it belongs to the
// caller's company. It runs against the unit of work handed in, so a
// caller holding a transaction authorizes inside that transaction.
func (g *TenantGuard) AuthorizeWorkspace(ctx context.Context, uow unitofwork.UnitOfWork, workspaceId, callerCompanyId uuid.UUID) (*entity.Workspace, error) {
	workspace, err := uow.WorkspaceRepository().FindOne(ctx, specification.ByID{ID: workspaceId})
	if err != nil {
		return nil, apperr.Storage("could not load workspace", err)
	}
	if workspace == nil {
		return nil, apperr.NotFound("workspace not found")
	}
	if workspace.CompanyId != callerCompanyId {
		return nil, apperr.Unauthorized("workspace does not belong to caller company")
	}
	return workspace, nil
}
