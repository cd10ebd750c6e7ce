package service

import (
	"context"

	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/pkg/logger"
	"note-sharing-be/internal/repository/specification"
	"note-sharing-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWorkspaceService interface {
	Create(ctx context.Context, caller Caller, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error)
	List(ctx context.Context, caller Caller) ([]dto.WorkspaceResponse, error)
	Update(ctx context.Context, caller Caller, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceResponse, error)
	Delete(ctx context.Context, caller Caller, workspaceId uuid.UUID) error
}

type workspaceService struct {
	uowFactory unitofwork.RepositoryFactory
	guard      *TenantGuard
	logger     logger.ILogger
}

func NewWorkspaceService(uowFactory unitofwork.RepositoryFactory, guard *TenantGuard, logger logger.ILogger) IWorkspaceService {
	return &workspaceService{
		uowFactory: uowFactory,
		guard:      guard,
		logger:     logger,
	}
}

func (s *workspaceService) Create(ctx context.Context, caller Caller, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace := &entity.Workspace{
		CompanyId: caller.CompanyId,
		Name:      req.Name,
	}
	if err := uow.WorkspaceRepository().Create(ctx, workspace); err != nil {
		return nil, apperr.Storage("could not create workspace", err)
	}

	s.logger.Info("WorkspaceService", "workspace created", map[string]interface{}{
		"workspace_id": workspace.Id,
		"company_id":   caller.CompanyId,
	})
	resp := toWorkspaceResponse(workspace)
	return &resp, nil
}

func (s *workspaceService) List(ctx context.Context, caller Caller) ([]dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspaces, err := uow.WorkspaceRepository().FindAll(ctx,
		specification.ByCompanyID{CompanyID: caller.CompanyId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, apperr.Storage("could not list workspaces", err)
	}

	responses := make([]dto.WorkspaceResponse, 0, len(workspaces))
	for _, w := range workspaces {
		responses = append(responses, toWorkspaceResponse(w))
	}
	return responses, nil
}

func (s *workspaceService) Update(ctx context.Context, caller Caller, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := s.guard.AuthorizeWorkspace(ctx, uow, req.Id, caller.CompanyId)
	if err != nil {
		return nil, err
	}

	workspace.Name = req.Name
	if err := uow.WorkspaceRepository().Update(ctx, workspace); err != nil {
		return nil, apperr.Storage("could not update workspace", err)
	}

	resp := toWorkspaceResponse(workspace)
	return &resp, nil
}

// Delete removes the workspace and, through cascades, every note in it.
func (s *workspaceService) Delete(ctx context.Context, caller Caller, workspaceId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.guard.AuthorizeWorkspace(ctx, uow, workspaceId, caller.CompanyId); err != nil {
		return err
	}
	if err := uow.WorkspaceRepository().Delete(ctx, workspaceId); err != nil {
		return apperr.Storage("could not delete workspace", err)
	}

	s.logger.Info("WorkspaceService", "workspace deleted", map[string]interface{}{
		"workspace_id": workspaceId,
	})
	return nil
}

func toWorkspaceResponse(workspace *entity.Workspace) dto.WorkspaceResponse {
	return dto.WorkspaceResponse{
		Id:        workspace.Id,
		CompanyId: workspace.CompanyId,
		Name:      workspace.Name,
		CreatedAt: workspace.CreatedAt,
	}
}
