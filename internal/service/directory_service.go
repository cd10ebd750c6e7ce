package service

import (
	"context"

	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/pkg/logger"
	"note-sharing-be/internal/repository/specification"
	"note-sharing-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDirectoryService interface {
	ListPrivate(ctx context.Context, caller Caller, workspaceId uuid.UUID, query *dto.PrivateListQuery) (*dto.Paginated[dto.NoteResponse], error)
	ListPublic(ctx context.Context, query *dto.PublicListQuery) (*dto.Paginated[dto.NoteResponse], error)
}

// directoryService serves the two note listings: the workspace-scoped
// private list and the cross-tenant public directory.
type directoryService struct {
	uowFactory unitofwork.RepositoryFactory
	guard      *TenantGuard
	logger     logger.ILogger
}

func NewDirectoryService(uowFactory unitofwork.RepositoryFactory, guard *TenantGuard, logger logger.ILogger) IDirectoryService {
	return &directoryService{
		uowFactory: uowFactory,
		guard:      guard,
		logger:     logger,
	}
}

func (s *directoryService) ListPrivate(ctx context.Context, caller Caller, workspaceId uuid.UUID, query *dto.PrivateListQuery) (*dto.Paginated[dto.NoteResponse], error) {
	query.Normalize()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.guard.AuthorizeWorkspace(ctx, uow, workspaceId, caller.CompanyId); err != nil {
		return nil, err
	}

	filters := []specification.Specification{
		specification.ByWorkspaceID{WorkspaceID: workspaceId},
	}
	if query.Query != "" {
		filters = append(filters, specification.TitleContains{Query: query.Query})
	}

	return s.page(ctx, uow, filters,
		specification.OrderBy{Field: "updated_at", Desc: true}, query.PageQuery)
}

func (s *directoryService) ListPublic(ctx context.Context, query *dto.PublicListQuery) (*dto.Paginated[dto.NoteResponse], error) {
	query.Normalize()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.PublicPublished{},
	}
	if query.Query != "" {
		filters = append(filters, specification.TitleContains{Query: query.Query})
	}
	if query.Tag != "" {
		filters = append(filters, specification.HasTagName{Name: query.Tag})
	}

	return s.page(ctx, uow, filters, publicOrder(query.Sort), query.PageQuery)
}

// page runs the shared count-then-fetch sequence and wraps the result in
// the pagination envelope.
func (s *directoryService) page(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	filters []specification.Specification,
	order specification.OrderBy,
	pq dto.PageQuery,
) (*dto.Paginated[dto.NoteResponse], error) {
	total, err := uow.NoteRepository().Count(ctx, filters...)
	if err != nil {
		return nil, apperr.Storage("could not count notes", err)
	}

	specs := append(filters,
		order,
		specification.Pagination{Limit: pq.Limit, Offset: pq.Offset()},
	)
	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperr.Storage("could not list notes", err)
	}

	data := make([]dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		data = append(data, *toNoteResponse(note))
	}
	return &dto.Paginated[dto.NoteResponse]{
		Data: data,
		Meta: dto.NewPageMeta(total, pq.Page, pq.Limit),
	}, nil
}

func publicOrder(sort string) specification.OrderBy {
	switch sort {
	case "old":
		return specification.OrderBy{Field: "published_at", Desc: false}
	case "most_upvotes":
		return specification.OrderBy{Field: "upvotes_count", Desc: true}
	case "most_downvotes":
		return specification.OrderBy{Field: "downvotes_count", Desc: true}
	default:
		return specification.OrderBy{Field: "published_at", Desc: true}
	}
}
