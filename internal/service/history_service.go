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

type IHistoryService interface {
	List(ctx context.Context, caller Caller, noteId uuid.UUID) ([]dto.NoteHistoryResponse, error)
	Restore(ctx context.Context, caller Caller, historyId uuid.UUID) (*dto.NoteResponse, error)
}

type historyService struct {
	uowFactory unitofwork.RepositoryFactory
	guard      *TenantGuard
	logger     logger.ILogger
}

func NewHistoryService(uowFactory unitofwork.RepositoryFactory, guard *TenantGuard, logger logger.ILogger) IHistoryService {
	return &historyService{
		uowFactory: uowFactory,
		guard:      guard,
		logger:     logger,
	}
}

// List returns every snapshot of the note, newest first.
func (s *historyService) List(ctx context.Context, caller Caller, noteId uuid.UUID) ([]dto.NoteHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, apperr.Storage("could not load note", err)
	}
	if note == nil {
		return nil, apperr.NotFound("note not found")
	}
	if _, err := s.guard.AuthorizeWorkspace(ctx, uow, note.WorkspaceId, caller.CompanyId); err != nil {
		return nil, err
	}

	histories, err := uow.NoteHistoryRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Storage("could not list note history", err)
	}

	responses := make([]dto.NoteHistoryResponse, 0, len(histories))
	for _, h := range histories {
		responses = append(responses, toHistoryResponse(h))
	}
	return responses, nil
}

// Restore copies a snapshot's title/content back onto the note. The
// current state is snapshotted first, so a restore is itself undoable.
// Tag associations are not part of snapshots and stay as they are.
func (s *historyService) Restore(ctx context.Context, caller Caller, historyId uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Storage("could not begin transaction", err)
	}
	defer uow.Rollback()

	history, err := uow.NoteHistoryRepository().FindOne(ctx, specification.ByID{ID: historyId})
	if err != nil {
		return nil, apperr.Storage("could not load history entry", err)
	}
	if history == nil {
		return nil, apperr.NotFound("history entry not found")
	}

	note, err := uow.NoteRepository().FindOneForUpdate(ctx, specification.ByID{ID: history.NoteId})
	if err != nil {
		return nil, apperr.Storage("could not load note", err)
	}
	if note == nil {
		return nil, apperr.NotFound("note not found")
	}
	if _, err := s.guard.AuthorizeWorkspace(ctx, uow, note.WorkspaceId, caller.CompanyId); err != nil {
		return nil, err
	}

	preRestore := &entity.NoteHistory{
		NoteId:  note.Id,
		UserId:  caller.UserId,
		Title:   note.Title,
		Content: note.Content,
	}
	if err := uow.NoteHistoryRepository().Create(ctx, preRestore); err != nil {
		return nil, apperr.Storage("could not record pre-restore snapshot", err)
	}

	tags := note.Tags
	note.Title = history.Title
	note.Content = history.Content
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperr.Storage("could not restore note", err)
	}
	note.Tags = tags

	if err := uow.Commit(); err != nil {
		return nil, apperr.Storage("could not commit transaction", err)
	}

	s.logger.Info("HistoryService", "note restored from history", map[string]interface{}{
		"note_id":    note.Id,
		"history_id": historyId,
	})
	return toNoteResponse(note), nil
}

func toHistoryResponse(h *entity.NoteHistory) dto.NoteHistoryResponse {
	return dto.NoteHistoryResponse{
		Id:        h.Id,
		NoteId:    h.NoteId,
		UserId:    h.UserId,
		Title:     h.Title,
		Content:   h.Content,
		CreatedAt: h.CreatedAt,
	}
}
