package service

import (
	"context"
	"encoding/json"
	"time"

	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/pkg/logger"
	"note-sharing-be/internal/repository/specification"
	"note-sharing-be/internal/repository/unitofwork"
	"note-sharing-be/pkg/events"
	natspub "note-sharing-be/pkg/nats"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, caller Caller, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, requesterCompanyId *uuid.UUID, noteId uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, caller Caller, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, caller Caller, noteId uuid.UUID) error
}

type noteService struct {
	uowFactory    unitofwork.RepositoryFactory
	guard         *TenantGuard
	tags          *TagRegistry
	publisher     IPublisherService
	natsPublisher *natspub.Publisher
	logger        logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	guard *TenantGuard,
	tags *TagRegistry,
	publisher IPublisherService,
	natsPublisher *natspub.Publisher,
	logger logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:    uowFactory,
		guard:         guard,
		tags:          tags,
		publisher:     publisher,
		natsPublisher: natsPublisher,
		logger:        logger,
	}
}

func (s *noteService) Create(ctx context.Context, caller Caller, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Storage("could not begin transaction", err)
	}
	defer uow.Rollback()

	if _, err := s.guard.AuthorizeWorkspace(ctx, uow, req.WorkspaceId, caller.CompanyId); err != nil {
		return nil, err
	}

	note := &entity.Note{
		WorkspaceId: req.WorkspaceId,
		AuthorId:    caller.UserId,
		Title:       req.Title,
		Content:     req.Content,
		Visibility:  entity.NoteVisibilityPrivate,
		Status:      entity.NoteStatusDraft,
	}
	if req.Visibility != "" {
		note.Visibility = entity.NoteVisibility(req.Visibility)
	}
	if req.Status != "" {
		note.Status = entity.NoteStatus(req.Status)
	}
	if note.Status == entity.NoteStatusPublished {
		now := time.Now()
		note.PublishedAt = &now
	}

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, apperr.Storage("could not create note", err)
	}

	if len(req.Tags) > 0 {
		tags, err := s.tags.ResolveOrCreate(ctx, uow, req.Tags)
		if err != nil {
			return nil, err
		}
		if err := uow.NoteTagRepository().Replace(ctx, note.Id, tagIds(tags)); err != nil {
			return nil, apperr.Storage("could not link note tags", err)
		}
		note.Tags = tags
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Storage("could not commit transaction", err)
	}

	if note.Status == entity.NoteStatusPublished {
		s.publishNoteEvent(ctx, events.TypeNotePublished, note, caller.UserId, "")
	}

	s.logger.Info("NoteService", "note created", map[string]interface{}{
		"note_id":      note.Id,
		"workspace_id": note.WorkspaceId,
	})
	return toNoteResponse(note), nil
}

// Show serves a note to anyone when it is public and published;
// otherwise the requester must belong to the owning company.
func (s *noteService) Show(ctx context.Context, requesterCompanyId *uuid.UUID, noteId uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, apperr.Storage("could not load note", err)
	}
	if note == nil {
		return nil, apperr.NotFound("note not found")
	}

	if !note.IsPubliclyVisible() {
		if requesterCompanyId == nil {
			return nil, apperr.Forbidden("note is not publicly accessible")
		}
		if _, err := s.guard.AuthorizeWorkspace(ctx, uow, note.WorkspaceId, *requesterCompanyId); err != nil {
			if apperr.IsUnauthorized(err) {
				return nil, apperr.Forbidden("note is not publicly accessible")
			}
			return nil, err
		}
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, caller Caller, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Storage("could not begin transaction", err)
	}
	defer uow.Rollback()

	// Locked so a concurrent vote cannot be lost under the full-row save.
	note, err := uow.NoteRepository().FindOneForUpdate(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperr.Storage("could not load note", err)
	}
	if note == nil {
		return nil, apperr.NotFound("note not found")
	}
	if _, err := s.guard.AuthorizeWorkspace(ctx, uow, note.WorkspaceId, caller.CompanyId); err != nil {
		return nil, err
	}

	// Snapshot the pre-edit state before any field is overwritten.
	history := &entity.NoteHistory{
		NoteId:  note.Id,
		UserId:  caller.UserId,
		Title:   note.Title,
		Content: note.Content,
	}
	if err := uow.NoteHistoryRepository().Create(ctx, history); err != nil {
		return nil, apperr.Storage("could not record note history", err)
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Visibility != nil {
		note.Visibility = entity.NoteVisibility(*req.Visibility)
	}

	publishedNow := false
	if req.Status != nil {
		next := entity.NoteStatus(*req.Status)
		if next == entity.NoteStatusPublished && note.Status != entity.NoteStatusPublished {
			now := time.Now()
			note.PublishedAt = &now
			publishedNow = true
		}
		note.Status = next
	}

	finalTags := note.Tags
	if req.Tags != nil {
		tags, err := s.tags.ResolveOrCreate(ctx, uow, *req.Tags)
		if err != nil {
			return nil, err
		}
		if err := uow.NoteTagRepository().Replace(ctx, note.Id, tagIds(tags)); err != nil {
			return nil, apperr.Storage("could not replace note tags", err)
		}
		finalTags = tags
	}

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperr.Storage("could not update note", err)
	}
	// The repository refreshes the entity from the row, which does not
	// carry associations.
	note.Tags = finalTags
	if err := uow.Commit(); err != nil {
		return nil, apperr.Storage("could not commit transaction", err)
	}

	if publishedNow {
		s.publishNoteEvent(ctx, events.TypeNotePublished, note, caller.UserId, "")
	}

	s.logger.Info("NoteService", "note updated", map[string]interface{}{
		"note_id": note.Id,
	})
	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, caller Caller, noteId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperr.Storage("could not begin transaction", err)
	}
	defer uow.Rollback()

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return apperr.Storage("could not load note", err)
	}
	if note == nil {
		return apperr.NotFound("note not found")
	}
	if _, err := s.guard.AuthorizeWorkspace(ctx, uow, note.WorkspaceId, caller.CompanyId); err != nil {
		return err
	}

	// Votes, history and tag links go away with the note via cascades.
	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return apperr.Storage("could not delete note", err)
	}
	if err := uow.Commit(); err != nil {
		return apperr.Storage("could not commit transaction", err)
	}

	s.logger.Info("NoteService", "note deleted", map[string]interface{}{
		"note_id": noteId,
	})
	return nil
}

// publishNoteEvent fans a lifecycle event out to the in-process bus and,
// when configured, mirrors it onto NATS. Failures are logged, never
// surfaced: the mutation has already committed.
func (s *noteService) publishNoteEvent(ctx context.Context, eventType string, note *entity.Note, actorId uuid.UUID, voteKind string) {
	msg := dto.NoteEventMessage{
		Type:     eventType,
		NoteId:   note.Id,
		AuthorId: note.AuthorId,
		ActorId:  actorId,
		Title:    note.Title,
		VoteKind: voteKind,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("NoteService", "failed to marshal note event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("NoteService", "failed to publish note event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}

	if s.natsPublisher != nil {
		event := events.BaseEvent{
			Type: eventType,
			Data: map[string]interface{}{
				"note_id":   note.Id.String(),
				"author_id": note.AuthorId.String(),
				"actor_id":  actorId.String(),
				"title":     note.Title,
				"vote_kind": voteKind,
			},
			OccurredAt: time.Now(),
		}
		if err := s.natsPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("NoteService", "failed to mirror note event to NATS", map[string]interface{}{
				"event": eventType,
				"error": err.Error(),
			})
		}
	}
}

func tagIds(tags []entity.Tag) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.Id)
	}
	return ids
}

func tagNames(tags []entity.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:             note.Id,
		WorkspaceId:    note.WorkspaceId,
		AuthorId:       note.AuthorId,
		Title:          note.Title,
		Content:        note.Content,
		Visibility:     string(note.Visibility),
		Status:         string(note.Status),
		UpvotesCount:   note.UpvotesCount,
		DownvotesCount: note.DownvotesCount,
		Tags:           tagNames(note.Tags),
		PublishedAt:    note.PublishedAt,
		CreatedAt:      note.CreatedAt,
		UpdatedAt:      note.UpdatedAt,
	}
}
