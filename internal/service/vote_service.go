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
	"note-sharing-be/pkg/voting"

	"github.com/google/uuid"
)

type IVoteService interface {
	Cast(ctx context.Context, caller Caller, noteId uuid.UUID, req *dto.VoteRequest) (*dto.NoteResponse, error)
}

type voteService struct {
	uowFactory    unitofwork.RepositoryFactory
	publisher     IPublisherService
	natsPublisher *natspub.Publisher
	logger        logger.ILogger
}

func NewVoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	natsPublisher *natspub.Publisher,
	logger logger.ILogger,
) IVoteService {
	return &voteService{
		uowFactory:    uowFactory,
		publisher:     publisher,
		natsPublisher: natsPublisher,
		logger:        logger,
	}
}

// Cast applies the vote state machine for one caller on one note. The
// note row is locked first, so concurrent voters queue up and each one
// sees the previous voter's counters and vote row.
func (s *voteService) Cast(ctx context.Context, caller Caller, noteId uuid.UUID, req *dto.VoteRequest) (*dto.NoteResponse, error) {
	requested := voting.State(req.Kind)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Storage("could not begin transaction", err)
	}
	defer uow.Rollback()

	note, err := uow.NoteRepository().FindOneForUpdate(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, apperr.Storage("could not load note", err)
	}
	if note == nil {
		return nil, apperr.NotFound("note not found")
	}

	existingVote, err := uow.NoteVoteRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.ByUserID{UserID: caller.UserId},
	)
	if err != nil {
		return nil, apperr.Storage("could not load existing vote", err)
	}

	existing := voting.None
	if existingVote != nil {
		existing = voting.State(existingVote.Kind)
	}

	next, delta := voting.Transition(existing, requested)

	switch {
	case existingVote == nil:
		vote := &entity.NoteVote{
			NoteId: noteId,
			UserId: caller.UserId,
			Kind:   entity.VoteKind(next),
		}
		if err := uow.NoteVoteRepository().Create(ctx, vote); err != nil {
			return nil, apperr.Storage("could not create vote", err)
		}
	case next == voting.None:
		if err := uow.NoteVoteRepository().Delete(ctx, existingVote.Id); err != nil {
			return nil, apperr.Storage("could not remove vote", err)
		}
	default:
		existingVote.Kind = entity.VoteKind(next)
		if err := uow.NoteVoteRepository().Update(ctx, existingVote); err != nil {
			return nil, apperr.Storage("could not switch vote", err)
		}
	}

	tags := note.Tags
	note.UpvotesCount += delta.Up
	note.DownvotesCount += delta.Down
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperr.Storage("could not update vote counters", err)
	}
	note.Tags = tags

	if err := uow.Commit(); err != nil {
		return nil, apperr.Storage("could not commit transaction", err)
	}

	// Notify the author only on an actual cast or switch, not a retraction,
	// and never about their own vote.
	if next != voting.None && caller.UserId != note.AuthorId {
		s.publishVoteEvent(ctx, note, caller.UserId, string(next))
	}

	s.logger.Info("VoteService", "vote applied", map[string]interface{}{
		"note_id": noteId,
		"state":   string(next),
	})
	return toNoteResponse(note), nil
}

func (s *voteService) publishVoteEvent(ctx context.Context, note *entity.Note, actorId uuid.UUID, voteKind string) {
	msg := dto.NoteEventMessage{
		Type:     events.TypeNoteVoted,
		NoteId:   note.Id,
		AuthorId: note.AuthorId,
		ActorId:  actorId,
		Title:    note.Title,
		VoteKind: voteKind,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("VoteService", "failed to marshal vote event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("VoteService", "failed to publish vote event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if s.natsPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeNoteVoted,
			Data: map[string]interface{}{
				"note_id":   note.Id.String(),
				"author_id": note.AuthorId.String(),
				"actor_id":  actorId.String(),
				"vote_kind": voteKind,
			},
			OccurredAt: time.Now(),
		}
		if err := s.natsPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("VoteService", "failed to mirror vote event to NATS", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
