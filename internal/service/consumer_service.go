package service

import (
	"context"
	"encoding/json"
	"fmt"

	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/pkg/logger"
	"note-sharing-be/internal/repository/unitofwork"
	"note-sharing-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ConsumerService turns note lifecycle events from the in-process bus
// into notification rows. It runs for the lifetime of the server.
type ConsumerService struct {
	pubSub     *gochannel.GoChannel
	topic      string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topic string,
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
) *ConsumerService {
	return &ConsumerService{
		pubSub:     pubSub,
		topic:      topic,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Start subscribes and processes messages until ctx is cancelled.
func (s *ConsumerService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", s.topic, err)
	}

	go func() {
		for msg := range messages {
			s.handle(ctx, msg)
		}
	}()
	return nil
}

func (s *ConsumerService) handle(ctx context.Context, msg *message.Message) {
	// Always ack: a notification is not worth redelivery loops.
	defer msg.Ack()

	var event dto.NoteEventMessage
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.logger.Warn("ConsumerService", "dropped malformed event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	notification := s.buildNotification(&event)
	if notification == nil {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		s.logger.Error("ConsumerService", "failed to store notification", map[string]interface{}{
			"type":  event.Type,
			"error": err.Error(),
		})
		return
	}

	s.logger.Debug("ConsumerService", "notification stored", map[string]interface{}{
		"type":    event.Type,
		"user_id": notification.UserId,
	})
}

func (s *ConsumerService) buildNotification(event *dto.NoteEventMessage) *entity.Notification {
	switch event.Type {
	case events.TypeNotePublished:
		noteId := event.NoteId
		return &entity.Notification{
			UserId:   event.AuthorId,
			ActorId:  &event.ActorId,
			TypeCode: event.Type,
			EntityId: &noteId,
			Title:    "Note published",
			Message:  fmt.Sprintf("Your note %q is now live in the public directory.", event.Title),
			Metadata: map[string]interface{}{
				"note_id": noteId.String(),
			},
		}
	case events.TypeNoteVoted:
		noteId := event.NoteId
		return &entity.Notification{
			UserId:   event.AuthorId,
			ActorId:  &event.ActorId,
			TypeCode: event.Type,
			EntityId: &noteId,
			Title:    "New vote on your note",
			Message:  fmt.Sprintf("Someone cast a %s on %q.", event.VoteKind, event.Title),
			Metadata: map[string]interface{}{
				"note_id":   noteId.String(),
				"vote_kind": event.VoteKind,
			},
		}
	case events.TypeCompanyJoined:
		return &entity.Notification{
			UserId:   event.AuthorId,
			ActorId:  &event.ActorId,
			TypeCode: event.Type,
			Title:    "Welcome aboard",
			Message:  fmt.Sprintf("Your company %q is ready. Create a note in the General workspace to get started.", event.Title),
		}
	default:
		s.logger.Warn("ConsumerService", "ignored unknown event type", map[string]interface{}{
			"type": event.Type,
		})
		return nil
	}
}
