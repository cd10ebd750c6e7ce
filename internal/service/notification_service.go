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

type INotificationService interface {
	List(ctx context.Context, caller Caller, query *dto.PageQuery) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, caller Caller, notificationId uuid.UUID) error
	CountUnread(ctx context.Context, caller Caller) (int64, error)
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *notificationService) List(ctx context.Context, caller Caller, query *dto.PageQuery) ([]dto.NotificationResponse, error) {
	query.Normalize()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.ByUserID{UserID: caller.UserId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset()},
	)
	if err != nil {
		return nil, apperr.Storage("could not list notifications", err)
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, toNotificationResponse(n))
	}
	return responses, nil
}

// MarkRead is scoped to the caller: marking another user's notification
// reads as not found.
func (s *notificationService) MarkRead(ctx context.Context, caller Caller, notificationId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().MarkRead(ctx, notificationId, caller.UserId); err != nil {
		return apperr.Storage("could not mark notification read", err)
	}
	return nil
}

func (s *notificationService) CountUnread(ctx context.Context, caller Caller) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.NotificationRepository().CountUnread(ctx, caller.UserId)
	if err != nil {
		return 0, apperr.Storage("could not count unread notifications", err)
	}
	return count, nil
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		Id:        n.Id,
		TypeCode:  n.TypeCode,
		EntityId:  n.EntityId,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  n.Metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
