package service

import (
	"context"
	"encoding/json"
	"time"

	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/pkg/logger"
	"note-sharing-be/internal/pkg/mailer"
	"note-sharing-be/internal/repository/specification"
	"note-sharing-be/internal/repository/unitofwork"
	"note-sharing-be/pkg/events"
	natspub "note-sharing-be/pkg/nats"

	"golang.org/x/crypto/bcrypt"
)

type ICompanyService interface {
	Register(ctx context.Context, req *dto.RegisterCompanyRequest) (*dto.RegisterCompanyResponse, error)
}

type companyService struct {
	uowFactory    unitofwork.RepositoryFactory
	emailService  mailer.IEmailService
	publisher     IPublisherService
	natsPublisher *natspub.Publisher
	logger        logger.ILogger
}

func NewCompanyService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisher IPublisherService,
	natsPublisher *natspub.Publisher,
	logger logger.ILogger,
) ICompanyService {
	return &companyService{
		uowFactory:    uowFactory,
		emailService:  emailService,
		publisher:     publisher,
		natsPublisher: natsPublisher,
		logger:        logger,
	}
}

// Register creates a company and its owner account in one transaction,
// plus a default workspace so the tenant is usable immediately.
func (s *companyService) Register(ctx context.Context, req *dto.RegisterCompanyRequest) (*dto.RegisterCompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Storage("could not begin transaction", err)
	}
	defer uow.Rollback()

	existing, err := uow.CompanyRepository().FindOne(ctx, specification.FilterBy{Field: "hostname", Value: req.CompanyHostname})
	if err != nil {
		return nil, apperr.Storage("could not check hostname", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("company hostname already taken")
	}

	existingUser, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.OwnerEmail})
	if err != nil {
		return nil, apperr.Storage("could not check owner email", err)
	}
	if existingUser != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage("could not hash password", err)
	}

	// users.company_id is a real FK, so the company row must exist
	// before the owner insert; creator_id is a plain column and gets
	// stamped once the owner id is known.
	company := &entity.Company{
		Name:     req.CompanyName,
		Hostname: req.CompanyHostname,
	}
	if err := uow.CompanyRepository().Create(ctx, company); err != nil {
		return nil, apperr.Storage("could not create company", err)
	}

	owner := &entity.User{
		CompanyId:    company.Id,
		Username:     req.OwnerUsername,
		Email:        req.OwnerEmail,
		PasswordHash: string(hash),
		Role:         entity.UserRoleOwner,
	}
	if err := uow.UserRepository().Create(ctx, owner); err != nil {
		return nil, apperr.Storage("could not create owner user", err)
	}

	company.CreatorId = owner.Id
	if err := uow.CompanyRepository().Update(ctx, company); err != nil {
		return nil, apperr.Storage("could not stamp company creator", err)
	}

	workspace := &entity.Workspace{
		CompanyId: company.Id,
		Name:      "General",
	}
	if err := uow.WorkspaceRepository().Create(ctx, workspace); err != nil {
		return nil, apperr.Storage("could not create default workspace", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Storage("could not commit transaction", err)
	}

	s.sendWelcome(owner, company)
	s.publishJoined(ctx, owner, company)

	s.logger.Info("CompanyService", "company registered", map[string]interface{}{
		"company_id": company.Id,
		"hostname":   company.Hostname,
	})
	return &dto.RegisterCompanyResponse{
		Company: toCompanyResponse(company),
		Owner:   toUserResponse(owner),
	}, nil
}

func (s *companyService) sendWelcome(owner *entity.User, company *entity.Company) {
	if s.emailService == nil {
		return
	}
	if err := s.emailService.SendCompanyWelcome(owner.Email, owner.Username, company.Name, company.Hostname); err != nil {
		s.logger.Warn("CompanyService", "failed to send welcome email", map[string]interface{}{
			"email": owner.Email,
			"error": err.Error(),
		})
	}
}

func (s *companyService) publishJoined(ctx context.Context, owner *entity.User, company *entity.Company) {
	msg := dto.NoteEventMessage{
		Type:     events.TypeCompanyJoined,
		AuthorId: owner.Id,
		ActorId:  owner.Id,
		Title:    company.Name,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("CompanyService", "failed to marshal joined event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("CompanyService", "failed to publish joined event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if s.natsPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeCompanyJoined,
			Data: map[string]interface{}{
				"company_id": company.Id.String(),
				"owner_id":   owner.Id.String(),
				"hostname":   company.Hostname,
			},
			OccurredAt: time.Now(),
		}
		if err := s.natsPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("CompanyService", "failed to mirror joined event to NATS", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func toCompanyResponse(company *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		Id:        company.Id,
		Name:      company.Name,
		Hostname:  company.Hostname,
		CreatedAt: company.CreatedAt,
	}
}
