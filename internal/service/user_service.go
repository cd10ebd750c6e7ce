package service

import (
	"context"

	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/pkg/logger"
	"note-sharing-be/internal/repository/specification"
	"note-sharing-be/internal/repository/unitofwork"

	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	RegisterMember(ctx context.Context, caller Caller, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, caller Caller, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// RegisterMember adds a member account to the caller's company. Only the
// company owner may invite.
func (s *userService) RegisterMember(ctx context.Context, caller Caller, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Storage("could not begin transaction", err)
	}
	defer uow.Rollback()

	actor, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: caller.UserId})
	if err != nil {
		return nil, apperr.Storage("could not load caller", err)
	}
	if actor == nil || actor.Role != entity.UserRoleOwner {
		return nil, apperr.Forbidden("only the company owner can invite members")
	}

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperr.Storage("could not check email", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage("could not hash password", err)
	}

	user := &entity.User{
		CompanyId:    caller.CompanyId,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         entity.UserRoleMember,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, apperr.Storage("could not create user", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperr.Storage("could not commit transaction", err)
	}

	s.logger.Info("UserService", "member registered", map[string]interface{}{
		"user_id":    user.Id,
		"company_id": user.CompanyId,
	})
	resp := toUserResponse(user)
	return &resp, nil
}

// Update changes the caller's own profile fields.
func (s *userService) Update(ctx context.Context, caller Caller, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Storage("could not begin transaction", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: caller.UserId})
	if err != nil {
		return nil, apperr.Storage("could not load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Storage("could not hash password", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperr.Storage("could not update user", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperr.Storage("could not commit transaction", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}
