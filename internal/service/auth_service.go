package service

import (
	"context"
	"time"

	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/pkg/logger"
	"note-sharing-be/internal/pkg/serverutils"
	"note-sharing-be/internal/repository/memory"
	"note-sharing-be/internal/repository/specification"
	"note-sharing-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, tokenId string, expiresAt time.Time)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	revoked    *memory.RevokedTokenStore
	tokenTTL   time.Duration
	logger     logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	revoked *memory.RevokedTokenStore,
	tokenTTL time.Duration,
	logger logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		revoked:    revoked,
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperr.Storage("could not load user", err)
	}
	// Same message whether the email or the password is wrong.
	if user == nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := serverutils.GenerateAccessToken(user.Id, user.CompanyId, s.tokenTTL)
	if err != nil {
		return nil, apperr.Storage("could not issue access token", err)
	}

	s.logger.Info("AuthService", "user logged in", map[string]interface{}{
		"user_id": user.Id,
	})
	return &dto.LoginResponse{
		AccessToken: token,
		User:        toUserResponse(user),
	}, nil
}

// Logout places the token id on the denylist until the token would have
// expired anyway. A token without a usable expiry is denylisted for a
// full token lifetime so it cannot dodge revocation.
func (s *authService) Logout(ctx context.Context, tokenId string, expiresAt time.Time) {
	if tokenId == "" {
		return
	}
	if !expiresAt.After(time.Now()) {
		expiresAt = time.Now().Add(s.tokenTTL)
	}
	s.revoked.Revoke(tokenId, expiresAt)
	s.logger.Info("AuthService", "token revoked", map[string]interface{}{
		"jti": tokenId,
	})
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Storage("could not load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:        user.Id,
		CompanyId: user.CompanyId,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
