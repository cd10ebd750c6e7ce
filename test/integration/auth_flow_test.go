package integration

import (
	"context"
	"testing"
	"time"

	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/repository/memory"
	"note-sharing-be/internal/repository/specification"
	"note-sharing-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyRegistrationAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := service.NewPublisherService(pubSub, "test-auth-events")
	revoked := memory.NewRevokedTokenStore(time.Hour)

	companies := service.NewCompanyService(env.uowFactory, nil, publisher, nil, nopLogger{})
	auth := service.NewAuthService(env.uowFactory, revoked, time.Hour, nopLogger{})

	hostname := "reg-" + uuid.NewString() + ".example"
	email := "reg-" + uuid.NewString() + "@example.com"

	res, err := companies.Register(ctx, &dto.RegisterCompanyRequest{
		CompanyName:     "Registration Co",
		CompanyHostname: hostname,
		OwnerUsername:   "founder",
		OwnerEmail:      email,
		OwnerPassword:   "super-secret-pw",
	})
	require.NoError(t, err)
	assert.Equal(t, hostname, res.Company.Hostname)
	assert.Equal(t, "owner", res.Owner.Role)
	assert.Equal(t, res.Company.Id, res.Owner.CompanyId)

	t.Run("Owner is attached and stamped as creator", func(t *testing.T) {
		// The owner row references the company, so registration must
		// insert the company first and backfill creator_id after.
		uow := env.uowFactory.NewUnitOfWork(ctx)
		company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: res.Company.Id})
		require.NoError(t, err)
		require.NotNil(t, company)
		assert.Equal(t, res.Owner.Id, company.CreatorId)

		owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: res.Owner.Id})
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, company.Id, owner.CompanyId)
	})

	t.Run("Registration creates a default workspace", func(t *testing.T) {
		uow := env.uowFactory.NewUnitOfWork(ctx)
		workspaces, err := uow.WorkspaceRepository().FindAll(ctx)
		require.NoError(t, err)

		found := false
		for _, w := range workspaces {
			if w.CompanyId == res.Company.Id {
				found = true
				assert.Equal(t, "General", w.Name)
			}
		}
		assert.True(t, found, "expected a default workspace for the new company")
	})

	t.Run("Duplicate hostname conflicts", func(t *testing.T) {
		_, err := companies.Register(ctx, &dto.RegisterCompanyRequest{
			CompanyName:     "Copycat Co",
			CompanyHostname: hostname,
			OwnerUsername:   "copycat",
			OwnerEmail:      "copy-" + uuid.NewString() + "@example.com",
			OwnerPassword:   "super-secret-pw",
		})
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("Login with correct password", func(t *testing.T) {
		login, err := auth.Login(ctx, &dto.LoginRequest{
			Email:    email,
			Password: "super-secret-pw",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, login.AccessToken)
		assert.Equal(t, res.Owner.Id, login.User.Id)
	})

	t.Run("Login with wrong password fails", func(t *testing.T) {
		_, err := auth.Login(ctx, &dto.LoginRequest{
			Email:    email,
			Password: "wrong",
		})
		assert.True(t, apperr.IsUnauthorized(err))
	})

	t.Run("Login with unknown email fails the same way", func(t *testing.T) {
		_, err := auth.Login(ctx, &dto.LoginRequest{
			Email:    "nobody-" + uuid.NewString() + "@example.com",
			Password: "whatever",
		})
		assert.True(t, apperr.IsUnauthorized(err))
	})
}
