package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/repository/unitofwork"
	"note-sharing-be/internal/service"
	"note-sharing-be/pkg/database"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// nopLogger keeps test output clean.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type testEnv struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory

	notes     service.INoteService
	votes     service.IVoteService
	history   service.IHistoryService
	directory service.IDirectoryService
}

// newTestEnv connects to the integration database and wires the service
// stack without transport. Skips when DB_CONNECTION_STRING is not set.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "failed to connect to DB")

	uowFactory := unitofwork.NewRepositoryFactory(db)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := service.NewPublisherService(pubSub, "test-note-events")

	guard := service.NewTenantGuard()
	tags := service.NewTagRegistry()
	logger := nopLogger{}

	return &testEnv{
		db:         db,
		uowFactory: uowFactory,
		notes:      service.NewNoteService(uowFactory, guard, tags, publisher, nil, logger),
		votes:      service.NewVoteService(uowFactory, publisher, nil, logger),
		history:    service.NewHistoryService(uowFactory, guard, logger),
		directory:  service.NewDirectoryService(uowFactory, guard, logger),
	}
}

// createTenant provisions a company, user and workspace for one test.
func (e *testEnv) createTenant(t *testing.T) (service.Caller, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	uow := e.uowFactory.NewUnitOfWork(ctx)

	// Company first: users.company_id is enforced by an FK.
	company := &entity.Company{
		Name:     "Integration Co",
		Hostname: "it-" + uuid.NewString() + ".example",
	}
	require.NoError(t, uow.CompanyRepository().Create(ctx, company))

	user := &entity.User{
		CompanyId:    company.Id,
		Username:     "it-user-" + uuid.NewString()[:8],
		Email:        "it-" + uuid.NewString() + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         entity.UserRoleOwner,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	company.CreatorId = user.Id
	require.NoError(t, uow.CompanyRepository().Update(ctx, company))

	workspace := &entity.Workspace{
		CompanyId: company.Id,
		Name:      "Integration Workspace",
	}
	require.NoError(t, uow.WorkspaceRepository().Create(ctx, workspace))

	return service.Caller{UserId: user.Id, CompanyId: company.Id}, workspace.Id
}

// addMember adds a second user to an existing tenant.
func (e *testEnv) addMember(t *testing.T, companyId uuid.UUID) service.Caller {
	t.Helper()
	ctx := context.Background()
	uow := e.uowFactory.NewUnitOfWork(ctx)

	user := &entity.User{
		CompanyId:    companyId,
		Username:     "it-member-" + uuid.NewString()[:8],
		Email:        "it-" + uuid.NewString() + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         entity.UserRoleMember,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	return service.Caller{UserId: user.Id, CompanyId: companyId}
}
