package bootstrap

import (
	"log"
	"time"

	"note-sharing-be/internal/config"
	"note-sharing-be/internal/controller"
	"note-sharing-be/internal/pkg/logger"
	"note-sharing-be/internal/pkg/mailer"
	"note-sharing-be/internal/pkg/serverutils"
	"note-sharing-be/internal/repository/memory"
	"note-sharing-be/internal/repository/unitofwork"
	"note-sharing-be/internal/service"
	natspub "note-sharing-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const noteEventsTopic = "note-events"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	CompanyController      controller.ICompanyController
	UserController         controller.IUserController
	WorkspaceController    controller.IWorkspaceController
	NoteController         controller.INoteController
	DirectoryController    controller.IDirectoryController
	NotificationController controller.INotificationController

	// Background services, run by main.go
	ConsumerService *service.ConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	publisherService := service.NewPublisherService(pubSub, noteEventsTopic)
	consumerService := service.NewConsumerService(pubSub, noteEventsTopic, uowFactory, sysLogger)

	// NATS mirror is optional: without NATS_URL events stay in-process.
	var natsPublisher *natspub.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPublisher, err = natspub.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect NATS publisher: %v", err)
			natsPublisher = nil
		}
	}

	// Auth plumbing
	tokenTTL := time.Duration(cfg.Auth.AccessTokenTTLMinutes) * time.Minute
	revokedTokens := memory.NewRevokedTokenStore(tokenTTL)
	jwtMiddleware := serverutils.NewJwtMiddleware(revokedTokens)
	optionalJwt := serverutils.NewOptionalJwtMiddleware(revokedTokens)

	// Domain helpers
	guard := service.NewTenantGuard()
	tagRegistry := service.NewTagRegistry()

	// Services
	authService := service.NewAuthService(uowFactory, revokedTokens, tokenTTL, sysLogger)
	companyService := service.NewCompanyService(uowFactory, emailService, publisherService, natsPublisher, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger)
	workspaceService := service.NewWorkspaceService(uowFactory, guard, sysLogger)
	noteService := service.NewNoteService(uowFactory, guard, tagRegistry, publisherService, natsPublisher, sysLogger)
	voteService := service.NewVoteService(uowFactory, publisherService, natsPublisher, sysLogger)
	historyService := service.NewHistoryService(uowFactory, guard, sysLogger)
	directoryService := service.NewDirectoryService(uowFactory, guard, sysLogger)
	notificationService := service.NewNotificationService(uowFactory, sysLogger)

	return &Container{
		AuthController:         controller.NewAuthController(authService, jwtMiddleware),
		CompanyController:      controller.NewCompanyController(companyService),
		UserController:         controller.NewUserController(userService, jwtMiddleware),
		WorkspaceController:    controller.NewWorkspaceController(workspaceService, jwtMiddleware),
		NoteController:         controller.NewNoteController(noteService, voteService, historyService, jwtMiddleware),
		DirectoryController:    controller.NewDirectoryController(directoryService, noteService, jwtMiddleware, optionalJwt),
		NotificationController: controller.NewNotificationController(notificationService, jwtMiddleware),
		ConsumerService:        consumerService,
		Logger:                 sysLogger,
	}
}
