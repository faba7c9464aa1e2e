package bootstrap

import (
	"log"

	"medinote-be/internal/config"
	"medinote-be/internal/controller"
	"medinote-be/internal/pkg/logger"
	"medinote-be/internal/pkg/serverutils"
	"medinote-be/internal/pkg/token"
	"medinote-be/internal/repository/unitofwork"
	"medinote-be/internal/service"
	pktNats "medinote-be/pkg/nats"
	"medinote-be/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	PatientController  controller.IPatientController
	SessionController  controller.ISessionController
	UploadController   controller.IUploadController
	TemplateController controller.ITemplateController

	// Authorization gate mounted by every protected route group
	AuthMiddleware fiber.Handler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokenManager, err := token.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize token manager: %v", err)
	}

	// 2. Infrastructure
	storageClient, err := storage.New(storage.Config{
		Endpoint:      cfg.Storage.Endpoint,
		Region:        cfg.Storage.Region,
		Bucket:        cfg.Storage.Bucket,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize storage client: %v", err)
	}

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Services
	authService := service.NewAuthService(uowFactory, tokenManager)
	patientService := service.NewPatientService(uowFactory)
	sessionService := service.NewSessionService(uowFactory)
	uploadService := service.NewUploadService(uowFactory, storageClient, natsPub, sysLogger)
	templateService := service.NewTemplateService(uowFactory)

	// 4. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		PatientController:  controller.NewPatientController(patientService),
		SessionController:  controller.NewSessionController(sessionService),
		UploadController:   controller.NewUploadController(uploadService),
		TemplateController: controller.NewTemplateController(templateService),
		AuthMiddleware:     serverutils.NewJwtMiddleware(tokenManager),
		Logger:             sysLogger,
	}
}
