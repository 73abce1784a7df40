package app

import (
	"fmt"

	"jobdesk_backend/internal/config"
	"jobdesk_backend/internal/database"
	"jobdesk_backend/internal/email"
	"jobdesk_backend/internal/handlers"
	"jobdesk_backend/internal/logger"
	"jobdesk_backend/internal/metrics"
	"jobdesk_backend/internal/middleware"
	"jobdesk_backend/internal/repositories"
	"jobdesk_backend/internal/routes"
	"jobdesk_backend/internal/services"
	"jobdesk_backend/internal/storage"
	"jobdesk_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, gormDB, storageInstance)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter()

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("Email delivery disabled, using mock provider")
		emailProvider = &MockEmailProvider{}
	}

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)
	savedJobRepo := repositories.NewSavedJobRepository(gormDB)

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(userRepo, profileRepo, emailProvider)
	profileService := services.NewProfileService(profileRepo)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo, profileRepo)
	pipelineService := services.NewPipelineService(appRepo)
	candidateService := services.NewCandidateService(appRepo)
	savedJobService := services.NewSavedJobService(savedJobRepo, jobRepo)
	uploadService := services.NewUploadService(storageInstance, profileRepo)

	return &services.ServiceContainer{
		AuthService:        authService,
		ProfileService:     profileService,
		JobService:         jobService,
		ApplicationService: applicationService,
		PipelineService:    pipelineService,
		CandidateService:   candidateService,
		SavedJobService:    savedJobService,
		UploadService:      uploadService,
		EmailProvider:      emailProvider,
		Storage:            storageInstance,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, container.ProfileService),
		JobHandler:         handlers.NewJobHandler(baseHandler, container.JobService, container.ApplicationService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService, container.PipelineService),
		CandidateHandler:   handlers.NewCandidateHandler(baseHandler, container.CandidateService),
		SavedJobHandler:    handlers.NewSavedJobHandler(baseHandler, container.SavedJobService),
		UploadHandler:      handlers.NewUploadHandler(baseHandler, container.UploadService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(metrics.GinMiddleware())
	return router
}
