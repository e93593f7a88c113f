package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"careconnect_backend/database"
	"careconnect_backend/internal/auth"
	"careconnect_backend/internal/config"
	"careconnect_backend/internal/email"
	"careconnect_backend/internal/handlers"
	"careconnect_backend/internal/logger"
	"careconnect_backend/internal/middleware"
	"careconnect_backend/internal/repositories"
	"careconnect_backend/internal/routes"
	"careconnect_backend/internal/services"
	"careconnect_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Schema migrated")

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	case "postgres", "":
		return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	userRepo := repositories.NewUserRepository(db)
	bloodRepo := repositories.NewBloodRepository(db)
	deviceRepo := repositories.NewDeviceRepository(db)
	caregiverRepo := repositories.NewCaregiverRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	shareRepo := repositories.NewShareRepository(db)

	var sender email.Sender = email.NoopSender{}
	if cfg.Email.Enabled {
		sender = email.NewSMTPSender(cfg.Email)
		logger.Info("Email delivery enabled", "smtp_host", cfg.Email.SMTPHost)
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	notificationService := services.NewNotificationService(notificationRepo, userRepo, sender)
	authService := services.NewAuthService(userRepo, tokens)
	bloodService := services.NewBloodService(bloodRepo, userRepo, notificationService)
	deviceService := services.NewDeviceService(deviceRepo, userRepo, notificationService)
	caregiverService := services.NewCaregiverService(caregiverRepo, userRepo, notificationService)
	sharingService := services.NewSharingService(
		shareRepo, bloodRepo, deviceRepo, caregiverRepo, notificationService, cfg.FrontendURL)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, authService),
		BloodHandler:        handlers.NewBloodHandler(base, bloodService),
		DeviceHandler:       handlers.NewDeviceHandler(base, deviceService),
		CaregiverHandler:    handlers.NewCaregiverHandler(base, caregiverService),
		NotificationHandler: handlers.NewNotificationHandler(base, notificationService),
		SharingHandler:      handlers.NewSharingHandler(base, sharingService),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	if cfg.Auth.AllowHeaderIdentity {
		logger.Warn("Header identity mode is enabled; X-User-Email assertions are trusted")
	}
	authMW := middleware.AuthMiddleware(tokens, userRepo, cfg.Auth.AllowHeaderIdentity)

	routes.RegisterRoutes(router, appHandlers, authMW)
	return router
}
