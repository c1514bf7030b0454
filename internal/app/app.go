package app

import (
	"database/sql"
	"fmt"

	"careerlink_backend/internal/auth"
	"careerlink_backend/internal/config"
	"careerlink_backend/internal/email"
	"careerlink_backend/internal/handlers"
	"careerlink_backend/internal/logger"
	"careerlink_backend/internal/middleware"
	"careerlink_backend/internal/repositories"
	"careerlink_backend/internal/routes"
	"careerlink_backend/internal/services"
	"careerlink_backend/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if err := auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL); err != nil {
		logger.Fatal("Failed to initialize JWT", "error", err)
	}

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает DI-граф и возвращает готовый *gin.Engine.
// Вынесено отдельно, чтобы интеграционные тесты могли поднять
// тот же роутер поверх httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	// 1. Сервисы
	serviceContainer := initializeServices(cfg)

	// 2. Хендлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Gin + middleware
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Маршруты
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// ServiceContainer - все сервисы приложения
type ServiceContainer struct {
	AuthService services.AuthService
}

func initializeServices(cfg *config.Config) *ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		smtpProvider, err := email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailProvider = smtpProvider
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = email.NewNoopProvider()
		logger.Warn("Email sending disabled, using noop provider")
	}

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()

	authService := services.NewAuthService(userRepo, profileRepo, emailProvider)

	return &ServiceContainer{
		AuthService: authService,
	}
}

func initializeHandlers(sc *ServiceContainer) *routes.AppHandlers {
	v := validator.New()
	baseHandler := handlers.NewBaseHandler(v)

	return &routes.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, sc.AuthService),
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	// SPA-фронтенд живет на другом origin
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	ginRouter.Use(cors.New(corsConfig))

	return ginRouter
}
