package app

import (
	"fmt"

	"schemecheck_backend/internal/catalog"
	"schemecheck_backend/internal/config"
	"schemecheck_backend/internal/email"
	"schemecheck_backend/internal/handlers"
	"schemecheck_backend/internal/logger"
	"schemecheck_backend/internal/middleware"
	"schemecheck_backend/internal/models"
	"schemecheck_backend/internal/repositories"
	"schemecheck_backend/internal/routes"
	"schemecheck_backend/internal/services"
	"schemecheck_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
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

	if err := gormDB.AutoMigrate(&models.User{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Catalog problems must stop the process before it serves traffic.
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load scheme catalog", "error", err, "path", cfg.Catalog.Path)
	}
	logger.Info("Scheme catalog loaded", "schemes", cat.Len(), "path", cfg.Catalog.Path)

	ginRouter := SetupRouter(cfg, gormDB, cat)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
// Split out of Run so tests can mount the same router on httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, cat *catalog.Catalog) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB, cat)
	appHandlers := initializeHandlers(serviceContainer, cat)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, cat *catalog.Catalog) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(cfg)
		logger.Info("Email provider initialized", "smtp_host", cfg.Email.SMTPHost)
	} else {
		emailProvider = &email.NoopProvider{}
		logger.Warn("SMTP not configured, email notifications disabled")
	}

	userRepo := repositories.NewUserRepository(gormDB)

	authService := services.NewAuthService(userRepo, emailProvider)
	userService := services.NewUserService(userRepo, emailProvider)
	eligibilityService := services.NewEligibilityService(cat)

	return &services.ServiceContainer{
		AuthService:        authService,
		UserService:        userService,
		EligibilityService: eligibilityService,
		EmailService:       emailProvider,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer, cat *catalog.Catalog) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		UserHandler:   handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		SchemeHandler: handlers.NewSchemeHandler(baseHandler, cat, serviceContainer.EligibilityService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
