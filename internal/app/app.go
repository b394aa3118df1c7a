package app

import (
	"fmt"
	"time"

	"anchors_backend/database"
	"anchors_backend/internal/auth"
	"anchors_backend/internal/config"
	"anchors_backend/internal/email"
	"anchors_backend/internal/handlers"
	"anchors_backend/internal/logger"
	"anchors_backend/internal/middleware"
	"anchors_backend/internal/repositories"
	"anchors_backend/internal/routes"
	"anchors_backend/internal/services"
	"anchors_backend/internal/validator"

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
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	auth.InitJWT(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.Enabled {
		emailService = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err := emailService.Validate(); err != nil {
			logger.Fatal("Invalid SMTP configuration", "error", err)
		}
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("Email delivery disabled. Using mock provider.")
		emailService = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	companyRepo := repositories.NewCompanyRepository(gormDB)
	registrationRepo := repositories.NewRegistrationRepository(gormDB)

	otpTTL := time.Duration(cfg.Registration.OTPTTLMinutes) * time.Minute
	go sweepExpiredRegistrations(registrationRepo, otpTTL)
	exposeOTP := cfg.Server.Env == "development"

	authService := services.NewAuthService(userRepo, registrationRepo, emailService, otpTTL, exposeOTP)
	companyService := services.NewCompanyService(gormDB, companyRepo, emailService, cfg.Notify.JobBroadcastRecipients)
	studentService := services.NewStudentService(gormDB, userRepo, companyRepo, emailService)

	return &services.ServiceContainer{
		AuthService:    authService,
		CompanyService: companyService,
		StudentService: studentService,
		EmailService:   emailService,
	}
}

// sweepExpiredRegistrations periodically drops abandoned handshakes. Expiry
// is also enforced inline at verification time; this keeps the table small.
func sweepExpiredRegistrations(repo repositories.RegistrationRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := repo.DeleteExpired(time.Now()); err != nil {
			logger.WithError(err).Warn("failed to sweep expired pending registrations")
		}
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	return handlers.NewAppHandlers(sc, validator.New())
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
