package app

import (
	"errors"
	"fmt"
	"time"

	"fitpath_backend/internal/config"
	"fitpath_backend/internal/email"
	"fitpath_backend/internal/handlers"
	"fitpath_backend/internal/logger"
	"fitpath_backend/internal/middleware"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/payments"
	"fitpath_backend/internal/repositories"
	"fitpath_backend/internal/routes"
	"fitpath_backend/internal/services"
	"fitpath_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	// .env is optional; containers pass real environment variables.
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	if err := autoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := InitializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// InitializeServices builds the full service graph. Exported so the
// integration test server can reuse the production wiring.
func InitializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.Enabled {
		emailService = email.NewSMTPProvider(cfg)
		logger.Info("SMTP mail provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailService = &email.NoopProvider{}
		logger.Warn("Mail disabled; decision emails will be logged only")
	}

	gateway := payments.NewStripeGateway(cfg.Stripe.SecretKey)

	userRepo := repositories.NewUserRepository()
	applicationRepo := repositories.NewApplicationRepository()
	slotRepo := repositories.NewSlotRepository()
	bookingRepo := repositories.NewBookingRepository()
	classRepo := repositories.NewClassRepository()
	paymentRepo := repositories.NewPaymentRepository()
	reviewRepo := repositories.NewReviewRepository()
	forumRepo := repositories.NewForumRepository()
	newsletterRepo := repositories.NewNewsletterRepository()

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo),
		UserService:        services.NewUserService(userRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, userRepo, emailService),
		SlotService:        services.NewSlotService(slotRepo, bookingRepo, userRepo),
		PaymentService:     services.NewPaymentService(paymentRepo, classRepo, gateway, cfg.Stripe.Currency),
		ReviewService:      services.NewReviewService(reviewRepo),
		ForumService:       services.NewForumService(forumRepo),
		NewsletterService:  services.NewNewsletterService(newsletterRepo),
		ClassService:       services.NewClassService(classRepo),
		EmailService:       emailService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:        handlers.NewUserHandler(baseHandler, container.UserService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		SlotHandler:        handlers.NewSlotHandler(baseHandler, container.SlotService),
		PaymentHandler:     handlers.NewPaymentHandler(baseHandler, container.PaymentService),
		ReviewHandler:      handlers.NewReviewHandler(baseHandler, container.ReviewService),
		ForumHandler:       handlers.NewForumHandler(baseHandler, container.ForumService),
		NewsletterHandler:  handlers.NewNewsletterHandler(baseHandler, container.NewsletterService),
		ClassHandler:       handlers.NewClassHandler(baseHandler, container.ClassService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.TimeoutMiddleware(time.Duration(cfg.Server.RequestTimeout) * time.Second))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.TrainerApplication{},
		&models.RejectedApplication{},
		&models.Slot{},
		&models.Booking{},
		&models.Class{},
		&models.Payment{},
		&models.Review{},
		&models.ForumPost{},
		&models.NewsletterSubscriber{},
	)
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
