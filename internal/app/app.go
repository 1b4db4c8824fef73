package app

import (
	"errors"
	"fmt"
	"time"

	"talentscout_backend/internal/ai/deepseek"
	"talentscout_backend/internal/auth"
	"talentscout_backend/internal/config"
	"talentscout_backend/internal/handlers"
	"talentscout_backend/internal/logger"
	"talentscout_backend/internal/middleware"
	"talentscout_backend/internal/models"
	"talentscout_backend/internal/repositories"
	"talentscout_backend/internal/routes"
	"talentscout_backend/internal/services"
	"talentscout_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedTestUser(db, cfg); err != nil {
		logger.Fatal("Failed to seed test user", "error", err)
	}

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ApiKey{},
		&models.Task{},
		&models.Candidate{},
	)
}

// SetupRouter builds the fully wired gin engine over the given database.
// Tests reuse it with their own config and DB.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	userRepo := repositories.NewUserRepository()
	keyRepo := repositories.NewAPIKeyRepository()
	taskRepo := repositories.NewTaskRepository()
	candidateRepo := repositories.NewCandidateRepository()

	tokenTTL := time.Duration(cfg.JWT.TTL) * time.Minute
	tokens := auth.NewTokenService(cfg.JWT.Secret, tokenTTL)

	completer, err := deepseek.NewClient(deepseek.Config{
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
	})
	if err != nil {
		logger.Fatal("Failed to initialize AI client", "error", err)
	}

	authService := services.NewAuthService(userRepo, tokens, tokenTTL)
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo, candidateRepo)
	aiService := services.NewAIService(keyRepo, completer, cfg.AI.APIKey)

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, authService),
		UserHandler: handlers.NewUserHandler(baseHandler, userService),
		TaskHandler: handlers.NewTaskHandler(baseHandler, taskService),
		AIHandler:   handlers.NewAIHandler(baseHandler, aiService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	guard := middleware.AuthMiddleware(tokens, userRepo)
	routes.RegisterRoutes(router, appHandlers, guard)

	return router
}

// seedTestUser creates the configured development account when missing.
func seedTestUser(db *gorm.DB, cfg *config.Config) error {
	username := cfg.TestUser.Username
	if username == "" || cfg.TestUser.Password == "" {
		return nil
	}

	var existing models.User
	result := db.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		logger.Info("Test user already exists, skipping", "username", username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check for test user: %w", result.Error)
	}

	hashedPassword, err := auth.HashPassword(cfg.TestUser.Password)
	if err != nil {
		return fmt.Errorf("hash test user password: %w", err)
	}

	user := &models.User{
		Username:          username,
		Email:             cfg.TestUser.Email,
		PasswordHash:      hashedPassword,
		SubscriptionLevel: models.SubscriptionFree,
		IsActive:          true,
	}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("create test user: %w", err)
	}

	logger.Info("Seeded test user", "username", username)
	return nil
}
