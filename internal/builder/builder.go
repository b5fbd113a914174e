package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ethicallogix/assignment-maker/internal/api"
	assignmentapi "github.com/ethicallogix/assignment-maker/internal/api/assignment"
	authapi "github.com/ethicallogix/assignment-maker/internal/api/auth"
	"github.com/ethicallogix/assignment-maker/internal/config"
	"github.com/ethicallogix/assignment-maker/internal/integration/generation"
	"github.com/ethicallogix/assignment-maker/internal/integration/illustration"
	"github.com/ethicallogix/assignment-maker/internal/pkg/formatter"
	"github.com/ethicallogix/assignment-maker/internal/pkg/render"
	"github.com/ethicallogix/assignment-maker/internal/pkg/validator"
	"github.com/ethicallogix/assignment-maker/internal/repository"
	"github.com/ethicallogix/assignment-maker/internal/state"
	"github.com/ethicallogix/assignment-maker/internal/usecase/assignment"
	"github.com/ethicallogix/assignment-maker/internal/usecase/auth"
)

const cacheCleanupInterval = 10 * time.Minute

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserPostgres(db)
	activityRepo := repository.NewActivityPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var generator assignment.GenerationConnector
	var illustrator assignment.IllustrationConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		generator = generation.NewMockConnector(logger)
		illustrator = illustration.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		generator, err = generation.NewConnector(ctx, cfg.GenerationCfg, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("initialize generation connector: %w", err)
		}
		illustrator = illustration.NewConnector(cfg.IllustrationCfg, logger)
	}

	// Initialize validators
	fileValidator := validator.NewFileValidator(cfg.FileUploadCfg)
	logger.Info("Validators initialized")

	// In-memory state, render memoization and session storage
	store := state.NewStore()
	renderCache := cache.New(cfg.CacheTTL, cacheCleanupInterval)
	sessions := cache.New(cfg.SessionTTL, cacheCleanupInterval)

	// Document rendering and export formats
	renderer := render.NewRenderer(logger)
	formatters := formatter.NewFactory(renderer)

	// Initialize use cases
	assignmentUC := assignment.NewAssignmentUsecase(
		generator,
		illustrator,
		activityRepo,
		fileValidator,
		store,
		formatters,
		renderCache,
		cfg.IllustrationConfigured(),
		logger,
	)

	authUC := auth.NewAuthUsecase(
		userRepo,
		activityRepo,
		sessions,
		cfg.AdminUsername,
		cfg.AdminPassword,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	assignmentHandler := assignmentapi.NewHandler(assignmentUC, cfg.FileUploadCfg)
	authHandler := authapi.NewHandler(authUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(assignmentHandler, authHandler, authUC, cfg.GenerationCfg.Timeout, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. Generation requests can run for minutes, so the
	// write timeout follows the generation timeout instead of a fixed value.
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.GenerationCfg.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:          server,
		db:              db,
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}
