package main

import (
	"context"
	"fmt"
	"log/slog"

	amqpadapter "github.com/SscSPs/budget_tracker/internal/adapters/messaging/amqp"
	portsmsg "github.com/SscSPs/budget_tracker/internal/core/ports/messaging"
	"github.com/SscSPs/budget_tracker/internal/core/services"
	"github.com/SscSPs/budget_tracker/internal/handlers"
	"github.com/SscSPs/budget_tracker/internal/middleware"
	"github.com/SscSPs/budget_tracker/internal/platform/config"
	"github.com/SscSPs/budget_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/budget_tracker/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), logger)
		},
	}
}

func runServe(ctx context.Context, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	publisher, closePublisher, err := newEventPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, publisher)

	rateLimiter, err := middleware.NewMemoryRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("create rate limiter: %w", err)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	return r.Run(":" + cfg.Port)
}

// newEventPublisher connects to the broker when AMQP_URL is set and falls back to a no-op publisher.
func newEventPublisher(cfg *config.Config, logger *slog.Logger) (portsmsg.TransactionEventPublisher, func(), error) {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL not set, transaction events are not published")
		return amqpadapter.NoopPublisher{}, func() {}, nil
	}

	publisher, err := amqpadapter.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
	if err != nil {
		return nil, nil, fmt.Errorf("connect event publisher: %w", err)
	}
	logger.Info("Publishing transaction events", slog.String("exchange", cfg.AMQPExchange))

	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Error closing event publisher", slog.String("error", err.Error()))
		}
	}, nil
}
