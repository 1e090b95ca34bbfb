// @title         hr-dashboard API
// @version       1.0
// @description   Recruitment dashboard backend: jobs, applicants and applicant trend statistics.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Authorization token: "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/hr-dashboard/docs"

	// internal imports
	"github.com/artem13815/hr-dashboard/api/http"
	"github.com/artem13815/hr-dashboard/api/http/handlers"
	"github.com/artem13815/hr-dashboard/api/http/presenter"
	"github.com/artem13815/hr-dashboard/migrations"
	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/auth"
	"github.com/artem13815/hr-dashboard/pkg/config"
	"github.com/artem13815/hr-dashboard/pkg/datasource"
	"github.com/artem13815/hr-dashboard/pkg/health"
	"github.com/artem13815/hr-dashboard/pkg/health/checkers"
	"github.com/artem13815/hr-dashboard/pkg/job"
	"github.com/artem13815/hr-dashboard/pkg/logging"
	pgrepo "github.com/artem13815/hr-dashboard/pkg/repository/postgres"
	"github.com/artem13815/hr-dashboard/pkg/security/jwt"
	"github.com/artem13815/hr-dashboard/pkg/seed"
	"github.com/artem13815/hr-dashboard/pkg/storage/postgres"
	"github.com/artem13815/hr-dashboard/pkg/storage/redis"
)

func main() {
	// Load configuration from env/.env and CONFIG_PATH
	cfg, err := config.Load()
	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// run wires the server and blocks until it stops.
func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL and bring the schema up to date
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("postgres connect: %w", err)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool, migrations.FS); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	checks := []health.Checker{checkers.NewPostgresChecker(pool)}

	// Token revocation lives in Redis when configured, in process otherwise
	var revoked auth.RevocationStore = auth.NewMemoryRevocations()
	if cfg.RedisURL != "" {
		rdb, err := redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis connect: %w", err)
		}
		defer rdb.Close()
		revoked = redis.NewRevocationStore(rdb)
		checks = append(checks, checkers.NewRedisChecker(rdb))
	} else {
		logger.Warn("REDIS_URL not set, logged-out tokens are forgotten on restart")
	}

	// Data source: live tables, sample dataset when they fail or are empty
	sample, err := datasource.DefaultSample()
	if cfg.SamplePath != "" {
		sample, err = datasource.LoadSampleFile(cfg.SamplePath)
	}
	if err != nil {
		return fmt.Errorf("load sample dataset: %w", err)
	}

	// Wire dependencies
	userRepo := pgrepo.NewUserRepository(pool)
	jobRepo := pgrepo.NewJobRepository(pool)
	applicantRepo := pgrepo.NewApplicantRepository(pool)
	selector := datasource.NewSelector(datasource.NewRemote(jobRepo, applicantRepo), sample, logger)

	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())
	authUC := auth.NewAuthService(userRepo, jwtGen, revoked)

	routes := http.Handlers{
		Auth:       handlers.NewAuthHandler(authUC),
		Health:     handlers.NewHealthHandler(health.NewService(checks...)),
		Jobs:       handlers.NewJobHandler(job.NewService(jobRepo), selector, cfg.PageSize),
		Applicants: handlers.NewApplicantHandler(applicant.NewService(applicantRepo), selector, cfg.PageSize),
		Stats:      handlers.NewStatsHandler(selector, cfg.Location()),
		Seed:       handlers.NewSeedHandler(seed.NewService(jobRepo, applicantRepo, nil), logger),
	}

	app := fiber.New(fiber.Config{
		AppName: "hr-dashboard",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return presenter.Error(c, code, err.Error())
		},
	})
	app.Use(recover.New())
	app.Use(handlers.RequestLogger(logger))
	app.Use(cors.New())

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer, revoked)

	// Register routes
	http.Register(app, routes, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()

	// Start server
	logger.Info("HTTP server listening", "port", cfg.Port)
	return app.Listen(":" + cfg.Port)
}
