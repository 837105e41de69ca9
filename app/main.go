package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"office-inventory/internal/repositories"
	"office-inventory/internal/repositories/memory"
	"office-inventory/internal/routes"
	"office-inventory/migrations"
	"office-inventory/pkg/config"
	"office-inventory/pkg/customvalidator"
	"office-inventory/pkg/database/postgresql"
	apperrors "office-inventory/pkg/errors"
	applogger "office-inventory/pkg/logger"
	"office-inventory/pkg/metrics"
	"office-inventory/pkg/middleware"
	"office-inventory/pkg/service"
	"office-inventory/pkg/utils"
)

func main() {
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Server.Environment, cfg.Server.LogFile)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition},
	}))
	e.Use(metrics.Middleware())
	e.Use(middleware.InjectLogger(logger))
	e.Use(middleware.RequestLogger(logger))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register validation rules", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	deps, cleanup, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialise storage", zap.Error(err))
	}
	defer cleanup()

	if err := routes.InitRouter(e, deps, logger, cfg); err != nil {
		logger.Fatal("failed to initialise routes", zap.Error(err))
	}

	go func() {
		logger.Info("server started", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Postgres.Driver))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// buildDependencies opens the configured storage and KV drivers.
func buildDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (routes.Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := routes.Dependencies{
		JWT: service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.SessionTTL),
	}

	switch cfg.Postgres.Driver {
	case "memory":
		logger.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		deps.Equipment = store.Equipment()
		deps.Issues = store.Issues()
		deps.Transfers = store.Transfers()
	default:
		if cfg.Postgres.RunMigrations {
			if err := migrations.Up(cfg.Postgres.DSN); err != nil {
				return deps, cleanup, err
			}
			logger.Info("migrations applied")
		}
		pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
		if err != nil {
			return deps, cleanup, err
		}
		closers = append(closers, pool.Close)
		deps.Equipment = repositories.NewEquipmentRepository(pool, logger)
		deps.Issues = repositories.NewIssueRepository(pool, logger)
		deps.Transfers = repositories.NewTransferRepository(pool, logger)
	}

	switch cfg.Redis.Driver {
	case "memory":
		deps.Cache = memory.NewCache()
	default:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if _, err := client.Ping(ctx).Result(); err != nil {
			cleanup()
			return deps, func() {}, err
		}
		closers = append(closers, func() { _ = client.Close() })
		deps.Cache = repositories.NewRedisCacheRepository(client)
	}

	return deps, cleanup, nil
}
