package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/storefront-service/internal/api/http"
	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/checkout"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/directory"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/ledger"
	"github.com/spec-kit/storefront-service/internal/observability"
	"github.com/spec-kit/storefront-service/internal/persistence"
	"github.com/spec-kit/storefront-service/internal/service"
	"github.com/spec-kit/storefront-service/internal/session"
	"github.com/spec-kit/storefront-service/internal/store"
	"github.com/spec-kit/storefront-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, cleanup, err := buildStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to init store backend", zap.Error(err))
	}
	defer cleanup()

	dir := directory.New(kv)
	sessions := session.NewManager(kv)
	led := ledger.New(dir)
	dispatcher := events.NewInMemoryDispatcher()

	accountService := service.NewAccountService(*cfg, service.AccountDependencies{
		Directory:  dir,
		Sessions:   sessions,
		Dispatcher: dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	intake := checkout.NewIntake(dir, led, dispatcher)
	sessionMiddleware := auth.NewSessionMiddleware(accountService.TokenManager(), sessions)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, kv.(store.Pinger)),
		Auth:              handlers.NewAuthHandler(accountService),
		Services:          handlers.NewServicesHandler(sessions),
		Checkout:          handlers.NewCheckoutHandler(intake, sessions, cfg.Notification.WhatsAppNumber),
		Orders:            handlers.NewOrdersHandler(led),
		SessionMiddleware: sessionMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func buildStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		redis := persistence.NewRedis(cfg.Redis, logger)
		return store.NewRedisStore(redis.Client), redis.Close, nil
	case config.StoreBackendPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, func() {}, err
		}
		if cfg.Postgres.EnsureSchema {
			if err := persistence.EnsureKVSchema(ctx, pg.PoolHandle(), logger); err != nil {
				pg.Close()
				return nil, func() {}, err
			}
		}
		return store.NewPostgresStore(pg.PoolHandle()), pg.Close, nil
	default:
		logger.Info("using in-memory store backend")
		return store.NewMemoryStore(), func() {}, nil
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
