package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/pokebox/internal/api/http"
	"github.com/spec-kit/pokebox/internal/api/http/handlers"
	"github.com/spec-kit/pokebox/internal/auth"
	"github.com/spec-kit/pokebox/internal/config"
	"github.com/spec-kit/pokebox/internal/events"
	"github.com/spec-kit/pokebox/internal/observability"
	"github.com/spec-kit/pokebox/internal/persistence"
	"github.com/spec-kit/pokebox/internal/pokeapi"
	"github.com/spec-kit/pokebox/internal/repository"
	"github.com/spec-kit/pokebox/internal/service"
	"github.com/spec-kit/pokebox/internal/worker"
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	boxRepo := repository.NewBoxRepository(redis.Client)
	catalog := pokeapi.NewClient(cfg.PokeAPI)

	authService := service.NewAuthService(cfg.Auth)
	boxService := service.NewBoxService(service.BoxDependencies{
		BoxRepo:    boxRepo,
		Dispatcher: dispatcher,
	})
	pokemonService := service.NewPokemonService(catalog)
	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		Token:          handlers.NewTokenHandler(authService),
		Pokemon:        handlers.NewPokemonHandler(pokemonService),
		Box:            handlers.NewBoxHandler(boxService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
