package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pokebox/internal/api/http/handlers"
	"github.com/spec-kit/pokebox/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Token          *handlers.TokenHandler
	Pokemon        *handlers.PokemonHandler
	Box            *handlers.BoxHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/token", cfg.Token.Issue)

	app.Get("/pokemon", cfg.Pokemon.List)
	app.Get("/pokemon/:name", cfg.Pokemon.Get)

	box := app.Group("/box", cfg.AuthMiddleware.Handle)
	box.Get("/", cfg.Box.List)
	box.Post("/", cfg.Box.Create)
	box.Delete("/", cfg.Box.Clear)
	box.Get("/:id", cfg.Box.Get)
	box.Put("/:id", cfg.Box.Update)
	box.Delete("/:id", cfg.Box.Delete)
}
