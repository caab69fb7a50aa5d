package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Auth              *handlers.AuthHandler
	Services          *handlers.ServicesHandler
	Checkout          *handlers.CheckoutHandler
	Orders            *handlers.OrdersHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.SessionMiddleware.Handle, cfg.Auth.Logout)

	guarded := app.Group("", cfg.SessionMiddleware.Handle)
	guarded.Post("/services/select", cfg.Services.Select)
	guarded.Get("/checkout/prefill", cfg.Checkout.Prefill)
	guarded.Post("/checkout", cfg.Checkout.Submit)
	guarded.Get("/orders/history", cfg.Orders.History)
}
