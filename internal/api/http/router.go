package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tickethub/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Tickets *handlers.TicketsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// /tickets/search must be registered before /tickets/:id so "search"
	// is not captured as an id parameter.
	app.Get("/tickets", cfg.Tickets.ListTickets)
	app.Get("/tickets/search", cfg.Tickets.SearchTickets)
	app.Get("/tickets/:id", cfg.Tickets.GetTicket)
	app.Get("/stats", cfg.Tickets.GetStats)
}
