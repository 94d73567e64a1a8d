package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/static"

	"github.com/photinia-ana/kalkman-web/internal/handler"
	"github.com/photinia-ana/kalkman-web/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Pages  *handler.Pages
	Health *handler.HealthHandler
}

// Setup configures the middleware stack and the page routes on the given
// Fiber app. The route table is fixed: the root redirects to the dashboard
// and each page maps to one handler.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (before the page group)
	app.Get("/healthz", h.Health.Live)
	app.Get("/readyz", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	app.Use("/static", static.New("./web/static"))

	// Page routes, all behind the general page limit
	app.Use(middleware.NewPageRateLimiter().Handler())
	app.Get("/", func(c fiber.Ctx) error {
		return c.Redirect().To("/dashboard")
	})
	app.Get("/dashboard", h.Pages.Dashboard)
	app.Get("/users", h.Pages.UserList)
	app.Get("/profile/:userId", h.Pages.Profile)
	app.Get("/compare", h.Pages.Compare, middleware.NewCompareRateLimiter().Handler())
	app.Get("/videos", h.Pages.Videos)
}
