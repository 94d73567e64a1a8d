package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/photinia-ana/kalkman-web/internal/backend"
)

type HealthHandler struct {
	api     *backend.Client
	startAt time.Time
}

func NewHealthHandler(api *backend.Client) *HealthHandler {
	return &HealthHandler{
		api:     api,
		startAt: time.Now(),
	}
}

// Live handles GET /healthz — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /readyz — readiness probe with a backend reachability
// check.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	overallStatus := "healthy"
	checks := fiber.Map{
		"backend": checkBackend(ctx, h.api),
	}
	if backendCheck, ok := checks["backend"].(fiber.Map); ok {
		if backendCheck["status"] != "up" {
			overallStatus = "degraded"
		}
	}

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         checks,
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}

func checkBackend(ctx context.Context, api *backend.Client) fiber.Map {
	start := time.Now()
	err := api.Healthcheck(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{
			"status":     "down",
			"latency_ms": latency,
			"error":      "connection failed",
		}
	}
	return fiber.Map{
		"status":     "up",
		"latency_ms": latency,
	}
}
