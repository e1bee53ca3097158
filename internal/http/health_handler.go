package http

import (
	"context"
	"time"

	"github.com/tuanvumaihuynh/inventory-hub/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-hub/internal/hub"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether a backing dependency is usable.
type HealthChecker interface {
	IsHealthy(ctx context.Context) (bool, error)
}

type healthHandler struct {
	hub    *hub.Hub
	checks map[string]HealthChecker
}

func newHealthHandler(h *hub.Hub, checks map[string]HealthChecker) *healthHandler {
	return &healthHandler{
		hub:    h,
		checks: checks,
	}
}

func (h *healthHandler) Healthz(ctx context.Context, request gen.HealthzRequestObject) (gen.HealthzResponseObject, error) {
	health := gen.Health{Subscribers: h.hub.Len()}
	if len(h.checks) == 0 {
		return gen.Healthz200JSONResponse{Success: true, Data: health}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	healthy := true
	checks := make(map[string]string, len(h.checks))
	for name, c := range h.checks {
		ok, err := c.IsHealthy(ctx)
		switch {
		case err != nil:
			checks[name] = err.Error()
			healthy = false
		case !ok:
			checks[name] = "unhealthy"
			healthy = false
		default:
			checks[name] = "ok"
		}
	}
	health.Checks = &checks

	if !healthy {
		return gen.Healthz503JSONResponse{Success: false, Data: health}, nil
	}
	return gen.Healthz200JSONResponse{Success: true, Data: health}, nil
}
