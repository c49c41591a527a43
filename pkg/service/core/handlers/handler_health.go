package handlers

import (
	"context"
	"net/http"

	"github.com/navikt/dbinfo-backend/pkg/service"
)

type HealthHandler struct {
	healthService service.HealthService
}

func (h *HealthHandler) Root(ctx context.Context, _ *http.Request, _ any) (*service.RootStatus, error) {
	return h.healthService.Root(ctx), nil
}

func (h *HealthHandler) Health(ctx context.Context, _ *http.Request, _ any) (*service.HealthStatus, error) {
	return h.healthService.Health(ctx), nil
}

func NewHealthHandler(s service.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: s,
	}
}
