package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/navikt/dbinfo-backend/pkg/service/core/handlers"
	"github.com/navikt/dbinfo-backend/pkg/service/core/transport"
	"github.com/rs/zerolog"
)

type HealthEndpoints struct {
	Root   http.HandlerFunc
	Health http.HandlerFunc
}

func NewHealthEndpoints(log zerolog.Logger, h *handlers.HealthHandler) *HealthEndpoints {
	return &HealthEndpoints{
		Root:   transport.For(h.Root).Build(log),
		Health: transport.For(h.Health).Build(log),
	}
}

func NewHealthRoutes(endpoints *HealthEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		router.Get("/", endpoints.Root)
		router.Get("/health", endpoints.Health)
	}
}
