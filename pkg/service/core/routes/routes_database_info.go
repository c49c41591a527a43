package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/navikt/dbinfo-backend/pkg/service/core/handlers"
	"github.com/navikt/dbinfo-backend/pkg/service/core/transport"
	"github.com/rs/zerolog"
)

type DatabaseInfoEndpoints struct {
	GetAllTables     http.HandlerFunc
	GetDatabaseInfo  http.HandlerFunc
	GetTablesList    http.HandlerFunc
	GetDatabaseStats http.HandlerFunc
}

func NewDatabaseInfoEndpoints(log zerolog.Logger, h *handlers.DatabaseInfoHandler) *DatabaseInfoEndpoints {
	return &DatabaseInfoEndpoints{
		GetAllTables:     transport.For(h.GetAllTables).Build(log),
		GetDatabaseInfo:  transport.For(h.GetDatabaseInfo).Build(log),
		GetTablesList:    transport.For(h.GetTablesList).Build(log),
		GetDatabaseStats: transport.For(h.GetDatabaseStats).Build(log),
	}
}

func NewDatabaseInfoRoutes(endpoints *DatabaseInfoEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		// Kept for backward compatibility, same listing as /api/tables but
		// including every non-system schema under the "result" key
		router.Get("/api", endpoints.GetAllTables)
		router.Get("/api/db-info", endpoints.GetDatabaseInfo)
		router.Get("/api/tables", endpoints.GetTablesList)
		router.Get("/api/stats", endpoints.GetDatabaseStats)
	}
}
