package handlers

import (
	"github.com/navikt/dbinfo-backend/pkg/service/core"
)

type Handlers struct {
	DatabaseInfoHandler *DatabaseInfoHandler
	HealthHandler       *HealthHandler
}

func NewHandlers(s *core.Services) *Handlers {
	return &Handlers{
		DatabaseInfoHandler: NewDatabaseInfoHandler(s.DatabaseInfoService),
		HealthHandler:       NewHealthHandler(s.HealthService),
	}
}
