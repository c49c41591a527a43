package core

import (
	"time"

	"github.com/navikt/dbinfo-backend/pkg/config/v2"
	"github.com/navikt/dbinfo-backend/pkg/service"
	"github.com/navikt/dbinfo-backend/pkg/service/core/storage"
	"github.com/rs/zerolog"
)

type Services struct {
	DatabaseInfoService service.DatabaseInfoService
	HealthService       service.HealthService
}

func NewServices(
	cfg config.Config,
	stores *storage.Stores,
	log zerolog.Logger,
) *Services {
	return &Services{
		DatabaseInfoService: NewDatabaseInfoService(stores.DatabaseInfoStorage, time.Now, log.With().Str("service", "database_info").Logger()),
		HealthService:       NewHealthService(cfg.Service.Name, cfg.Service.Version, time.Now),
	}
}
