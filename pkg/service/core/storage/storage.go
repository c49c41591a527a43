package storage

import (
	"github.com/navikt/dbinfo-backend/pkg/database"
	"github.com/navikt/dbinfo-backend/pkg/service"
	"github.com/navikt/dbinfo-backend/pkg/service/core/storage/postgres"
)

type Stores struct {
	DatabaseInfoStorage service.DatabaseInfoStorage
}

func NewStores(db *database.Repo) *Stores {
	return &Stores{
		DatabaseInfoStorage: postgres.NewDatabaseInfoStorageFromRepo(db),
	}
}
