package core

import (
	"context"
	"time"

	"github.com/navikt/dbinfo-backend/pkg/errs"
	"github.com/navikt/dbinfo-backend/pkg/service"
	"github.com/rs/zerolog"
)

var _ service.DatabaseInfoService = &databaseInfoService{}

type databaseInfoService struct {
	databaseInfoStorage service.DatabaseInfoStorage
	now                 func() time.Time
	log                 zerolog.Logger
}

func (s *databaseInfoService) GetDatabaseInfo(ctx context.Context) *service.Envelope[*service.DatabaseInfo] {
	const op errs.Op = "databaseInfoService.GetDatabaseInfo"

	info, err := s.databaseInfoStorage.GetDatabaseInfo(ctx)
	if err != nil {
		return failed[*service.DatabaseInfo](s, errs.E(op, err))
	}

	return service.Succeeded(info, s.now())
}

func (s *databaseInfoService) GetAllTables(ctx context.Context) *service.Envelope[[]service.TableInfo] {
	const op errs.Op = "databaseInfoService.GetAllTables"

	tables, err := s.databaseInfoStorage.GetAllTables(ctx)
	if err != nil {
		return failed[[]service.TableInfo](s, errs.E(op, err))
	}

	return service.Succeeded(nonNil(tables), s.now())
}

func (s *databaseInfoService) GetTablesList(ctx context.Context) *service.Envelope[[]service.TableInfo] {
	const op errs.Op = "databaseInfoService.GetTablesList"

	tables, err := s.databaseInfoStorage.GetTablesList(ctx)
	if err != nil {
		return failed[[]service.TableInfo](s, errs.E(op, err))
	}

	return service.Succeeded(nonNil(tables), s.now())
}

func (s *databaseInfoService) GetDatabaseStats(ctx context.Context) *service.Envelope[*service.DatabaseStats] {
	const op errs.Op = "databaseInfoService.GetDatabaseStats"

	stats, err := s.databaseInfoStorage.GetDatabaseStats(ctx)
	if err != nil {
		return failed[*service.DatabaseStats](s, errs.E(op, err))
	}

	if stats == nil {
		stats = &service.DatabaseStats{}
	}

	return service.Succeeded(stats, s.now())
}

func failed[T any](s *databaseInfoService, err error) *service.Envelope[T] {
	s.log.Error().Err(err).Strs("ops", errs.OpStack(err)).Msg("database operation failed")

	return service.Failed[T](err, s.now())
}

// nonNil makes sure an empty listing is encoded as [] and not null
func nonNil(tables []service.TableInfo) []service.TableInfo {
	if tables == nil {
		return []service.TableInfo{}
	}

	return tables
}

func NewDatabaseInfoService(storage service.DatabaseInfoStorage, now func() time.Time, log zerolog.Logger) *databaseInfoService {
	return &databaseInfoService{
		databaseInfoStorage: storage,
		now:                 now,
		log:                 log,
	}
}
