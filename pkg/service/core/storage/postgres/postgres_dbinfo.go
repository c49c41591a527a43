package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io"

	"github.com/navikt/dbinfo-backend/pkg/database"
	"github.com/navikt/dbinfo-backend/pkg/database/gensql"
	"github.com/navikt/dbinfo-backend/pkg/errs"
	"github.com/navikt/dbinfo-backend/pkg/service"
	"golang.org/x/sync/errgroup"
)

// NoDatabaseInfoMessage is the error message when the info query yields no rows
const NoDatabaseInfoMessage = "Failed to get database info"

var _ service.DatabaseInfoStorage = &databaseInfoStorage{}

type DatabaseInfoQueries interface {
	GetDatabaseInfo(ctx context.Context) (gensql.GetDatabaseInfoRow, error)
	GetAllTables(ctx context.Context) ([]gensql.GetAllTablesRow, error)
	GetPublicTables(ctx context.Context) ([]gensql.GetPublicTablesRow, error)
	CountTables(ctx context.Context) (int64, error)
	CountSchemas(ctx context.Context) (int64, error)
}

type databaseInfoStorage struct {
	queries DatabaseInfoQueries
	closer  io.Closer
}

func (s *databaseInfoStorage) GetDatabaseInfo(ctx context.Context) (*service.DatabaseInfo, error) {
	const op errs.Op = "databaseInfoStorage.GetDatabaseInfo"

	row, err := s.queries.GetDatabaseInfo(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, NoDatabaseInfoMessage)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	return From[DatabaseInfoRow, *service.DatabaseInfo](DatabaseInfoRow(row))
}

func (s *databaseInfoStorage) GetAllTables(ctx context.Context) ([]service.TableInfo, error) {
	const op errs.Op = "databaseInfoStorage.GetAllTables"

	rows, err := s.queries.GetAllTables(ctx)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	tables := make([]TableRow, len(rows))
	for i, row := range rows {
		tables[i] = TableRow(row)
	}

	return FromAll[TableRow, service.TableInfo](tables)
}

func (s *databaseInfoStorage) GetTablesList(ctx context.Context) ([]service.TableInfo, error) {
	const op errs.Op = "databaseInfoStorage.GetTablesList"

	rows, err := s.queries.GetPublicTables(ctx)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	tables := make([]TableRow, len(rows))
	for i, row := range rows {
		tables[i] = TableRow(row)
	}

	return FromAll[TableRow, service.TableInfo](tables)
}

func (s *databaseInfoStorage) GetDatabaseStats(ctx context.Context) (*service.DatabaseStats, error) {
	const op errs.Op = "databaseInfoStorage.GetDatabaseStats"

	var tables, schemas int64

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := countOrZero(s.queries.CountTables(gctx))
		tables = n

		return err
	})

	g.Go(func() error {
		n, err := countOrZero(s.queries.CountSchemas(gctx))
		schemas = n

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	return &service.DatabaseStats{
		TotalTables:  int(tables),
		TotalSchemas: int(schemas),
	}, nil
}

func (s *databaseInfoStorage) Close() error {
	const op errs.Op = "databaseInfoStorage.Close"

	if s.closer == nil {
		return nil
	}

	if err := s.closer.Close(); err != nil {
		return errs.E(errs.Database, op, err)
	}

	return nil
}

// countOrZero treats a missing count row as zero
func countOrZero(n int64, err error) (int64, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	return n, err
}

func NewDatabaseInfoStorage(queries DatabaseInfoQueries, closer io.Closer) *databaseInfoStorage {
	return &databaseInfoStorage{
		queries: queries,
		closer:  closer,
	}
}

// NewDatabaseInfoStorageFromRepo holds the repo's handle and closes it on Close
func NewDatabaseInfoStorageFromRepo(db *database.Repo) *databaseInfoStorage {
	return NewDatabaseInfoStorage(db.Querier, db)
}
