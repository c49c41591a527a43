package mock

import (
	"context"

	"github.com/navikt/dbinfo-backend/pkg/database/gensql"
	"github.com/navikt/dbinfo-backend/pkg/service/core/storage/postgres"
	"github.com/stretchr/testify/mock"
)

var _ postgres.DatabaseInfoQueries = &DatabaseInfoQueriesMock{}

type DatabaseInfoQueriesMock struct {
	mock.Mock
}

func (m *DatabaseInfoQueriesMock) GetDatabaseInfo(ctx context.Context) (gensql.GetDatabaseInfoRow, error) {
	args := m.Called(ctx)
	return args.Get(0).(gensql.GetDatabaseInfoRow), args.Error(1)
}

func (m *DatabaseInfoQueriesMock) GetAllTables(ctx context.Context) ([]gensql.GetAllTablesRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]gensql.GetAllTablesRow), args.Error(1)
}

func (m *DatabaseInfoQueriesMock) GetPublicTables(ctx context.Context) ([]gensql.GetPublicTablesRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]gensql.GetPublicTablesRow), args.Error(1)
}

func (m *DatabaseInfoQueriesMock) CountTables(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DatabaseInfoQueriesMock) CountSchemas(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type CloserMock struct {
	mock.Mock
}

func (m *CloserMock) Close() error {
	args := m.Called()
	return args.Error(0)
}
