package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/navikt/dbinfo-backend/pkg/database/gensql"
	"github.com/navikt/dbinfo-backend/pkg/errs"
	"github.com/navikt/dbinfo-backend/pkg/service"
	"github.com/navikt/dbinfo-backend/pkg/service/core/storage/postgres"
	"github.com/navikt/dbinfo-backend/pkg/service/core/storage/postgres/mock"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
)

func strToStrPtr(s string) *string {
	return &s
}

func TestDatabaseInfoStorage_GetDatabaseInfo(t *testing.T) {
	testCases := []struct {
		name           string
		mockReturn     gensql.GetDatabaseInfoRow
		mockReturnErr  error
		expectedResult *service.DatabaseInfo
		expectedKind   errs.Kind
		expectedErrMsg string
	}{
		{
			name: "Happy path",
			mockReturn: gensql.GetDatabaseInfoRow{
				Version:         "PostgreSQL 16.2",
				CurrentDatabase: "app",
				CurrentUser:     "bob",
			},
			expectedResult: &service.DatabaseInfo{
				Version: "PostgreSQL 16.2",
				Name:    "app",
				User:    "bob",
			},
		},
		{
			name:           "No rows",
			mockReturnErr:  sql.ErrNoRows,
			expectedKind:   errs.NotExist,
			expectedErrMsg: postgres.NoDatabaseInfoMessage,
		},
		{
			name:           "Connection failure",
			mockReturnErr:  fmt.Errorf("dial tcp: connection refused"),
			expectedKind:   errs.Database,
			expectedErrMsg: "dial tcp: connection refused",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			mockQueries := new(mock.DatabaseInfoQueriesMock)
			mockQueries.On("GetDatabaseInfo", ctx).Return(tc.mockReturn, tc.mockReturnErr)

			storage := postgres.NewDatabaseInfoStorage(mockQueries, nil)
			result, err := storage.GetDatabaseInfo(ctx)

			assert.Equal(t, tc.expectedResult, result)
			if tc.expectedErrMsg != "" {
				assert.True(t, errs.KindIs(tc.expectedKind, err))
				assert.EqualError(t, err, tc.expectedErrMsg)
				assert.Equal(t, []string{"databaseInfoStorage.GetDatabaseInfo"}, errs.OpStack(err))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestDatabaseInfoStorage_GetAllTables(t *testing.T) {
	testCases := []struct {
		name           string
		mockReturn     []gensql.GetAllTablesRow
		mockReturnErr  error
		expectedResult []service.TableInfo
		expectedErr    error
	}{
		{
			name: "Happy path",
			mockReturn: []gensql.GetAllTablesRow{
				{
					Schemaname: "audit",
					Tablename:  "events",
					Tableowner: "postgres",
					Tablespace: sql.NullString{String: "fast", Valid: true},
					Hasindexes: true,
				},
				{
					Schemaname:  "public",
					Tablename:   "users",
					Tableowner:  "app",
					Hastriggers: true,
					Rowsecurity: true,
				},
			},
			expectedResult: []service.TableInfo{
				{
					Schema:     "audit",
					Table:      "events",
					Owner:      "postgres",
					Tablespace: strToStrPtr("fast"),
					HasIndexes: true,
				},
				{
					Schema:      "public",
					Table:       "users",
					Owner:       "app",
					HasTriggers: true,
					RowSecurity: true,
				},
			},
		},
		{
			name:           "No tables",
			mockReturn:     []gensql.GetAllTablesRow{},
			expectedResult: []service.TableInfo{},
		},
		{
			name:          "Error fetching tables",
			mockReturn:    nil,
			mockReturnErr: fmt.Errorf("error fetching tables"),
			expectedErr:   errs.E(errs.Database, errs.Op("databaseInfoStorage.GetAllTables"), fmt.Errorf("error fetching tables")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			mockQueries := new(mock.DatabaseInfoQueriesMock)
			mockQueries.On("GetAllTables", ctx).Return(tc.mockReturn, tc.mockReturnErr)

			storage := postgres.NewDatabaseInfoStorage(mockQueries, nil)
			result, err := storage.GetAllTables(ctx)

			assert.Equal(t, tc.expectedResult, result)
			assert.Equal(t, tc.expectedErr, err)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestDatabaseInfoStorage_GetTablesList(t *testing.T) {
	testCases := []struct {
		name           string
		mockReturn     []gensql.GetPublicTablesRow
		mockReturnErr  error
		expectedResult []service.TableInfo
		expectedErr    error
	}{
		{
			name: "Happy path",
			mockReturn: []gensql.GetPublicTablesRow{
				{Schemaname: "public", Tablename: "accounts", Tableowner: "app"},
				{Schemaname: "public", Tablename: "users", Tableowner: "app", Hasrules: true},
			},
			expectedResult: []service.TableInfo{
				{Schema: "public", Table: "accounts", Owner: "app"},
				{Schema: "public", Table: "users", Owner: "app", HasRules: true},
			},
		},
		{
			name:           "No tables",
			mockReturn:     []gensql.GetPublicTablesRow{},
			expectedResult: []service.TableInfo{},
		},
		{
			name:          "Error fetching tables",
			mockReturn:    nil,
			mockReturnErr: fmt.Errorf("error fetching tables"),
			expectedErr:   errs.E(errs.Database, errs.Op("databaseInfoStorage.GetTablesList"), fmt.Errorf("error fetching tables")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			mockQueries := new(mock.DatabaseInfoQueriesMock)
			mockQueries.On("GetPublicTables", ctx).Return(tc.mockReturn, tc.mockReturnErr)

			storage := postgres.NewDatabaseInfoStorage(mockQueries, nil)
			result, err := storage.GetTablesList(ctx)

			assert.Equal(t, tc.expectedResult, result)
			assert.Equal(t, tc.expectedErr, err)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestDatabaseInfoStorage_GetDatabaseStats(t *testing.T) {
	testCases := []struct {
		name           string
		tables         int64
		tablesErr      error
		schemas        int64
		schemasErr     error
		expectedResult *service.DatabaseStats
		expectErr      bool
	}{
		{
			name:           "Happy path",
			tables:         12,
			schemas:        3,
			expectedResult: &service.DatabaseStats{TotalTables: 12, TotalSchemas: 3},
		},
		{
			name:           "Missing counts are zero",
			tablesErr:      sql.ErrNoRows,
			schemasErr:     sql.ErrNoRows,
			expectedResult: &service.DatabaseStats{TotalTables: 0, TotalSchemas: 0},
		},
		{
			name:       "One count fails",
			tables:     12,
			schemasErr: fmt.Errorf("timeout"),
			expectErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			// The counts run on a context derived from ctx
			mockQueries := new(mock.DatabaseInfoQueriesMock)
			mockQueries.On("CountTables", tmock.Anything).Return(tc.tables, tc.tablesErr)
			mockQueries.On("CountSchemas", tmock.Anything).Return(tc.schemas, tc.schemasErr)

			storage := postgres.NewDatabaseInfoStorage(mockQueries, nil)
			result, err := storage.GetDatabaseStats(ctx)

			assert.Equal(t, tc.expectedResult, result)
			if tc.expectErr {
				assert.True(t, errs.KindIs(errs.Database, err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDatabaseInfoStorage_Close(t *testing.T) {
	closer := new(mock.CloserMock)
	closer.On("Close").Return(nil).Once()

	storage := postgres.NewDatabaseInfoStorage(new(mock.DatabaseInfoQueriesMock), closer)
	assert.NoError(t, storage.Close())
	closer.AssertExpectations(t)

	assert.NoError(t, postgres.NewDatabaseInfoStorage(new(mock.DatabaseInfoQueriesMock), nil).Close())
}
