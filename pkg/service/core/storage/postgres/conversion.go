package postgres

import (
	"database/sql"

	"github.com/navikt/dbinfo-backend/pkg/database/gensql"
	"github.com/navikt/dbinfo-backend/pkg/service"
)

type Converter[O any] interface {
	To() (O, error)
}

func From[I Converter[O], O any](i I) (O, error) {
	return i.To()
}

func FromAll[I Converter[O], O any](in []I) ([]O, error) {
	out := make([]O, 0, len(in))

	for _, i := range in {
		o, err := From[I, O](i)
		if err != nil {
			return nil, err
		}

		out = append(out, o)
	}

	return out, nil
}

func nullStringToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}

	return &ns.String
}

// TableRow has the columns shared by all pg_tables queries
type TableRow gensql.GetAllTablesRow

var _ Converter[service.TableInfo] = TableRow{}

func (r TableRow) To() (service.TableInfo, error) {
	return service.TableInfo{
		Schema:      r.Schemaname,
		Table:       r.Tablename,
		Owner:       r.Tableowner,
		Tablespace:  nullStringToPtr(r.Tablespace),
		HasIndexes:  r.Hasindexes,
		HasRules:    r.Hasrules,
		HasTriggers: r.Hastriggers,
		RowSecurity: r.Rowsecurity,
	}, nil
}

type DatabaseInfoRow gensql.GetDatabaseInfoRow

var _ Converter[*service.DatabaseInfo] = DatabaseInfoRow{}

func (r DatabaseInfoRow) To() (*service.DatabaseInfo, error) {
	return &service.DatabaseInfo{
		Version: r.Version,
		Name:    r.CurrentDatabase,
		User:    r.CurrentUser,
	}, nil
}
