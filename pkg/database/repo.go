package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
	"github.com/navikt/dbinfo-backend/pkg/database/gensql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/qustavo/sqlhooks/v2"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

var (
	registerMu sync.Mutex
	registered = map[string]string{}
)

type Repo struct {
	Querier gensql.Querier

	db      *sql.DB
	metrics []prometheus.Collector
}

// New opens a database handle using the given driver, every query is
// instrumented through sqlhooks. The connection is established lazily,
// use Ping to check that the database is reachable.
func New(dsn, driverName string, maxIdle, maxOpen int) (*Repo, error) {
	hookedName, err := hookedDriver(driverName)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(hookedName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxIdleConns(maxIdle)
	db.SetMaxOpenConns(maxOpen)

	return &Repo{
		Querier: gensql.New(db),
		db:      db,
		metrics: []prometheus.Collector{
			collectors.NewDBStatsCollector(db, "dbinfo"),
		},
	}, nil
}

// NewFromDB wraps an already opened handle, used by tests
func NewFromDB(db *sql.DB) *Repo {
	return &Repo{
		Querier: gensql.New(db),
		db:      db,
	}
}

func (r *Repo) GetDB() *sql.DB {
	return r.db
}

func (r *Repo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repo) Close() error {
	return r.db.Close()
}

// Metrics returns the collectors for the connection pool and the queries
func (r *Repo) Metrics() []prometheus.Collector {
	return append([]prometheus.Collector{queryDuration, queryErrors}, r.metrics...)
}

func hookedDriver(name string) (string, error) {
	registerMu.Lock()
	defer registerMu.Unlock()

	if hooked, ok := registered[name]; ok {
		return hooked, nil
	}

	var drv driver.Driver

	switch name {
	case DriverPostgres:
		drv = &pq.Driver{}
	case DriverPgx:
		drv = stdlib.GetDefaultDriver()
	default:
		return "", fmt.Errorf("unsupported driver: %s", name)
	}

	hooked := name + "-hooks"
	sql.Register(hooked, sqlhooks.Wrap(drv, &Hooks{}))
	registered[name] = hooked

	return hooked, nil
}
