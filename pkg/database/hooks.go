package database

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/qustavo/sqlhooks/v2"
	"github.com/rs/zerolog"
)

const unnamedQuery = "unnamed"

var queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "dbinfo_backend",
	Subsystem: "database",
	Name:      "query_duration_seconds",
	Buckets:   prometheus.DefBuckets,
}, []string{"query"})

var queryErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "dbinfo_backend",
	Subsystem: "database",
	Name:      "query_errors_total",
}, []string{"query"})

var (
	_ sqlhooks.Hooks     = &Hooks{}
	_ sqlhooks.OnErrorer = &Hooks{}
)

type startedKey struct{}

// Hooks records the duration and errors of every query, and logs the query
// to the logger found in the context at debug level.
type Hooks struct{}

func (h *Hooks) Before(ctx context.Context, _ string, _ ...interface{}) (context.Context, error) {
	return context.WithValue(ctx, startedKey{}, time.Now()), nil
}

func (h *Hooks) After(ctx context.Context, query string, _ ...interface{}) (context.Context, error) {
	name := QueryName(query)
	elapsed := since(ctx)

	queryDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	zerolog.Ctx(ctx).Debug().
		Str("query", name).
		Dur("duration", elapsed).
		Msg("query executed")

	return ctx, nil
}

func (h *Hooks) OnError(ctx context.Context, err error, query string, _ ...interface{}) error {
	name := QueryName(query)

	queryErrors.WithLabelValues(name).Inc()

	zerolog.Ctx(ctx).Warn().
		Err(err).
		Str("query", name).
		Dur("duration", since(ctx)).
		Msg("query failed")

	return err
}

func since(ctx context.Context) time.Duration {
	started, ok := ctx.Value(startedKey{}).(time.Time)
	if !ok {
		return 0
	}

	return time.Since(started)
}

// QueryName extracts the name from the "-- name: X :kind" header sqlc puts
// on every generated query.
func QueryName(query string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(query), "\n")

	rest, ok := strings.CutPrefix(line, "-- name:")
	if !ok {
		return unnamedQuery
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return unnamedQuery
	}

	return fields[0]
}
