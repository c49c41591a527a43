//go:build integration_test

package integration

import (
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rs/zerolog"

	_ "github.com/lib/pq"
)

type containers struct {
	t         *testing.T
	log       zerolog.Logger
	pool      *dockertest.Pool
	resources []*dockertest.Resource
}

// Cleanup purges every container started through c
func (c *containers) Cleanup() {
	for _, r := range c.resources {
		if err := c.pool.Purge(r); err != nil {
			c.log.Warn().Err(err).Msg("purging resources")
		}
	}
}

type PostgresConfig struct {
	User     string
	Password string
	Database string

	// HostPort is populated after the container is started.
	HostPort string
}

func (c *PostgresConfig) ConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", c.User, c.Password, c.HostPort, c.Database)
}

func NewPostgresConfig() *PostgresConfig {
	return &PostgresConfig{
		User:     "dbinfo-backend",
		Password: "supersecret",
		Database: "dbinfo",
	}
}

// RunPostgres starts a postgres container and waits until it accepts
// connections, the returned handle is closed when the test ends.
func (c *containers) RunPostgres(cfg *PostgresConfig) (*PostgresConfig, *sql.DB) {
	var db *sql.DB

	resource, err := c.pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			fmt.Sprintf("POSTGRES_PASSWORD=%s", cfg.Password),
			fmt.Sprintf("POSTGRES_USER=%s", cfg.User),
			fmt.Sprintf("POSTGRES_DB=%s", cfg.Database),
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		c.t.Fatalf("starting postgres container: %s", err)
	}

	cfg.HostPort = resource.GetHostPort("5432/tcp")
	c.log.Info().Msgf("Postgres is listening on %s", cfg.HostPort)

	c.pool.MaxWait = 2 * time.Minute
	c.resources = append(c.resources, resource)

	if err = c.pool.Retry(func() error {
		db, err = sql.Open("postgres", cfg.ConnectionURL())
		if err != nil {
			return err
		}

		return db.Ping()
	}); err != nil {
		c.t.Fatalf("could not connect to postgres: %s", err)
	}

	c.t.Cleanup(func() {
		_ = db.Close()
	})

	return cfg, db
}

func NewContainers(t *testing.T, log zerolog.Logger) *containers {
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("connecting to Docker: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		t.Fatalf("pinging Docker: %s", err)
	}

	return &containers{
		t:    t,
		log:  log,
		pool: pool,
	}
}

type TestRunnerStatus interface {
	HasStatusCode(code int) TestRunnerEnder
}

type TestRunnerEnder interface {
	Value(into any)
	Expect(expect, into any, opts ...cmp.Option)
}

// testRunner sends a single request to s and checks the JSON answer
type testRunner struct {
	t *testing.T
	s *httptest.Server

	status int
	body   []byte
}

func (r *testRunner) do(method, path string) TestRunnerStatus {
	r.t.Helper()

	req, err := http.NewRequest(method, r.s.URL+path, nil)
	if err != nil {
		r.t.Fatalf("creating request: %s", err)
	}

	resp, err := r.s.Client().Do(req)
	if err != nil {
		r.t.Fatalf("sending request: %s", err)
	}
	defer resp.Body.Close()

	r.body, err = io.ReadAll(resp.Body)
	if err != nil {
		r.t.Fatalf("reading response: %s", err)
	}

	r.status = resp.StatusCode

	return r
}

func (r *testRunner) Get(path string) TestRunnerStatus {
	r.t.Helper()

	return r.do(http.MethodGet, path)
}

func (r *testRunner) Delete(path string) TestRunnerStatus {
	r.t.Helper()

	return r.do(http.MethodDelete, path)
}

func (r *testRunner) HasStatusCode(code int) TestRunnerEnder {
	r.t.Helper()

	if r.status != code {
		r.t.Errorf("expected status code %d, got %d: %s", code, r.status, r.body)
	}

	return r
}

func (r *testRunner) Value(into any) {
	r.t.Helper()

	err := json.Unmarshal(r.body, into)
	if err != nil {
		r.t.Fatalf("unmarshaling %s: %s", r.body, err)
	}
}

func (r *testRunner) Expect(expect, into any, opts ...cmp.Option) {
	r.t.Helper()

	r.Value(into)

	diff := cmp.Diff(expect, into, opts...)
	if diff != "" {
		r.t.Errorf("unexpected response (-want +got):\n%s", diff)
	}
}

func NewTester(t *testing.T, s *httptest.Server) *testRunner {
	return &testRunner{
		t: t,
		s: s,
	}
}
