package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	chimw "github.com/go-chi/chi/middleware"
	"github.com/joho/godotenv"
	"github.com/navikt/dbinfo-backend/pkg/config/v2"
	"github.com/navikt/dbinfo-backend/pkg/database"
	"github.com/navikt/dbinfo-backend/pkg/middleware"
	"github.com/navikt/dbinfo-backend/pkg/requestlogger"
	"github.com/navikt/dbinfo-backend/pkg/service/core"
	"github.com/navikt/dbinfo-backend/pkg/service/core/handlers"
	"github.com/navikt/dbinfo-backend/pkg/service/core/routes"
	"github.com/navikt/dbinfo-backend/pkg/service/core/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

var (
	configFilePath = flag.String("config", "config.yaml", "path to config file")
	printRoutes    = flag.Bool("print-routes", false, "print the routes and exit")
)

const (
	envPrefix       = "DBINFO"
	shutdownTimeout = 5 * time.Second
	pingTimeout     = 5 * time.Second
)

func main() {
	flag.Parse()

	zlog := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// A missing .env is fine, the environment can come from anywhere
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		zlog.Fatal().Err(err).Msg("loading .env file")
	}

	fileParts, err := config.ProcessConfigPath(*configFilePath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("processing config path")
	}

	cfg, err := config.NewFileSystemLoader().Load(fileParts.FileName, fileParts.Path, envPrefix, config.NewDefaultEnvBinder())
	if err != nil {
		zlog.Fatal().Err(err).Msg("loading config")
	}

	err = cfg.Validate()
	if err != nil {
		zlog.Fatal().Err(err).Msg("validating config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		zlog.Fatal().Err(err).Msg("parsing log level")
	}

	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	zlog = zlog.Level(level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	repo, err := database.New(
		cfg.Postgres.ConnectionString(),
		cfg.Postgres.Driver,
		cfg.Postgres.Configuration.MaxIdleConnections,
		cfg.Postgres.Configuration.MaxOpenConnections,
	)
	if err != nil {
		zlog.Fatal().Err(err).Msg("setting up database")
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
	err = repo.Ping(pingCtx)
	pingCancel()

	if err != nil {
		// Requests will fail with a 500 until the database shows up
		zlog.Warn().Err(err).Msg("database is not reachable")
	}

	stores := storage.NewStores(repo)
	services := core.NewServices(cfg, stores, zlog)
	h := handlers.NewHandlers(services)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(requestlogger.Middleware(zlog, "/health", "/internal/metrics"))
	router.Use(middleware.Recoverer(zlog))

	routes.Add(router,
		routes.NewHealthRoutes(routes.NewHealthEndpoints(zlog, h.HealthHandler)),
		routes.NewDatabaseInfoRoutes(routes.NewDatabaseInfoEndpoints(zlog, h.DatabaseInfoHandler)),
		routes.NewMetricsRoutes(routes.NewMetricsEndpoints(prom(repo.Metrics()...))),
		routes.NewFallbackRoutes(cfg.Server.AssetsDir),
	)

	if *printRoutes {
		err = routes.Print(router, os.Stdout)
		if err != nil {
			zlog.Fatal().Err(err).Msg("printing routes")
		}

		return
	}

	server := http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Address, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		zlog.Info().Msgf("listening on %s", server.Addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal().Err(err).Msg("serving")
		}
	}()
	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Warn().Err(err).Msg("shutdown error")
	}

	if err := stores.DatabaseInfoStorage.Close(); err != nil {
		zlog.Warn().Err(err).Msg("closing database")
	}
}

func prom(cols ...prometheus.Collector) *prometheus.Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewGoCollector())
	r.MustRegister(cols...)

	return r
}
