package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-football/internal/config"
	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	"github.com/riskibarqy/fantasy-football/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-football/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-football/internal/infrastructure/repository/resilient"
	"github.com/riskibarqy/fantasy-football/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/fantasy-football/internal/infrastructure/schema"
	"github.com/riskibarqy/fantasy-football/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/fantasy-football/internal/platform/cache"
	"github.com/riskibarqy/fantasy-football/internal/platform/logging"
	"github.com/riskibarqy/fantasy-football/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-football/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Stores holds the player and team stores with the configured decorators applied.
type Stores struct {
	Players      player.Repository
	PlayerWriter player.Writer
	Teams        team.Repository
	TeamWriter   team.Writer

	closers []func() error
}

// Close releases the underlying database handle, if any.
func (s *Stores) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}

// OpenStores connects the configured backend. SQLite schemas are migrated on open.
func OpenStores(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Stores, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		playerStore player.Store
		teamStore   interface {
			team.Repository
			team.Writer
		}
		stores = &Stores{}
	)

	if cfg.DBDriver == config.DBDriverMemory {
		playerStore = memory.NewPlayerRepository(memory.SeedPlayers())
		teamStore = memory.NewTeamRepository(memory.SeedTeams())
		logger.Info("using in-memory store", "players", len(memory.SeedPlayers()), "teams", len(memory.SeedTeams()))
	} else {
		db, dialect, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		stores.closers = append(stores.closers, db.Close)

		if dialect.Driver == sqlstore.DriverSQLite {
			if err := migrateSQLite(db); err != nil {
				_ = stores.Close()
				return nil, err
			}
		}

		playerStore = sqlstore.NewPlayerRepository(db, dialect)
		teamStore = sqlstore.NewTeamRepository(db, dialect)
		logger.Info("database connected", "driver", dialect.Driver, "db_name", dbNameFromURL(cfg.DBURL))
	}

	var (
		players      player.Repository = playerStore
		playerWriter player.Writer     = playerStore
		teams        team.Repository   = teamStore
		teamWriter   team.Writer       = teamStore
	)

	breaker := resilience.NewCircuitBreakerFromConfig(resilience.CircuitBreakerConfig{
		Enabled:          cfg.DBCircuitEnabled,
		FailureThreshold: cfg.DBCircuitFailureCount,
		OpenTimeout:      cfg.DBCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
	})
	if breaker != nil {
		breaker.OnStateChange(func(from, to resilience.CircuitState) {
			logger.Warn("store circuit breaker state changed", "from", string(from), "to", string(to))
		})
		players = resilient.NewPlayerRepository(players, breaker)
		teams = resilient.NewTeamRepository(teams, breaker)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		cachedPlayers := cache.NewPlayerRepository(players, playerWriter, store)
		cachedTeams := cache.NewTeamRepository(teams, teamWriter, store)
		players, playerWriter = cachedPlayers, cachedPlayers
		teams, teamWriter = cachedTeams, cachedTeams
	}

	stores.Players = players
	stores.PlayerWriter = playerWriter
	stores.Teams = teams
	stores.TeamWriter = teamWriter
	return stores, nil
}

// NewHTTPServer wires the stores, services and router. The returned cleanup closes the stores.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	stores, err := OpenStores(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var writer player.Writer
	if cfg.PlayerWritesEnabled {
		writer = stores.PlayerWriter
	}

	handler := httpapi.NewHandler(
		usecase.NewPlayerService(stores.Players, writer, logger),
		usecase.NewTeamService(stores.Teams),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:      cfg.SwaggerEnabled,
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		PlayerWritesEnabled: cfg.PlayerWritesEnabled,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, stores.Close, nil
}

// NewImportService wires the importer against the configured stores. Reads bypass the cache.
func NewImportService(ctx context.Context, cfg config.Config, logger *logging.Logger) (*usecase.ImportService, func() error, error) {
	cfg.CacheEnabled = false

	stores, err := OpenStores(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return usecase.NewImportService(stores.Players, stores.PlayerWriter, stores.TeamWriter, logger), stores.Close, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, sqlstore.Dialect, error) {
	dialect, err := sqlstore.DialectFor(cfg.DBDriver)
	if err != nil {
		return nil, sqlstore.Dialect{}, err
	}

	dsn := cfg.DBURL
	if dialect.Driver == sqlstore.DriverPostgres {
		// lib/pq understands disable_prepared_binary_result; pgx would send it to the server as a runtime parameter.
		dsn = normalizeDBURL(dsn, cfg.DBDisablePreparedBinary)
	}

	db, err := otelsqlx.Open(dialect.Driver, dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithDBSystem(dialect.DBSystem()),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, sqlstore.Dialect{}, fmt.Errorf("open %s database: %w", dialect.Driver, err)
	}

	maxOpen := cfg.DBMaxOpenConns
	if dialect.Driver == sqlstore.DriverSQLite && strings.Contains(dsn, ":memory:") {
		// every pooled connection would see its own empty database
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, sqlstore.Dialect{}, fmt.Errorf("ping %s database: %w", dialect.Driver, err)
	}

	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithDBName(dbNameFromURL(dsn)))

	return db, dialect, nil
}

func migrateSQLite(db *sqlx.DB) error {
	m, err := schema.New(db.DB, sqlstore.DriverSQLite)
	if err != nil {
		return err
	}
	// m.Close would close db as well; the embedded source holds nothing worth releasing.
	if err := schema.Up(m); err != nil {
		return fmt.Errorf("migrate sqlite schema: %w", err)
	}
	return nil
}
