package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/sports-schedule/internal/config"
	"github.com/riskibarqy/sports-schedule/internal/domain/event"
	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	"github.com/riskibarqy/sports-schedule/internal/domain/team"
	"github.com/riskibarqy/sports-schedule/internal/domain/unitofwork"
	"github.com/riskibarqy/sports-schedule/internal/domain/user"
	repocache "github.com/riskibarqy/sports-schedule/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/sports-schedule/internal/platform/cache"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
	"github.com/riskibarqy/sports-schedule/internal/platform/resilience"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// Store bundles the repositories of one backend together with the unit of
// work that spans them.
type Store struct {
	Leagues    league.Repository
	Teams      team.Repository
	Events     event.Repository
	Users      user.Repository
	UnitOfWork unitofwork.UnitOfWork

	closeFn func() error
}

func (s *Store) Close() error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// OpenStore builds the backend selected by STORE_BACKEND and wraps league and
// team reads with the TTL cache when enabled.
func OpenStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		store *Store
		err   error
	)
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		store = openMemoryStore(cfg)
	case config.StoreBackendPostgres:
		store, err = openPostgresStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}

	if cfg.CacheEnabled {
		cacheStore := basecache.NewStore(cfg.CacheTTL)
		store.Leagues = repocache.NewLeagueRepository(store.Leagues, cacheStore)
		store.Teams = repocache.NewTeamRepository(store.Teams, cacheStore)
		store.UnitOfWork = repocache.NewUnitOfWork(store.UnitOfWork, cacheStore)
	}

	logger.Info("store ready",
		"backend", cfg.StoreBackend,
		"seed_demo", cfg.StoreSeedDemo,
		"cache_enabled", cfg.CacheEnabled,
	)
	return store, nil
}

func openMemoryStore(cfg config.Config) *Store {
	mem := memory.NewStore()
	if cfg.StoreSeedDemo {
		mem.SeedDemo()
	}

	return &Store{
		Leagues:    mem.Leagues(),
		Teams:      mem.Teams(),
		Events:     mem.Events(),
		Users:      mem.Users(),
		UnitOfWork: memory.NewUnitOfWork(mem),
	}
}

func openPostgresStore(ctx context.Context, cfg config.Config) (*Store, error) {
	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.StoreSeedDemo {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap demo seed: %w", err)
		}
	}

	breaker := resilience.NewCircuitBreakerFromConfig(resilience.CircuitBreakerConfig{
		Enabled:          cfg.DBCircuitEnabled,
		FailureThreshold: cfg.DBCircuitFailureCount,
		OpenTimeout:      cfg.DBCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
	})

	return &Store{
		Leagues:    postgres.NewLeagueRepository(db),
		Teams:      postgres.NewTeamRepository(db),
		Events:     postgres.NewEventRepository(db),
		Users:      postgres.NewUserRepository(db),
		UnitOfWork: postgres.NewUnitOfWork(db, breaker),
		closeFn:    db.Close,
	}, nil
}

// OpenDB opens a traced connection pool and verifies it with a ping.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := DatabaseURL(cfg)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
