package store

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"sync"

	"github.com/goliatone/go-immunization/pkg/types"
	"github.com/goliatone/go-logger/glog"
	persistence "github.com/goliatone/go-persistence-bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// DefaultDSN is the database file used when the configuration leaves the
// server empty.
const DefaultDSN = "file:immunization_registry.db"

var registerModels sync.Once

// OpenConfig describes how Open builds a store that owns its connection.
type OpenConfig struct {
	Persistence persistence.Config
	// Migrations are registered with the persistence client in order. Each
	// filesystem is rooted at a dialect-aware migrations directory.
	Migrations []fs.FS
	// PersistenceLogger receives persistence client and migration logs.
	PersistenceLogger glog.Logger
	Logger            types.Logger
}

// Open connects to SQLite, applies the registered migrations and returns a
// store whose Close releases the connection. Callers should defer Close
// immediately after a successful Open.
func Open(ctx context.Context, cfg OpenConfig) (*Store, error) {
	if cfg.Persistence == nil {
		return nil, errors.New("store: persistence config required")
	}
	dsn := strings.TrimSpace(cfg.Persistence.GetServer())
	if dsn == "" {
		dsn = DefaultDSN
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}
	// One process, one writer: a single connection keeps SQLite from
	// reporting SQLITE_BUSY on overlapping statements.
	sqldb.SetMaxOpenConns(1)

	registerModels.Do(func() {
		persistence.RegisterModel((*IndividualRecord)(nil))
		persistence.RegisterModel((*VaccinationRecord)(nil))
	})

	client, err := persistence.New(cfg.Persistence, sqldb, sqlitedialect.New())
	if err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	if cfg.PersistenceLogger != nil {
		client.SetLogger(cfg.PersistenceLogger)
	}

	for _, fsys := range cfg.Migrations {
		if fsys == nil {
			continue
		}
		client.RegisterDialectMigrations(
			fsys,
			persistence.WithDialectSourceLabel("."),
			persistence.WithValidationTargets("postgres", "sqlite"),
		)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = types.NopLogger{}
	}

	if err := client.ValidateDialects(ctx); err != nil {
		logger.Error("dialect validation failed", err)
	}

	if err := client.Migrate(ctx); err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	if report := client.Report(); report != nil && !report.IsZero() {
		logger.Debug("migrations applied", "report", report.String())
	}

	st, err := New(Config{
		DB:     client.DB(),
		Logger: logger,
	})
	if err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	st.closer = client.DB().Close
	logger.Debug("registry store opened", "dsn", dsn)
	return st, nil
}
