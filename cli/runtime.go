package cli

import (
	"context"
	"strings"

	gconfig "github.com/goliatone/go-config/config"
	immunization "github.com/goliatone/go-immunization"
	"github.com/goliatone/go-immunization/config"
	"github.com/goliatone/go-immunization/migrations"
	"github.com/goliatone/go-immunization/store"
)

// DefaultOpener loads configuration, opens the SQLite store with migrations
// applied and wires the registry service.
func DefaultOpener(ctx context.Context, opts *RootOptions) (*Runtime, error) {
	lgr := NewLogger(opts.Verbose)

	cfg := gconfig.New(config.Defaults()).WithLogger(lgr.GetLogger("config"))
	if err := cfg.Load(ctx); err != nil {
		return nil, err
	}
	base := cfg.Raw()
	if dsn := strings.TrimSpace(opts.DB); dsn != "" {
		base.Persistence.Server = dsn
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	if format := strings.ToLower(strings.TrimSpace(base.Output.Format)); !opts.FormatSet && format != "" {
		opts.Format = format
	}

	registryLogger := &loggerAdapter{l: lgr.GetLogger("registry")}
	st, err := store.Open(ctx, store.OpenConfig{
		Persistence:       base.GetPersistence(),
		Migrations:        migrations.Filesystems(),
		PersistenceLogger: lgr.GetLogger("persistence"),
		Logger:            registryLogger,
	})
	if err != nil {
		return nil, err
	}

	svc := immunization.New(immunization.Config{
		Store:  st,
		Logger: registryLogger,
	})
	if err := svc.HealthCheck(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}

	return &Runtime{
		Registry: svc,
		Config:   base,
		Close:    st.Close,
	}, nil
}
