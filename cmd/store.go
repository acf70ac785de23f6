package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/dart-analysis/internal/corpstore"
)

// initStore opens the corporation registry backend named in config and
// runs migrations.
func initStore(ctx context.Context) (corpstore.Store, error) {
	var (
		st  corpstore.Store
		err error
	)

	switch cfg.Store.Driver {
	case "postgres":
		st, err = corpstore.NewPostgres(ctx, cfg.Store.DatabaseURL, &corpstore.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
	default:
		st, err = corpstore.NewSQLite(cfg.Store.DatabaseURL)
	}
	if err != nil {
		return nil, eris.Wrap(err, "open corp store")
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate corp store")
	}

	return st, nil
}

// ensureCorporations loads the registry when it is empty, preferring the
// configured corp.xml dump over the built-in seed list.
func ensureCorporations(ctx context.Context, st corpstore.Store) error {
	n, err := st.Count(ctx)
	if err != nil {
		return eris.Wrap(err, "count corporations")
	}
	if n > 0 {
		zap.L().Info("corporation registry ready", zap.Int("count", n))
		return nil
	}

	corps := corpstore.SeedCorporations()
	source := "seed"
	if cfg.Store.CorpFile != "" {
		corps, err = corpstore.LoadCorpFile(cfg.Store.CorpFile)
		if err != nil {
			return eris.Wrap(err, "load corp file")
		}
		source = cfg.Store.CorpFile
	}

	inserted, err := st.InsertBatch(ctx, corps)
	if err != nil {
		return eris.Wrap(err, "insert corporations")
	}

	zap.L().Info("corporation registry loaded",
		zap.String("source", source),
		zap.Int("inserted", inserted),
	)
	return nil
}
