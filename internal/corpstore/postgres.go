package corpstore

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/dart-analysis/internal/db"
	"github.com/sells-group/dart-analysis/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the hot lookup paths.
var preparedStatements = map[string]string{
	"search_corporations": `SELECT corp_code, corp_name, corp_eng_name, stock_code, modify_date FROM corporations WHERE corp_name LIKE $1 OR corp_eng_name LIKE $1 ORDER BY corp_name LIMIT $2`,
	"get_by_corp_code":    `SELECT corp_code, corp_name, corp_eng_name, stock_code, modify_date FROM corporations WHERE corp_code = $1`,
	"get_by_stock_code":   `SELECT corp_code, corp_name, corp_eng_name, stock_code, modify_date FROM corporations WHERE stock_code = $1 ORDER BY corp_name`,
	"count_corporations":  `SELECT COUNT(*) FROM corporations`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	// Apply pool sizing from config with sensible defaults.
	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	// Prepare frequently-used statements on each new connection.
	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS corporations (
	corp_code     TEXT PRIMARY KEY,
	corp_name     TEXT NOT NULL,
	corp_eng_name TEXT,
	stock_code    TEXT,
	modify_date   TEXT
);

CREATE INDEX IF NOT EXISTS idx_corporations_corp_name ON corporations(corp_name);
CREATE INDEX IF NOT EXISTS idx_corporations_stock_code ON corporations(stock_code);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) Search(ctx context.Context, q string) ([]model.Corporation, error) {
	q = normalizeQuery(q)
	if q == "" {
		return []model.Corporation{}, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT corp_code, corp_name, corp_eng_name, stock_code, modify_date
		 FROM corporations
		 WHERE corp_name LIKE $1 OR corp_eng_name LIKE $1
		 ORDER BY corp_name
		 LIMIT $2`,
		"%"+q+"%", searchLimit,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: search %q", q)
	}
	defer rows.Close()

	return scanPgCorporations(rows)
}

func (s *PostgresStore) GetByCorpCode(ctx context.Context, corpCode string) (*model.Corporation, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT corp_code, corp_name, corp_eng_name, stock_code, modify_date
		 FROM corporations WHERE corp_code = $1`,
		corpCode,
	)

	c, err := scanPgCorporation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get corporation %s", corpCode)
	}
	return c, nil
}

func (s *PostgresStore) GetByStockCode(ctx context.Context, stockCode string) ([]model.Corporation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT corp_code, corp_name, corp_eng_name, stock_code, modify_date
		 FROM corporations WHERE stock_code = $1 ORDER BY corp_name`,
		stockCode,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get by stock code %s", stockCode)
	}
	defer rows.Close()

	return scanPgCorporations(rows)
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM corporations`).Scan(&n); err != nil {
		return 0, eris.Wrap(err, "postgres: count corporations")
	}
	return n, nil
}

// InsertBatch bulk-upserts via a temp table and COPY; the registry dump
// carries ~100k rows, per-row INSERTs are too slow for the reload path.
func (s *PostgresStore) InsertBatch(ctx context.Context, corps []model.Corporation) (int, error) {
	rows := make([][]any, 0, len(corps))
	for _, c := range corps {
		if c.CorpCode == "" || c.CorpName == "" {
			continue
		}
		rows = append(rows, []any{
			c.CorpCode, c.CorpName, nullable(c.CorpEngName), nullable(c.StockCode), nullable(c.ModifyDate),
		})
	}

	n, err := db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table:        "corporations",
		Columns:      []string{"corp_code", "corp_name", "corp_eng_name", "stock_code", "modify_date"},
		ConflictKeys: []string{"corp_code"},
	}, rows)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: insert corporations")
	}
	return int(n), nil
}

func scanPgCorporation(row pgx.Row) (*model.Corporation, error) {
	var c model.Corporation
	var engName, stockCode, modifyDate *string
	if err := row.Scan(&c.CorpCode, &c.CorpName, &engName, &stockCode, &modifyDate); err != nil {
		return nil, err
	}
	if engName != nil {
		c.CorpEngName = *engName
	}
	if stockCode != nil {
		c.StockCode = *stockCode
	}
	if modifyDate != nil {
		c.ModifyDate = *modifyDate
	}
	return &c, nil
}

func scanPgCorporations(rows pgx.Rows) ([]model.Corporation, error) {
	out := []model.Corporation{}
	for rows.Next() {
		c, err := scanPgCorporation(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan corporation")
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "postgres: iterate corporations")
}
