package corpstore

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/dart-analysis/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
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

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Search(ctx context.Context, q string) ([]model.Corporation, error) {
	q = normalizeQuery(q)
	if q == "" {
		return []model.Corporation{}, nil
	}
	term := "%" + q + "%"

	rows, err := s.db.QueryContext(ctx,
		`SELECT corp_code, corp_name, corp_eng_name, stock_code, modify_date
		 FROM corporations
		 WHERE corp_name LIKE ? OR corp_eng_name LIKE ?
		 ORDER BY corp_name
		 LIMIT ?`,
		term, term, searchLimit,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: search %q", q)
	}
	defer rows.Close()

	return scanCorporations(rows)
}

func (s *SQLiteStore) GetByCorpCode(ctx context.Context, corpCode string) (*model.Corporation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT corp_code, corp_name, corp_eng_name, stock_code, modify_date
		 FROM corporations WHERE corp_code = ?`,
		corpCode,
	)

	c, err := scanCorporation(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get corporation %s", corpCode)
	}
	return c, nil
}

func (s *SQLiteStore) GetByStockCode(ctx context.Context, stockCode string) ([]model.Corporation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT corp_code, corp_name, corp_eng_name, stock_code, modify_date
		 FROM corporations WHERE stock_code = ? ORDER BY corp_name`,
		stockCode,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get by stock code %s", stockCode)
	}
	defer rows.Close()

	return scanCorporations(rows)
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM corporations`).Scan(&n); err != nil {
		return 0, eris.Wrap(err, "sqlite: count corporations")
	}
	return n, nil
}

func (s *SQLiteStore) InsertBatch(ctx context.Context, corps []model.Corporation) (int, error) {
	if len(corps) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO corporations (corp_code, corp_name, corp_eng_name, stock_code, modify_date)
		 VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: prepare insert")
	}
	defer stmt.Close()

	count := 0
	for _, c := range corps {
		if c.CorpCode == "" || c.CorpName == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx,
			c.CorpCode, c.CorpName, nullable(c.CorpEngName), nullable(c.StockCode), nullable(c.ModifyDate),
		); err != nil {
			return 0, eris.Wrapf(err, "sqlite: insert corporation %s", c.CorpCode)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, eris.Wrap(err, "sqlite: commit tx")
	}
	return count, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCorporation(row scanner) (*model.Corporation, error) {
	var c model.Corporation
	var engName, stockCode, modifyDate sql.NullString
	if err := row.Scan(&c.CorpCode, &c.CorpName, &engName, &stockCode, &modifyDate); err != nil {
		return nil, err
	}
	c.CorpEngName = engName.String
	c.StockCode = stockCode.String
	c.ModifyDate = modifyDate.String
	return &c, nil
}

func scanCorporations(rows *sql.Rows) ([]model.Corporation, error) {
	out := []model.Corporation{}
	for rows.Next() {
		c, err := scanCorporation(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan corporation")
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate corporations")
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
