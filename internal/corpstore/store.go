// Package corpstore persists the DART corporation registry and answers the
// lookup queries behind the search endpoints. Two backends are provided:
// SQLite for single-node deployments and Postgres for shared ones.
package corpstore

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/unicode/norm"

	"github.com/sells-group/dart-analysis/internal/model"
)

// ErrNotFound is returned when no corporation matches the requested key.
var ErrNotFound = eris.New("corpstore: corporation not found")

// searchLimit caps name-search results.
const searchLimit = 100

// Store defines the corporation registry interface.
type Store interface {
	// Search matches q as a substring of corp_name or corp_eng_name,
	// ordered by corp_name. An empty query yields an empty slice.
	Search(ctx context.Context, q string) ([]model.Corporation, error)
	GetByCorpCode(ctx context.Context, corpCode string) (*model.Corporation, error)
	GetByStockCode(ctx context.Context, stockCode string) ([]model.Corporation, error)
	Count(ctx context.Context) (int, error)
	InsertBatch(ctx context.Context, corps []model.Corporation) (int, error)

	Migrate(ctx context.Context) error
	Close() error
}

// normalizeQuery trims and NFC-normalizes a search query. Korean input
// arrives in both precomposed and decomposed form depending on the client.
func normalizeQuery(q string) string {
	return norm.NFC.String(strings.TrimSpace(q))
}
