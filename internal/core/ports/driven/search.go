package driven

import (
	"context"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

// SearchEngine provides weighted multi-field fuzzy matching over the
// searchable items. Engines are cheap to query and expensive to build:
// the browse service memoizes one engine per (content version,
// language) pair and rebuilds only when either changes.
type SearchEngine interface {
	// Build indexes the items' weighted search fields resolved to lang.
	// It replaces any previously built index.
	Build(ctx context.Context, items []domain.SearchableItem, lang domain.Language) error

	// Search returns scored matches for a query, best first. Scores
	// are in (0, 1], lower = better. Queries shorter than the minimum
	// match length (2 characters) return no hits. The caller handles
	// empty queries; engines may assume a non-blank query.
	Search(ctx context.Context, query string) ([]Hit, error)

	// Close releases resources.
	Close() error
}

// Hit is one scored match from the engine.
type Hit struct {
	// ItemID is the matched item's id.
	ItemID string

	// Score is the match score, lower = better.
	Score float64
}

// EngineFactory creates a fresh, unbuilt search engine. The browse
// service calls it once per (content version, language) pair.
type EngineFactory func() (SearchEngine, error)
