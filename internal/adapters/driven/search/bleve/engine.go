// Package bleve implements the search engine port on top of the Bleve
// full-text library with an in-memory index.
package bleve

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
	"github.com/custodia-labs/udl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/udl-cli/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.SearchEngine = (*Engine)(nil)

// minMatchLength is the minimum query length that produces hits.
const minMatchLength = 2

// Engine indexes the items' weighted fields and answers fuzzy queries
// against every field at once, boosted by the field weight.
type Engine struct {
	mu      sync.RWMutex
	index   bleve.Index
	weights map[string]float64
	count   int
}

// New creates an unbuilt engine.
func New() *Engine {
	return &Engine{}
}

// Factory adapts New to the engine factory signature.
func Factory() (driven.SearchEngine, error) {
	return New(), nil
}

// Build creates a fresh in-memory index over the items' search fields
// resolved to lang, replacing any previous index.
func (e *Engine) Build(_ context.Context, items []domain.SearchableItem, lang domain.Language) error {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return fmt.Errorf("creating index: %w", err)
	}

	weights := make(map[string]float64)
	batch := index.NewBatch()
	for _, item := range items {
		doc := make(map[string]any)
		for _, field := range item.SearchFields(lang) {
			doc[field.Name] = field.Text
			weights[field.Name] = field.Weight
		}
		if err := batch.Index(item.ID, doc); err != nil {
			_ = index.Close()
			return fmt.Errorf("indexing %s: %w", item.ID, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		_ = index.Close()
		return fmt.Errorf("committing batch: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index != nil {
		_ = e.index.Close()
	}
	e.index = index
	e.weights = weights
	e.count = len(items)

	logger.Debug("Bleve index built: %d documents, %d fields", len(items), len(weights))
	return nil
}

// Search matches the query against every indexed field, each boosted
// by its weight, and returns hits ordered best first. Scores are
// remapped so that lower is better, in (0, 1].
func (e *Engine) Search(ctx context.Context, q string) ([]driven.Hit, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.index == nil {
		return nil, domain.ErrEngineUnavailable
	}
	if utf8.RuneCountInString(q) < minMatchLength || e.count == 0 {
		return nil, nil
	}

	queries := make([]query.Query, 0, len(e.weights))
	fuzziness := fuzzinessFor(q)
	for name, weight := range e.weights {
		mq := bleve.NewMatchQuery(q)
		mq.SetField(name)
		mq.SetBoost(weight)
		mq.SetFuzziness(fuzziness)
		queries = append(queries, mq)
	}

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(queries...), e.count, 0, false)
	result, err := e.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("bleve search: %w", err)
	}

	hits := make([]driven.Hit, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hits = append(hits, driven.Hit{
			ItemID: hit.ID,
			Score:  1 / (1 + hit.Score),
		})
	}
	logger.Debug("Bleve query %q (fuzziness %d): %d hits", q, fuzziness, len(hits))
	return hits, nil
}

// fuzzinessFor scales the allowed edit distance with query length,
// capped at bleve's practical maximum of 2.
func fuzzinessFor(q string) int {
	f := utf8.RuneCountInString(q) * 2 / 5
	if f > 2 {
		return 2
	}
	return f
}

// Close releases the index.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index == nil {
		return nil
	}
	err := e.index.Close()
	e.index = nil
	return err
}
