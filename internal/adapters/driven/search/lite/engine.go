// Package lite implements the search engine port with a small
// in-process fuzzy matcher. It trades ranking quality for zero index
// build cost, useful on constrained machines or as a fallback.
package lite

import (
	"context"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
	"github.com/custodia-labs/udl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/udl-cli/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.SearchEngine = (*Engine)(nil)

// minMatchLength is the minimum query length that produces hits.
const minMatchLength = 2

// column holds one field's text across all items, aligned by item
// index, so a single fuzzy pass covers the whole corpus per field.
type column struct {
	weight float64
	texts  []string
}

// Engine matches the query against each weighted field column and
// keeps the best weighted score per item.
type Engine struct {
	mu      sync.RWMutex
	ids     []string
	columns []column
}

// New creates an unbuilt engine.
func New() *Engine {
	return &Engine{}
}

// Factory adapts New to the engine factory signature.
func Factory() (driven.SearchEngine, error) {
	return New(), nil
}

// Build captures the items' search fields resolved to lang.
func (e *Engine) Build(_ context.Context, items []domain.SearchableItem, lang domain.Language) error {
	ids := make([]string, len(items))
	byName := make(map[string]*column)

	for i, item := range items {
		ids[i] = item.ID
		for _, field := range item.SearchFields(lang) {
			col, ok := byName[field.Name]
			if !ok {
				col = &column{weight: field.Weight, texts: make([]string, len(items))}
				byName[field.Name] = col
			}
			col.texts[i] = field.Text
		}
	}

	columns := make([]column, 0, len(byName))
	for _, col := range byName {
		columns = append(columns, *col)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.ids = ids
	e.columns = columns

	logger.Debug("Lite index built: %d items, %d field columns", len(ids), len(columns))
	return nil
}

// Search runs the matcher over every field column and returns hits
// ordered best first, scores remapped so that lower is better.
func (e *Engine) Search(_ context.Context, q string) ([]driven.Hit, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.ids == nil {
		return nil, domain.ErrEngineUnavailable
	}
	if utf8.RuneCountInString(q) < minMatchLength {
		return nil, nil
	}

	// Best weighted match score per item index. The matcher's scores
	// grow with match quality; weak matches can go negative and are
	// floored at zero so they all share the worst hit score.
	best := make(map[int]float64)
	for _, col := range e.columns {
		for _, match := range fuzzy.Find(q, col.texts) {
			score := float64(match.Score) * col.weight
			if score < 0 {
				score = 0
			}
			if current, ok := best[match.Index]; !ok || score > current {
				best[match.Index] = score
			}
		}
	}

	// Walk items in corpus order so equal scores keep a stable order.
	hits := make([]driven.Hit, 0, len(best))
	for idx := range e.ids {
		score, ok := best[idx]
		if !ok {
			continue
		}
		hits = append(hits, driven.Hit{
			ItemID: e.ids[idx],
			Score:  1 / (1 + score),
		})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score < hits[j].Score })

	logger.Debug("Lite query %q: %d hits", q, len(hits))
	return hits, nil
}

// Close releases nothing; the engine holds only slices.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ids = nil
	e.columns = nil
	return nil
}
