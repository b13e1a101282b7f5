// Package memory provides an in-memory content store for wiring tests
// and programmatic corpora.
package memory

import (
	"context"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
	"github.com/custodia-labs/udl-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ContentStore = (*Store)(nil)

// Store serves a fixed content set.
type Store struct {
	set *domain.ContentSet
}

// NewStore creates a store over a prebuilt set.
func NewStore(set *domain.ContentSet) *Store {
	return &Store{set: set}
}

// Load returns a shallow copy of the set so callers can append to its
// top-level slices without mutating the original.
func (s *Store) Load(_ context.Context) (*domain.ContentSet, error) {
	set := *s.set
	set.Activities = append([]domain.Activity(nil), s.set.Activities...)
	return &set, nil
}
