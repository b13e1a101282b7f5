package driven

import (
	"context"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

// ActivityStore provides the standalone activities collection. In one
// content variant activities ship as a single SQLite file instead of a
// JSON document; the store abstracts over that.
type ActivityStore interface {
	// List returns all activities in insertion order.
	List(ctx context.Context) ([]domain.Activity, error)

	// Put stores or replaces an activity, keyed by its code.
	Put(ctx context.Context, activity domain.Activity) error

	// Close releases resources.
	Close() error
}
