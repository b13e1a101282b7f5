package driven

import (
	"context"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

// ContentStore loads the static content corpus. The corpus is
// immutable once loaded; a store returns a new ContentSet (with a new
// Version) when the underlying documents change.
type ContentStore interface {
	// Load reads the full content corpus. The document shape is fixed;
	// the store tolerates exactly that shape and no other.
	Load(ctx context.Context) (*domain.ContentSet, error)
}

// ContentWatcher reports changes to the underlying content documents
// so derived state can be rebuilt. Implementations deliver the
// callback from their own goroutine.
type ContentWatcher interface {
	// Watch invokes onChange whenever the content changes, until Close.
	Watch(onChange func()) error

	// Close stops watching and releases resources.
	Close() error
}
