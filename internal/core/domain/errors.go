package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Lookup misses in the
// catalog are NOT errors: they are (zero, false) returns that callers
// must handle explicitly.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrContentUnavailable indicates the content store could not be loaded.
	ErrContentUnavailable = errors.New("content unavailable")

	// ErrEngineUnavailable indicates the search engine is not configured.
	// Fuzzy search is disabled; browsing and filtering still work.
	ErrEngineUnavailable = errors.New("search engine unavailable")

	// ErrContentStoreRequired indicates a content store was not provided.
	ErrContentStoreRequired = errors.New("content store required")

	// ErrEngineFactoryRequired indicates a search engine factory was not provided.
	ErrEngineFactoryRequired = errors.New("search engine factory required")
)
