// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

// ResultsUpdated carries a recomputed result sequence back to the model.
type ResultsUpdated struct {
	Results []domain.Result
	Err     error
}

// LanguageChanged signals the display language switched.
type LanguageChanged struct {
	Language domain.Language
	Err      error
}

// ContentChanged signals the underlying content documents changed on
// disk; the model marks state stale and refreshes.
type ContentChanged struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
