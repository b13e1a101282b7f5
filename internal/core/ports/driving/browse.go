package driving

import (
	"context"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

// BrowseService is the query surface consumed by the presentation
// layer. It holds the shared browse state (language, query, facet
// selections) with single-writer update methods, and exposes derived
// values recomputed synchronously whenever an input changes.
type BrowseService interface {
	// Rebuild reloads content and recomputes every derived value.
	Rebuild(ctx context.Context) error

	// MarkStale flags the content as changed; the next read rebuilds.
	MarkStale()

	// SetLanguage changes the display language and rebuilds the search
	// index for it. Invalid languages are rejected with ErrInvalidInput.
	SetLanguage(ctx context.Context, lang domain.Language) error

	// Language returns the active display language.
	Language() domain.Language

	// SetQuery sets the free-text query.
	SetQuery(query string)

	// SetPrinciple, SetGuideline, SetConsideration, SetEducationalLevel,
	// SetCurricularArea, and SetType set the facet selections.
	// domain.SelectionAll clears a facet.
	SetPrinciple(id string)
	SetGuideline(id string)
	SetConsideration(id string)
	SetEducationalLevel(label string)
	SetCurricularArea(label string)
	SetType(typ string)

	// Filters returns the current query and facet selections.
	Filters() domain.Filters

	// Reset clears the query and every facet selection back to their
	// defaults in one atomic step.
	Reset()

	// Results returns the filtered, sorted result sequence for the
	// current state.
	Results(ctx context.Context) ([]domain.Result, error)

	// Items returns the full projected item sequence, unfiltered.
	Items(ctx context.Context) ([]domain.SearchableItem, error)

	// AvailableGuidelines returns the guideline options implied by the
	// current principle selection.
	AvailableGuidelines(ctx context.Context) ([]domain.Guideline, error)

	// AvailableConsiderations returns the consideration options implied
	// by the current principle and guideline selections.
	AvailableConsiderations(ctx context.Context) ([]domain.Consideration, error)

	// AvailableEducationalLevels returns the distinct level tags across
	// example and activity items, deduplicated by default-language label.
	AvailableEducationalLevels(ctx context.Context) ([]domain.MultilingualText, error)

	// AvailableCurricularAreas returns the distinct area tags across
	// example and activity items, deduplicated by default-language label.
	AvailableCurricularAreas(ctx context.Context) ([]domain.MultilingualText, error)
}
