package driving

import (
	"context"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

// CatalogService provides id-based lookups and parent resolution over
// the content tree. Every lookup returns an explicit (entity, false)
// on a miss; nothing here returns an error or panics for unknown ids.
type CatalogService interface {
	// NetworkByID, PrincipleByID, GuidelineByID, ConsiderationByID, and
	// ExampleByID look up entities directly.
	NetworkByID(ctx context.Context, id string) (*domain.Network, bool)
	PrincipleByID(ctx context.Context, id string) (*domain.Principle, bool)
	GuidelineByID(ctx context.Context, id string) (*domain.Guideline, bool)
	ConsiderationByID(ctx context.Context, id string) (*domain.Consideration, bool)
	ExampleByID(ctx context.Context, id string) (*domain.Example, bool)
	ActivityByCode(ctx context.Context, code string) (*domain.Activity, bool)

	// PrincipleForGuideline resolves a guideline's owning principle.
	PrincipleForGuideline(ctx context.Context, guidelineID string) (*domain.Principle, bool)

	// NetworkForGuideline resolves a guideline's owning network.
	NetworkForGuideline(ctx context.Context, guidelineID string) (*domain.Network, bool)

	// GuidelineForConsideration resolves a consideration's owning guideline.
	GuidelineForConsideration(ctx context.Context, considerationID string) (*domain.Guideline, bool)

	// PrincipleForConsideration resolves via the owning guideline.
	PrincipleForConsideration(ctx context.Context, considerationID string) (*domain.Principle, bool)

	// NetworkForConsideration resolves via the owning guideline.
	NetworkForConsideration(ctx context.Context, considerationID string) (*domain.Network, bool)

	// ConsiderationForExample derives the owning consideration from the
	// example id convention. Ids with fewer than two dash-separated
	// segments yield (nil, false).
	ConsiderationForExample(ctx context.Context, exampleID string) (*domain.Consideration, bool)
}
