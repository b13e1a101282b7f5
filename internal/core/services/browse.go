package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
	"github.com/custodia-labs/udl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/udl-cli/internal/core/ports/driving"
	"github.com/custodia-labs/udl-cli/internal/logger"
)

// Ensure BrowseService implements the interfaces.
var (
	_ driving.BrowseService  = (*BrowseService)(nil)
	_ driving.CatalogService = (*BrowseService)(nil)
)

// scoreEpsilon treats near-equal match scores as ties, broken by the
// fixed type precedence.
const scoreEpsilon = 0.001

// BrowseService holds the shared browse state and every derived value.
// The state is single-writer (the presentation layer) but rebuilds can
// arrive from a content watcher goroutine, so access is guarded.
//
// Rebuilding the search engine is the only expensive operation; it is
// memoized per (content version, language) pair, never per keystroke.
type BrowseService struct {
	mu sync.Mutex

	contentStore  driven.ContentStore
	activityStore driven.ActivityStore
	newEngine     driven.EngineFactory

	lang    domain.Language
	filters domain.Filters

	content *domain.ContentSet
	catalog *Catalog
	items   []domain.SearchableItem

	engine        driven.SearchEngine
	engineVersion string
	engineLang    domain.Language

	stale bool
}

// NewBrowseService creates a browse service. The activity store is
// optional and set separately.
func NewBrowseService(contentStore driven.ContentStore, newEngine driven.EngineFactory) (*BrowseService, error) {
	if contentStore == nil {
		return nil, domain.ErrContentStoreRequired
	}
	if newEngine == nil {
		return nil, domain.ErrEngineFactoryRequired
	}

	return &BrowseService{
		contentStore: contentStore,
		newEngine:    newEngine,
		lang:         domain.DefaultLanguage,
		filters:      domain.NewFilters(),
		stale:        true,
	}, nil
}

// SetActivityStore sets the optional activities source. Activities
// from the store are merged with any from the content documents.
func (s *BrowseService) SetActivityStore(store driven.ActivityStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activityStore = store
	s.stale = true
}

// Rebuild reloads content and recomputes the catalog, the item
// projection, and the search index.
func (s *BrowseService) Rebuild(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rebuildLocked(ctx)
}

// MarkStale flags the content as changed. The next read rebuilds
// before answering; callers on the watcher goroutine never block on
// content loading themselves.
func (s *BrowseService) MarkStale() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = true
}

// SetLanguage changes the display language and synchronously rebuilds
// the search index for it.
func (s *BrowseService) SetLanguage(ctx context.Context, lang domain.Language) error {
	if !lang.IsValid() {
		return fmt.Errorf("%w: unknown language %q", domain.ErrInvalidInput, lang)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lang == lang {
		return nil
	}
	s.lang = lang
	logger.Info("Language set to %s", lang)

	if err := s.ensureFreshLocked(ctx); err != nil {
		return err
	}
	return s.ensureEngineLocked(ctx)
}

// Language returns the active display language.
func (s *BrowseService) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetQuery sets the free-text query.
func (s *BrowseService) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Query = query
}

// SetPrinciple sets the principle facet selection.
func (s *BrowseService) SetPrinciple(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Principle = id
}

// SetGuideline sets the guideline facet selection.
func (s *BrowseService) SetGuideline(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Guideline = id
}

// SetConsideration sets the consideration facet selection.
func (s *BrowseService) SetConsideration(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Consideration = id
}

// SetEducationalLevel sets the educational level facet selection.
func (s *BrowseService) SetEducationalLevel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.EducationalLevel = label
}

// SetCurricularArea sets the curricular area facet selection.
func (s *BrowseService) SetCurricularArea(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.CurricularArea = label
}

// SetType sets the item type facet selection.
func (s *BrowseService) SetType(typ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Type = typ
}

// Filters returns the current query and facet selections.
func (s *BrowseService) Filters() domain.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Reset clears the query and every facet selection in one atomic step.
func (s *BrowseService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = domain.NewFilters()
}

// Items returns the full projected item sequence, unfiltered.
func (s *BrowseService) Items(ctx context.Context) ([]domain.SearchableItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureFreshLocked(ctx); err != nil {
		return nil, err
	}
	return s.items, nil
}

// Results returns the filtered, sorted result sequence for the current
// state. With an active query the primary sort key is the match score
// ascending, ties within scoreEpsilon broken by type precedence; with
// no query the sequence is stably sorted by type precedence alone.
func (s *BrowseService) Results(ctx context.Context) ([]domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFreshLocked(ctx); err != nil {
		return nil, err
	}

	logger.Section("Browse Results")
	filters := s.filters

	if !filters.HasQuery() {
		// Empty query bypasses the engine entirely.
		results := make([]domain.Result, 0, len(s.items))
		for _, item := range s.items {
			if filters.Match(item) {
				results = append(results, domain.Result{Item: item})
			}
		}
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Item.Type.Precedence() < results[j].Item.Type.Precedence()
		})
		logger.Debug("No query; %d of %d items after filters", len(results), len(s.items))
		return results, nil
	}

	if err := s.ensureEngineLocked(ctx); err != nil {
		return nil, err
	}

	query := filters.TrimmedQuery()
	logger.Debug("Query: %q (lang=%s)", query, s.lang)

	hits, err := s.engine.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	logger.Debug("Engine hits: %d", len(hits))

	byID := make(map[string]domain.SearchableItem, len(s.items))
	for _, item := range s.items {
		byID[item.ID] = item
	}

	results := make([]domain.Result, 0, len(hits))
	for _, hit := range hits {
		item, ok := byID[hit.ItemID]
		if !ok {
			// Hit from a previous corpus revision; skip it.
			continue
		}
		if !filters.Match(item) {
			continue
		}
		results = append(results, domain.Result{Item: item, Score: hit.Score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if math.Abs(results[i].Score-results[j].Score) < scoreEpsilon {
			return results[i].Item.Type.Precedence() < results[j].Item.Type.Precedence()
		}
		return results[i].Score < results[j].Score
	})

	logger.Info("Final results: %d", len(results))
	return results, nil
}

// AvailableGuidelines returns all guidelines when no principle is
// selected, else the selected principle's guidelines in document
// order. An unknown selection yields an empty sequence.
func (s *BrowseService) AvailableGuidelines(ctx context.Context) ([]domain.Guideline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureFreshLocked(ctx); err != nil {
		return nil, err
	}
	return s.guidelinesForSelectionLocked(s.filters.Principle), nil
}

// AvailableConsiderations returns the considerations reachable through
// the guideline set implied by the principle and guideline selections.
func (s *BrowseService) AvailableConsiderations(ctx context.Context) ([]domain.Consideration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureFreshLocked(ctx); err != nil {
		return nil, err
	}

	guidelines := s.guidelinesForSelectionLocked(s.filters.Principle)
	if sel := s.filters.Guideline; sel != domain.SelectionAll {
		narrowed := guidelines[:0:0]
		for _, g := range guidelines {
			if g.ID == sel {
				narrowed = append(narrowed, g)
			}
		}
		guidelines = narrowed
	}

	var considerations []domain.Consideration
	for _, g := range guidelines {
		considerations = append(considerations, g.Considerations...)
	}
	return considerations, nil
}

// AvailableEducationalLevels returns the distinct level tags observed
// across example and activity items.
func (s *BrowseService) AvailableEducationalLevels(ctx context.Context) ([]domain.MultilingualText, error) {
	return s.distinctTags(ctx, func(item domain.SearchableItem) domain.MultilingualText {
		return item.EducationalLevel
	})
}

// AvailableCurricularAreas returns the distinct area tags observed
// across example and activity items.
func (s *BrowseService) AvailableCurricularAreas(ctx context.Context) ([]domain.MultilingualText, error) {
	return s.distinctTags(ctx, func(item domain.SearchableItem) domain.MultilingualText {
		return item.CurricularArea
	})
}

// distinctTags deduplicates tag values by their default-language
// label; the first occurrence wins and the full multilingual tag is
// returned.
func (s *BrowseService) distinctTags(ctx context.Context, tag func(domain.SearchableItem) domain.MultilingualText) ([]domain.MultilingualText, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureFreshLocked(ctx); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tags []domain.MultilingualText
	for _, item := range s.items {
		if item.Type != domain.ItemTypeExample && item.Type != domain.ItemTypeActivity {
			continue
		}
		value := tag(item)
		if value.IsZero() {
			continue
		}
		label := value.Label()
		if seen[label] {
			continue
		}
		seen[label] = true
		tags = append(tags, value)
	}
	return tags, nil
}

// guidelinesForSelectionLocked resolves the guideline set implied by a
// principle selection.
func (s *BrowseService) guidelinesForSelectionLocked(selection string) []domain.Guideline {
	if selection == domain.SelectionAll {
		var all []domain.Guideline
		for i := range s.content.Networks {
			all = append(all, s.content.Networks[i].Principle.Guidelines...)
		}
		return all
	}

	for i := range s.content.Networks {
		principle := &s.content.Networks[i].Principle
		if principle.ID == selection {
			return principle.Guidelines
		}
	}
	return []domain.Guideline{}
}

// rebuildLocked reloads content and recomputes every derived value.
func (s *BrowseService) rebuildLocked(ctx context.Context) error {
	logger.Section("Content Rebuild")

	set, err := s.contentStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}

	if s.activityStore != nil {
		activities, err := s.activityStore.List(ctx)
		if err != nil {
			return fmt.Errorf("listing activities: %w", err)
		}
		set.Activities = append(set.Activities, activities...)
		logger.Debug("Merged %d activities from store", len(activities))
	}

	s.content = set
	s.catalog = NewCatalog(set)
	s.items = ProjectItems(set, s.catalog)
	s.stale = false

	logger.Info("Content loaded: version=%s, %d items", set.Version, len(s.items))

	return s.ensureEngineLocked(ctx)
}

// ensureFreshLocked rebuilds when content was never loaded or has been
// marked stale.
func (s *BrowseService) ensureFreshLocked(ctx context.Context) error {
	if s.content == nil || s.stale {
		return s.rebuildLocked(ctx)
	}
	return nil
}

// ensureEngineLocked rebuilds the search index when the memo key
// (content version, language) no longer matches.
func (s *BrowseService) ensureEngineLocked(ctx context.Context) error {
	if s.engine != nil && s.engineVersion == s.content.Version && s.engineLang == s.lang {
		return nil
	}

	if s.engine != nil {
		if err := s.engine.Close(); err != nil {
			logger.Warn("Closing previous search index: %v", err)
		}
		s.engine = nil
	}

	engine, err := s.newEngine()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEngineUnavailable, err)
	}
	if err := engine.Build(ctx, s.items, s.lang); err != nil {
		return fmt.Errorf("building search index: %w", err)
	}

	s.engine = engine
	s.engineVersion = s.content.Version
	s.engineLang = s.lang
	logger.Debug("Search index built: %d items, lang=%s", len(s.items), s.lang)
	return nil
}

// Close releases the search engine.
func (s *BrowseService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return nil
	}
	err := s.engine.Close()
	s.engine = nil
	return err
}

// Catalog lookups. Each delegates to the current catalog, rebuilding
// first when the content is stale; a failed rebuild reads as absence.

func (s *BrowseService) snapshotCatalog(ctx context.Context) (*Catalog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureFreshLocked(ctx); err != nil {
		logger.Warn("Catalog unavailable: %v", err)
		return nil, false
	}
	return s.catalog, true
}

// NetworkByID looks up a network.
func (s *BrowseService) NetworkByID(ctx context.Context, id string) (*domain.Network, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.NetworkByID(id)
}

// PrincipleByID looks up a principle.
func (s *BrowseService) PrincipleByID(ctx context.Context, id string) (*domain.Principle, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.PrincipleByID(id)
}

// GuidelineByID looks up a guideline.
func (s *BrowseService) GuidelineByID(ctx context.Context, id string) (*domain.Guideline, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.GuidelineByID(id)
}

// ConsiderationByID looks up a consideration.
func (s *BrowseService) ConsiderationByID(ctx context.Context, id string) (*domain.Consideration, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.ConsiderationByID(id)
}

// ExampleByID looks up an example.
func (s *BrowseService) ExampleByID(ctx context.Context, id string) (*domain.Example, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.ExampleByID(id)
}

// ActivityByCode looks up an activity.
func (s *BrowseService) ActivityByCode(ctx context.Context, code string) (*domain.Activity, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.ActivityByCode(code)
}

// PrincipleForGuideline resolves a guideline's owning principle.
func (s *BrowseService) PrincipleForGuideline(ctx context.Context, guidelineID string) (*domain.Principle, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.PrincipleForGuideline(guidelineID)
}

// NetworkForGuideline resolves a guideline's owning network.
func (s *BrowseService) NetworkForGuideline(ctx context.Context, guidelineID string) (*domain.Network, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.NetworkForGuideline(guidelineID)
}

// GuidelineForConsideration resolves a consideration's owning guideline.
func (s *BrowseService) GuidelineForConsideration(ctx context.Context, considerationID string) (*domain.Guideline, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.GuidelineForConsideration(considerationID)
}

// PrincipleForConsideration resolves via the owning guideline.
func (s *BrowseService) PrincipleForConsideration(ctx context.Context, considerationID string) (*domain.Principle, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.PrincipleForConsideration(considerationID)
}

// NetworkForConsideration resolves via the owning guideline.
func (s *BrowseService) NetworkForConsideration(ctx context.Context, considerationID string) (*domain.Network, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.NetworkForConsideration(considerationID)
}

// ConsiderationForExample derives the owning consideration from the
// example id convention.
func (s *BrowseService) ConsiderationForExample(ctx context.Context, exampleID string) (*domain.Consideration, bool) {
	catalog, ok := s.snapshotCatalog(ctx)
	if !ok {
		return nil, false
	}
	return catalog.ConsiderationForExample(exampleID)
}
