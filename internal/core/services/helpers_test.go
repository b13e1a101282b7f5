package services

import (
	"context"
	"sync/atomic"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
	"github.com/custodia-labs/udl-cli/internal/core/ports/driven"
)

// testContentSet builds a small bilingual corpus covering both
// networks, nested guidelines and considerations, examples with and
// without resolvable parents, and duplicated activities.
func testContentSet() *domain.ContentSet {
	return &domain.ContentSet{
		Version: "v1",
		Networks: []domain.Network{
			{
				ID: "affective",
				Principle: domain.Principle{
					ID: "engagement",
					Name: domain.MultilingualText{
						domain.LanguageSpanish: domain.Text("Compromiso"),
						domain.LanguageEnglish: domain.Text("Engagement"),
					},
					Description: domain.MultilingualText{
						domain.LanguageSpanish: domain.Text("El porqué del aprendizaje"),
					},
					Guidelines: []domain.Guideline{
						{
							ID:   "guideline-1",
							Code: "1",
							Name: domain.MultilingualText{
								domain.LanguageSpanish: domain.Text("Proporcionar opciones para captar el interés"),
								domain.LanguageEnglish: domain.Text("Provide options for recruiting interest"),
							},
							Considerations: []domain.Consideration{
								{
									ID:   "1-1",
									Code: "1.1",
									Description: domain.MultilingualText{
										domain.LanguageSpanish: domain.Text("Optimizar la elección individual"),
									},
								},
								{
									ID:   "1-2",
									Code: "1.2",
									Description: domain.MultilingualText{
										domain.LanguageSpanish: domain.Text("Optimizar la relevancia y el valor"),
									},
								},
							},
						},
					},
				},
			},
			{
				ID: "strategic",
				Principle: domain.Principle{
					ID: "action-expression",
					Name: domain.MultilingualText{
						domain.LanguageSpanish: domain.Text("Acción y expresión"),
						domain.LanguageEnglish: domain.Text("Action and expression"),
					},
					Guidelines: []domain.Guideline{
						{
							ID:   "guideline-3",
							Code: "3",
							Name: domain.MultilingualText{
								domain.LanguageSpanish: domain.Text("Proporcionar opciones para la expresión"),
							},
							Considerations: []domain.Consideration{
								{
									ID:   "3-2",
									Code: "3.2",
									Description: domain.MultilingualText{
										domain.LanguageSpanish: domain.Text("Usar múltiples herramientas"),
									},
								},
							},
						},
					},
				},
			},
		},
		Examples: []domain.Example{
			{
				ID:   "1-1-1",
				Code: "1.1.1",
				Activity: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Rincones de trabajo"),
				},
				EducationalLevel: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Primaria"),
					domain.LanguageEnglish: domain.Text("Primary"),
				},
				CurricularArea: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Matemáticas"),
				},
			},
			{
				ID:   "3-2-1",
				Code: "3.2.1",
				Activity: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Diario multimedia"),
				},
				EducationalLevel: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Secundaria"),
				},
				CurricularArea: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Lengua"),
				},
			},
			{
				ID:   "orphan",
				Code: "X",
				Activity: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Ejemplo sin padre"),
				},
			},
		},
		Activities: []domain.Activity{
			{
				ID:   "act-1",
				Code: "01-PRI-MAT",
				Title: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Geometría con bloques"),
				},
				GradeLevel: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Primaria"),
				},
				Subject: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Matemáticas"),
				},
				WebTools: []domain.WebTool{
					{Name: "GeoGebra", URL: "https://www.geogebra.org"},
				},
			},
			{
				// Same identity as act-1; the projector keeps the first.
				ID:   "act-1",
				Code: "01-PRI-MAT",
				Title: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Geometría con bloques (duplicado)"),
				},
			},
			{
				ID:   "act-2",
				Code: "02-SEC-LEN",
				Title: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Podcast literario"),
				},
				GradeLevel: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Secundaria"),
				},
				Subject: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Lengua"),
				},
			},
		},
	}
}

// memoryContentStore serves a fixed set and counts loads.
type memoryContentStore struct {
	set   *domain.ContentSet
	loads atomic.Int32
}

func (s *memoryContentStore) Load(_ context.Context) (*domain.ContentSet, error) {
	s.loads.Add(1)
	// Copy so callers appending activities never mutate the fixture.
	set := *s.set
	set.Activities = append([]domain.Activity(nil), s.set.Activities...)
	return &set, nil
}

// stubEngine returns canned hits and counts builds and closes.
type stubEngine struct {
	hits   []driven.Hit
	builds *atomic.Int32
	closes *atomic.Int32
}

func (e *stubEngine) Build(_ context.Context, _ []domain.SearchableItem, _ domain.Language) error {
	if e.builds != nil {
		e.builds.Add(1)
	}
	return nil
}

func (e *stubEngine) Search(_ context.Context, _ string) ([]driven.Hit, error) {
	return e.hits, nil
}

func (e *stubEngine) Close() error {
	if e.closes != nil {
		e.closes.Add(1)
	}
	return nil
}

// stubFactory yields engines sharing hit data and counters.
func stubFactory(hits []driven.Hit, builds, closes *atomic.Int32) driven.EngineFactory {
	return func() (driven.SearchEngine, error) {
		return &stubEngine{hits: hits, builds: builds, closes: closes}, nil
	}
}

// newTestBrowse wires a browse service over the fixture corpus.
func newTestBrowse(hits []driven.Hit) (*BrowseService, *memoryContentStore, *atomic.Int32) {
	store := &memoryContentStore{set: testContentSet()}
	var builds atomic.Int32
	svc, err := NewBrowseService(store, stubFactory(hits, &builds, nil))
	if err != nil {
		panic(err)
	}
	return svc, store, &builds
}
