package cli

import (
	"github.com/custodia-labs/udl-cli/internal/adapters/driven/content/memory"
	"github.com/custodia-labs/udl-cli/internal/adapters/driven/search/lite"
	"github.com/custodia-labs/udl-cli/internal/core/domain"
	"github.com/custodia-labs/udl-cli/internal/core/services"
)

// testContentSet is a compact corpus: two principles, three guidelines,
// two examples, and one activity.
func testContentSet() *domain.ContentSet {
	return &domain.ContentSet{
		Version: "cli-test-v1",
		Networks: []domain.Network{
			{
				ID: "affective",
				Principle: domain.Principle{
					ID: "engagement",
					Name: domain.MultilingualText{
						domain.LanguageSpanish: domain.Text("Proporcionar múltiples formas de implicación"),
						domain.LanguageEnglish: domain.Text("Provide multiple means of engagement"),
					},
					Description: domain.MultilingualText{
						domain.LanguageSpanish: domain.Text("El porqué del aprendizaje"),
					},
					Guidelines: []domain.Guideline{
						{
							ID:   "guideline-1",
							Code: "1",
							Name: domain.MultilingualText{
								domain.LanguageSpanish: domain.Text("Captar el interés"),
								domain.LanguageEnglish: domain.Text("Recruiting interest"),
							},
							Considerations: []domain.Consideration{
								{
									ID:   "1-1",
									Code: "1.1",
									Description: domain.MultilingualText{
										domain.LanguageSpanish: domain.Text("Optimizar la autonomía"),
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
						domain.LanguageSpanish: domain.Text("Proporcionar múltiples formas de acción y expresión"),
					},
					Guidelines: []domain.Guideline{
						{
							ID:   "guideline-4",
							Code: "4",
							Name: domain.MultilingualText{
								domain.LanguageSpanish: domain.Text("Interacción física"),
							},
							Considerations: []domain.Consideration{
								{
									ID:   "4-1",
									Code: "4.1",
									Description: domain.MultilingualText{
										domain.LanguageSpanish: domain.Text("Variar los métodos de respuesta"),
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
					domain.LanguageSpanish: domain.Text("Elección de temas para el podcast"),
				},
				Description: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("El alumnado elige el tema"),
				},
				EducationalLevel: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Primaria"),
				},
				CurricularArea: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Lengua"),
				},
			},
			{
				ID:   "4-1-1",
				Code: "4.1.1",
				Activity: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Maquetas accesibles"),
				},
				EducationalLevel: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Secundaria"),
				},
				CurricularArea: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Tecnología"),
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
			},
		},
	}
}

// setupTestServices wires the package-level services over an in-memory
// corpus and returns a cleanup restoring the previous wiring.
func setupTestServices() func() {
	prevConfig := configStore
	prevBrowse := browseService
	prevCatalog := catalogService
	prevActivity := activityStore

	svc, err := services.NewBrowseService(memory.NewStore(testContentSet()), lite.Factory)
	if err != nil {
		panic(err)
	}

	browseService = svc
	catalogService = svc
	configStore = nil
	activityStore = nil

	return func() {
		svc.Close()
		configStore = prevConfig
		browseService = prevBrowse
		catalogService = prevCatalog
		activityStore = prevActivity
	}
}
