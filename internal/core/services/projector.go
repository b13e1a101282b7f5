package services

import (
	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

// ProjectItems flattens the content set into the ordered searchable
// item sequence: principles first, then each principle's guidelines
// interleaved with their considerations (depth-first, document order),
// then all examples, then all deduplicated activities.
//
// It is a pure function of the set: projecting the same content twice
// yields element-wise identical sequences. Items carry denormalized
// parent ids and names so downstream consumers never re-traverse the
// hierarchy.
func ProjectItems(set *domain.ContentSet, catalog *Catalog) []domain.SearchableItem {
	var items []domain.SearchableItem

	for i := range set.Networks {
		principle := &set.Networks[i].Principle

		items = append(items, domain.SearchableItem{
			ID:          principle.ID,
			Type:        domain.ItemTypePrinciple,
			PrincipleID: principle.ID,
			Principle:   principle,
		})

		for j := range principle.Guidelines {
			guideline := &principle.Guidelines[j]

			items = append(items, domain.SearchableItem{
				ID:            guideline.ID,
				Code:          guideline.Code,
				Type:          domain.ItemTypeGuideline,
				PrincipleID:   principle.ID,
				GuidelineID:   guideline.ID,
				PrincipleName: principle.Name,
				Guideline:     guideline,
			})

			for k := range guideline.Considerations {
				consideration := &guideline.Considerations[k]

				items = append(items, domain.SearchableItem{
					ID:            consideration.ID,
					Code:          consideration.Code,
					Type:          domain.ItemTypeConsideration,
					PrincipleID:   principle.ID,
					GuidelineID:   guideline.ID,
					PrincipleName: principle.Name,
					GuidelineName: guideline.Name,
					Consideration: consideration,
				})
			}
		}
	}

	for i := range set.Examples {
		example := &set.Examples[i]
		items = append(items, projectExample(example, catalog))
	}

	// Activities are appended last, deduplicated by identity: multiple
	// indexing passes may introduce the same activity twice.
	seen := make(map[string]bool)
	for i := range set.Activities {
		activity := &set.Activities[i]
		if seen[activity.ID] {
			continue
		}
		seen[activity.ID] = true

		items = append(items, domain.SearchableItem{
			// The code is the item id for URL stability.
			ID:               activity.Code,
			Code:             activity.Code,
			Type:             domain.ItemTypeActivity,
			EducationalLevel: activity.GradeLevel,
			CurricularArea:   activity.Subject,
			Activity:         activity,
		})
	}

	return items
}

// projectExample resolves the example's parent chain through the
// catalog. A missing parent at any step leaves the remaining ids
// empty; absence propagates as undefined facet values, never an error.
func projectExample(example *domain.Example, catalog *Catalog) domain.SearchableItem {
	item := domain.SearchableItem{
		ID:               example.ID,
		Code:             example.Code,
		Type:             domain.ItemTypeExample,
		EducationalLevel: example.EducationalLevel,
		CurricularArea:   example.CurricularArea,
		Example:          example,
	}

	consideration, ok := catalog.ConsiderationForExample(example.ID)
	if !ok {
		return item
	}
	item.ConsiderationID = consideration.ID

	guideline, ok := catalog.GuidelineForConsideration(consideration.ID)
	if !ok {
		return item
	}
	item.GuidelineID = guideline.ID

	principle, ok := catalog.PrincipleForGuideline(guideline.ID)
	if !ok {
		return item
	}
	item.PrincipleID = principle.ID

	return item
}
