package domain

import "strings"

// SelectionAll is the facet selection meaning "no constraint".
const SelectionAll = "all"

// Filters holds the free-text query and the six facet selections.
// Every facet defaults to SelectionAll. Facet predicates compose by
// logical AND and are independent: applying them in any order yields
// the same result set.
type Filters struct {
	// Query is the free-text search query. Empty or whitespace-only
	// means "no search filtering".
	Query string

	// Principle keeps items whose PrincipleID equals the selection.
	Principle string

	// Guideline keeps items whose GuidelineID equals the selection.
	Guideline string

	// Consideration keeps items whose own id or ConsiderationID equals
	// the selection, so the consideration and its child examples both
	// match.
	Consideration string

	// EducationalLevel keeps example/activity items whose level tag's
	// default-language label equals the selection.
	EducationalLevel string

	// CurricularArea keeps example/activity items whose area tag's
	// default-language label equals the selection.
	CurricularArea string

	// Type keeps items of this type. SelectionAll or an ItemType string.
	Type string
}

// NewFilters returns filters with every facet set to SelectionAll and
// an empty query.
func NewFilters() Filters {
	return Filters{
		Principle:        SelectionAll,
		Guideline:        SelectionAll,
		Consideration:    SelectionAll,
		EducationalLevel: SelectionAll,
		CurricularArea:   SelectionAll,
		Type:             SelectionAll,
	}
}

// HasQuery returns true if the query is non-empty after trimming.
func (f Filters) HasQuery() bool {
	return strings.TrimSpace(f.Query) != ""
}

// TrimmedQuery returns the query with surrounding whitespace removed.
func (f Filters) TrimmedQuery() string {
	return strings.TrimSpace(f.Query)
}

// Match reports whether the item passes every facet predicate. An
// unknown selection value (e.g. a stale guideline id) simply matches
// nothing; it never fails.
func (f Filters) Match(it SearchableItem) bool {
	if f.Principle != SelectionAll && it.PrincipleID != f.Principle {
		return false
	}
	if f.Guideline != SelectionAll && it.GuidelineID != f.Guideline {
		return false
	}
	if f.Consideration != SelectionAll &&
		it.ID != f.Consideration && it.ConsiderationID != f.Consideration {
		return false
	}
	if f.EducationalLevel != SelectionAll {
		if !isTagged(it.Type) || it.EducationalLevel.Label() != f.EducationalLevel {
			return false
		}
	}
	if f.CurricularArea != SelectionAll {
		if !isTagged(it.Type) || it.CurricularArea.Label() != f.CurricularArea {
			return false
		}
	}
	if f.Type != SelectionAll && string(it.Type) != f.Type {
		return false
	}
	return true
}

// isTagged returns true for the item types carrying level/area tags.
func isTagged(t ItemType) bool {
	return t == ItemTypeExample || t == ItemTypeActivity
}
