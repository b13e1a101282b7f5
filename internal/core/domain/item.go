package domain

// ItemType discriminates the five kinds of searchable item.
type ItemType string

// Available item types.
const (
	ItemTypePrinciple     ItemType = "principle"
	ItemTypeGuideline     ItemType = "guideline"
	ItemTypeConsideration ItemType = "consideration"
	ItemTypeExample       ItemType = "example"
	ItemTypeActivity      ItemType = "activity"
)

// unknownPrecedence sorts unrecognised types last.
const unknownPrecedence = 99

// IsValid returns true if the item type is recognised.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypePrinciple, ItemTypeGuideline, ItemTypeConsideration,
		ItemTypeExample, ItemTypeActivity:
		return true
	default:
		return false
	}
}

// Precedence returns the fixed sort precedence: principle < guideline
// < consideration < activity < example. It is the secondary sort key
// when a query is active and the primary key otherwise.
func (t ItemType) Precedence() int {
	switch t {
	case ItemTypePrinciple:
		return 1
	case ItemTypeGuideline:
		return 2
	case ItemTypeConsideration:
		return 3
	case ItemTypeActivity:
		return 4
	case ItemTypeExample:
		return 5
	default:
		return unknownPrecedence
	}
}

// String returns the string representation.
func (t ItemType) String() string {
	return string(t)
}

// AllItemTypes returns all item types in precedence order.
func AllItemTypes() []ItemType {
	return []ItemType{
		ItemTypePrinciple,
		ItemTypeGuideline,
		ItemTypeConsideration,
		ItemTypeActivity,
		ItemTypeExample,
	}
}

// SearchableItem is the flat, uniformly shaped projection of one
// content entity, used for indexing, filtering, and display. It is a
// tagged union: Type names the variant and exactly one of Principle,
// Guideline, Consideration, Example, Activity is non-nil. Items carry
// enough denormalized context that neither the search engine nor the
// filter pipeline ever re-traverses the hierarchy.
type SearchableItem struct {
	// ID is the item's identifier. Activities use their code here for
	// URL stability.
	ID string

	// Code is the display code, "" for principles.
	Code string

	// Type discriminates the variant.
	Type ItemType

	// PrincipleID is the owning principle's id, "" when not derivable.
	PrincipleID string

	// GuidelineID is the owning guideline's id, "" when not derivable.
	GuidelineID string

	// ConsiderationID is the owning consideration's id, "" when not
	// derivable (set for examples only).
	ConsiderationID string

	// PrincipleName is the owning principle's name, nil for principles
	// and parentless items.
	PrincipleName MultilingualText

	// GuidelineName is the owning guideline's name, nil when absent.
	GuidelineName MultilingualText

	// EducationalLevel is the level tag (examples and activities only).
	EducationalLevel MultilingualText

	// CurricularArea is the area tag (examples and activities only).
	CurricularArea MultilingualText

	// Exactly one of the following is non-nil, per Type.
	Principle     *Principle
	Guideline     *Guideline
	Consideration *Consideration
	Example       *Example
	Activity      *Activity
}

// DisplayName returns the item's primary display text in lang.
func (it SearchableItem) DisplayName(lang Language) string {
	switch it.Type {
	case ItemTypePrinciple:
		if it.Principle != nil {
			return it.Principle.Name.T(lang)
		}
	case ItemTypeGuideline:
		if it.Guideline != nil {
			return it.Guideline.Name.T(lang)
		}
	case ItemTypeConsideration:
		if it.Consideration != nil {
			return it.Consideration.Description.T(lang)
		}
	case ItemTypeExample:
		if it.Example != nil {
			return it.Example.Activity.T(lang)
		}
	case ItemTypeActivity:
		if it.Activity != nil {
			return it.Activity.Title.T(lang)
		}
	}
	return it.ID
}

// SearchField is one weighted text field of an item, resolved to a
// single language. The search engines index these; they never reach
// into the item themselves.
type SearchField struct {
	// Name identifies the field in the index.
	Name string

	// Weight is the field's relative importance. Higher weighs more.
	Weight float64

	// Text is the language-resolved field text, "" when absent.
	Text string
}

// Field weights. Exact identifying fields weigh highest, the primary
// display name next, secondary descriptive text lower.
const (
	weightCode          = 5.0
	weightID            = 4.0
	weightTitle         = 3.0
	weightName          = 2.0
	weightActivity      = 2.0
	weightDescription   = 1.5
	weightDesignOptions = 1.5
	weightLevel         = 1.0
	weightArea          = 1.0
	weightWebTools      = 1.0
	weightParentName    = 0.8
)

// SearchFields returns the item's weighted match targets for lang.
// Empty fields are omitted.
func (it SearchableItem) SearchFields(lang Language) []SearchField {
	fields := make([]SearchField, 0, 12)
	add := func(name string, weight float64, text string) {
		if text == "" {
			return
		}
		fields = append(fields, SearchField{Name: name, Weight: weight, Text: text})
	}

	add("code", weightCode, it.Code)
	add("id", weightID, it.ID)

	switch it.Type {
	case ItemTypePrinciple:
		if it.Principle != nil {
			add("name", weightName, it.Principle.Name.T(lang))
			add("description", weightDescription, it.Principle.Description.T(lang))
		}
	case ItemTypeGuideline:
		if it.Guideline != nil {
			add("name", weightName, it.Guideline.Name.T(lang))
		}
	case ItemTypeConsideration:
		if it.Consideration != nil {
			add("description", weightDescription, it.Consideration.Description.T(lang))
		}
	case ItemTypeExample:
		if it.Example != nil {
			add("activity", weightActivity, it.Example.Activity.T(lang))
			add("description", weightDescription, it.Example.Description.T(lang))
			add("designOptions", weightDesignOptions, it.Example.DesignOptions.T(lang))
		}
	case ItemTypeActivity:
		if it.Activity != nil {
			add("title", weightTitle, it.Activity.Title.T(lang))
			add("description", weightDescription, it.Activity.Description.T(lang))
			add("webTools", weightWebTools, joinToolNames(it.Activity.WebTools))
		}
	}

	add("educationalLevel", weightLevel, it.EducationalLevel.T(lang))
	add("curricularArea", weightArea, it.CurricularArea.T(lang))
	add("principleName", weightParentName, it.PrincipleName.T(lang))
	add("guidelineName", weightParentName, it.GuidelineName.T(lang))

	return fields
}

func joinToolNames(tools []WebTool) string {
	if len(tools) == 0 {
		return ""
	}
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	out := names[0]
	for _, n := range names[1:] {
		out += " " + n
	}
	return out
}

// Result pairs an item with its match score. Lower score = better
// match; items returned without an active query carry score 0.
type Result struct {
	// Item is the matched item.
	Item SearchableItem

	// Score is the match score in (0, 1], 0 when no query was active.
	Score float64
}
