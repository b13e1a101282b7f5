package domain

// Network is a top-level grouping wrapping exactly one Principle.
// The name is a holdover from the framework's neural-network
// terminology; treat it as a 1:1 wrapper.
type Network struct {
	// ID is the unique identifier (e.g. "strategic").
	ID string `json:"id"`

	// Principle is the single principle this network wraps.
	Principle Principle `json:"principle"`
}

// Principle is a top-level pedagogical category containing ordered
// Guidelines.
type Principle struct {
	// ID is the unique identifier (e.g. "engagement").
	ID string `json:"id"`

	// Name is the localised display name.
	Name MultilingualText `json:"name"`

	// Description is the localised long description.
	Description MultilingualText `json:"description"`

	// Guidelines are the principle's guidelines in document order.
	Guidelines []Guideline `json:"guidelines"`
}

// Guideline is a numbered sub-category of a Principle, containing
// ordered Considerations.
type Guideline struct {
	// ID is the unique identifier (e.g. "guideline-1").
	ID string `json:"id"`

	// Code is the short numeric code (e.g. "1").
	Code string `json:"code"`

	// Name is the localised display name.
	Name MultilingualText `json:"name"`

	// Considerations are the guideline's considerations in document order.
	Considerations []Consideration `json:"considerations"`
}

// Consideration is a specific actionable recommendation under a
// Guideline. Its id follows the convention "{guidelineCode}-{ordinal}".
type Consideration struct {
	// ID is the unique identifier (e.g. "1-1").
	ID string `json:"id"`

	// Code is the dotted display code (e.g. "1.1").
	Code string `json:"code"`

	// Description is the localised description.
	Description MultilingualText `json:"description"`
}

// Example is a concrete worked instance illustrating a Consideration.
// The owning consideration is not stored: it is derived from the
// example id's first two dash-separated segments (see ParseExampleID).
type Example struct {
	// ID is the unique identifier (e.g. "1-1-1").
	ID string `json:"id"`

	// Code is the display code.
	Code string `json:"code"`

	// Activity is the localised activity text.
	Activity MultilingualText `json:"activity"`

	// Description is the localised description.
	Description MultilingualText `json:"description"`

	// DesignOptions describes the universal design options applied.
	DesignOptions MultilingualText `json:"designOptions"`

	// EducationalLevel tags the school level (e.g. primary).
	EducationalLevel MultilingualText `json:"educationalLevel"`

	// CurricularArea tags the subject area.
	CurricularArea MultilingualText `json:"curricularArea"`
}

// WebTool is a web tool referenced by an Activity.
type WebTool struct {
	// Name is the tool's name.
	Name string `json:"name"`

	// URL is the tool's address.
	URL string `json:"url"`
}

// Activity is a standalone teaching activity. Activities are
// top-level: they do not belong to a Consideration, Guideline, or
// Principle. The code is the stable identifier used in place of the
// internal id for URL stability.
type Activity struct {
	// ID is the internal identifier. Deduplication is by this id.
	ID string `json:"id"`

	// Code is the stable public identifier (e.g. "01-PRI-MAT").
	Code string `json:"code"`

	// Title is the localised title.
	Title MultilingualText `json:"title"`

	// Description is the localised description.
	Description MultilingualText `json:"description"`

	// GradeLevel tags the school level.
	GradeLevel MultilingualText `json:"gradeLevel"`

	// Subject tags the curricular area.
	Subject MultilingualText `json:"subject"`

	// WebTools lists referenced web tools, if any.
	WebTools []WebTool `json:"webTools,omitempty"`
}

// ContentSet is the fully loaded content corpus. It is immutable once
// loaded; any change to the underlying documents produces a new
// ContentSet with a new Version.
type ContentSet struct {
	// Networks is the content tree in document order.
	Networks []Network

	// Examples holds all examples across the per-guideline documents,
	// in document order.
	Examples []Example

	// Activities holds all activities, possibly with duplicates; the
	// projector deduplicates by activity id.
	Activities []Activity

	// Version identifies this corpus revision. Derived values (catalog,
	// items, search index) are memoized per (Version, language).
	Version string
}
