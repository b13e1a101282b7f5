package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Language is an ISO 639-1 language tag for localised content.
type Language string

// Supported languages.
const (
	// LanguageSpanish is the language of the reference dataset.
	LanguageSpanish Language = "es"

	// LanguageEnglish is the secondary language.
	LanguageEnglish Language = "en"
)

// DefaultLanguage is the language whose labels identify facet values.
// Educational-level and curricular-area filters compare against the
// default-language label, not the full multilingual object.
const DefaultLanguage = LanguageSpanish

// FallbackLanguage is used when a field has no text for the requested
// language.
const FallbackLanguage = LanguageEnglish

// IsValid returns true if the language is recognised.
func (l Language) IsValid() bool {
	switch l {
	case LanguageSpanish, LanguageEnglish:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}

// AllLanguages returns the languages content may carry.
func AllLanguages() []Language {
	return []Language{LanguageSpanish, LanguageEnglish}
}

// TextValue holds the text of one language: either a single string or
// a list of strings (multiple paragraphs). The content documents use
// both shapes interchangeably, so JSON decoding accepts either.
type TextValue struct {
	// Values holds the text parts. A single-string field has one entry.
	Values []string

	// List records whether the source document used the list form.
	List bool
}

// Text creates a single-string TextValue.
func Text(s string) TextValue {
	return TextValue{Values: []string{s}}
}

// TextList creates a list-valued TextValue.
func TextList(ss ...string) TextValue {
	return TextValue{Values: ss, List: true}
}

// IsZero returns true if the value carries no text.
func (v TextValue) IsZero() bool {
	return len(v.Values) == 0
}

// String joins the parts into a single string.
func (v TextValue) String() string {
	return strings.Join(v.Values, "\n")
}

// UnmarshalJSON accepts either a JSON string or an array of strings.
func (v *TextValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Values = []string{s}
		v.List = false
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		v.Values = list
		v.List = true
		return nil
	}

	return fmt.Errorf("%w: text value must be a string or a list of strings", ErrInvalidInput)
}

// MarshalJSON writes the value back in its source shape.
func (v TextValue) MarshalJSON() ([]byte, error) {
	if v.List {
		return json.Marshal(v.Values)
	}
	return json.Marshal(v.String())
}

// MultilingualText maps language tags to text. Fields in the content
// documents are multilingual objects keyed by language tag.
type MultilingualText map[Language]TextValue

// T resolves the text for lang as a single string, falling back to
// FallbackLanguage, and returns "" if neither is present. List-valued
// fields are joined with newlines.
func (m MultilingualText) T(lang Language) string {
	v, ok := m.resolve(lang)
	if !ok {
		return ""
	}
	return v.String()
}

// TL resolves the text for lang as a list of strings, falling back to
// FallbackLanguage, and returns nil if neither is present. A
// single-string field yields a one-element list.
func (m MultilingualText) TL(lang Language) []string {
	v, ok := m.resolve(lang)
	if !ok {
		return nil
	}
	return v.Values
}

// Label returns the default-language text without fallback. Facet
// values (educational level, curricular area) are compared and
// deduplicated by this label.
func (m MultilingualText) Label() string {
	if m == nil {
		return ""
	}
	return m[DefaultLanguage].String()
}

// IsZero returns true if no language carries text.
func (m MultilingualText) IsZero() bool {
	return len(m) == 0
}

func (m MultilingualText) resolve(lang Language) (TextValue, bool) {
	if m == nil {
		return TextValue{}, false
	}
	if v, ok := m[lang]; ok && !v.IsZero() {
		return v, true
	}
	if v, ok := m[FallbackLanguage]; ok && !v.IsZero() {
		return v, true
	}
	return TextValue{}, false
}
