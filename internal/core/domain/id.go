package domain

import "strings"

// ExampleID is the parsed form of an example identifier. Example ids
// follow the convention "{guidelineCode}-{considerationOrdinal}-{rest}":
// the first two dash-separated segments name the owning consideration
// (example "1-1-1" belongs to consideration "1-1"). The relation is
// derived, never stored, so this type makes the convention explicit.
type ExampleID struct {
	// GuidelineCode is the first segment.
	GuidelineCode string

	// ConsiderationOrdinal is the second segment.
	ConsiderationOrdinal string

	// Rest is everything after the second segment, "" when absent.
	Rest string
}

// ParseExampleID splits an example id into its segments. An id with
// fewer than two dash-separated segments cannot be mapped to a
// consideration; that is a defined "no parent" outcome, not an error,
// so the second return is false rather than an error value.
func ParseExampleID(id string) (ExampleID, bool) {
	parts := strings.Split(id, "-")
	if len(parts) < 2 {
		return ExampleID{}, false
	}
	return ExampleID{
		GuidelineCode:        parts[0],
		ConsiderationOrdinal: parts[1],
		Rest:                 strings.Join(parts[2:], "-"),
	}, true
}

// ConsiderationID returns the id of the owning consideration.
func (e ExampleID) ConsiderationID() string {
	return e.GuidelineCode + "-" + e.ConsiderationOrdinal
}
