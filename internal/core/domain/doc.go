// Package domain defines the core entities of the UDL reference browser.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Network, Principle, Guideline, Consideration: the fixed content tree
//   - Example: a worked instance illustrating a Consideration
//   - Activity: a standalone teaching activity
//   - SearchableItem: the flat projection used for search and filtering
//   - MultilingualText: language-tagged text with fallback resolution
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
