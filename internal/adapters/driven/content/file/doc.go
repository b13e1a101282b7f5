// Package file loads the static content corpus from JSON documents.
//
// The corpus layout is fixed: one root document (udl-core.json) holds
// the Network → Principle → Guideline → Consideration tree, one
// document per guideline (udl-guideline-N.json) holds that guideline's
// examples grouped by consideration, and an optional activities.json
// holds the standalone activities collection.
//
// The package also provides a filesystem watcher so a running session
// can pick up edits to the documents.
package file
