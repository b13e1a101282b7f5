// Package driven defines the driven (secondary) ports: interfaces the
// core requires from infrastructure adapters.
//
// Driven ports are implemented by adapters in
// internal/adapters/driven: the JSON content store, the search engine
// adapters (bleve and lite), the SQLite activity store, and the TOML
// config store.
package driven
