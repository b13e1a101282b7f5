// Package services implements the core application logic behind the
// driving ports.
//
// Three pieces live here:
//
//   - Catalog: id→entity maps over the loaded content tree plus
//     parent-resolution scans (the index builder)
//   - ProjectItems: the flattening of the tree into the ordered
//     SearchableItem sequence (the projector)
//   - BrowseService: the shared browse state with the filter/facet
//     pipeline, facet enumerators, and memoized search engine
//
// Services depend on domain types and ports only; adapters are
// injected at the composition root.
package services
