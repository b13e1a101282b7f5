// Package tui provides the interactive terminal browser for the UDL
// framework. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/udl-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Browse holds the shared browse state and produces results.
	Browse driving.BrowseService

	// Catalog resolves entities and their hierarchy for detail views.
	Catalog driving.CatalogService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(browse driving.BrowseService, catalog driving.CatalogService) *Ports {
	return &Ports{
		Browse:  browse,
		Catalog: catalog,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Browse == nil {
		return ErrMissingBrowseService
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
