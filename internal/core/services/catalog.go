package services

import (
	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

// Catalog indexes a loaded ContentSet for direct lookup and parent
// resolution. It is a pure derivation of the set: rebuilt whole on
// content change, never patched.
//
// Parent resolution is a linear scan over the tree. The hierarchy has
// tens to low hundreds of nodes, so no inverted index is needed.
type Catalog struct {
	set *domain.ContentSet

	networks       map[string]*domain.Network
	principles     map[string]*domain.Principle
	guidelines     map[string]*domain.Guideline
	considerations map[string]*domain.Consideration
	examples       map[string]*domain.Example
	activities     map[string]*domain.Activity
}

// NewCatalog builds the catalog in document order: Network →
// Principle → Guideline → Consideration, then examples, then
// activities (first occurrence wins on duplicate activity codes).
func NewCatalog(set *domain.ContentSet) *Catalog {
	c := &Catalog{
		set:            set,
		networks:       make(map[string]*domain.Network),
		principles:     make(map[string]*domain.Principle),
		guidelines:     make(map[string]*domain.Guideline),
		considerations: make(map[string]*domain.Consideration),
		examples:       make(map[string]*domain.Example),
		activities:     make(map[string]*domain.Activity),
	}

	for i := range set.Networks {
		network := &set.Networks[i]
		c.networks[network.ID] = network

		principle := &network.Principle
		c.principles[principle.ID] = principle

		for j := range principle.Guidelines {
			guideline := &principle.Guidelines[j]
			c.guidelines[guideline.ID] = guideline

			for k := range guideline.Considerations {
				consideration := &guideline.Considerations[k]
				c.considerations[consideration.ID] = consideration
			}
		}
	}

	for i := range set.Examples {
		example := &set.Examples[i]
		c.examples[example.ID] = example
	}

	for i := range set.Activities {
		activity := &set.Activities[i]
		if _, seen := c.activities[activity.Code]; !seen {
			c.activities[activity.Code] = activity
		}
	}

	return c
}

// NetworkByID looks up a network.
func (c *Catalog) NetworkByID(id string) (*domain.Network, bool) {
	n, ok := c.networks[id]
	return n, ok
}

// PrincipleByID looks up a principle.
func (c *Catalog) PrincipleByID(id string) (*domain.Principle, bool) {
	p, ok := c.principles[id]
	return p, ok
}

// GuidelineByID looks up a guideline.
func (c *Catalog) GuidelineByID(id string) (*domain.Guideline, bool) {
	g, ok := c.guidelines[id]
	return g, ok
}

// ConsiderationByID looks up a consideration.
func (c *Catalog) ConsiderationByID(id string) (*domain.Consideration, bool) {
	con, ok := c.considerations[id]
	return con, ok
}

// ExampleByID looks up an example.
func (c *Catalog) ExampleByID(id string) (*domain.Example, bool) {
	e, ok := c.examples[id]
	return e, ok
}

// ActivityByCode looks up an activity by its stable code.
func (c *Catalog) ActivityByCode(code string) (*domain.Activity, bool) {
	a, ok := c.activities[code]
	return a, ok
}

// NetworkForPrinciple finds the network wrapping a principle.
func (c *Catalog) NetworkForPrinciple(principleID string) (*domain.Network, bool) {
	for i := range c.set.Networks {
		if c.set.Networks[i].Principle.ID == principleID {
			return &c.set.Networks[i], true
		}
	}
	return nil, false
}

// PrincipleForGuideline finds the principle owning a guideline.
func (c *Catalog) PrincipleForGuideline(guidelineID string) (*domain.Principle, bool) {
	for i := range c.set.Networks {
		principle := &c.set.Networks[i].Principle
		for j := range principle.Guidelines {
			if principle.Guidelines[j].ID == guidelineID {
				return principle, true
			}
		}
	}
	return nil, false
}

// NetworkForGuideline finds the network owning a guideline.
func (c *Catalog) NetworkForGuideline(guidelineID string) (*domain.Network, bool) {
	for i := range c.set.Networks {
		principle := &c.set.Networks[i].Principle
		for j := range principle.Guidelines {
			if principle.Guidelines[j].ID == guidelineID {
				return &c.set.Networks[i], true
			}
		}
	}
	return nil, false
}

// GuidelineForConsideration finds the guideline owning a consideration.
func (c *Catalog) GuidelineForConsideration(considerationID string) (*domain.Guideline, bool) {
	for i := range c.set.Networks {
		principle := &c.set.Networks[i].Principle
		for j := range principle.Guidelines {
			guideline := &principle.Guidelines[j]
			for k := range guideline.Considerations {
				if guideline.Considerations[k].ID == considerationID {
					return guideline, true
				}
			}
		}
	}
	return nil, false
}

// PrincipleForConsideration resolves via the owning guideline.
func (c *Catalog) PrincipleForConsideration(considerationID string) (*domain.Principle, bool) {
	guideline, ok := c.GuidelineForConsideration(considerationID)
	if !ok {
		return nil, false
	}
	return c.PrincipleForGuideline(guideline.ID)
}

// NetworkForConsideration resolves via the owning guideline.
func (c *Catalog) NetworkForConsideration(considerationID string) (*domain.Network, bool) {
	guideline, ok := c.GuidelineForConsideration(considerationID)
	if !ok {
		return nil, false
	}
	return c.NetworkForGuideline(guideline.ID)
}

// ConsiderationForExample derives the owning consideration from the
// example id convention ("1-1-1" belongs to "1-1"). An id with fewer
// than two dash-separated segments has no parent; that is a defined
// outcome, not an error.
func (c *Catalog) ConsiderationForExample(exampleID string) (*domain.Consideration, bool) {
	parsed, ok := domain.ParseExampleID(exampleID)
	if !ok {
		return nil, false
	}
	return c.ConsiderationByID(parsed.ConsiderationID())
}
