package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	c := NewCatalog(testContentSet())

	network, ok := c.NetworkByID("affective")
	require.True(t, ok)
	assert.Equal(t, "engagement", network.Principle.ID)

	principle, ok := c.PrincipleByID("action-expression")
	require.True(t, ok)
	assert.Equal(t, "Acción y expresión", principle.Name.Label())

	guideline, ok := c.GuidelineByID("guideline-1")
	require.True(t, ok)
	assert.Equal(t, "1", guideline.Code)
	assert.Len(t, guideline.Considerations, 2)

	consideration, ok := c.ConsiderationByID("1-2")
	require.True(t, ok)
	assert.Equal(t, "1.2", consideration.Code)

	example, ok := c.ExampleByID("3-2-1")
	require.True(t, ok)
	assert.Equal(t, "3.2.1", example.Code)

	_, ok = c.PrincipleByID("nope")
	assert.False(t, ok)
}

func TestCatalogActivityByCode(t *testing.T) {
	c := NewCatalog(testContentSet())

	activity, ok := c.ActivityByCode("01-PRI-MAT")
	require.True(t, ok)
	// Duplicate codes keep the first occurrence.
	assert.Equal(t, "Geometría con bloques", activity.Title.Label())

	_, ok = c.ActivityByCode("99-XXX")
	assert.False(t, ok)
}

func TestCatalogParentResolution(t *testing.T) {
	c := NewCatalog(testContentSet())

	principle, ok := c.PrincipleForGuideline("guideline-3")
	require.True(t, ok)
	assert.Equal(t, "action-expression", principle.ID)

	network, ok := c.NetworkForGuideline("guideline-3")
	require.True(t, ok)
	assert.Equal(t, "strategic", network.ID)

	guideline, ok := c.GuidelineForConsideration("1-2")
	require.True(t, ok)
	assert.Equal(t, "guideline-1", guideline.ID)

	principle, ok = c.PrincipleForConsideration("3-2")
	require.True(t, ok)
	assert.Equal(t, "action-expression", principle.ID)

	network, ok = c.NetworkForConsideration("1-1")
	require.True(t, ok)
	assert.Equal(t, "affective", network.ID)

	network, ok = c.NetworkForPrinciple("engagement")
	require.True(t, ok)
	assert.Equal(t, "affective", network.ID)

	_, ok = c.GuidelineForConsideration("9-9")
	assert.False(t, ok)
}

func TestCatalogConsiderationForExample(t *testing.T) {
	c := NewCatalog(testContentSet())

	consideration, ok := c.ConsiderationForExample("3-2-1")
	require.True(t, ok)
	assert.Equal(t, "3-2", consideration.ID)

	consideration, ok = c.ConsiderationForExample("1-1-1")
	require.True(t, ok)
	assert.Equal(t, "1-1", consideration.ID)

	// No dash segments: the id convention does not apply.
	_, ok = c.ConsiderationForExample("orphan")
	assert.False(t, ok)

	// Well-formed id pointing at a consideration that does not exist.
	_, ok = c.ConsiderationForExample("8-8-1")
	assert.False(t, ok)
}
