package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExampleID_ThreeSegments(t *testing.T) {
	id, ok := ParseExampleID("1-1-1")

	require.True(t, ok)
	assert.Equal(t, "1", id.GuidelineCode)
	assert.Equal(t, "1", id.ConsiderationOrdinal)
	assert.Equal(t, "1", id.Rest)
	assert.Equal(t, "1-1", id.ConsiderationID())
}

func TestParseExampleID_TwoSegments(t *testing.T) {
	id, ok := ParseExampleID("3-2")

	require.True(t, ok)
	assert.Equal(t, "3-2", id.ConsiderationID())
	assert.Equal(t, "", id.Rest)
}

func TestParseExampleID_ExtraSegmentsStayInRest(t *testing.T) {
	id, ok := ParseExampleID("9-4-2-b")

	require.True(t, ok)
	assert.Equal(t, "9-4", id.ConsiderationID())
	assert.Equal(t, "2-b", id.Rest)
}

func TestParseExampleID_NoDash(t *testing.T) {
	_, ok := ParseExampleID("orphan")

	assert.False(t, ok)
}

func TestParseExampleID_Empty(t *testing.T) {
	_, ok := ParseExampleID("")

	assert.False(t, ok)
}
