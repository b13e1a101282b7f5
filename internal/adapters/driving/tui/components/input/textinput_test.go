package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchInput_Value(t *testing.T) {
	in := NewSearchInput(nil)

	in.SetValue("autonomía")
	assert.Equal(t, "autonomía", in.Value())

	in.Reset()
	assert.Empty(t, in.Value())
}

func TestSearchInput_FocusBlur(t *testing.T) {
	in := NewSearchInput(nil)
	assert.True(t, in.Focused())

	in.Blur()
	assert.False(t, in.Focused())

	in.Focus()
	assert.True(t, in.Focused())
}

func TestSearchInput_SetWidthClampsMinimum(t *testing.T) {
	in := NewSearchInput(nil)

	in.SetWidth(12)
	assert.Equal(t, 12, in.Width())

	in.SetWidth(120)
	assert.Equal(t, 120, in.Width())
}

func TestSearchInput_ViewContainsLabel(t *testing.T) {
	in := NewSearchInput(nil)
	assert.Contains(t, in.View(), "Search:")
}
