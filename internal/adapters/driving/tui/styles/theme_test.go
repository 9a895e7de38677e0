package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, theme.Primary)
	assert.NotEmpty(t, theme.Error)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestDefaultStyles_RenderRoundTrip(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Title.Render("Articles"), "Articles")
	assert.Contains(t, s.Selected.Render("> Sky"), "Sky")
}
