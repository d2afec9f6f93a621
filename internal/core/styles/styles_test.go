package styles

import (
	"image/color"
	"testing"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_Sorted(t *testing.T) {
	names := ThemeNames()

	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, DefaultTheme)
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette("gruvbox")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#83a598"), p.Primary)

	_, ok = GetPalette("neon")
	assert.False(t, ok)
}

func TestBlend(t *testing.T) {
	black := lipgloss.Color("#000000")
	white := lipgloss.Color("#ffffff")

	assert.Equal(t, black, Blend(black, white, 0))
	assert.Equal(t, white, Blend(black, white, 1))

	mid := Blend(black, white, 0.5)
	assert.NotEqual(t, black, mid)
	assert.NotEqual(t, white, mid)
}

func TestBlend_UnconvertibleColorUnchanged(t *testing.T) {
	white := lipgloss.Color("#ffffff")

	assert.Equal(t, color.Transparent, Blend(color.Transparent, white, 0.5))
	assert.Nil(t, Blend(nil, white, 0.5))
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, _ := GetPalette("catppuccin")
	SetTheme(p)

	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, p.Primary, ColorPrimary)
	assert.NotEqual(t, p.Muted, ColorFaint)
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	cfg := GlamourStyle()

	require.NotNil(t, cfg.Document.Color)
	require.NotNil(t, cfg.H1.Color)
	assert.Equal(t, "#c0caf5", *cfg.Document.Color)
	assert.Equal(t, "#7aa2f7", *cfg.H1.Color)
}
