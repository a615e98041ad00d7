package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/teeform/internal/imageload"
	"github.com/alexisbeaulieu97/teeform/internal/ui/components"
)

func TestRenderShirtKeepsOutlineWidth(t *testing.T) {
	t.Parallel()

	s := newStyles(components.ContextFor(components.ThemeLight))
	cases := []string{"", "HI", "one\ntwo\nthree", "a much longer line than fits", "a\nb\nc\nd"}
	for _, text := range cases {
		lines := strings.Split(renderShirt(s, text, nil), "\n")
		require.Len(t, lines, len(shirtTop)+shirtBodyRows+1, "text %q", text)
		for _, line := range lines {
			require.Equal(t, len(shirtBottom), lipgloss.Width(line), "text %q line %q", text, line)
		}
	}
}

func TestRenderShirtPrintsOnlyThreeLines(t *testing.T) {
	t.Parallel()

	out := renderShirt(newStyles(components.ContextFor(components.ThemeDark)), "a\nb\nc\nFOURTH", nil)
	require.NotContains(t, out, "FOURTH")
}

func TestRenderShirtTruncatesLongLines(t *testing.T) {
	t.Parallel()

	out := renderShirt(newStyles(components.ContextFor(components.ThemeLight)), "abcdefghijklmnop", nil)
	require.Contains(t, out, "abcdefghij…")
}

func TestRenderShirtNamesDesign(t *testing.T) {
	t.Parallel()

	out := renderShirt(newStyles(components.ContextFor(components.ThemeLight)), "", &imageload.Image{Name: "logo.png"})
	require.Contains(t, out, "Design: logo.png")
}
