package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field stacks a label, a rendered control, an optional hint and an inline
// validation error.
type Field struct {
	Label   string
	Control string
	Hint    string
	Error   string
	Focused bool
}

// View renders the field with the light theme.
func (f Field) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label/control/error stack for a single field.
func (f Field) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	label := theme.Typography.Label
	if f.Focused {
		label = label.Foreground(theme.Palette.Surface.Contrast)
	}

	lines := make([]string, 0, 4)
	if strings.TrimSpace(f.Label) != "" {
		lines = append(lines, label.Render(f.Label))
	}
	lines = append(lines, f.Control)
	if f.Hint != "" {
		lines = append(lines, HintText(f.Hint).ViewWithContext(ctx))
	}
	if f.Error != "" {
		lines = append(lines, ErrorText(f.Error).ViewWithContext(ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
