package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Meter shows how much of a fixed capacity is in use, as a bar followed by
// an "N/M unit" label. The bar turns to the warning colour once full.
type Meter struct {
	used     int
	capacity int
	unit     string
	width    int
}

// NewMeter creates a meter for the given capacity.
func NewMeter(capacity int, unit string) *Meter {
	return &Meter{capacity: capacity, unit: unit, width: 12}
}

// Used sets the amount in use.
func (m *Meter) Used(n int) *Meter {
	m.used = n
	return m
}

// WithWidth sets the bar width in cells.
func (m *Meter) WithWidth(width int) *Meter {
	m.width = width
	return m
}

// Ratio returns the filled fraction, capped at 1.
func (m *Meter) Ratio() float64 {
	if m.capacity <= 0 {
		return 0
	}
	return math.Min(1.0, float64(m.used)/float64(m.capacity))
}

// View renders the meter with the light theme.
func (m *Meter) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the meter with the given theme context.
func (m *Meter) ViewWithContext(ctx RenderContext) string {
	palette := ctx.Theme.Palette
	fill := palette.Primary.Base
	if m.capacity > 0 && m.used >= m.capacity {
		fill = palette.Warning.Base
	}

	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithoutPercentage(),
		progress.WithWidth(m.width),
	)
	bar.EmptyColor = string(palette.Surface.Muted)

	label := HintText(fmt.Sprintf("%d/%d %s", m.used, m.capacity, m.unit)).ViewWithContext(ctx)
	return lipgloss.JoinHorizontal(lipgloss.Center, bar.ViewAs(m.Ratio()), " ", label)
}
