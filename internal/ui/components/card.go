package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/teeform/internal/ui"
)

// Card is a bordered surface holding a titled group of children.
type Card struct {
	BaseComponent
	title    string
	children []ui.Renderable
	border   BorderVariant
}

// NewCard creates a new card around the given children.
func NewCard(children ...ui.Renderable) *Card {
	card := &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
		border:        BorderVariantRounded,
	}
	card.SetAppliers(
		Background(PaletteSurface),
		BorderColour(PaletteSurface),
		PaddingXY(0, 1),
	)
	return card
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card with the given theme context.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := c.ComputeStyle(theme).
		Border(BorderForVariant(theme, c.border)).
		BorderBackground(theme.Palette.Canvas.Base)

	inner := ctx
	if ctx.Width > 0 {
		style = style.Width(ctx.Width - style.GetHorizontalBorderSize())
		inner = ctx.WithWidth(ctx.Width - style.GetHorizontalFrameSize())
	}

	rows := make([]string, 0, len(c.children)+1)
	if c.title != "" {
		rows = append(rows, SubtitleText(c.title).ViewWithContext(inner))
	}
	for _, child := range c.children {
		rows = append(rows, render(inner, child))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// WithTitle sets the card heading.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithBorder replaces the card border variant.
func (c *Card) WithBorder(variant BorderVariant) *Card {
	c.border = variant
	return c
}

