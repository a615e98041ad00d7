package components

// Badge is a small inline status indicator.
type Badge struct {
	BaseComponent
	text string
	slot PaletteSlot
}

// NewBadge creates a badge coloured from the neutral palette slot.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		slot:          PaletteNeutral,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := Background(b.slot)(b.ComputeStyle(ctx.Theme), ctx.Theme).Padding(0, 1)
	return style.Render(b.text)
}

// WithSlot colours the badge from another palette slot.
func (b *Badge) WithSlot(slot PaletteSlot) *Badge {
	b.slot = slot
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// ThemeBadge shows the active theme name.
func ThemeBadge(name ThemeName) *Badge {
	return NewBadge(name.Label()).WithSlot(PaletteNeutral)
}
