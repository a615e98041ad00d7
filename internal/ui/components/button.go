package components

// Button renders a clickable label. Focus is drawn as an underline and a
// pointer so it stays visible on every palette.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	focused  bool
	disabled bool
}

// NewButton creates a new primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	variant := b.variant
	if b.disabled {
		variant = ButtonVariantMuted
	}

	style := b.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}

	label := b.label
	if b.focused && !b.disabled {
		style = style.Bold(true).Underline(true)
		label = "▸ " + label
	}
	return style.Render(label)
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// Focused marks the button as the focused control.
func (b *Button) Focused(focused bool) *Button {
	b.focused = focused
	return b
}

// Disabled renders the button in its muted state.
func (b *Button) Disabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}
