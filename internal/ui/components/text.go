package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText creates title text using theme typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(func(s TypographyScale) lipgloss.Style { return s.Title }))
}

// SubtitleText creates section heading text using theme typography.
func SubtitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(func(s TypographyScale) lipgloss.Style { return s.Subtitle }))
}

// HintText creates muted helper text.
func HintText(content string) *Text {
	return NewText(content).WithAppliers(Typography(func(s TypographyScale) lipgloss.Style { return s.Hint }))
}

// KeyText renders a keyboard shortcut like a key cap.
func KeyText(content string) *Text {
	return NewText(content).WithAppliers(Typography(func(s TypographyScale) lipgloss.Style { return s.Code }))
}

// ErrorText renders an inline validation message.
func ErrorText(content string) *Text {
	return NewText(content).WithAppliers(
		Typography(func(s TypographyScale) lipgloss.Style { return s.Base }),
		func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.Foreground(theme.Palette.Danger.Base)
		},
	)
}
