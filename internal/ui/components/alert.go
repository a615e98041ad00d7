package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Alert is a composite component for displaying notifications and messages.
type Alert struct {
	BaseComponent
	message string
	icon    string
	variant AlertVariant
	title   string
}

// NewAlert creates a new alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
		icon:          "ℹ",
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := a.ComputeStyle(theme).
		Border(theme.Borders.Normal).
		Padding(0, 1)

	if strategy := theme.Variants.Get(a.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	style = alertBorderColour(style, theme, a.variant)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width - style.GetHorizontalBorderSize())
	}

	line := a.icon + " " + a.message
	if a.title == "" {
		return style.Render(line)
	}
	title := lipgloss.NewStyle().Bold(true).Inherit(style).Render(a.title)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, line))
}

// WithVariant sets the alert variant and its icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant

	switch variant {
	case AlertVariantSuccess:
		a.icon = "✓"
	case AlertVariantWarning:
		a.icon = "⚠"
	case AlertVariantError:
		a.icon = "✗"
	case AlertVariantInfo:
		a.icon = "ℹ"
	}

	return a
}

// WithTitle adds a title to the alert.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

func alertBorderColour(style lipgloss.Style, theme Theme, variant AlertVariant) lipgloss.Style {
	var colour lipgloss.Color

	switch variant {
	case AlertVariantSuccess:
		colour = theme.Palette.Success.Muted
	case AlertVariantWarning:
		colour = theme.Palette.Warning.Muted
	case AlertVariantError:
		colour = theme.Palette.Danger.Muted
	case AlertVariantInfo:
		colour = theme.Palette.Info.Muted
	}

	if colour == "" {
		return style
	}
	return style.BorderForeground(colour).BorderBackground(theme.Palette.Surface.Base)
}
