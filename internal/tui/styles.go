package tui

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/teeform/internal/ui/components"
)

// styles is the full style set for one theme. It is rebuilt whenever the
// theme changes; nothing caches a style from a previous theme.
type styles struct {
	theme components.Theme
	ctx   components.RenderContext

	canvas   lipgloss.Style
	control  lipgloss.Style
	focused  lipgloss.Style
	invalid  lipgloss.Style
	dropzone lipgloss.Style
	dropHot  lipgloss.Style
	shirt    lipgloss.Style
	shirtInk lipgloss.Style
	selector lipgloss.Style
	option   lipgloss.Style
	muted    lipgloss.Style

	input    lipgloss.Style
	cursor   lipgloss.Style
	hint     lipgloss.Style
	spinner  lipgloss.Style
	picker   filepicker.Styles
	help     help.Styles
	textarea textarea.Style
}

func newStyles(ctx components.RenderContext) styles {
	theme := ctx.Theme
	p := theme.Palette
	base := theme.Typography.Base

	dropzone := lipgloss.NewStyle().
		Border(lipgloss.Border{
			Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
			TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		}).
		BorderForeground(p.Dropzone.Muted).
		BorderBackground(p.Surface.Base).
		Background(p.Dropzone.Base).
		Foreground(p.Dropzone.OnBase).
		Padding(1, 2).
		Align(lipgloss.Center)

	picker := filepicker.DefaultStyles()
	picker.Cursor = picker.Cursor.Foreground(p.Primary.Base)
	picker.Selected = picker.Selected.Foreground(p.Primary.Base).Bold(true)
	picker.Directory = picker.Directory.Foreground(p.Surface.Contrast)
	picker.File = picker.File.Foreground(p.Surface.OnBase)
	picker.DisabledFile = picker.DisabledFile.Foreground(p.Surface.Muted)
	picker.EmptyDirectory = picker.EmptyDirectory.Foreground(p.Surface.Muted)

	h := help.New().Styles
	h.ShortKey = h.ShortKey.Foreground(p.Canvas.OnBase).Bold(true)
	h.ShortDesc = h.ShortDesc.Foreground(p.Canvas.Muted)
	h.ShortSeparator = h.ShortSeparator.Foreground(p.Canvas.Muted)

	ta, _ := textarea.DefaultStyles()
	ta.Base = lipgloss.NewStyle().Background(p.Input.Base).Foreground(p.Input.OnBase)
	ta.Text = lipgloss.NewStyle().Foreground(p.Input.OnBase)
	ta.CursorLine = lipgloss.NewStyle().Foreground(p.Input.OnBase)
	ta.Placeholder = lipgloss.NewStyle().Foreground(p.Input.Muted)
	ta.EndOfBuffer = lipgloss.NewStyle().Foreground(p.Input.Base)

	return styles{
		theme: theme,
		ctx:   ctx,

		canvas:   lipgloss.NewStyle().Background(p.Canvas.Base).Foreground(p.Canvas.OnBase).Padding(1, 2),
		control:  components.InputStyle(theme, components.InputStateDefault),
		focused:  components.InputStyle(theme, components.InputStateFocus),
		invalid:  components.InputStyle(theme, components.InputStateDefault).BorderForeground(p.Danger.Base),
		dropzone: dropzone,
		dropHot:  dropzone.BorderForeground(p.Dropzone.Contrast),
		shirt:    base.Foreground(p.Surface.Muted),
		shirtInk: base.Foreground(p.Primary.Base).Bold(true),
		selector: base.Foreground(p.Surface.Muted),
		option:   lipgloss.NewStyle().Background(p.Primary.Base).Foreground(p.Primary.OnBase).Bold(true).Padding(0, 1),
		muted:    theme.Typography.Hint,

		input:    lipgloss.NewStyle().Foreground(p.Input.OnBase).Background(p.Input.Base),
		cursor:   lipgloss.NewStyle().Foreground(p.Input.Contrast),
		hint:     lipgloss.NewStyle().Foreground(p.Input.Muted).Background(p.Input.Base),
		spinner:  lipgloss.NewStyle().Foreground(p.Primary.Base),
		picker:   picker,
		help:     h,
		textarea: ta,
	}
}

func (s styles) applyInput(ti *textinput.Model) {
	ti.TextStyle = s.input
	ti.PromptStyle = s.input
	ti.PlaceholderStyle = s.hint
	ti.Cursor.Style = s.cursor
}

func (s styles) applyTextarea(ta *textarea.Model) {
	ta.FocusedStyle = s.textarea
	ta.BlurredStyle = s.textarea
	ta.Cursor.Style = s.cursor
}

// frame picks the border style for a control.
func (s styles) frame(focused, invalid bool) lipgloss.Style {
	switch {
	case focused:
		return s.focused
	case invalid:
		return s.invalid
	default:
		return s.control
	}
}
