package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/teeform/internal/customizer"
	"github.com/alexisbeaulieu97/teeform/internal/imageload"
	"github.com/alexisbeaulieu97/teeform/internal/ui/components"
)

// View renders the form.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := m.styles.ctx.WithWidth(m.contentWidth())
	sections := []string{
		m.renderHeader(ctx),
		m.renderMeasurements(ctx),
		m.renderDesign(ctx),
		m.renderText(ctx),
		m.renderActions(ctx),
		m.help.View(m.helpKeys()),
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	canvas := m.styles.canvas
	if m.width > 0 {
		canvas = canvas.Width(m.width)
	}
	return m.zones.Scan(canvas.Render(body))
}

func (m Model) contentWidth() int {
	w := m.width - m.styles.canvas.GetHorizontalFrameSize()
	if w < 40 {
		w = 40
	}
	if w > 96 {
		w = 96
	}
	return w
}

func (m Model) renderHeader(ctx components.RenderContext) string {
	title := components.TitleText("T-Shirt Customizer").ViewWithContext(ctx)
	badge := components.ThemeBadge(m.theme).ViewWithContext(ctx)
	hint := m.styles.muted.Render("Press ") + components.KeyText("Alt + Q").ViewWithContext(ctx) + m.styles.muted.Render(" to switch themes")
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge),
		hint,
		"",
	)
}

func (m Model) renderMeasurements(ctx components.RenderContext) string {
	height := components.Field{
		Label:   "Height (cm)",
		Control: m.styles.frame(m.focus == focusHeight, m.errs.Has(customizer.FieldHeight)).Render(m.heightInput.View()),
		Error:   m.errs.For(customizer.FieldHeight),
		Focused: m.focus == focusHeight,
	}
	weight := components.Field{
		Label:   "Weight (kg)",
		Control: m.styles.frame(m.focus == focusWeight, m.errs.Has(customizer.FieldWeight)).Render(m.weightInput.View()),
		Error:   m.errs.For(customizer.FieldWeight),
		Focused: m.focus == focusWeight,
	}
	build := components.Field{
		Label:   "Build",
		Control: m.styles.frame(m.focus == focusBuild, m.errs.Has(customizer.FieldBuild)).Render(m.renderBuildSelector()),
		Error:   m.errs.For(customizer.FieldBuild),
		Focused: m.focus == focusBuild,
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		m.zones.Mark(zoneHeight, height.ViewWithContext(ctx)), "   ",
		m.zones.Mark(zoneWeight, weight.ViewWithContext(ctx)), "   ",
		m.zones.Mark(zoneBuild, build.ViewWithContext(ctx)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, row, "")
}

func (m Model) renderBuildSelector() string {
	return m.styles.selector.Render("‹ ") + m.styles.option.Render(m.build.Label()) + m.styles.selector.Render(" ›")
}

func (m Model) renderDesign(ctx components.RenderContext) string {
	half := ctx.WithWidth((ctx.Width - 2) / 2)

	shirt := components.NewCard(components.NewText(renderShirt(m.styles, m.text.Value(), m.image))).
		WithTitle("T-Shirt Design").
		ViewWithContext(half)

	var upload string
	if m.picking {
		upload = components.NewCard(
			components.NewText(m.picker.View()),
			components.HintText("enter to choose · esc to cancel"),
		).WithTitle("Choose an image").WithBorder(components.BorderVariantDouble).ViewWithContext(half)
	} else {
		upload = components.NewCard(components.NewText(m.renderDropzone(half.Width-4))).
			WithTitle("Upload Your Design").
			ViewWithContext(half)
		upload = m.zones.Mark(zoneDrop, upload)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, shirt, "  ", upload),
		"",
	)
}

func (m Model) renderDropzone(width int) string {
	style := m.styles.dropzone
	if m.focus == focusDrop {
		style = m.styles.dropHot
	}
	if width > style.GetHorizontalFrameSize() {
		style = style.Width(width - style.GetHorizontalBorderSize())
	}

	var rows []string
	switch {
	case m.image != nil:
		if m.image.Preview != "" {
			rows = append(rows, m.image.Preview)
		}
		rows = append(rows, imageload.DisplayName(m.image.Name, width-8))
		rows = append(rows, m.styles.muted.Render(imageSummary(m.image)))
	default:
		rows = append(rows, "⇪", "Drag & drop an image or press enter to upload")
	}
	if m.loading {
		rows = append(rows, m.spinner.View()+" Loading "+imageload.DisplayName(m.loadingLabel, width-16)+"…")
	}

	zoneView := style.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
	if m.imageErr != "" {
		zoneView = lipgloss.JoinVertical(lipgloss.Left, zoneView, components.ErrorText(m.imageErr).ViewWithContext(m.styles.ctx))
	}
	return zoneView
}

func imageSummary(img *imageload.Image) string {
	parts := []string{img.MIME, imageload.HumanSize(img.Size)}
	if img.Decoded() {
		parts = append(parts, fmt.Sprintf("%d×%d", img.Width, img.Height))
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderText(ctx components.RenderContext) string {
	meter := components.NewMeter(customizer.MaxTextLines, "lines used").
		Used(customizer.LineCount(m.text.Value())).
		ViewWithContext(ctx)
	field := components.Field{
		Label: fmt.Sprintf("T-Shirt Text (max %d lines)", customizer.MaxTextLines),
		Control: lipgloss.JoinVertical(lipgloss.Left,
			m.styles.frame(m.focus == focusText, m.errs.Has(customizer.FieldText)).Render(m.text.View()),
			meter,
		),
		Error:   m.errs.For(customizer.FieldText),
		Focused: m.focus == focusText,
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.zones.Mark(zoneText, field.ViewWithContext(ctx)), "")
}

func (m Model) renderActions(ctx components.RenderContext) string {
	label := "Save Customization"
	if m.submitting {
		label = m.spinner.View() + " Saving…"
	}
	button := components.NewButton(label).
		Focused(m.focus == focusSubmit).
		Disabled(m.submitting).
		ViewWithContext(ctx)
	button = lipgloss.PlaceHorizontal(ctx.Width, lipgloss.Center, m.zones.Mark(zoneSubmit, button))

	rows := []string{button}
	if m.status != nil {
		rows = append(rows, "", m.status.alert().ViewWithContext(ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append(rows, "")...)
}

func (s Status) alert() *components.Alert {
	if s.Variant == components.AlertVariantError {
		return components.ErrorAlert(s.Message).WithTitle("Submission failed")
	}
	return components.SuccessAlert(s.Message)
}
