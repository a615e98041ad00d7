package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/teeform/internal/customizer"
	"github.com/alexisbeaulieu97/teeform/internal/imageload"
	"github.com/alexisbeaulieu97/teeform/internal/submit"
	"github.com/alexisbeaulieu97/teeform/internal/ui/components"
	apperrors "github.com/alexisbeaulieu97/teeform/pkg/errors"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.text.SetWidth(m.textWidth())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		if !m.submitting && !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ImageLoadedMsg:
		if msg.Seq != m.loadSeq {
			m.log.WithFields(map[string]any{"seq": msg.Seq, "latest": m.loadSeq}).Debug("discarding superseded image load")
			return m, nil
		}
		m.loading = false
		m.loadingLabel = ""
		m.image = msg.Image
		m.imageErr = ""
		return m, nil

	case ImageLoadFailedMsg:
		if msg.Seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		m.loadingLabel = ""
		m.imageErr = imageErrorMessage(msg.Path, msg.Err)
		log := m.log.WithFields(map[string]any{"path": msg.Path})
		if errors.Is(msg.Err, apperrors.ErrNotImage) {
			log.Warn("rejected non-image upload")
		} else {
			log.Error(msg.Err, "image load failed")
		}
		return m, nil

	case SubmittedMsg:
		m.submitting = false
		m.status = &Status{Variant: components.AlertVariantSuccess, Message: "Customization saved"}
		return m, nil

	case SubmitFailedMsg:
		m.submitting = false
		m.status = &Status{Variant: components.AlertVariantError, Message: fmt.Sprintf("Could not save customization: %v", msg.Err)}
		m.log.Error(msg.Err, "submission failed")
		return m, nil
	}

	// Everything else (cursor blinks, directory listings) belongs to the
	// embedded bubbles, which ignore messages addressed to other instances.
	return m.updateChildren(msg)
}

func (m Model) updateChildren(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)
	m.heightInput, cmd = m.heightInput.Update(msg)
	cmds = append(cmds, cmd)
	m.weightInput, cmd = m.weightInput.Update(msg)
	cmds = append(cmds, cmd)
	m.text, cmd = m.text.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.ThemeCycle):
		m.cycleTheme()
		return m, nil
	}

	if m.picking {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	}

	switch m.focus {
	case focusHeight, focusWeight:
		return m.updateNumber(msg)
	case focusBuild:
		return m.updateBuild(msg)
	case focusDrop:
		return m.updateDrop(msg)
	case focusText:
		return m.updateText(msg)
	case focusSubmit:
		if key.Matches(msg, m.keys.Activate) {
			return m.submit()
		}
	}
	return m, nil
}

// cycleTheme advances light -> dark -> colorful -> light.
func (m *Model) cycleTheme() {
	m.theme = m.theme.Next()
	m.applyTheme()
	m.log.WithFields(map[string]any{"theme": string(m.theme)}).Debug("theme changed")
}

func (m Model) updateNumber(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	input := &m.heightInput
	if m.focus == focusWeight {
		input = &m.weightInput
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if digits := keepDigits(input.Value()); digits != input.Value() {
		input.SetValue(digits)
	}
	m.revalidate()
	return m, cmd
}

func keepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func (m Model) updateBuild(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.BuildPrev):
		m.build = m.build.Prev()
	case key.Matches(msg, m.keys.BuildNext), msg.Type == tea.KeyEnter:
		m.build = m.build.Next()
	default:
		return m, nil
	}
	m.revalidate()
	return m, nil
}

func (m Model) updateDrop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste {
		path, ok := imageload.NormalizeDroppedPath(string(msg.Runes))
		if !ok {
			m.imageErr = "Dropped text is not a file path"
			m.log.WithFields(map[string]any{"bytes": len(msg.Runes)}).Warn("rejected drop")
			return m, nil
		}
		return m.startLoad(path)
	}

	switch {
	case key.Matches(msg, m.keys.Browse):
		return m.openPicker()
	case key.Matches(msg, m.keys.RemoveImage):
		m.removeImage()
	}
	return m, nil
}

func (m Model) updateText(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	m.clampText()
	m.revalidate()
	return m, cmd
}

// clampText keeps the textarea at no more than MaxTextLines lines.
func (m *Model) clampText() {
	value := m.text.Value()
	clamped := customizer.ClampLines(value)
	if clamped == value {
		return
	}
	m.text.SetValue(clamped)
}

func (m Model) openPicker() (tea.Model, tea.Cmd) {
	m.picking = true
	m.imageErr = ""
	return m, m.picker.Init()
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		next, loadCmd := m.startLoad(path)
		return next, tea.Batch(cmd, loadCmd)
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.imageErr = fmt.Sprintf("%s is not a supported image", filepath.Base(path))
	}
	return m, cmd
}

// startLoad begins loading path. Any load already in flight is superseded.
func (m Model) startLoad(path string) (tea.Model, tea.Cmd) {
	m.loadSeq++
	m.loading = true
	m.loadingLabel = filepath.Base(path)
	m.imageErr = ""
	m.log.WithFields(map[string]any{"path": path, "seq": m.loadSeq}).Debug("image load started")
	return m, tea.Batch(loadImageCmd(m.ctx, m.loader, m.loadSeq, path), m.spinner.Tick)
}

// removeImage clears the attachment and invalidates in-flight loads.
func (m *Model) removeImage() {
	m.loadSeq++
	m.loading = false
	m.loadingLabel = ""
	m.image = nil
	m.imageErr = ""
}

// submit validates the form and, when valid, hands it to the submitter.
// Repeated submits while one is in flight are ignored.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	m.clampText()
	data, err := customizer.Parse(m.Input())
	if err != nil {
		m.attempted = true
		m.status = nil
		var fieldErrs customizer.FieldErrors
		if errors.As(err, &fieldErrs) {
			m.errs = fieldErrs
			if len(fieldErrs) > 0 {
				return m, m.setFocus(fieldFocus(customizer.Field(fieldErrs[0].Field)))
			}
		}
		return m, nil
	}

	m.errs = nil
	m.status = nil
	m.submitting = true
	sub := submit.Submission{Form: data, Image: m.image, SubmittedAt: m.now()}
	return m, tea.Batch(submitCmd(m.ctx, m.submitter, sub), m.spinner.Tick)
}

// revalidate refreshes field errors once a submit has been attempted.
func (m *Model) revalidate() {
	if !m.attempted {
		return
	}
	_, err := customizer.Parse(m.Input())
	var fieldErrs customizer.FieldErrors
	if errors.As(err, &fieldErrs) {
		m.errs = fieldErrs
		return
	}
	m.errs = nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || m.picking {
		return m, nil
	}

	switch {
	case m.zones.Get(zoneHeight).InBounds(msg):
		return m, m.setFocus(focusHeight)
	case m.zones.Get(zoneWeight).InBounds(msg):
		return m, m.setFocus(focusWeight)
	case m.zones.Get(zoneBuild).InBounds(msg):
		m.build = m.build.Next()
		m.revalidate()
		return m, m.setFocus(focusBuild)
	case m.zones.Get(zoneDrop).InBounds(msg):
		cmd := m.setFocus(focusDrop)
		next, open := m.openPicker()
		return next, tea.Batch(cmd, open)
	case m.zones.Get(zoneText).InBounds(msg):
		return m, m.setFocus(focusText)
	case m.zones.Get(zoneSubmit).InBounds(msg):
		m.setFocus(focusSubmit)
		return m.submit()
	}
	return m, nil
}

func imageErrorMessage(path string, err error) string {
	name := filepath.Base(path)
	if errors.Is(err, apperrors.ErrNotImage) {
		return fmt.Sprintf("%s is not an image", name)
	}
	var imgErr *apperrors.ImageError
	if errors.As(err, &imgErr) && imgErr.Err != nil {
		return fmt.Sprintf("Could not load %s: %v", name, imgErr.Err)
	}
	return fmt.Sprintf("Could not load %s: %v", name, err)
}

func (m Model) textWidth() int {
	w := m.width - 12
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}
