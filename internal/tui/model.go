package tui

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/teeform/internal/customizer"
	"github.com/alexisbeaulieu97/teeform/internal/imageload"
	"github.com/alexisbeaulieu97/teeform/internal/logger"
	"github.com/alexisbeaulieu97/teeform/internal/submit"
	"github.com/alexisbeaulieu97/teeform/internal/ui/components"
)

// focusTarget identifies the control receiving keyboard input.
type focusTarget int

const (
	focusHeight focusTarget = iota
	focusWeight
	focusBuild
	focusDrop
	focusText
	focusSubmit
)

// focusOrder is the tab order of the form.
var focusOrder = []focusTarget{focusHeight, focusWeight, focusBuild, focusDrop, focusText, focusSubmit}

// Mouse zone identifiers.
const (
	zoneHeight = "height"
	zoneWeight = "weight"
	zoneBuild  = "build"
	zoneDrop   = "drop"
	zoneText   = "text"
	zoneSubmit = "submit"
)

const pickerHeight = 12

// Status describes the outcome banner shown after a submission attempt.
type Status struct {
	Variant components.AlertVariant
	Message string
}

// Options configures a new form model.
type Options struct {
	Theme     components.ThemeName
	Initial   customizer.FormData
	Loader    ImageLoader
	Submitter submit.Submitter
	Logger    *logger.Logger
	// Zones tracks mouse regions. A private manager is created when nil.
	Zones *zone.Manager
	// StartDir is where the file picker opens. Defaults to the working directory.
	StartDir string
	// Context bounds image loads and submissions. Cancel it to abandon them on exit.
	Context context.Context
	Now     func() time.Time
}

// Model contains the Bubbletea state for the T-shirt customization form.
type Model struct {
	// Dependencies
	ctx       context.Context
	loader    ImageLoader
	submitter submit.Submitter
	log       *logger.Logger
	zones     *zone.Manager
	now       func() time.Time

	// Appearance
	theme  components.ThemeName
	styles styles
	keys   KeyMap
	help   help.Model

	// Controls
	heightInput textinput.Model
	weightInput textinput.Model
	build       customizer.Build
	text        textarea.Model
	focus       focusTarget

	// Image upload
	picker       filepicker.Model
	picking      bool
	image        *imageload.Image
	imageErr     string
	loadSeq      uint64
	loading      bool
	loadingLabel string

	// Submission
	spinner    spinner.Model
	submitting bool
	attempted  bool
	errs       customizer.FieldErrors
	status     *Status

	// Dimensions
	width  int
	height int

	quitting bool
}

// NewModel constructs the form with defaults applied.
func NewModel(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Loader == nil {
		opts.Loader = imageload.NewLoader(opts.Logger, imageload.Options{})
	}
	if opts.Submitter == nil {
		opts.Submitter = submit.NewLogSubmitter(opts.Logger, 0)
	}
	if opts.Zones == nil {
		opts.Zones = zone.New()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Initial == (customizer.FormData{}) {
		opts.Initial = customizer.Defaults()
	}
	if _, err := components.ParseThemeName(string(opts.Theme)); err != nil {
		opts.Theme = components.ThemeLight
	}
	if opts.StartDir == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.StartDir = wd
		}
	}

	input := customizer.InputFrom(opts.Initial)

	height := newNumberInput("cm")
	height.SetValue(input.Height)
	weight := newNumberInput("kg")
	weight.SetValue(input.Weight)

	text := textarea.New()
	text.Placeholder = "Enter text to print on your T-shirt..."
	text.ShowLineNumbers = false
	text.Prompt = ""
	text.SetHeight(customizer.MaxTextLines)
	text.SetWidth(40)
	text.SetValue(customizer.ClampLines(input.Text))

	picker := filepicker.New()
	picker.AllowedTypes = imageload.PickerExtensions
	picker.CurrentDirectory = opts.StartDir
	picker.AutoHeight = false
	picker.SetHeight(pickerHeight)

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:         opts.Context,
		loader:      opts.Loader,
		submitter:   opts.Submitter,
		log:         opts.Logger,
		zones:       opts.Zones,
		now:         opts.Now,
		theme:       opts.Theme,
		keys:        Keys,
		help:        help.New(),
		heightInput: height,
		weightInput: weight,
		build:       input.Build,
		text:        text,
		focus:       focusHeight,
		picker:      picker,
		spinner:     s,
		width:       80,
		height:      24,
	}
	m.applyTheme()
	m.applyFocus()
	return m
}

func newNumberInput(unit string) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 3
	ti.Width = 5
	ti.Prompt = ""
	ti.Placeholder = unit
	return ti
}

// Init starts the cursor blink for the focused control.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Theme returns the active theme.
func (m Model) Theme() components.ThemeName {
	return m.theme
}

// Image returns the uploaded image, if any.
func (m Model) Image() *imageload.Image {
	return m.image
}

// Submitting reports whether a submission is in flight.
func (m Model) Submitting() bool {
	return m.submitting
}

// Errors returns the field errors from the latest validation.
func (m Model) Errors() customizer.FieldErrors {
	return m.errs
}

// Status returns the latest submission outcome, if any.
func (m Model) Status() *Status {
	return m.status
}

// Input returns the raw control values.
func (m Model) Input() customizer.Input {
	return customizer.Input{
		Height: m.heightInput.Value(),
		Weight: m.weightInput.Value(),
		Build:  m.build,
		Text:   m.text.Value(),
	}
}

// Text returns the current shirt text.
func (m Model) Text() string {
	return m.text.Value()
}

// Build returns the selected body build.
func (m Model) Build() customizer.Build {
	return m.build
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// applyTheme rebuilds every style from the active theme.
func (m *Model) applyTheme() {
	m.styles = newStyles(components.ContextFor(m.theme))
	m.styles.applyInput(&m.heightInput)
	m.styles.applyInput(&m.weightInput)
	m.styles.applyTextarea(&m.text)
	m.picker.Styles = m.styles.picker
	m.spinner.Style = m.styles.spinner
	m.help.Styles = m.styles.help
}

// applyFocus focuses the control under m.focus and blurs the rest.
func (m *Model) applyFocus() tea.Cmd {
	m.heightInput.Blur()
	m.weightInput.Blur()
	m.text.Blur()

	switch m.focus {
	case focusHeight:
		return m.heightInput.Focus()
	case focusWeight:
		return m.weightInput.Focus()
	case focusText:
		return m.text.Focus()
	}
	return nil
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	idx := 0
	for i, target := range focusOrder {
		if target == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(focusOrder)) % len(focusOrder)
	m.focus = focusOrder[idx]
	return m.applyFocus()
}

func (m *Model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	return m.applyFocus()
}

func fieldFocus(field customizer.Field) focusTarget {
	switch field {
	case customizer.FieldWeight:
		return focusWeight
	case customizer.FieldBuild:
		return focusBuild
	case customizer.FieldText:
		return focusText
	default:
		return focusHeight
	}
}
