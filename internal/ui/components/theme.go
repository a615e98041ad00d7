package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName identifies one of the built-in themes. Themes form a fixed cycle
// light -> dark -> colorful -> light.
type ThemeName string

const (
	ThemeLight    ThemeName = "light"
	ThemeDark     ThemeName = "dark"
	ThemeColorful ThemeName = "colorful"
)

// ThemeNames lists the theme cycle in order.
var ThemeNames = []ThemeName{ThemeLight, ThemeDark, ThemeColorful}

// ParseThemeName converts user input into a ThemeName.
func ParseThemeName(value string) (ThemeName, error) {
	name := ThemeName(strings.ToLower(strings.TrimSpace(value)))
	for _, candidate := range ThemeNames {
		if candidate == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q (expected light, dark or colorful)", value)
}

// Next returns the theme after n in the cycle. Unknown names restart the
// cycle at light.
func (n ThemeName) Next() ThemeName {
	for i, candidate := range ThemeNames {
		if candidate == n {
			return ThemeNames[(i+1)%len(ThemeNames)]
		}
	}
	return ThemeLight
}

// Label returns the capitalised display name.
func (n ThemeName) Label() string {
	if n == "" {
		return ""
	}
	s := string(n)
	return strings.ToUpper(s[:1]) + s[1:]
}

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
	BorderVariantHidden
)

type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantMuted
)

type AlertVariant int

const (
	AlertVariantSuccess AlertVariant = iota
	AlertVariantError
	AlertVariantWarning
	AlertVariantInfo
)

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: the background or brand color
//   - OnBase: text/content color that reads well on Base
//   - Muted: a quieter variant of Base for borders and hints
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Canvas   ColourSet
	Surface  ColourSet
	Input    ColourSet
	Dropzone ColourSet
	Primary  ColourSet
	Success  ColourSet
	Warning  ColourSet
	Danger   ColourSet
	Info     ColourSet
	Neutral  ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
	Hidden  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Hint     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// InputStyles describes default/focus styles for input controls.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[interface{}]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Build one with ThemeFor and pass it
// through RenderContext; switching themes means building the other one.
type Theme struct {
	Name       ThemeName
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
}

// ThemeFor returns the theme registered under name, falling back to light.
func ThemeFor(name ThemeName) Theme {
	switch name {
	case ThemeDark:
		return DarkTheme()
	case ThemeColorful:
		return ColorfulTheme()
	default:
		return LightTheme()
	}
}

// LightTheme is a gray-on-white theme with blue accents.
func LightTheme() Theme {
	return buildTheme(ThemeLight, Palette{
		Canvas:   ColourSet{Base: "#f3f4f6", OnBase: "#111827", Muted: "#6b7280", Contrast: "#3b82f6"},
		Surface:  ColourSet{Base: "#ffffff", OnBase: "#111827", Muted: "#e5e7eb", Contrast: "#3b82f6"},
		Input:    ColourSet{Base: "#ffffff", OnBase: "#111827", Muted: "#d1d5db", Contrast: "#3b82f6"},
		Dropzone: ColourSet{Base: "#f9fafb", OnBase: "#374151", Muted: "#d1d5db", Contrast: "#3b82f6"},
		Primary:  ColourSet{Base: "#3b82f6", OnBase: "#ffffff", Muted: "#2563eb", Contrast: "#facc15"},
		Success:  ColourSet{Base: "#22c55e", OnBase: "#052e16", Muted: "#16a34a", Contrast: "#f8fafc"},
		Warning:  ColourSet{Base: "#eab308", OnBase: "#422006", Muted: "#ca8a04", Contrast: "#111827"},
		Danger:   ColourSet{Base: "#ef4444", OnBase: "#ffffff", Muted: "#dc2626", Contrast: "#f8fafc"},
		Info:     ColourSet{Base: "#06b6d4", OnBase: "#083344", Muted: "#0891b2", Contrast: "#f8fafc"},
		Neutral:  ColourSet{Base: "#e5e7eb", OnBase: "#1f2937", Muted: "#9ca3af", Contrast: "#111827"},
	})
}

// DarkTheme is a gray-900 theme with white text.
func DarkTheme() Theme {
	return buildTheme(ThemeDark, Palette{
		Canvas:   ColourSet{Base: "#111827", OnBase: "#ffffff", Muted: "#9ca3af", Contrast: "#60a5fa"},
		Surface:  ColourSet{Base: "#1f2937", OnBase: "#ffffff", Muted: "#374151", Contrast: "#60a5fa"},
		Input:    ColourSet{Base: "#374151", OnBase: "#ffffff", Muted: "#4b5563", Contrast: "#60a5fa"},
		Dropzone: ColourSet{Base: "#374151", OnBase: "#e5e7eb", Muted: "#4b5563", Contrast: "#60a5fa"},
		Primary:  ColourSet{Base: "#2563eb", OnBase: "#ffffff", Muted: "#1d4ed8", Contrast: "#facc15"},
		Success:  ColourSet{Base: "#4ade80", OnBase: "#022c22", Muted: "#15803d", Contrast: "#f8fafc"},
		Warning:  ColourSet{Base: "#facc15", OnBase: "#422006", Muted: "#a16207", Contrast: "#111827"},
		Danger:   ColourSet{Base: "#f87171", OnBase: "#450a0a", Muted: "#b91c1c", Contrast: "#f8fafc"},
		Info:     ColourSet{Base: "#22d3ee", OnBase: "#04121a", Muted: "#0e7490", Contrast: "#f8fafc"},
		Neutral:  ColourSet{Base: "#334155", OnBase: "#e5e7eb", Muted: "#6b7280", Contrast: "#f8fafc"},
	})
}

// ColorfulTheme is a purple/pink theme with amber accents.
func ColorfulTheme() Theme {
	return buildTheme(ThemeColorful, Palette{
		Canvas:   ColourSet{Base: "#a855f7", OnBase: "#ffffff", Muted: "#f5d0fe", Contrast: "#ec4899"},
		Surface:  ColourSet{Base: "#b26cf8", OnBase: "#ffffff", Muted: "#d8b4fe", Contrast: "#ec4899"},
		Input:    ColourSet{Base: "#c189f9", OnBase: "#ffffff", Muted: "#e9d5ff", Contrast: "#f59e0b"},
		Dropzone: ColourSet{Base: "#c189f9", OnBase: "#ffffff", Muted: "#e9d5ff", Contrast: "#ec4899"},
		Primary:  ColourSet{Base: "#f59e0b", OnBase: "#ffffff", Muted: "#d97706", Contrast: "#ec4899"},
		Success:  ColourSet{Base: "#bbf7d0", OnBase: "#14532d", Muted: "#4ade80", Contrast: "#ffffff"},
		Warning:  ColourSet{Base: "#fde68a", OnBase: "#713f12", Muted: "#f59e0b", Contrast: "#ffffff"},
		Danger:   ColourSet{Base: "#fecaca", OnBase: "#7f1d1d", Muted: "#fca5a5", Contrast: "#ffffff"},
		Info:     ColourSet{Base: "#a5f3fc", OnBase: "#164e63", Muted: "#22d3ee", Contrast: "#ffffff"},
		Neutral:  ColourSet{Base: "#ec4899", OnBase: "#ffffff", Muted: "#f9a8d4", Contrast: "#ffffff"},
	})
}

func buildTheme(name ThemeName, palette Palette) Theme {
	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
		Hidden:  lipgloss.HiddenBorder(),
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Input.Muted).
			BorderBackground(palette.Surface.Base).
			Padding(0, 1).
			Background(palette.Input.Base).
			Foreground(palette.Input.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(palette.Input.Contrast).
			BorderBackground(palette.Surface.Base).
			Padding(0, 1).
			Background(palette.Input.Base).
			Foreground(palette.Input.OnBase),
	}

	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerAlertVariants(variants)

	return Theme{
		Name:       name,
		Palette:    palette,
		Borders:    borders,
		Typography: typographyFor(palette),
		Input:      input,
		Variants:   variants,
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		PaddingXY(0, 3),
	))
	registry.Register(ButtonVariantMuted, NewCompositeStrategy(
		Background(PaletteNeutral),
		PaddingXY(0, 3),
	))
}

func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantSuccess, NewCompositeStrategy(Background(PaletteSuccess)))
	registry.Register(AlertVariantWarning, NewCompositeStrategy(Background(PaletteWarning)))
	registry.Register(AlertVariantError, NewCompositeStrategy(Background(PaletteDanger)))
	registry.Register(AlertVariantInfo, NewCompositeStrategy(Background(PaletteInfo)))
}

func typographyFor(p Palette) TypographyScale {
	base := lipgloss.NewStyle().
		Foreground(p.Surface.OnBase).
		Background(p.Surface.Base)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true),
		Subtitle: base.Bold(true).Foreground(p.Surface.Contrast),
		Label:    base.Bold(true),
		Hint:     base.Foreground(p.Surface.Muted).Faint(true),
		Code: base.
			Foreground(p.Neutral.OnBase).
			Background(p.Neutral.Base).
			Padding(0, 1),
		Emphasis: base.Bold(true),
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantHidden:
		return theme.Borders.Hidden
	default:
		return theme.Borders.None
	}
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	if state == InputStateFocus {
		return theme.Input.Focus
	}
	return theme.Input.Default
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PaletteCanvas   PaletteSlot = func(p Palette) ColourSet { return p.Canvas }
	PaletteSurface  PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteInput    PaletteSlot = func(p Palette) ColourSet { return p.Input }
	PaletteDropzone PaletteSlot = func(p Palette) ColourSet { return p.Dropzone }
	PalettePrimary  PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSuccess  PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning  PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger   PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo     PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral  PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColour colours the border with the slot's muted shade.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Muted)
	}
}

func PaddingXY(vertical, horizontal int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(vertical, horizontal)
	}
}

// Typography inherits one of the theme's typography presets.
func Typography(pick func(TypographyScale) lipgloss.Style) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(pick(theme.Typography))
	}
}
