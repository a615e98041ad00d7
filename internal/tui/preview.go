package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/teeform/internal/customizer"
	"github.com/alexisbeaulieu97/teeform/internal/imageload"
)

const (
	// shirtInterior is the printable width of the shirt body, in cells.
	shirtInterior = 11
	// shirtBodyRows holds a blank row above and below the text rows.
	shirtBodyRows = customizer.MaxTextLines + 2
)

var (
	shirtTop = []string{
		"   ____       ____   ",
		"  /    \\_____/    \\  ",
		" /                 \\ ",
		"/___             ___\\",
	}
	shirtBottom = "    |___________|    "
)

// renderShirt draws a shirt outline with up to three lines of text printed
// on the chest.
func renderShirt(s styles, text string, img *imageload.Image) string {
	lines := customizer.Lines(customizer.ClampLines(text))

	rows := make([]string, 0, len(shirtTop)+shirtBodyRows+3)
	for _, row := range shirtTop {
		rows = append(rows, s.shirt.Render(row))
	}

	rows = append(rows, shirtRow(s, ""))
	for i := 0; i < customizer.MaxTextLines; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, shirtRow(s, line))
	}
	rows = append(rows, shirtRow(s, ""))
	rows = append(rows, s.shirt.Render(shirtBottom))

	if img != nil {
		rows = append(rows, "", s.muted.Render("Design: "+imageload.DisplayName(img.Name, 24)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func shirtRow(s styles, line string) string {
	line = imageload.DisplayName(strings.TrimRight(line, " "), shirtInterior)
	pad := max(shirtInterior-lipgloss.Width(line), 0)
	left := pad / 2
	right := pad - left

	return s.shirt.Render("    |"+strings.Repeat(" ", left)) +
		s.shirtInk.Render(line) +
		s.shirt.Render(strings.Repeat(" ", right)+"|    ")
}
