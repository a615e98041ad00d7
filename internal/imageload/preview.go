package imageload

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderPreview draws img with upper half blocks, two pixel rows per
// terminal row, scaled by nearest neighbour to at most width cells and
// maxRows rows.
func RenderPreview(img image.Image, width, maxRows int) string {
	bounds := img.Bounds()
	if bounds.Empty() || width <= 0 || maxRows <= 0 {
		return ""
	}

	cols, rows := previewSize(bounds.Dx(), bounds.Dy(), width, maxRows)
	scaleX := float64(bounds.Dx()) / float64(cols)
	scaleY := float64(bounds.Dy()) / float64(rows*2)

	sample := func(cx, py int) (color.NRGBA, bool) {
		x := bounds.Min.X + int(float64(cx)*scaleX)
		y := bounds.Min.Y + int(float64(py)*scaleY)
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		return c, c.A >= 128
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			top, topOK := sample(col, row*2)
			bottom, bottomOK := sample(col, row*2+1)
			b.WriteString(cell(top, topOK, bottom, bottomOK))
		}
	}
	return b.String()
}

func previewSize(w, h, width, maxRows int) (int, int) {
	cols := width
	if w < cols {
		cols = w
	}
	rows := (h*cols/w + 1) / 2
	if rows > maxRows {
		rows = maxRows
		cols = w * rows * 2 / h
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func cell(top color.NRGBA, topOK bool, bottom color.NRGBA, bottomOK bool) string {
	switch {
	case topOK && bottomOK:
		return lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bottom)).Render("▀")
	case topOK:
		return lipgloss.NewStyle().Foreground(hex(top)).Render("▀")
	case bottomOK:
		return lipgloss.NewStyle().Foreground(hex(bottom)).Render("▄")
	default:
		return " "
	}
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
