package imageload

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPreviewSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		w, h             int
		width, maxRows   int
		wantCols, wantRs int
	}{
		{name: "wide", w: 100, h: 50, width: 24, maxRows: 12, wantCols: 24, wantRs: 6},
		{name: "square", w: 64, h: 64, width: 24, maxRows: 12, wantCols: 24, wantRs: 12},
		{name: "tall is capped", w: 10, h: 1000, width: 24, maxRows: 12, wantCols: 1, wantRs: 12},
		{name: "tiny image keeps pixels", w: 3, h: 2, width: 24, maxRows: 12, wantCols: 3, wantRs: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cols, rows := previewSize(tt.w, tt.h, tt.width, tt.maxRows)
			assert.Equal(t, tt.wantCols, cols)
			assert.Equal(t, tt.wantRs, rows)
		})
	}
}

func TestRenderPreviewDimensions(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	out := RenderPreview(img, 10, 10)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 10, lipgloss.Width(line))
	}
}

func TestRenderPreviewTransparentPixels(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})

	out := RenderPreview(img, 2, 1)
	assert.Equal(t, 2, lipgloss.Width(out))
	assert.True(t, strings.HasSuffix(out, " "), "fully transparent column renders blank")
}

func TestRenderPreviewEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RenderPreview(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 10, 10))
}
