// Package imageload reads user supplied design images into an in-memory
// reference: sniffed MIME type, pixel size, a data URL and a terminal preview.
package imageload

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/alexisbeaulieu97/teeform/internal/logger"
	apperrors "github.com/alexisbeaulieu97/teeform/pkg/errors"
)

// PickerExtensions are the file extensions offered by the file picker.
var PickerExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg"}

// DefaultPreviewWidth is the thumbnail width in terminal cells.
const DefaultPreviewWidth = 24

// Image is an uploaded design. Width, Height and Preview are zero when the
// format is an image type the decoder does not understand (svg, webp).
type Image struct {
	Name    string
	Path    string
	MIME    string
	Size    int64
	Width   int
	Height  int
	DataURL string
	Preview string
}

// Decoded reports whether pixel data was decoded for the image.
func (img *Image) Decoded() bool {
	return img != nil && img.Width > 0 && img.Height > 0
}

// Options configures a Loader.
type Options struct {
	PreviewWidth   int
	PreviewMaxRows int
}

// Loader turns files into Images.
type Loader struct {
	log  *logger.Logger
	opts Options
}

// NewLoader constructs a Loader. A nil logger discards output.
func NewLoader(log *logger.Logger, opts Options) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	if opts.PreviewWidth <= 0 {
		opts.PreviewWidth = DefaultPreviewWidth
	}
	if opts.PreviewMaxRows <= 0 {
		opts.PreviewMaxRows = opts.PreviewWidth / 2
	}
	return &Loader{log: log, opts: opts}
}

// Load reads path and builds an Image. Files whose sniffed MIME type is not
// image/* are rejected with an error wrapping apperrors.ErrNotImage.
func (l *Loader) Load(ctx context.Context, path string) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewImageError(path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.NewImageError(path, err)
	}
	if info.IsDir() {
		return nil, apperrors.NewImageError(path, errors.New("is a directory"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewImageError(path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewImageError(path, err)
	}

	mime := sniff(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, apperrors.NewImageError(path, fmt.Errorf("%s: %w", mime, apperrors.ErrNotImage))
	}

	img := &Image{
		Name:    filepath.Base(path),
		Path:    path,
		MIME:    mime,
		Size:    int64(len(data)),
		DataURL: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	switch {
	case errors.Is(err, image.ErrFormat):
		l.log.WithFields(map[string]any{"path": path, "mime": mime}).Debug("no decoder for image format, skipping preview")
	case err != nil:
		return nil, apperrors.NewImageError(path, fmt.Errorf("decode %s: %w", mime, err))
	default:
		bounds := decoded.Bounds()
		img.Width = bounds.Dx()
		img.Height = bounds.Dy()
		img.Preview = RenderPreview(decoded, l.opts.PreviewWidth, l.opts.PreviewMaxRows)
	}

	l.log.WithFields(map[string]any{
		"path":   path,
		"mime":   mime,
		"bytes":  img.Size,
		"width":  img.Width,
		"height": img.Height,
	}).Info("image loaded")

	return img, nil
}

func sniff(data []byte) string {
	mime := mimetype.Detect(data).String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return strings.TrimSpace(mime)
}
