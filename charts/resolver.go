// Package charts maps chart placeholder names to image files and loads them
// for embedding.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/htmldeck/model"
)

// DefaultExt is appended to normalized placeholder names.
const DefaultExt = ".png"

var (
	// ErrNotFound is returned when no image file exists for a placeholder.
	ErrNotFound = errors.New("chart image not found")
	// ErrUnreadable is returned when the image file cannot be decoded.
	ErrUnreadable = errors.New("chart image unreadable")
)

// Resolver finds chart images inside a directory.
type Resolver struct {
	Dir string
	Ext string // defaults to DefaultExt
	// MaxPixelWidth downscales wider images; 0 disables resizing.
	MaxPixelWidth int
}

// NewResolver returns a resolver for dir with default settings.
func NewResolver(dir string) *Resolver {
	return &Resolver{Dir: dir, Ext: DefaultExt}
}

var nameReplacer = strings.NewReplacer("[", "", "]", "", " ", "_", "-", "_")

// FileName maps a placeholder name to its image file name: brackets are
// removed, spaces and hyphens become underscores and the extension is
// appended. "[ROC Curve]" becomes "ROC_Curve.png".
func (r *Resolver) FileName(placeholder string) string {
	ext := r.Ext
	if ext == "" {
		ext = DefaultExt
	}
	return nameReplacer.Replace(placeholder) + ext
}

// Path returns the full path of the image file for placeholder. Resolve
// refuses names that are not local to Dir.
func (r *Resolver) Path(placeholder string) string {
	return filepath.Join(r.Dir, r.FileName(placeholder))
}

// Resolve loads the image for placeholder. The returned image has no
// position; callers set its bounding box.
func (r *Resolver) Resolve(placeholder string) (*model.Image, error) {
	name := r.FileName(placeholder)
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %s escapes the image directory", ErrNotFound, name)
	}
	path := filepath.Join(r.Dir, name)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	img, err := Load(data, r.MaxPixelWidth)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	img.Source = path
	img.AltText = placeholder
	return img, nil
}

// Load decodes data into an embeddable image. PNG, JPEG and GIF are kept as
// they are; other formats are converted to PNG. Images wider than
// maxWidth pixels are scaled down to maxWidth, keeping the aspect ratio.
func Load(data []byte, maxWidth int) (*model.Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}

	out := &model.Image{
		Data:        data,
		Format:      formatOf(format),
		PixelWidth:  cfg.Width,
		PixelHeight: cfg.Height,
	}

	oversized := maxWidth > 0 && cfg.Width > maxWidth
	if out.Format != model.ImageFormatUnknown && !oversized {
		return out, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if oversized {
		src = resize.Resize(uint(maxWidth), 0, src, resize.Lanczos3)
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, src); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}

	bounds := src.Bounds()
	out.Data = buf.Bytes()
	out.Format = model.ImageFormatPNG
	out.PixelWidth = bounds.Dx()
	out.PixelHeight = bounds.Dy()
	return out, nil
}

// formatOf maps a registered decoder name to the formats PowerPoint embeds
// natively.
func formatOf(name string) model.ImageFormat {
	switch name {
	case "png":
		return model.ImageFormatPNG
	case "jpeg":
		return model.ImageFormatJPEG
	case "gif":
		return model.ImageFormatGIF
	default:
		return model.ImageFormatUnknown
	}
}
