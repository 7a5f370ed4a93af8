package charts

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/tsawler/htmldeck/model"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatalf("png.Encode() failed: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestFileName(t *testing.T) {
	r := NewResolver("images")
	tests := []struct {
		in   string
		want string
	}{
		{"[ROC Curve]", "ROC_Curve.png"},
		{"Confusion-Matrix", "Confusion_Matrix.png"},
		{"[Feature Importance - Top 10]", "Feature_Importance___Top_10.png"},
		{"plain", "plain.png"},
		{"", ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := r.FileName(tt.in); got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	custom := &Resolver{Dir: "x", Ext: ".jpg"}
	if got := custom.FileName("a b"); got != "a_b.jpg" {
		t.Errorf("custom ext FileName() = %q", got)
	}
	if got := (&Resolver{}).FileName("a"); got != "a.png" {
		t.Errorf("zero Resolver FileName() = %q", got)
	}
}

func TestResolve_Found(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "ROC_Curve.png"), 40, 20)

	img, err := NewResolver(dir).Resolve("[ROC Curve]")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if img.Format != model.ImageFormatPNG {
		t.Errorf("Format = %v, want PNG", img.Format)
	}
	if img.PixelWidth != 40 || img.PixelHeight != 20 {
		t.Errorf("size = %dx%d, want 40x20", img.PixelWidth, img.PixelHeight)
	}
	if img.AltText != "[ROC Curve]" || img.Source != filepath.Join(dir, "ROC_Curve.png") {
		t.Errorf("AltText/Source = %q/%q", img.AltText, img.Source)
	}
}

func TestResolve_Missing(t *testing.T) {
	_, err := NewResolver(t.TempDir()).Resolve("nothing here")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}

	_, err = NewResolver(filepath.Join(t.TempDir(), "no-such-dir")).Resolve("x")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing directory error = %v, want ErrNotFound", err)
	}
}

func TestResolve_DirectoryNamedLikeImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "chart.png"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := NewResolver(dir).Resolve("chart"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}
}

func TestResolve_StaysInsideDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "images")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(root, "secret.png"), 10, 10)

	tests := []string{"[../secret]", "../secret", "[" + filepath.Join(root, "secret") + "]"}
	for _, placeholder := range tests {
		t.Run(placeholder, func(t *testing.T) {
			img, err := NewResolver(dir).Resolve(placeholder)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Resolve() = %v, %v; want ErrNotFound", img, err)
			}
		})
	}
}

func TestResolve_Unreadable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewResolver(dir).Resolve("broken")
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("Resolve() error = %v, want ErrUnreadable", err)
	}
}

func TestLoad_Downscale(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(200, 100)); err != nil {
		t.Fatal(err)
	}

	img, err := Load(buf.Bytes(), 50)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if img.PixelWidth != 50 || img.PixelHeight != 25 {
		t.Errorf("size = %dx%d, want 50x25", img.PixelWidth, img.PixelHeight)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil || cfg.Width != 50 {
		t.Errorf("re-encoded data = %+v, %v", cfg, err)
	}

	// Narrow images are passed through untouched.
	small, err := Load(buf.Bytes(), 500)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(small.Data, buf.Bytes()) {
		t.Error("image within limit should not be re-encoded")
	}
}

func TestLoad_ConvertsBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testImage(8, 4)); err != nil {
		t.Fatal(err)
	}

	img, err := Load(buf.Bytes(), 0)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if img.Format != model.ImageFormatPNG {
		t.Errorf("Format = %v, want PNG", img.Format)
	}
	if _, err := png.Decode(bytes.NewReader(img.Data)); err != nil {
		t.Errorf("converted data is not PNG: %v", err)
	}
}
