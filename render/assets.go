package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Decoders for the image formats slide decks commonly reference.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/presenta/model"
)

// pixelsPerInch converts probed pixel dimensions into slide inches.
const pixelsPerInch = 96.0

// AssetResolver locates image files referenced by a document and probes
// their dimensions. Paths in source markup are usually relative to the
// source file; BaseDir anchors them.
type AssetResolver struct {
	BaseDir string
}

// NewAssetResolver returns a resolver anchored at dir. An empty dir
// resolves relative paths against the working directory.
func NewAssetResolver(dir string) *AssetResolver {
	return &AssetResolver{BaseDir: dir}
}

// Resolve returns the absolute path for an image reference, or an error if
// no file exists there. Absolute references are checked as-is.
func (ar *AssetResolver) Resolve(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("empty image reference")
	}

	p := ref
	if !filepath.IsAbs(p) {
		p = filepath.Join(ar.BaseDir, p)
	}
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("image %s: %w", ref, err)
	}
	return p, nil
}

// ProbeSize reads just enough of an image file to report its pixel
// dimensions. The file is not fully decoded.
func (ar *AssetResolver) ProbeSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// FitSize scales pixel dimensions to fit inside a positioned box while
// keeping the aspect ratio. The returned size is in inches and never
// exceeds the box in either dimension.
func FitSize(pxWidth, pxHeight int, box model.Position) model.Size {
	if pxWidth <= 0 || pxHeight <= 0 || box.Width <= 0 || box.Height <= 0 {
		return model.Size{Width: box.Width, Height: box.Height}
	}

	w := float64(pxWidth) / pixelsPerInch
	h := float64(pxHeight) / pixelsPerInch

	scale := 1.0
	if w > box.Width {
		scale = box.Width / w
	}
	if h*scale > box.Height {
		scale = box.Height / h
	}

	return model.Size{
		Width:  w * scale,
		Height: h * scale,
		Scale:  scale,
	}
}
