package equation

import "github.com/tsawler/presenta/model"

// Rasterizer converts equation source text into an image reference (a file
// path or URI a renderer can embed). The kind distinguishes inline from
// display rendering, which typically differ in baseline and sizing.
type Rasterizer interface {
	Rasterize(source string, kind model.EquationKind) (string, error)
}

// RasterizeFunc adapts a plain function to the Rasterizer interface.
type RasterizeFunc func(source string, kind model.EquationKind) (string, error)

// Rasterize calls f.
func (f RasterizeFunc) Rasterize(source string, kind model.EquationKind) (string, error) {
	return f(source, kind)
}
