package svgpaint

import (
	intImage "github.com/gogpu/svgpaint/internal/image"
)

// Brush is a resolved paint style, ready to hand to a rasterizer.
// This is a sealed interface: only types in this package implement it.
//
// Brush types produced by the resolver:
//   - SolidBrush: a single color (degenerate gradients)
//   - LinearGradientBrush, RadialGradientBrush: gradient paint servers
//   - TiledBitmapBrush: pattern paint servers
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the color at the given device coordinates.
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// TiledBitmapBrush paints a bitmap placed in device space by Matrix,
// optionally repeated along each axis. It is the resolved form of a
// pattern paint server.
//
// Example:
//
//	b := svgpaint.NewTiledBitmapBrush(tile, svgpaint.Translate(10, 10), true, true)
//	c := b.ColorAt(15.5, 12.5)
type TiledBitmapBrush struct {
	// Bitmap is the sampled tile content.
	Bitmap *ImageBuf
	// Matrix maps bitmap pixel coordinates to device coordinates.
	Matrix Matrix
	// RepeatX and RepeatY tile the bitmap along each axis; outside a
	// non-repeating axis the brush is transparent.
	RepeatX, RepeatY bool
	// Filter selects how the bitmap is sampled.
	Filter ImageFilter

	sampler *intImage.TilePattern
}

// NewTiledBitmapBrush creates a bilinear-filtered tiled bitmap brush.
func NewTiledBitmapBrush(bitmap *ImageBuf, m Matrix, repeatX, repeatY bool) *TiledBitmapBrush {
	b := &TiledBitmapBrush{
		Bitmap:  bitmap,
		Matrix:  m,
		RepeatX: repeatX,
		RepeatY: repeatY,
		Filter:  FilterBilinear,
	}
	b.sampler = b.newSampler()
	return b
}

func (*TiledBitmapBrush) brushMarker() {}

func (b *TiledBitmapBrush) newSampler() *intImage.TilePattern {
	wrap := func(repeat bool) intImage.Wrap {
		if repeat {
			return intImage.WrapRepeat
		}
		return intImage.WrapNone
	}
	m := b.Matrix
	return intImage.NewTilePattern(b.Bitmap, intImage.NewAffine(m.A, m.B, m.C, m.D, m.E, m.F),
		wrap(b.RepeatX), wrap(b.RepeatY), b.Filter)
}

// Refresh rebuilds the cached sampler. Call it after modifying the
// exported fields of a brush created by NewTiledBitmapBrush.
func (b *TiledBitmapBrush) Refresh() {
	b.sampler = b.newSampler()
}

// ColorAt implements Brush.
func (b *TiledBitmapBrush) ColorAt(x, y float64) RGBA {
	s := b.sampler
	if s == nil {
		s = b.newSampler()
	}
	r, g, bl, a := s.Sample(x, y)
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(bl) / 255,
		A: float64(a) / 255,
	}
}
