package image

// TilePattern samples a bitmap placed in device space by an affine
// transform, with independent wrapping on each axis.
type TilePattern struct {
	image    *ImageBuf
	inverse  Affine
	singular bool
	wrapX    Wrap
	wrapY    Wrap
	filter   Filter
}

// NewTilePattern creates a pattern from an image and a transform mapping
// bitmap pixel space to device space. A singular transform yields a
// pattern that samples transparent everywhere.
//
// Returns nil if img is nil.
func NewTilePattern(img *ImageBuf, transform Affine, wrapX, wrapY Wrap, filter Filter) *TilePattern {
	if img == nil {
		return nil
	}
	inv, ok := transform.Invert()
	return &TilePattern{
		image:    img,
		inverse:  inv,
		singular: !ok,
		wrapX:    wrapX,
		wrapY:    wrapY,
		filter:   filter,
	}
}

// Sample returns the non-premultiplied color at device coordinates (x, y).
func (p *TilePattern) Sample(x, y float64) (r, g, b, a byte) {
	if p == nil || p.singular {
		return 0, 0, 0, 0
	}
	u, v := p.inverse.TransformPoint(x, y)
	return SampleAt(p.image, u, v, p.wrapX, p.wrapY, p.filter)
}
