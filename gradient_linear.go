package svgpaint

// LinearGradientBrush represents a linear color transition between two
// points of gradient space. Colors are interpolated in the space chosen by
// Interpolation, sRGB unless set to linearRGB.
//
// Example:
//
//	gradient := svgpaint.NewLinearGradientBrush(0, 0, 100, 0).
//	    AddColorStop(0, svgpaint.Black).
//	    AddColorStop(1, svgpaint.White)
type LinearGradientBrush struct {
	Start  Point       // Start point of the gradient
	End    Point       // End point of the gradient
	Stops  []ColorStop // Color stops, sorted by offset
	Extend ExtendMode  // How gradient extends beyond bounds

	// Interpolation is the color space stops are blended in.
	Interpolation ColorInterpolation

	space gradientSpace
}

// NewLinearGradientBrush creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start:  Point{X: x0, Y: y0},
		End:    Point{X: x1, Y: y1},
		Extend: ExtendPad,
		space:  newGradientSpace(Identity()),
	}
}

// AddColorStop adds a color stop at the specified offset, keeping stops
// sorted. Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	g.Stops = sortStops(append(g.Stops, ColorStop{Offset: offset, Color: c}))
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) SetExtend(mode ExtendMode) *LinearGradientBrush {
	g.Extend = mode
	return g
}

// SetTransform sets the mapping from gradient space to device space.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) SetTransform(m Matrix) *LinearGradientBrush {
	g.space = newGradientSpace(m)
	return g
}

// Transform returns the mapping from gradient space to device space.
func (g *LinearGradientBrush) Transform() Matrix { return g.space.transform }

func (*LinearGradientBrush) brushMarker() {}

// ColorAt returns the color at device point (x, y).
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	p, ok := g.space.toGradient(x, y)
	if !ok {
		return Transparent
	}

	d := g.End.Sub(g.Start)
	lengthSq := d.Dot(d)
	if lengthSq == 0 {
		return lastStopColor(g.Stops)
	}

	// Project onto the gradient vector.
	t := p.Sub(g.Start).Dot(d) / lengthSq
	return colorAtOffset(g.Stops, t, g.Extend, g.Interpolation)
}
