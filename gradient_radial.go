package svgpaint

import "math"

// RadialGradientBrush represents a radial color transition from a focal
// point towards a circle of gradient space.
//
// Example:
//
//	spotlight := svgpaint.NewRadialGradientBrush(50, 50, 0, 50).
//	    SetFocus(30, 30).
//	    AddColorStop(0, svgpaint.White).
//	    AddColorStop(1, svgpaint.Black)
type RadialGradientBrush struct {
	Center      Point       // Center of the gradient circle
	Focus       Point       // Focal point (can differ from center)
	StartRadius float64     // Focal radius, where the gradient begins (t=0)
	EndRadius   float64     // Outer radius where the gradient ends (t=1)
	Stops       []ColorStop // Color stops, sorted by offset
	Extend      ExtendMode  // How gradient extends beyond bounds

	// Interpolation is the color space stops are blended in.
	Interpolation ColorInterpolation

	space gradientSpace
}

// NewRadialGradientBrush creates a new radial gradient around (cx, cy).
// Focus defaults to center.
func NewRadialGradientBrush(cx, cy, startRadius, endRadius float64) *RadialGradientBrush {
	center := Point{X: cx, Y: cy}
	return &RadialGradientBrush{
		Center:      center,
		Focus:       center,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Extend:      ExtendPad,
		space:       newGradientSpace(Identity()),
	}
}

// SetFocus sets the focal point of the gradient.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) SetFocus(fx, fy float64) *RadialGradientBrush {
	g.Focus = Point{X: fx, Y: fy}
	return g
}

// AddColorStop adds a color stop at the specified offset, keeping stops
// sorted. Returns the gradient for method chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, c RGBA) *RadialGradientBrush {
	g.Stops = sortStops(append(g.Stops, ColorStop{Offset: offset, Color: c}))
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) SetExtend(mode ExtendMode) *RadialGradientBrush {
	g.Extend = mode
	return g
}

// SetTransform sets the mapping from gradient space to device space.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) SetTransform(m Matrix) *RadialGradientBrush {
	g.space = newGradientSpace(m)
	return g
}

// Transform returns the mapping from gradient space to device space.
func (g *RadialGradientBrush) Transform() Matrix { return g.space.transform }

func (*RadialGradientBrush) brushMarker() {}

// ColorAt returns the color at device point (x, y).
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	p, ok := g.space.toGradient(x, y)
	if !ok {
		return Transparent
	}
	if g.EndRadius-g.StartRadius == 0 {
		return lastStopColor(g.Stops)
	}
	return colorAtOffset(g.Stops, g.computeT(p.X, p.Y), g.Extend, g.Interpolation)
}

func (g *RadialGradientBrush) computeT(x, y float64) float64 {
	if g.Focus == g.Center {
		dist := math.Hypot(x-g.Center.X, y-g.Center.Y)
		return (dist - g.StartRadius) / (g.EndRadius - g.StartRadius)
	}
	return g.computeTFocal(x, y)
}

// computeTFocal intersects the ray from the focus through (x, y) with the
// end circle; t is the fraction of that ray the point covers.
func (g *RadialGradientBrush) computeTFocal(x, y float64) float64 {
	dx := x - g.Focus.X
	dy := y - g.Focus.Y
	fx := g.Center.X - g.Focus.X
	fy := g.Center.Y - g.Focus.Y

	// |t*(dx,dy) - (fx,fy)|^2 = EndRadius^2
	a := dx*dx + dy*dy
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - g.EndRadius*g.EndRadius
	if a == 0 {
		return 0
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 1
	}
	sqrtD := math.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}
	return 1 / t
}
