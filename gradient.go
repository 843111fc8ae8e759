package svgpaint

import (
	"math"
	"sort"

	"github.com/gogpu/svgpaint/internal/color"
)

// ExtendMode defines how gradients extend beyond their defined bounds
// (the SVG spreadMethod).
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position, stop-opacity applied
}

// normalizeStops clamps offsets to [0, 1] and makes them non-decreasing:
// a stop whose offset is less than a previous one takes the previous
// offset.
func normalizeStops(stops []ColorStop) []ColorStop {
	out := make([]ColorStop, len(stops))
	maxOffset := 0.0
	for i, s := range stops {
		s.Offset = math.Max(clamp01(s.Offset), maxOffset)
		maxOffset = s.Offset
		out[i] = s
	}
	return out
}

// sortStops returns a copy of stops ordered by offset. Stops with equal
// offsets keep their order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAtOffset returns the color at offset t of sorted stops,
// interpolated in the color space of ci.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode, ci ColorInterpolation) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	t = applyExtendMode(t, mode)

	// First stop strictly past t; coincident stops produce a hard edge.
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset > t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s2.Color
	}
	frac := (t - s1.Offset) / (s2.Offset - s1.Offset)
	if ci == ColorInterpolationSRGB {
		return s1.Color.Lerp(s2.Color, frac)
	}
	c := color.Lerp(ci.space(), color.RGBA(s1.Color), color.RGBA(s2.Color), frac)
	return RGBA(c)
}

func lastStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return stops[len(stops)-1].Color
}

// gradientSpace maps device coordinates back into gradient space.
type gradientSpace struct {
	transform Matrix
	inverse   Matrix
	singular  bool
}

func newGradientSpace(m Matrix) gradientSpace {
	inv, ok := m.Inverse()
	return gradientSpace{transform: m, inverse: inv, singular: !ok}
}

func (s gradientSpace) toGradient(x, y float64) (Point, bool) {
	if s.singular {
		return Point{}, false
	}
	return s.inverse.TransformPoint(Pt(x, y)), true
}

// GradientAttrs holds the parsed attributes of a linearGradient or
// radialGradient element. A nil field (or empty Stops) is not set on this
// element and is inherited through the href chain.
type GradientAttrs struct {
	Units     *Units
	Transform *Matrix
	Spread    *ExtendMode

	// linearGradient
	X1, Y1, X2, Y2 *LengthPercentage

	// radialGradient
	CX, CY, R, FX, FY, FR *LengthPercentage

	// Stops are the stop children in document order.
	Stops []ColorStop
}

func isGradient(e *Element) bool { return e.Has(CapGradient) }

func firstGradientAttr[T any](chain []*Element, get func(*GradientAttrs) *T) *T {
	for _, e := range chain {
		if e.gradient == nil {
			continue
		}
		if v := get(e.gradient); v != nil {
			return v
		}
	}
	return nil
}

// EffectiveGradient merges the attributes of gradient element g with
// those inherited through its href chain, which may link linear and radial
// gradients in any mix. Stops come from the first chain member that has
// any.
func EffectiveGradient(g *Element) GradientAttrs {
	chain := linkedChain(g, isGradient)
	out := GradientAttrs{
		Units:     firstGradientAttr(chain, func(a *GradientAttrs) *Units { return a.Units }),
		Transform: firstGradientAttr(chain, func(a *GradientAttrs) *Matrix { return a.Transform }),
		Spread:    firstGradientAttr(chain, func(a *GradientAttrs) *ExtendMode { return a.Spread }),
		X1:        firstGradientAttr(chain, func(a *GradientAttrs) *LengthPercentage { return a.X1 }),
		Y1:        firstGradientAttr(chain, func(a *GradientAttrs) *LengthPercentage { return a.Y1 }),
		X2:        firstGradientAttr(chain, func(a *GradientAttrs) *LengthPercentage { return a.X2 }),
		Y2:        firstGradientAttr(chain, func(a *GradientAttrs) *LengthPercentage { return a.Y2 }),
		CX:        firstGradientAttr(chain, func(a *GradientAttrs) *LengthPercentage { return a.CX }),
		CY:        firstGradientAttr(chain, func(a *GradientAttrs) *LengthPercentage { return a.CY }),
		R:         firstGradientAttr(chain, func(a *GradientAttrs) *LengthPercentage { return a.R }),
		FX:        firstGradientAttr(chain, func(a *GradientAttrs) *LengthPercentage { return a.FX }),
		FY:        firstGradientAttr(chain, func(a *GradientAttrs) *LengthPercentage { return a.FY }),
		FR:        firstGradientAttr(chain, func(a *GradientAttrs) *LengthPercentage { return a.FR }),
	}
	for _, e := range chain {
		if e.gradient != nil && len(e.gradient.Stops) > 0 {
			out.Stops = e.gradient.Stops
			break
		}
	}
	return out
}

// GradientResolver turns a gradient element into a brush.
type GradientResolver interface {
	// ResolveGradient returns the brush for gradient element el painted
	// with ctx. The second result is false when nothing is painted.
	ResolveGradient(el *Element, ctx PaintContext) (Brush, bool)
}

// SVGGradientResolver is the default GradientResolver, implementing SVG
// linearGradient and radialGradient semantics.
type SVGGradientResolver struct{}

// gradientLengths resolves gradient geometry in one coordinate system.
type gradientLengths struct {
	obb      bool
	viewport Rect
}

func (g gradientLengths) x(l *LengthPercentage, def LengthPercentage) float64 {
	return g.resolve(l, def, g.viewport.Width())
}

func (g gradientLengths) y(l *LengthPercentage, def LengthPercentage) float64 {
	return g.resolve(l, def, g.viewport.Height())
}

// r resolves a radius against the normalized viewport diagonal.
func (g gradientLengths) r(l *LengthPercentage, def LengthPercentage) float64 {
	w, h := g.viewport.Width(), g.viewport.Height()
	return g.resolve(l, def, math.Sqrt((w*w+h*h)/2))
}

func (g gradientLengths) resolve(l *LengthPercentage, def LengthPercentage, ref float64) float64 {
	v := def
	if l != nil {
		v = *l
	}
	if g.obb {
		// Bounding box units: percentages and numbers are both fractions.
		return v.Resolve(1)
	}
	return v.Resolve(ref)
}

// ResolveGradient implements GradientResolver.
func (SVGGradientResolver) ResolveGradient(el *Element, ctx PaintContext) (Brush, bool) {
	if !el.Has(CapGradient) {
		logDegraded(el, "not a gradient")
		return nil, false
	}
	attrs := EffectiveGradient(el)
	stops := sortStops(normalizeStops(attrs.Stops))
	switch len(stops) {
	case 0:
		logDegraded(el, "gradient has no stops")
		return nil, false
	case 1:
		return Solid(stops[0].Color), true
	}

	units := UnitsObjectBoundingBox
	if attrs.Units != nil {
		units = *attrs.Units
	}
	spread := ExtendPad
	if attrs.Spread != nil {
		spread = *attrs.Spread
	}

	space := ctx.PaintTransform
	lengths := gradientLengths{viewport: ctx.Viewport}
	if units == UnitsObjectBoundingBox {
		bbox := ctx.PathBoundingBox
		if bbox.IsEmpty() {
			logDegraded(el, "empty bounding box for objectBoundingBox gradient")
			return nil, false
		}
		lengths.obb = true
		space = space.Multiply(Translate(bbox.X(), bbox.Y())).Multiply(Scale(bbox.Width(), bbox.Height()))
	}
	if attrs.Transform != nil {
		space = space.Multiply(*attrs.Transform)
	}
	if _, ok := space.Inverse(); !ok {
		logDegraded(el, "singular gradient transform")
		return nil, false
	}

	ci := ColorInterpolationSRGB
	if el.style != nil {
		ci = el.style.ColorInterpolation
	}

	if el.kind == KindLinearGradient {
		x1 := lengths.x(attrs.X1, Percent(0))
		y1 := lengths.y(attrs.Y1, Percent(0))
		x2 := lengths.x(attrs.X2, Percent(100))
		y2 := lengths.y(attrs.Y2, Percent(0))
		if x1 == x2 && y1 == y2 {
			return Solid(lastStopColor(stops)), true
		}
		g := NewLinearGradientBrush(x1, y1, x2, y2).SetExtend(spread).SetTransform(space)
		g.Stops = stops
		g.Interpolation = ci
		return g, true
	}

	cx := lengths.x(attrs.CX, Percent(50))
	cy := lengths.y(attrs.CY, Percent(50))
	r := lengths.r(attrs.R, Percent(50))
	if r <= 0 {
		return Solid(lastStopColor(stops)), true
	}
	fx, fy := cx, cy
	if attrs.FX != nil {
		fx = lengths.x(attrs.FX, Percent(50))
	}
	if attrs.FY != nil {
		fy = lengths.y(attrs.FY, Percent(50))
	}
	fr := lengths.r(attrs.FR, Percent(0))
	g := NewRadialGradientBrush(cx, cy, fr, r).SetFocus(fx, fy).SetExtend(spread).SetTransform(space)
	g.Stops = stops
	g.Interpolation = ci
	return g, true
}
