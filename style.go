package svgpaint

import "github.com/gogpu/svgpaint/internal/color"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
	// LineJoinMiterClip is SVG 2 miter-clip; renderers without it fall
	// back to a miter join.
	LineJoinMiterClip
	// LineJoinArcs is SVG 2 arcs; renderers without it fall back to a
	// miter join.
	LineJoinArcs
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// PaintKind discriminates a PaintSource.
type PaintKind uint8

const (
	// PaintNone paints nothing.
	PaintNone PaintKind = iota
	// PaintColor paints a solid color.
	PaintColor
	// PaintURL references a paint server element (pattern or gradient).
	PaintURL
)

// PaintSource is the computed value of the fill or stroke property.
type PaintSource struct {
	Kind  PaintKind
	Color RGBA
	URL   string
}

// NoPaint returns the "none" paint.
func NoPaint() PaintSource { return PaintSource{} }

// ColorPaint returns a solid color paint.
func ColorPaint(c RGBA) PaintSource { return PaintSource{Kind: PaintColor, Color: c} }

// URLPaint returns a reference to a paint server, typically "#id".
func URLPaint(url string) PaintSource { return PaintSource{Kind: PaintURL, URL: url} }

// IsURL reports whether p references a paint server.
func (p PaintSource) IsURL() bool { return p.Kind == PaintURL }

// ColorInterpolation is the color-interpolation property: the color space
// gradients interpolate in.
type ColorInterpolation uint8

const (
	// ColorInterpolationSRGB interpolates encoded sRGB values (the
	// initial value, also used for auto).
	ColorInterpolationSRGB ColorInterpolation = iota
	// ColorInterpolationLinearRGB interpolates in linear light.
	ColorInterpolationLinearRGB
)

func (c ColorInterpolation) space() color.Space {
	if c == ColorInterpolationLinearRGB {
		return color.SpaceLinearRGB
	}
	return color.SpaceSRGB
}

// Style holds the computed style values the paint resolver consumes.
// It is produced by the host's cascade; svgpaint never computes it.
type Style struct {
	Fill          PaintSource
	Stroke        PaintSource
	FillOpacity   float64
	StrokeOpacity float64
	FillRule      FillRule
	ClipRule      FillRule

	StrokeWidth      LengthPercentage
	StrokeDashArray  []DashValue
	StrokeDashOffset LengthPercentage
	LineCap          LineCap
	LineJoin         LineJoin
	MiterLimit       float64

	// ColorInterpolation applies when the element is a gradient.
	ColorInterpolation ColorInterpolation

	// ClipPath and Mask are URL references; empty means none.
	ClipPath string
	Mask     string
}

// DefaultStyle returns the initial values of the SVG properties.
func DefaultStyle() Style {
	return Style{
		Fill:          ColorPaint(Black),
		Stroke:        NoPaint(),
		FillOpacity:   1,
		StrokeOpacity: 1,
		FillRule:      FillRuleNonZero,
		ClipRule:      FillRuleNonZero,
		StrokeWidth:   Px(1),
		LineCap:       LineCapButt,
		LineJoin:      LineJoinMiter,
		MiterLimit:    4,
	}
}
