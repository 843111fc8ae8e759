// Package svgpaint resolves the paint and geometry of SVG graphics elements
// into concrete rendering inputs.
//
// # Overview
//
// Given a document tree whose attributes have already been parsed into typed
// values, svgpaint composes transform lists into affine matrices, accumulates
// them up the (flattened) ancestor chain, resolves fill and stroke paint
// references to pattern and gradient definitions, recovers an element's
// bounding box in its own coordinate space and canonicalises stroke dash
// arrays.
//
// # Quick Start
//
//	doc := svgpaint.NewDocument()
//	root := doc.CreateElement(svgpaint.KindSVG, "")
//	rect := doc.CreateElement(svgpaint.KindRect, "r")
//	root.AppendChild(rect)
//
//	style := svgpaint.DefaultStyle()
//	style.Fill = svgpaint.URLPaint("#tile")
//	rect.SetStyle(&style)
//
//	r := svgpaint.NewPaintResolver()
//	brush, ok := r.FillBrush(rect, svgpaint.PaintContext{
//	    PathBoundingBox: svgpaint.RectXYWH(0, 0, 100, 50),
//	    PaintTransform:  svgpaint.Identity(),
//	})
//
// # Failure Model
//
// Resolution never returns an error. A reference that does not resolve,
// degenerate tile geometry or an image that is not decoded yet all yield
// "no brush" and a Debug record on the package logger (see [SetLogger]).
//
// # Coordinate System
//
// Matrices follow the usual computer-graphics convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - [Matrix.Multiply] applies its argument first
//
// # Sections
//
//   - Geometry: [Matrix], [Point], [Rect], [TransformList]
//   - Tree: [Document], [Element], [Capability]
//   - Style: [Style], [PaintSource], [LengthPercentage]
//   - Paint: [PaintResolver], [Brush], [TiledBitmapBrush], [SVGGradientResolver]
//   - Strokes: [NormalizeDashArray], [Dash]
package svgpaint

// Version is the current version of the library.
const Version = "0.1.0"
