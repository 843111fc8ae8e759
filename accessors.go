package svgpaint

// Computed style accessors. Each returns ok=false when the element has no
// computed style.

// FillColor returns the fill color. A fill that is not a plain color
// reports black.
func (e *Element) FillColor() (RGBA, bool) {
	if e.style == nil {
		return RGBA{}, false
	}
	return paintColor(e.style.Fill), true
}

// StrokeColor returns the stroke color. A stroke that is not a plain
// color reports black.
func (e *Element) StrokeColor() (RGBA, bool) {
	if e.style == nil {
		return RGBA{}, false
	}
	return paintColor(e.style.Stroke), true
}

func paintColor(p PaintSource) RGBA {
	if p.Kind != PaintColor {
		return Black
	}
	return p.Color
}

// FillOpacity returns fill-opacity.
func (e *Element) FillOpacity() (float64, bool) {
	if e.style == nil {
		return 0, false
	}
	return e.style.FillOpacity, true
}

// StrokeOpacity returns stroke-opacity.
func (e *Element) StrokeOpacity() (float64, bool) {
	if e.style == nil {
		return 0, false
	}
	return e.style.StrokeOpacity, true
}

// FillRule returns fill-rule.
func (e *Element) FillRule() (FillRule, bool) {
	if e.style == nil {
		return 0, false
	}
	return e.style.FillRule, true
}

// ClipRule returns clip-rule.
func (e *Element) ClipRule() (FillRule, bool) {
	if e.style == nil {
		return 0, false
	}
	return e.style.ClipRule, true
}

// StrokeLineCap returns stroke-linecap.
func (e *Element) StrokeLineCap() (LineCap, bool) {
	if e.style == nil {
		return 0, false
	}
	return e.style.LineCap, true
}

// StrokeLineJoin returns stroke-linejoin.
func (e *Element) StrokeLineJoin() (LineJoin, bool) {
	if e.style == nil {
		return 0, false
	}
	return e.style.LineJoin, true
}

// StrokeMiterLimit returns stroke-miterlimit.
func (e *Element) StrokeMiterLimit() (float64, bool) {
	if e.style == nil {
		return 0, false
	}
	return e.style.MiterLimit, true
}

// StrokeWidth returns stroke-width resolved against the viewport.
func (e *Element) StrokeWidth() (float64, bool) {
	if e.style == nil {
		return 0, false
	}
	return e.ResolveViewportRelative(e.style.StrokeWidth), true
}

// StrokeDashOffset returns stroke-dashoffset resolved against the viewport.
func (e *Element) StrokeDashOffset() (float64, bool) {
	if e.style == nil {
		return 0, false
	}
	return e.ResolveViewportRelative(e.style.StrokeDashOffset), true
}

// StrokeDashArray returns the normalized stroke-dasharray; nil means the
// stroke is solid.
func (e *Element) StrokeDashArray() ([]float64, bool) {
	if e.style == nil {
		return nil, false
	}
	return NormalizeDashArray(e.style.StrokeDashArray, e.ViewportReference()), true
}

// StrokeDash combines the dash array and offset. The dash is nil for a
// solid stroke.
func (e *Element) StrokeDash() (*Dash, bool) {
	if e.style == nil {
		return nil, false
	}
	ref := e.ViewportReference()
	return NewDash(e.style.StrokeDashArray, e.style.StrokeDashOffset.Resolve(ref), ref), true
}

// MaskElement returns the mask element the mask property references.
func (e *Element) MaskElement() (*Element, bool) {
	if e.style == nil {
		return nil, false
	}
	return e.referenced(e.style.Mask, KindMask)
}

// ClipPathElement returns the clipPath element the clip-path property
// references.
func (e *Element) ClipPathElement() (*Element, bool) {
	if e.style == nil {
		return nil, false
	}
	return e.referenced(e.style.ClipPath, KindClipPath)
}

func (e *Element) referenced(ref string, kind ElementKind) (*Element, bool) {
	if ref == "" {
		return nil, false
	}
	target := e.doc.ResolveURL(ref)
	if target == nil || target.kind != kind {
		return nil, false
	}
	return target, true
}
