package svgpaint

// FullTransform returns the transform from e's local coordinates to the
// coordinate space of its nearest viewport ancestor.
//
// The walk follows the flattened tree, so it crosses from a use
// element's instance into the use element. Ancestors without
// CapGraphics contribute nothing; the viewport ancestor itself is
// excluded.
func (e *Element) FullTransform() Matrix {
	t := e.transform
	for a := e.FlatParent(); a != nil && !a.Has(CapViewport); a = a.FlatParent() {
		if a.Has(CapGraphics) {
			t = a.transform.Multiply(t)
		}
	}
	return t
}

// LocalBoundingBox returns e's bounding box in its own coordinate space,
// recovered from layout. It brings layout up to date first and returns
// an empty rect when e or its viewport ancestor has no layout.
//
// When the layout transform is singular the box is returned in
// viewport-relative device coordinates, unmapped.
func (e *Element) LocalBoundingBox() Rect {
	e.doc.UpdateLayout()
	if e.layout == nil {
		return Rect{}
	}
	vp := e.NearestAncestor(CapViewport)
	if vp == nil || vp.layout == nil {
		return Rect{}
	}

	origin := vp.layout.Rect.Min
	r := e.layout.Rect.Translate(-origin.X, -origin.Y)
	inv, ok := e.layout.Transform.Inverse()
	if !ok {
		Logger().Debug("svgpaint: singular layout transform, bounding box left in device space",
			"element", e.String())
		return r
	}
	return inv.TransformRect(r)
}

// ViewportReference returns the reference length percentages of stroke
// properties resolve against: the mean of the width and height of the
// nearest viewport ancestor, or 0 when there is none or it has no layout.
func (e *Element) ViewportReference() float64 {
	vp := e.NearestAncestor(CapViewport)
	if vp == nil || vp.layout == nil {
		return 0
	}
	return (vp.layout.Rect.Width() + vp.layout.Rect.Height()) / 2
}

// ResolveViewportRelative resolves l against [Element.ViewportReference].
func (e *Element) ResolveViewportRelative(l LengthPercentage) float64 {
	return l.Resolve(e.ViewportReference())
}
