package svgpaint

// PatternAttrs holds the parsed attributes of a pattern element.
// A nil field means the attribute is not set on this element and is
// inherited through the href chain.
//
// The plain and number-percentage forms of x, y, width and height are
// recorded separately, the way the attribute parser produces them: the
// plain form is a user-space value, the percentage form is consulted
// only for objectBoundingBox geometry.
type PatternAttrs struct {
	X, Y, Width, Height *float64

	XPercent, YPercent, WidthPercent, HeightPercent *NumberPercentage

	Units        *Units
	ContentUnits *Units
	Transform    *Matrix
	ViewBox      *Rect
}

// SetX records both forms of the x attribute.
func (a *PatternAttrs) SetX(v NumberPercentage) {
	a.X, a.XPercent = Ptr(v.Value), Ptr(v)
}

// SetY records both forms of the y attribute.
func (a *PatternAttrs) SetY(v NumberPercentage) {
	a.Y, a.YPercent = Ptr(v.Value), Ptr(v)
}

// SetWidth records both forms of the width attribute.
func (a *PatternAttrs) SetWidth(v NumberPercentage) {
	a.Width, a.WidthPercent = Ptr(v.Value), Ptr(v)
}

// SetHeight records both forms of the height attribute.
func (a *PatternAttrs) SetHeight(v NumberPercentage) {
	a.Height, a.HeightPercent = Ptr(v.Value), Ptr(v)
}

// SetTransformList sets patternTransform from a parsed list. When ok is
// false the attribute did not parse and is treated as unset.
func (a *PatternAttrs) SetTransformList(list TransformList, ok bool) {
	if !ok {
		a.Transform = nil
		return
	}
	a.Transform = Ptr(list.Matrix())
}

// linkedElement follows the href of cur to the next element of a
// linked-attribute chain. It returns nil when the href is empty, does not
// resolve, points at cur itself, names an element accept rejects, or
// names an element already in seen. The returned element is added to seen.
func linkedElement(cur *Element, seen map[*Element]struct{}, accept func(*Element) bool) *Element {
	if cur.href == "" {
		return nil
	}
	next := cur.doc.ResolveURL(cur.href)
	if next == nil || next == cur || !accept(next) {
		return nil
	}
	if _, dup := seen[next]; dup {
		return nil
	}
	seen[next] = struct{}{}
	return next
}

// linkedChain returns start followed by the elements reached through
// successive href links. Each element appears at most once; the visited
// set lives only for this call.
func linkedChain(start *Element, accept func(*Element) bool) []*Element {
	seen := map[*Element]struct{}{start: {}}
	chain := []*Element{start}
	for cur := linkedElement(start, seen, accept); cur != nil; cur = linkedElement(cur, seen, accept) {
		chain = append(chain, cur)
	}
	return chain
}

func isPattern(e *Element) bool { return e.kind == KindPattern }

// firstSet returns the first non-nil value get yields along chain.
func firstSet[T any](chain []*Element, get func(*PatternAttrs) *T) *T {
	for _, e := range chain {
		if e.pattern == nil {
			continue
		}
		if v := get(e.pattern); v != nil {
			return v
		}
	}
	return nil
}

// EffectivePattern merges the attributes of pattern element p with those
// inherited through its href chain. Each attribute is taken from the first
// chain member that sets it; a cycle in the chain ends the walk.
func EffectivePattern(p *Element) PatternAttrs {
	chain := linkedChain(p, isPattern)
	return PatternAttrs{
		X:             firstSet(chain, func(a *PatternAttrs) *float64 { return a.X }),
		Y:             firstSet(chain, func(a *PatternAttrs) *float64 { return a.Y }),
		Width:         firstSet(chain, func(a *PatternAttrs) *float64 { return a.Width }),
		Height:        firstSet(chain, func(a *PatternAttrs) *float64 { return a.Height }),
		XPercent:      firstSet(chain, func(a *PatternAttrs) *NumberPercentage { return a.XPercent }),
		YPercent:      firstSet(chain, func(a *PatternAttrs) *NumberPercentage { return a.YPercent }),
		WidthPercent:  firstSet(chain, func(a *PatternAttrs) *NumberPercentage { return a.WidthPercent }),
		HeightPercent: firstSet(chain, func(a *PatternAttrs) *NumberPercentage { return a.HeightPercent }),
		Units:         firstSet(chain, func(a *PatternAttrs) *Units { return a.Units }),
		ContentUnits:  firstSet(chain, func(a *PatternAttrs) *Units { return a.ContentUnits }),
		Transform:     firstSet(chain, func(a *PatternAttrs) *Matrix { return a.Transform }),
		ViewBox:       firstSet(chain, func(a *PatternAttrs) *Rect { return a.ViewBox }),
	}
}

// PatternTile is the geometry of one repeat unit of a pattern.
type PatternTile struct {
	// Rect is the tile in the user space of the painted element.
	Rect Rect
	// Units and ContentUnits are the effective coordinate systems.
	Units        Units
	ContentUnits Units
	// Transform is the patternTransform, or the identity.
	Transform Matrix
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// Tile computes the tile geometry for a painted element whose bounding
// box is bbox. Unset x and y default to 0, unset width and height to 0,
// patternUnits to objectBoundingBox and patternContentUnits to
// userSpaceOnUse. The second result is false when the width or height
// is not positive.
func (a PatternAttrs) Tile(bbox Rect) (PatternTile, bool) {
	x := valueOr(a.X, 0)
	y := valueOr(a.Y, 0)
	w := valueOr(a.Width, 0)
	h := valueOr(a.Height, 0)
	if w <= 0 || h <= 0 {
		return PatternTile{}, false
	}

	tile := PatternTile{
		Units:        UnitsObjectBoundingBox,
		ContentUnits: UnitsUserSpaceOnUse,
		Transform:    Identity(),
	}
	if a.Units != nil {
		tile.Units = *a.Units
	}
	if a.ContentUnits != nil {
		tile.ContentUnits = *a.ContentUnits
	}
	if a.Transform != nil {
		tile.Transform = *a.Transform
	}

	if tile.Units == UnitsUserSpaceOnUse {
		tile.Rect = RectXYWH(x, y, w, h)
		return tile, true
	}

	bw, bh := bbox.Width(), bbox.Height()
	bboxFraction := func(np *NumberPercentage, plain, dim float64) float64 {
		if np != nil {
			return np.Fraction() * dim
		}
		return plain * dim
	}
	tile.Rect = RectXYWH(
		bbox.X()+bboxFraction(a.XPercent, x, bw),
		bbox.Y()+bboxFraction(a.YPercent, y, bh),
		bboxFraction(a.WidthPercent, w, bw),
		bboxFraction(a.HeightPercent, h, bh),
	)
	return tile, true
}
