package svgpaint

import (
	"math"

	"github.com/gogpu/svgpaint/internal/cache"
)

// PaintContext describes the element being painted.
type PaintContext struct {
	// PathBoundingBox is the painted element's bounding box in user space.
	PathBoundingBox Rect
	// PaintTransform maps user space to device space.
	PaintTransform Matrix
	// Viewport is the user-space rectangle userSpaceOnUse percentages of
	// gradients resolve against. FillBrush and StrokeBrush fill it in from
	// the owner viewport when it is left zero.
	Viewport Rect
}

// paintSlot distinguishes fill and stroke entries in the style cache.
type paintSlot uint8

const (
	slotDirect paintSlot = iota
	slotFill
	slotStroke
)

type paintKey struct {
	el         *Element
	slot       paintSlot
	paint      PaintSource
	ctx        PaintContext
	generation uint64
}

// PaintResolver turns paint references into brushes.
//
// A PaintResolver is safe for concurrent use as long as the documents it
// reads are not mutated during resolution.
type PaintResolver struct {
	sampler   ImageSampler
	gradients GradientResolver
	filter    ImageFilter
	maxPixels int
	cache     *cache.Cache[paintKey, Brush]
}

// NewPaintResolver creates a resolver with the given options.
func NewPaintResolver(opts ...ResolverOption) *PaintResolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &PaintResolver{
		sampler:   o.sampler,
		gradients: o.gradients,
		filter:    o.brushFilter,
		maxPixels: o.maxTilePixels,
	}
	if o.cacheCapacity > 0 {
		r.cache = cache.New[paintKey, Brush](o.cacheCapacity)
	}
	return r
}

// CacheStats reports the style cache counters. The second result is false
// when the resolver was created without WithStyleCache.
func (r *PaintResolver) CacheStats() (cache.Stats, bool) {
	if r.cache == nil {
		return cache.Stats{}, false
	}
	return r.cache.Stats(), true
}

// ClearCache drops every memoised brush, for instance after an image
// element's source was replaced outside the document. Counters are kept.
func (r *PaintResolver) ClearCache() {
	if r.cache != nil {
		r.cache.Clear()
	}
}

// Resolve returns the brush for paint as used by element el. References
// are looked up in el's document.
//
// Only URL paints resolve: a solid color or "none" returns false and the
// caller applies its own fallback. Every failure (unresolvable or
// mistyped reference, degenerate tile geometry, image not yet available)
// returns false and is logged at debug level.
func (r *PaintResolver) Resolve(el *Element, paint PaintSource, ctx PaintContext) (Brush, bool) {
	return r.resolve(el, slotDirect, paint, ctx)
}

// FillBrush resolves the computed fill of el. It returns false when el has
// no computed style or the fill does not resolve.
func (r *PaintResolver) FillBrush(el *Element, ctx PaintContext) (Brush, bool) {
	if el.style == nil {
		return nil, false
	}
	return r.resolve(el, slotFill, el.style.Fill, withViewport(el, ctx))
}

// StrokeBrush resolves the computed stroke of el. It returns false when el
// has no computed style or the stroke does not resolve.
func (r *PaintResolver) StrokeBrush(el *Element, ctx PaintContext) (Brush, bool) {
	if el.style == nil {
		return nil, false
	}
	return r.resolve(el, slotStroke, el.style.Stroke, withViewport(el, ctx))
}

func withViewport(el *Element, ctx PaintContext) PaintContext {
	if ctx.Viewport != (Rect{}) {
		return ctx
	}
	if vp := el.NearestAncestor(CapViewport); vp != nil && vp.layout != nil {
		ctx.Viewport = RectXYWH(0, 0, vp.layout.Rect.Width(), vp.layout.Rect.Height())
	}
	return ctx
}

func (r *PaintResolver) resolve(el *Element, slot paintSlot, paint PaintSource, ctx PaintContext) (Brush, bool) {
	if el == nil || !paint.IsURL() {
		return nil, false
	}

	var key paintKey
	if r.cache != nil {
		key = paintKey{el: el, slot: slot, paint: paint, ctx: ctx, generation: el.doc.Generation()}
		if b, ok := r.cache.Get(key); ok {
			return b, true
		}
	}

	b, ok := r.resolveURL(el, paint.URL, ctx)
	if ok && r.cache != nil {
		// Failures are not stored so a late image resolves next time.
		r.cache.Set(key, b)
	}
	return b, ok
}

func (r *PaintResolver) resolveURL(el *Element, ref string, ctx PaintContext) (Brush, bool) {
	target := el.doc.ResolveURL(ref)
	switch {
	case target == nil:
		logDegraded(el, "unresolved paint reference", "url", ref)
		return nil, false
	case target.Has(CapGradient):
		return r.gradients.ResolveGradient(target, ctx)
	case target.kind == KindPattern:
		return r.resolvePattern(target, ctx)
	default:
		logDegraded(el, "paint reference is not a paint server", "url", ref, "target", target.String())
		return nil, false
	}
}

func (r *PaintResolver) resolvePattern(p *Element, ctx PaintContext) (Brush, bool) {
	attrs := EffectivePattern(p)
	tile, ok := attrs.Tile(ctx.PathBoundingBox)
	if !ok {
		logDegraded(p, "pattern tile has no area",
			"width", valueOr(attrs.Width, 0), "height", valueOr(attrs.Height, 0))
		return nil, false
	}

	device := ctx.PaintTransform.Multiply(tile.Transform)
	deviceTile := device.TransformRect(tile.Rect)
	if deviceTile.IsEmpty() {
		logDegraded(p, "empty device tile")
		return nil, false
	}

	fw := max(math.Ceil(deviceTile.Width()), 1)
	fh := max(math.Ceil(deviceTile.Height()), 1)
	if !(fw*fh <= float64(r.maxPixels)) { // also rejects NaN
		logDegraded(p, "pattern tile too large",
			"width", fw, "height", fh, "limit", r.maxPixels)
		return nil, false
	}
	w, h := int(fw), int(fh)

	source, content, ok := patternContent(p)
	if !ok {
		logDegraded(p, "pattern has no image content")
		return nil, false
	}

	bitmap, ok := r.sampler.SampleImage(source, w, h)
	if !ok || bitmap == nil {
		logDegraded(p, "image not available", "image", source.String(), "width", w, "height", h)
		return nil, false
	}

	sx := deviceTile.Width() / float64(w) * content.XScale()
	sy := deviceTile.Height() / float64(h) * content.YScale()
	shader := Translate(deviceTile.X(), deviceTile.Y()).Multiply(Scale(sx, sy))

	brush := &TiledBitmapBrush{
		Bitmap:  bitmap,
		Matrix:  shader,
		RepeatX: true,
		RepeatY: true,
		Filter:  r.filter,
	}
	brush.Refresh()
	return brush, true
}

// patternContent finds the image that fills a pattern tile: the first
// child that is an image, or a use element whose instance (or, before the
// instance exists, whose reference) is an image. For a use element the
// second result is its local transform.
func patternContent(p *Element) (*Element, Matrix, bool) {
	for _, c := range p.children {
		if c.Has(CapImage) {
			return c, Identity(), true
		}
		if !c.Has(CapInstancing) {
			continue
		}
		target := c.InstanceRoot()
		if target == nil {
			target = c.doc.ResolveURL(c.href)
		}
		if target.Has(CapImage) {
			return target, c.LocalTransform(), true
		}
	}
	return nil, Matrix{}, false
}
