package svgpaint

// ResolverOption configures a PaintResolver during creation.
// Use functional options to customize resolver behavior.
//
// Example:
//
//	// Default resolver: bilinear resampling, SVG gradients, no cache
//	r := svgpaint.NewPaintResolver()
//
//	// Memoise up to 256 resolved brushes
//	r := svgpaint.NewPaintResolver(svgpaint.WithStyleCache(256))
type ResolverOption func(*resolverOptions)

// resolverOptions holds optional configuration for PaintResolver creation.
type resolverOptions struct {
	sampler       ImageSampler
	gradients     GradientResolver
	cacheCapacity int
	brushFilter   ImageFilter
	maxTilePixels int
}

// DefaultMaxTilePixels bounds the bitmap requested for one pattern tile
// (4096 x 4096).
const DefaultMaxTilePixels = 1 << 24

// defaultOptions returns the default resolver options.
func defaultOptions() resolverOptions {
	return resolverOptions{
		sampler:       ResamplingSampler{Filter: FilterBilinear},
		gradients:     SVGGradientResolver{},
		brushFilter:   FilterBilinear,
		maxTilePixels: DefaultMaxTilePixels,
	}
}

// WithImageSampler sets the collaborator that produces pattern tile
// bitmaps. A nil sampler keeps the default.
//
// Example:
//
//	r := svgpaint.NewPaintResolver(svgpaint.WithImageSampler(mySampler))
func WithImageSampler(s ImageSampler) ResolverOption {
	return func(o *resolverOptions) {
		if s != nil {
			o.sampler = s
		}
	}
}

// WithGradientResolver sets the collaborator that gradient references are
// delegated to. A nil resolver keeps the default.
func WithGradientResolver(g GradientResolver) ResolverOption {
	return func(o *resolverOptions) {
		if g != nil {
			o.gradients = g
		}
	}
}

// WithStyleCache memoises up to capacity successful resolutions. Entries
// are keyed by the document generation, so any mutation of the document
// makes earlier entries unreachable. A capacity of zero or less disables
// the cache.
func WithStyleCache(capacity int) ResolverOption {
	return func(o *resolverOptions) {
		o.cacheCapacity = capacity
	}
}

// WithBrushFilter sets the filter tiled bitmap brushes sample with.
func WithBrushFilter(f ImageFilter) ResolverOption {
	return func(o *resolverOptions) {
		o.brushFilter = f
	}
}

// WithMaxTilePixels bounds the pixel count of a pattern tile bitmap. A
// pattern whose device tile needs more pixels resolves to no paint. A
// limit of zero or less keeps DefaultMaxTilePixels.
func WithMaxTilePixels(n int) ResolverOption {
	return func(o *resolverOptions) {
		if n > 0 {
			o.maxTilePixels = n
		}
	}
}
