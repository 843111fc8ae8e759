package image

import (
	"image"

	"golang.org/x/image/draw"
)

// scalerFor maps a sampling filter to an x/image interpolator.
func scalerFor(f Filter) draw.Scaler {
	switch f {
	case FilterNearest:
		return draw.NearestNeighbor
	case FilterBicubic:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

// Resample scales src to exactly width x height pixels.
func Resample(src image.Image, width, height int, filter Filter) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	sb := src.Bounds()
	if sb.Empty() {
		return nil, ErrInvalidDimensions
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scalerFor(filter).Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return FromStdImage(dst), nil
}
