package svgpaint

import (
	"image"
	"io"

	intImage "github.com/gogpu/svgpaint/internal/image"
)

// ImageBuf is a non-premultiplied RGBA8 bitmap.
type ImageBuf = intImage.ImageBuf

// ImageFilter selects how bitmaps are sampled and resampled.
type ImageFilter = intImage.Filter

// Image filters.
const (
	// FilterNearest selects the closest pixel.
	FilterNearest = intImage.FilterNearest
	// FilterBilinear interpolates between 4 neighboring pixels.
	FilterBilinear = intImage.FilterBilinear
	// FilterBicubic uses a Catmull-Rom 4x4 neighborhood.
	FilterBicubic = intImage.FilterBicubic
)

// Image errors.
var (
	// ErrUnsupportedFormat is returned by DecodeImage for unknown formats.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat
)

// NewImageBuf creates a transparent bitmap of the given size.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	return intImage.NewImageBuf(width, height)
}

// DecodeImage decodes a PNG, JPEG, GIF, WebP, BMP or TIFF image, for use
// as the source of an image element.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := intImage.DecodeStd(r)
	return img, err
}

// LoadImage reads and decodes an image file in any format DecodeImage
// accepts.
func LoadImage(path string) (image.Image, error) {
	return intImage.LoadImage(path)
}

// ImageSampler produces the bitmap of an image-bearing element at an exact
// pixel size.
type ImageSampler interface {
	// SampleImage returns el's image as exactly width x height pixels.
	// The second result is false when the image is not available yet.
	SampleImage(el *Element, width, height int) (*ImageBuf, bool)
}

// ResamplingSampler is the default ImageSampler. It scales the element's
// decoded source with golang.org/x/image/draw.
type ResamplingSampler struct {
	Filter ImageFilter
}

// SampleImage implements ImageSampler.
func (s ResamplingSampler) SampleImage(el *Element, width, height int) (*ImageBuf, bool) {
	src := el.Image()
	if src == nil {
		return nil, false
	}
	buf, err := intImage.Resample(src, width, height, s.Filter)
	if err != nil {
		Logger().Debug("svgpaint: resample failed", "element", el.String(), "error", err)
		return nil, false
	}
	return buf, true
}
