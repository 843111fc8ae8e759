package image

import "math"

// Filter defines how a bitmap is sampled between pixel centers.
type Filter uint8

const (
	// FilterNearest selects the pixel containing the sample point.
	FilterNearest Filter = iota

	// FilterBilinear blends the 4 nearest pixel centers.
	FilterBilinear

	// FilterBicubic uses a Catmull-Rom 4x4 neighborhood.
	FilterBicubic
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	case FilterBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// Wrap determines what an axis yields outside [0, size).
type Wrap uint8

const (
	// WrapNone treats pixels outside the bitmap as transparent.
	WrapNone Wrap = iota
	// WrapRepeat tiles the bitmap.
	WrapRepeat
)

// String returns a string representation of the wrap mode.
func (w Wrap) String() string {
	switch w {
	case WrapNone:
		return "None"
	case WrapRepeat:
		return "Repeat"
	default:
		return "Unknown"
	}
}

// wrapIndex maps i into [0, n) according to w. The second result is false
// when WrapNone puts i outside the bitmap.
func wrapIndex(i, n int, w Wrap) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch w {
	case WrapRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i, true
	default:
		return 0, false
	}
}

// fetch returns the premultiplied color of pixel (x, y) under the wrap modes.
func fetch(img *ImageBuf, x, y int, wx, wy Wrap) [4]float64 {
	x, okx := wrapIndex(x, img.width, wx)
	y, oky := wrapIndex(y, img.height, wy)
	if !okx || !oky {
		return [4]float64{}
	}
	r, g, b, a := img.GetRGBA(x, y)
	af := float64(a) / 255
	return [4]float64{float64(r) * af, float64(g) * af, float64(b) * af, float64(a)}
}

// SampleAt samples img at continuous pixel coordinates (px, py), where
// pixel (i, j) covers [i, i+1) x [j, j+1). Each axis is wrapped
// independently. The result is non-premultiplied.
func SampleAt(img *ImageBuf, px, py float64, wx, wy Wrap, filter Filter) (r, g, b, a byte) {
	if img == nil || math.IsNaN(px) || math.IsNaN(py) {
		return 0, 0, 0, 0
	}
	var c [4]float64
	switch filter {
	case FilterBilinear:
		c = sampleBilinear(img, px, py, wx, wy)
	case FilterBicubic:
		c = sampleBicubic(img, px, py, wx, wy)
	default:
		c = fetch(img, int(math.Floor(px)), int(math.Floor(py)), wx, wy)
	}
	return unpremultiply(c)
}

func sampleBilinear(img *ImageBuf, px, py float64, wx, wy Wrap) [4]float64 {
	fx := px - 0.5
	fy := py - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := fetch(img, x0, y0, wx, wy)
	c10 := fetch(img, x0+1, y0, wx, wy)
	c01 := fetch(img, x0, y0+1, wx, wy)
	c11 := fetch(img, x0+1, y0+1, wx, wy)

	var out [4]float64
	for i := range out {
		out[i] = lerp2D(c00[i], c10[i], c01[i], c11[i], tx, ty)
	}
	return out
}

func sampleBicubic(img *ImageBuf, px, py float64, wx, wy Wrap) [4]float64 {
	fx := px - 0.5
	fy := py - 0.5
	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	tx := fx - float64(x)
	ty := fy - float64(y)

	wxs := [4]float64{cubicWeight(tx + 1), cubicWeight(tx), cubicWeight(tx - 1), cubicWeight(tx - 2)}
	wys := [4]float64{cubicWeight(ty + 1), cubicWeight(ty), cubicWeight(ty - 1), cubicWeight(ty - 2)}

	var out [4]float64
	for j := range 4 {
		for i := range 4 {
			c := fetch(img, x+i-1, y+j-1, wx, wy)
			w := wxs[i] * wys[j]
			for k := range out {
				out[k] += c[k] * w
			}
		}
	}
	// Catmull-Rom overshoots; keep color channels within alpha.
	out[3] = clampFloat(out[3], 0, 255)
	for k := range 3 {
		out[k] = clampFloat(out[k], 0, out[3])
	}
	return out
}

func unpremultiply(c [4]float64) (r, g, b, a byte) {
	if c[3] <= 0 {
		return 0, 0, 0, 0
	}
	af := c[3] / 255
	return toByte(c[0] / af), toByte(c[1] / af), toByte(c[2] / af), toByte(c[3])
}

func toByte(v float64) byte {
	return byte(clampFloat(v+0.5, 0, 255))
}

func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}

// cubicWeight is the Catmull-Rom kernel.
func cubicWeight(t float64) float64 {
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}
