// Package color converts between the sRGB and linearRGB encodings and
// interpolates colors in either space.
//
// sRGB is the encoding of every color value in a document; linearRGB is
// the space gradients interpolate in when color-interpolation asks for it.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
package color

// Space selects the color space interpolation happens in.
type Space uint8

const (
	// SpaceSRGB interpolates the encoded sRGB components.
	SpaceSRGB Space = iota
	// SpaceLinearRGB decodes to linear light, interpolates and re-encodes.
	SpaceLinearRGB
)

// RGBA is a non-premultiplied color with components in [0, 1].
// Alpha is always linear (never gamma-encoded).
type RGBA struct {
	R, G, B, A float64
}

// Lerp interpolates between a and b in space s. t=0 gives a, t=1 gives b.
// Alpha is interpolated linearly in both spaces.
func Lerp(s Space, a, b RGBA, t float64) RGBA {
	if s == SpaceLinearRGB {
		a, b = ToLinear(a), ToLinear(b)
	}
	out := RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
	if s == SpaceLinearRGB {
		out = ToSRGB(out)
	}
	return out
}
