package svgpaint

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Note that the field order differs from the SVG matrix(a,b,c,d,e,f)
// notation; use NewMatrix to build a Matrix from SVG coefficients.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// NewMatrix creates a matrix from coefficients in SVG order, where
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{
		A: a, B: c, C: e,
		D: b, E: d, F: f,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// RotateAbout creates a rotation by angle radians around the point (cx, cy).
func RotateAbout(angle, cx, cy float64) Matrix {
	return Translate(cx, cy).Multiply(Rotate(angle)).Multiply(Translate(-cx, -cy))
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Skew creates a skew matrix from the skew angles (in radians) along
// the x and y axes.
func Skew(ax, ay float64) Matrix {
	return Shear(math.Tan(ax), math.Tan(ay))
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// TransformRect maps the four corners of r and returns their axis-aligned
// bounding box.
func (m Matrix) TransformRect(r Rect) Rect {
	p0 := m.TransformPoint(r.Min)
	p1 := m.TransformPoint(Point{X: r.Max.X, Y: r.Min.Y})
	p2 := m.TransformPoint(r.Max)
	p3 := m.TransformPoint(Point{X: r.Min.X, Y: r.Max.Y})
	return Rect{
		Min: Point{
			X: math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X)),
			Y: math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y)),
		},
		Max: Point{
			X: math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X)),
			Y: math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y)),
		},
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Inverse returns the inverse matrix.
// The second result is false if the matrix is not invertible.
func (m Matrix) Inverse() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// XScale returns the length of the image of the unit x vector.
func (m Matrix) XScale() float64 {
	return m.TransformVector(Point{X: 1}).Length()
}

// YScale returns the length of the image of the unit y vector.
func (m Matrix) YScale() float64 {
	return m.TransformVector(Point{Y: 1}).Length()
}
