package svgpaint

import "math"

// TransformKind identifies the primitive operations of an SVG transform list.
type TransformKind uint8

const (
	// TransformTranslate moves by (X, Y).
	TransformTranslate TransformKind = iota
	// TransformScale scales by (X, Y).
	TransformScale
	// TransformRotate rotates by Angle degrees about the pivot (X, Y).
	TransformRotate
	// TransformSkewX skews along the x axis by Angle degrees.
	TransformSkewX
	// TransformSkewY skews along the y axis by Angle degrees.
	TransformSkewY
	// TransformMatrix uses Coeffs verbatim (SVG order a..f).
	TransformMatrix
)

// String returns the SVG function name of the operation.
func (k TransformKind) String() string {
	switch k {
	case TransformTranslate:
		return "translate"
	case TransformScale:
		return "scale"
	case TransformRotate:
		return "rotate"
	case TransformSkewX:
		return "skewX"
	case TransformSkewY:
		return "skewY"
	case TransformMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}

// TransformOp is one parsed entry of a transform attribute.
//
// The set of operations is closed; which fields are meaningful depends on
// Kind. Use the constructor functions rather than filling the struct by hand.
type TransformOp struct {
	Kind   TransformKind
	X, Y   float64    // translation, scale factors, or rotation pivot
	Angle  float64    // degrees, for rotate and skews
	Coeffs [6]float64 // a, b, c, d, e, f for TransformMatrix
}

// TranslateOp returns a translate(x, y) operation.
func TranslateOp(x, y float64) TransformOp {
	return TransformOp{Kind: TransformTranslate, X: x, Y: y}
}

// ScaleOp returns a scale(x, y) operation.
func ScaleOp(x, y float64) TransformOp {
	return TransformOp{Kind: TransformScale, X: x, Y: y}
}

// RotateOp returns a rotate(angle, cx, cy) operation.
// Pass zero for cx and cy to rotate about the origin.
func RotateOp(angle, cx, cy float64) TransformOp {
	return TransformOp{Kind: TransformRotate, Angle: angle, X: cx, Y: cy}
}

// SkewXOp returns a skewX(angle) operation.
func SkewXOp(angle float64) TransformOp {
	return TransformOp{Kind: TransformSkewX, Angle: angle}
}

// SkewYOp returns a skewY(angle) operation.
func SkewYOp(angle float64) TransformOp {
	return TransformOp{Kind: TransformSkewY, Angle: angle}
}

// MatrixOp returns a matrix(a, b, c, d, e, f) operation.
func MatrixOp(a, b, c, d, e, f float64) TransformOp {
	return TransformOp{Kind: TransformMatrix, Coeffs: [6]float64{a, b, c, d, e, f}}
}

// Matrix returns the canonical matrix of the operation.
func (op TransformOp) Matrix() Matrix {
	switch op.Kind {
	case TransformTranslate:
		return Translate(op.X, op.Y)
	case TransformScale:
		return Scale(op.X, op.Y)
	case TransformRotate:
		return RotateAbout(degToRad(op.Angle), op.X, op.Y)
	case TransformSkewX:
		return Skew(degToRad(op.Angle), 0)
	case TransformSkewY:
		return Skew(0, degToRad(op.Angle))
	case TransformMatrix:
		c := op.Coeffs
		return NewMatrix(c[0], c[1], c[2], c[3], c[4], c[5])
	default:
		return Identity()
	}
}

// TransformList is the parsed form of a transform attribute.
type TransformList []TransformOp

// Matrix composes the list into a single matrix.
//
// Each operation is multiplied onto the right of the running transform,
// so the first operation in the list is the outermost one: for
// "translate(10) scale(2)" a point is scaled first and then translated.
// An empty list yields the identity.
func (l TransformList) Matrix() Matrix {
	m := Identity()
	for _, op := range l {
		m = m.Multiply(op.Matrix())
	}
	return m
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
