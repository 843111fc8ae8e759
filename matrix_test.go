package svgpaint

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(1e-9, 1e-9)

func TestMatrixMultiplyOrder(t *testing.T) {
	// m.Multiply(other) applies other first.
	m := Translate(10, 0).Multiply(Scale(2, 1))
	got := m.TransformPoint(Pt(1, 0))
	if d := cmp.Diff(Pt(12, 0), got, approx); d != "" {
		t.Errorf("Translate*Scale mismatch (-want +got):\n%s", d)
	}

	m = Scale(2, 1).Multiply(Translate(10, 0))
	got = m.TransformPoint(Pt(1, 0))
	if d := cmp.Diff(Pt(22, 0), got, approx); d != "" {
		t.Errorf("Scale*Translate mismatch (-want +got):\n%s", d)
	}
}

func TestMatrixIdentityNeutral(t *testing.T) {
	matrices := []Matrix{
		Translate(5, -3),
		Scale(2, 0.5),
		Rotate(0.7),
		Shear(0.3, 0.1),
		NewMatrix(1, 2, 3, 4, 5, 6),
	}
	for _, m := range matrices {
		if d := cmp.Diff(m, Identity().Multiply(m), approx); d != "" {
			t.Errorf("I*m != m (-want +got):\n%s", d)
		}
		if d := cmp.Diff(m, m.Multiply(Identity()), approx); d != "" {
			t.Errorf("m*I != m (-want +got):\n%s", d)
		}
	}
}

func TestMatrixAssociative(t *testing.T) {
	a := Rotate(0.4)
	b := Translate(3, 7)
	c := Scale(2, 5)
	left := a.Multiply(b).Multiply(c)
	right := a.Multiply(b.Multiply(c))
	if d := cmp.Diff(left, right, approx); d != "" {
		t.Errorf("(ab)c != a(bc) (-left +right):\n%s", d)
	}
}

func TestNewMatrixSVGOrder(t *testing.T) {
	// matrix(a,b,c,d,e,f): x' = a*x + c*y + e, y' = b*x + d*y + f
	m := NewMatrix(1, 2, 3, 4, 5, 6)
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(1+3+5, 2+4+6)
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("NewMatrix mismatch (-want +got):\n%s", d)
	}
}

func TestRotateAbout(t *testing.T) {
	m := RotateAbout(math.Pi/2, 5, 5)
	got := m.TransformPoint(Pt(5, 0))
	if d := cmp.Diff(Pt(10, 5), got, approx); d != "" {
		t.Errorf("RotateAbout mismatch (-want +got):\n%s", d)
	}
	// The pivot is a fixed point.
	if d := cmp.Diff(Pt(5, 5), m.TransformPoint(Pt(5, 5)), approx); d != "" {
		t.Errorf("pivot moved (-want +got):\n%s", d)
	}
}

func TestSkew(t *testing.T) {
	m := Skew(math.Pi/4, 0)
	got := m.TransformPoint(Pt(0, 2))
	if d := cmp.Diff(Pt(2, 2), got, approx); d != "" {
		t.Errorf("skewX(45) mismatch (-want +got):\n%s", d)
	}
	m = Skew(0, math.Pi/4)
	got = m.TransformPoint(Pt(3, 0))
	if d := cmp.Diff(Pt(3, 3), got, approx); d != "" {
		t.Errorf("skewY(45) mismatch (-want +got):\n%s", d)
	}
}

func TestMatrixInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		ok   bool
	}{
		{"identity", Identity(), true},
		{"translate", Translate(10, -4), true},
		{"scale", Scale(2, 0.25), true},
		{"rotate", Rotate(1.1), true},
		{"composite", Translate(3, 4).Multiply(Rotate(0.3)).Multiply(Scale(2, 3)), true},
		{"zero scale x", Scale(0, 1), false},
		{"zero matrix", Matrix{}, false},
		{"collinear columns", NewMatrix(1, 2, 2, 4, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Inverse()
			if ok != tt.ok {
				t.Fatalf("Inverse() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if d := cmp.Diff(Identity(), tt.m.Multiply(inv), approx); d != "" {
				t.Errorf("m*inv != I (-want +got):\n%s", d)
			}
		})
	}
}

func TestTransformRect(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		r    Rect
		want Rect
	}{
		{"identity", Identity(), RectXYWH(1, 2, 3, 4), RectXYWH(1, 2, 3, 4)},
		{"translate", Translate(10, 20), RectXYWH(0, 0, 5, 5), RectXYWH(10, 20, 5, 5)},
		{"scale", Scale(2, 3), RectXYWH(1, 1, 2, 2), RectXYWH(2, 3, 4, 6)},
		{"negative scale", Scale(-1, 1), RectXYWH(1, 0, 2, 1), RectXYWH(-3, 0, 2, 1)},
		{"rotate 90", Rotate(math.Pi / 2), RectXYWH(0, 0, 2, 1), RectXYWH(-1, 0, 1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformRect(tt.r)
			if d := cmp.Diff(tt.want, got, approx); d != "" {
				t.Errorf("TransformRect mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestXYScale(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix
		sx, sy float64
	}{
		{"identity", Identity(), 1, 1},
		{"scale", Scale(3, 0.5), 3, 0.5},
		{"negative", Scale(-2, 1), 2, 1},
		{"rotated scale", Rotate(0.6).Multiply(Scale(4, 2)), 4, 2},
		{"translation ignored", Translate(100, 100), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.XScale(); math.Abs(got-tt.sx) > 1e-9 {
				t.Errorf("XScale() = %v, want %v", got, tt.sx)
			}
			if got := tt.m.YScale(); math.Abs(got-tt.sy) > 1e-9 {
				t.Errorf("YScale() = %v, want %v", got, tt.sy)
			}
		})
	}
}

func TestIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0).IsIdentity() = true")
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, -50).Multiply(Scale(2, 3))
	if d := cmp.Diff(Pt(2, 3), m.TransformVector(Pt(1, 1)), approx); d != "" {
		t.Errorf("TransformVector mismatch (-want +got):\n%s", d)
	}
	// The image of a difference is the difference of the images.
	p, q := Pt(4, 1), Pt(-2, 7)
	want := m.TransformPoint(p).Sub(m.TransformPoint(q))
	if d := cmp.Diff(want, m.TransformVector(p.Sub(q)), approx); d != "" {
		t.Errorf("TransformVector(p-q) mismatch (-want +got):\n%s", d)
	}
}

func TestPointVectorOps(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub() = %v, want (2, 6)", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot() = %v, want -5", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
}

func TestNewRectNormalizes(t *testing.T) {
	got := NewRect(Pt(10, 2), Pt(4, 8))
	if d := cmp.Diff(RectXYWH(4, 2, 6, 6), got); d != "" {
		t.Errorf("NewRect mismatch (-want +got):\n%s", d)
	}
}
