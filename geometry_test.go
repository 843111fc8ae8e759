package svgpaint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFullTransform(t *testing.T) {
	doc := NewDocument()
	svg := doc.CreateElement(KindSVG, "")
	a := doc.CreateElement(KindG, "a")
	b := doc.CreateElement(KindG, "b")
	c := doc.CreateElement(KindRect, "c")
	svg.AppendChild(a)
	a.AppendChild(b)
	b.AppendChild(c)

	ta := TransformList{TranslateOp(10, 20)}
	tb := TransformList{RotateOp(30, 0, 0)}
	tc := TransformList{ScaleOp(2, 3)}
	svg.SetTransform(TransformList{ScaleOp(100, 100)}, true)
	a.SetTransform(ta, true)
	b.SetTransform(tb, true)
	c.SetTransform(tc, true)

	wantC := append(append(append(TransformList{}, ta...), tb...), tc...).Matrix()
	if d := cmp.Diff(wantC, c.FullTransform(), approx); d != "" {
		t.Errorf("FullTransform(c) mismatch (-want +got):\n%s", d)
	}
	wantB := append(append(TransformList{}, ta...), tb...).Matrix()
	if d := cmp.Diff(wantB, b.FullTransform(), approx); d != "" {
		t.Errorf("FullTransform(b) mismatch (-want +got):\n%s", d)
	}
}

func TestFullTransformSkipsNonGraphicsAndCrossesInstance(t *testing.T) {
	doc := NewDocument()
	svg := doc.CreateElement(KindSVG, "")
	g := doc.CreateElement(KindG, "")
	defs := doc.CreateElement(KindDefs, "")
	use := doc.CreateElement(KindUse, "")
	img := doc.CreateElement(KindImage, "")
	svg.AppendChild(g)
	g.AppendChild(use)
	use.AttachInstance(img)

	g.SetTransform(TransformList{TranslateOp(5, 0)}, true)
	use.SetTransform(TransformList{ScaleOp(2, 2)}, true)
	img.SetTransform(TransformList{TranslateOp(1, 1)}, true)

	want := Translate(5, 0).Multiply(Scale(2, 2)).Multiply(Translate(1, 1))
	if d := cmp.Diff(want, img.FullTransform(), approx); d != "" {
		t.Errorf("across instance (-want +got):\n%s", d)
	}

	// A pattern is not a graphics element: it contributes nothing.
	p := doc.CreateElement(KindPattern, "")
	r := doc.CreateElement(KindRect, "")
	defs.AppendChild(p)
	p.AppendChild(r)
	r.SetTransform(TransformList{ScaleOp(3, 3)}, true)
	if d := cmp.Diff(Scale(3, 3), r.FullTransform(), approx); d != "" {
		t.Errorf("through pattern (-want +got):\n%s", d)
	}
}

func TestFullTransformStopsAtNearestViewport(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement(KindSVG, "")
	g := doc.CreateElement(KindG, "")
	inner := doc.CreateElement(KindSVG, "")
	rect := doc.CreateElement(KindRect, "")
	outer.AppendChild(g)
	g.AppendChild(inner)
	inner.AppendChild(rect)
	g.SetTransform(TransformList{TranslateOp(50, 50)}, true)
	rect.SetTransform(TransformList{TranslateOp(1, 2)}, true)

	if d := cmp.Diff(Translate(1, 2), rect.FullTransform(), approx); d != "" {
		t.Errorf("FullTransform mismatch (-want +got):\n%s", d)
	}
}

func layoutTree(t *testing.T, viewport Rect, m Matrix, local Rect) (*Element, *Element) {
	t.Helper()
	doc := NewDocument()
	svg := doc.CreateElement(KindSVG, "")
	rect := doc.CreateElement(KindRect, "r")
	svg.AppendChild(rect)
	svg.SetLayout(&Layout{Rect: viewport, Transform: Identity()})

	device := m.TransformRect(local).Translate(viewport.X(), viewport.Y())
	rect.SetLayout(&Layout{Rect: device, Transform: m})
	return svg, rect
}

func TestLocalBoundingBoxRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(30, -12)},
		{"scale", Scale(2, 0.5)},
		{"translate scale", Translate(7, 9).Multiply(Scale(3, 4))},
		{"flip", Scale(-1, 1)},
	}
	local := RectXYWH(10, 20, 40, 30)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rect := layoutTree(t, RectXYWH(100, 50, 400, 300), tt.m, local)
			if d := cmp.Diff(local, rect.LocalBoundingBox(), approx); d != "" {
				t.Errorf("LocalBoundingBox mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestLocalBoundingBoxSingularTransform(t *testing.T) {
	doc := NewDocument()
	svg := doc.CreateElement(KindSVG, "")
	rect := doc.CreateElement(KindRect, "")
	svg.AppendChild(rect)
	svg.SetLayout(&Layout{Rect: RectXYWH(10, 10, 100, 100)})
	rect.SetLayout(&Layout{Rect: RectXYWH(20, 30, 5, 0), Transform: Scale(0, 1)})

	want := RectXYWH(10, 20, 5, 0)
	if d := cmp.Diff(want, rect.LocalBoundingBox(), approx); d != "" {
		t.Errorf("unmapped rect mismatch (-want +got):\n%s", d)
	}
}

func TestLocalBoundingBoxWithoutLayout(t *testing.T) {
	doc := NewDocument()
	svg := doc.CreateElement(KindSVG, "")
	rect := doc.CreateElement(KindRect, "")
	svg.AppendChild(rect)

	if got := rect.LocalBoundingBox(); got != (Rect{}) {
		t.Errorf("no layout: got %+v, want empty", got)
	}

	rect.SetLayout(&Layout{Rect: RectXYWH(0, 0, 1, 1), Transform: Identity()})
	if got := rect.LocalBoundingBox(); got != (Rect{}) {
		t.Errorf("viewport without layout: got %+v, want empty", got)
	}

	orphan := doc.CreateElement(KindRect, "")
	orphan.SetLayout(&Layout{Rect: RectXYWH(0, 0, 1, 1), Transform: Identity()})
	if got := orphan.LocalBoundingBox(); got != (Rect{}) {
		t.Errorf("no viewport: got %+v, want empty", got)
	}
}

type fixedLayout struct {
	rect *Element
	m    Matrix
}

func (f fixedLayout) UpdateLayout(*Document) {
	f.rect.SetLayout(&Layout{Rect: f.m.TransformRect(RectXYWH(0, 0, 10, 10)), Transform: f.m})
}

func TestLocalBoundingBoxUpdatesLayout(t *testing.T) {
	doc := NewDocument()
	svg := doc.CreateElement(KindSVG, "")
	rect := doc.CreateElement(KindRect, "")
	svg.AppendChild(rect)
	svg.SetLayout(&Layout{Rect: RectXYWH(0, 0, 100, 100), Transform: Identity()})
	doc.SetLayoutEngine(fixedLayout{rect: rect, m: Scale(2, 2)})

	if d := cmp.Diff(RectXYWH(0, 0, 10, 10), rect.LocalBoundingBox(), approx); d != "" {
		t.Errorf("LocalBoundingBox mismatch (-want +got):\n%s", d)
	}
}

func TestViewportRelative(t *testing.T) {
	doc := NewDocument()
	svg := doc.CreateElement(KindSVG, "")
	g := doc.CreateElement(KindG, "")
	rect := doc.CreateElement(KindRect, "")
	svg.AppendChild(g)
	g.AppendChild(rect)

	if got := rect.ResolveViewportRelative(Percent(10)); got != 0 {
		t.Errorf("without layout: %v, want 0", got)
	}

	svg.SetLayout(&Layout{Rect: RectXYWH(0, 0, 300, 100)})
	tests := []struct {
		l    LengthPercentage
		want float64
	}{
		{Percent(10), 20},
		{Percent(100), 200},
		{Px(7), 7},
	}
	for _, tt := range tests {
		if got := rect.ResolveViewportRelative(tt.l); got != tt.want {
			t.Errorf("ResolveViewportRelative(%+v) = %v, want %v", tt.l, got, tt.want)
		}
	}
}
