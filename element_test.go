package svgpaint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		kind ElementKind
		has  []Capability
		not  []Capability
	}{
		{KindSVG, []Capability{CapGraphics, CapViewport}, []Capability{CapImage}},
		{KindSymbol, []Capability{CapViewport}, []Capability{CapGraphics}},
		{KindG, []Capability{CapGraphics}, []Capability{CapViewport}},
		{KindImage, []Capability{CapGraphics, CapImage}, []Capability{CapInstancing}},
		{KindUse, []Capability{CapGraphics, CapInstancing}, []Capability{CapImage}},
		{KindPattern, []Capability{CapPaintServer}, []Capability{CapGradient, CapGraphics}},
		{KindLinearGradient, []Capability{CapPaintServer, CapGradient}, nil},
		{KindRadialGradient, []Capability{CapPaintServer, CapGradient}, nil},
	}
	doc := NewDocument()
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := doc.CreateElement(tt.kind, "")
			for _, c := range tt.has {
				if !e.Has(c) {
					t.Errorf("%v.Has(%d) = false", tt.kind, c)
				}
			}
			for _, c := range tt.not {
				if e.Has(c) {
					t.Errorf("%v.Has(%d) = true", tt.kind, c)
				}
			}
		})
	}

	var nilElem *Element
	if nilElem.Has(CapGraphics) {
		t.Error("nil element reports a capability")
	}
}

func TestElementString(t *testing.T) {
	doc := NewDocument()
	if got := doc.CreateElement(KindPattern, "tile").String(); got != "pattern#tile" {
		t.Errorf("String() = %q, want pattern#tile", got)
	}
	if got := doc.CreateElement(KindRect, "").String(); got != "rect" {
		t.Errorf("String() = %q, want rect", got)
	}
}

func TestResolveURL(t *testing.T) {
	doc := NewDocument()
	tile := doc.CreateElement(KindPattern, "tile")
	dup := doc.CreateElement(KindRect, "tile")

	tests := []struct {
		ref  string
		want *Element
	}{
		{"#tile", tile},
		{"other.svg#tile", tile},
		{"#missing", nil},
		{"tile", nil},
		{"", nil},
		{"#", nil},
		{"%zz#tile", nil},
	}
	for _, tt := range tests {
		if got := doc.ResolveURL(tt.ref); got != tt.want {
			t.Errorf("ResolveURL(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
	if doc.ElementByID("tile") == dup {
		t.Error("a later duplicate id replaced the first element")
	}
}

func TestAppendChildReparents(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement(KindG, "a")
	b := doc.CreateElement(KindG, "b")
	c := doc.CreateElement(KindRect, "c")

	a.AppendChild(c)
	if !b.AppendChild(c) {
		t.Fatal("AppendChild() = false")
	}
	if len(a.Children()) != 0 {
		t.Errorf("old parent still has %d children", len(a.Children()))
	}
	if c.Parent() != b {
		t.Errorf("Parent() = %v, want %v", c.Parent(), b)
	}
}

func TestAppendChildRefusesCycles(t *testing.T) {
	doc := NewDocument()
	svg := doc.CreateElement(KindSVG, "")
	g := doc.CreateElement(KindG, "g")
	use := doc.CreateElement(KindUse, "u")
	svg.AppendChild(g)
	g.AppendChild(use)
	inner := doc.CreateElement(KindG, "inner")
	use.AttachInstance(inner)

	tests := []struct {
		name          string
		parent, child *Element
	}{
		{"self", g, g},
		{"parent under child", g, svg},
		{"grandparent under grandchild", use, svg},
		{"across an instance", inner, g},
		{"nil child", g, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := doc.Generation()
			if tt.parent.AppendChild(tt.child) {
				t.Fatalf("%v.AppendChild(%v) = true, want false", tt.parent, tt.child)
			}
			if doc.Generation() != gen {
				t.Error("refused AppendChild bumped the generation")
			}
		})
	}

	// The tree is intact and ancestor walks still terminate.
	if g.Parent() != svg || use.Parent() != g || svg.Parent() != nil {
		t.Errorf("tree changed: g.Parent() = %v, use.Parent() = %v, svg.Parent() = %v",
			g.Parent(), use.Parent(), svg.Parent())
	}
	if got := inner.NearestAncestor(CapViewport); got != svg {
		t.Errorf("NearestAncestor(CapViewport) = %v, want %v", got, svg)
	}

	use.AttachInstance(svg)
	if use.InstanceRoot() != inner {
		t.Errorf("AttachInstance of an ancestor replaced the instance with %v", use.InstanceRoot())
	}
}

func TestFlatParentCrossesInstance(t *testing.T) {
	doc := NewDocument()
	use := doc.CreateElement(KindUse, "u")
	root := doc.CreateElement(KindImage, "")
	use.AttachInstance(root)

	if root.Parent() != nil {
		t.Errorf("instance root has tree parent %v", root.Parent())
	}
	if root.FlatParent() != use {
		t.Errorf("FlatParent() = %v, want %v", root.FlatParent(), use)
	}
	if use.InstanceRoot() != root {
		t.Errorf("InstanceRoot() = %v, want %v", use.InstanceRoot(), root)
	}

	// Only instancing elements accept an instance.
	g := doc.CreateElement(KindG, "")
	g.AttachInstance(doc.CreateElement(KindImage, ""))
	if g.InstanceRoot() != nil {
		t.Error("g accepted an instance")
	}
}

func TestSetTransformKeepsPreviousOnFailure(t *testing.T) {
	doc := NewDocument()
	e := doc.CreateElement(KindRect, "")
	e.SetTransform(TransformList{TranslateOp(5, 6)}, true)
	e.SetTransform(nil, false)

	if d := cmp.Diff(Translate(5, 6), e.LocalTransform(), approx); d != "" {
		t.Errorf("LocalTransform mismatch (-want +got):\n%s", d)
	}
	if !e.NeedsLayout() {
		t.Error("NeedsLayout() = false after SetTransform")
	}
	e.SetLayout(&Layout{Transform: Identity()})
	if e.NeedsLayout() {
		t.Error("NeedsLayout() = true after SetLayout")
	}
}

func TestMutationsBumpGeneration(t *testing.T) {
	doc := NewDocument()
	e := doc.CreateElement(KindRect, "")

	mutations := []struct {
		name string
		fn   func()
	}{
		{"SetTransform", func() { e.SetTransform(TransformList{ScaleOp(2, 2)}, true) }},
		{"SetStyle", func() { s := DefaultStyle(); e.SetStyle(&s) }},
		{"SetLayout", func() { e.SetLayout(&Layout{}) }},
		{"SetPattern", func() { e.SetPattern(&PatternAttrs{}) }},
		{"SetGradient", func() { e.SetGradient(&GradientAttrs{}) }},
		{"SetImage", func() { e.SetImage(nil) }},
		{"SetHref", func() { e.SetHref("#x") }},
	}
	for _, m := range mutations {
		before := doc.Generation()
		m.fn()
		if doc.Generation() <= before {
			t.Errorf("%s did not bump the generation", m.name)
		}
	}
}

type countingLayout struct{ calls int }

func (c *countingLayout) UpdateLayout(*Document) { c.calls++ }

func TestUpdateLayoutRunsOnlyWhenDirty(t *testing.T) {
	doc := NewDocument()
	e := doc.CreateElement(KindRect, "")
	engine := &countingLayout{}
	doc.SetLayoutEngine(engine)

	doc.UpdateLayout()
	doc.UpdateLayout()
	if engine.calls != 1 {
		t.Fatalf("engine ran %d times, want 1", engine.calls)
	}

	e.SetTransform(TransformList{TranslateOp(1, 1)}, true)
	doc.UpdateLayout()
	if engine.calls != 2 {
		t.Errorf("engine ran %d times after transform change, want 2", engine.calls)
	}
}

func TestElementAttributeAccessors(t *testing.T) {
	doc := NewDocument()
	grad := doc.CreateElement(KindLinearGradient, "g1")
	attrs := &GradientAttrs{Stops: []ColorStop{{Offset: 0, Color: Black}}}
	grad.SetGradient(attrs)
	use := doc.CreateElement(KindUse, "")
	use.SetHref("#g1")

	if grad.ID() != "g1" {
		t.Errorf("ID() = %q, want g1", grad.ID())
	}
	if grad.Gradient() != attrs {
		t.Error("Gradient() did not return the attributes set")
	}
	if use.Href() != "#g1" {
		t.Errorf("Href() = %q, want #g1", use.Href())
	}
	if got := doc.ResolveURL(use.Href()); got != grad {
		t.Errorf("ResolveURL(Href()) = %v, want %v", got, grad)
	}
}
