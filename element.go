package svgpaint

import (
	"image"
)

// ElementKind identifies the SVG element an Element represents.
type ElementKind uint8

const (
	KindUnknown ElementKind = iota
	KindSVG
	KindSymbol
	KindG
	KindDefs
	KindRect
	KindCircle
	KindEllipse
	KindLine
	KindPath
	KindPolygon
	KindPolyline
	KindText
	KindImage
	KindUse
	KindPattern
	KindLinearGradient
	KindRadialGradient
	KindClipPath
	KindMask
)

var kindNames = [...]string{
	KindUnknown:        "unknown",
	KindSVG:            "svg",
	KindSymbol:         "symbol",
	KindG:              "g",
	KindDefs:           "defs",
	KindRect:           "rect",
	KindCircle:         "circle",
	KindEllipse:        "ellipse",
	KindLine:           "line",
	KindPath:           "path",
	KindPolygon:        "polygon",
	KindPolyline:       "polyline",
	KindText:           "text",
	KindImage:          "image",
	KindUse:            "use",
	KindPattern:        "pattern",
	KindLinearGradient: "linearGradient",
	KindRadialGradient: "radialGradient",
	KindClipPath:       "clipPath",
	KindMask:           "mask",
}

// String returns the SVG tag name.
func (k ElementKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Capability is a set of roles an element plays in tree walks.
// Walks test capabilities, never concrete kinds.
type Capability uint8

const (
	// CapGraphics marks a transformable graphics element.
	CapGraphics Capability = 1 << iota
	// CapViewport marks an element that establishes a new viewport.
	CapViewport
	// CapImage marks an image-bearing element.
	CapImage
	// CapInstancing marks a use-like element whose instance is a shadow tree.
	CapInstancing
	// CapPaintServer marks patterns and gradients.
	CapPaintServer
	// CapGradient marks linear and radial gradients.
	CapGradient
)

// Capabilities returns the capability set of elements of kind k.
func (k ElementKind) Capabilities() Capability {
	switch k {
	case KindSVG:
		return CapGraphics | CapViewport
	case KindSymbol:
		return CapViewport
	case KindG, KindDefs, KindRect, KindCircle, KindEllipse, KindLine,
		KindPath, KindPolygon, KindPolyline, KindText:
		return CapGraphics
	case KindImage:
		return CapGraphics | CapImage
	case KindUse:
		return CapGraphics | CapInstancing
	case KindPattern:
		return CapPaintServer
	case KindLinearGradient, KindRadialGradient:
		return CapPaintServer | CapGradient
	default:
		return 0
	}
}

// Layout is the output of the host's layout pass for one element.
type Layout struct {
	// Rect is the element's axis-aligned rectangle in device space.
	Rect Rect
	// Transform maps the element's local coordinates to device
	// coordinates relative to its owner viewport.
	Transform Matrix
}

// Element is a node of the document tree.
//
// Elements are created by [Document.CreateElement]. Attribute values are
// supplied already parsed through the Set methods; every mutation bumps
// the document generation.
type Element struct {
	doc  *Document
	kind ElementKind
	caps Capability
	id   string

	parent   *Element
	children []*Element
	host     *Element // shadow host when this element is an instance root
	instance *Element // materialised instance of a use-like element

	transform   Matrix
	needsLayout bool
	style       *Style
	layout      *Layout
	pattern     *PatternAttrs
	gradient    *GradientAttrs
	img         image.Image
	href        string
}

// Kind returns the element kind.
func (e *Element) Kind() ElementKind { return e.kind }

// ID returns the element id, or "" if it has none.
func (e *Element) ID() string { return e.id }

// Document returns the owner document.
func (e *Element) Document() *Document { return e.doc }

// Has reports whether the element has capability c.
func (e *Element) Has(c Capability) bool { return e != nil && e.caps&c == c }

// String returns a short description such as "pattern#tile".
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	if e.id == "" {
		return e.kind.String()
	}
	return e.kind.String() + "#" + e.id
}

// Parent returns the tree parent.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child elements in document order.
// The slice must not be modified.
func (e *Element) Children() []*Element { return e.children }

// AppendChild makes child the last child of e, detaching it from any
// previous parent. It reports false, leaving the tree unchanged, when
// child is nil or when e is child itself or lies below it in the flattened
// tree, since the move would close a parent cycle.
func (e *Element) AppendChild(child *Element) bool {
	if child == nil {
		return false
	}
	for a := e; a != nil; a = a.FlatParent() {
		if a == child {
			return false
		}
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	e.doc.touch()
	return true
}

func (e *Element) removeChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// AttachInstance sets root as the materialised instance of a use-like
// element. The flattened parent of root becomes e.
// It is a no-op unless e has CapInstancing, and when root is e or one of
// its flattened-tree ancestors.
func (e *Element) AttachInstance(root *Element) {
	if !e.Has(CapInstancing) {
		return
	}
	for a := e; root != nil && a != nil; a = a.FlatParent() {
		if a == root {
			return
		}
	}
	if e.instance != nil {
		e.instance.host = nil
	}
	e.instance = root
	if root != nil {
		root.host = e
	}
	e.doc.touch()
}

// InstanceRoot returns the materialised instance of a use-like element,
// or nil if it has not been built yet.
func (e *Element) InstanceRoot() *Element { return e.instance }

// FlatParent returns the parent in the flattened tree: the tree parent,
// or the shadow host for an instance root.
func (e *Element) FlatParent() *Element {
	if e.parent != nil {
		return e.parent
	}
	return e.host
}

// NearestAncestor returns the closest flattened-tree ancestor with
// capability c, or nil.
func (e *Element) NearestAncestor(c Capability) *Element {
	for a := e.FlatParent(); a != nil; a = a.FlatParent() {
		if a.Has(c) {
			return a
		}
	}
	return nil
}

// SetTransform sets the local transform from a parsed transform list.
// When ok is false (the attribute did not parse) the previous transform is
// kept. The element is marked as needing layout either way.
func (e *Element) SetTransform(list TransformList, ok bool) {
	if ok {
		e.transform = list.Matrix()
	}
	e.needsLayout = true
	e.doc.invalidateLayout()
}

// LocalTransform returns the element's own transform.
func (e *Element) LocalTransform() Matrix { return e.transform }

// NeedsLayout reports whether a transform change is pending layout.
func (e *Element) NeedsLayout() bool { return e.needsLayout }

// SetStyle sets the computed style. Nil means no computed style exists.
func (e *Element) SetStyle(s *Style) {
	e.style = s
	e.doc.touch()
}

// Style returns the computed style, or nil.
func (e *Element) Style() *Style { return e.style }

// SetLayout records layout output for the element and clears its
// pending-layout flag. Nil removes it.
func (e *Element) SetLayout(l *Layout) {
	e.layout = l
	e.needsLayout = false
	e.doc.touch()
}

// Layout returns the layout output, or nil before the first layout.
func (e *Element) Layout() *Layout { return e.layout }

// SetPattern sets the parsed pattern attributes of a pattern element.
func (e *Element) SetPattern(p *PatternAttrs) {
	e.pattern = p
	e.doc.touch()
}

// Pattern returns the pattern attributes, or nil.
func (e *Element) Pattern() *PatternAttrs { return e.pattern }

// SetGradient sets the parsed attributes of a gradient element.
func (e *Element) SetGradient(g *GradientAttrs) {
	e.gradient = g
	e.doc.touch()
}

// Gradient returns the gradient attributes, or nil.
func (e *Element) Gradient() *GradientAttrs { return e.gradient }

// SetImage sets the decoded source of an image element. Nil means the
// image is not available (yet).
func (e *Element) SetImage(img image.Image) {
	e.img = img
	e.doc.touch()
}

// Image returns the decoded image source, or nil.
func (e *Element) Image() image.Image { return e.img }

// SetHref sets the href (or xlink:href) attribute.
func (e *Element) SetHref(href string) {
	e.href = href
	e.doc.touch()
}

// Href returns the href attribute.
func (e *Element) Href() string { return e.href }
