package svgpaint

import (
	"net/url"
)

// LayoutEngine computes [Layout] for the elements of a document.
type LayoutEngine interface {
	// UpdateLayout brings the layout of every element up to date.
	UpdateLayout(doc *Document)
}

// Document owns a tree of elements and indexes them by id.
//
// A Document is not safe for concurrent mutation. Resolution reads the
// tree; callers must not mutate it while a resolution is running.
type Document struct {
	byID        map[string]*Element
	generation  uint64
	engine      LayoutEngine
	layoutDirty bool
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{byID: make(map[string]*Element)}
}

// CreateElement creates a detached element. A non-empty id is registered
// for lookup; if the id is already taken the earlier element keeps it.
func (d *Document) CreateElement(kind ElementKind, id string) *Element {
	e := &Element{
		doc:       d,
		kind:      kind,
		caps:      kind.Capabilities(),
		id:        id,
		transform: Identity(),
	}
	if id != "" {
		if _, taken := d.byID[id]; !taken {
			d.byID[id] = e
		}
	}
	d.touch()
	return e
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	return d.byID[id]
}

// ResolveURL returns the element referenced by the fragment of ref, for
// example "#tile" or "doc.svg#tile". A reference that does not parse, has
// no fragment or names no element resolves to nil.
func (d *Document) ResolveURL(ref string) *Element {
	if ref == "" {
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil || u.Fragment == "" {
		return nil
	}
	return d.ElementByID(u.Fragment)
}

// Generation returns a counter that increases on every mutation of the
// document or its elements.
func (d *Document) Generation() uint64 { return d.generation }

// SetLayoutEngine installs the engine used by [Document.UpdateLayout].
func (d *Document) SetLayoutEngine(engine LayoutEngine) {
	d.engine = engine
	d.layoutDirty = true
}

// UpdateLayout runs the layout engine if a change is pending.
func (d *Document) UpdateLayout() {
	if d.engine == nil || !d.layoutDirty {
		return
	}
	d.layoutDirty = false
	d.engine.UpdateLayout(d)
}

func (d *Document) touch() { d.generation++ }

func (d *Document) invalidateLayout() {
	d.layoutDirty = true
	d.touch()
}
