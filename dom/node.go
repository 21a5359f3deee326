// Package dom implements the arena-backed DOM store (spec.md C4): an
// append-only collection of element/text/comment/doctype records reachable
// only through opaque handles, with parent/child edges maintained as a
// doubly linked sibling list (the same node shape golang.org/x/net/html
// uses, see chtml/html/node.go) so that adoption-agency reparenting is an
// O(1) pointer rewrite rather than a slice splice.
//
// Handles are the node pointer types themselves (*Element, *Text, ...): Go
// pointers already behave like opaque handles (callers cannot forge one,
// equality is reference identity, and a zero value is meaningfully "no
// node"), so there is no separate generation-counter/index indirection
// layered on top. The Allocator hands out node memory from fixed-size
// chunks per kind, grounded on JustGoHTML's dom/allocator.go, to keep a
// large parse from making one allocation per node.
package dom

// Node is the common interface implemented by every kind of DOM record:
// elements, text, comments, doctypes, the document, and template document
// fragments. It intentionally exposes only tree-navigation, not mutation;
// mutation happens exclusively through the package-level functions in
// ops.go so that text-coalescing and parent bookkeeping stay centralized.
type Node interface {
	Parent() Node
	FirstChild() Node
	LastChild() Node
	PrevSibling() Node
	NextSibling() Node

	// Children returns the node's children in document order. It walks the
	// sibling list on every call; callers that need repeated access in a
	// hot loop should cache the result.
	Children() []Node

	setParent(Node)
	setFirstChild(Node)
	setLastChild(Node)
	setPrevSibling(Node)
	setNextSibling(Node)
}

// baseNode implements the Node interface's navigation and linking half; it
// is embedded by every concrete node type.
type baseNode struct {
	parent                   Node
	firstChild, lastChild    Node
	prevSibling, nextSibling Node
}

func (b *baseNode) Parent() Node      { return b.parent }
func (b *baseNode) FirstChild() Node  { return b.firstChild }
func (b *baseNode) LastChild() Node   { return b.lastChild }
func (b *baseNode) PrevSibling() Node { return b.prevSibling }
func (b *baseNode) NextSibling() Node { return b.nextSibling }

func (b *baseNode) setParent(n Node)      { b.parent = n }
func (b *baseNode) setFirstChild(n Node)  { b.firstChild = n }
func (b *baseNode) setLastChild(n Node)   { b.lastChild = n }
func (b *baseNode) setPrevSibling(n Node) { b.prevSibling = n }
func (b *baseNode) setNextSibling(n Node) { b.nextSibling = n }

func (b *baseNode) Children() []Node {
	var out []Node
	for c := b.firstChild; c != nil; c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}

// QuirksMode records the document-level quirks classification computed
// from the DOCTYPE (spec.md §4.3, Glossary "Quirks mode"). The core only
// computes it; downstream rendering effects are out of scope.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	Quirks
	LimitedQuirks
)

// Document is the DOM top level: an optional Doctype, zero or more
// pre-html comments held as ordinary children, and (once parsing
// completes) exactly one html Element child.
type Document struct {
	baseNode
	Doctype    *DocumentType
	QuirksMode QuirksMode
}

// Html returns the document's root <html> element, or nil before it has
// been inserted.
func (d *Document) Html() *Element {
	for c := d.firstChild; c != nil; c = c.NextSibling() {
		if e, ok := c.(*Element); ok && e.Namespace == "" && e.TagName == "html" {
			return e
		}
	}
	return nil
}

// Head returns the <head> child of the document's <html> element, if any.
func (d *Document) Head() *Element {
	return firstChildElement(d.Html(), "head")
}

// Body returns the <body> or <frameset> child of the document's <html>
// element, if any (spec.md refers to this pointer as form_element's
// sibling concept; here it is a plain lookup rather than a maintained
// pointer, since nothing needs O(1) access before the tree is final).
func (d *Document) Body() *Element {
	if html := d.Html(); html != nil {
		for c := html.firstChild; c != nil; c = c.NextSibling() {
			if e, ok := c.(*Element); ok && e.Namespace == "" && (e.TagName == "body" || e.TagName == "frameset") {
				return e
			}
		}
	}
	return nil
}

func firstChildElement(of *Element, tag string) *Element {
	if of == nil {
		return nil
	}
	for c := of.firstChild; c != nil; c = c.NextSibling() {
		if e, ok := c.(*Element); ok && e.Namespace == "" && e.TagName == tag {
			return e
		}
	}
	return nil
}

// DocumentFragment backs a <template> element's "content" identity
// (spec.md §4.4): children of a template element attach here, not
// directly to the template node.
type DocumentFragment struct {
	baseNode
}

// Element is an HTML or foreign (svg/math) element record.
type Element struct {
	baseNode

	// TagName is the bare local name (e.g. "div", "foreignObject").
	TagName string

	// Namespace is "" for HTML, or "svg"/"math" for foreign elements.
	Namespace string

	Attrs *Attributes

	// TemplateContent is non-nil only for TagName == "template" in the
	// HTML namespace; its children are the template's fragment.
	TemplateContent *DocumentFragment
}

func (e *Element) HasAttr(name string) bool   { return e.Attrs.Has(name) }
func (e *Element) SetAttr(name, value string) { e.Attrs.Set(name, value) }
func (e *Element) GetAttr(name string) string { v, _ := e.Attrs.Get(name); return v }

// Text is a run of character data. Adjacent text nodes under the same
// parent are never allowed to coexist; ops.go enforces coalescing at
// insertion time.
type Text struct {
	baseNode
	Data string
}

// Comment holds comment data.
type Comment struct {
	baseNode
	Data string
}

// DocumentType is a DOCTYPE declaration (spec.md §3 Doctype token, minus
// the force_quirks bit, which only matters during quirks-mode computation
// and is not part of the final tree).
type DocumentType struct {
	baseNode
	Name     string
	PublicID string
	SystemID string
}
