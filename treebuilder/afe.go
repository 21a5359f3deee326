package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/token"
)

// formattingEntry is one slot in the list of active formatting elements
// (spec.md C6). A marker entry (node == nil) delimits scopes introduced
// by table cells, captions, objects, applets, marquees, and templates,
// per the HTML Standard's "list of active formatting elements" section.
// Grounded on chtml/html/node.go's scopeMarkerNode/scopeMarker plus
// JustGoHTML's formattingEntry shape.
type formattingEntry struct {
	node   *dom.Element
	name   string
	attrs  []token.Attribute
	marker bool
}

var scopeMarker = formattingEntry{marker: true}

// pushFormattingMarker appends a scope marker, used when entering
// applet/object/marquee/table-cell/template/caption contexts.
func (tb *TreeBuilder) pushFormattingMarker() {
	tb.activeFormatting = append(tb.activeFormatting, scopeMarker)
}

// appendActiveFormattingElement implements the "Noah's Ark clause": if
// three elements matching el's name and attribute set (in
// any order) already occur between the end of the list and the last
// marker, the earliest of them is removed first.
func (tb *TreeBuilder) appendActiveFormattingElement(el *dom.Element, attrs []token.Attribute) {
	matches := 0
	matchIdx := -1
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		e := tb.activeFormatting[i]
		if e.marker {
			break
		}
		if e.name == el.TagName && sameAttrs(e.attrs, attrs) {
			matches++
			if matches == 3 {
				matchIdx = i
				break
			}
		}
	}
	if matchIdx >= 0 {
		tb.activeFormatting = append(tb.activeFormatting[:matchIdx], tb.activeFormatting[matchIdx+1:]...)
	}
	tb.activeFormatting = append(tb.activeFormatting, formattingEntry{node: el, name: el.TagName, attrs: attrs})
}

func sameAttrs(a, b []token.Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		found := false
		for _, y := range b {
			if x.Name == y.Name && x.Value == y.Value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// clearActiveFormattingElementsToMarker removes entries from the end of
// the list up to and including the nearest marker (used on entering a
// table cell, caption, etc. context's close and on </table>/</select>
// boundaries per the relevant HTML Standard insertion-mode steps).
func (tb *TreeBuilder) clearActiveFormattingElementsToMarker() {
	for len(tb.activeFormatting) > 0 {
		i := len(tb.activeFormatting) - 1
		e := tb.activeFormatting[i]
		tb.activeFormatting = tb.activeFormatting[:i]
		if e.marker {
			return
		}
	}
}

// removeFromActiveFormatting deletes el's entry, if any.
func (tb *TreeBuilder) removeFromActiveFormatting(el *dom.Element) {
	for i, e := range tb.activeFormatting {
		if e.node == el {
			tb.activeFormatting = append(tb.activeFormatting[:i], tb.activeFormatting[i+1:]...)
			return
		}
	}
}

// findActiveFormatting returns the index of el's entry, or -1.
func (tb *TreeBuilder) findActiveFormatting(el *dom.Element) int {
	for i, e := range tb.activeFormatting {
		if e.node == el {
			return i
		}
	}
	return -1
}

// reconstructActiveFormattingElements implements the HTML Standard's
// "reconstruct the active formatting elements" algorithm: walk
// backwards from the end of the list until an entry already on the
// stack of open elements (or a marker, or the start of the list) is
// found, then walk forward re-creating and re-inserting a clone of each
// skipped entry, grounded on chtml/html/parse.go's
// reconstructActiveFormattingElements.
func (tb *TreeBuilder) reconstructActiveFormattingElements() {
	if len(tb.activeFormatting) == 0 {
		return
	}
	last := len(tb.activeFormatting) - 1
	entry := tb.activeFormatting[last]
	if entry.marker || tb.elementOnStack(entry.node) {
		return
	}
	i := last
	for i > 0 {
		i--
		entry = tb.activeFormatting[i]
		if entry.marker || tb.elementOnStack(entry.node) {
			i++
			break
		}
	}
	for ; i <= last; i++ {
		entry := &tb.activeFormatting[i]
		clone := cloneElement(tb.alloc, entry.node)
		loc := tb.appropriateInsertionLocation()
		tb.insertAt(loc, clone)
		tb.push(clone)
		entry.node = clone
	}
}

func (tb *TreeBuilder) elementOnStack(el *dom.Element) bool {
	for _, o := range tb.openElements {
		if o == el {
			return true
		}
	}
	return false
}

// cloneElement makes a shallow copy of el (tag, namespace, attributes),
// with no parent, children or siblings, per the HTML Standard's "clone
// a node" used throughout adoption agency and afe reconstruction.
// Grounded on chtml/html/node.go's cloneNode.
func cloneElement(alloc *dom.Allocator, el *dom.Element) *dom.Element {
	clone := alloc.NewElementNS(el.TagName, el.Namespace)
	for i := 0; i < el.Attrs.Len(); i++ {
		a := el.Attrs.At(i)
		clone.Attrs.SetNS(a.Prefix, a.Local, a.Value)
	}
	return clone
}
