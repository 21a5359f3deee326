package treebuilder

import (
	"testing"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/token"
)

func TestNoahsArkRemovesEarliestOfThreeMatches(t *testing.T) {
	tb := New(false, nil)
	var elems []*dom.Element
	for i := 0; i < 4; i++ {
		el := tb.alloc.NewElement("b")
		tb.appendActiveFormattingElement(el, []token.Attribute{{Name: "class", Value: "x"}})
		elems = append(elems, el)
	}

	if len(tb.activeFormatting) != 3 {
		t.Fatalf("Noah's Ark clause should cap identical entries at 3, got %d", len(tb.activeFormatting))
	}
	if tb.findActiveFormatting(elems[0]) != -1 {
		t.Fatalf("earliest matching entry should have been evicted")
	}
	for _, el := range elems[1:] {
		if tb.findActiveFormatting(el) == -1 {
			t.Fatalf("later matching entries should survive the Noah's Ark eviction")
		}
	}
}

func TestNoahsArkDoesNotCrossMarker(t *testing.T) {
	tb := New(false, nil)
	for i := 0; i < 3; i++ {
		el := tb.alloc.NewElement("b")
		tb.appendActiveFormattingElement(el, nil)
	}
	tb.pushFormattingMarker()
	fourth := tb.alloc.NewElement("b")
	tb.appendActiveFormattingElement(fourth, nil)

	// The marker should have reset the matching window, so all 3
	// pre-marker entries plus the marker plus the new entry survive.
	if len(tb.activeFormatting) != 5 {
		t.Fatalf("marker should stop Noah's Ark eviction from crossing it, got %d entries", len(tb.activeFormatting))
	}
}

func TestClearActiveFormattingElementsToMarker(t *testing.T) {
	tb := New(false, nil)
	tb.appendActiveFormattingElement(tb.alloc.NewElement("b"), nil)
	tb.pushFormattingMarker()
	tb.appendActiveFormattingElement(tb.alloc.NewElement("i"), nil)
	tb.appendActiveFormattingElement(tb.alloc.NewElement("u"), nil)

	tb.clearActiveFormattingElementsToMarker()
	if len(tb.activeFormatting) != 1 {
		t.Fatalf("expected only the pre-marker entry to survive, got %d", len(tb.activeFormatting))
	}
	if tb.activeFormatting[0].name != "b" {
		t.Fatalf("expected the surviving entry to be b, got %q", tb.activeFormatting[0].name)
	}
}

func TestReconstructActiveFormattingElementsClonesMissingEntries(t *testing.T) {
	tb := New(false, nil)
	pushElement(tb, "html")
	pushElement(tb, "body")

	// b is in the active formatting list (e.g. left over from a
	// table's "clear to marker" boundary) but was never pushed back
	// onto the stack of open elements after the table closed.
	b := tb.alloc.NewElement("b")
	dom.AppendChild(tb.currentElement(), b)
	tb.appendActiveFormattingElement(b, nil)

	tb.reconstructActiveFormattingElements()

	cur := tb.currentElement()
	if cur.TagName != "b" {
		t.Fatalf("reconstruction should have pushed a clone of b back onto the stack, got %q", cur.TagName)
	}
	if cur == b {
		t.Fatalf("reconstruction must clone, not reuse, the original element")
	}
	if tb.activeFormatting[0].node != cur {
		t.Fatalf("active formatting entry should now point at the clone")
	}
}
