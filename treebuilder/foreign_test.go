package treebuilder

import (
	"testing"

	"github.com/corvidlabs/html5/token"
)

func TestShouldUseForeignContentBasics(t *testing.T) {
	tb := New(false, nil)
	pushElement(tb, "html")
	pushElement(tb, "body")
	if tb.shouldUseForeignContent(chars("x")) {
		t.Fatalf("HTML-namespace current node must not route through foreign content")
	}

	svg := tb.alloc.NewElementNS("svg", "svg")
	tb.push(svg)
	if !tb.shouldUseForeignContent(startTag("rect")) {
		t.Fatalf("an svg current node should route ordinary start tags through foreign content")
	}
	if !tb.InForeignContent() {
		t.Fatalf("InForeignContent should reflect the svg current node")
	}
}

func TestMathMLTextIntegrationPointExitsForeignContent(t *testing.T) {
	tb := New(false, nil)
	pushElement(tb, "html")
	pushElement(tb, "body")
	mi := tb.alloc.NewElementNS("mi", "math")
	tb.push(mi)

	if tb.shouldUseForeignContent(chars("text")) {
		t.Fatalf("character tokens inside a MathML text-integration point stay in HTML rules")
	}
	if tb.shouldUseForeignContent(startTag("div")) {
		t.Fatalf("an HTML start tag (not mglyph/malignmark) inside mi stays in HTML rules")
	}
	if !tb.shouldUseForeignContent(startTag("mglyph")) {
		t.Fatalf("mglyph is the one start tag that stays in foreign content inside mi")
	}
}

func TestIsForeignBreakoutOnFontWithAttributes(t *testing.T) {
	plain := startTag("font")
	if isForeignBreakout(plain) {
		t.Fatalf("a bare <font> with no color/face/size is not a breakout tag")
	}
	withColor := startTag("font")
	withColor.Attr = []token.Attribute{{Name: "color", Value: "red"}}
	if !isForeignBreakout(withColor) {
		t.Fatalf("<font color=...> must be treated as a foreign-content breakout tag")
	}
	if !isForeignBreakout(startTag("b")) {
		t.Fatalf("b is in the unconditional foreign-content breakout set")
	}
}

func TestAdjustSVGTagName(t *testing.T) {
	if got := adjustSVGTagName("foreignobject"); got != "foreignObject" {
		t.Fatalf("adjustSVGTagName(foreignobject) = %q, want foreignObject", got)
	}
	if got := adjustSVGTagName("rect"); got != "rect" {
		t.Fatalf("adjustSVGTagName(rect) = %q, want unchanged rect", got)
	}
}
