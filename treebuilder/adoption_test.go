package treebuilder

import (
	"testing"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/token"
)

// feed processes a sequence of tokens through the InBody-family dispatcher,
// matching how ProcessToken routes them (skipping the foreign-content check,
// since these tests never enter a foreign namespace).
func feed(tb *TreeBuilder, toks ...token.Token) {
	for _, tok := range toks {
		for {
			reprocess := false
			switch tb.mode {
			case InBody:
				reprocess = tb.processInBody(tok)
			case InTable:
				reprocess = tb.processInTable(tok)
			case InTableText:
				reprocess = tb.processInTableText(tok)
			case InRow:
				reprocess = tb.processInRow(tok)
			case InCell:
				reprocess = tb.processInCell(tok)
			case InTableBody:
				reprocess = tb.processInTableBody(tok)
			default:
				reprocess = tb.processInBody(tok)
			}
			if !reprocess {
				break
			}
		}
	}
}

func startTag(name string) token.Token { return token.Token{Type: token.StartTagToken, TagName: name} }
func endTag(name string) token.Token   { return token.Token{Type: token.EndTagToken, TagName: name} }
func chars(s string) token.Token       { return token.Token{Type: token.CharacterToken, Chars: s} }

func newBodyTreeBuilder() *TreeBuilder {
	tb := New(false, nil)
	pushElement(tb, "html")
	pushElement(tb, "body")
	tb.mode = InBody
	tb.framesetOK = true
	return tb
}

// TestAdoptionAgencyNoFurthestBlock exercises the algorithm's simplest
// branch: the formatting element has nothing special above it on the
// stack, so it is simply popped off (HTML Standard step 9).
func TestAdoptionAgencyNoFurthestBlock(t *testing.T) {
	tb := newBodyTreeBuilder()
	feed(tb, startTag("b"), chars("1"), endTag("b"))

	body := tb.openElements[1]
	if got := dom.Dump(body); got != "<body>\n| <b>\n| | \"1\"\n" {
		t.Fatalf("unexpected tree:\n%s", got)
	}
	if len(tb.activeFormatting) != 0 {
		t.Fatalf("expected b's entry removed from active formatting, got %d entries", len(tb.activeFormatting))
	}
}

// TestAdoptionAgencyMisnestedTags reproduces the HTML Standard's classic
// "<b>1<i>2</b>3</i>" adoption-agency example: the <b> closes without its
// matching open, forcing <i> to be split and reopened around "3".
func TestAdoptionAgencyMisnestedTags(t *testing.T) {
	tb := newBodyTreeBuilder()
	feed(tb,
		startTag("b"), chars("1"),
		startTag("i"), chars("2"),
		endTag("b"),
		chars("3"),
		endTag("i"),
	)

	body := tb.openElements[1]
	want := "<body>\n" +
		"| <b>\n" +
		"| | \"1\"\n" +
		"| | <i>\n" +
		"| | | \"2\"\n" +
		"| <i>\n" +
		"| | \"3\"\n"
	if got := dom.Dump(body); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

// TestAdoptionAgencyRelocatesFurthestBlock covers the algorithm's general
// case with an intervening "special" element (<div>) between the
// formatting element and its end tag, which must be relocated under a
// clone of the formatting element.
func TestAdoptionAgencyRelocatesFurthestBlock(t *testing.T) {
	tb := newBodyTreeBuilder()
	feed(tb,
		startTag("a"), chars("1"),
		startTag("div"), chars("2"),
		endTag("a"),
	)

	body := tb.openElements[1]
	want := "<body>\n" +
		"| <a>\n" +
		"| | \"1\"\n" +
		"| <div>\n" +
		"| | <a>\n" +
		"| | | \"2\"\n"
	if got := dom.Dump(body); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
	if len(tb.openElements) != 3 {
		t.Fatalf("expected stack [html, body, div] once the second outer-loop pass pops the a-clone, got %d elements", len(tb.openElements))
	}
	if tb.currentElement().TagName != "div" {
		t.Fatalf("expected <div> on top of the stack, got %q", tb.currentElement().TagName)
	}
}
