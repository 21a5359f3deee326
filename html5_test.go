package html5

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/corvidlabs/html5/dom"
)

// TestParse exercises Parse end to end across the tree construction modes,
// grounded on chtml/parse_test.go's table-driven dump-comparison style.
func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "simple element",
			text: "<p>Test</p>",
			want: "<html>\n" +
				"| <head>\n" +
				"| <body>\n" +
				"| | <p>\n" +
				"| | | \"Test\"\n",
		},
		{
			name: "p auto-closed by p",
			text: "<p>one<p>two",
			want: "<html>\n" +
				"| <head>\n" +
				"| <body>\n" +
				"| | <p>\n" +
				"| | | \"one\"\n" +
				"| | <p>\n" +
				"| | | \"two\"\n",
		},
		{
			name: "li auto-closed by li",
			text: "<ul><li>ABC<li>DEF</ul>",
			want: "<html>\n" +
				"| <head>\n" +
				"| <body>\n" +
				"| | <ul>\n" +
				"| | | <li>\n" +
				"| | | | \"ABC\"\n" +
				"| | | <li>\n" +
				"| | | | \"DEF\"\n",
		},
		{
			name: "table text foster-parented before table",
			text: "<table>x<tr><td>y</td></tr></table>",
			want: "<html>\n" +
				"| <head>\n" +
				"| <body>\n" +
				"| | \"x\"\n" +
				"| | <table>\n" +
				"| | | <tbody>\n" +
				"| | | | <tr>\n" +
				"| | | | | <td>\n" +
				"| | | | | | \"y\"\n",
		},
		{
			name: "mis-nested formatting runs the adoption agency",
			text: "<p><b>1<i>2</b>3</i></p>",
			want: "<html>\n" +
				"| <head>\n" +
				"| <body>\n" +
				"| | <p>\n" +
				"| | | <b>\n" +
				"| | | | \"1\"\n" +
				"| | | | <i>\n" +
				"| | | | | \"2\"\n" +
				"| | | <i>\n" +
				"| | | | \"3\"\n",
		},
		{
			name: "svg foreign content adjusts tag and attr case",
			text: `<svg viewBox="0 0 1 1"><path /></svg>`,
			want: "<html>\n" +
				"| <head>\n" +
				"| <body>\n" +
				"| | <svg svg>\n" +
				"| | | viewBox=\"0 0 1 1\"\n" +
				"| | | <svg path>\n",
		},
		{
			name: "doctype is dumped ahead of the html element",
			text: "<!DOCTYPE html><p>x",
			want: "<!DOCTYPE html>\n" +
				"<html>\n" +
				"| <head>\n" +
				"| <body>\n" +
				"| | <p>\n" +
				"| | | \"x\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.text), Options{Scripting: true})
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.text, err)
			}
			got := dom.Dump(doc.Tree)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

// TestParseQuirksMode checks the DOCTYPE-driven quirks classification
// independently of the tree shape (spec.md §4.3).
func TestParseQuirksMode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want dom.QuirksMode
	}{
		{name: "no doctype", text: "<p>x", want: dom.Quirks},
		{name: "html5 doctype", text: "<!DOCTYPE html><p>x", want: dom.NoQuirks},
		{
			name: "html4 transitional with system id",
			text: `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd"><p>x`,
			want: dom.NoQuirks,
		},
		{
			name: "html4 transitional without system id",
			text: `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN"><p>x`,
			want: dom.Quirks,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.text), Options{Scripting: true})
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.text, err)
			}
			if doc.Tree.QuirksMode != tt.want {
				t.Fatalf("QuirksMode = %v, want %v", doc.Tree.QuirksMode, tt.want)
			}
		})
	}
}

// TestParseFragment exercises the "parsing HTML fragments" algorithm
// (spec.md §5) against a handful of context elements.
func TestParseFragment(t *testing.T) {
	tests := []struct {
		name string
		ctx  FragmentContext
		text string
		want string
	}{
		{
			name: "td context uses in-cell semantics",
			ctx:  FragmentContext{TagName: "td"},
			text: "one<p>two",
			want: "\"one\"\n" +
				"<p>\n" +
				"| \"two\"\n",
		},
		{
			name: "select context ignores disallowed start tags but keeps their text",
			ctx:  FragmentContext{TagName: "select"},
			text: "<option>A<option>B<div>ignored</div>",
			want: "<option>\n" +
				"| \"A\"\n" +
				"<option>\n" +
				"| \"Bignored\"\n",
		},
		{
			name: "title context is RCDATA",
			ctx:  FragmentContext{TagName: "title"},
			text: "<b>not an element</b>",
			want: "\"<b>not an element</b>\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := ParseFragment([]byte(tt.text), tt.ctx, Options{Scripting: true})
			if err != nil {
				t.Fatalf("ParseFragment(%q) error: %v", tt.text, err)
			}
			var got string
			for _, n := range nodes {
				got += dom.Dump(n)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ParseFragment(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

// TestParseFragmentRejectsEmptyContext checks the boundary validation
// spec.md §7/§12 require: an empty or malformed FragmentContext is a
// caller mistake rejected before any tokenizing happens, never a silent
// parse against a ""-named context element.
func TestParseFragmentRejectsEmptyContext(t *testing.T) {
	_, err := ParseFragment([]byte("x"), FragmentContext{}, Options{Scripting: true})
	if !errors.Is(err, ErrEmptyFragmentContext) {
		t.Fatalf("ParseFragment with empty context: got err %v, want ErrEmptyFragmentContext", err)
	}

	_, err = ParseFragment([]byte("x"), FragmentContext{TagName: "div", Namespace: "bogus"}, Options{Scripting: true})
	if !errors.Is(err, ErrUnknownFragmentNamespace) {
		t.Fatalf("ParseFragment with bogus namespace: got err %v, want ErrUnknownFragmentNamespace", err)
	}
}

// TestParsePreStripsLeadingLF checks spec.md §8's "Leading LF inside
// pre/textarea/listing is stripped iff it is the first character of the
// element's text" boundary behavior.
func TestParsePreStripsLeadingLF(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "leading newline swallowed",
			text: "<pre>\nfoo</pre>",
			want: "<html>\n" +
				"| <head>\n" +
				"| <body>\n" +
				"| | <pre>\n" +
				"| | | \"foo\"\n",
		},
		{
			name: "non-leading newline kept",
			text: "<pre>foo\nbar</pre>",
			want: "<html>\n" +
				"| <head>\n" +
				"| <body>\n" +
				"| | <pre>\n" +
				"| | | \"foo\\nbar\"\n",
		},
		{
			name: "listing swallows leading newline",
			text: "<listing>\nfoo</listing>",
			want: "<html>\n" +
				"| <head>\n" +
				"| <body>\n" +
				"| | <listing>\n" +
				"| | | \"foo\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.text), Options{Scripting: true})
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.text, err)
			}
			got := dom.Dump(doc.Tree)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

// TestParseFragmentTextareaStripsLeadingLF checks the same leading-LF
// rule for a textarea fragment context, where the element itself never
// appears in the dump but its first inserted text node still must drop
// the leading newline.
func TestParseFragmentTextareaStripsLeadingLF(t *testing.T) {
	nodes, err := ParseFragment([]byte("\nfoo"), FragmentContext{TagName: "textarea"}, Options{Scripting: true})
	if err != nil {
		t.Fatalf("ParseFragment error: %v", err)
	}
	var got string
	for _, n := range nodes {
		got += dom.Dump(n)
	}
	want := "\"foo\"\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseFragment textarea mismatch (-want +got):\n%s", diff)
	}
}
