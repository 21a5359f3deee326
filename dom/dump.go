package dom

import (
	"fmt"
	"sort"
	"strings"
)

// Dump renders n and its descendants as the canonical "| "-indented tree
// format used throughout the test suite (spec.md §8 worked examples),
// grounded on chtml/parse_test.go's dumpLevel/dumpIndent. Each line is
// prefixed with level copies of "| ", matching html5lib's own tree-dump
// convention: attributes are sorted by name and rendered as
// name="value" lines, one per attribute, one level deeper than the
// element's own line; text nodes are rendered as their
// raw Data in double quotes, comments as "<!-- Data -->", and doctypes as
// <!DOCTYPE name> (with public/system identifiers appended when present).
func Dump(n Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpIndent(b *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		b.WriteString("| ")
	}
}

func dumpNode(b *strings.Builder, n Node, level int) {
	switch v := n.(type) {
	case *Document:
		if v.Doctype != nil {
			dumpNode(b, v.Doctype, level)
		}
		for c := v.FirstChild(); c != nil; c = c.NextSibling() {
			dumpNode(b, c, level)
		}
		return
	case *DocumentFragment:
		for c := v.FirstChild(); c != nil; c = c.NextSibling() {
			dumpNode(b, c, level)
		}
		return
	case *DocumentType:
		dumpIndent(b, level)
		b.WriteString("<!DOCTYPE ")
		b.WriteString(v.Name)
		if v.PublicID != "" || v.SystemID != "" {
			fmt.Fprintf(b, " %q %q", v.PublicID, v.SystemID)
		}
		b.WriteString(">\n")
		return
	case *Comment:
		dumpIndent(b, level)
		b.WriteString("<!-- ")
		b.WriteString(v.Data)
		b.WriteString(" -->\n")
		return
	case *Text:
		dumpIndent(b, level)
		fmt.Fprintf(b, "%q\n", v.Data)
		return
	case *Element:
		dumpIndent(b, level)
		b.WriteByte('<')
		if v.Namespace != "" {
			b.WriteString(v.Namespace)
			b.WriteByte(' ')
		}
		b.WriteString(v.TagName)
		b.WriteByte('>')
		b.WriteByte('\n')

		attrs := append([]Attr(nil), v.Attrs.All()...)
		sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name() < attrs[j].Name() })
		for _, a := range attrs {
			dumpIndent(b, level+1)
			fmt.Fprintf(b, "%s=%q\n", a.Name(), a.Value)
		}

		childLevel := level + 1
		if v.TemplateContent != nil {
			dumpIndent(b, childLevel)
			b.WriteString("content\n")
			for c := v.TemplateContent.FirstChild(); c != nil; c = c.NextSibling() {
				dumpNode(b, c, childLevel+1)
			}
			return
		}
		for c := v.FirstChild(); c != nil; c = c.NextSibling() {
			dumpNode(b, c, childLevel)
		}
		return
	}
}
