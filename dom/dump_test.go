package dom

import "testing"

func TestDumpSimpleTree(t *testing.T) {
	a := NewAllocator()
	doc := a.NewDocument()
	html := a.NewElement("html")
	body := a.NewElement("body")
	AppendChild(doc, html)
	AppendChild(html, body)
	AppendChild(body, a.NewText("hi"))

	got := Dump(doc)
	want := "<html>\n" +
		"| <body>\n" +
		"| | \"hi\"\n"
	if got != want {
		t.Fatalf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestDumpAttributesSortedByName(t *testing.T) {
	a := NewAllocator()
	div := a.NewElement("div")
	div.SetAttr("zeta", "1")
	div.SetAttr("alpha", "2")

	got := Dump(div)
	want := "<div>\n" +
		"| alpha=\"2\"\n" +
		"| zeta=\"1\"\n"
	if got != want {
		t.Fatalf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestDumpTemplateContent(t *testing.T) {
	a := NewAllocator()
	tmpl := a.NewElement("template")
	AppendChild(tmpl.TemplateContent, a.NewText("x"))

	got := Dump(tmpl)
	want := "<template>\n" +
		"| content\n" +
		"| | \"x\"\n"
	if got != want {
		t.Fatalf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestDumpForeignElementNamespace(t *testing.T) {
	a := NewAllocator()
	svg := a.NewElementNS("svg", "svg")

	got := Dump(svg)
	want := "<svg svg>\n"
	if got != want {
		t.Fatalf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestDumpDoctype(t *testing.T) {
	a := NewAllocator()
	doc := a.NewDocument()
	doc.Doctype = a.NewDocumentType("html", "", "")

	got := Dump(doc)
	want := "<!DOCTYPE html>\n"
	if got != want {
		t.Fatalf("Dump() =\n%s\nwant\n%s", got, want)
	}
}
