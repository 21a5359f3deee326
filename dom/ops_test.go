package dom

import "testing"

func TestAppendChildCoalescesText(t *testing.T) {
	a := NewAllocator()
	div := a.NewElement("div")
	AppendChild(div, a.NewText("hello"))
	AppendChild(div, a.NewText(" world"))

	if got := len(div.Children()); got != 1 {
		t.Fatalf("Children() length = %d, want 1 (text should coalesce)", got)
	}
	text, ok := div.FirstChild().(*Text)
	if !ok {
		t.Fatalf("first child is %T, want *Text", div.FirstChild())
	}
	if text.Data != "hello world" {
		t.Fatalf("Data = %q, want %q", text.Data, "hello world")
	}
}

func TestAppendChildNonTextDoesNotCoalesce(t *testing.T) {
	a := NewAllocator()
	div := a.NewElement("div")
	AppendChild(div, a.NewText("a"))
	AppendChild(div, a.NewElement("span"))
	AppendChild(div, a.NewText("b"))

	children := div.Children()
	if len(children) != 3 {
		t.Fatalf("Children() length = %d, want 3", len(children))
	}
	if _, ok := children[1].(*Element); !ok {
		t.Fatalf("children[1] = %T, want *Element", children[1])
	}
}

func TestInsertBeforeCoalescesWithPrecedingText(t *testing.T) {
	a := NewAllocator()
	div := a.NewElement("div")
	AppendChild(div, a.NewText("foo"))
	span := a.NewElement("span")
	AppendChild(div, span)

	InsertBefore(div, a.NewText("bar"), span)

	children := div.Children()
	if len(children) != 2 {
		t.Fatalf("Children() length = %d, want 2", len(children))
	}
	text := children[0].(*Text)
	if text.Data != "foobar" {
		t.Fatalf("Data = %q, want %q", text.Data, "foobar")
	}
}

func TestRemoveFromParent(t *testing.T) {
	a := NewAllocator()
	div := a.NewElement("div")
	x := a.NewElement("x")
	y := a.NewElement("y")
	z := a.NewElement("z")
	AppendChild(div, x)
	AppendChild(div, y)
	AppendChild(div, z)

	RemoveFromParent(y)

	children := div.Children()
	if len(children) != 2 || children[0] != Node(x) || children[1] != Node(z) {
		t.Fatalf("Children() = %v, want [x z]", children)
	}
	if y.Parent() != nil || y.PrevSibling() != nil || y.NextSibling() != nil {
		t.Fatalf("removed node still linked: parent=%v prev=%v next=%v", y.Parent(), y.PrevSibling(), y.NextSibling())
	}
	if x.NextSibling() != Node(z) || z.PrevSibling() != Node(x) {
		t.Fatalf("sibling links not repaired after removal")
	}
}

func TestMoveAllChildren(t *testing.T) {
	a := NewAllocator()
	src := a.NewElement("src")
	dst := a.NewElement("dst")
	AppendChild(src, a.NewElement("a"))
	AppendChild(src, a.NewElement("b"))
	AppendChild(dst, a.NewElement("existing"))

	MoveAllChildren(dst, src)

	if len(src.Children()) != 0 {
		t.Fatalf("src should be childless after move, got %d children", len(src.Children()))
	}
	dstChildren := dst.Children()
	if len(dstChildren) != 3 {
		t.Fatalf("dst Children() length = %d, want 3", len(dstChildren))
	}
	for _, c := range dstChildren {
		if c.Parent() != Node(dst) {
			t.Fatalf("moved child parent = %v, want dst", c.Parent())
		}
	}
}
