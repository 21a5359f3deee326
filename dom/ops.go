package dom

// Mutation operations. These are the only way to change parent/child/
// sibling links; every insertion point in treebuilder goes through them so
// that adjacent-text coalescing (spec.md §4.2 "insert a character") stays
// in one place instead of being re-derived at each call site.
//
// Grounded on chtml/html/parse.go's addChild/addText/fosterParent and
// JustGoHTML's dom/insertNode/siblingTextBefore: both maintain the
// invariant that two Text nodes are never adjacent siblings by appending
// to an existing previous-sibling Text node instead of inserting a new
// one.

// AppendChild appends child as the last child of parent, coalescing into
// an existing trailing Text node when both parent's last child and child
// are Text.
func AppendChild(parent, child Node) {
	if t, ok := child.(*Text); ok {
		if prev, ok := parent.LastChild().(*Text); ok {
			prev.Data += t.Data
			return
		}
	}
	last := parent.LastChild()
	if last != nil {
		last.setNextSibling(child)
	} else {
		parent.setFirstChild(child)
	}
	child.setPrevSibling(last)
	child.setNextSibling(nil)
	parent.setLastChild(child)
	child.setParent(parent)
}

// InsertBefore inserts child immediately before reference under parent. If
// reference is nil, it behaves like AppendChild. Coalesces into an
// adjacent Text sibling the same way AppendChild does.
func InsertBefore(parent, child, reference Node) {
	if reference == nil {
		AppendChild(parent, child)
		return
	}
	if t, ok := child.(*Text); ok {
		if prev, ok := reference.PrevSibling().(*Text); ok {
			prev.Data += t.Data
			return
		}
		if next, ok := reference.(*Text); ok {
			next.Data = t.Data + next.Data
			return
		}
	}
	prev := reference.PrevSibling()
	child.setPrevSibling(prev)
	child.setNextSibling(reference)
	reference.setPrevSibling(child)
	if prev != nil {
		prev.setNextSibling(child)
	} else {
		parent.setFirstChild(child)
	}
	child.setParent(parent)
}

// RemoveFromParent detaches n from its parent and siblings. It is a no-op
// if n has no parent.
func RemoveFromParent(n Node) {
	parent := n.Parent()
	if parent == nil {
		return
	}
	prev, next := n.PrevSibling(), n.NextSibling()
	if prev != nil {
		prev.setNextSibling(next)
	} else {
		parent.setFirstChild(next)
	}
	if next != nil {
		next.setPrevSibling(prev)
	} else {
		parent.setLastChild(prev)
	}
	n.setParent(nil)
	n.setPrevSibling(nil)
	n.setNextSibling(nil)
}

// MoveAllChildren moves every child of src to the end of dst's children,
// preserving order, and leaves src childless. Each child goes through
// RemoveFromParent and AppendChild, so text coalescing applies. The tree
// builder does not call it; its adoption agency uses ReparentChildren.
func MoveAllChildren(dst, src Node) {
	child := src.FirstChild()
	for child != nil {
		next := child.NextSibling()
		RemoveFromParent(child)
		AppendChild(dst, child)
		child = next
	}
}

// ReparentChildren moves every child of src to become a child of dst
// without going through RemoveFromParent/AppendChild one at a time,
// preserving the coalescing-free invariant (callers only use this when
// src and dst never both end in Text, e.g. moving an element's children
// to a new element of the same kind during adoption agency clone steps).
func ReparentChildren(dst, src Node) {
	for c := src.FirstChild(); c != nil; c = c.NextSibling() {
		c.setParent(dst)
	}
	first, last := src.FirstChild(), src.LastChild()
	if first == nil {
		return
	}
	if dstLast := dst.LastChild(); dstLast != nil {
		dstLast.setNextSibling(first)
		first.setPrevSibling(dstLast)
	} else {
		dst.setFirstChild(first)
	}
	dst.setLastChild(last)
	src.setFirstChild(nil)
	src.setLastChild(nil)
}
