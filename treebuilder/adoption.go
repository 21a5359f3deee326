package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/constants"
)

// runAdoptionAgency implements the HTML Standard's adoption agency
// algorithm for an end tag named tagName (spec.md C8), grounded on
// chtml/html/parse.go's inBodyEndTagFormatting: an outer loop of up to
// 8 iterations, each finding the subject formatting element, locating
// the furthest block, computing a common ancestor and bookmark, running
// the inner node loop (cloning any active-formatting node reused more
// than 3 times), and finally relocating the subject element's cloned
// copy to wrap the furthest block's children before fixing up the
// active formatting list and the stack of open elements.
func (tb *TreeBuilder) runAdoptionAgency(tagName string) {
	for i := 0; i < 8; i++ {
		// Step 1/2: if the current node is an HTML element named
		// tagName and it is not in the active formatting list, pop it
		// and stop: this is the "simple" case the algorithm special
		// cases before the general loop.
		if cur := tb.currentElement(); cur != nil && cur.TagName == tagName && cur.Namespace == "" {
			if tb.findActiveFormatting(cur) == -1 {
				tb.popCurrent()
				return
			}
		}

		// Step 5/6: find the formatting element, searching from the
		// end of the list back to the last marker.
		feIdx := -1
		for j := len(tb.activeFormatting) - 1; j >= 0; j-- {
			e := tb.activeFormatting[j]
			if e.marker {
				break
			}
			if e.name == tagName {
				feIdx = j
				break
			}
		}
		if feIdx == -1 {
			tb.inBodyEndTagOther(tagName)
			return
		}
		fe := tb.activeFormatting[feIdx].node

		// Step 7: formatting element must be on the stack of open
		// elements.
		feStackIdx := tb.stackIndexOf(fe)
		if feStackIdx == -1 {
			tb.removeFromActiveFormatting(fe)
			return
		}
		// Step 8: must be in scope.
		if !tb.inScope(tagName) {
			return
		}

		// Step 10: find the furthest block: the topmost (lowest index)
		// element above fe on the stack that is "special".
		furthestIdx := -1
		for j := feStackIdx + 1; j < len(tb.openElements); j++ {
			el := tb.openElements[j]
			if constants.IsSpecial(el.Namespace, el.TagName) {
				furthestIdx = j
				break
			}
		}

		if furthestIdx == -1 {
			// Step 9: no furthest block: pop everything up through fe
			// and drop it from the active formatting list.
			tb.openElements = tb.openElements[:feStackIdx]
			tb.removeFromActiveFormatting(fe)
			return
		}

		furthestBlock := tb.openElements[furthestIdx]
		// Step 13: the common ancestor is the element immediately below
		// fe on the stack.
		commonAncestor := tb.openElements[feStackIdx-1]

		// Step 14: bookmark starts at fe's position in the active
		// formatting list and tracks where the cloned fe is reinserted.
		bookmark := feIdx

		node := furthestBlock
		lastNode := furthestBlock
		nodeStackIdx := furthestIdx

		for innerLoop := 1; ; innerLoop++ {
			nodeStackIdx--
			if nodeStackIdx <= feStackIdx {
				break
			}
			node = tb.openElements[nodeStackIdx]
			nodeFormattingIdx := tb.findActiveFormatting(node)
			if nodeFormattingIdx == -1 {
				tb.removeOpenElementAt(nodeStackIdx)
				continue
			}
			if innerLoop > 3 {
				tb.removeFromActiveFormattingAt(nodeFormattingIdx)
				if nodeFormattingIdx <= bookmark {
					bookmark--
				}
				tb.removeOpenElementAt(nodeStackIdx)
				continue
			}
			clone := cloneElement(tb.alloc, node)
			tb.activeFormatting[nodeFormattingIdx] = formattingEntry{node: clone, name: clone.TagName, attrs: tb.activeFormatting[nodeFormattingIdx].attrs}
			tb.openElements[nodeStackIdx] = clone
			node = clone
			if lastNode == furthestBlock {
				bookmark = nodeFormattingIdx + 1
			}
			dom.RemoveFromParent(lastNode)
			dom.AppendChild(clone, lastNode)
			lastNode = clone
		}

		// Step 15: reattach lastNode to the common ancestor, using
		// foster parenting if the ancestor is a table-family element.
		dom.RemoveFromParent(lastNode)
		if isFosterTarget(commonAncestor.TagName) && commonAncestor.Namespace == "" {
			loc := tb.fosterInsertionLocationFor(commonAncestor)
			tb.insertAt(loc, lastNode)
		} else {
			dom.AppendChild(commonAncestor, lastNode)
		}

		// Steps 16-18: clone fe, move furthestBlock's children under
		// the clone, then attach the clone under furthestBlock.
		feClone := cloneElement(tb.alloc, fe)
		dom.ReparentChildren(feClone, furthestBlock)
		dom.AppendChild(furthestBlock, feClone)

		// Step 19: remove fe's old entry from the active formatting
		// list and insert the clone at the bookmark.
		tb.removeFromActiveFormattingAt(feIdx)
		if feIdx < bookmark {
			bookmark--
		}
		newEntry := formattingEntry{node: feClone, name: feClone.TagName}
		tb.activeFormatting = append(tb.activeFormatting, formattingEntry{})
		copy(tb.activeFormatting[bookmark+1:], tb.activeFormatting[bookmark:])
		tb.activeFormatting[bookmark] = newEntry

		// Step 20: remove fe from the stack of open elements and
		// insert the clone right after furthestBlock.
		tb.removeOpenElementAt(feStackIdx)
		furIdx := tb.stackIndexOf(furthestBlock)
		tb.openElements = append(tb.openElements, nil)
		copy(tb.openElements[furIdx+2:], tb.openElements[furIdx+1:])
		tb.openElements[furIdx+1] = feClone
	}
}

func (tb *TreeBuilder) stackIndexOf(el *dom.Element) int {
	for i, o := range tb.openElements {
		if o == el {
			return i
		}
	}
	return -1
}

func (tb *TreeBuilder) removeOpenElementAt(i int) {
	tb.openElements = append(tb.openElements[:i], tb.openElements[i+1:]...)
}

func (tb *TreeBuilder) removeFromActiveFormattingAt(i int) {
	tb.activeFormatting = append(tb.activeFormatting[:i], tb.activeFormatting[i+1:]...)
}

// fosterInsertionLocationFor is fosterInsertionLocation specialized to a
// known table-family ancestor, used by the adoption agency's step 15
// (the common ancestor, not necessarily the current node, decides
// foster parenting there).
func (tb *TreeBuilder) fosterInsertionLocationFor(ancestor *dom.Element) insertionLocation {
	idx := tb.stackIndexOf(ancestor)
	if idx == -1 {
		return insertionLocation{parent: ancestor}
	}
	saved := tb.openElements
	tb.openElements = tb.openElements[:idx+1]
	loc := tb.fosterInsertionLocation()
	tb.openElements = saved
	return loc
}

// inBodyEndTagOther implements the HTML Standard's "any other end tag"
// branch of the in body insertion mode: walk the stack from the top,
// popping elements, until an element with the matching tag name is
// popped, unless a special element is encountered first (in which case
// the end tag is ignored entirely).
func (tb *TreeBuilder) inBodyEndTagOther(tagName string) {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		el := tb.openElements[i]
		if el.TagName == tagName && el.Namespace == "" {
			tb.openElements = tb.openElements[:i]
			return
		}
		if constants.IsSpecial(el.Namespace, el.TagName) {
			return
		}
	}
}
