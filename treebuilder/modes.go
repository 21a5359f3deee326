// Package treebuilder implements the tree construction half of the HTML5
// parsing algorithm (spec.md C5-C9): the stack of open elements and scope
// predicates, the active formatting element list, the 23-mode insertion
// dispatcher, the adoption agency algorithm, and the foreign-content
// router.
//
// Grounded primarily on chtml/html/parse.go (the teacher's x/net/html
// fork, truncated to in_body/text/after_body/foreign-content but the
// more literal port of the HTML Standard where it overlaps) and on
// other_examples' JustGoHTML treebuilder/builder.go and
// treebuilder/mode_handlers.go (the secondary source, which alone covers
// the table/select/template/frameset modes the teacher's file never
// reaches).
package treebuilder

import "github.com/corvidlabs/html5/token"

// InsertionMode names one of the HTML Standard's 23 tree construction
// modes (spec.md §4.4 "Insertion mode").
type InsertionMode int

const (
	Initial InsertionMode = iota
	BeforeHTML
	BeforeHead
	InHead
	InHeadNoscript
	AfterHead
	InBody
	Text
	InTable
	InTableText
	InCaption
	InColumnGroup
	InTableBody
	InRow
	InCell
	InSelect
	InSelectInTable
	InTemplate
	AfterBody
	InFrameset
	AfterFrameset
	AfterAfterBody
	AfterAfterFrameset
)

// ProcessToken runs tok through the insertion-mode dispatcher until it is
// fully consumed. A mode handler returns true when the token should be
// reprocessed (the dispatcher's outer switch having possibly changed
// tb.mode first), and false once tok has been handled.
//
// The dispatch loop checks the foreign-content router ahead of the
// insertion-mode switch on every iteration, mirroring
// chtml/html/parse.go's parseCurrentToken: "for !consumed { if
// p.inForeignContent() { ... } else { consumed = p.im(p) } }".
func (tb *TreeBuilder) ProcessToken(tok token.Token) {
	for {
		if !tb.forceHTMLMode && tb.shouldUseForeignContent(tok) {
			if !tb.processForeignContent(tok) {
				return
			}
			continue
		}
		tb.forceHTMLMode = false

		var reprocess bool
		switch tb.mode {
		case Initial:
			reprocess = tb.processInitial(tok)
		case BeforeHTML:
			reprocess = tb.processBeforeHTML(tok)
		case BeforeHead:
			reprocess = tb.processBeforeHead(tok)
		case InHead:
			reprocess = tb.processInHead(tok)
		case InHeadNoscript:
			reprocess = tb.processInHeadNoscript(tok)
		case AfterHead:
			reprocess = tb.processAfterHead(tok)
		case Text:
			reprocess = tb.processText(tok)
		case InBody:
			reprocess = tb.processInBody(tok)
		case InTable:
			reprocess = tb.processInTable(tok)
		case InTableText:
			reprocess = tb.processInTableText(tok)
		case InCaption:
			reprocess = tb.processInCaption(tok)
		case InColumnGroup:
			reprocess = tb.processInColumnGroup(tok)
		case InTableBody:
			reprocess = tb.processInTableBody(tok)
		case InRow:
			reprocess = tb.processInRow(tok)
		case InCell:
			reprocess = tb.processInCell(tok)
		case InSelect:
			reprocess = tb.processInSelect(tok)
		case InSelectInTable:
			reprocess = tb.processInSelectInTable(tok)
		case InTemplate:
			reprocess = tb.processInTemplate(tok)
		case AfterBody:
			reprocess = tb.processAfterBody(tok)
		case InFrameset:
			reprocess = tb.processInFrameset(tok)
		case AfterFrameset:
			reprocess = tb.processAfterFrameset(tok)
		case AfterAfterBody:
			reprocess = tb.processAfterAfterBody(tok)
		case AfterAfterFrameset:
			reprocess = tb.processAfterAfterFrameset(tok)
		default:
			reprocess = tb.processInBody(tok)
		}
		if !reprocess {
			return
		}
	}
}
