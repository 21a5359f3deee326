package treebuilder

import (
	"github.com/corvidlabs/html5/internal/perrors"
	"github.com/corvidlabs/html5/token"
)

// processInTable implements "in table" (spec.md C7 §12.2.6.4.9),
// grounded on JustGoHTML's processInTable: table-structure start tags
// open the relevant context, text is buffered into InTableText, and
// anything the table doesn't allow falls back to in_body with foster
// parenting enabled for the duration.
func (tb *TreeBuilder) processInTable(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		if cur := tb.currentElement(); cur != nil {
			switch cur.TagName {
			case "table", "tbody", "tfoot", "thead", "tr":
				tb.pendingTableChars = nil
				tb.tableTextOriginalMode = tb.mode
				tb.mode = InTableText
				return true
			}
		}
	case token.CommentToken:
		tb.insertComment(tok)
		return false
	case token.DoctypeToken:
		return false
	case token.StartTagToken:
		switch tok.TagName {
		case "caption":
			tb.clearStackBackToTable()
			tb.pushFormattingMarker()
			tb.insertHTMLElement(tok)
			tb.mode = InCaption
			return false
		case "colgroup":
			tb.clearStackBackToTable()
			tb.insertHTMLElement(tok)
			tb.mode = InColumnGroup
			return false
		case "col":
			tb.clearStackBackToTable()
			tb.insertHTMLElement(token.Token{Type: token.StartTagToken, TagName: "colgroup"})
			tb.mode = InColumnGroup
			return true
		case "tbody", "tfoot", "thead":
			tb.clearStackBackToTable()
			tb.insertHTMLElement(tok)
			tb.mode = InTableBody
			return false
		case "td", "th", "tr":
			tb.clearStackBackToTable()
			tb.insertHTMLElement(token.Token{Type: token.StartTagToken, TagName: "tbody"})
			tb.mode = InTableBody
			return true
		case "table":
			if !tb.inTableScope("table") {
				return false
			}
			tb.popUntil("table")
			tb.resetInsertionModeAppropriately()
			return true
		case "style", "script", "template":
			return tb.processInHead(tok)
		case "input":
			typ := ""
			for _, a := range tok.Attr {
				if a.Name == "type" {
					typ = a.Value
				}
			}
			if eqFold(typ, "hidden") {
				tb.insertHTMLElement(tok)
				tb.popCurrent()
				return false
			}
		case "form":
			if tb.formElement != nil || tb.elementInStack("template") {
				return false
			}
			el := tb.insertHTMLElement(tok)
			tb.popCurrent()
			tb.formElement = el
			return false
		}
	case token.EndTagToken:
		switch tok.TagName {
		case "table":
			if !tb.inTableScope("table") {
				return false
			}
			tb.popUntil("table")
			tb.resetInsertionModeAppropriately()
			return false
		case "body", "caption", "col", "colgroup", "html", "tbody", "td",
			"tfoot", "th", "thead", "tr":
			return false
		case "template":
			return tb.processInHead(tok)
		}
	}
	tb.fosterParenting = true
	reprocess := tb.processInBody(tok)
	tb.fosterParenting = false
	return reprocess
}

func (tb *TreeBuilder) clearStackBackToTable() {
	for {
		cur := tb.currentElement()
		if cur == nil {
			return
		}
		switch cur.TagName {
		case "table", "template", "html":
			return
		}
		tb.popCurrent()
	}
}

func (tb *TreeBuilder) clearStackBackToTableBody() {
	for {
		cur := tb.currentElement()
		if cur == nil {
			return
		}
		switch cur.TagName {
		case "tbody", "tfoot", "thead", "template", "html":
			return
		}
		tb.popCurrent()
	}
}

func (tb *TreeBuilder) clearStackBackToTableRow() {
	for {
		cur := tb.currentElement()
		if cur == nil {
			return
		}
		switch cur.TagName {
		case "tr", "template", "html":
			return
		}
		tb.popCurrent()
	}
}

// processInTableText implements "in table text": buffer every character
// token until a non-character token arrives, then flush, routing
// through foster parenting for non-whitespace, per spec.md C7
// §12.2.6.4.10.
func (tb *TreeBuilder) processInTableText(tok token.Token) bool {
	if tok.Type == token.CharacterToken {
		if containsNul(tok.Chars) {
			tok.Chars = replaceNul(tok.Chars)
		}
		tb.pendingTableChars = append(tb.pendingTableChars, tok)
		return false
	}
	anyNonWhitespace := false
	for _, t := range tb.pendingTableChars {
		if !isAllWhitespace(t.Chars) {
			anyNonWhitespace = true
			break
		}
	}
	if anyNonWhitespace {
		tb.reportError(perrors.NonSpaceCharacterInTableText)
		tb.fosterParenting = true
		for _, t := range tb.pendingTableChars {
			tb.reconstructActiveFormattingElements()
			tb.reportError(perrors.FosterParentedCharacter)
			tb.insertCharacter(t.Chars)
			tb.framesetOK = false
		}
		tb.fosterParenting = false
	} else {
		for _, t := range tb.pendingTableChars {
			tb.insertCharacter(t.Chars)
		}
	}
	tb.pendingTableChars = nil
	tb.mode = tb.tableTextOriginalMode
	return true
}

// processInCaption implements "in caption" (spec.md C7 §12.2.6.4.11).
func (tb *TreeBuilder) processInCaption(tok token.Token) bool {
	switch tok.Type {
	case token.StartTagToken:
		switch tok.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !tb.inTableScope("caption") {
				return false
			}
			tb.popUntil("caption")
			tb.clearActiveFormattingElementsToMarker()
			tb.mode = InTable
			return true
		}
	case token.EndTagToken:
		switch tok.TagName {
		case "caption":
			if !tb.inTableScope("caption") {
				return false
			}
			tb.generateImpliedEndTags()
			tb.popUntil("caption")
			tb.clearActiveFormattingElementsToMarker()
			tb.mode = InTable
			return false
		case "table":
			if !tb.inTableScope("caption") {
				return false
			}
			tb.popUntil("caption")
			tb.clearActiveFormattingElementsToMarker()
			tb.mode = InTable
			return true
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			return false
		}
	}
	return tb.processInBody(tok)
}

// processInColumnGroup implements "in column group" (spec.md C7
// §12.2.6.4.12).
func (tb *TreeBuilder) processInColumnGroup(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		ws, rest := splitLeadingWhitespace(tok.Chars)
		if ws != "" {
			tb.insertCharacter(ws)
		}
		if rest == "" {
			return false
		}
	case token.CommentToken:
		tb.insertComment(tok)
		return false
	case token.DoctypeToken:
		return false
	case token.StartTagToken:
		switch tok.TagName {
		case "html":
			return tb.processInBody(tok)
		case "col":
			tb.insertHTMLElement(tok)
			tb.popCurrent()
			return false
		case "template":
			return tb.processInHead(tok)
		}
	case token.EndTagToken:
		switch tok.TagName {
		case "colgroup":
			if cur := tb.currentElement(); cur == nil || cur.TagName != "colgroup" {
				return false
			}
			tb.popCurrent()
			tb.mode = InTable
			return false
		case "col":
			return false
		case "template":
			return tb.processInHead(tok)
		}
	}
	if cur := tb.currentElement(); cur == nil || cur.TagName != "colgroup" {
		return false
	}
	tb.popCurrent()
	tb.mode = InTable
	return true
}

// processInTableBody implements "in table body" (spec.md C7 §12.2.6.4.13).
func (tb *TreeBuilder) processInTableBody(tok token.Token) bool {
	switch tok.Type {
	case token.StartTagToken:
		switch tok.TagName {
		case "tr":
			tb.clearStackBackToTableBody()
			tb.insertHTMLElement(tok)
			tb.mode = InRow
			return false
		case "th", "td":
			tb.clearStackBackToTableBody()
			tb.insertHTMLElement(token.Token{Type: token.StartTagToken, TagName: "tr"})
			tb.mode = InRow
			return true
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !tb.inTableScope("tbody") && !tb.inTableScope("thead") && !tb.inTableScope("tfoot") {
				return false
			}
			tb.clearStackBackToTableBody()
			tb.popCurrent()
			tb.mode = InTable
			return true
		}
	case token.EndTagToken:
		switch tok.TagName {
		case "tbody", "tfoot", "thead":
			if !tb.inTableScope(tok.TagName) {
				return false
			}
			tb.clearStackBackToTableBody()
			tb.popCurrent()
			tb.mode = InTable
			return false
		case "table":
			if !tb.inTableScope("tbody") && !tb.inTableScope("thead") && !tb.inTableScope("tfoot") {
				return false
			}
			tb.clearStackBackToTableBody()
			tb.popCurrent()
			tb.mode = InTable
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			return false
		}
	}
	return tb.processInTable(tok)
}

// processInRow implements "in row" (spec.md C7 §12.2.6.4.14).
func (tb *TreeBuilder) processInRow(tok token.Token) bool {
	switch tok.Type {
	case token.StartTagToken:
		switch tok.TagName {
		case "th", "td":
			tb.clearStackBackToTableRow()
			tb.insertHTMLElement(tok)
			tb.mode = InCell
			tb.pushFormattingMarker()
			return false
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !tb.inTableScope("tr") {
				return false
			}
			tb.clearStackBackToTableRow()
			tb.popCurrent()
			tb.mode = InTableBody
			return true
		}
	case token.EndTagToken:
		switch tok.TagName {
		case "tr":
			if !tb.inTableScope("tr") {
				return false
			}
			tb.clearStackBackToTableRow()
			tb.popCurrent()
			tb.mode = InTableBody
			return false
		case "table":
			if !tb.inTableScope("tr") {
				return false
			}
			tb.clearStackBackToTableRow()
			tb.popCurrent()
			tb.mode = InTableBody
			return true
		case "tbody", "tfoot", "thead":
			if !tb.inTableScope(tok.TagName) || !tb.inTableScope("tr") {
				return false
			}
			tb.clearStackBackToTableRow()
			tb.popCurrent()
			tb.mode = InTableBody
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			return false
		}
	}
	return tb.processInTable(tok)
}

// processInCell implements "in cell" (spec.md C7 §12.2.6.4.15).
func (tb *TreeBuilder) processInCell(tok token.Token) bool {
	switch tok.Type {
	case token.StartTagToken:
		switch tok.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !tb.inTableScope("td") && !tb.inTableScope("th") {
				return false
			}
			tb.closeCell()
			return true
		}
	case token.EndTagToken:
		switch tok.TagName {
		case "td", "th":
			if !tb.inTableScope(tok.TagName) {
				return false
			}
			tb.generateImpliedEndTags()
			tb.popUntil(tok.TagName)
			tb.clearActiveFormattingElementsToMarker()
			tb.mode = InRow
			return false
		case "body", "caption", "col", "colgroup", "html":
			return false
		case "table", "tbody", "tfoot", "thead", "tr":
			if tok.TagName != "table" && !tb.inTableScope(tok.TagName) {
				return false
			}
			if !tb.inTableScope("td") && !tb.inTableScope("th") {
				return false
			}
			tb.closeCell()
			return true
		}
	}
	return tb.processInBody(tok)
}

func (tb *TreeBuilder) closeCell() {
	tb.generateImpliedEndTags()
	tb.popUntilOneOf("td", "th")
	tb.clearActiveFormattingElementsToMarker()
	tb.mode = InRow
}
