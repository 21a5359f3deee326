package treebuilder

import "github.com/corvidlabs/html5/token"

// processInSelect implements "in select" (spec.md C7 §12.2.6.4.16):
// option/optgroup nest by popping the previous one of the same or
// shallower kind first, and any table-context start/end tag or a select
// end tag closes the select element entirely.
func (tb *TreeBuilder) processInSelect(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		if containsNul(tok.Chars) {
			tok.Chars = replaceNul(tok.Chars)
		}
		tb.insertCharacter(tok.Chars)
		return false
	case token.CommentToken:
		tb.insertComment(tok)
		return false
	case token.DoctypeToken:
		return false
	case token.StartTagToken:
		switch tok.TagName {
		case "html":
			return tb.processInBody(tok)
		case "option":
			if cur := tb.currentElement(); cur != nil && cur.TagName == "option" {
				tb.popCurrent()
			}
			tb.insertHTMLElement(tok)
			return false
		case "optgroup":
			if cur := tb.currentElement(); cur != nil && cur.TagName == "option" {
				tb.popCurrent()
			}
			if cur := tb.currentElement(); cur != nil && cur.TagName == "optgroup" {
				tb.popCurrent()
			}
			tb.insertHTMLElement(tok)
			return false
		case "select":
			if !tb.inSelectScope("select") {
				return false
			}
			tb.popUntil("select")
			tb.resetInsertionModeAppropriately()
			return false
		case "input", "keygen", "textarea":
			if !tb.inSelectScope("select") {
				return false
			}
			tb.popUntil("select")
			tb.resetInsertionModeAppropriately()
			return true
		case "script", "template":
			return tb.processInHead(tok)
		}
		return false
	case token.EndTagToken:
		switch tok.TagName {
		case "optgroup":
			if cur := tb.currentElement(); cur != nil && cur.TagName == "option" {
				if n := len(tb.openElements); n >= 2 && tb.openElements[n-2].TagName == "optgroup" {
					tb.popCurrent()
				}
			}
			if cur := tb.currentElement(); cur != nil && cur.TagName == "optgroup" {
				tb.popCurrent()
			}
			return false
		case "option":
			if cur := tb.currentElement(); cur != nil && cur.TagName == "option" {
				tb.popCurrent()
			}
			return false
		case "select":
			if !tb.inSelectScope("select") {
				return false
			}
			tb.popUntil("select")
			tb.resetInsertionModeAppropriately()
			return false
		case "template":
			return tb.processInHead(tok)
		}
		return false
	}
	return false
}

// processInSelectInTable implements "in select in table"
// (spec.md C7 §12.2.6.4.17): a table-structure tag closes the select
// before reprocessing; everything else delegates to "in select".
func (tb *TreeBuilder) processInSelectInTable(tok token.Token) bool {
	isTableContext := func(name string) bool {
		switch name {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			return true
		}
		return false
	}
	switch tok.Type {
	case token.StartTagToken:
		if isTableContext(tok.TagName) {
			tb.popUntil("select")
			tb.resetInsertionModeAppropriately()
			return true
		}
	case token.EndTagToken:
		if isTableContext(tok.TagName) {
			if !tb.inTableScope(tok.TagName) {
				return false
			}
			tb.popUntil("select")
			tb.resetInsertionModeAppropriately()
			return true
		}
	}
	return tb.processInSelect(tok)
}

// processInTemplate implements "in template" (spec.md C7
// §12.2.6.4.18): most tokens defer to whichever mode is on top of the
// template insertion mode stack; structural start tags push a new
// template mode the way they do in the body/table/select families.
func (tb *TreeBuilder) processInTemplate(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken, token.CommentToken, token.DoctypeToken:
		return tb.processInBody(tok)
	case token.StartTagToken:
		switch tok.TagName {
		case "base", "basefont", "bgsound", "link", "meta", "noframes",
			"script", "style", "template", "title":
			return tb.processInHead(tok)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			tb.popTemplateMode()
			tb.pushTemplateMode(InTable)
			tb.mode = InTable
			return true
		case "col":
			tb.popTemplateMode()
			tb.pushTemplateMode(InColumnGroup)
			tb.mode = InColumnGroup
			return true
		case "tr":
			tb.popTemplateMode()
			tb.pushTemplateMode(InTableBody)
			tb.mode = InTableBody
			return true
		case "td", "th":
			tb.popTemplateMode()
			tb.pushTemplateMode(InRow)
			tb.mode = InRow
			return true
		default:
			tb.popTemplateMode()
			tb.pushTemplateMode(InBody)
			tb.mode = InBody
			return true
		}
	case token.EndTagToken:
		if tok.TagName == "template" {
			return tb.processInHead(tok)
		}
		return false
	}
	return false
}

func (tb *TreeBuilder) pushTemplateMode(m InsertionMode) {
	tb.templateModes = append(tb.templateModes, m)
}

func (tb *TreeBuilder) popTemplateMode() {
	if len(tb.templateModes) > 0 {
		tb.templateModes = tb.templateModes[:len(tb.templateModes)-1]
	}
}
