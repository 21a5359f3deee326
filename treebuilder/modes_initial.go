package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/token"
)

// processInitial implements the "initial" insertion mode (spec.md C7),
// grounded on JustGoHTML's mode_handlers.go processInitial: whitespace
// is ignored, a comment becomes a document-level child, a DOCTYPE
// computes quirks mode and becomes the document's Doctype, and anything
// else falls through to "before html" after reprocessing.
func (tb *TreeBuilder) processInitial(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		rest := trimLeadingWhitespace(tok.Chars)
		if rest == "" {
			return false
		}
		tok.Chars = rest
	case token.CommentToken:
		tb.insertCommentAt(tok, insertionLocation{parent: tb.document})
		return false
	case token.DoctypeToken:
		dt := tb.alloc.NewDocumentType(tok.Name, tok.PublicID, tok.SystemID)
		dom.AppendChild(tb.document, dt)
		tb.document.Doctype = dt
		tb.document.QuirksMode = computeQuirksMode(tok)
		tb.mode = BeforeHTML
		return false
	}
	tb.document.QuirksMode = dom.Quirks
	tb.mode = BeforeHTML
	return true
}

func trimLeadingWhitespace(s string) string {
	i := 0
	for i < len(s) {
		switch s[i] {
		case '\t', '\n', '\f', '\r', ' ':
			i++
		default:
			return s[i:]
		}
		_ = i
	}
	return s[i:]
}

// processBeforeHTML implements "before html": an <html> start tag
// creates the root element directly; anything else creates an implied
// root first and reprocesses in "before head".
func (tb *TreeBuilder) processBeforeHTML(tok token.Token) bool {
	switch tok.Type {
	case token.DoctypeToken:
		return false
	case token.CommentToken:
		tb.insertCommentAt(tok, insertionLocation{parent: tb.document})
		return false
	case token.CharacterToken:
		rest := trimLeadingWhitespace(tok.Chars)
		if rest == "" {
			return false
		}
		tok.Chars = rest
	case token.StartTagToken:
		if tok.TagName == "html" {
			tb.insertHTMLElement(tok)
			tb.mode = BeforeHead
			return false
		}
	case token.EndTagToken:
		switch tok.TagName {
		case "head", "body", "html", "br":
		default:
			return false
		}
	}
	tb.createImpliedHTMLRoot()
	tb.mode = BeforeHead
	return true
}

func (tb *TreeBuilder) createImpliedHTMLRoot() {
	el := tb.alloc.NewElement("html")
	dom.AppendChild(tb.document, el)
	tb.push(el)
}

// processBeforeHead implements "before head".
func (tb *TreeBuilder) processBeforeHead(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		rest := trimLeadingWhitespace(tok.Chars)
		if rest == "" {
			return false
		}
		tok.Chars = rest
	case token.CommentToken:
		tb.insertComment(tok)
		return false
	case token.DoctypeToken:
		return false
	case token.StartTagToken:
		switch tok.TagName {
		case "html":
			return tb.processInBody(tok)
		case "head":
			tb.headElement = tb.insertHTMLElement(tok)
			tb.mode = InHead
			return false
		}
	case token.EndTagToken:
		switch tok.TagName {
		case "head", "body", "html", "br":
		default:
			return false
		}
	}
	tb.headElement = tb.insertHTMLElement(token.Token{Type: token.StartTagToken, TagName: "head"})
	tb.mode = InHead
	return true
}

// processInHead implements "in head".
func (tb *TreeBuilder) processInHead(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		ws, rest := splitLeadingWhitespace(tok.Chars)
		if ws != "" {
			tb.insertCharacter(ws)
		}
		if rest == "" {
			return false
		}
		tok.Chars = rest
	case token.CommentToken:
		tb.insertComment(tok)
		return false
	case token.DoctypeToken:
		return false
	case token.StartTagToken:
		switch tok.TagName {
		case "html":
			return tb.processInBody(tok)
		case "base", "basefont", "bgsound", "link", "meta":
			tb.insertHTMLElement(tok)
			tb.popCurrent()
			return false
		case "title":
			tb.insertGenericText(tok, true)
			return false
		case "noscript":
			if tb.scripting {
				tb.insertGenericText(tok, false)
				return false
			}
			tb.insertHTMLElement(tok)
			tb.mode = InHeadNoscript
			return false
		case "noframes", "style":
			tb.insertGenericText(tok, false)
			return false
		case "script":
			tb.insertScriptElement(tok)
			return false
		case "template":
			tb.insertHTMLElement(tok)
			tb.pushFormattingMarker()
			tb.framesetOK = false
			tb.mode = InTemplate
			tb.templateModes = append(tb.templateModes, InTemplate)
			return false
		case "head":
			return false
		}
	case token.EndTagToken:
		switch tok.TagName {
		case "head":
			tb.popCurrent()
			tb.mode = AfterHead
			return false
		case "body", "html", "br":
		case "template":
			if !tb.elementInStack("template") {
				return false
			}
			tb.generateImpliedEndTagsThoroughly()
			tb.popUntil("template")
			tb.clearActiveFormattingElementsToMarker()
			if len(tb.templateModes) > 0 {
				tb.templateModes = tb.templateModes[:len(tb.templateModes)-1]
			}
			tb.resetInsertionModeAppropriately()
			return false
		default:
			return false
		}
	}
	tb.popCurrent()
	tb.mode = AfterHead
	return true
}

func splitLeadingWhitespace(s string) (ws, rest string) {
	i := 0
	for i < len(s) {
		switch s[i] {
		case '\t', '\n', '\f', '\r', ' ':
			i++
		default:
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// insertGenericText implements "generic RCDATA/raw text element
// parsing": insert the element, switch the tokenizer to RCDATA (rcdata
// == true, e.g. title/textarea) or RAWTEXT, remember the mode to return
// to, and switch to "text".
func (tb *TreeBuilder) insertGenericText(tok token.Token, rcdata bool) {
	tb.insertHTMLElement(tok)
	if tb.tokenizer != nil {
		if rcdata {
			tb.tokenizer.SwitchToRCDATA()
		} else {
			tb.tokenizer.SwitchToRAWTEXT()
		}
	}
	tb.originalMode = tb.mode
	tb.mode = Text
}

func (tb *TreeBuilder) insertScriptElement(tok token.Token) {
	tb.insertHTMLElement(tok)
	if tb.tokenizer != nil {
		tb.tokenizer.SwitchToScriptData()
	}
	tb.originalMode = tb.mode
	tb.mode = Text
}

// processInHeadNoscript implements "in head noscript".
func (tb *TreeBuilder) processInHeadNoscript(tok token.Token) bool {
	switch tok.Type {
	case token.DoctypeToken:
		return false
	case token.StartTagToken:
		switch tok.TagName {
		case "html":
			return tb.processInBody(tok)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return tb.processInHead(tok)
		}
	case token.EndTagToken:
		switch tok.TagName {
		case "noscript":
			tb.popCurrent()
			tb.mode = InHead
			return false
		case "br":
		default:
			return false
		}
	case token.CommentToken:
		return tb.processInHead(tok)
	case token.CharacterToken:
		if isAllWhitespace(tok.Chars) {
			return tb.processInHead(tok)
		}
	}
	tb.popCurrent()
	tb.mode = InHead
	return true
}

// processAfterHead implements "after head".
func (tb *TreeBuilder) processAfterHead(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		ws, rest := splitLeadingWhitespace(tok.Chars)
		if ws != "" {
			tb.insertCharacter(ws)
		}
		if rest == "" {
			return false
		}
		tok.Chars = rest
	case token.CommentToken:
		tb.insertComment(tok)
		return false
	case token.DoctypeToken:
		return false
	case token.StartTagToken:
		switch tok.TagName {
		case "html":
			return tb.processInBody(tok)
		case "body":
			tb.insertHTMLElement(tok)
			tb.framesetOK = false
			tb.mode = InBody
			return false
		case "frameset":
			tb.insertHTMLElement(tok)
			tb.mode = InFrameset
			return false
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
			"style", "template", "title":
			tb.openElements = append(tb.openElements, tb.headElement)
			reprocess := tb.processInHead(tok)
			tb.removeOpenElementIfPresent(tb.headElement)
			return reprocess
		case "head":
			return false
		}
	case token.EndTagToken:
		switch tok.TagName {
		case "template":
			return tb.processInHead(tok)
		case "body", "html", "br":
		default:
			return false
		}
	}
	tb.insertHTMLElement(token.Token{Type: token.StartTagToken, TagName: "body"})
	tb.mode = InBody
	return true
}

func (tb *TreeBuilder) removeOpenElementIfPresent(el *dom.Element) {
	if tb.currentElement() == el {
		tb.popCurrent()
	}
}
