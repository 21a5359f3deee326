package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/constants"
	"github.com/corvidlabs/html5/token"
)

// processText implements the "text" insertion mode (spec.md C7 §12.2.6.4.8):
// characters are inserted verbatim, an end tag (almost always matching the
// element that switched into this mode) pops the current node and restores
// the original mode, and EOF pops the current node (marking a script
// "already started" in a full implementation, out of scope here) before
// reprocessing in the original mode.
func (tb *TreeBuilder) processText(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		tok.Chars = tb.consumeIgnoredLF(tok.Chars)
		if tok.Chars != "" {
			tb.insertCharacter(tok.Chars)
		}
		return false
	case token.EndTagToken:
		tb.popCurrent()
		tb.mode = tb.originalMode
		if tb.tokenizer != nil {
			tb.tokenizer.SwitchToData()
		}
		return false
	}
	// EOF or any other unexpected token: abandon the text element.
	tb.popCurrent()
	tb.mode = tb.originalMode
	return true
}

// processInBody implements the "in body" insertion mode (spec.md C7
// §12.2.6.4.7), the largest and most heavily exercised mode. Grounded
// directly on chtml/html/parse.go's inBodyIM, generalized from
// *html.Node/atom.Atom to *dom.Element/string tag names.
func (tb *TreeBuilder) processInBody(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		if containsNul(tok.Chars) {
			tok.Chars = replaceNul(tok.Chars)
		}
		tok.Chars = tb.consumeIgnoredLF(tok.Chars)
		tb.reconstructActiveFormattingElements()
		if tok.Chars != "" {
			tb.insertCharacter(tok.Chars)
		}
		if !isAllWhitespace(tok.Chars) {
			tb.framesetOK = false
		}
		return false
	case token.CommentToken:
		tb.insertComment(tok)
		return false
	case token.DoctypeToken:
		return false
	case token.StartTagToken:
		return tb.inBodyStartTag(tok)
	case token.EndTagToken:
		return tb.inBodyEndTag(tok)
	}
	// EOF: the HTML Standard checks the template-mode stack and stack
	// contents for "unexpected EOF" parse errors; construction-wise
	// there is nothing left to do, the parse simply stops.
	return false
}

func (tb *TreeBuilder) inBodyStartTag(tok token.Token) bool {
	switch tok.TagName {
	case "html":
		if html := tb.rootElement(); html != nil {
			for _, a := range tok.Attr {
				if !html.HasAttr(a.Name) {
					html.SetAttr(a.Name, a.Value)
				}
			}
		}
		return false
	case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
		"style", "template", "title":
		return tb.processInHead(tok)
	case "body":
		if body := tb.secondStackElement(); body != nil {
			tb.framesetOK = false
			for _, a := range tok.Attr {
				if !body.HasAttr(a.Name) {
					body.SetAttr(a.Name, a.Value)
				}
			}
		}
		return false
	case "frameset":
		if tb.framesetOK && len(tb.openElements) >= 2 {
			body := tb.secondStackElement()
			if body != nil {
				if parent := body.Parent(); parent != nil {
					dom.RemoveFromParent(body)
				}
			}
			tb.openElements = tb.openElements[:1]
			tb.insertHTMLElement(tok)
			tb.mode = InFrameset
		}
		return false
	case "address", "article", "aside", "blockquote", "center", "details",
		"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure",
		"footer", "header", "hgroup", "main", "menu", "nav", "ol", "p",
		"section", "summary", "ul":
		if tb.inButtonScope("p") {
			tb.closeP()
		}
		tb.insertHTMLElement(tok)
		return false
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if tb.inButtonScope("p") {
			tb.closeP()
		}
		if cur := tb.currentElement(); cur != nil {
			switch cur.TagName {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				tb.popCurrent()
			}
		}
		tb.insertHTMLElement(tok)
		return false
	case "pre", "listing":
		if tb.inButtonScope("p") {
			tb.closeP()
		}
		tb.insertHTMLElement(tok)
		tb.framesetOK = false
		tb.ignoreNextLF = true
		return false
	case "form":
		if tb.formElement != nil && !tb.elementInStack("template") {
			return false
		}
		if tb.inButtonScope("p") {
			tb.closeP()
		}
		el := tb.insertHTMLElement(tok)
		if !tb.elementInStack("template") {
			tb.formElement = el
		}
		return false
	case "li":
		tb.framesetOK = false
		for i := len(tb.openElements) - 1; i >= 0; i-- {
			el := tb.openElements[i]
			if el.TagName == "li" {
				tb.generateImpliedEndTags("li")
				tb.popUntil("li")
				break
			}
			if constants.IsSpecial(el.Namespace, el.TagName) && el.TagName != "address" && el.TagName != "div" && el.TagName != "p" {
				break
			}
		}
		if tb.inButtonScope("p") {
			tb.closeP()
		}
		tb.insertHTMLElement(tok)
		return false
	case "dd", "dt":
		tb.framesetOK = false
		for i := len(tb.openElements) - 1; i >= 0; i-- {
			el := tb.openElements[i]
			if el.TagName == "dd" || el.TagName == "dt" {
				tb.generateImpliedEndTags(el.TagName)
				tb.popUntil(el.TagName)
				break
			}
			if constants.IsSpecial(el.Namespace, el.TagName) && el.TagName != "address" && el.TagName != "div" && el.TagName != "p" {
				break
			}
		}
		if tb.inButtonScope("p") {
			tb.closeP()
		}
		tb.insertHTMLElement(tok)
		return false
	case "plaintext":
		if tb.inButtonScope("p") {
			tb.closeP()
		}
		tb.insertHTMLElement(tok)
		if tb.tokenizer != nil {
			tb.tokenizer.SwitchToPLAINTEXT()
		}
		return false
	case "button":
		if tb.inScope("button") {
			tb.generateImpliedEndTags()
			tb.popUntil("button")
		}
		tb.reconstructActiveFormattingElements()
		tb.insertHTMLElement(tok)
		tb.framesetOK = false
		return false
	case "a":
		for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
			e := tb.activeFormatting[i]
			if e.marker {
				break
			}
			if e.name == "a" {
				tb.runAdoptionAgency("a")
				tb.removeFromActiveFormatting(e.node)
				tb.removeOpenElementIfStackContains(e.node)
				break
			}
		}
		tb.reconstructActiveFormattingElements()
		el := tb.insertHTMLElement(tok)
		tb.appendActiveFormattingElement(el, tok.Attr)
		return false
	case "b", "big", "code", "em", "font", "i", "s", "small", "strike", "strong", "tt", "u":
		tb.reconstructActiveFormattingElements()
		el := tb.insertHTMLElement(tok)
		tb.appendActiveFormattingElement(el, tok.Attr)
		return false
	case "nobr":
		tb.reconstructActiveFormattingElements()
		if tb.inScope("nobr") {
			tb.runAdoptionAgency("nobr")
			tb.reconstructActiveFormattingElements()
		}
		el := tb.insertHTMLElement(tok)
		tb.appendActiveFormattingElement(el, tok.Attr)
		return false
	case "applet", "marquee", "object":
		tb.reconstructActiveFormattingElements()
		tb.insertHTMLElement(tok)
		tb.pushFormattingMarker()
		tb.framesetOK = false
		return false
	case "table":
		if tb.document.QuirksMode != dom.Quirks && tb.inButtonScope("p") {
			tb.closeP()
		}
		tb.insertHTMLElement(tok)
		tb.framesetOK = false
		tb.mode = InTable
		return false
	case "area", "br", "embed", "img", "keygen", "wbr":
		tb.reconstructActiveFormattingElements()
		tb.insertHTMLElement(tok)
		tb.popCurrent()
		tb.framesetOK = false
		return false
	case "input":
		tb.reconstructActiveFormattingElements()
		tb.insertHTMLElement(tok)
		tb.popCurrent()
		typ := ""
		for _, a := range tok.Attr {
			if a.Name == "type" {
				typ = a.Value
			}
		}
		if !eqFold(typ, "hidden") {
			tb.framesetOK = false
		}
		return false
	case "param", "source", "track":
		tb.insertHTMLElement(tok)
		tb.popCurrent()
		return false
	case "hr":
		if tb.inButtonScope("p") {
			tb.closeP()
		}
		tb.insertHTMLElement(tok)
		tb.popCurrent()
		tb.framesetOK = false
		return false
	case "image":
		tok.TagName = "img"
		return tb.inBodyStartTag(tok)
	case "textarea":
		tb.insertHTMLElement(tok)
		if tb.tokenizer != nil {
			tb.tokenizer.SwitchToRCDATA()
		}
		tb.framesetOK = false
		tb.ignoreNextLF = true
		tb.originalMode = tb.mode
		tb.mode = Text
		return false
	case "xmp":
		if tb.inButtonScope("p") {
			tb.closeP()
		}
		tb.reconstructActiveFormattingElements()
		tb.framesetOK = false
		tb.insertGenericText(tok, false)
		return false
	case "iframe":
		tb.framesetOK = false
		tb.insertGenericText(tok, false)
		return false
	case "noembed":
		tb.insertGenericText(tok, false)
		return false
	case "noscript":
		if tb.scripting {
			tb.insertGenericText(tok, false)
			return false
		}
		tb.reconstructActiveFormattingElements()
		tb.insertHTMLElement(tok)
		return false
	case "select":
		tb.reconstructActiveFormattingElements()
		tb.insertHTMLElement(tok)
		tb.framesetOK = false
		switch tb.mode {
		case InTable, InCaption, InTableBody, InRow, InCell:
			tb.mode = InSelectInTable
		default:
			tb.mode = InSelect
		}
		return false
	case "optgroup", "option":
		if cur := tb.currentElement(); cur != nil && cur.TagName == "option" {
			tb.popCurrent()
		}
		tb.reconstructActiveFormattingElements()
		tb.insertHTMLElement(tok)
		return false
	case "rb", "rtc":
		if tb.inScope("ruby") {
			tb.generateImpliedEndTags()
		}
		tb.insertHTMLElement(tok)
		return false
	case "rp", "rt":
		if tb.inScope("ruby") {
			tb.generateImpliedEndTags("rtc")
		}
		tb.insertHTMLElement(tok)
		return false
	case "math":
		tb.reconstructActiveFormattingElements()
		tb.insertForeignStart(tok, "math")
		return false
	case "svg":
		tb.reconstructActiveFormattingElements()
		tb.insertForeignStart(tok, "svg")
		return false
	case "caption", "col", "colgroup", "frame", "head", "tbody", "td", "tfoot", "th", "thead", "tr":
		return false
	}
	if constants.FormattingElements[tok.TagName] {
		tb.reconstructActiveFormattingElements()
		el := tb.insertHTMLElement(tok)
		tb.appendActiveFormattingElement(el, tok.Attr)
		return false
	}
	tb.reconstructActiveFormattingElements()
	tb.insertHTMLElement(tok)
	if constants.VoidElements[tok.TagName] || tok.SelfClosing {
		tb.popCurrent()
	}
	return false
}

func (tb *TreeBuilder) inBodyEndTag(tok token.Token) bool {
	switch tok.TagName {
	case "body":
		if !tb.inScope("body") {
			return false
		}
		tb.mode = AfterBody
		return false
	case "html":
		if !tb.inScope("body") {
			return false
		}
		tb.mode = AfterBody
		return true
	case "address", "article", "aside", "blockquote", "button", "center",
		"details", "dialog", "dir", "div", "dl", "fieldset", "figcaption",
		"figure", "footer", "header", "hgroup", "listing", "main", "menu",
		"nav", "ol", "pre", "section", "summary", "ul":
		if !tb.inScope(tok.TagName) {
			return false
		}
		tb.generateImpliedEndTags()
		tb.popUntil(tok.TagName)
		return false
	case "form":
		if !tb.elementInStack("template") {
			form := tb.formElement
			tb.formElement = nil
			if form == nil || !tb.elementOnStack(form) {
				return false
			}
			tb.generateImpliedEndTags()
			tb.popOpenElement(form)
			return false
		}
		if !tb.inScope("form") {
			return false
		}
		tb.generateImpliedEndTags()
		tb.popUntil("form")
		return false
	case "p":
		if !tb.inButtonScope("p") {
			tb.insertHTMLElement(token.Token{Type: token.StartTagToken, TagName: "p"})
		}
		tb.closeP()
		return false
	case "li":
		if !tb.inListItemScope("li") {
			return false
		}
		tb.generateImpliedEndTags("li")
		tb.popUntil("li")
		return false
	case "dd", "dt":
		if !tb.inScope(tok.TagName) {
			return false
		}
		tb.generateImpliedEndTags(tok.TagName)
		tb.popUntil(tok.TagName)
		return false
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if !tb.inScope("h1") && !tb.inScope("h2") && !tb.inScope("h3") &&
			!tb.inScope("h4") && !tb.inScope("h5") && !tb.inScope("h6") {
			return false
		}
		tb.generateImpliedEndTags()
		tb.popUntilOneOf("h1", "h2", "h3", "h4", "h5", "h6")
		return false
	case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small",
		"strike", "strong", "tt", "u":
		tb.runAdoptionAgency(tok.TagName)
		return false
	case "applet", "marquee", "object":
		if !tb.inScope(tok.TagName) {
			return false
		}
		tb.generateImpliedEndTags()
		tb.popUntil(tok.TagName)
		tb.clearActiveFormattingElementsToMarker()
		return false
	case "br":
		tb.reconstructActiveFormattingElements()
		tb.insertHTMLElement(token.Token{Type: token.StartTagToken, TagName: "br"})
		tb.popCurrent()
		tb.framesetOK = false
		return false
	}
	tb.inBodyEndTagOther(tok.TagName)
	return false
}

// closeP implements the repeated "close a p element" step: generate
// implied end tags except p, then pop until a p element is popped.
func (tb *TreeBuilder) closeP() {
	tb.generateImpliedEndTags("p")
	tb.popUntil("p")
}

func (tb *TreeBuilder) rootElement() *dom.Element {
	if len(tb.openElements) == 0 {
		return nil
	}
	return tb.openElements[0]
}

func (tb *TreeBuilder) secondStackElement() *dom.Element {
	if len(tb.openElements) < 2 {
		return nil
	}
	return tb.openElements[1]
}

func (tb *TreeBuilder) removeOpenElementIfStackContains(el *dom.Element) {
	if i := tb.stackIndexOf(el); i != -1 {
		tb.removeOpenElementAt(i)
	}
}

func (tb *TreeBuilder) popOpenElement(el *dom.Element) {
	if i := tb.stackIndexOf(el); i != -1 {
		tb.openElements = tb.openElements[:i]
	}
}

// insertForeignStart inserts a math/svg start tag as a foreign element,
// adjusting its attributes and tag-name casing the same way the foreign
// content router does, then pops it immediately if self-closing.
func (tb *TreeBuilder) insertForeignStart(tok token.Token, namespace string) {
	adjustedTok := tok
	if namespace == "svg" {
		adjustedTok.TagName = adjustSVGTagName(tok.TagName)
	}
	adjusted := make([]token.Attribute, len(tok.Attr))
	copy(adjusted, tok.Attr)
	if namespace == "svg" {
		for i := range adjusted {
			if n, ok := svgAttributeAdjustments[adjusted[i].Name]; ok {
				adjusted[i].Name = n
			}
		}
	} else if namespace == "math" {
		for i := range adjusted {
			if n, ok := mathMLAttributeAdjustments[adjusted[i].Name]; ok {
				adjusted[i].Name = n
			}
		}
	}
	adjustedTok.Attr = adjusted
	tb.insertElementNS(adjustedTok, namespace)
	if tok.SelfClosing {
		tb.popCurrent()
	}
}
