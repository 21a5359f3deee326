package treebuilder

import "github.com/corvidlabs/html5/token"

// processAfterBody implements "after body" (spec.md C7 §12.2.6.4.19),
// grounded on chtml/html/parse.go's afterBodyIM: whitespace and
// comments are accepted (the comment attaches to the <html> element,
// not the document), an </html> end tag moves to "after after body",
// and anything else reprocesses in "in body".
func (tb *TreeBuilder) processAfterBody(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		if isAllWhitespace(tok.Chars) {
			return tb.processInBody(tok)
		}
	case token.CommentToken:
		if html := tb.rootElement(); html != nil {
			tb.insertCommentAt(tok, insertionLocation{parent: html})
		}
		return false
	case token.DoctypeToken:
		return false
	case token.StartTagToken:
		if tok.TagName == "html" {
			return tb.processInBody(tok)
		}
	case token.EndTagToken:
		if tok.TagName == "html" {
			tb.mode = AfterAfterBody
			return false
		}
	}
	tb.mode = InBody
	return true
}

// processInFrameset implements "in frameset" (spec.md C7 §12.2.6.4.20).
func (tb *TreeBuilder) processInFrameset(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		if isAllWhitespace(tok.Chars) {
			tb.insertCharacter(tok.Chars)
		}
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
		case "frameset":
			tb.insertHTMLElement(tok)
			return false
		case "frame":
			tb.insertHTMLElement(tok)
			tb.popCurrent()
			return false
		case "noframes":
			return tb.processInHead(tok)
		}
		return false
	case token.EndTagToken:
		if tok.TagName == "frameset" {
			if cur := tb.currentElement(); cur != nil && cur.TagName == "html" {
				return false
			}
			tb.popCurrent()
			if cur := tb.currentElement(); cur != nil && cur.TagName != "frameset" {
				tb.mode = AfterFrameset
			}
			return false
		}
		return false
	}
	return false
}

// processAfterFrameset implements "after frameset" (spec.md C7
// §12.2.6.4.21).
func (tb *TreeBuilder) processAfterFrameset(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		if isAllWhitespace(tok.Chars) {
			tb.insertCharacter(tok.Chars)
		}
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
		case "noframes":
			return tb.processInHead(tok)
		}
		return false
	case token.EndTagToken:
		if tok.TagName == "html" {
			tb.mode = AfterAfterFrameset
			return false
		}
		return false
	}
	return false
}

// processAfterAfterBody implements "after after body" (spec.md C7
// §12.2.6.4.22).
func (tb *TreeBuilder) processAfterAfterBody(tok token.Token) bool {
	switch tok.Type {
	case token.CommentToken:
		tb.insertCommentAt(tok, insertionLocation{parent: tb.document})
		return false
	case token.DoctypeToken:
		return tb.processInBody(tok)
	case token.CharacterToken:
		if isAllWhitespace(tok.Chars) {
			return tb.processInBody(tok)
		}
	case token.StartTagToken:
		if tok.TagName == "html" {
			return tb.processInBody(tok)
		}
	}
	tb.mode = InBody
	return true
}

// processAfterAfterFrameset implements "after after frameset"
// (spec.md C7 §12.2.6.4.23).
func (tb *TreeBuilder) processAfterAfterFrameset(tok token.Token) bool {
	switch tok.Type {
	case token.CommentToken:
		tb.insertCommentAt(tok, insertionLocation{parent: tb.document})
		return false
	case token.DoctypeToken:
		return tb.processInBody(tok)
	case token.CharacterToken:
		if isAllWhitespace(tok.Chars) {
			return tb.processInBody(tok)
		}
	case token.StartTagToken:
		switch tok.TagName {
		case "html":
			return tb.processInBody(tok)
		case "noframes":
			return tb.processInHead(tok)
		}
	}
	return false
}
