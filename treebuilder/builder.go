package treebuilder

import (
	"strings"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/perrors"
	"github.com/corvidlabs/html5/token"
)

// TokenizerControl is the surface the tree constructor needs back onto
// the tokenizer: the "tree-builder feedback" loop spec.md §4.3 and §9
// describe, where tree construction switches the tokenizer into
// RCDATA/RAWTEXT/script-data/PLAINTEXT for generic text elements and
// reports foreign-content status for CDATA-vs-bogus-comment dispatch.
// *token.Tokenizer implements this.
type TokenizerControl interface {
	SwitchToRCDATA()
	SwitchToRAWTEXT()
	SwitchToScriptData()
	SwitchToPLAINTEXT()
	SwitchToData()
	SetForeignContent(bool)
}

// TreeBuilder owns the stack of open elements, the active formatting
// element list, and the current insertion mode, and drives the DOM
// store through an *dom.Allocator (spec.md C4 is the store; this
// package is purely a client of it, same as JustGoHTML's builder.go is
// a client of its dom package, except our Allocator hands out nodes
// through methods rather than package-level constructors).
type TreeBuilder struct {
	alloc *dom.Allocator

	document *dom.Document

	openElements []*dom.Element
	mode         InsertionMode
	originalMode InsertionMode

	headElement *dom.Element
	formElement *dom.Element

	activeFormatting []formattingEntry

	templateModes []InsertionMode

	pendingTableChars    []token.Token
	tableTextOriginalMode InsertionMode

	framesetOK     bool
	fosterParenting bool

	// ignoreNextLF implements spec.md §8's pre/listing/textarea leading-LF
	// rule: set right after such an element is inserted, consumed (and
	// cleared) by the next character token, whatever mode processes it.
	ignoreNextLF bool

	scripting bool

	fragmentContext *FragmentContext
	fragmentRoot    *dom.Element

	forceHTMLMode bool

	tokenizer TokenizerControl

	onError func(perrors.Code)
}

// SetErrorSink installs a callback invoked for every recoverable
// tree-construction error (spec.md §7 "parse errors"), the tree side of
// the same reporting channel token.Options.OnError gives the
// tokenizer. Not a constructor parameter because most treebuilder tests
// never need one (a nil onError is a silent no-op via reportError).
func (tb *TreeBuilder) SetErrorSink(f func(perrors.Code)) { tb.onError = f }

func (tb *TreeBuilder) reportError(code perrors.Code) {
	if tb.onError != nil {
		tb.onError(code)
	}
}

// New creates a TreeBuilder for a full document parse. tok is the
// Tokenizer feeding it tokens; it may be nil in tests that only exercise
// tree construction directly.
func New(scripting bool, tok TokenizerControl) *TreeBuilder {
	alloc := dom.NewAllocator()
	tb := &TreeBuilder{
		alloc:      alloc,
		document:   alloc.NewDocument(),
		mode:       Initial,
		framesetOK: true,
		scripting:  scripting,
		tokenizer:  tok,
	}
	return tb
}

// Document returns the document node accumulated so far.
func (tb *TreeBuilder) Document() *dom.Document { return tb.document }

func (tb *TreeBuilder) currentElement() *dom.Element {
	if len(tb.openElements) == 0 {
		return nil
	}
	return tb.openElements[len(tb.openElements)-1]
}

func (tb *TreeBuilder) currentNode() dom.Node {
	el := tb.currentElement()
	if el == nil {
		return nil
	}
	return el
}

func (tb *TreeBuilder) adjustedCurrentNode() *dom.Element {
	if tb.fragmentContext != nil && len(tb.openElements) == 1 {
		return tb.fragmentRoot
	}
	return tb.currentElement()
}

func (tb *TreeBuilder) popCurrent() {
	if len(tb.openElements) == 0 {
		return
	}
	tb.openElements = tb.openElements[:len(tb.openElements)-1]
}

func (tb *TreeBuilder) push(el *dom.Element) {
	tb.openElements = append(tb.openElements, el)
}

// insertionLocation names where the next node should be attached:
// either appended under parent, or spliced in before a given sibling.
type insertionLocation struct {
	parent    dom.Node
	reference dom.Node
}

// appropriateInsertionLocation implements spec.md C5's "appropriate
// place for inserting a node", grounded on JustGoHTML's
// appropriateInsertionLocation/shouldFosterForNode pair: templates
// insert into their content fragment; foster-parenting candidates
// redirect into/around the nearest table.
func (tb *TreeBuilder) appropriateInsertionLocation() insertionLocation {
	target := tb.currentElement()
	if target == nil {
		return insertionLocation{parent: tb.document}
	}
	if tb.fosterParenting && isFosterTarget(target.TagName) && target.Namespace == "" {
		return tb.fosterInsertionLocation()
	}
	if target.TagName == "template" && target.Namespace == "" && target.TemplateContent != nil {
		return insertionLocation{parent: target.TemplateContent}
	}
	return insertionLocation{parent: target}
}

func isFosterTarget(tag string) bool {
	switch tag {
	case "table", "tbody", "tfoot", "thead", "tr":
		return true
	}
	return false
}

// fosterInsertionLocation walks the stack looking for the last template
// or table; a template wins if it is higher on the stack (later/closer
// to the top) than any table found, per the HTML Standard's foster
// parenting algorithm.
func (tb *TreeBuilder) fosterInsertionLocation() insertionLocation {
	var lastTemplate, lastTable *dom.Element
	templateIdx, tableIdx := -1, -1
	for i, el := range tb.openElements {
		if el.TagName == "template" && el.Namespace == "" {
			lastTemplate, templateIdx = el, i
		}
		if el.TagName == "table" && el.Namespace == "" {
			lastTable, tableIdx = el, i
		}
	}
	if lastTemplate != nil && (lastTable == nil || templateIdx > tableIdx) {
		return insertionLocation{parent: lastTemplate.TemplateContent}
	}
	if lastTable == nil {
		return insertionLocation{parent: tb.openElements[0]}
	}
	if parent := lastTable.Parent(); parent != nil {
		return insertionLocation{parent: parent, reference: lastTable}
	}
	if tableIdx == 0 {
		return insertionLocation{parent: tb.openElements[0]}
	}
	return insertionLocation{parent: tb.openElements[tableIdx-1]}
}

func (tb *TreeBuilder) insertAt(loc insertionLocation, n dom.Node) {
	if loc.reference != nil {
		dom.InsertBefore(loc.parent, n, loc.reference)
		return
	}
	dom.AppendChild(loc.parent, n)
}

// insertHTMLElement creates an element for tok in the HTML namespace,
// inserts it at the appropriate place, and pushes it onto the stack of
// open elements.
func (tb *TreeBuilder) insertHTMLElement(tok token.Token) *dom.Element {
	return tb.insertElementNS(tok, "")
}

func (tb *TreeBuilder) insertElementNS(tok token.Token, namespace string) *dom.Element {
	el := tb.alloc.NewElementNS(tok.TagName, namespace)
	for _, a := range tok.Attr {
		el.SetAttr(a.Name, a.Value)
	}
	loc := tb.appropriateInsertionLocation()
	tb.insertAt(loc, el)
	tb.push(el)
	return el
}

func (tb *TreeBuilder) insertComment(tok token.Token) {
	c := tb.alloc.NewComment(tok.Data)
	loc := tb.appropriateInsertionLocation()
	tb.insertAt(loc, c)
}

func (tb *TreeBuilder) insertCommentAt(tok token.Token, loc insertionLocation) {
	c := tb.alloc.NewComment(tok.Data)
	tb.insertAt(loc, c)
}

func (tb *TreeBuilder) insertCharacter(s string) {
	loc := tb.appropriateInsertionLocation()
	if _, ok := loc.parent.(*dom.Document); ok {
		return
	}
	txt := tb.alloc.NewText(s)
	tb.insertAt(loc, txt)
}

// consumeIgnoredLF implements spec.md §8's "leading LF inside pre,
// textarea, listing is stripped iff it is the first character of the
// element's text" boundary behavior: the HTML Standard's "ignore that
// token" step for the single line feed token immediately following such
// an element's start tag. Grounded on the same start-tag sites that set
// ignoreNextLF, since coalesced character tokens here may carry more
// than the one line feed the Standard's per-character token model sees.
func (tb *TreeBuilder) consumeIgnoredLF(s string) string {
	if !tb.ignoreNextLF {
		return s
	}
	tb.ignoreNextLF = false
	return strings.TrimPrefix(s, "\n")
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
		default:
			return false
		}
	}
	return true
}
