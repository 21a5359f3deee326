package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/token"
)

// FragmentContext names the context element an innerHTML-style fragment
// parse is relative to (spec.md §5 "Fragment parsing"): its tag name
// and namespace select the tokenizer's starting state and the tree
// builder's starting insertion mode, per the HTML Standard's "parsing
// HTML fragments" algorithm.
type FragmentContext struct {
	TagName   string
	Namespace string
	Scripting bool
}

// NewFragment creates a TreeBuilder for a fragment parse relative to
// ctx, grounded on JustGoHTML's NewFragment: an implied <html> root is
// pushed first, then a clone of the context element, and the starting
// insertion mode is chosen by the context element's tag name.
func NewFragment(ctx FragmentContext, tok TokenizerControl) *TreeBuilder {
	alloc := dom.NewAllocator()
	tb := &TreeBuilder{
		alloc:           alloc,
		document:        alloc.NewDocument(),
		framesetOK:      true,
		scripting:       ctx.Scripting,
		fragmentContext: &ctx,
		tokenizer:       tok,
	}

	root := alloc.NewElementNS("html", "")
	dom.AppendChild(tb.document, root)
	tb.push(root)

	fragmentRoot := alloc.NewElementNS(ctx.TagName, ctx.Namespace)
	tb.fragmentRoot = fragmentRoot
	tb.push(fragmentRoot)

	if ctx.Namespace == "" {
		switch ctx.TagName {
		case "pre", "listing", "textarea":
			tb.ignoreNextLF = true
		}
	}

	if ctx.Namespace == "" && ctx.TagName == "template" {
		tb.templateModes = append(tb.templateModes, InTemplate)
	}

	tb.resetInsertionModeAppropriately()

	if ctx.TagName == "form" && ctx.Namespace == "" {
		tb.formElement = fragmentRoot
	}

	return tb
}

// FragmentTokenizerOptions returns the token.Options a fragment parse's
// tokenizer must start with, so that title/textarea/style/script/etc.
// context elements tokenize their descendant text as raw/RCDATA data
// rather than markup, per the HTML Standard's fragment-parsing
// algorithm step that presets the tokenizer state from the context
// element before the first token is ever read.
func FragmentTokenizerOptions(ctx FragmentContext, scripting bool) token.Options {
	opts := token.Options{Scripting: scripting, LastStartTag: ctx.TagName}
	if ctx.Namespace != "" {
		return opts
	}
	switch ctx.TagName {
	case "title", "textarea":
		opts.InitialState = token.RCDATAState
	case "style", "xmp", "iframe", "noembed", "noframes":
		opts.InitialState = token.RAWTEXTState
	case "script":
		opts.InitialState = token.ScriptDataState
	case "plaintext":
		opts.InitialState = token.PLAINTEXTState
	}
	return opts
}

// resetInsertionModeAppropriately implements the HTML Standard's "reset
// the insertion mode appropriately" algorithm, used both at fragment
// setup and whenever a <select> or table-structure element is popped
// mid-parse. It walks the stack of open elements from the top,
// classifying by tag name, stopping at the first (topmost) match, with
// the fragment context element substituting for "html" at the bottom
// of the stack when parsing a fragment.
func (tb *TreeBuilder) resetInsertionModeAppropriately() {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		node := tb.openElements[i]
		last := i == 0
		if last && tb.fragmentContext != nil {
			node = tb.fragmentRoot
		}
		if node.Namespace != "" {
			if last {
				tb.mode = InBody
				return
			}
			continue
		}
		switch node.TagName {
		case "select":
			for j := i - 1; j >= 0; j-- {
				anc := tb.openElements[j]
				if anc.TagName == "template" {
					break
				}
				if anc.TagName == "table" {
					tb.mode = InSelectInTable
					return
				}
			}
			tb.mode = InSelect
			return
		case "td", "th":
			if !last {
				tb.mode = InCell
				return
			}
		case "tr":
			tb.mode = InRow
			return
		case "tbody", "thead", "tfoot":
			tb.mode = InTableBody
			return
		case "caption":
			tb.mode = InCaption
			return
		case "colgroup":
			tb.mode = InColumnGroup
			return
		case "table":
			tb.mode = InTable
			return
		case "template":
			if len(tb.templateModes) > 0 {
				tb.mode = tb.templateModes[len(tb.templateModes)-1]
			} else {
				tb.mode = InBody
			}
			return
		case "head":
			if !last {
				tb.mode = InHead
				return
			}
		case "body":
			tb.mode = InBody
			return
		case "frameset":
			tb.mode = InFrameset
			return
		case "html":
			if tb.headElement == nil {
				tb.mode = BeforeHead
			} else {
				tb.mode = AfterHead
			}
			return
		}
		if last {
			tb.mode = InBody
			return
		}
	}
	tb.mode = InBody
}

// FragmentNodes returns the parsed fragment's top-level nodes (the
// fragment root element's children), per the HTML Standard's "parsing
// HTML fragments" final step of returning the context element's
// children.
func (tb *TreeBuilder) FragmentNodes() []dom.Node {
	if tb.fragmentRoot == nil {
		return nil
	}
	return tb.fragmentRoot.Children()
}
