// Package html5 implements the WHATWG HTML5 tokenization and tree
// construction algorithms (spec.md), composing the token package's
// Tokenizer (C1-C3) with the treebuilder package's TreeBuilder (C4-C9)
// into the two public entry points a consumer actually needs: Parse for
// a full document and ParseFragment for the "parsing HTML fragments"
// algorithm used by innerHTML-style assignment.
package html5

import (
	"log/slog"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/perrors"
	"github.com/corvidlabs/html5/token"
	"github.com/corvidlabs/html5/treebuilder"
)

// Options configures a parse (spec.md §6 "Parse options"). The zero
// value is usable directly (Parse/ParseFragment treat an unset Logger
// as slog.Default() and an unset ErrorSink as "drop"), but NewOptions
// is the spelled-out way to get the same defaults plus Scripting: true.
type Options struct {
	// Scripting controls the scripting flag (spec.md Glossary
	// "Scripting flag"): true makes <noscript> raw text and disables
	// the "in head noscript" detour.
	Scripting bool

	// XMLViolationMode enables the tokenizer's XML-compatibility
	// character coercions (spec.md §4.3).
	XMLViolationMode bool

	// InitialState overrides the tokenizer's starting state for Parse.
	// Leave it at its zero value (token.DataState) for a normal Parse.
	// ParseFragment only validates it; its tokenizer starts in the state
	// FragmentContext selects.
	InitialState token.State

	// LastStartTag seeds the "appropriate end tag" check (spec.md
	// §4.3) as if this tag name had just been opened. ParseFragment
	// sets this from FragmentContext automatically; Parse leaves it
	// empty.
	LastStartTag string

	// ErrorSink, if set, receives every recoverable parse error the
	// tokenizer or tree constructor reports (spec.md §7). Parsing
	// never stops or fails because of one of these; a nil sink simply
	// drops them.
	ErrorSink func(Error)

	// Logger receives a Debug-level record for every parse error in
	// addition to (not instead of) ErrorSink — parse errors are
	// high-volume and expected on real-world input, so Debug rather
	// than Warn/Error. Defaults to slog.Default() when nil.
	Logger *slog.Logger
}

// NewOptions returns the default Options: scripting on, data-state
// tokenizer start, no XML violation coercions, no sink, slog.Default
// logging. Grounded on the teacher's package-level defaulted-config var
// pattern, rendered as a constructor since Options carries an
// unexported-type field (InitialState) that a caller can't usefully
// zero-value-construct from outside the package anyway.
func NewOptions() Options {
	return Options{
		Scripting:    true,
		InitialState: token.DataState,
	}
}

// Document is the result of a full parse.
type Document struct {
	Tree *dom.Document
}

// Parse tokenizes and tree-constructs input as a full HTML document
// (spec.md §2 "Overview", the C1-C9 pipeline end to end). The only
// error it can return is ErrUnknownInitialState, a caller/argument
// mistake (spec.md §7); recoverable parse errors are never returned,
// only reported through opts.ErrorSink/opts.Logger.
func Parse(input []byte, opts Options) (*Document, error) {
	if opts.InitialState != 0 && !token.ValidState(opts.InitialState) {
		return nil, ErrUnknownInitialState
	}
	logger := opts.logger()
	tok := token.New(input, token.Options{
		Scripting:        opts.Scripting,
		XMLViolationMode: opts.XMLViolationMode,
		InitialState:     opts.InitialState,
		LastStartTag:     opts.LastStartTag,
		OnError:          tokenizeErrorReporter(opts, logger),
	})
	tb := treebuilder.New(opts.Scripting, tok)
	tb.SetErrorSink(treeErrorReporter(opts, logger))
	runPipeline(tok, tb)
	return &Document{Tree: tb.Document()}, nil
}

// FragmentContext names the element a fragment parse is relative to
// (spec.md §5): its tag name and namespace ("" for HTML, "svg" or
// "math" for foreign contexts) select the tokenizer's initial state and
// the tree builder's initial insertion mode.
type FragmentContext struct {
	TagName   string
	Namespace string
}

// validate checks FragmentContext's grammar (spec.md §7 "empty context
// for fragment parse ... reject at the boundary", §12): TagName must be
// non-empty, and Namespace, if given, must name one of the three
// namespaces the tree constructor knows about.
func (ctx FragmentContext) validate() error {
	if ctx.TagName == "" {
		return ErrEmptyFragmentContext
	}
	switch ctx.Namespace {
	case "", "svg", "math":
		return nil
	default:
		return ErrUnknownFragmentNamespace
	}
}

// ParseFragment implements the HTML Standard's "parsing HTML fragments"
// algorithm (spec.md §5): the returned nodes are ctx's children, not a
// full document. Returns ErrEmptyFragmentContext when ctx.TagName is
// empty and ErrUnknownFragmentNamespace when ctx.Namespace names anything other
// than "", "svg", or "math" — both caller/argument mistakes rejected at
// the boundary before any tokenizing happens (spec.md §7, §12).
func ParseFragment(input []byte, ctx FragmentContext, opts Options) ([]dom.Node, error) {
	if err := ctx.validate(); err != nil {
		return nil, err
	}
	if opts.InitialState != 0 && !token.ValidState(opts.InitialState) {
		return nil, ErrUnknownInitialState
	}
	logger := opts.logger()
	tbCtx := treebuilder.FragmentContext{
		TagName:   ctx.TagName,
		Namespace: ctx.Namespace,
		Scripting: opts.Scripting,
	}
	tokOpts := treebuilder.FragmentTokenizerOptions(tbCtx, opts.Scripting)
	tokOpts.XMLViolationMode = opts.XMLViolationMode
	tokOpts.OnError = tokenizeErrorReporter(opts, logger)
	tok := token.New(input, tokOpts)
	tb := treebuilder.NewFragment(tbCtx, tok)
	tb.SetErrorSink(treeErrorReporter(opts, logger))
	runPipeline(tok, tb)
	return tb.FragmentNodes(), nil
}

// logger returns opts.Logger, falling back to slog.Default() the way
// spec.md §10's "unset Logger" default is specified.
func (opts Options) logger() *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return slog.Default()
}

// tokenizeErrorReporter builds the token.Options.OnError callback that
// logs every recoverable tokenizer error at Debug and forwards it to
// opts.ErrorSink, wrapping the raw (code, offset) pair in a
// *TokenizeError first so both paths share one formatting.
func tokenizeErrorReporter(opts Options, logger *slog.Logger) func(perrors.Code, int) {
	return func(code perrors.Code, offset int) {
		te := &TokenizeError{Code: code, Offset: offset}
		logger.Debug("html5: tokenize error", "code", code, "offset", offset)
		if opts.ErrorSink != nil {
			opts.ErrorSink(te.toError())
		}
	}
}

// treeErrorReporter is tokenizeErrorReporter's tree-construction
// counterpart (spec.md C5-C9 errors have no single input offset, so
// *TreeError.toError reports Offset: -1).
func treeErrorReporter(opts Options, logger *slog.Logger) func(perrors.Code) {
	return func(code perrors.Code) {
		tre := &TreeError{Code: code}
		logger.Debug("html5: tree construction error", "code", code)
		if opts.ErrorSink != nil {
			opts.ErrorSink(tre.toError())
		}
	}
}

// runPipeline drains tok and feeds every token to tb, updating the
// tokenizer's foreign-content bit from the tree builder before every
// token the way the HTML Standard's "tree construction dispatcher"
// requires (spec.md §4.3 "Tree-builder feedback").
func runPipeline(tok *token.Tokenizer, tb *treebuilder.TreeBuilder) {
	for {
		t := tok.Next()
		if t.Type == token.ErrorToken {
			tb.ProcessToken(t)
			return
		}
		tb.ProcessToken(t)
		tok.SetForeignContent(tb.InForeignContent())
	}
}
