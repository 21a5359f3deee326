package html5

import (
	"errors"
	"fmt"

	"github.com/corvidlabs/html5/internal/perrors"
)

// Sentinel errors for the two boundary mistakes Parse/ParseFragment
// reject outright (spec.md §7 "I/O / caller errors"), checked with
// errors.Is the way chtml/err.go's ErrComponentNotFound/
// ErrImportNotAllowed are.
var (
	// ErrEmptyFragmentContext is returned by ParseFragment when
	// FragmentContext.TagName is empty: there is no such thing as a
	// fragment parse with no context element (spec.md §7, §12).
	ErrEmptyFragmentContext = errors.New("html5: fragment context has no tag name")

	// ErrUnknownInitialState is returned when Options.InitialState
	// names a state outside token.ValidState's range.
	ErrUnknownInitialState = errors.New("html5: unknown initial tokenizer state")

	// ErrUnknownFragmentNamespace is returned when FragmentContext.Namespace
	// names anything other than "" (HTML), "svg", or "math".
	ErrUnknownFragmentNamespace = errors.New("html5: unrecognized fragment context namespace")
)

// Error is the value delivered to Options.ErrorSink for every
// recoverable parse error the tokenizer or tree constructor reports
// (spec.md §7: "no parse error is ever returned as a Go error; they are
// optionally observed through a Sink"). Code is the stable WHATWG error
// code from internal/perrors; Offset is the byte position in the input
// where it was detected, or -1 when the error has no single input
// position (e.g. a tree-construction error attributed to a token that
// already scrolled past the cursor).
type Error struct {
	Code    perrors.Code
	Message string
	Offset  int
}

func (e Error) String() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (offset %d)", e.Code, e.Message, e.Offset)
}

// TokenizeError and TreeError are the internal typed-error pair used to
// label a recoverable parse error before it is handed to
// Options.ErrorSink, mirroring chtml/err.go's
// UnrecognizedArgumentError/DecodeError shape (an Error() string plus an
// Is(target error) bool for codes-as-values comparison). Neither is
// ever returned from Parse/ParseFragment; both exist so internal
// plumbing (token.Tokenizer's and treebuilder.TreeBuilder's error
// callbacks) can carry a typed value instead of a bare perrors.Code
// that every call site would have to re-wrap.
type TokenizeError struct {
	Code   perrors.Code
	Offset int
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("tokenize error %s at offset %d: %s", e.Code, e.Offset, perrors.Message(e.Code))
}

func (e *TokenizeError) Is(target error) bool {
	var te *TokenizeError
	if errors.As(target, &te) {
		return e.Code == te.Code
	}
	return false
}

func (e *TokenizeError) toError() Error {
	return Error{Code: e.Code, Message: perrors.Message(e.Code), Offset: e.Offset}
}

type TreeError struct {
	Code perrors.Code
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("tree construction error %s: %s", e.Code, perrors.Message(e.Code))
}

func (e *TreeError) Is(target error) bool {
	var tre *TreeError
	if errors.As(target, &tre) {
		return e.Code == tre.Code
	}
	return false
}

func (e *TreeError) toError() Error {
	return Error{Code: e.Code, Message: perrors.Message(e.Code), Offset: -1}
}
