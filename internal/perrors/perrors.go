// Package perrors names the WHATWG HTML5 parse-error codes as stable
// values (spec.md §7 "parse errors are recoverable, not fatal"), the
// same role other_examples/.../JustGoHTML's errors/codes.go plays for
// that reference implementation: a closed vocabulary the tokenizer and
// tree constructor can report by code rather than by ad hoc string, so
// a Sink consumer (html5.Options.ErrorSink) can match on values instead
// of parsing messages.
package perrors

// Code identifies one parse-error condition from the HTML Standard's
// "Parse errors" section.
type Code string

// Tokenizer errors (spec.md C1-C3).
const (
	UnexpectedNullCharacter          Code = "unexpected-null-character"
	EOFInTag                         Code = "eof-in-tag"
	EOFInComment                     Code = "eof-in-comment"
	EOFInDoctype                     Code = "eof-in-doctype"
	EOFInCDATA                       Code = "eof-in-cdata"
	AbruptClosingOfEmptyComment      Code = "abrupt-closing-of-empty-comment"
	IncorrectlyOpenedComment         Code = "incorrectly-opened-comment"
	NestedComment                    Code = "nested-comment"
	MissingDoctypeName               Code = "missing-doctype-name"
	MissingWhitespaceBeforeDoctypeName Code = "missing-whitespace-before-doctype-name"
	DuplicateAttribute               Code = "duplicate-attribute"
	EndTagWithAttributes             Code = "end-tag-with-attributes"
	CDATAInHTMLContent               Code = "cdata-in-html-content"
	UnknownNamedCharacterReference   Code = "unknown-named-character-reference"
	ControlCharacterReference        Code = "control-character-reference"
	NullCharacterReference           Code = "null-character-reference"
	MissingSemicolonAfterCharacterReference Code = "missing-semicolon-after-character-reference"
)

// Tree construction errors (spec.md C5-C9).
const (
	NonSpaceCharacterInTableText Code = "non-space-character-in-table-text"
	FosterParentedCharacter      Code = "foster-parented-character"
	UnexpectedStartTag           Code = "unexpected-start-tag"
	UnexpectedEndTag             Code = "unexpected-end-tag"
	AdoptionAgencyCloned         Code = "adoption-agency-cloned-element"
)

// messages mirrors JustGoHTML's errorMessages map: one human-readable
// sentence per code, independent of whatever Offset/context a caller
// attaches.
var messages = map[Code]string{
	UnexpectedNullCharacter:                 "the input stream contains a U+0000 NULL character where one is not allowed",
	EOFInTag:                                "the input ended inside a tag",
	EOFInComment:                            "the input ended inside a comment",
	EOFInDoctype:                            "the input ended inside a DOCTYPE",
	EOFInCDATA:                              "the input ended inside a CDATA section",
	AbruptClosingOfEmptyComment:             "an empty comment was abruptly closed by a U+003E (>)",
	IncorrectlyOpenedComment:                "a comment was opened with the wrong marker",
	NestedComment:                           "a comment contains a nested \"<!--\"",
	MissingDoctypeName:                      "a DOCTYPE has no name",
	MissingWhitespaceBeforeDoctypeName:      "a DOCTYPE is missing whitespace before its name",
	DuplicateAttribute:                      "a tag repeats an attribute name already seen on it",
	EndTagWithAttributes:                    "an end tag carries attributes",
	CDATAInHTMLContent:                      "a CDATA section appeared outside foreign content",
	UnknownNamedCharacterReference:          "a named character reference is not in the entity table",
	ControlCharacterReference:               "a numeric character reference resolves to a control character",
	NullCharacterReference:                  "a numeric character reference resolves to U+0000 NULL",
	MissingSemicolonAfterCharacterReference: "a character reference is not terminated by a semicolon",
	NonSpaceCharacterInTableText:            "a non-whitespace character was seen in table text and will be foster-parented",
	FosterParentedCharacter:                 "a character token was foster-parented out of a table",
	UnexpectedStartTag:                      "a start tag is not allowed in the current insertion mode",
	UnexpectedEndTag:                        "an end tag is not allowed in the current insertion mode",
	AdoptionAgencyCloned:                    "the adoption agency algorithm cloned a misnested formatting element",
}

// Message returns the human-readable text for code, or a generic
// fallback for a code this package doesn't know (never the empty
// string, so a formatted Error is never blank).
func Message(code Code) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "unrecognized parse error"
}
