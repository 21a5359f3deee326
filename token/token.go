// Package token implements the tokenizer half of the HTML5 parsing
// algorithm (spec.md C1-C3): an input cursor with newline normalization
// and bulk ASCII scan primitives, a named/numeric character reference
// matcher, and an ~80-state tokenizer that emits a coalesced token
// stream and listens to a single feedback bit from the tree constructor.
//
// Grounded on the state-machine shape of golang.org/x/net/html's
// Tokenizer and on the simplified tokenizer in
// other_examples' lukehoban-browser html package, generalized to the
// full named-state machine the HTML Standard defines.
package token

// Type identifies the kind of a Token.
type Type int

const (
	ErrorToken Type = iota
	DoctypeToken
	StartTagToken
	EndTagToken
	CommentToken
	CharacterToken
)

func (t Type) String() string {
	switch t {
	case DoctypeToken:
		return "Doctype"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case CharacterToken:
		return "Character"
	default:
		return "Error"
	}
}

// Attribute is one (name, value) pair collected on a start or end tag,
// in source order, pre-deduplication having already kept only the first
// occurrence of each name (spec.md §4.3 "Attribute collection").
type Attribute struct {
	Name  string
	Value string
}

// Token is the tagged-variant token shape from spec.md §3: callers
// switch on Type and read only the fields that type populates.
type Token struct {
	Type Type

	// Doctype
	Name        string
	PublicID    string
	SystemID    string
	HasPublicID bool
	HasSystemID bool
	ForceQuirks bool

	// StartTag / EndTag
	TagName     string
	Attr        []Attribute
	SelfClosing bool

	// Comment
	Data string

	// Character
	Chars string
}
