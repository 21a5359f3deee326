package token

import (
	"strings"

	"github.com/corvidlabs/html5/internal/perrors"
)

// Options configures a Tokenizer (spec.md §6 "Parse options"). The zero
// value is the default configuration: data state, scripting off, no XML
// violation coercions, no assumed last start tag.
type Options struct {
	InitialState     State
	LastStartTag     string
	Scripting        bool
	XMLViolationMode bool

	// OnError, if set, is called for every recoverable tokenizer error
	// (spec.md §7 "parse errors"), with the byte offset in the input
	// where it was detected. It is never called for a caller/argument
	// mistake (those are rejected up front by the html5 package, not
	// reported through this channel).
	OnError func(code perrors.Code, offset int)
}

// Tokenizer turns a byte stream into the coalesced HTML5 token stream
// (spec.md C3). Create one with New, call SetForeignContent before every
// Next call whose result depends on namespace (the tree constructor owns
// that decision), and call Next until it returns a zero Token with Type
// == ErrorToken, which signals EOF.
type Tokenizer struct {
	cur   *cursor
	state state

	returnState  state
	scripting    bool
	xmlViolation bool
	foreign      bool
	lastStartTag string

	pending []Token
	charBuf strings.Builder

	tagName     strings.Builder
	tagIsEnd    bool
	selfClosing bool
	attrs       []Attribute
	attrName    strings.Builder
	attrValue   strings.Builder
	haveAttr    bool

	commentBuf strings.Builder

	dtName        strings.Builder
	dtPublic      strings.Builder
	dtSystem      strings.Builder
	dtHasPublic   bool
	dtHasSystem   bool
	dtForceQuirks bool

	tempBuf strings.Builder

	charRefCode int64
	charRefBuf  strings.Builder

	onError func(perrors.Code, int)
}

// New creates a Tokenizer over input, configured by opts.
func New(input []byte, opts Options) *Tokenizer {
	t := &Tokenizer{
		cur:          newCursor(input),
		state:        opts.InitialState,
		scripting:    opts.Scripting,
		xmlViolation: opts.XMLViolationMode,
		lastStartTag: opts.LastStartTag,
		onError:      opts.OnError,
	}
	return t
}

// reportError calls onError, if the caller set one, with the cursor's
// current byte offset. A no-op otherwise, so every call site below can
// report unconditionally instead of guarding on onError != nil itself.
func (t *Tokenizer) reportError(code perrors.Code) {
	if t.onError != nil {
		t.onError(code, t.cur.pos)
	}
}

// SetForeignContent updates the tree-builder feedback bit (spec.md §4.3
// "Tree-builder feedback"): true means the adjusted current node is in a
// non-HTML namespace, which is the only thing that decides whether
// "<![CDATA[" opens a CDATA section or a bogus comment.
func (t *Tokenizer) SetForeignContent(foreign bool) { t.foreign = foreign }

// SwitchToRCDATA, SwitchToRAWTEXT, SwitchToScriptData and
// SwitchToPLAINTEXT let a tree constructor drive the tokenizer's state
// the way the HTML Standard's tree construction stage does for title/
// textarea/style/xmp/iframe/noembed/noframes/script/plaintext: the
// state type itself is unexported (callers outside this package never
// need to name it, only select it), so these are the surface tree
// construction uses instead of a raw SetState(state) method.
func (t *Tokenizer) SwitchToRCDATA() { t.state = RCDATAState }

func (t *Tokenizer) SwitchToRAWTEXT() { t.state = RAWTEXTState }

func (t *Tokenizer) SwitchToScriptData() { t.state = ScriptDataState }

func (t *Tokenizer) SwitchToPLAINTEXT() { t.state = PLAINTEXTState }

// SwitchToData returns the tokenizer to the default data state, used
// when the "text" insertion mode finishes consuming a RAWTEXT/RCDATA/
// script-data element's end tag.
func (t *Tokenizer) SwitchToData() { t.state = DataState }

// Next returns the next token. At end of input it returns a zero Token
// whose Type is ErrorToken; callers must stop calling Next once they see
// that.
func (t *Tokenizer) Next() Token {
	if len(t.pending) > 0 {
		tok := t.pending[0]
		t.pending = t.pending[1:]
		return tok
	}
	for len(t.pending) == 0 {
		if t.step() {
			// End of input: flush any buffered run and park in the data
			// state so a later call cannot re-run an EOF branch that
			// emits a token.
			t.flushChars()
			t.state = DataState
			break
		}
	}
	if len(t.pending) == 0 {
		return Token{Type: ErrorToken}
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok
}

func (t *Tokenizer) emit(tok Token) { t.pending = append(t.pending, tok) }

func (t *Tokenizer) emitChar(r rune) { t.charBuf.WriteRune(r) }

func (t *Tokenizer) emitCharByte(b byte) { t.charBuf.WriteByte(b) }

// flushChars, if a character run has accumulated, emits it as one
// coalesced Character token (spec.md §4.3 "Character coalescing").
func (t *Tokenizer) flushChars() {
	if t.charBuf.Len() == 0 {
		return
	}
	s := t.charBuf.String()
	t.charBuf.Reset()
	if t.xmlViolation {
		s = applyXMLCharacterViolations(s)
	}
	t.emit(Token{Type: CharacterToken, Chars: s})
}

// formFeed, nonCharacterFFFF and replacementChar drive the two
// XML-violation-mode character substitutions from spec.md §4.3: U+000C
// becomes a space and U+FFFF becomes U+FFFD.
const (
	formFeed         rune = 0x000C
	nonCharacterFFFF rune = 0xFFFF
	replacementChar  rune = 0xFFFD
)

func applyXMLCharacterViolations(s string) string {
	if !strings.ContainsRune(s, formFeed) && !strings.ContainsRune(s, nonCharacterFFFF) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case formFeed:
			b.WriteByte(' ')
		case nonCharacterFFFF:
			b.WriteRune(replacementChar)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (t *Tokenizer) startTag() {
	t.tagName.Reset()
	t.tagIsEnd = false
	t.selfClosing = false
	t.attrs = nil
}

func (t *Tokenizer) startEndTag() {
	t.startTag()
	t.tagIsEnd = true
}

// beginAttr finalizes whatever attribute was previously accumulating
// (if any) and starts a new one.
func (t *Tokenizer) beginAttr() {
	t.commitAttr()
	t.attrName.Reset()
	t.attrValue.Reset()
	t.haveAttr = true
}

func (t *Tokenizer) commitAttr() {
	if !t.haveAttr {
		return
	}
	t.haveAttr = false
	name := t.attrName.String()
	if name == "" {
		return
	}
	for _, a := range t.attrs {
		if a.Name == name {
			t.reportError(perrors.DuplicateAttribute)
			return
		}
	}
	t.attrs = append(t.attrs, Attribute{Name: name, Value: t.attrValue.String()})
}

func (t *Tokenizer) emitTag() {
	t.commitAttr()
	t.flushChars()
	name := t.tagName.String()
	if t.tagIsEnd {
		t.emit(Token{Type: EndTagToken, TagName: name})
		t.state = DataState
		return
	}
	t.emit(Token{Type: StartTagToken, TagName: name, Attr: t.attrs, SelfClosing: t.selfClosing})
	t.lastStartTag = name
	t.state = dataStateForTag(name, t.scripting, t.foreign)
}

// dataStateForTag applies spec.md §4.3 "Tag-name/state coupling".
func dataStateForTag(name string, scripting, foreign bool) state {
	if foreign {
		return DataState
	}
	switch name {
	case "script":
		return ScriptDataState
	case "style", "xmp", "iframe", "noembed", "noframes":
		return RAWTEXTState
	case "noscript":
		if scripting {
			return RAWTEXTState
		}
		return DataState
	case "textarea", "title":
		return RCDATAState
	case "plaintext":
		return PLAINTEXTState
	default:
		return DataState
	}
}

func (t *Tokenizer) isAppropriateEndTag() bool {
	return t.tagName.String() == t.lastStartTag && t.lastStartTag != ""
}

func (t *Tokenizer) emitCommentAndClear() {
	t.flushChars()
	data := t.commentBuf.String()
	if t.xmlViolation {
		data = strings.ReplaceAll(data, "--", "- -")
	}
	t.emit(Token{Type: CommentToken, Data: data})
	t.commentBuf.Reset()
}

func (t *Tokenizer) emitDoctype() {
	t.flushChars()
	tok := Token{
		Type:        DoctypeToken,
		Name:        t.dtName.String(),
		ForceQuirks: t.dtForceQuirks,
		HasPublicID: t.dtHasPublic,
		HasSystemID: t.dtHasSystem,
	}
	if t.dtHasPublic {
		tok.PublicID = t.dtPublic.String()
	}
	if t.dtHasSystem {
		tok.SystemID = t.dtSystem.String()
	}
	t.emit(tok)
	t.dtName.Reset()
	t.dtPublic.Reset()
	t.dtSystem.Reset()
	t.dtHasPublic, t.dtHasSystem, t.dtForceQuirks = false, false, false
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func toLower(b byte) byte {
	if isUpper(b) {
		return b + ('a' - 'A')
	}
	return b
}

func isWhitespace(b byte) bool {
	return b == '\t' || b == '\n' || b == '\f' || b == ' '
}
