package token

import (
	"strings"

	"github.com/corvidlabs/html5/internal/perrors"
)

// step runs one action of the state machine and reports whether input is
// exhausted: it returns true from a state's end-of-input branch (which
// may emit a final token but leaves t.state as it is) and false
// otherwise. Next's driver loop stops as soon as a token is pending, and
// on a true result it flushes buffered characters and parks the
// tokenizer in the data state.
//
// The switch is the idiomatic-Go rendering of spec.md §9's "single
// dispatch function that matches on a mode enum" design note, applied
// to the tokenizer's states the same way golang.org/x/net/html's
// Tokenizer.Next inlines its own state transitions in one method.
func (t *Tokenizer) step() bool {
	switch t.state {

	case DataState:
		return t.stepTextLike(stopLtAmpNul, true, TagOpenState, DataState)
	case RCDATAState:
		return t.stepTextLike(stopLtAmpNul, true, RCDATALessThanSignState, RCDATAState)
	case RAWTEXTState:
		return t.stepTextLike(stopLtNul, false, RAWTEXTLessThanSignState, RAWTEXTState)
	case ScriptDataState:
		return t.stepTextLike(stopLtNul, false, ScriptDataLessThanSignState, ScriptDataState)
	case PLAINTEXTState:
		return t.stepPlaintext()

	case TagOpenState:
		return t.stepTagOpen()
	case EndTagOpenState:
		return t.stepEndTagOpen()
	case TagNameState:
		return t.stepTagName()

	case RCDATALessThanSignState:
		return t.stepLessThanSign(RCDATAEndTagOpenState, RCDATAState)
	case RCDATAEndTagOpenState:
		return t.stepEndTagOpenSub(RCDATAEndTagNameState, RCDATAState)
	case RCDATAEndTagNameState:
		return t.stepEndTagNameSub(RCDATAState)

	case RAWTEXTLessThanSignState:
		return t.stepLessThanSign(RAWTEXTEndTagOpenState, RAWTEXTState)
	case RAWTEXTEndTagOpenState:
		return t.stepEndTagOpenSub(RAWTEXTEndTagNameState, RAWTEXTState)
	case RAWTEXTEndTagNameState:
		return t.stepEndTagNameSub(RAWTEXTState)

	case ScriptDataLessThanSignState:
		return t.stepScriptDataLessThanSign()
	case ScriptDataEndTagOpenState:
		return t.stepEndTagOpenSub(ScriptDataEndTagNameState, ScriptDataState)
	case ScriptDataEndTagNameState:
		return t.stepEndTagNameSub(ScriptDataState)
	case ScriptDataEscapeStartState:
		return t.stepScriptDataEscapeStart(ScriptDataState)
	case ScriptDataEscapeStartDashState:
		return t.stepScriptDataEscapeStartDash()
	case ScriptDataEscapedState:
		return t.stepScriptDataEscaped()
	case ScriptDataEscapedDashState:
		return t.stepScriptDataEscapedDash()
	case ScriptDataEscapedDashDashState:
		return t.stepScriptDataEscapedDashDash()
	case ScriptDataEscapedLessThanSignState:
		return t.stepScriptDataEscapedLessThanSign()
	case ScriptDataEscapedEndTagOpenState:
		return t.stepEndTagOpenSub(ScriptDataEscapedEndTagNameState, ScriptDataEscapedState)
	case ScriptDataEscapedEndTagNameState:
		return t.stepEndTagNameSub(ScriptDataEscapedState)
	case ScriptDataDoubleEscapeStartState:
		return t.stepDoubleEscape(ScriptDataDoubleEscapedState, ScriptDataEscapedState)
	case ScriptDataDoubleEscapedState:
		return t.stepScriptDataDoubleEscaped()
	case ScriptDataDoubleEscapedDashState:
		return t.stepScriptDataDoubleEscapedDash()
	case ScriptDataDoubleEscapedDashDashState:
		return t.stepScriptDataDoubleEscapedDashDash()
	case ScriptDataDoubleEscapedLessThanSignState:
		return t.stepScriptDataDoubleEscapedLessThanSign()
	case ScriptDataDoubleEscapeEndState:
		return t.stepDoubleEscape(ScriptDataEscapedState, ScriptDataDoubleEscapedState)

	case beforeAttributeNameState:
		return t.stepBeforeAttributeName()
	case attributeNameState:
		return t.stepAttributeName()
	case afterAttributeNameState:
		return t.stepAfterAttributeName()
	case beforeAttributeValueState:
		return t.stepBeforeAttributeValue()
	case attributeValueDoubleQuotedState:
		return t.stepAttributeValueQuoted('"', afterAttributeValueQuotedState)
	case attributeValueSingleQuotedState:
		return t.stepAttributeValueQuoted('\'', afterAttributeValueQuotedState)
	case attributeValueUnquotedState:
		return t.stepAttributeValueUnquoted()
	case afterAttributeValueQuotedState:
		return t.stepAfterAttributeValueQuoted()
	case selfClosingStartTagState:
		return t.stepSelfClosingStartTag()

	case bogusCommentState:
		return t.stepBogusComment()
	case markupDeclarationOpenState:
		return t.stepMarkupDeclarationOpen()
	case commentStartState:
		return t.stepCommentStart()
	case commentStartDashState:
		return t.stepCommentStartDash()
	case commentState:
		return t.stepComment()
	case commentLessThanSignState:
		return t.stepCommentLessThanSign()
	case commentLessThanSignBangState:
		return t.stepCommentLessThanSignBang()
	case commentLessThanSignBangDashState:
		return t.stepCommentLessThanSignBangDash()
	case commentLessThanSignBangDashDashState:
		t.state = commentEndState
		return false
	case commentEndDashState:
		return t.stepCommentEndDash()
	case commentEndState:
		return t.stepCommentEnd()
	case commentEndBangState:
		return t.stepCommentEndBang()

	case doctypeState:
		return t.stepDoctype()
	case beforeDOCTYPENameState:
		return t.stepBeforeDoctypeName()
	case doctypeNameState:
		return t.stepDoctypeName()
	case afterDOCTYPENameState:
		return t.stepAfterDoctypeName()
	case afterDOCTYPEPublicKeywordState:
		return t.stepAfterDoctypePublicKeyword()
	case beforeDOCTYPEPublicIdentifierState:
		return t.stepBeforeDoctypePublicIdentifier()
	case doctypePublicIdentifierDoubleQuotedState:
		return t.stepDoctypeIdentifierQuoted('"', &t.dtPublic, afterDOCTYPEPublicIdentifierState)
	case doctypePublicIdentifierSingleQuotedState:
		return t.stepDoctypeIdentifierQuoted('\'', &t.dtPublic, afterDOCTYPEPublicIdentifierState)
	case afterDOCTYPEPublicIdentifierState:
		return t.stepAfterDoctypePublicIdentifier()
	case betweenDOCTYPEPublicAndSystemIdentifiersState:
		return t.stepBetweenDoctypePublicAndSystemIdentifiers()
	case afterDOCTYPESystemKeywordState:
		return t.stepAfterDoctypeSystemKeyword()
	case beforeDOCTYPESystemIdentifierState:
		return t.stepBeforeDoctypeSystemIdentifier()
	case doctypeSystemIdentifierDoubleQuotedState:
		return t.stepDoctypeIdentifierQuoted('"', &t.dtSystem, afterDOCTYPESystemIdentifierState)
	case doctypeSystemIdentifierSingleQuotedState:
		return t.stepDoctypeIdentifierQuoted('\'', &t.dtSystem, afterDOCTYPESystemIdentifierState)
	case afterDOCTYPESystemIdentifierState:
		return t.stepAfterDoctypeSystemIdentifier()
	case bogusDOCTYPEState:
		return t.stepBogusDoctype()

	case cdataSectionState:
		return t.stepCDATASection()
	case cdataSectionBracketState:
		return t.stepCDATASectionBracket()
	case cdataSectionEndState:
		return t.stepCDATASectionEnd()

	case characterReferenceState:
		return t.stepCharacterReference()
	case namedCharacterReferenceState:
		return t.stepNamedCharacterReference()
	case ambiguousAmpersandState:
		return t.stepAmbiguousAmpersand()
	case numericCharacterReferenceState:
		return t.stepNumericCharacterReference()
	case hexadecimalCharacterReferenceStartState:
		return t.stepHexCharRefStart()
	case decimalCharacterReferenceStartState:
		return t.stepDecCharRefStart()
	case hexadecimalCharacterReferenceState:
		return t.stepHexCharRef()
	case decimalCharacterReferenceState:
		return t.stepDecCharRef()
	case numericCharacterReferenceEndState:
		return t.stepNumericCharRefEnd()
	}
	return true
}

// --- data/RCDATA/RAWTEXT/script-data shared shape ---

func (t *Tokenizer) stepTextLike(stop stopSet, ampIsCharRef bool, ltState, ampReturnState state) bool {
	if t.cur.eof() {
		t.flushChars()
		return true
	}
	b := t.cur.peek()
	switch {
	case ampIsCharRef && b == '&':
		t.cur.next()
		t.returnState = ampReturnState
		t.state = characterReferenceState
	case b == '<':
		t.cur.next()
		t.state = ltState
	case b == 0:
		t.cur.next()
		t.reportError(perrors.UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	default:
		run := t.cur.scanUntil(stop)
		if len(run) > 0 {
			t.charBuf.Write(run)
		} else {
			r, size := t.cur.decodeRune()
			t.cur.advance(size)
			t.emitChar(r)
		}
	}
	return false
}

func (t *Tokenizer) stepPlaintext() bool {
	if t.cur.eof() {
		t.flushChars()
		return true
	}
	b := t.cur.peek()
	if b == 0 {
		t.cur.next()
		t.emitChar(replacementChar)
		return false
	}
	run := t.cur.scanUntil(stopNul)
	if len(run) > 0 {
		t.charBuf.Write(run)
		return false
	}
	r, size := t.cur.decodeRune()
	t.cur.advance(size)
	t.emitChar(r)
	return false
}

// --- tag open ---

func (t *Tokenizer) stepTagOpen() bool {
	if t.cur.eof() {
		t.emitChar('<')
		t.flushChars()
		return true
	}
	b := t.cur.peek()
	switch {
	case b == '!':
		t.cur.next()
		t.state = markupDeclarationOpenState
	case b == '/':
		t.cur.next()
		t.state = EndTagOpenState
	case isAlpha(b):
		t.startTag()
		t.state = TagNameState
	case b == '?':
		t.commentBuf.Reset()
		t.state = bogusCommentState
	default:
		t.emitChar('<')
		t.state = DataState
	}
	return false
}

func (t *Tokenizer) stepEndTagOpen() bool {
	if t.cur.eof() {
		t.emitChar('<')
		t.emitChar('/')
		t.flushChars()
		return true
	}
	b := t.cur.peek()
	switch {
	case isAlpha(b):
		t.startEndTag()
		t.state = TagNameState
	case b == '>':
		t.cur.next()
		t.state = DataState
	default:
		t.commentBuf.Reset()
		t.state = bogusCommentState
	}
	return false
}

func (t *Tokenizer) stepTagName() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.next()
	switch {
	case isWhitespace(b):
		t.state = beforeAttributeNameState
	case b == '/':
		t.state = selfClosingStartTagState
	case b == '>':
		t.emitTag()
	case b == 0:
		t.reportError(perrors.UnexpectedNullCharacter)
		t.tagName.WriteRune(replacementChar)
	case isUpper(b):
		t.tagName.WriteByte(toLower(b))
	default:
		t.tagName.WriteByte(b)
	}
	return false
}

// --- RCDATA/RAWTEXT/script-data end tag recognition (shared shape) ---

func (t *Tokenizer) stepLessThanSign(openState, fallback state) bool {
	if t.cur.peek() == '/' {
		t.cur.next()
		t.tempBuf.Reset()
		t.state = openState
		return false
	}
	t.emitChar('<')
	t.state = fallback
	return false
}

func (t *Tokenizer) stepEndTagOpenSub(nameState, fallback state) bool {
	b := t.cur.peek()
	if isAlpha(b) {
		t.startEndTag()
		t.state = nameState
		return false
	}
	t.emitChar('<')
	t.emitChar('/')
	t.state = fallback
	return false
}

func (t *Tokenizer) endTagNameAnythingElse(fallback state) {
	t.emitChar('<')
	t.emitChar('/')
	t.charBuf.WriteString(t.tempBuf.String())
	t.state = fallback
}

func (t *Tokenizer) stepEndTagNameSub(fallback state) bool {
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		if t.isAppropriateEndTag() {
			t.cur.next()
			t.state = beforeAttributeNameState
			return false
		}
		t.endTagNameAnythingElse(fallback)
	case b == '/':
		if t.isAppropriateEndTag() {
			t.cur.next()
			t.state = selfClosingStartTagState
			return false
		}
		t.endTagNameAnythingElse(fallback)
	case b == '>':
		if t.isAppropriateEndTag() {
			t.cur.next()
			t.emitTag()
			return false
		}
		t.endTagNameAnythingElse(fallback)
	case isUpper(b):
		t.cur.next()
		t.tagName.WriteByte(toLower(b))
		t.tempBuf.WriteByte(b)
	case isLowerAlpha(b):
		t.cur.next()
		t.tagName.WriteByte(b)
		t.tempBuf.WriteByte(b)
	default:
		t.endTagNameAnythingElse(fallback)
	}
	return false
}

// --- script data escape machinery ---

func (t *Tokenizer) stepScriptDataLessThanSign() bool {
	b := t.cur.peek()
	switch b {
	case '/':
		t.cur.next()
		t.tempBuf.Reset()
		t.state = ScriptDataEndTagOpenState
	case '!':
		t.cur.next()
		t.emitChar('<')
		t.emitChar('!')
		t.state = ScriptDataEscapeStartState
	default:
		t.emitChar('<')
		t.state = ScriptDataState
	}
	return false
}

func (t *Tokenizer) stepScriptDataEscapeStart(fallback state) bool {
	if t.cur.peek() == '-' {
		t.cur.next()
		t.emitChar('-')
		t.state = ScriptDataEscapeStartDashState
		return false
	}
	t.state = fallback
	return false
}

func (t *Tokenizer) stepScriptDataEscapeStartDash() bool {
	if t.cur.peek() == '-' {
		t.cur.next()
		t.emitChar('-')
		t.state = ScriptDataEscapedDashDashState
		return false
	}
	t.state = ScriptDataState
	return false
}

func (t *Tokenizer) consumeCharLiteral() {
	b := t.cur.peek()
	if b == 0 {
		t.cur.next()
		t.emitChar(replacementChar)
		return
	}
	r, size := t.cur.decodeRune()
	t.cur.advance(size)
	t.emitChar(r)
}

func (t *Tokenizer) stepScriptDataEscaped() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch b {
	case '-':
		t.cur.next()
		t.emitChar('-')
		t.state = ScriptDataEscapedDashState
	case '<':
		t.cur.next()
		t.state = ScriptDataEscapedLessThanSignState
	case 0:
		t.cur.next()
		t.emitChar(replacementChar)
	default:
		run := t.cur.scanUntil(stopDashLtNul)
		if len(run) > 0 {
			t.charBuf.Write(run)
		} else {
			t.consumeCharLiteral()
		}
	}
	return false
}

func (t *Tokenizer) stepScriptDataEscapedDash() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch b {
	case '-':
		t.cur.next()
		t.emitChar('-')
		t.state = ScriptDataEscapedDashDashState
	case '<':
		t.cur.next()
		t.state = ScriptDataEscapedLessThanSignState
	case 0:
		t.cur.next()
		t.emitChar(replacementChar)
		t.state = ScriptDataEscapedState
	default:
		t.consumeCharLiteral()
		t.state = ScriptDataEscapedState
	}
	return false
}

func (t *Tokenizer) stepScriptDataEscapedDashDash() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch b {
	case '-':
		t.cur.next()
		t.emitChar('-')
	case '<':
		t.cur.next()
		t.state = ScriptDataEscapedLessThanSignState
	case '>':
		t.cur.next()
		t.emitChar('>')
		t.state = ScriptDataState
	case 0:
		t.cur.next()
		t.emitChar(replacementChar)
		t.state = ScriptDataEscapedState
	default:
		t.consumeCharLiteral()
		t.state = ScriptDataEscapedState
	}
	return false
}

func (t *Tokenizer) stepScriptDataEscapedLessThanSign() bool {
	b := t.cur.peek()
	if b == '/' {
		t.cur.next()
		t.tempBuf.Reset()
		t.state = ScriptDataEscapedEndTagOpenState
		return false
	}
	if isAlpha(b) {
		t.tempBuf.Reset()
		t.emitChar('<')
		t.state = ScriptDataDoubleEscapeStartState
		return false
	}
	t.emitChar('<')
	t.state = ScriptDataEscapedState
	return false
}

// stepDoubleEscape implements both "double escape start" and "double
// escape end": they differ only in which state they land in once the
// accumulated tempBuf matches "script" versus doesn't (spec.md's two
// states are mirror images of each other).
func (t *Tokenizer) stepDoubleEscape(onScriptMatch, onMismatch state) bool {
	b := t.cur.peek()
	switch {
	case isWhitespace(b), b == '/', b == '>':
		t.cur.next()
		t.emitCharByte(b)
		if t.tempBuf.String() == "script" {
			t.state = onScriptMatch
		} else {
			t.state = onMismatch
		}
	case isUpper(b):
		t.cur.next()
		t.tempBuf.WriteByte(toLower(b))
		t.emitCharByte(b)
	case isLowerAlpha(b):
		t.cur.next()
		t.tempBuf.WriteByte(b)
		t.emitCharByte(b)
	default:
		t.state = onMismatch
	}
	return false
}

func (t *Tokenizer) stepScriptDataDoubleEscaped() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch b {
	case '-':
		t.cur.next()
		t.emitChar('-')
		t.state = ScriptDataDoubleEscapedDashState
	case '<':
		t.cur.next()
		t.emitChar('<')
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		t.cur.next()
		t.emitChar(replacementChar)
	default:
		t.consumeCharLiteral()
	}
	return false
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDash() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch b {
	case '-':
		t.cur.next()
		t.emitChar('-')
		t.state = ScriptDataDoubleEscapedDashDashState
	case '<':
		t.cur.next()
		t.emitChar('<')
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		t.cur.next()
		t.emitChar(replacementChar)
		t.state = ScriptDataDoubleEscapedState
	default:
		t.consumeCharLiteral()
		t.state = ScriptDataDoubleEscapedState
	}
	return false
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDashDash() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch b {
	case '-':
		t.cur.next()
		t.emitChar('-')
	case '<':
		t.cur.next()
		t.emitChar('<')
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case '>':
		t.cur.next()
		t.emitChar('>')
		t.state = ScriptDataState
	case 0:
		t.cur.next()
		t.emitChar(replacementChar)
		t.state = ScriptDataDoubleEscapedState
	default:
		t.consumeCharLiteral()
		t.state = ScriptDataDoubleEscapedState
	}
	return false
}

func (t *Tokenizer) stepScriptDataDoubleEscapedLessThanSign() bool {
	if t.cur.peek() == '/' {
		t.cur.next()
		t.tempBuf.Reset()
		t.emitChar('/')
		t.state = ScriptDataDoubleEscapeEndState
		return false
	}
	t.state = ScriptDataDoubleEscapedState
	return false
}

// --- attributes ---

func (t *Tokenizer) stepBeforeAttributeName() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
	case b == '/', b == '>':
		t.state = afterAttributeNameState
	case b == '=':
		t.cur.next()
		t.beginAttr()
		t.attrName.WriteByte(b)
		t.state = attributeNameState
	default:
		t.beginAttr()
		t.state = attributeNameState
	}
	return false
}

func (t *Tokenizer) stepAttributeName() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b), b == '/', b == '>':
		t.state = afterAttributeNameState
	case b == '=':
		t.cur.next()
		t.state = beforeAttributeValueState
	case isUpper(b):
		t.cur.next()
		t.attrName.WriteByte(toLower(b))
	case b == 0:
		t.cur.next()
		t.attrName.WriteRune(replacementChar)
	default:
		t.cur.next()
		t.attrName.WriteByte(b)
	}
	return false
}

func (t *Tokenizer) stepAfterAttributeName() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
	case b == '/':
		t.cur.next()
		t.state = selfClosingStartTagState
	case b == '=':
		t.cur.next()
		t.state = beforeAttributeValueState
	case b == '>':
		t.cur.next()
		t.emitTag()
	default:
		t.beginAttr()
		t.state = attributeNameState
	}
	return false
}

func (t *Tokenizer) stepBeforeAttributeValue() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
	case b == '"':
		t.cur.next()
		t.state = attributeValueDoubleQuotedState
	case b == '\'':
		t.cur.next()
		t.state = attributeValueSingleQuotedState
	case b == '>':
		t.cur.next()
		t.emitTag()
	default:
		t.state = attributeValueUnquotedState
	}
	return false
}

func (t *Tokenizer) stepAttributeValueQuoted(quote byte, next state) bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch b {
	case quote:
		t.cur.next()
		t.state = next
	case '&':
		t.cur.next()
		t.returnState = t.state
		t.state = characterReferenceState
	case 0:
		t.cur.next()
		t.attrValue.WriteRune(replacementChar)
	default:
		t.cur.next()
		t.attrValue.WriteByte(b)
	}
	return false
}

func (t *Tokenizer) stepAttributeValueUnquoted() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
		t.state = beforeAttributeNameState
	case b == '&':
		t.cur.next()
		t.returnState = attributeValueUnquotedState
		t.state = characterReferenceState
	case b == '>':
		t.cur.next()
		t.emitTag()
	case b == 0:
		t.cur.next()
		t.attrValue.WriteRune(replacementChar)
	default:
		t.cur.next()
		t.attrValue.WriteByte(b)
	}
	return false
}

func (t *Tokenizer) stepAfterAttributeValueQuoted() bool {
	if t.cur.eof() {
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
		t.state = beforeAttributeNameState
	case b == '/':
		t.cur.next()
		t.state = selfClosingStartTagState
	case b == '>':
		t.cur.next()
		t.emitTag()
	default:
		t.state = beforeAttributeNameState
	}
	return false
}

func (t *Tokenizer) stepSelfClosingStartTag() bool {
	if t.cur.eof() {
		return true
	}
	if t.cur.peek() == '>' {
		t.cur.next()
		t.selfClosing = true
		t.emitTag()
		return false
	}
	t.state = beforeAttributeNameState
	return false
}

// --- comments & markup declarations ---

func (t *Tokenizer) stepBogusComment() bool {
	if t.cur.eof() {
		t.emitCommentAndClear()
		return true
	}
	b := t.cur.peek()
	switch b {
	case '>':
		t.cur.next()
		t.emitCommentAndClear()
		t.state = DataState
	case 0:
		t.cur.next()
		t.commentBuf.WriteRune(replacementChar)
	default:
		t.cur.next()
		t.commentBuf.WriteByte(b)
	}
	return false
}

func (t *Tokenizer) stepMarkupDeclarationOpen() bool {
	if t.cur.hasPrefix("--") {
		t.cur.advance(2)
		t.commentBuf.Reset()
		t.state = commentStartState
		return false
	}
	if t.cur.hasPrefixFold("DOCTYPE") {
		t.cur.advance(7)
		t.state = doctypeState
		return false
	}
	if t.foreign && t.cur.hasPrefix("[CDATA[") {
		t.cur.advance(7)
		t.state = cdataSectionState
		return false
	}
	t.commentBuf.Reset()
	t.state = bogusCommentState
	return false
}

func (t *Tokenizer) stepCommentStart() bool {
	b := t.cur.peek()
	switch b {
	case '-':
		t.cur.next()
		t.state = commentStartDashState
	case '>':
		t.cur.next()
		t.emitCommentAndClear()
		t.state = DataState
	default:
		t.state = commentState
	}
	return false
}

func (t *Tokenizer) stepCommentStartDash() bool {
	if t.cur.eof() {
		t.emitCommentAndClear()
		return true
	}
	b := t.cur.peek()
	switch b {
	case '-':
		t.cur.next()
		t.state = commentEndState
	case '>':
		t.cur.next()
		t.emitCommentAndClear()
		t.state = DataState
	default:
		t.commentBuf.WriteByte('-')
		t.state = commentState
	}
	return false
}

func (t *Tokenizer) stepComment() bool {
	if t.cur.eof() {
		t.reportError(perrors.EOFInComment)
		t.emitCommentAndClear()
		return true
	}
	b := t.cur.peek()
	switch b {
	case '<':
		t.cur.next()
		t.commentBuf.WriteByte('<')
		t.state = commentLessThanSignState
	case '-':
		t.cur.next()
		t.state = commentEndDashState
	case 0:
		t.cur.next()
		t.commentBuf.WriteRune(replacementChar)
	default:
		run := t.cur.scanUntil(stopDashLtNul)
		if len(run) > 0 {
			t.commentBuf.Write(run)
		} else {
			r, size := t.cur.decodeRune()
			t.cur.advance(size)
			t.commentBuf.WriteRune(r)
		}
	}
	return false
}

func (t *Tokenizer) stepCommentLessThanSign() bool {
	b := t.cur.peek()
	switch b {
	case '!':
		t.cur.next()
		t.commentBuf.WriteByte('!')
		t.state = commentLessThanSignBangState
	case '<':
		t.cur.next()
		t.commentBuf.WriteByte('<')
	default:
		t.state = commentState
	}
	return false
}

func (t *Tokenizer) stepCommentLessThanSignBang() bool {
	if t.cur.peek() == '-' {
		t.cur.next()
		t.state = commentLessThanSignBangDashState
		return false
	}
	t.state = commentState
	return false
}

func (t *Tokenizer) stepCommentLessThanSignBangDash() bool {
	if t.cur.peek() == '-' {
		t.cur.next()
		t.state = commentLessThanSignBangDashDashState
		return false
	}
	t.state = commentEndDashState
	return false
}

func (t *Tokenizer) stepCommentEndDash() bool {
	if t.cur.eof() {
		t.emitCommentAndClear()
		return true
	}
	if t.cur.peek() == '-' {
		t.cur.next()
		t.state = commentEndState
		return false
	}
	t.commentBuf.WriteByte('-')
	t.state = commentState
	return false
}

func (t *Tokenizer) stepCommentEnd() bool {
	if t.cur.eof() {
		t.emitCommentAndClear()
		return true
	}
	b := t.cur.peek()
	switch b {
	case '>':
		t.cur.next()
		t.emitCommentAndClear()
		t.state = DataState
	case '!':
		t.cur.next()
		t.state = commentEndBangState
	case '-':
		t.cur.next()
		t.commentBuf.WriteByte('-')
	default:
		t.commentBuf.WriteString("--")
		t.state = commentState
	}
	return false
}

func (t *Tokenizer) stepCommentEndBang() bool {
	if t.cur.eof() {
		t.emitCommentAndClear()
		return true
	}
	b := t.cur.peek()
	switch b {
	case '-':
		t.cur.next()
		t.commentBuf.WriteString("--!")
		t.state = commentEndDashState
	case '>':
		t.cur.next()
		t.emitCommentAndClear()
		t.state = DataState
	default:
		t.commentBuf.WriteString("--!")
		t.state = commentState
	}
	return false
}

// --- doctype ---

func (t *Tokenizer) stepDoctype() bool {
	if t.cur.eof() {
		t.reportError(perrors.EOFInDoctype)
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	if isWhitespace(b) {
		t.cur.next()
	}
	t.state = beforeDOCTYPENameState
	return false
}

func (t *Tokenizer) stepBeforeDoctypeName() bool {
	if t.cur.eof() {
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
	case b == 0:
		t.cur.next()
		t.dtName.WriteRune(replacementChar)
		t.state = doctypeNameState
	case b == '>':
		t.cur.next()
		t.dtForceQuirks = true
		t.emitDoctype()
		t.state = DataState
	case isUpper(b):
		t.cur.next()
		t.dtName.WriteByte(toLower(b))
		t.state = doctypeNameState
	default:
		t.cur.next()
		t.dtName.WriteByte(b)
		t.state = doctypeNameState
	}
	return false
}

func (t *Tokenizer) stepDoctypeName() bool {
	if t.cur.eof() {
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
		t.state = afterDOCTYPENameState
	case b == '>':
		t.cur.next()
		t.emitDoctype()
		t.state = DataState
	case b == 0:
		t.cur.next()
		t.dtName.WriteRune(replacementChar)
	case isUpper(b):
		t.cur.next()
		t.dtName.WriteByte(toLower(b))
	default:
		t.cur.next()
		t.dtName.WriteByte(b)
	}
	return false
}

func (t *Tokenizer) stepAfterDoctypeName() bool {
	if t.cur.eof() {
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
	case b == '>':
		t.cur.next()
		t.emitDoctype()
		t.state = DataState
	default:
		if t.cur.hasPrefixFold("PUBLIC") {
			t.cur.advance(6)
			t.state = afterDOCTYPEPublicKeywordState
			return false
		}
		if t.cur.hasPrefixFold("SYSTEM") {
			t.cur.advance(6)
			t.state = afterDOCTYPESystemKeywordState
			return false
		}
		t.dtForceQuirks = true
		t.state = bogusDOCTYPEState
	}
	return false
}

func (t *Tokenizer) stepAfterDoctypePublicKeyword() bool {
	if t.cur.eof() {
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	switch b {
	case '\t', '\n', '\f', ' ':
		t.cur.next()
		t.state = beforeDOCTYPEPublicIdentifierState
	case '"':
		t.cur.next()
		t.dtHasPublic = true
		t.dtPublic.Reset()
		t.state = doctypePublicIdentifierDoubleQuotedState
	case '\'':
		t.cur.next()
		t.dtHasPublic = true
		t.dtPublic.Reset()
		t.state = doctypePublicIdentifierSingleQuotedState
	case '>':
		t.cur.next()
		t.dtForceQuirks = true
		t.emitDoctype()
		t.state = DataState
	default:
		t.dtForceQuirks = true
		t.state = bogusDOCTYPEState
	}
	return false
}

func (t *Tokenizer) stepBeforeDoctypePublicIdentifier() bool {
	if t.cur.eof() {
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
	case b == '"':
		t.cur.next()
		t.dtHasPublic = true
		t.dtPublic.Reset()
		t.state = doctypePublicIdentifierDoubleQuotedState
	case b == '\'':
		t.cur.next()
		t.dtHasPublic = true
		t.dtPublic.Reset()
		t.state = doctypePublicIdentifierSingleQuotedState
	case b == '>':
		t.cur.next()
		t.dtForceQuirks = true
		t.emitDoctype()
		t.state = DataState
	default:
		t.dtForceQuirks = true
		t.state = bogusDOCTYPEState
	}
	return false
}

func (t *Tokenizer) stepDoctypeIdentifierQuoted(quote byte, buf *strings.Builder, next state) bool {
	if t.cur.eof() {
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	switch b {
	case quote:
		t.cur.next()
		t.state = next
	case 0:
		t.cur.next()
		buf.WriteRune(replacementChar)
	case '>':
		t.cur.next()
		t.dtForceQuirks = true
		t.emitDoctype()
		t.state = DataState
	default:
		t.cur.next()
		buf.WriteByte(b)
	}
	return false
}

func (t *Tokenizer) stepAfterDoctypePublicIdentifier() bool {
	if t.cur.eof() {
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
		t.state = betweenDOCTYPEPublicAndSystemIdentifiersState
	case b == '>':
		t.cur.next()
		t.emitDoctype()
		t.state = DataState
	case b == '"':
		t.cur.next()
		t.dtHasSystem = true
		t.dtSystem.Reset()
		t.state = doctypeSystemIdentifierDoubleQuotedState
	case b == '\'':
		t.cur.next()
		t.dtHasSystem = true
		t.dtSystem.Reset()
		t.state = doctypeSystemIdentifierSingleQuotedState
	default:
		t.dtForceQuirks = true
		t.state = bogusDOCTYPEState
	}
	return false
}

func (t *Tokenizer) stepBetweenDoctypePublicAndSystemIdentifiers() bool {
	if t.cur.eof() {
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
	case b == '>':
		t.cur.next()
		t.emitDoctype()
		t.state = DataState
	case b == '"':
		t.cur.next()
		t.dtHasSystem = true
		t.dtSystem.Reset()
		t.state = doctypeSystemIdentifierDoubleQuotedState
	case b == '\'':
		t.cur.next()
		t.dtHasSystem = true
		t.dtSystem.Reset()
		t.state = doctypeSystemIdentifierSingleQuotedState
	default:
		t.dtForceQuirks = true
		t.state = bogusDOCTYPEState
	}
	return false
}

func (t *Tokenizer) stepAfterDoctypeSystemKeyword() bool {
	if t.cur.eof() {
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
		t.state = beforeDOCTYPESystemIdentifierState
	case b == '"':
		t.cur.next()
		t.dtHasSystem = true
		t.dtSystem.Reset()
		t.state = doctypeSystemIdentifierDoubleQuotedState
	case b == '\'':
		t.cur.next()
		t.dtHasSystem = true
		t.dtSystem.Reset()
		t.state = doctypeSystemIdentifierSingleQuotedState
	case b == '>':
		t.cur.next()
		t.dtForceQuirks = true
		t.emitDoctype()
		t.state = DataState
	default:
		t.dtForceQuirks = true
		t.state = bogusDOCTYPEState
	}
	return false
}

func (t *Tokenizer) stepBeforeDoctypeSystemIdentifier() bool {
	if t.cur.eof() {
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
	case b == '"':
		t.cur.next()
		t.dtHasSystem = true
		t.dtSystem.Reset()
		t.state = doctypeSystemIdentifierDoubleQuotedState
	case b == '\'':
		t.cur.next()
		t.dtHasSystem = true
		t.dtSystem.Reset()
		t.state = doctypeSystemIdentifierSingleQuotedState
	case b == '>':
		t.cur.next()
		t.dtForceQuirks = true
		t.emitDoctype()
		t.state = DataState
	default:
		t.dtForceQuirks = true
		t.state = bogusDOCTYPEState
	}
	return false
}

func (t *Tokenizer) stepAfterDoctypeSystemIdentifier() bool {
	if t.cur.eof() {
		t.dtForceQuirks = true
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	switch {
	case isWhitespace(b):
		t.cur.next()
	case b == '>':
		t.cur.next()
		t.emitDoctype()
		t.state = DataState
	default:
		t.state = bogusDOCTYPEState
	}
	return false
}

func (t *Tokenizer) stepBogusDoctype() bool {
	if t.cur.eof() {
		t.emitDoctype()
		return true
	}
	b := t.cur.peek()
	if b == '>' {
		t.cur.next()
		t.emitDoctype()
		t.state = DataState
		return false
	}
	t.cur.next()
	return false
}

// --- CDATA ---

func (t *Tokenizer) stepCDATASection() bool {
	if t.cur.eof() {
		t.flushChars()
		return true
	}
	b := t.cur.peek()
	if b == ']' {
		t.cur.next()
		t.state = cdataSectionBracketState
		return false
	}
	run := t.cur.scanUntil(stopRBracketNul)
	if len(run) > 0 {
		t.charBuf.Write(run)
		return false
	}
	r, size := t.cur.decodeRune()
	t.cur.advance(size)
	t.emitChar(r)
	return false
}

func (t *Tokenizer) stepCDATASectionBracket() bool {
	if t.cur.peek() == ']' {
		t.cur.next()
		t.state = cdataSectionEndState
		return false
	}
	t.emitChar(']')
	t.state = cdataSectionState
	return false
}

func (t *Tokenizer) stepCDATASectionEnd() bool {
	b := t.cur.peek()
	switch b {
	case ']':
		t.cur.next()
		t.emitChar(']')
	case '>':
		t.cur.next()
		t.state = DataState
	default:
		t.emitChar(']')
		t.emitChar(']')
		t.state = cdataSectionState
	}
	return false
}

// --- character references ---

func (t *Tokenizer) isAttrValueReturnState() bool {
	switch t.returnState {
	case attributeValueDoubleQuotedState, attributeValueSingleQuotedState, attributeValueUnquotedState:
		return true
	}
	return false
}

func (t *Tokenizer) appendCharRefOutput(s string) {
	if t.isAttrValueReturnState() {
		t.attrValue.WriteString(s)
	} else {
		t.charBuf.WriteString(s)
	}
}

func (t *Tokenizer) stepCharacterReference() bool {
	t.tempBuf.Reset()
	t.tempBuf.WriteByte('&')
	b := t.cur.peek()
	switch {
	case isAlphanumeric(b):
		t.state = namedCharacterReferenceState
	case b == '#':
		t.cur.next()
		t.tempBuf.WriteByte('#')
		t.state = numericCharacterReferenceState
	default:
		t.appendCharRefOutput(t.tempBuf.String())
		t.state = t.returnState
	}
	return false
}

func (t *Tokenizer) stepNamedCharacterReference() bool {
	rest := t.cur.buf[t.cur.pos:]
	repl, consumed, ok := matchEntity(string(rest), t.isAttrValueReturnState())
	if ok {
		t.cur.advance(consumed)
		t.appendCharRefOutput(repl)
		t.state = t.returnState
		return false
	}
	t.state = ambiguousAmpersandState
	return false
}

func (t *Tokenizer) stepAmbiguousAmpersand() bool {
	b := t.cur.peek()
	switch {
	case isAlphanumeric(b):
		t.cur.next()
		t.tempBuf.WriteByte(b)
	case b == ';':
		t.cur.next()
		t.tempBuf.WriteByte(b)
		t.appendCharRefOutput(t.tempBuf.String())
		t.state = t.returnState
	default:
		t.appendCharRefOutput(t.tempBuf.String())
		t.state = t.returnState
	}
	return false
}

func (t *Tokenizer) stepNumericCharacterReference() bool {
	t.charRefCode = 0
	b := t.cur.peek()
	if b == 'x' || b == 'X' {
		t.cur.next()
		t.tempBuf.WriteByte(b)
		t.state = hexadecimalCharacterReferenceStartState
		return false
	}
	t.state = decimalCharacterReferenceStartState
	return false
}

func (t *Tokenizer) stepHexCharRefStart() bool {
	if isHexDigit(t.cur.peek()) {
		t.state = hexadecimalCharacterReferenceState
		return false
	}
	t.appendCharRefOutput(t.tempBuf.String())
	t.state = t.returnState
	return false
}

func (t *Tokenizer) stepDecCharRefStart() bool {
	if isDigit(t.cur.peek()) {
		t.state = decimalCharacterReferenceState
		return false
	}
	t.appendCharRefOutput(t.tempBuf.String())
	t.state = t.returnState
	return false
}

func (t *Tokenizer) stepHexCharRef() bool {
	b := t.cur.peek()
	switch {
	case isHexDigit(b):
		t.cur.next()
		t.charRefCode = t.charRefCode*16 + int64(hexVal(b))
	case b == ';':
		t.cur.next()
		t.state = numericCharacterReferenceEndState
	default:
		t.state = numericCharacterReferenceEndState
	}
	return false
}

func (t *Tokenizer) stepDecCharRef() bool {
	b := t.cur.peek()
	switch {
	case isDigit(b):
		t.cur.next()
		t.charRefCode = t.charRefCode*10 + int64(b-'0')
	case b == ';':
		t.cur.next()
		t.state = numericCharacterReferenceEndState
	default:
		t.state = numericCharacterReferenceEndState
	}
	return false
}

func (t *Tokenizer) stepNumericCharRefEnd() bool {
	r := numericCharRefCodepoint(rune(t.charRefCode))
	t.appendCharRefOutput(string(r))
	t.state = t.returnState
	return false
}

// --- byte classification ---

func isAlpha(b byte) bool      { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isLowerAlpha(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool      { return b >= '0' && b <= '9' }
func isAlphanumeric(b byte) bool { return isAlpha(b) || isDigit(b) }
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func hexVal(b byte) int {
	switch {
	case isDigit(b):
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
