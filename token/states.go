package token

// state names the tokenizer's current position in the HTML Standard's
// state machine (spec.md C3, "~80 states"). Exported constants let a
// caller set InitialState for fragment parsing into RAWTEXT/RCDATA/
// script/plaintext contexts (spec.md §6 "Parse options").
type state int

// State is the exported name for state, used on the public Options
// surface (token.Options.InitialState) so a caller never needs to name
// the unexported type directly to pass one of the constants below.
type State = state

const (
	DataState state = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState
	TagOpenState
	EndTagOpenState
	TagNameState
	RCDATALessThanSignState
	RCDATAEndTagOpenState
	RCDATAEndTagNameState
	RAWTEXTLessThanSignState
	RAWTEXTEndTagOpenState
	RAWTEXTEndTagNameState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
	bogusCommentState
	markupDeclarationOpenState
	commentStartState
	commentStartDashState
	commentState
	commentLessThanSignState
	commentLessThanSignBangState
	commentLessThanSignBangDashState
	commentLessThanSignBangDashDashState
	commentEndDashState
	commentEndState
	commentEndBangState
	doctypeState
	beforeDOCTYPENameState
	doctypeNameState
	afterDOCTYPENameState
	afterDOCTYPEPublicKeywordState
	beforeDOCTYPEPublicIdentifierState
	doctypePublicIdentifierDoubleQuotedState
	doctypePublicIdentifierSingleQuotedState
	afterDOCTYPEPublicIdentifierState
	betweenDOCTYPEPublicAndSystemIdentifiersState
	afterDOCTYPESystemKeywordState
	beforeDOCTYPESystemIdentifierState
	doctypeSystemIdentifierDoubleQuotedState
	doctypeSystemIdentifierSingleQuotedState
	afterDOCTYPESystemIdentifierState
	bogusDOCTYPEState
	cdataSectionState
	cdataSectionBracketState
	cdataSectionEndState
	characterReferenceState
	namedCharacterReferenceState
	ambiguousAmpersandState
	numericCharacterReferenceState
	hexadecimalCharacterReferenceStartState
	decimalCharacterReferenceStartState
	hexadecimalCharacterReferenceState
	decimalCharacterReferenceState
	numericCharacterReferenceEndState

	stateCount
)

// ValidState reports whether s is one of the named states above, the
// check behind html5.ErrUnknownInitialState: a caller assembling
// Options.InitialState from an untrusted source (e.g. deserialized
// config) gets a clear rejection instead of a Tokenizer silently
// starting in an undefined state.
func ValidState(s State) bool { return s >= DataState && s < stateCount }
