package parser

// tokenizerState identifies one state of the tokenization state machine.
// The set and the transition rules follow the tokenization section of the
// HTML Standard.
type tokenizerState uint

const (
	dataState tokenizerState = iota
	rcDataState
	rawTextState
	scriptDataState
	plaintextState
	tagOpenState
	endTagOpenState
	tagNameState
	rcDataLessThanSignState
	rcDataEndTagOpenState
	rcDataEndTagNameState
	rawTextLessThanSignState
	rawTextEndTagOpenState
	rawTextEndTagNameState
	scriptDataLessThanSignState
	scriptDataEndTagOpenState
	scriptDataEndTagNameState
	scriptDataEscapeStartState
	scriptDataEscapeStartDashState
	scriptDataEscapedState
	scriptDataEscapedDashState
	scriptDataEscapedDashDashState
	scriptDataEscapedLessThanSignState
	scriptDataEscapedEndTagOpenState
	scriptDataEscapedEndTagNameState
	scriptDataDoubleEscapeStartState
	scriptDataDoubleEscapedState
	scriptDataDoubleEscapedDashState
	scriptDataDoubleEscapedDashDashState
	scriptDataDoubleEscapedLessThanSignState
	scriptDataDoubleEscapeEndState
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
	beforeDoctypeNameState
	doctypeNameState
	afterDoctypeNameState
	afterDoctypePublicKeywordState
	beforeDoctypePublicIdentifierState
	doctypePublicIdentifierDoubleQuotedState
	doctypePublicIdentifierSingleQuotedState
	afterDoctypePublicIdentifierState
	betweenDoctypePublicAndSystemIdentifiersState
	afterDoctypeSystemKeywordState
	beforeDoctypeSystemIdentifierState
	doctypeSystemIdentifierDoubleQuotedState
	doctypeSystemIdentifierSingleQuotedState
	afterDoctypeSystemIdentifierState
	bogusDoctypeState
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
)

var tokenizerStateNames = map[tokenizerState]string{
	dataState:                                     "data",
	rcDataState:                                   "RCDATA",
	rawTextState:                                  "RAWTEXT",
	scriptDataState:                               "script data",
	plaintextState:                                "PLAINTEXT",
	tagOpenState:                                  "tag open",
	endTagOpenState:                               "end tag open",
	tagNameState:                                  "tag name",
	rcDataLessThanSignState:                       "RCDATA less-than sign",
	rcDataEndTagOpenState:                         "RCDATA end tag open",
	rcDataEndTagNameState:                         "RCDATA end tag name",
	rawTextLessThanSignState:                      "RAWTEXT less-than sign",
	rawTextEndTagOpenState:                        "RAWTEXT end tag open",
	rawTextEndTagNameState:                        "RAWTEXT end tag name",
	scriptDataLessThanSignState:                   "script data less-than sign",
	scriptDataEndTagOpenState:                     "script data end tag open",
	scriptDataEndTagNameState:                     "script data end tag name",
	scriptDataEscapeStartState:                    "script data escape start",
	scriptDataEscapeStartDashState:                "script data escape start dash",
	scriptDataEscapedState:                        "script data escaped",
	scriptDataEscapedDashState:                    "script data escaped dash",
	scriptDataEscapedDashDashState:                "script data escaped dash dash",
	scriptDataEscapedLessThanSignState:            "script data escaped less-than sign",
	scriptDataEscapedEndTagOpenState:              "script data escaped end tag open",
	scriptDataEscapedEndTagNameState:              "script data escaped end tag name",
	scriptDataDoubleEscapeStartState:              "script data double escape start",
	scriptDataDoubleEscapedState:                  "script data double escaped",
	scriptDataDoubleEscapedDashState:              "script data double escaped dash",
	scriptDataDoubleEscapedDashDashState:          "script data double escaped dash dash",
	scriptDataDoubleEscapedLessThanSignState:      "script data double escaped less-than sign",
	scriptDataDoubleEscapeEndState:                "script data double escape end",
	beforeAttributeNameState:                      "before attribute name",
	attributeNameState:                            "attribute name",
	afterAttributeNameState:                       "after attribute name",
	beforeAttributeValueState:                     "before attribute value",
	attributeValueDoubleQuotedState:               "attribute value (double-quoted)",
	attributeValueSingleQuotedState:               "attribute value (single-quoted)",
	attributeValueUnquotedState:                   "attribute value (unquoted)",
	afterAttributeValueQuotedState:                "after attribute value (quoted)",
	selfClosingStartTagState:                      "self-closing start tag",
	bogusCommentState:                             "bogus comment",
	markupDeclarationOpenState:                    "markup declaration open",
	commentStartState:                             "comment start",
	commentStartDashState:                         "comment start dash",
	commentState:                                  "comment",
	commentLessThanSignState:                      "comment less-than sign",
	commentLessThanSignBangState:                  "comment less-than sign bang",
	commentLessThanSignBangDashState:              "comment less-than sign bang dash",
	commentLessThanSignBangDashDashState:          "comment less-than sign bang dash dash",
	commentEndDashState:                           "comment end dash",
	commentEndState:                               "comment end",
	commentEndBangState:                           "comment end bang",
	doctypeState:                                  "DOCTYPE",
	beforeDoctypeNameState:                        "before DOCTYPE name",
	doctypeNameState:                              "DOCTYPE name",
	afterDoctypeNameState:                         "after DOCTYPE name",
	afterDoctypePublicKeywordState:                "after DOCTYPE public keyword",
	beforeDoctypePublicIdentifierState:            "before DOCTYPE public identifier",
	doctypePublicIdentifierDoubleQuotedState:      "DOCTYPE public identifier (double-quoted)",
	doctypePublicIdentifierSingleQuotedState:      "DOCTYPE public identifier (single-quoted)",
	afterDoctypePublicIdentifierState:             "after DOCTYPE public identifier",
	betweenDoctypePublicAndSystemIdentifiersState: "between DOCTYPE public and system identifiers",
	afterDoctypeSystemKeywordState:                "after DOCTYPE system keyword",
	beforeDoctypeSystemIdentifierState:            "before DOCTYPE system identifier",
	doctypeSystemIdentifierDoubleQuotedState:      "DOCTYPE system identifier (double-quoted)",
	doctypeSystemIdentifierSingleQuotedState:      "DOCTYPE system identifier (single-quoted)",
	afterDoctypeSystemIdentifierState:             "after DOCTYPE system identifier",
	bogusDoctypeState:                             "bogus DOCTYPE",
	cdataSectionState:                             "CDATA section",
	cdataSectionBracketState:                      "CDATA section bracket",
	cdataSectionEndState:                          "CDATA section end",
	characterReferenceState:                       "character reference",
	namedCharacterReferenceState:                  "named character reference",
	ambiguousAmpersandState:                       "ambiguous ampersand",
	numericCharacterReferenceState:                "numeric character reference",
	hexadecimalCharacterReferenceStartState:       "hexadecimal character reference start",
	decimalCharacterReferenceStartState:           "decimal character reference start",
	hexadecimalCharacterReferenceState:            "hexadecimal character reference",
	decimalCharacterReferenceState:                "decimal character reference",
	numericCharacterReferenceEndState:             "numeric character reference end",
}

func (s tokenizerState) String() string {
	if name, ok := tokenizerStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Mode selects the tokenization entry state for the next token. A tree
// construction stage switches modes after seeing certain start tags: title
// and textarea switch to RCDATA, style and friends to RAWTEXT, script to
// script data, and so on. The zero value is the data mode.
type Mode uint

const (
	ModeData Mode = iota
	ModeRCDATA
	ModeRawText
	ModeScriptData
	ModePlaintext
)

var modeStates = map[Mode]tokenizerState{
	ModeData:       dataState,
	ModeRCDATA:     rcDataState,
	ModeRawText:    rawTextState,
	ModeScriptData: scriptDataState,
	ModePlaintext:  plaintextState,
}
