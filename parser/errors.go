package parser

import "fmt"

// ErrorCode names a parse error the way the HTML Standard does. Parse errors
// are recoverable: the tokenizer reports one and continues with the fallback
// transition the standard prescribes.
type ErrorCode string

const (
	AbruptClosingOfEmptyComment         ErrorCode = "abrupt-closing-of-empty-comment"
	AbruptDoctypePublicIdentifier       ErrorCode = "abrupt-doctype-public-identifier"
	AbruptDoctypeSystemIdentifier       ErrorCode = "abrupt-doctype-system-identifier"
	AbsenceOfDigitsInNumericCharRef     ErrorCode = "absence-of-digits-in-numeric-character-reference"
	CDATAInHTMLContent                  ErrorCode = "cdata-in-html-content"
	CharacterReferenceOutsideRange      ErrorCode = "character-reference-outside-unicode-range"
	ControlCharacterReference           ErrorCode = "control-character-reference"
	DuplicateAttribute                  ErrorCode = "duplicate-attribute"
	EndTagWithAttributes                ErrorCode = "end-tag-with-attributes"
	EndTagWithTrailingSolidus           ErrorCode = "end-tag-with-trailing-solidus"
	EOFBeforeTagName                    ErrorCode = "eof-before-tag-name"
	EOFInCDATA                          ErrorCode = "eof-in-cdata"
	EOFInComment                        ErrorCode = "eof-in-comment"
	EOFInDoctype                        ErrorCode = "eof-in-doctype"
	EOFInScriptHTMLCommentLikeText      ErrorCode = "eof-in-script-html-comment-like-text"
	EOFInTag                            ErrorCode = "eof-in-tag"
	IncorrectlyClosedComment            ErrorCode = "incorrectly-closed-comment"
	IncorrectlyOpenedComment            ErrorCode = "incorrectly-opened-comment"
	InvalidCharacterSequenceAfterName   ErrorCode = "invalid-character-sequence-after-doctype-name"
	InvalidFirstCharacterOfTagName      ErrorCode = "invalid-first-character-of-tag-name"
	MissingAttributeValue               ErrorCode = "missing-attribute-value"
	MissingDoctypeName                  ErrorCode = "missing-doctype-name"
	MissingDoctypePublicIdentifier      ErrorCode = "missing-doctype-public-identifier"
	MissingDoctypeSystemIdentifier      ErrorCode = "missing-doctype-system-identifier"
	MissingEndTagName                   ErrorCode = "missing-end-tag-name"
	MissingQuoteBeforePublicIdentifier  ErrorCode = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeSystemIdentifier  ErrorCode = "missing-quote-before-doctype-system-identifier"
	MissingSemicolonAfterCharRef        ErrorCode = "missing-semicolon-after-character-reference"
	MissingWhitespaceAfterPublic        ErrorCode = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterSystem        ErrorCode = "missing-whitespace-after-doctype-system-keyword"
	MissingWhitespaceBeforeDoctypeName  ErrorCode = "missing-whitespace-before-doctype-name"
	MissingWhitespaceBetweenAttributes  ErrorCode = "missing-whitespace-between-attributes"
	MissingWhitespaceBetweenIdentifiers ErrorCode = "missing-whitespace-between-doctype-public-and-system-identifiers"
	NestedComment                       ErrorCode = "nested-comment"
	NoncharacterCharacterReference      ErrorCode = "noncharacter-character-reference"
	NullCharacterReference              ErrorCode = "null-character-reference"
	SurrogateCharacterReference         ErrorCode = "surrogate-character-reference"
	UnexpectedCharacterAfterSystemID    ErrorCode = "unexpected-character-after-doctype-system-identifier"
	UnexpectedCharacterInAttributeName  ErrorCode = "unexpected-character-in-attribute-name"
	UnexpectedCharacterInUnquotedValue  ErrorCode = "unexpected-character-in-unquoted-attribute-value"
	UnexpectedEqualsSignBeforeAttrName  ErrorCode = "unexpected-equals-sign-before-attribute-name"
	UnexpectedNullCharacter             ErrorCode = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTag  ErrorCode = "unexpected-question-mark-instead-of-tag-name"
	UnexpectedSolidusInTag              ErrorCode = "unexpected-solidus-in-tag"
	UnknownNamedCharacterReference      ErrorCode = "unknown-named-character-reference"
)

// ParseError is one recoverable tokenization error. Position is the rune
// offset into the preprocessed input of the code point that triggered it.
type ParseError struct {
	Code     ErrorCode
	Position int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Code, e.Position)
}
