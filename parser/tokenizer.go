package parser

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Tokenizer converts a stream of input code points into HTML tokens. It is a
// pull-mode iterator: each call to Token runs the state machine until one
// token has been produced. A tokenizer is single-threaded; separate inputs
// can be tokenized concurrently with separate tokenizers.
type Tokenizer struct {
	input        *inputStream
	builder      *tokenBuilder
	currentState tokenizerState
	returnState  tokenizerState

	pending          []Token
	lastStartTagName string
	allowCDATA       bool
	errHandler       func(ParseError)
	eofEmitted       bool
	done             bool
}

// NewTokenizer slurps and decodes the reader and returns a tokenizer
// positioned at the start of the input in the data state.
func NewTokenizer(r io.Reader) (*Tokenizer, error) {
	input, err := newInputStream(r)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{input: input, builder: newTokenBuilder()}, nil
}

// NewTokenizerString is NewTokenizer over an in-memory document.
func NewTokenizerString(s string) *Tokenizer {
	return &Tokenizer{input: newInputStreamString(s), builder: newTokenBuilder()}
}

// SetMode switches the tokenization entry state. The tree construction stage
// calls this after start tags such as title, style, script and plaintext.
func (p *Tokenizer) SetMode(m Mode) {
	if state, ok := modeStates[m]; ok {
		p.currentState = state
	}
}

// SetLastStartTag overrides the record of the last emitted start tag name,
// which the end-tag-name states compare against to decide whether an end tag
// is appropriate. Fragment parsing needs to seed this.
func (p *Tokenizer) SetLastStartTag(name string) {
	p.lastStartTagName = name
}

// AllowCDATA controls whether <![CDATA[ opens a CDATA section. The tree
// construction stage enables it while the adjusted current node is in a
// foreign namespace; in HTML content the sequence is a bogus comment.
func (p *Tokenizer) AllowCDATA(allow bool) {
	p.allowCDATA = allow
}

// SetErrorHandler installs the parse error side channel. Parse errors never
// stop tokenization; with no handler installed they are dropped.
func (p *Tokenizer) SetErrorHandler(fn func(ParseError)) {
	p.errHandler = fn
}

// Next reports whether another token can be pulled. It stays true until the
// EndOfFile token has been taken.
func (p *Tokenizer) Next() bool {
	return !p.done
}

// Token runs the state machine until one token is available and returns it.
// The returned token owns its data. After the EndOfFile token has been
// returned, Token returns nil.
func (p *Tokenizer) Token() *Token {
	for !p.done {
		if len(p.pending) > 0 {
			tok := p.pending[0]
			p.pending = p.pending[1:]
			if tok.Type == endOfFileToken {
				p.done = true
			}
			return &tok
		}
		r, ok := p.input.next()
		p.process(r, !ok)
	}
	return nil
}

func (p *Tokenizer) process(r rune, eof bool) {
	reconsume := true
	for reconsume {
		from := p.currentState
		reconsume, p.currentState = p.stateHandler(from)(r, eof)
		if logrus.IsLevelEnabled(logrus.TraceLevel) {
			logrus.WithFields(logrus.Fields{
				"from":      from,
				"to":        p.currentState,
				"rune":      string(r),
				"eof":       eof,
				"reconsume": reconsume,
			}).Trace("tokenizer transition")
		}
	}
}

func (p *Tokenizer) parseError(code ErrorCode) {
	err := ParseError{Code: code, Position: p.input.position()}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithFields(logrus.Fields{
			"code":     err.Code,
			"position": err.Position,
		}).Debug("parse error")
	}
	if p.errHandler != nil {
		p.errHandler(err)
	}
}

// emit queues finished tokens for the consumer. Character tokens are routed
// through the builder's coalescing buffer so no two Character tokens are
// ever adjacent in the output.
func (p *Tokenizer) emit(tokens ...Token) {
	for _, tok := range tokens {
		if tok.Type == characterToken {
			for _, r := range tok.Data {
				p.builder.WriteChar(r)
			}
			continue
		}
		p.flushCharacters()
		switch tok.Type {
		case startTagToken:
			p.lastStartTagName = tok.TagName
		case endTagToken:
			if len(tok.Attributes) > 0 {
				p.parseError(EndTagWithAttributes)
			}
			if tok.SelfClosing {
				p.parseError(EndTagWithTrailingSolidus)
			}
		}
		p.pending = append(p.pending, tok)
	}
}

func (p *Tokenizer) emitChar(r rune) {
	p.builder.WriteChar(r)
}

func (p *Tokenizer) flushCharacters() {
	if tok, ok := p.builder.PendingCharacters(); ok {
		p.pending = append(p.pending, tok)
	}
}

// emitEOF queues the EndOfFile token, exactly once for the life of the
// tokenizer, and parks the machine in the data state.
func (p *Tokenizer) emitEOF() (bool, tokenizerState) {
	p.flushCharacters()
	if !p.eofEmitted {
		p.eofEmitted = true
		p.emit(p.builder.EndOfFileToken())
	}
	return false, dataState
}

func (p *Tokenizer) emitCurrentTag() tokenizerState {
	if p.builder.CommitAttribute() {
		p.parseError(DuplicateAttribute)
	}
	switch p.builder.curTagType {
	case startTag:
		p.emit(p.builder.StartTagToken())
	case endTag:
		p.emit(p.builder.EndTagToken())
	}
	return dataState
}

func (p *Tokenizer) startAttribute() {
	if p.builder.StartAttribute() {
		p.parseError(DuplicateAttribute)
	}
}

// isAppropriateEndTag reports whether the end tag under construction matches
// the last start tag this tokenizer emitted.
func (p *Tokenizer) isAppropriateEndTag() bool {
	return p.lastStartTagName != "" && p.lastStartTagName == p.builder.CurrentTagName()
}

func consumedByAttribute(returnState tokenizerState) bool {
	switch returnState {
	case attributeValueDoubleQuotedState, attributeValueSingleQuotedState, attributeValueUnquotedState:
		return true
	}
	return false
}

// flushCodePointsAsCharacterReference drains the temp buffer into whichever
// sink the return state designates: the attribute value under construction,
// or the character data stream.
func (p *Tokenizer) flushCodePointsAsCharacterReference() {
	if consumedByAttribute(p.returnState) {
		for _, r := range p.builder.TempBuffer() {
			p.builder.WriteAttributeValue(r)
		}
		return
	}
	for _, r := range p.builder.TempBuffer() {
		p.emitChar(r)
	}
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isASCIIUpperAlpha(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILowerAlpha(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIAlpha(r rune) bool      { return isASCIIUpperAlpha(r) || isASCIILowerAlpha(r) }
func isASCIIDigit(r rune) bool      { return r >= '0' && r <= '9' }

func isASCIIAlphanumeric(r rune) bool { return isASCIIAlpha(r) || isASCIIDigit(r) }

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'A' && r <= 'F') || (r >= 'a' && r <= 'f')
}

func isSurrogate(code int) bool { return code >= 0xD800 && code <= 0xDFFF }

func isNonCharacter(code int) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}
	return (code&0xFFFE) == 0xFFFE && code <= 0x10FFFF
}

func isC0Control(code int) bool { return code >= 0x00 && code <= 0x1F }

func isControl(code int) bool {
	return isC0Control(code) || (code >= 0x7F && code <= 0x9F)
}

type stateHandlerFunc func(r rune, eof bool) (bool, tokenizerState)

func (p *Tokenizer) stateHandler(state tokenizerState) stateHandlerFunc {
	switch state {
	case dataState:
		return p.dataStateHandler
	case rcDataState:
		return p.rcDataStateHandler
	case rawTextState:
		return p.rawTextStateHandler
	case scriptDataState:
		return p.scriptDataStateHandler
	case plaintextState:
		return p.plaintextStateHandler
	case tagOpenState:
		return p.tagOpenStateHandler
	case endTagOpenState:
		return p.endTagOpenStateHandler
	case tagNameState:
		return p.tagNameStateHandler
	case rcDataLessThanSignState:
		return p.rcDataLessThanSignStateHandler
	case rcDataEndTagOpenState:
		return p.rcDataEndTagOpenStateHandler
	case rcDataEndTagNameState:
		return p.rcDataEndTagNameStateHandler
	case rawTextLessThanSignState:
		return p.rawTextLessThanSignStateHandler
	case rawTextEndTagOpenState:
		return p.rawTextEndTagOpenStateHandler
	case rawTextEndTagNameState:
		return p.rawTextEndTagNameStateHandler
	case scriptDataLessThanSignState:
		return p.scriptDataLessThanSignStateHandler
	case scriptDataEndTagOpenState:
		return p.scriptDataEndTagOpenStateHandler
	case scriptDataEndTagNameState:
		return p.scriptDataEndTagNameStateHandler
	case scriptDataEscapeStartState:
		return p.scriptDataEscapeStartStateHandler
	case scriptDataEscapeStartDashState:
		return p.scriptDataEscapeStartDashStateHandler
	case scriptDataEscapedState:
		return p.scriptDataEscapedStateHandler
	case scriptDataEscapedDashState:
		return p.scriptDataEscapedDashStateHandler
	case scriptDataEscapedDashDashState:
		return p.scriptDataEscapedDashDashStateHandler
	case scriptDataEscapedLessThanSignState:
		return p.scriptDataEscapedLessThanSignStateHandler
	case scriptDataEscapedEndTagOpenState:
		return p.scriptDataEscapedEndTagOpenStateHandler
	case scriptDataEscapedEndTagNameState:
		return p.scriptDataEscapedEndTagNameStateHandler
	case scriptDataDoubleEscapeStartState:
		return p.scriptDataDoubleEscapeStartStateHandler
	case scriptDataDoubleEscapedState:
		return p.scriptDataDoubleEscapedStateHandler
	case scriptDataDoubleEscapedDashState:
		return p.scriptDataDoubleEscapedDashStateHandler
	case scriptDataDoubleEscapedDashDashState:
		return p.scriptDataDoubleEscapedDashDashStateHandler
	case scriptDataDoubleEscapedLessThanSignState:
		return p.scriptDataDoubleEscapedLessThanSignStateHandler
	case scriptDataDoubleEscapeEndState:
		return p.scriptDataDoubleEscapeEndStateHandler
	case beforeAttributeNameState:
		return p.beforeAttributeNameStateHandler
	case attributeNameState:
		return p.attributeNameStateHandler
	case afterAttributeNameState:
		return p.afterAttributeNameStateHandler
	case beforeAttributeValueState:
		return p.beforeAttributeValueStateHandler
	case attributeValueDoubleQuotedState:
		return p.attributeValueDoubleQuotedStateHandler
	case attributeValueSingleQuotedState:
		return p.attributeValueSingleQuotedStateHandler
	case attributeValueUnquotedState:
		return p.attributeValueUnquotedStateHandler
	case afterAttributeValueQuotedState:
		return p.afterAttributeValueQuotedStateHandler
	case selfClosingStartTagState:
		return p.selfClosingStartTagStateHandler
	case bogusCommentState:
		return p.bogusCommentStateHandler
	case markupDeclarationOpenState:
		return p.markupDeclarationOpenStateHandler
	case commentStartState:
		return p.commentStartStateHandler
	case commentStartDashState:
		return p.commentStartDashStateHandler
	case commentState:
		return p.commentStateHandler
	case commentLessThanSignState:
		return p.commentLessThanSignStateHandler
	case commentLessThanSignBangState:
		return p.commentLessThanSignBangStateHandler
	case commentLessThanSignBangDashState:
		return p.commentLessThanSignBangDashStateHandler
	case commentLessThanSignBangDashDashState:
		return p.commentLessThanSignBangDashDashStateHandler
	case commentEndDashState:
		return p.commentEndDashStateHandler
	case commentEndState:
		return p.commentEndStateHandler
	case commentEndBangState:
		return p.commentEndBangStateHandler
	case doctypeState:
		return p.doctypeStateHandler
	case beforeDoctypeNameState:
		return p.beforeDoctypeNameStateHandler
	case doctypeNameState:
		return p.doctypeNameStateHandler
	case afterDoctypeNameState:
		return p.afterDoctypeNameStateHandler
	case afterDoctypePublicKeywordState:
		return p.afterDoctypePublicKeywordStateHandler
	case beforeDoctypePublicIdentifierState:
		return p.beforeDoctypePublicIdentifierStateHandler
	case doctypePublicIdentifierDoubleQuotedState:
		return p.doctypePublicIdentifierDoubleQuotedStateHandler
	case doctypePublicIdentifierSingleQuotedState:
		return p.doctypePublicIdentifierSingleQuotedStateHandler
	case afterDoctypePublicIdentifierState:
		return p.afterDoctypePublicIdentifierStateHandler
	case betweenDoctypePublicAndSystemIdentifiersState:
		return p.betweenDoctypePublicAndSystemIdentifiersStateHandler
	case afterDoctypeSystemKeywordState:
		return p.afterDoctypeSystemKeywordStateHandler
	case beforeDoctypeSystemIdentifierState:
		return p.beforeDoctypeSystemIdentifierStateHandler
	case doctypeSystemIdentifierDoubleQuotedState:
		return p.doctypeSystemIdentifierDoubleQuotedStateHandler
	case doctypeSystemIdentifierSingleQuotedState:
		return p.doctypeSystemIdentifierSingleQuotedStateHandler
	case afterDoctypeSystemIdentifierState:
		return p.afterDoctypeSystemIdentifierStateHandler
	case bogusDoctypeState:
		return p.bogusDoctypeStateHandler
	case cdataSectionState:
		return p.cdataSectionStateHandler
	case cdataSectionBracketState:
		return p.cdataSectionBracketStateHandler
	case cdataSectionEndState:
		return p.cdataSectionEndStateHandler
	case characterReferenceState:
		return p.characterReferenceStateHandler
	case namedCharacterReferenceState:
		return p.namedCharacterReferenceStateHandler
	case ambiguousAmpersandState:
		return p.ambiguousAmpersandStateHandler
	case numericCharacterReferenceState:
		return p.numericCharacterReferenceStateHandler
	case hexadecimalCharacterReferenceStartState:
		return p.hexadecimalCharacterReferenceStartStateHandler
	case decimalCharacterReferenceStartState:
		return p.decimalCharacterReferenceStartStateHandler
	case hexadecimalCharacterReferenceState:
		return p.hexadecimalCharacterReferenceStateHandler
	case decimalCharacterReferenceState:
		return p.decimalCharacterReferenceStateHandler
	case numericCharacterReferenceEndState:
		return p.numericCharacterReferenceEndStateHandler
	}
	return nil
}

func (p *Tokenizer) dataStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '&':
		p.returnState = dataState
		return false, characterReferenceState
	case '<':
		return false, tagOpenState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitChar(r)
		return false, dataState
	default:
		p.emitChar(r)
		return false, dataState
	}
}

func (p *Tokenizer) rcDataStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '&':
		p.returnState = rcDataState
		return false, characterReferenceState
	case '<':
		return false, rcDataLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, rcDataState
	default:
		p.emitChar(r)
		return false, rcDataState
	}
}

func (p *Tokenizer) rawTextStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '<':
		return false, rawTextLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, rawTextState
	default:
		p.emitChar(r)
		return false, rawTextState
	}
}

func (p *Tokenizer) scriptDataStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '<':
		return false, scriptDataLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataState
	default:
		p.emitChar(r)
		return false, scriptDataState
	}
}

func (p *Tokenizer) plaintextStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, plaintextState
	default:
		p.emitChar(r)
		return false, plaintextState
	}
}

func (p *Tokenizer) tagOpenStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFBeforeTagName)
		p.emitChar('<')
		return p.emitEOF()
	}
	switch {
	case r == '!':
		return false, markupDeclarationOpenState
	case r == '/':
		return false, endTagOpenState
	case isASCIIAlpha(r):
		p.builder.Reset()
		p.builder.curTagType = startTag
		return true, tagNameState
	case r == '?':
		p.parseError(UnexpectedQuestionMarkInsteadOfTag)
		p.builder.Reset()
		return true, bogusCommentState
	default:
		p.parseError(InvalidFirstCharacterOfTagName)
		p.emitChar('<')
		return true, dataState
	}
}

func (p *Tokenizer) endTagOpenStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFBeforeTagName)
		p.emitChar('<')
		p.emitChar('/')
		return p.emitEOF()
	}
	switch {
	case isASCIIAlpha(r):
		p.builder.Reset()
		p.builder.curTagType = endTag
		return true, tagNameState
	case r == '>':
		p.parseError(MissingEndTagName)
		return false, dataState
	default:
		p.parseError(InvalidFirstCharacterOfTagName)
		p.builder.Reset()
		return true, bogusCommentState
	}
}

func (p *Tokenizer) tagNameStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeAttributeNameState
	case r == '/':
		return false, selfClosingStartTagState
	case r == '>':
		return false, p.emitCurrentTag()
	case isASCIIUpperAlpha(r):
		p.builder.WriteName(r + 0x20)
		return false, tagNameState
	case r == '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.builder.WriteName('\uFFFD')
		return false, tagNameState
	default:
		p.builder.WriteName(r)
		return false, tagNameState
	}
}

func (p *Tokenizer) rcDataLessThanSignStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '/' {
		p.builder.ResetTempBuffer()
		return false, rcDataEndTagOpenState
	}
	p.emitChar('<')
	return true, rcDataState
}

func (p *Tokenizer) rcDataEndTagOpenStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIAlpha(r) {
		p.builder.Reset()
		p.builder.curTagType = endTag
		return true, rcDataEndTagNameState
	}
	p.emitChar('<')
	p.emitChar('/')
	return true, rcDataState
}

// abandonEndTagName bails out of an inappropriate end tag inside RCDATA,
// RAWTEXT or script data: everything consumed so far is replayed as
// character data.
func (p *Tokenizer) abandonEndTagName(fallback tokenizerState) (bool, tokenizerState) {
	p.emitChar('<')
	p.emitChar('/')
	for _, tr := range p.builder.TempBuffer() {
		p.emitChar(tr)
	}
	return true, fallback
}

func (p *Tokenizer) endTagNameStateHandler(r rune, eof bool, self, fallback tokenizerState) (bool, tokenizerState) {
	if eof {
		return p.abandonEndTagName(fallback)
	}
	switch {
	case isASCIIWhitespace(r):
		if p.isAppropriateEndTag() {
			return false, beforeAttributeNameState
		}
		return p.abandonEndTagName(fallback)
	case r == '/':
		if p.isAppropriateEndTag() {
			return false, selfClosingStartTagState
		}
		return p.abandonEndTagName(fallback)
	case r == '>':
		if p.isAppropriateEndTag() {
			return false, p.emitCurrentTag()
		}
		return p.abandonEndTagName(fallback)
	case isASCIIUpperAlpha(r):
		p.builder.WriteTempBuffer(r)
		p.builder.WriteName(r + 0x20)
		return false, self
	case isASCIILowerAlpha(r):
		p.builder.WriteTempBuffer(r)
		p.builder.WriteName(r)
		return false, self
	default:
		return p.abandonEndTagName(fallback)
	}
}

func (p *Tokenizer) rcDataEndTagNameStateHandler(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagNameStateHandler(r, eof, rcDataEndTagNameState, rcDataState)
}

func (p *Tokenizer) rawTextLessThanSignStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '/' {
		p.builder.ResetTempBuffer()
		return false, rawTextEndTagOpenState
	}
	p.emitChar('<')
	return true, rawTextState
}

func (p *Tokenizer) rawTextEndTagOpenStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIAlpha(r) {
		p.builder.Reset()
		p.builder.curTagType = endTag
		return true, rawTextEndTagNameState
	}
	p.emitChar('<')
	p.emitChar('/')
	return true, rawTextState
}

func (p *Tokenizer) rawTextEndTagNameStateHandler(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagNameStateHandler(r, eof, rawTextEndTagNameState, rawTextState)
}

func (p *Tokenizer) scriptDataLessThanSignStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case '/':
			p.builder.ResetTempBuffer()
			return false, scriptDataEndTagOpenState
		case '!':
			p.emitChar('<')
			p.emitChar('!')
			return false, scriptDataEscapeStartState
		}
	}
	p.emitChar('<')
	return true, scriptDataState
}

func (p *Tokenizer) scriptDataEndTagOpenStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIAlpha(r) {
		p.builder.Reset()
		p.builder.curTagType = endTag
		return true, scriptDataEndTagNameState
	}
	p.emitChar('<')
	p.emitChar('/')
	return true, scriptDataState
}

func (p *Tokenizer) scriptDataEndTagNameStateHandler(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagNameStateHandler(r, eof, scriptDataEndTagNameState, scriptDataState)
}

func (p *Tokenizer) scriptDataEscapeStartStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		p.emitChar('-')
		return false, scriptDataEscapeStartDashState
	}
	return true, scriptDataState
}

func (p *Tokenizer) scriptDataEscapeStartDashStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		p.emitChar('-')
		return false, scriptDataEscapedDashDashState
	}
	return true, scriptDataState
}

func (p *Tokenizer) scriptDataEscapedStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEOF()
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataEscapedDashState
	case '<':
		return false, scriptDataEscapedLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataEscapedState
	}
}

func (p *Tokenizer) scriptDataEscapedDashStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEOF()
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataEscapedDashDashState
	case '<':
		return false, scriptDataEscapedLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataEscapedState
	}
}

func (p *Tokenizer) scriptDataEscapedDashDashStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEOF()
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataEscapedDashDashState
	case '<':
		return false, scriptDataEscapedLessThanSignState
	case '>':
		p.emitChar('>')
		return false, scriptDataState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataEscapedState
	}
}

func (p *Tokenizer) scriptDataEscapedLessThanSignStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case r == '/':
			p.builder.ResetTempBuffer()
			return false, scriptDataEscapedEndTagOpenState
		case isASCIIAlpha(r):
			p.builder.ResetTempBuffer()
			p.emitChar('<')
			return true, scriptDataDoubleEscapeStartState
		}
	}
	p.emitChar('<')
	return true, scriptDataEscapedState
}

func (p *Tokenizer) scriptDataEscapedEndTagOpenStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIAlpha(r) {
		p.builder.Reset()
		p.builder.curTagType = endTag
		return true, scriptDataEscapedEndTagNameState
	}
	p.emitChar('<')
	p.emitChar('/')
	return true, scriptDataEscapedState
}

func (p *Tokenizer) scriptDataEscapedEndTagNameStateHandler(r rune, eof bool) (bool, tokenizerState) {
	return p.endTagNameStateHandler(r, eof, scriptDataEscapedEndTagNameState, scriptDataEscapedState)
}

func (p *Tokenizer) scriptDataDoubleEscapeStartStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case isASCIIWhitespace(r) || r == '/' || r == '>':
			p.emitChar(r)
			if p.builder.TempBufferMatches("script") {
				return false, scriptDataDoubleEscapedState
			}
			return false, scriptDataEscapedState
		case isASCIIUpperAlpha(r):
			p.builder.WriteTempBuffer(r + 0x20)
			p.emitChar(r)
			return false, scriptDataDoubleEscapeStartState
		case isASCIILowerAlpha(r):
			p.builder.WriteTempBuffer(r)
			p.emitChar(r)
			return false, scriptDataDoubleEscapeStartState
		}
	}
	return true, scriptDataEscapedState
}

func (p *Tokenizer) scriptDataDoubleEscapedStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEOF()
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataDoubleEscapedDashState
	case '<':
		p.emitChar('<')
		return false, scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataDoubleEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataDoubleEscapedState
	}
}

func (p *Tokenizer) scriptDataDoubleEscapedDashStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEOF()
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataDoubleEscapedDashDashState
	case '<':
		p.emitChar('<')
		return false, scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataDoubleEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataDoubleEscapedState
	}
}

func (p *Tokenizer) scriptDataDoubleEscapedDashDashStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEOF()
	}
	switch r {
	case '-':
		p.emitChar('-')
		return false, scriptDataDoubleEscapedDashDashState
	case '<':
		p.emitChar('<')
		return false, scriptDataDoubleEscapedLessThanSignState
	case '>':
		p.emitChar('>')
		return false, scriptDataState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitChar('\uFFFD')
		return false, scriptDataDoubleEscapedState
	default:
		p.emitChar(r)
		return false, scriptDataDoubleEscapedState
	}
}

func (p *Tokenizer) scriptDataDoubleEscapedLessThanSignStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '/' {
		p.builder.ResetTempBuffer()
		p.emitChar('/')
		return false, scriptDataDoubleEscapeEndState
	}
	return true, scriptDataDoubleEscapedState
}

func (p *Tokenizer) scriptDataDoubleEscapeEndStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case isASCIIWhitespace(r) || r == '/' || r == '>':
			p.emitChar(r)
			if p.builder.TempBufferMatches("script") {
				return false, scriptDataEscapedState
			}
			return false, scriptDataDoubleEscapedState
		case isASCIIUpperAlpha(r):
			p.builder.WriteTempBuffer(r + 0x20)
			p.emitChar(r)
			return false, scriptDataDoubleEscapeEndState
		case isASCIILowerAlpha(r):
			p.builder.WriteTempBuffer(r)
			p.emitChar(r)
			return false, scriptDataDoubleEscapeEndState
		}
	}
	return true, scriptDataDoubleEscapedState
}

func (p *Tokenizer) beforeAttributeNameStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, afterAttributeNameState
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeAttributeNameState
	case r == '/' || r == '>':
		return true, afterAttributeNameState
	case r == '=':
		p.parseError(UnexpectedEqualsSignBeforeAttrName)
		p.startAttribute()
		p.builder.WriteAttributeName(r)
		return false, attributeNameState
	default:
		p.startAttribute()
		return true, attributeNameState
	}
}

func (p *Tokenizer) attributeNameStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, afterAttributeNameState
	}
	switch {
	case isASCIIWhitespace(r) || r == '/' || r == '>':
		return true, afterAttributeNameState
	case r == '=':
		return false, beforeAttributeValueState
	case isASCIIUpperAlpha(r):
		p.builder.WriteAttributeName(r + 0x20)
		return false, attributeNameState
	case r == '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.builder.WriteAttributeName('\uFFFD')
		return false, attributeNameState
	case r == '"' || r == '\'' || r == '<':
		p.parseError(UnexpectedCharacterInAttributeName)
		p.builder.WriteAttributeName(r)
		return false, attributeNameState
	default:
		p.builder.WriteAttributeName(r)
		return false, attributeNameState
	}
}

func (p *Tokenizer) afterAttributeNameStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, afterAttributeNameState
	case r == '/':
		return false, selfClosingStartTagState
	case r == '=':
		return false, beforeAttributeValueState
	case r == '>':
		return false, p.emitCurrentTag()
	default:
		p.startAttribute()
		return true, attributeNameState
	}
}

func (p *Tokenizer) beforeAttributeValueStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, attributeValueUnquotedState
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeAttributeValueState
	case r == '"':
		return false, attributeValueDoubleQuotedState
	case r == '\'':
		return false, attributeValueSingleQuotedState
	case r == '>':
		p.parseError(MissingAttributeValue)
		return false, p.emitCurrentTag()
	default:
		return true, attributeValueUnquotedState
	}
}

func (p *Tokenizer) attributeValueDoubleQuotedStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEOF()
	}
	switch r {
	case '"':
		return false, afterAttributeValueQuotedState
	case '&':
		p.returnState = attributeValueDoubleQuotedState
		return false, characterReferenceState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.builder.WriteAttributeValue('\uFFFD')
		return false, attributeValueDoubleQuotedState
	default:
		p.builder.WriteAttributeValue(r)
		return false, attributeValueDoubleQuotedState
	}
}

func (p *Tokenizer) attributeValueSingleQuotedStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEOF()
	}
	switch r {
	case '\'':
		return false, afterAttributeValueQuotedState
	case '&':
		p.returnState = attributeValueSingleQuotedState
		return false, characterReferenceState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.builder.WriteAttributeValue('\uFFFD')
		return false, attributeValueSingleQuotedState
	default:
		p.builder.WriteAttributeValue(r)
		return false, attributeValueSingleQuotedState
	}
}

func (p *Tokenizer) attributeValueUnquotedStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeAttributeNameState
	case r == '&':
		p.returnState = attributeValueUnquotedState
		return false, characterReferenceState
	case r == '>':
		return false, p.emitCurrentTag()
	case r == '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.builder.WriteAttributeValue('\uFFFD')
		return false, attributeValueUnquotedState
	case r == '"' || r == '\'' || r == '<' || r == '=' || r == '`':
		p.parseError(UnexpectedCharacterInUnquotedValue)
		p.builder.WriteAttributeValue(r)
		return false, attributeValueUnquotedState
	default:
		p.builder.WriteAttributeValue(r)
		return false, attributeValueUnquotedState
	}
}

func (p *Tokenizer) afterAttributeValueQuotedStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeAttributeNameState
	case r == '/':
		return false, selfClosingStartTagState
	case r == '>':
		return false, p.emitCurrentTag()
	default:
		p.parseError(MissingWhitespaceBetweenAttributes)
		return true, beforeAttributeNameState
	}
}

func (p *Tokenizer) selfClosingStartTagStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEOF()
	}
	switch r {
	case '>':
		p.builder.EnableSelfClosing()
		return false, p.emitCurrentTag()
	default:
		p.parseError(UnexpectedSolidusInTag)
		return true, beforeAttributeNameState
	}
}

func (p *Tokenizer) bogusCommentStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emit(p.builder.CommentToken())
		return p.emitEOF()
	}
	switch r {
	case '>':
		p.emit(p.builder.CommentToken())
		return false, dataState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.builder.WriteData('\uFFFD')
		return false, bogusCommentState
	default:
		p.builder.WriteData(r)
		return false, bogusCommentState
	}
}

// markupDeclarationOpenStateHandler never consumes the code point that got
// it invoked: the character is pushed back so the whole keyword can be
// matched with lookahead.
func (p *Tokenizer) markupDeclarationOpenStateHandler(r rune, eof bool) (bool, tokenizerState) {
	p.input.reconsume()
	switch {
	case p.input.match("--"):
		p.input.consume("--")
		p.builder.Reset()
		return false, commentStartState
	case p.input.matchFold("DOCTYPE"):
		p.input.consume("DOCTYPE")
		return false, doctypeState
	case p.input.match("[CDATA["):
		p.input.consume("[CDATA[")
		if p.allowCDATA {
			return false, cdataSectionState
		}
		p.parseError(CDATAInHTMLContent)
		p.builder.Reset()
		p.builder.WriteDataString("[CDATA[")
		return false, bogusCommentState
	default:
		p.parseError(IncorrectlyOpenedComment)
		p.builder.Reset()
		return false, bogusCommentState
	}
}

func (p *Tokenizer) commentStartStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, commentState
	}
	switch r {
	case '-':
		return false, commentStartDashState
	case '>':
		p.parseError(AbruptClosingOfEmptyComment)
		p.emit(p.builder.CommentToken())
		return false, dataState
	default:
		return true, commentState
	}
}

func (p *Tokenizer) commentStartDashStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInComment)
		p.emit(p.builder.CommentToken())
		return p.emitEOF()
	}
	switch r {
	case '-':
		return false, commentEndState
	case '>':
		p.parseError(AbruptClosingOfEmptyComment)
		p.emit(p.builder.CommentToken())
		return false, dataState
	default:
		p.builder.WriteData('-')
		return true, commentState
	}
}

func (p *Tokenizer) commentStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInComment)
		p.emit(p.builder.CommentToken())
		return p.emitEOF()
	}
	switch r {
	case '<':
		p.builder.WriteData(r)
		return false, commentLessThanSignState
	case '-':
		return false, commentEndDashState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.builder.WriteData('\uFFFD')
		return false, commentState
	default:
		p.builder.WriteData(r)
		return false, commentState
	}
}

func (p *Tokenizer) commentLessThanSignStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case '!':
			p.builder.WriteData(r)
			return false, commentLessThanSignBangState
		case '<':
			p.builder.WriteData(r)
			return false, commentLessThanSignState
		}
	}
	return true, commentState
}

func (p *Tokenizer) commentLessThanSignBangStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		return false, commentLessThanSignBangDashState
	}
	return true, commentState
}

func (p *Tokenizer) commentLessThanSignBangDashStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		return false, commentLessThanSignBangDashDashState
	}
	return true, commentEndDashState
}

func (p *Tokenizer) commentLessThanSignBangDashDashStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r != '>' {
		p.parseError(NestedComment)
	}
	return true, commentEndState
}

func (p *Tokenizer) commentEndDashStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInComment)
		p.emit(p.builder.CommentToken())
		return p.emitEOF()
	}
	switch r {
	case '-':
		return false, commentEndState
	default:
		p.builder.WriteData('-')
		return true, commentState
	}
}

func (p *Tokenizer) commentEndStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInComment)
		p.emit(p.builder.CommentToken())
		return p.emitEOF()
	}
	switch r {
	case '>':
		p.emit(p.builder.CommentToken())
		return false, dataState
	case '!':
		return false, commentEndBangState
	case '-':
		p.builder.WriteData('-')
		return false, commentEndState
	default:
		p.builder.WriteData('-')
		p.builder.WriteData('-')
		return true, commentState
	}
}

func (p *Tokenizer) commentEndBangStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInComment)
		p.emit(p.builder.CommentToken())
		return p.emitEOF()
	}
	switch r {
	case '-':
		p.builder.WriteDataString("--!")
		return false, commentEndDashState
	case '>':
		p.parseError(IncorrectlyClosedComment)
		p.emit(p.builder.CommentToken())
		return false, dataState
	default:
		p.builder.WriteDataString("--!")
		return true, commentState
	}
}

func (p *Tokenizer) doctypeStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.Reset()
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeDoctypeNameState
	case r == '>':
		return true, beforeDoctypeNameState
	default:
		p.parseError(MissingWhitespaceBeforeDoctypeName)
		return true, beforeDoctypeNameState
	}
}

func (p *Tokenizer) beforeDoctypeNameStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.Reset()
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeDoctypeNameState
	case isASCIIUpperAlpha(r):
		p.builder.Reset()
		p.builder.WriteName(r + 0x20)
		return false, doctypeNameState
	case r == '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.builder.Reset()
		p.builder.WriteName('\uFFFD')
		return false, doctypeNameState
	case r == '>':
		p.parseError(MissingDoctypeName)
		p.builder.Reset()
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	default:
		p.builder.Reset()
		p.builder.WriteName(r)
		return false, doctypeNameState
	}
}

func (p *Tokenizer) doctypeNameStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, afterDoctypeNameState
	case r == '>':
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	case isASCIIUpperAlpha(r):
		p.builder.WriteName(r + 0x20)
		return false, doctypeNameState
	case r == '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.builder.WriteName('\uFFFD')
		return false, doctypeNameState
	default:
		p.builder.WriteName(r)
		return false, doctypeNameState
	}
}

func (p *Tokenizer) afterDoctypeNameStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, afterDoctypeNameState
	case r == '>':
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	default:
		p.input.reconsume()
		if p.input.matchFold("PUBLIC") {
			p.input.consume("PUBLIC")
			return false, afterDoctypePublicKeywordState
		}
		if p.input.matchFold("SYSTEM") {
			p.input.consume("SYSTEM")
			return false, afterDoctypeSystemKeywordState
		}
		p.parseError(InvalidCharacterSequenceAfterName)
		p.builder.EnableForceQuirks()
		return false, bogusDoctypeState
	}
}

func (p *Tokenizer) afterDoctypePublicKeywordStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeDoctypePublicIdentifierState
	case r == '"':
		p.parseError(MissingWhitespaceAfterPublic)
		p.builder.SetPublicIdentifierPresent()
		return false, doctypePublicIdentifierDoubleQuotedState
	case r == '\'':
		p.parseError(MissingWhitespaceAfterPublic)
		p.builder.SetPublicIdentifierPresent()
		return false, doctypePublicIdentifierSingleQuotedState
	case r == '>':
		p.parseError(MissingDoctypePublicIdentifier)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	default:
		p.parseError(MissingQuoteBeforePublicIdentifier)
		p.builder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) beforeDoctypePublicIdentifierStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeDoctypePublicIdentifierState
	case r == '"':
		p.builder.SetPublicIdentifierPresent()
		return false, doctypePublicIdentifierDoubleQuotedState
	case r == '\'':
		p.builder.SetPublicIdentifierPresent()
		return false, doctypePublicIdentifierSingleQuotedState
	case r == '>':
		p.parseError(MissingDoctypePublicIdentifier)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	default:
		p.parseError(MissingQuoteBeforePublicIdentifier)
		p.builder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) doctypePublicIdentifierQuoted(r rune, eof bool, quote rune, self tokenizerState) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch r {
	case quote:
		return false, afterDoctypePublicIdentifierState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.builder.WritePublicIdentifier('\uFFFD')
		return false, self
	case '>':
		p.parseError(AbruptDoctypePublicIdentifier)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	default:
		p.builder.WritePublicIdentifier(r)
		return false, self
	}
}

func (p *Tokenizer) doctypePublicIdentifierDoubleQuotedStateHandler(r rune, eof bool) (bool, tokenizerState) {
	return p.doctypePublicIdentifierQuoted(r, eof, '"', doctypePublicIdentifierDoubleQuotedState)
}

func (p *Tokenizer) doctypePublicIdentifierSingleQuotedStateHandler(r rune, eof bool) (bool, tokenizerState) {
	return p.doctypePublicIdentifierQuoted(r, eof, '\'', doctypePublicIdentifierSingleQuotedState)
}

func (p *Tokenizer) afterDoctypePublicIdentifierStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, betweenDoctypePublicAndSystemIdentifiersState
	case r == '>':
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	case r == '"':
		p.parseError(MissingWhitespaceBetweenIdentifiers)
		p.builder.SetSystemIdentifierPresent()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		p.parseError(MissingWhitespaceBetweenIdentifiers)
		p.builder.SetSystemIdentifierPresent()
		return false, doctypeSystemIdentifierSingleQuotedState
	default:
		p.parseError(MissingQuoteBeforeSystemIdentifier)
		p.builder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) betweenDoctypePublicAndSystemIdentifiersStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, betweenDoctypePublicAndSystemIdentifiersState
	case r == '>':
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	case r == '"':
		p.builder.SetSystemIdentifierPresent()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		p.builder.SetSystemIdentifierPresent()
		return false, doctypeSystemIdentifierSingleQuotedState
	default:
		p.parseError(MissingQuoteBeforeSystemIdentifier)
		p.builder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) afterDoctypeSystemKeywordStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeDoctypeSystemIdentifierState
	case r == '"':
		p.parseError(MissingWhitespaceAfterSystem)
		p.builder.SetSystemIdentifierPresent()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		p.parseError(MissingWhitespaceAfterSystem)
		p.builder.SetSystemIdentifierPresent()
		return false, doctypeSystemIdentifierSingleQuotedState
	case r == '>':
		p.parseError(MissingDoctypeSystemIdentifier)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	default:
		p.parseError(MissingQuoteBeforeSystemIdentifier)
		p.builder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) beforeDoctypeSystemIdentifierStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeDoctypeSystemIdentifierState
	case r == '"':
		p.builder.SetSystemIdentifierPresent()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		p.builder.SetSystemIdentifierPresent()
		return false, doctypeSystemIdentifierSingleQuotedState
	case r == '>':
		p.parseError(MissingDoctypeSystemIdentifier)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	default:
		p.parseError(MissingQuoteBeforeSystemIdentifier)
		p.builder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) doctypeSystemIdentifierQuoted(r rune, eof bool, quote rune, self tokenizerState) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch r {
	case quote:
		return false, afterDoctypeSystemIdentifierState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.builder.WriteSystemIdentifier('\uFFFD')
		return false, self
	case '>':
		p.parseError(AbruptDoctypeSystemIdentifier)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	default:
		p.builder.WriteSystemIdentifier(r)
		return false, self
	}
}

func (p *Tokenizer) doctypeSystemIdentifierDoubleQuotedStateHandler(r rune, eof bool) (bool, tokenizerState) {
	return p.doctypeSystemIdentifierQuoted(r, eof, '"', doctypeSystemIdentifierDoubleQuotedState)
}

func (p *Tokenizer) doctypeSystemIdentifierSingleQuotedStateHandler(r rune, eof bool) (bool, tokenizerState) {
	return p.doctypeSystemIdentifierQuoted(r, eof, '\'', doctypeSystemIdentifierSingleQuotedState)
}

func (p *Tokenizer) afterDoctypeSystemIdentifierStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInDoctype)
		p.builder.EnableForceQuirks()
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, afterDoctypeSystemIdentifierState
	case r == '>':
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	default:
		p.parseError(UnexpectedCharacterAfterSystemID)
		return true, bogusDoctypeState
	}
}

func (p *Tokenizer) bogusDoctypeStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.emit(p.builder.DoctypeToken())
		return p.emitEOF()
	}
	switch r {
	case '>':
		p.emit(p.builder.DoctypeToken())
		return false, dataState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		return false, bogusDoctypeState
	default:
		return false, bogusDoctypeState
	}
}

func (p *Tokenizer) cdataSectionStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		p.parseError(EOFInCDATA)
		return p.emitEOF()
	}
	switch r {
	case ']':
		return false, cdataSectionBracketState
	default:
		p.emitChar(r)
		return false, cdataSectionState
	}
}

func (p *Tokenizer) cdataSectionBracketStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == ']' {
		return false, cdataSectionEndState
	}
	p.emitChar(']')
	return true, cdataSectionState
}

func (p *Tokenizer) cdataSectionEndStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case ']':
			p.emitChar(']')
			return false, cdataSectionEndState
		case '>':
			return false, dataState
		}
	}
	p.emitChar(']')
	p.emitChar(']')
	return true, cdataSectionState
}

func (p *Tokenizer) characterReferenceStateHandler(r rune, eof bool) (bool, tokenizerState) {
	p.builder.ResetTempBuffer()
	p.builder.WriteTempBuffer('&')
	if eof {
		p.flushCodePointsAsCharacterReference()
		return true, p.returnState
	}
	switch {
	case isASCIIAlphanumeric(r):
		return true, namedCharacterReferenceState
	case r == '#':
		p.builder.WriteTempBuffer(r)
		return false, numericCharacterReferenceState
	default:
		p.flushCodePointsAsCharacterReference()
		return true, p.returnState
	}
}

// namedCharacterReferenceStateHandler consumes the longest run of code
// points that names a table entry, peeking past the already-consumed first
// character and only advancing the cursor once the match length is known.
func (p *Tokenizer) namedCharacterReferenceStateHandler(r rune, eof bool) (bool, tokenizerState) {
	cand := []rune{r}
	best := 0
	for i := 0; ; i++ {
		if _, ok := namedCharRefs[string(cand)]; ok {
			best = len(cand)
		}
		nr, ok := p.input.peek(i)
		if !ok {
			break
		}
		cand = append(cand, nr)
		if !charRefPrefixHasMatch(string(cand)) {
			break
		}
	}

	if best == 0 {
		p.builder.WriteTempBuffer(r)
		p.flushCodePointsAsCharacterReference()
		return false, ambiguousAmpersandState
	}

	matched := cand[:best]
	for i := 0; i < best-1; i++ {
		p.input.next()
	}

	endsInSemicolon := matched[best-1] == ';'
	if consumedByAttribute(p.returnState) && !endsInSemicolon {
		// historical quirk: &not in &notit; stays literal inside an
		// attribute when followed by = or an alphanumeric
		if next, ok := p.input.peek(0); ok && (next == '=' || isASCIIAlphanumeric(next)) {
			for _, mr := range matched {
				p.builder.WriteTempBuffer(mr)
			}
			p.flushCodePointsAsCharacterReference()
			return false, p.returnState
		}
	}

	if !endsInSemicolon {
		p.parseError(MissingSemicolonAfterCharRef)
	}
	p.builder.ResetTempBuffer()
	for _, er := range namedCharRefs[string(matched)] {
		p.builder.WriteTempBuffer(er)
	}
	p.flushCodePointsAsCharacterReference()
	return false, p.returnState
}

func (p *Tokenizer) ambiguousAmpersandStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, p.returnState
	}
	switch {
	case isASCIIAlphanumeric(r):
		if consumedByAttribute(p.returnState) {
			p.builder.WriteAttributeValue(r)
		} else {
			p.emitChar(r)
		}
		return false, ambiguousAmpersandState
	case r == ';':
		p.parseError(UnknownNamedCharacterReference)
		return true, p.returnState
	default:
		return true, p.returnState
	}
}

func (p *Tokenizer) numericCharacterReferenceStateHandler(r rune, eof bool) (bool, tokenizerState) {
	p.builder.SetCharRef(0)
	if !eof && (r == 'x' || r == 'X') {
		p.builder.WriteTempBuffer(r)
		return false, hexadecimalCharacterReferenceStartState
	}
	return true, decimalCharacterReferenceStartState
}

func (p *Tokenizer) hexadecimalCharacterReferenceStartStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIHexDigit(r) {
		return true, hexadecimalCharacterReferenceState
	}
	p.parseError(AbsenceOfDigitsInNumericCharRef)
	p.flushCodePointsAsCharacterReference()
	return true, p.returnState
}

func (p *Tokenizer) decimalCharacterReferenceStartStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIDigit(r) {
		return true, decimalCharacterReferenceState
	}
	p.parseError(AbsenceOfDigitsInNumericCharRef)
	p.flushCodePointsAsCharacterReference()
	return true, p.returnState
}

func (p *Tokenizer) hexadecimalCharacterReferenceStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case isASCIIDigit(r):
			p.builder.AccumulateCharRef(16, int(r-0x30))
			return false, hexadecimalCharacterReferenceState
		case r >= 'A' && r <= 'F':
			p.builder.AccumulateCharRef(16, int(r-0x37))
			return false, hexadecimalCharacterReferenceState
		case r >= 'a' && r <= 'f':
			p.builder.AccumulateCharRef(16, int(r-0x57))
			return false, hexadecimalCharacterReferenceState
		case r == ';':
			return false, numericCharacterReferenceEndState
		}
	}
	p.parseError(MissingSemicolonAfterCharRef)
	return true, numericCharacterReferenceEndState
}

func (p *Tokenizer) decimalCharacterReferenceStateHandler(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case isASCIIDigit(r):
			p.builder.AccumulateCharRef(10, int(r-0x30))
			return false, decimalCharacterReferenceState
		case r == ';':
			return false, numericCharacterReferenceEndState
		}
	}
	p.parseError(MissingSemicolonAfterCharRef)
	return true, numericCharacterReferenceEndState
}

// numericCharacterReferenceEndStateHandler validates the accumulated code
// and flushes it. It never consumes input itself: whatever code point it was
// dispatched with is handed straight back to the return state.
func (p *Tokenizer) numericCharacterReferenceEndStateHandler(r rune, eof bool) (bool, tokenizerState) {
	code := p.builder.CharRef()
	switch {
	case code == 0:
		p.parseError(NullCharacterReference)
		code = 0xFFFD
	case code > 0x10FFFF:
		p.parseError(CharacterReferenceOutsideRange)
		code = 0xFFFD
	case isSurrogate(code):
		p.parseError(SurrogateCharacterReference)
		code = 0xFFFD
	case isNonCharacter(code):
		p.parseError(NoncharacterCharacterReference)
	case code == 0x0D || (isControl(code) && !isASCIIWhitespace(rune(code))):
		p.parseError(ControlCharacterReference)
		if remapped, ok := numericCharRefRemap[code]; ok {
			code = int(remapped)
		}
	}
	p.builder.ResetTempBuffer()
	p.builder.WriteTempBuffer(rune(code))
	p.flushCodePointsAsCharacterReference()
	return true, p.returnState
}
