package parser

import (
	"fmt"
	"strings"
)

// TokenType discriminates the six token variants a tokenizer emits.
type TokenType uint

const (
	characterToken TokenType = iota
	startTagToken
	endTagToken
	commentToken
	doctypeToken
	endOfFileToken
)

func (t TokenType) String() string {
	switch t {
	case characterToken:
		return "Character"
	case startTagToken:
		return "StartTag"
	case endTagToken:
		return "EndTag"
	case commentToken:
		return "Comment"
	case doctypeToken:
		return "DOCTYPE"
	case endOfFileToken:
		return "EndOfFile"
	}
	return "unknown"
}

// Attribute is one name/value pair on a tag token. The tokenizer keeps
// attributes in source order and keeps duplicates; deduplication is the tree
// construction stage's job.
type Attribute struct {
	Name  string
	Value string
}

// Token is a finished token. Its string data is owned by the token; the
// tokenizer keeps no reference into it after emission.
type Token struct {
	Type        TokenType
	TagName     string
	Attributes  []Attribute
	SelfClosing bool

	// Comment and Character payload.
	Data string

	// DOCTYPE payload. The missing flags distinguish an absent identifier
	// from a present-but-empty one.
	PublicIdentifier        string
	SystemIdentifier        string
	MissingPublicIdentifier bool
	MissingSystemIdentifier bool
	ForceQuirks             bool
}

func (t *Token) IsDoctype() bool   { return t.Type == doctypeToken }
func (t *Token) IsStartTag() bool  { return t.Type == startTagToken }
func (t *Token) IsEndTag() bool    { return t.Type == endTagToken }
func (t *Token) IsComment() bool   { return t.Type == commentToken }
func (t *Token) IsCharacter() bool { return t.Type == characterToken }
func (t *Token) IsEndOfFile() bool { return t.Type == endOfFileToken }

func (t *Token) String() string {
	switch t.Type {
	case characterToken:
		return fmt.Sprintf("Character(%q)", t.Data)
	case commentToken:
		return fmt.Sprintf("Comment(%q)", t.Data)
	case startTagToken, endTagToken:
		var b strings.Builder
		fmt.Fprintf(&b, "%s(%s", t.Type, t.TagName)
		for _, attr := range t.Attributes {
			fmt.Fprintf(&b, " %s=%q", attr.Name, attr.Value)
		}
		if t.SelfClosing {
			b.WriteString(" /")
		}
		b.WriteString(")")
		return b.String()
	case doctypeToken:
		var b strings.Builder
		fmt.Fprintf(&b, "DOCTYPE(%s", t.TagName)
		if !t.MissingPublicIdentifier {
			fmt.Fprintf(&b, " public=%q", t.PublicIdentifier)
		}
		if !t.MissingSystemIdentifier {
			fmt.Fprintf(&b, " system=%q", t.SystemIdentifier)
		}
		if t.ForceQuirks {
			b.WriteString(" quirks")
		}
		b.WriteString(")")
		return b.String()
	case endOfFileToken:
		return "EndOfFile"
	}
	return "unknown"
}

type tagType uint

const (
	startTag tagType = iota
	endTag
)

// tokenBuilder accumulates one in-progress token across states. All buffers
// are reused between tokens; Reset clears the token's fields but not the temp
// buffer, whose lifetime is managed by the character reference and end tag
// name states that share it, nor the coalesced character data, which only
// PendingCharacters drains. The tag type and the character reference code
// are set by the states that use them.
type tokenBuilder struct {
	name       strings.Builder
	data       strings.Builder
	chars      strings.Builder
	publicID   strings.Builder
	systemID   strings.Builder
	tempBuffer []rune

	attributes     []Attribute
	attrName       strings.Builder
	attrValue      strings.Builder
	attrInProgress bool

	curTagType      tagType
	selfClosing     bool
	forceQuirks     bool
	missingPublicID bool
	missingSystemID bool

	charRefCode     int
	charRefOverflow bool
}

func newTokenBuilder() *tokenBuilder {
	return &tokenBuilder{missingPublicID: true, missingSystemID: true}
}

// Reset clears the builder so a fresh token can be started.
func (t *tokenBuilder) Reset() {
	t.name.Reset()
	t.data.Reset()
	t.publicID.Reset()
	t.systemID.Reset()
	t.attributes = nil
	t.attrName.Reset()
	t.attrValue.Reset()
	t.attrInProgress = false
	t.selfClosing = false
	t.forceQuirks = false
	t.missingPublicID = true
	t.missingSystemID = true
}

func (t *tokenBuilder) WriteName(r rune)             { t.name.WriteRune(r) }
func (t *tokenBuilder) WriteData(r rune)             { t.data.WriteRune(r) }
func (t *tokenBuilder) WriteDataString(s string)     { t.data.WriteString(s) }
func (t *tokenBuilder) WriteChar(r rune)             { t.chars.WriteRune(r) }
func (t *tokenBuilder) WritePublicIdentifier(r rune) { t.publicID.WriteRune(r) }
func (t *tokenBuilder) WriteSystemIdentifier(r rune) { t.systemID.WriteRune(r) }

func (t *tokenBuilder) EnableSelfClosing() { t.selfClosing = true }
func (t *tokenBuilder) EnableForceQuirks() { t.forceQuirks = true }

func (t *tokenBuilder) SetPublicIdentifierPresent() { t.missingPublicID = false }
func (t *tokenBuilder) SetSystemIdentifierPresent() { t.missingSystemID = false }

// StartAttribute commits any attribute under construction and opens a fresh
// one. Subsequent WriteAttributeName and WriteAttributeValue calls target it.
// It reports whether the committed attribute duplicated an earlier name.
func (t *tokenBuilder) StartAttribute() bool {
	dup := t.CommitAttribute()
	t.attrInProgress = true
	return dup
}

// CommitAttribute moves the attribute under construction onto the ordered
// list. It reports whether the name duplicated an earlier attribute; the
// entry is kept either way.
func (t *tokenBuilder) CommitAttribute() bool {
	if !t.attrInProgress {
		return false
	}
	attr := Attribute{Name: t.attrName.String(), Value: t.attrValue.String()}
	dup := false
	for _, prev := range t.attributes {
		if prev.Name == attr.Name {
			dup = true
			break
		}
	}
	t.attributes = append(t.attributes, attr)
	t.attrName.Reset()
	t.attrValue.Reset()
	t.attrInProgress = false
	return dup
}

func (t *tokenBuilder) WriteAttributeName(r rune)  { t.attrName.WriteRune(r) }
func (t *tokenBuilder) WriteAttributeValue(r rune) { t.attrValue.WriteRune(r) }

func (t *tokenBuilder) ResetTempBuffer()       { t.tempBuffer = t.tempBuffer[:0] }
func (t *tokenBuilder) WriteTempBuffer(r rune) { t.tempBuffer = append(t.tempBuffer, r) }
func (t *tokenBuilder) TempBuffer() []rune     { return t.tempBuffer }
func (t *tokenBuilder) TempBufferMatches(s string) bool {
	return string(t.tempBuffer) == s
}

func (t *tokenBuilder) SetCharRef(code int) {
	t.charRefCode = code
	t.charRefOverflow = false
}

func (t *tokenBuilder) CharRef() int {
	if t.charRefOverflow {
		return 0x110000
	}
	return t.charRefCode
}

// AccumulateCharRef folds one digit of the given base into the character
// reference code, saturating past the Unicode range so huge references
// cannot wrap around.
func (t *tokenBuilder) AccumulateCharRef(base, digit int) {
	if t.charRefOverflow {
		return
	}
	t.charRefCode = t.charRefCode*base + digit
	if t.charRefCode > 0x10FFFF {
		t.charRefOverflow = true
		t.charRefCode = 0x110000
	}
}

// StartTagToken finalizes the builder as a start tag.
func (t *tokenBuilder) StartTagToken() Token {
	t.CommitAttribute()
	return Token{
		Type:        startTagToken,
		TagName:     t.name.String(),
		Attributes:  t.attributes,
		SelfClosing: t.selfClosing,
	}
}

// EndTagToken finalizes the builder as an end tag. Attributes and the
// self-closing flag are carried as parsed; downstream ignores them.
func (t *tokenBuilder) EndTagToken() Token {
	t.CommitAttribute()
	return Token{
		Type:        endTagToken,
		TagName:     t.name.String(),
		Attributes:  t.attributes,
		SelfClosing: t.selfClosing,
	}
}

func (t *tokenBuilder) CurrentTagName() string { return t.name.String() }

func (t *tokenBuilder) CommentToken() Token {
	return Token{Type: commentToken, Data: t.data.String()}
}

func (t *tokenBuilder) DoctypeToken() Token {
	return Token{
		Type:                    doctypeToken,
		TagName:                 t.name.String(),
		PublicIdentifier:        t.publicID.String(),
		SystemIdentifier:        t.systemID.String(),
		MissingPublicIdentifier: t.missingPublicID,
		MissingSystemIdentifier: t.missingSystemID,
		ForceQuirks:             t.forceQuirks,
	}
}

func (t *tokenBuilder) EndOfFileToken() Token {
	return Token{Type: endOfFileToken}
}

// PendingCharacters drains the coalesced character data accumulated since
// the last flush, or reports false when there is none.
func (t *tokenBuilder) PendingCharacters() (Token, bool) {
	if t.chars.Len() == 0 {
		return Token{}, false
	}
	tok := Token{Type: characterToken, Data: t.chars.String()}
	t.chars.Reset()
	return tok, true
}
