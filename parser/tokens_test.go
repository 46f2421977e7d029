package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderTagToken(t *testing.T) {
	b := newTokenBuilder()
	b.Reset()
	b.curTagType = startTag
	for _, r := range "div" {
		b.WriteName(r)
	}
	b.StartAttribute()
	for _, r := range "id" {
		b.WriteAttributeName(r)
	}
	for _, r := range "main" {
		b.WriteAttributeValue(r)
	}
	b.EnableSelfClosing()

	tok := b.StartTagToken()
	assert.Equal(t, "div", tok.TagName)
	assert.True(t, tok.SelfClosing)
	require.Equal(t, []Attribute{{"id", "main"}}, tok.Attributes)
}

func TestBuilderDuplicateAttribute(t *testing.T) {
	b := newTokenBuilder()
	b.Reset()
	b.StartAttribute()
	b.WriteAttributeName('x')
	dup := b.StartAttribute()
	assert.False(t, dup)
	b.WriteAttributeName('x')
	assert.True(t, b.CommitAttribute(), "second x is a duplicate")
}

func TestBuilderResetClearsEverything(t *testing.T) {
	b := newTokenBuilder()
	b.Reset()
	b.WriteName('a')
	b.WriteData('b')
	b.StartAttribute()
	b.WriteAttributeName('c')
	b.EnableSelfClosing()
	b.EnableForceQuirks()
	b.SetPublicIdentifierPresent()
	b.WritePublicIdentifier('p')

	b.Reset()
	tok := b.DoctypeToken()
	assert.Empty(t, tok.TagName)
	assert.Empty(t, tok.PublicIdentifier)
	assert.True(t, tok.MissingPublicIdentifier)
	assert.True(t, tok.MissingSystemIdentifier)
	assert.False(t, tok.ForceQuirks)

	tag := b.StartTagToken()
	assert.Empty(t, tag.Attributes)
	assert.False(t, tag.SelfClosing)
}

func TestBuilderCharacterCoalescing(t *testing.T) {
	b := newTokenBuilder()
	_, ok := b.PendingCharacters()
	assert.False(t, ok)

	b.WriteChar('h')
	b.WriteChar('i')
	tok, ok := b.PendingCharacters()
	require.True(t, ok)
	assert.Equal(t, "hi", tok.Data)

	_, ok = b.PendingCharacters()
	assert.False(t, ok, "drained buffer stays drained")
}

func TestBuilderTempBuffer(t *testing.T) {
	b := newTokenBuilder()
	b.WriteTempBuffer('a')
	b.WriteTempBuffer('b')
	assert.Equal(t, []rune("ab"), b.TempBuffer())
	assert.True(t, b.TempBufferMatches("ab"))

	b.ResetTempBuffer()
	assert.Empty(t, b.TempBuffer())

	// the temp buffer survives a token reset
	b.WriteTempBuffer('x')
	b.Reset()
	assert.True(t, b.TempBufferMatches("x"))
}

func TestBuilderCharRefAccumulator(t *testing.T) {
	b := newTokenBuilder()
	b.SetCharRef(0)
	b.AccumulateCharRef(16, 4)
	b.AccumulateCharRef(16, 1)
	assert.Equal(t, 0x41, b.CharRef())

	b.SetCharRef(0)
	for i := 0; i < 20; i++ {
		b.AccumulateCharRef(10, 9)
	}
	assert.Equal(t, 0x110000, b.CharRef(), "saturates past the Unicode range")
}

func TestTokenPredicates(t *testing.T) {
	tok := Token{Type: startTagToken}
	assert.True(t, tok.IsStartTag())
	assert.False(t, tok.IsEndTag())
	assert.False(t, tok.IsCharacter())

	e := Token{Type: endOfFileToken}
	assert.True(t, e.IsEndOfFile())
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "Character", characterToken.String())
	assert.Equal(t, "StartTag", startTagToken.String())
	assert.Equal(t, "EndTag", endTagToken.String())
	assert.Equal(t, "Comment", commentToken.String())
	assert.Equal(t, "DOCTYPE", doctypeToken.String())
	assert.Equal(t, "EndOfFile", endOfFileToken.String())
}
