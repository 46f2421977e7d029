package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedCharacterReferences(t *testing.T) {
	tests := []struct {
		input string
		want  string
		errs  []ErrorCode
	}{
		{"a&amp;b", "a&b", nil},
		{"&lt;tag&gt;", "<tag>", nil},
		{"&quot;q&quot;", `"q"`, nil},
		{"&copy; 2020", "© 2020", nil},
		{"&ampb", "&b", []ErrorCode{MissingSemicolonAfterCharRef}},
		{"&nosuchthing;x", "&nosuchthing;x", []ErrorCode{UnknownNamedCharacterReference}},
		{"&nosuch x", "&nosuch x", nil},
		{"x & y", "x & y", nil},
		{"&", "&", nil},
		{"&;", "&;", nil},
		{"&AMP;&LT;", "&<", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errs := tokenizeCollectingErrors(tt.input)
			require.Equal(t, []Token{char(tt.want), eof()}, tokens)
			var codes []ErrorCode
			for _, e := range errs {
				codes = append(codes, e.Code)
			}
			assert.Equal(t, tt.errs, codes)
		})
	}
}

func TestNumericCharacterReferences(t *testing.T) {
	tests := []struct {
		input string
		want  string
		errs  []ErrorCode
	}{
		{"&#65;", "A", nil},
		{"&#x41;", "A", nil},
		{"&#X41;", "A", nil},
		{"&#x2014;", "—", nil},
		{"&#65", "A", []ErrorCode{MissingSemicolonAfterCharRef}},
		{"&#0;", "�", []ErrorCode{NullCharacterReference}},
		{"&#x110000;", "�", []ErrorCode{CharacterReferenceOutsideRange}},
		{"&#xD800;", "�", []ErrorCode{SurrogateCharacterReference}},
		{"&#xFDD0;", "\uFDD0", []ErrorCode{NoncharacterCharacterReference}},
		{"&#128;", "€", []ErrorCode{ControlCharacterReference}},
		{"&#x9F;", "Ÿ", []ErrorCode{ControlCharacterReference}},
		{"&#;", "&#;", []ErrorCode{AbsenceOfDigitsInNumericCharRef}},
		{"&#x;", "&#x;", []ErrorCode{AbsenceOfDigitsInNumericCharRef}},
		{"&#xG;", "&#xG;", []ErrorCode{AbsenceOfDigitsInNumericCharRef}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errs := tokenizeCollectingErrors(tt.input)
			require.Equal(t, []Token{char(tt.want), eof()}, tokens)
			var codes []ErrorCode
			for _, e := range errs {
				codes = append(codes, e.Code)
			}
			assert.Equal(t, tt.errs, codes)
		})
	}
}

func TestCharacterReferencesInAttributes(t *testing.T) {
	t.Run("expanded", func(t *testing.T) {
		tokens := tokenize(`<a href="x&amp;y">`)
		require.Len(t, tokens, 2)
		require.Equal(t, []Attribute{{"href", "x&y"}}, tokens[0].Attributes)
	})

	t.Run("numeric", func(t *testing.T) {
		tokens := tokenize(`<a title='&#65;'>`)
		require.Len(t, tokens, 2)
		require.Equal(t, []Attribute{{"title", "A"}}, tokens[0].Attributes)
	})

	t.Run("legacy stays literal before alphanumeric", func(t *testing.T) {
		// &ampy could be the start of a longer reference name, so inside an
		// attribute it is left alone
		tokens := tokenize(`<a href="x&ampy">`)
		require.Len(t, tokens, 2)
		require.Equal(t, []Attribute{{"href", "x&ampy"}}, tokens[0].Attributes)
	})

	t.Run("legacy expands at value end", func(t *testing.T) {
		tokens, errs := tokenizeCollectingErrors(`<a href="x&amp">`)
		require.Len(t, tokens, 2)
		require.Equal(t, []Attribute{{"href", "x&"}}, tokens[0].Attributes)
		require.Len(t, errs, 1)
		assert.Equal(t, MissingSemicolonAfterCharRef, errs[0].Code)
	})

	t.Run("unquoted", func(t *testing.T) {
		tokens := tokenize(`<a href=a&amp;b>`)
		require.Len(t, tokens, 2)
		require.Equal(t, []Attribute{{"href", "a&b"}}, tokens[0].Attributes)
	})
}

func TestCharRefTableShape(t *testing.T) {
	// every legacy entry without a semicolon must also exist with one
	for name := range namedCharRefs {
		if name[len(name)-1] != ';' {
			_, ok := namedCharRefs[name+";"]
			assert.True(t, ok, "legacy entry %q has no %q", name, name+";")
		}
	}
}

func TestCharRefPrefixHasMatch(t *testing.T) {
	assert.True(t, charRefPrefixHasMatch("a"))
	assert.True(t, charRefPrefixHasMatch("amp"))
	assert.True(t, charRefPrefixHasMatch("amp;"))
	assert.False(t, charRefPrefixHasMatch("amp;x"))
	assert.False(t, charRefPrefixHasMatch("zzz"))
}
