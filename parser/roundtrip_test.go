package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// TestStreamInvariants checks, over a corpus of documents, the properties
// every token stream must have: a single trailing EndOfFile, coalesced
// character tokens, folded tag and attribute names, and proper nesting of
// balanced documents.
func TestStreamInvariants(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/docs.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, archive.Files)

	for _, file := range archive.Files {
		t.Run(file.Name, func(t *testing.T) {
			tokens := tokenize(string(file.Data))
			require.NotEmpty(t, tokens)

			eofCount := 0
			for _, tok := range tokens {
				if tok.IsEndOfFile() {
					eofCount++
				}
			}
			assert.Equal(t, 1, eofCount, "exactly one EndOfFile")
			assert.True(t, tokens[len(tokens)-1].IsEndOfFile(), "EndOfFile is last")

			for i := 1; i < len(tokens); i++ {
				if tokens[i].IsCharacter() {
					assert.False(t, tokens[i-1].IsCharacter(), "adjacent Character tokens")
				}
			}

			var stack []string
			for _, tok := range tokens {
				switch {
				case tok.IsStartTag() || tok.IsEndTag():
					assert.Equal(t, strings.ToLower(tok.TagName), tok.TagName,
						"tag name %q not folded", tok.TagName)
					for _, attr := range tok.Attributes {
						assert.Equal(t, strings.ToLower(attr.Name), attr.Name,
							"attribute name %q not folded", attr.Name)
					}
				}
				switch {
				case tok.IsStartTag() && !tok.SelfClosing:
					stack = append(stack, tok.TagName)
				case tok.IsEndTag():
					require.NotEmpty(t, stack, "end tag %q with no open element", tok.TagName)
					assert.Equal(t, stack[len(stack)-1], tok.TagName, "mis-nested end tag")
					stack = stack[:len(stack)-1]
				}
			}
			assert.Empty(t, stack, "unclosed elements %v", stack)
		})
	}
}

// TestCharacterDataRoundTrip reconstructs the character data of a document
// that has no markup and checks nothing was lost or reordered.
func TestCharacterDataRoundTrip(t *testing.T) {
	const doc = "line one\nline two\nspaced   out\ttabbed"
	tokens := tokenize(doc)
	var data strings.Builder
	for _, tok := range tokens {
		if tok.IsCharacter() {
			data.WriteString(tok.Data)
		}
	}
	assert.Equal(t, doc, data.String())
}
