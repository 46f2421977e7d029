package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputStreamNext(t *testing.T) {
	s := newInputStreamString("ab")

	r, ok := s.next()
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = s.next()
	require.True(t, ok)
	assert.Equal(t, 'b', r)

	_, ok = s.next()
	assert.False(t, ok)
	_, ok = s.next()
	assert.False(t, ok)
}

func TestInputStreamPeekDoesNotAdvance(t *testing.T) {
	s := newInputStreamString("xyz")

	r, ok := s.peek(0)
	require.True(t, ok)
	assert.Equal(t, 'x', r)

	r, ok = s.peek(2)
	require.True(t, ok)
	assert.Equal(t, 'z', r)

	_, ok = s.peek(3)
	assert.False(t, ok)

	r, _ = s.next()
	assert.Equal(t, 'x', r)
}

func TestInputStreamReconsume(t *testing.T) {
	s := newInputStreamString("ab")
	s.next()
	s.reconsume()
	r, ok := s.next()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
}

func TestInputStreamReconsumeAtEOF(t *testing.T) {
	s := newInputStreamString("a")
	s.next()
	_, ok := s.next()
	require.False(t, ok)
	s.reconsume()
	_, ok = s.next()
	assert.False(t, ok, "reconsumed EOF must stay EOF")
}

func TestInputStreamMatch(t *testing.T) {
	s := newInputStreamString("DOCTYPE html")

	assert.True(t, s.match("DOCTYPE"))
	assert.False(t, s.match("doctype"))
	assert.True(t, s.matchFold("doctype"))
	assert.True(t, s.matchFold("dOcTyPe"))
	assert.False(t, s.match("DOCTYPE html x"), "match past end of input")

	s.consume("DOCTYPE")
	r, _ := s.next()
	assert.Equal(t, ' ', r)
}

func TestInputStreamMatchIsCodePointwise(t *testing.T) {
	// multi-byte code points before the cursor must not skew ASCII matching
	s := newInputStreamString("é--")
	s.next()
	assert.True(t, s.match("--"))
}

func TestInputStreamNewlineNormalization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a\r\nb", "a\nb"},
		{"a\rb", "a\nb"},
		{"a\r\r\nb", "a\n\nb"},
		{"\r\n\r\n", "\n\n"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		s := newInputStreamString(tt.in)
		assert.Equal(t, []rune(tt.want), s.input, "input %q", tt.in)
	}
}

func TestInputStreamFromReader(t *testing.T) {
	s, err := newInputStream(strings.NewReader("ok"))
	require.NoError(t, err)
	r, _ := s.next()
	assert.Equal(t, 'o', r)
}

func TestInputStreamPosition(t *testing.T) {
	s := newInputStreamString("abc")
	assert.Equal(t, 0, s.position())
	s.next()
	assert.Equal(t, 0, s.position())
	s.next()
	assert.Equal(t, 1, s.position())
	s.next()
	s.next()
	assert.Equal(t, 3, s.position())
}
