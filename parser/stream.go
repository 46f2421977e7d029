package parser

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

// inputStream owns the decoded code points of the document and the cursor
// into them. The input stream preprocessing step of the HTML Standard is
// applied up front: CRLF pairs and lone CRs both become a single LF.
type inputStream struct {
	input  []rune
	cursor int
}

func newInputStream(r io.Reader) (*inputStream, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading tokenizer input")
	}
	return newInputStreamString(string(raw)), nil
}

func newInputStreamString(s string) *inputStream {
	input := make([]rune, 0, len(s))
	var lastWasCR bool
	for _, r := range s {
		switch r {
		case '\r':
			input = append(input, '\n')
			lastWasCR = true
			continue
		case '\n':
			if lastWasCR {
				lastWasCR = false
				continue
			}
		}
		lastWasCR = false
		input = append(input, r)
	}
	return &inputStream{input: input}
}

// next returns the code point under the cursor and advances. The second
// return is false once the cursor has run off the end of the input.
func (s *inputStream) next() (rune, bool) {
	if s.cursor >= len(s.input) {
		// keep the cursor pinned so reconsuming EOF stays an EOF
		s.cursor = len(s.input) + 1
		return 0, false
	}
	r := s.input[s.cursor]
	s.cursor++
	return r, true
}

// peek returns the code point n positions past the cursor without advancing.
func (s *inputStream) peek(n int) (rune, bool) {
	if s.cursor+n >= len(s.input) {
		return 0, false
	}
	return s.input[s.cursor+n], true
}

// reconsume steps the cursor back one code point so the last result of next
// is produced again. Calling it right after next has reported EOF re-arms
// the EOF instead.
func (s *inputStream) reconsume() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// match reports whether the code points under the cursor equal pat. The
// comparison is by code point value, so it holds for ASCII patterns no
// matter how the surrounding input is encoded.
func (s *inputStream) match(pat string) bool {
	for i, want := range []rune(pat) {
		got, ok := s.peek(i)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// matchFold is match with ASCII case folding, for keywords the standard
// matches case-insensitively such as DOCTYPE.
func (s *inputStream) matchFold(pat string) bool {
	for i, want := range []rune(pat) {
		got, ok := s.peek(i)
		if !ok {
			return false
		}
		if got >= 'A' && got <= 'Z' {
			got += 0x20
		}
		if want >= 'A' && want <= 'Z' {
			want += 0x20
		}
		if got != want {
			return false
		}
	}
	return true
}

// consume advances the cursor past pat. Callers must have checked match or
// matchFold first.
func (s *inputStream) consume(pat string) {
	s.cursor += len([]rune(pat))
}

// position is the rune offset of the code point most recently returned by
// next, used for parse error reports.
func (s *inputStream) position() int {
	if s.cursor == 0 {
		return 0
	}
	if s.cursor > len(s.input) {
		return len(s.input)
	}
	return s.cursor - 1
}
