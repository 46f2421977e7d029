// Package layout breaks a text node's content into line boxes for a block
// container of a given width. It implements the whitespace collapsing and
// greedy line filling the CSS white-space property calls for; measuring is
// delegated to a font metric oracle so the package carries no font data.
package layout

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Font measures text for line filling. Width measures a whole substring;
// GlyphWidth a single code point. GlyphSpacing is the advance added after
// each glyph and GlyphHeight the line height contribution of this font.
type Font interface {
	Width(s string) float64
	GlyphWidth(r rune) float64
	GlyphSpacing() float64
	GlyphHeight() float64
}

// WhiteSpace is the handling mode for collapsing and wrapping, mirroring the
// CSS property values.
type WhiteSpace uint

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNowrap
	WhiteSpacePre
	WhiteSpacePreLine
	WhiteSpacePreWrap
)

var whiteSpaceNames = map[string]WhiteSpace{
	"normal":   WhiteSpaceNormal,
	"nowrap":   WhiteSpaceNowrap,
	"pre":      WhiteSpacePre,
	"pre-line": WhiteSpacePreLine,
	"pre-wrap": WhiteSpacePreWrap,
}

func (w WhiteSpace) String() string {
	for name, mode := range whiteSpaceNames {
		if mode == w {
			return name
		}
	}
	return "normal"
}

// ParseWhiteSpace maps a CSS keyword to its mode.
func ParseWhiteSpace(keyword string) (WhiteSpace, error) {
	if mode, ok := whiteSpaceNames[keyword]; ok {
		return mode, nil
	}
	return WhiteSpaceNormal, errors.Errorf("unknown white-space keyword %q", keyword)
}

// collapse reports whether the mode folds whitespace runs to single spaces.
func (w WhiteSpace) collapse() bool {
	switch w {
	case WhiteSpaceNormal, WhiteSpaceNowrap, WhiteSpacePreLine:
		return true
	}
	return false
}

// wrapLines reports whether the mode wraps on container width.
func (w WhiteSpace) wrapLines() bool {
	switch w {
	case WhiteSpaceNormal, WhiteSpacePreLine, WhiteSpacePreWrap:
		return true
	}
	return false
}

// wrapBreaks reports whether the mode preserves newlines as forced breaks.
func (w WhiteSpace) wrapBreaks() bool {
	switch w {
	case WhiteSpacePre, WhiteSpacePreLine, WhiteSpacePreWrap:
		return true
	}
	return false
}

// Fragment places a substring of the rendered text on a line: Start and
// Length are rune offsets into the post-collapse text that RenderedText
// returns for the same input and mode.
type Fragment struct {
	Start  int
	Length int
	Width  float64
	Height float64
}

// LineBox is one visual line, a left-to-right list of fragments.
type LineBox struct {
	Fragments []Fragment
}

// Width is the occupied width of the line so far.
func (l *LineBox) Width() float64 {
	var w float64
	for _, f := range l.Fragments {
		w += f.Width
	}
	return w
}

func (l *LineBox) addFragment(start, length int, width, height float64) {
	l.Fragments = append(l.Fragments, Fragment{Start: start, Length: length, Width: width, Height: height})
}

// TextForWhiteSpace is the text a node actually renders: all-whitespace
// content in a collapsing mode renders as a single space.
func TextForWhiteSpace(text string, mode WhiteSpace) string {
	if mode.collapse() && isAllWhitespace(text) {
		return " "
	}
	return text
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// CollapseWhitespace folds every whitespace run in text into one space.
func CollapseWhitespace(text string) string {
	return collapseWhitespace(text, false)
}

// RenderedText is the text a mode actually lays out, and the string the
// fragment offsets of SplitIntoLines refer into.
func RenderedText(text string, mode WhiteSpace) string {
	if mode.collapse() {
		return collapseWhitespace(text, mode.wrapBreaks())
	}
	return text
}

// collapseWhitespace folds whitespace runs to single spaces. With
// preserveBreaks set, a run containing a newline folds to a newline instead
// so forced breaks survive collapsing (the pre-line rules).
func collapseWhitespace(text string, preserveBreaks bool) string {
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !unicode.IsSpace(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		hasBreak := false
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			if runes[i] == '\n' {
				hasBreak = true
			}
			i++
		}
		if preserveBreaks && hasBreak {
			b.WriteRune('\n')
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// chunk is a word (when wrapping on width) or a raw line segment (when not),
// in rune offsets of the post-collapse text. isBreak marks the one-rune
// chunk holding a preserved newline; the line is closed after it.
type chunk struct {
	text    string
	start   int
	length  int
	isBreak bool
}

// forEachChunk walks the text and commits chunks at word boundaries, forced
// breaks, or both, depending on the mode.
func forEachChunk(text string, wrapLines, wrapBreaks bool, commit func(c chunk)) {
	runes := []rune(text)
	if len(runes) == 0 {
		return
	}

	startOfChunk := 0
	commitChunk := func(end int, hasBreak bool) {
		length := end - startOfChunk
		if hasBreak || length > 0 {
			commit(chunk{
				text:    string(runes[startOfChunk:end]),
				start:   startOfChunk,
				length:  length,
				isBreak: hasBreak,
			})
		}
		startOfChunk = end
	}

	lastWasSpace := unicode.IsSpace(runes[0])
	lastWasNewline := false
	for i := 0; i < len(runes); i++ {
		if lastWasNewline {
			lastWasNewline = false
			commitChunk(i, true)
		}
		if wrapBreaks && runes[i] == '\n' {
			lastWasNewline = true
			commitChunk(i, false)
		}
		if wrapLines {
			isSpace := unicode.IsSpace(runes[i])
			if isSpace != lastWasSpace {
				lastWasSpace = isSpace
				commitChunk(i, false)
			}
		}
	}
	if lastWasNewline {
		commitChunk(len(runes), true)
	}
	if startOfChunk != len(runes) {
		commitChunk(len(runes), false)
	}
}

// SplitIntoLines lays the text into line boxes for a container of
// containerWidth, measuring with the font and following the whitespace mode's
// collapsing, wrapping and break preservation rules. Wrapping modes open a new
// line when a chunk does not fit; a line is still wider than the container
// when its first chunk alone is, and non-wrapping modes never break on width. Fragment offsets refer to the
// post-collapse text, which the caller can recover with RenderedText.
func SplitIntoLines(text string, containerWidth float64, font Font, mode WhiteSpace) []LineBox {
	doCollapse := mode.collapse()
	doWrapLines := mode.wrapLines()
	doWrapBreaks := mode.wrapBreaks()

	rendered := RenderedText(text, mode)

	spaceWidth := font.GlyphWidth(' ') + font.GlyphSpacing()

	lineBoxes := []LineBox{{}}
	availableWidth := containerWidth

	var chunks []chunk
	forEachChunk(rendered, doWrapLines, doWrapBreaks, func(c chunk) {
		chunks = append(chunks, c)
	})

	last := func() *LineBox { return &lineBoxes[len(lineBoxes)-1] }
	openLine := func() {
		lineBoxes = append(lineBoxes, LineBox{})
		availableWidth = containerWidth
	}

	for _, c := range chunks {
		var chunkWidth float64
		needsCollapse := false
		if doWrapLines {
			needsCollapse = doCollapse && c.length > 0 && isAllWhitespace(c.text)
			if needsCollapse {
				chunkWidth = spaceWidth
			} else {
				chunkWidth = font.Width(c.text) + font.GlyphSpacing()
			}
			if last().Width() > 0 && chunkWidth > availableWidth {
				openLine()
			}
			// collapsible whitespace at the head of a fresh line is dropped
			if needsCollapse && len(last().Fragments) == 0 {
				continue
			}
		} else {
			chunkWidth = font.Width(c.text)
		}

		length := c.length
		if needsCollapse {
			length = 1
		}
		if length > 0 {
			last().addFragment(c.start, length, chunkWidth, font.GlyphHeight())
			availableWidth -= chunkWidth
		}

		if doWrapLines && availableWidth < 0 {
			openLine()
		}
		if doWrapBreaks && c.isBreak {
			openLine()
		}
	}

	return lineBoxes
}
