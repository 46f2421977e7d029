package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedFont measures every glyph as 10 units wide and 16 tall, which keeps
// the arithmetic in the expectations legible.
type fixedFont struct{}

func (fixedFont) Width(s string) float64 {
	return float64(len([]rune(s))) * 10
}
func (fixedFont) GlyphWidth(r rune) float64 { return 10 }
func (fixedFont) GlyphSpacing() float64     { return 0 }
func (fixedFont) GlyphHeight() float64      { return 16 }

func fragmentTexts(text string, lines []LineBox) [][]string {
	runes := []rune(text)
	var out [][]string
	for _, line := range lines {
		var frags []string
		for _, f := range line.Fragments {
			frags = append(frags, string(runes[f.Start:f.Start+f.Length]))
		}
		out = append(out, frags)
	}
	return out
}

func TestParseWhiteSpace(t *testing.T) {
	for _, keyword := range []string{"normal", "nowrap", "pre", "pre-line", "pre-wrap"} {
		mode, err := ParseWhiteSpace(keyword)
		require.NoError(t, err)
		assert.Equal(t, keyword, mode.String())
	}

	_, err := ParseWhiteSpace("sideways")
	assert.Error(t, err)
}

func TestTextForWhiteSpace(t *testing.T) {
	assert.Equal(t, " ", TextForWhiteSpace("  \n\t ", WhiteSpaceNormal))
	assert.Equal(t, " ", TextForWhiteSpace("\n", WhiteSpaceNowrap))
	assert.Equal(t, "  \n", TextForWhiteSpace("  \n", WhiteSpacePre))
	assert.Equal(t, "abc", TextForWhiteSpace("abc", WhiteSpaceNormal))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("a  b\n\tc"))
	assert.Equal(t, " x ", CollapseWhitespace("\n\nx  "))
	assert.Equal(t, "plain", CollapseWhitespace("plain"))
}

func TestSplitIntoLinesNormal(t *testing.T) {
	lines := SplitIntoLines("hello world", 200, fixedFont{}, WhiteSpaceNormal)
	require.Len(t, lines, 1)
	assert.Equal(t, [][]string{{"hello", " ", "world"}},
		fragmentTexts("hello world", lines))
	assert.Equal(t, 110.0, lines[0].Width())
	assert.Equal(t, 16.0, lines[0].Fragments[0].Height)
}

func TestSplitIntoLinesWraps(t *testing.T) {
	lines := SplitIntoLines("aaa bbb ccc", 40, fixedFont{}, WhiteSpaceNormal)
	require.Len(t, lines, 3)
	texts := fragmentTexts("aaa bbb ccc", lines)
	assert.Equal(t, []string{"aaa", " "}, texts[0])
	assert.Equal(t, []string{"bbb", " "}, texts[1])
	assert.Equal(t, []string{"ccc"}, texts[2])
}

func TestSplitIntoLinesCollapses(t *testing.T) {
	collapsed := CollapseWhitespace("a   b\n\nc")
	require.Equal(t, "a b c", collapsed)

	lines := SplitIntoLines("a   b\n\nc", 200, fixedFont{}, WhiteSpaceNormal)
	require.Len(t, lines, 1)
	assert.Equal(t, [][]string{{"a", " ", "b", " ", "c"}},
		fragmentTexts(collapsed, lines))
}

func TestSplitIntoLinesLeadingWhitespaceDropped(t *testing.T) {
	lines := SplitIntoLines("   xxx", 200, fixedFont{}, WhiteSpaceNormal)
	require.Len(t, lines, 1)
	assert.Equal(t, [][]string{{"xxx"}}, fragmentTexts(" xxx", lines))
}

func TestSplitIntoLinesNowrapNeverWraps(t *testing.T) {
	lines := SplitIntoLines("one two three four five", 30, fixedFont{}, WhiteSpaceNowrap)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Fragments, 1)
	assert.Equal(t, 230.0, lines[0].Fragments[0].Width)
}

func TestSplitIntoLinesPre(t *testing.T) {
	text := "line one\nline   two"
	lines := SplitIntoLines(text, 30, fixedFont{}, WhiteSpacePre)
	require.Len(t, lines, 2)
	texts := fragmentTexts(text, lines)
	assert.Equal(t, "line one", texts[0][0])
	assert.Equal(t, "line   two", texts[1][len(texts[1])-1])
}

func TestSplitIntoLinesPreLine(t *testing.T) {
	text := "a   b\nc"
	collapsed := RenderedText(text, WhiteSpacePreLine)
	require.Equal(t, "a b\nc", collapsed)

	lines := SplitIntoLines(text, 200, fixedFont{}, WhiteSpacePreLine)
	require.Len(t, lines, 2)
	texts := fragmentTexts(collapsed, lines)
	assert.Equal(t, "a", texts[0][0])
	assert.Equal(t, "c", texts[1][len(texts[1])-1])
}

func TestSplitIntoLinesPreWrap(t *testing.T) {
	text := "aaa bbb\nccc"
	lines := SplitIntoLines(text, 40, fixedFont{}, WhiteSpacePreWrap)
	// wraps on width and honors the forced break
	require.GreaterOrEqual(t, len(lines), 3)
	texts := fragmentTexts(text, lines)
	assert.Equal(t, "aaa", texts[0][0])
}

func TestSplitIntoLinesEmptyText(t *testing.T) {
	lines := SplitIntoLines("", 100, fixedFont{}, WhiteSpaceNormal)
	require.Len(t, lines, 1)
	assert.Empty(t, lines[0].Fragments)
}

func TestLineBoxWidth(t *testing.T) {
	var box LineBox
	assert.Equal(t, 0.0, box.Width())
	box.addFragment(0, 3, 30, 16)
	box.addFragment(3, 1, 10, 16)
	assert.Equal(t, 40.0, box.Width())
}
