package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// tokenEvent is a tokenizer-neutral view of the output stream used to
// compare this package against golang.org/x/net/html. Consecutive text is
// merged on both sides so coalescing differences do not matter.
type tokenEvent struct {
	kind  string
	name  string
	attrs []Attribute
	text  string
}

func appendEvent(events []tokenEvent, ev tokenEvent) []tokenEvent {
	if ev.kind == "text" && len(events) > 0 && events[len(events)-1].kind == "text" {
		events[len(events)-1].text += ev.text
		return events
	}
	return append(events, ev)
}

func weblexEvents(t *testing.T, doc string) []tokenEvent {
	t.Helper()
	var events []tokenEvent
	for _, tok := range tokenize(doc) {
		switch {
		case tok.IsCharacter():
			events = appendEvent(events, tokenEvent{kind: "text", text: tok.Data})
		case tok.IsStartTag():
			events = appendEvent(events, tokenEvent{kind: "start", name: tok.TagName, attrs: tok.Attributes})
		case tok.IsEndTag():
			events = appendEvent(events, tokenEvent{kind: "end", name: tok.TagName})
		case tok.IsComment():
			events = appendEvent(events, tokenEvent{kind: "comment", text: tok.Data})
		case tok.IsDoctype():
			events = appendEvent(events, tokenEvent{kind: "doctype", name: tok.TagName})
		}
	}
	return events
}

func xnetEvents(t *testing.T, doc string) []tokenEvent {
	t.Helper()
	z := html.NewTokenizer(strings.NewReader(doc))
	var events []tokenEvent
	for {
		switch z.Next() {
		case html.ErrorToken:
			return events
		case html.TextToken:
			events = appendEvent(events, tokenEvent{kind: "text", text: string(z.Text())})
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			var attrs []Attribute
			for _, a := range tok.Attr {
				attrs = append(attrs, Attribute{Name: a.Key, Value: a.Val})
			}
			events = appendEvent(events, tokenEvent{kind: "start", name: tok.Data, attrs: attrs})
		case html.EndTagToken:
			tok := z.Token()
			events = appendEvent(events, tokenEvent{kind: "end", name: tok.Data})
		case html.CommentToken:
			events = appendEvent(events, tokenEvent{kind: "comment", text: string(z.Text())})
		case html.DoctypeToken:
			events = appendEvent(events, tokenEvent{kind: "doctype", name: string(z.Text())})
		}
	}
}

// TestAgainstNetHTML cross-checks the token stream against the x/net
// tokenizer on documents both implementations handle identically. Raw text
// elements are left out: x/net switches modes on its own while this
// tokenizer leaves that to the tree construction stage.
func TestAgainstNetHTML(t *testing.T) {
	docs := []string{
		"<!DOCTYPE html><html><head></head><body><p>hi</p></body></html>",
		`<div id="a" class="b c"><span>text</span> tail</div>`,
		"before<!-- comment -->after",
		"a&amp;b &lt;x&gt; &#65;",
		"<ul><li>one</li><li>two</li></ul>",
		"no markup at all",
		"<em>mixed <strong>nesting</strong> here</em>",
		`<a href='single'>q</a>`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			require.Equal(t, xnetEvents(t, doc), weblexEvents(t, doc))
		})
	}
}
