package parser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type goldenAttr struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type goldenToken struct {
	Type        string       `yaml:"type"`
	Name        string       `yaml:"name,omitempty"`
	Data        string       `yaml:"data,omitempty"`
	SelfClosing bool         `yaml:"self_closing,omitempty"`
	Attrs       []goldenAttr `yaml:"attrs,omitempty"`
	PublicID    string       `yaml:"public_id,omitempty"`
	SystemID    string       `yaml:"system_id,omitempty"`
	ForceQuirks bool         `yaml:"force_quirks,omitempty"`
}

type goldenCase struct {
	Name   string        `yaml:"name"`
	Input  string        `yaml:"input"`
	Tokens []goldenToken `yaml:"tokens"`
}

func toGolden(tok Token) goldenToken {
	g := goldenToken{Type: tok.Type.String()}
	switch tok.Type {
	case characterToken, commentToken:
		g.Data = tok.Data
	case startTagToken, endTagToken:
		g.Name = tok.TagName
		g.SelfClosing = tok.SelfClosing
		for _, attr := range tok.Attributes {
			g.Attrs = append(g.Attrs, goldenAttr{Name: attr.Name, Value: attr.Value})
		}
	case doctypeToken:
		g.Name = tok.TagName
		g.ForceQuirks = tok.ForceQuirks
		if !tok.MissingPublicIdentifier {
			g.PublicID = tok.PublicIdentifier
		}
		if !tok.MissingSystemIdentifier {
			g.SystemID = tok.SystemIdentifier
		}
	}
	return g
}

func TestGoldenTokenVectors(t *testing.T) {
	raw, err := os.ReadFile("testdata/tokens.yaml")
	require.NoError(t, err)

	var cases []goldenCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			var got []goldenToken
			for _, tok := range tokenize(tc.Input) {
				got = append(got, toGolden(tok))
			}
			require.Equal(t, tc.Tokens, got)
		})
	}
}
