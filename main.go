package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pgray/weblex/parser"
)

// weblex tokenizes an HTML file and prints one line per token. It exists to
// poke at the tokenizer from the shell; the token stream is the structure.
func main() {
	inputPath := "./simple.html"
	if len(os.Args) > 1 {
		inputPath = os.Args[1]
	}

	f, err := os.Open(inputPath)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "opening input")).Error("cannot read document")
		os.Exit(1)
	}
	defer f.Close()

	tokenizer, err := parser.NewTokenizer(f)
	if err != nil {
		logrus.WithError(err).Error("cannot read document")
		os.Exit(1)
	}
	tokenizer.SetErrorHandler(func(pe parser.ParseError) {
		logrus.WithFields(logrus.Fields{
			"code":     pe.Code,
			"position": pe.Position,
		}).Debug("parse error")
	})

	for tokenizer.Next() {
		tok := tokenizer.Token()
		if tok == nil {
			break
		}
		fmt.Println(tok)
	}
}
