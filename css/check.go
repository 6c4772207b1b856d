package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Checker validates CSS text at the syntax level. It is used as a sanity
// gate over rendered output.
type Checker struct {
	log *zap.Logger
}

// NewChecker creates a new checker.
func NewChecker(log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{log: log.Named("css-checker")}
}

// Check parses data as a stylesheet and returns every syntax problem
// found, accumulated into one error.
func (c *Checker) Check(data []byte) error {
	input := parse.NewInput(bytes.NewReader(data))
	parser := tdcss.NewParser(input, false)

	var (
		result error
		rules  int
		decls  int
	)
	for {
		gt, _, gd := parser.Next()
		switch gt {
		case tdcss.ErrorGrammar:
			err := parser.Err()
			if err != nil && !errors.Is(err, io.EOF) {
				result = multierr.Append(result, fmt.Errorf("offset %d: %w", input.Offset(), err))
			}
			c.log.Debug("Checked stylesheet",
				zap.Int("bytes", len(data)),
				zap.Int("rules", rules),
				zap.Int("declarations", decls),
				zap.Int("problems", len(multierr.Errors(result))))
			return result
		case tdcss.BeginAtRuleGrammar, tdcss.AtRuleGrammar, tdcss.BeginRulesetGrammar, tdcss.QualifiedRuleGrammar:
			rules++
			c.log.Debug("Rule", zap.String("head", tokenText(gd, parser.Values())))
		case tdcss.DeclarationGrammar, tdcss.CustomPropertyGrammar:
			decls++
		}
	}
}

// CheckString is Check over a string.
func (c *Checker) CheckString(data string) error {
	return c.Check([]byte(data))
}

// tokenText rebuilds readable text from grammar data and value tokens.
func tokenText(data []byte, values []tdcss.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return sb.String()
}
