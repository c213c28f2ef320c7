package css

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses style blocks into rulesets.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new style block parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses style block. Problems are reported as warnings, parsing never
// fails. The optional source parameter identifies what's being parsed (for
// debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing style block", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, tok := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				sheet.addWarning("parse error: %v", err)
				p.log.Debug("Style block parse error", zap.Error(err))
			}
			sheet.Comments = collectComments(data)
			return sheet

		case css.BeginRulesetGrammar:
			sel := parseSelector(parser.Values())
			if sel.Family == "" {
				sheet.addWarning("ruleset without family: %q", sel.Raw)
			}
			sheet.Rulesets = append(sheet.Rulesets, Ruleset{
				Selector:     sel,
				Declarations: p.parseDeclarations(parser, sheet, sel),
			})

		case css.BeginAtRuleGrammar:
			sheet.addWarning("unexpected at-rule %s", tok)
			skipAtRuleBlock(parser)

		case css.AtRuleGrammar:
			sheet.addWarning("unexpected at-rule %s", tok)
		}
	}
}

// parseSelector splits selector tokens into family, class and name.
func parseSelector(tokens []css.Token) Selector {
	var (
		sel  Selector
		raw  strings.Builder
		part = &sel.Family
	)
	for _, t := range tokens {
		raw.Write(t.Data)
		switch t.TokenType {
		case css.ColonToken:
			part = &sel.Class
		case css.DelimToken:
			if len(t.Data) == 1 && t.Data[0] == '.' {
				part = &sel.Name
			}
		case css.IdentToken:
			*part += string(t.Data)
		case css.StringToken:
			*part += unquote(string(t.Data))
		}
	}
	sel.Raw = strings.TrimSpace(raw.String())
	return sel
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser, sheet *Stylesheet, sel Selector) []Declaration {
	var decls []Declaration
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.EndRulesetGrammar:
			return decls

		case css.ErrorGrammar:
			err := parser.Err()
			if err == nil || errors.Is(err, io.EOF) {
				return decls
			}
			sheet.addWarning("%s: %v", sel.Raw, err)

		case css.DeclarationGrammar:
			values := parser.Values()
			if len(values) == 0 {
				sheet.addWarning("%s: empty value of %s", sel.Raw, data)
				continue
			}
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    parsePropertyValue(values),
			})

		case css.CustomPropertyGrammar:
			continue
		}
	}
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parsePropertyValue converts CSS tokens to a Value.
func parsePropertyValue(tokens []css.Token) Value {
	// parser drops whitespace around commas, list separators get it back
	var rawParts []string
	for i, t := range tokens {
		switch {
		case t.TokenType == css.CommaToken:
			rawParts = append(rawParts, ",")
			if i+1 < len(tokens) && tokens[i+1].TokenType != css.WhitespaceToken {
				rawParts = append(rawParts, " ")
			}
		case t.TokenType != css.WhitespaceToken:
			rawParts = append(rawParts, string(t.Data))
		case len(rawParts) > 0:
			rawParts = append(rawParts, " ")
		}
	}
	val := Value{Raw: strings.TrimSpace(strings.Join(rawParts, ""))}

	if len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken) {
		t := tokens[0]
		switch t.TokenType {
		case css.DimensionToken:
			val.Value, val.Unit = parseDimension(string(t.Data))
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = unquote(string(t.Data))
		case css.HashToken:
			val.Keyword = string(t.Data)
		default:
			val.Keyword = val.Raw
		}
		return val
	}

	// multi-value properties (borders, tab stops) are kept as is
	val.Keyword = val.Raw
	return val
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, s
	}
	val, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, s
	}
	return val, s[numEnd:]
}

// collectComments returns bodies of all comments in the block. Parser drops
// comments inside rulesets so tokenizer is used directly.
func collectComments(data []byte) []string {
	var comments []string
	l := css.NewLexer(parse.NewInput(bytes.NewReader(data)))
	for {
		tt, text := l.Next()
		switch tt {
		case css.ErrorToken:
			return comments
		case css.CommentToken:
			body := strings.TrimSuffix(strings.TrimPrefix(string(text), "/*"), "*/")
			comments = append(comments, strings.TrimSpace(body))
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
