/*
File    : jlox/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/jlox/token"
	"github.com/stretchr/testify/assert"
)

// tokenCase represents a test case for ScanTokens.
type tokenCase struct {
	Input    string
	Expected []token.Type
}

func TestScanTokens_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    `(1 + 2) * 3 == 9;`,
			Expected: []token.Type{token.LEFT_PAREN, token.NUMBER, token.PLUS, token.NUMBER, token.RIGHT_PAREN, token.STAR, token.NUMBER, token.EQUAL_EQUAL, token.NUMBER, token.SEMICOLON, token.EOF},
		},
		{
			Input:    `!= ! == = <= < >= >`,
			Expected: []token.Type{token.BANG_EQUAL, token.BANG, token.EQUAL_EQUAL, token.EQUAL, token.LESS_EQUAL, token.LESS, token.GREATER_EQUAL, token.GREATER, token.EOF},
		},
		{
			Input:    "// a comment\nvar a = 1;",
			Expected: []token.Type{token.VAR, token.IDENTIFIER, token.EQUAL, token.NUMBER, token.SEMICOLON, token.EOF},
		},
	}
	for _, tc := range tests {
		toks, errs := New(tc.Input).ScanTokens()
		assert.Empty(t, errs)
		var kinds []token.Type
		for _, tok := range toks {
			kinds = append(kinds, tok.Type)
		}
		assert.Equal(t, tc.Expected, kinds)
	}
}

func TestScanTokens_EndsWithSingleEOF(t *testing.T) {
	toks, errs := New("print 1;").ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Type)
	count := 0
	for _, tok := range toks {
		if tok.Type == token.EOF {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	toks, errs := New(`"hello world"`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, errs := New(`"unterminated`).ScanTokens()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Unterminated string")
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	toks, errs := New("3.14").ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, 3.14, toks[0].Literal)
}

func TestScanTokens_LineTracking(t *testing.T) {
	toks, errs := New("var a = 1;\nvar b = 2;\nprint b;").ScanTokens()
	assert.Empty(t, errs)
	var printLine int
	for _, tok := range toks {
		if tok.Type == token.PRINT {
			printLine = tok.Line
		}
	}
	assert.Equal(t, 3, printLine)
}

func TestScanTokens_UnexpectedCharacterContinuesScanning(t *testing.T) {
	toks, errs := New("1 @ 2;").ScanTokens()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Unexpected character")
	var kinds []token.Type
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	assert.Equal(t, []token.Type{token.NUMBER, token.NUMBER, token.SEMICOLON, token.EOF}, kinds)
}

func TestScanTokens_Keywords(t *testing.T) {
	toks, errs := New("var print true false nil identifier123").ScanTokens()
	assert.Empty(t, errs)
	expected := []token.Type{token.VAR, token.PRINT, token.TRUE, token.FALSE, token.NIL, token.IDENTIFIER, token.EOF}
	var kinds []token.Type
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	assert.Equal(t, expected, kinds)
}

// Re-scanning a NUMBER, STRING, or IDENTIFIER lexeme in isolation must
// yield a single token equal up to line number (spec.md §8 round-trip).
func TestScanTokens_RoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		source string
		typ    token.Type
	}{
		{"number", "42.5", token.NUMBER},
		{"identifier", "count_1", token.IDENTIFIER},
	}
	for _, tc := range cases {
		toks, errs := New(tc.source).ScanTokens()
		assert.Empty(t, errs)
		assert.Len(t, toks, 2) // lexeme token + EOF
		assert.Equal(t, tc.typ, toks[0].Type)
		assert.Equal(t, tc.source, toks[0].Lexeme)

		again, errs := New(toks[0].Lexeme).ScanTokens()
		assert.Empty(t, errs)
		assert.Equal(t, toks[0].Type, again[0].Type)
		assert.Equal(t, toks[0].Lexeme, again[0].Lexeme)
		assert.Equal(t, toks[0].Literal, again[0].Literal)
	}
}

// A STRING token's literal excludes the quotes (spec.md §4.1), so the
// round-trip re-quotes the literal before re-scanning.
func TestScanTokens_RoundTrip_String(t *testing.T) {
	toks, errs := New(`"hello"`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, token.STRING, toks[0].Type)

	requoted := `"` + toks[0].Literal.(string) + `"`
	again, errs := New(requoted).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, toks[0].Type, again[0].Type)
	assert.Equal(t, toks[0].Literal, again[0].Literal)
}
