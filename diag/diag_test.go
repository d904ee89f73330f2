/*
File    : jlox/diag/diag_test.go
*/
package diag

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/jlox/lexerr"
	"github.com/akashmaji946/jlox/parseerr"
	"github.com/akashmaji946/jlox/rterr"
	"github.com/akashmaji946/jlox/token"
	"github.com/stretchr/testify/assert"
)

func newTestReporter() (*Reporter, *bytes.Buffer) {
	var buf bytes.Buffer
	r := New()
	r.Writer = &buf
	color := r.errColor
	color.DisableColor()
	return r, &buf
}

func TestParseError_FormatsAtLexemeOrEnd(t *testing.T) {
	r, buf := newTestReporter()
	r.ParseError(parseerr.New(token.New(token.SEMICOLON, ";", nil, 1), "Expect expression."))
	assert.Contains(t, buf.String(), "[line 1] Error at ';': Expect expression.")
	assert.True(t, r.HadError)
}

func TestParseError_AtEndForEOF(t *testing.T) {
	r, buf := newTestReporter()
	r.ParseError(parseerr.New(token.New(token.EOF, "", nil, 2), "Expect ';' after value."))
	assert.Contains(t, buf.String(), "[line 2] Error at end: Expect ';' after value.")
}

func TestLexError_NoWhereClause(t *testing.T) {
	r, buf := newTestReporter()
	r.LexError(lexerr.New(3, "Unexpected character."))
	assert.Contains(t, buf.String(), "[line 3] Error: Unexpected character.")
	assert.True(t, r.HadError)
}

func TestRuntimeError_MessageThenLine(t *testing.T) {
	r, buf := newTestReporter()
	r.RuntimeError(rterr.New(token.New(token.PLUS, "+", nil, 5), "Operands must be two numbers or two strings."))
	assert.Contains(t, buf.String(), "Operands must be two numbers or two strings.\n[line 5]")
	assert.True(t, r.HadRuntimeError)
}

func TestResetError_ClearsOnlyHadError(t *testing.T) {
	r, _ := newTestReporter()
	r.HadError = true
	r.HadRuntimeError = true
	r.ResetError()
	assert.False(t, r.HadError)
	assert.True(t, r.HadRuntimeError)
}
