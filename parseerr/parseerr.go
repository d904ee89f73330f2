/*
File    : jlox/parseerr/parseerr.go

Package parseerr defines the syntactic error kind raised by the Parser
(spec.md §7): it carries the offending token, so the reporter can render
"at 'LEXEME'" or "at end" per spec.md §6.
*/
package parseerr

import (
	"fmt"

	"github.com/akashmaji946/jlox/token"
)

// Error is a parse error tied to the token the parser was looking at when
// it gave up. The parser reports it, enters panic mode, and resumes
// parsing at the next statement boundary (spec.md §4.2).
type Error struct {
	Tok     token.Token
	Message string
}

// New builds a parse Error for the given offending token.
func New(tok token.Token, message string) *Error {
	return &Error{Tok: tok, Message: message}
}

// Error implements the error interface, rendering "[line N] Error at 'X':
// MESSAGE" or "[line N] Error at end: MESSAGE"; the reporter (package
// diag) prints this rendering as is.
func (e *Error) Error() string {
	if e.Tok.Type == token.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Tok.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Tok.Line, e.Tok.Lexeme, e.Message)
}
