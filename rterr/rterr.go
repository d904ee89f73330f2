/*
File    : jlox/rterr/rterr.go

Package rterr defines the runtime error kind raised by the Interpreter
(spec.md §7): it carries the token responsible, for line reporting, and
aborts the current top-level interpret call.
*/
package rterr

import (
	"fmt"

	"github.com/akashmaji946/jlox/token"
)

// Error is a runtime error. At most one is reported per Interpreter.Interpret
// call — the first one aborts the rest of the program (spec.md §7).
type Error struct {
	Tok     token.Token
	Message string
}

// New builds a runtime Error tied to the responsible token.
func New(tok token.Token, message string) *Error {
	return &Error{Tok: tok, Message: message}
}

// Error implements the error interface. The reporter (package diag)
// renders "MESSAGE\n[line N]" per spec.md §6; this is a plain fallback
// for contexts that just log the error directly (e.g. tests).
func (e *Error) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Tok.Line)
}
