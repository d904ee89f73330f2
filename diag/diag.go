/*
File    : jlox/diag/diag.go

Package diag implements the diagnostics sink spec.md treats as an
external collaborator (§1, §6) but gives a concrete contract: exact
message formatting, and the two process-wide flags (HadError,
HadRuntimeError) the driver checks between pipeline phases (spec.md §5,
§7).

Grounded on the teacher's inline redColor/yellowColor/cyanColor pattern in
main/main.go and repl/repl.go, pulled into one reusable type since both
the file-mode driver and the REPL need the same flags and formatting.
*/
package diag

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/jlox/lexerr"
	"github.com/akashmaji946/jlox/parseerr"
	"github.com/akashmaji946/jlox/rterr"
)

// Reporter accumulates the hadError/hadRuntimeError flags described in
// spec.md §5 and §7 and formats diagnostics to Writer.
type Reporter struct {
	Writer          io.Writer
	HadError        bool
	HadRuntimeError bool

	errColor *color.Color
}

// New creates a Reporter writing to os.Stderr, colored the way the
// teacher's driver colors its error output.
func New() *Reporter {
	return &Reporter{Writer: os.Stderr, errColor: color.New(color.FgRed)}
}

// ResetError clears HadError only. The REPL calls this between lines so
// one bad line doesn't poison subsequent ones; HadRuntimeError is never
// reset by the REPL (spec.md §5).
func (r *Reporter) ResetError() {
	r.HadError = false
}

// LexError reports a lexical error: "[line N] Error: MESSAGE" (spec.md §6
// — WHERE is empty for lex errors).
func (r *Reporter) LexError(e *lexerr.Error) {
	r.HadError = true
	r.errColor.Fprintf(r.Writer, "[line %d] Error: %s\n", e.Line, e.Message)
}

// ParseError reports a syntactic error: "[line N] Error at 'LEXEME':
// MESSAGE" or "[line N] Error at end: MESSAGE" (spec.md §6).
func (r *Reporter) ParseError(e *parseerr.Error) {
	r.HadError = true
	r.errColor.Fprintf(r.Writer, "%s\n", e.Error())
}

// RuntimeError reports a runtime error: "MESSAGE\n[line N]" (spec.md §6).
func (r *Reporter) RuntimeError(e *rterr.Error) {
	r.HadRuntimeError = true
	r.errColor.Fprintf(r.Writer, "%s\n[line %d]\n", e.Message, e.Tok.Line)
}

// ReportRuntimeError dispatches a generic error returned by the
// interpreter to RuntimeError if it is one, falling back to a plain
// message otherwise (defensive: the interpreter never returns anything
// else, but this keeps the call site a single line).
func (r *Reporter) ReportRuntimeError(err error) {
	var rerr *rterr.Error
	if errors.As(err, &rerr) {
		r.RuntimeError(rerr)
		return
	}
	r.HadRuntimeError = true
	fmt.Fprintln(r.Writer, err.Error())
}
