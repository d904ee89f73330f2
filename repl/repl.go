/*
File    : jlox/repl/repl.go

Package repl implements jlox's interactive Read-Eval-Print Loop. Grounded
on the teacher's repl.Repl (banner, Prompt, Version, colored
PrintBannerInfo, chzyer/readline-driven Start loop), adapted to reset only
HadError between lines (spec.md §5) and to share one
*interpreter.Interpreter — and hence one persistent global environment —
across lines, so a `var` declared on one line is visible on the next.
*/
package repl

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/jlox/diag"
	"github.com/akashmaji946/jlox/interpreter"
	"github.com/akashmaji946/jlox/lexer"
	"github.com/akashmaji946/jlox/parser"
)

const exitCommand = ".exit"

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the presentation configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Line    string
}

// New creates a Repl with jlox's banner, version, and prompt.
func New() *Repl {
	return &Repl{
		Banner:  banner,
		Version: "v1.0.0",
		Prompt:  "jlox> ",
		Line:    "----------------------------------------------------------------",
	}
}

const banner = `   _ _
   (_) | _____  __
   | | |/ _ \ \/ /
   | | | (_) >  <
  _/ |_|\___/_/\_\
 |__/
`

// printBanner shows the startup banner the way the teacher's
// PrintBannerInfo does.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "jlox "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Type jlox code and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '"+exitCommand+"' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Run starts the loop. Each line is scanned, parsed, and interpreted as a
// fragment sharing one Interpreter across the whole session; HadError is
// reset after each line so one bad line doesn't poison the rest, but
// HadRuntimeError is not, matching spec.md §5's REPL contract.
func (r *Repl) Run(stdout, stderr io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		HistoryFile: "",
		Stdout:      stdout,
		Stderr:      stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	r.printBanner(stdout)

	reporter := diag.New()
	reporter.Writer = stderr
	it := interpreter.New()
	it.SetWriter(stdout)

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if line == exitCommand {
			return nil
		}
		if line == "" {
			continue
		}
		r.evalLine(line, it, reporter)
		reporter.ResetError()
	}
}

func (r *Repl) evalLine(line string, it *interpreter.Interpreter, reporter *diag.Reporter) {
	toks, lexErrs := lexer.New(line).ScanTokens()
	for _, e := range lexErrs {
		reporter.LexError(e)
	}

	stmts, parseErrs := parser.New(toks).Parse()
	for _, e := range parseErrs {
		reporter.ParseError(e)
	}
	if reporter.HadError {
		return
	}

	if err := it.Interpret(stmts); err != nil {
		reporter.ReportRuntimeError(err)
	}
}
