/*
File    : jlox/cmd/jlox/main.go

Package main is jlox's entry point: zero or one positional argument
dispatches to the REPL or to running a file, matching spec.md §6 and the
teacher's main/main.go os.Args branching.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/jlox/diag"
	"github.com/akashmaji946/jlox/interpreter"
	"github.com/akashmaji946/jlox/lexer"
	"github.com/akashmaji946/jlox/parser"
	"github.com/akashmaji946/jlox/repl"
)

// Exit codes per spec.md §6.
const (
	exitOK           = 0
	exitUsage        = 64
	exitCompileError = 65
	exitRuntimeError = 70
)

func main() {
	args := os.Args[1:]
	switch {
	case len(args) > 1:
		fmt.Fprintln(os.Stderr, "Usage: jlox [script]")
		os.Exit(exitUsage)
	case len(args) == 1:
		os.Exit(runFile(args[0]))
	default:
		if err := repl.New().Run(os.Stdout, os.Stderr); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitRuntimeError)
		}
	}
}

// runFile reads path as UTF-8 source and runs it as a complete program,
// returning the process exit code spec.md §6 and §7 prescribe.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCompileError
	}

	reporter := diag.New()

	toks, lexErrs := lexer.New(string(src)).ScanTokens()
	for _, e := range lexErrs {
		reporter.LexError(e)
	}

	stmts, parseErrs := parser.New(toks).Parse()
	for _, e := range parseErrs {
		reporter.ParseError(e)
	}

	if reporter.HadError {
		return exitCompileError
	}

	it := interpreter.New()
	if err := it.Interpret(stmts); err != nil {
		reporter.ReportRuntimeError(err)
		return exitRuntimeError
	}

	return exitOK
}
