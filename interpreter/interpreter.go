/*
File    : jlox/interpreter/interpreter.go

Package interpreter implements jlox's tree-walking evaluator (spec.md
§4.4): it holds the current environment, evaluates expressions to Values,
and executes statements for effect, halting the whole program on the
first runtime error.

Grounded on the teacher's eval.Evaluator (writer injection, a single Eval
dispatch, per-node-type eval* methods in eval/evaluator_expressions.go),
translated from go-mix's value-carrying-errors convention to ordinary Go
(value.Value, error) returns: this language has no in-language try/catch,
so a runtime failure is host-language control flow, not a value a jlox
program can inspect (see DESIGN.md).
*/
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/jlox/ast"
	"github.com/akashmaji946/jlox/environment"
	"github.com/akashmaji946/jlox/rterr"
	"github.com/akashmaji946/jlox/token"
	"github.com/akashmaji946/jlox/value"
)

// Interpreter walks a statement list, evaluating each for effect. One
// Interpreter owns one persistent global environment plus however many
// block environments are currently nested (spec.md §3 Environment
// lifetime, §5).
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	Writer  io.Writer
}

// New creates an Interpreter with a fresh global environment, printing to
// os.Stdout by default — the same default the teacher's Evaluator uses.
func New() *Interpreter {
	globals := environment.New(nil)
	return &Interpreter{globals: globals, env: globals, Writer: os.Stdout}
}

// SetWriter redirects `print` output, e.g. to a buffer under test.
func (it *Interpreter) SetWriter(w io.Writer) {
	it.Writer = w
}

// Interpret executes a statement list in order. It stops at the first
// runtime error (spec.md §4.4, §7); statements before the failing one
// have already run their side effects.
func (it *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.Accept(it)
}

func (it *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	return expr.Accept(it)
}

// --- ast.StmtVisitor ---

// VisitExpressionStmt evaluates the expression and discards the result.
func (it *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	_, err := it.evaluate(s.Expr)
	return err
}

// VisitPrintStmt evaluates the expression and writes its stringification
// followed by a newline (spec.md §4.4).
func (it *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := it.evaluate(s.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(it.Writer, v.String())
	return nil
}

// VisitVarStmt evaluates the initializer (or uses Nil) and defines the
// binding in the current environment (spec.md §4.4).
func (it *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	var v value.Value = value.Nil
	if s.Initializer != nil {
		var err error
		v, err = it.evaluate(s.Initializer)
		if err != nil {
			return err
		}
	}
	it.env.Define(s.Name.Lexeme, v)
	return nil
}

// VisitBlockStmt installs a fresh environment for the block's duration
// and restores the saved one on every exit path, normal or erroring
// (spec.md §4.4, §5).
func (it *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return it.executeBlock(s.Statements, environment.New(it.env))
}

func (it *Interpreter) executeBlock(stmts []ast.Stmt, blockEnv *environment.Environment) error {
	previous := it.env
	it.env = blockEnv
	defer func() { it.env = previous }()

	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- ast.ExprVisitor ---

// VisitLiteralExpr returns the value baked in by the parser.
func (it *Interpreter) VisitLiteralExpr(e *ast.Literal) (value.Value, error) {
	return e.Value, nil
}

// VisitGroupingExpr evaluates the parenthesized inner expression.
func (it *Interpreter) VisitGroupingExpr(e *ast.Grouping) (value.Value, error) {
	return it.evaluate(e.Inner)
}

// VisitUnaryExpr evaluates the operand, then applies negation or logical
// not (spec.md §4.4).
func (it *Interpreter) VisitUnaryExpr(e *ast.Unary) (value.Value, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.MINUS:
		n, ok := right.(value.Number)
		if !ok {
			return nil, rterr.New(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return value.Boolean(!right.Truthy()), nil
	}
	return nil, rterr.New(e.Op, "Unknown unary operator.")
}

// VisitBinaryExpr evaluates the left operand then the right (strict
// left-to-right, spec.md §4.4), and applies the operator.
func (it *Interpreter) VisitBinaryExpr(e *ast.Binary) (value.Value, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.MINUS, token.SLASH, token.STAR, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, rterr.New(e.Op, "Operands must be numbers.")
		}
		switch e.Op.Type {
		case token.MINUS:
			return ln - rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.GREATER:
			return value.Boolean(ln > rn), nil
		case token.GREATER_EQUAL:
			return value.Boolean(ln >= rn), nil
		case token.LESS:
			return value.Boolean(ln < rn), nil
		case token.LESS_EQUAL:
			return value.Boolean(ln <= rn), nil
		}
	case token.PLUS:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
		return nil, rterr.New(e.Op, "Operands must be two numbers or two strings.")
	case token.EQUAL_EQUAL:
		return value.Boolean(value.Equal(left, right)), nil
	case token.BANG_EQUAL:
		return value.Boolean(!value.Equal(left, right)), nil
	}
	return nil, rterr.New(e.Op, "Unknown binary operator.")
}

// VisitVariableExpr resolves the name by walking the environment chain.
func (it *Interpreter) VisitVariableExpr(e *ast.Variable) (value.Value, error) {
	return it.env.Get(e.Name)
}

// VisitAssignExpr evaluates the value, assigns it to an existing binding,
// and returns it — assignment is an expression (spec.md §4.4).
func (it *Interpreter) VisitAssignExpr(e *ast.Assign) (value.Value, error) {
	v, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if err := it.env.Assign(e.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}
