/*
File    : jlox/ast/expr.go

Package ast defines the expression and statement node types the Parser
builds and the Interpreter walks. Dispatch uses the visitor pattern
(Accept/Visitor), the same double-dispatch shape the teacher's
parser/node.go uses for its much larger node set (spec.md §9: "visitor is
not required" but is an equally valid choice, and this repo keeps it for
continuity with the corpus).

Nodes are created once by the Parser, are read-only thereafter, and form
a finite, acyclic tree (spec.md §3).
*/
package ast

import (
	"github.com/akashmaji946/jlox/token"
	"github.com/akashmaji946/jlox/value"
)

// Expr is any expression node. Accept drives double dispatch into an
// ExprVisitor and returns the evaluated Value.
type Expr interface {
	Accept(v ExprVisitor) (value.Value, error)
}

// ExprVisitor has one method per Expr variant. The Interpreter is the
// production implementation; tests may supply others (e.g. an AST
// printer).
type ExprVisitor interface {
	VisitBinaryExpr(e *Binary) (value.Value, error)
	VisitGroupingExpr(e *Grouping) (value.Value, error)
	VisitLiteralExpr(e *Literal) (value.Value, error)
	VisitUnaryExpr(e *Unary) (value.Value, error)
	VisitVariableExpr(e *Variable) (value.Value, error)
	VisitAssignExpr(e *Assign) (value.Value, error)
}

// Binary is a binary operator expression: left OP right.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) Accept(v ExprVisitor) (value.Value, error) { return v.VisitBinaryExpr(e) }

// Grouping is a parenthesized expression: ( inner ).
type Grouping struct {
	Inner Expr
}

func (e *Grouping) Accept(v ExprVisitor) (value.Value, error) { return v.VisitGroupingExpr(e) }

// Literal is a constant value baked into the AST by the parser: a number,
// string, boolean, or nil.
type Literal struct {
	Value value.Value
}

func (e *Literal) Accept(v ExprVisitor) (value.Value, error) { return v.VisitLiteralExpr(e) }

// Unary is a prefix operator expression: OP right (negation or logical
// not).
type Unary struct {
	Op    token.Token
	Right Expr
}

func (e *Unary) Accept(v ExprVisitor) (value.Value, error) { return v.VisitUnaryExpr(e) }

// Variable is a reference to a named binding, resolved at evaluation time
// by walking the environment chain (spec.md §3 invariants).
type Variable struct {
	Name token.Token
}

func (e *Variable) Accept(v ExprVisitor) (value.Value, error) { return v.VisitVariableExpr(e) }

// Assign is an assignment expression: name = value. Assignment is an
// expression, not a statement, and is right-associative (spec.md §3).
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (value.Value, error) { return v.VisitAssignExpr(e) }
