/*
File    : jlox/ast/stmt.go

Statement node variants (spec.md §3): expression statements, print, var
declarations, and nested blocks. Statements execute for effect — Accept
returns only an error.
*/
package ast

import "github.com/akashmaji946/jlox/token"

// Stmt is any statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// StmtVisitor has one method per Stmt variant.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
}

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates an expression and writes its string form followed
// by a line terminator.
type PrintStmt struct {
	Expr Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares a variable, optionally with an initializer. When
// Initializer is nil the variable is bound to value.Nil (spec.md §4.4).
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt is a nested sequence of statements executed in a fresh
// environment whose enclosing scope is the one active at block entry
// (spec.md §4.4).
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }
