/*
File    : jlox/parser/parser.go

Package parser implements jlox's recursive-descent Parser: one-token
lookahead, left-associative precedence climbing for binary operators,
right-associative assignment, and panic-mode error recovery (spec.md
§4.2). Grounded on the teacher's parser.Parser field shape (Lex,
CurrToken, collected Errors) and its registered-parse-function dispatch
idea in parser/parser.go, adapted from go-mix's general Pratt/precedence
table down to one method per grammar level, the direct Go expression of
spec.md's six-level grammar.
*/
package parser

import (
	"github.com/akashmaji946/jlox/ast"
	"github.com/akashmaji946/jlox/parseerr"
	"github.com/akashmaji946/jlox/token"
	"github.com/akashmaji946/jlox/value"
)

// Parser converts a token sequence into a statement list.
type Parser struct {
	tokens  []token.Token
	current int
	errs    []*parseerr.Error
}

// New creates a Parser over tokens (expected to end in exactly one EOF,
// per lexer.Scanner's contract).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the parser to completion, returning every statement it
// could build and every parse error it collected along the way. A
// non-empty error slice means the statement list should not be
// interpreted (spec.md §4.2, §7).
func (p *Parser) Parse() ([]ast.Stmt, []*parseerr.Error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errs = append(p.errs, err.(*parseerr.Error))
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts, p.errs
}

// --- token stream helpers ---

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(typ token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == typ
}

func (p *Parser) matchAny(types ...token.Type) bool {
	for _, typ := range types {
		if p.check(typ) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(typ token.Type, message string) (token.Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}
	return token.Token{}, parseerr.New(p.peek(), message)
}

// synchronize discards tokens until a likely statement boundary, so
// parsing can resume after an error without cascading (spec.md §4.2).
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// --- grammar: declaration → statement ---

func (p *Parser) declaration() (ast.Stmt, error) {
	if p.matchAny(token.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expr
	if p.matchAny(token.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	if p.matchAny(token.PRINT) {
		return p.printStatement()
	}
	if p.matchAny(token.LEFT_BRACE) {
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Statements: stmts}, nil
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expr: expr}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: expr}, nil
}

// block parses declaration* "}" — the opening "{" has already been
// consumed by the caller.
func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(token.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

// --- grammar: expression → assignment → equality → ... → primary ---

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses the left side as an ordinary expression first, then
// reinterprets it as an assignment target if "=" follows (spec.md §9).
// Right-associative: the value side recurses back into assignment.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.matchAny(token.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}, nil
		}
		p.errs = append(p.errs, parseerr.New(equals, "Invalid assignment target."))
		return expr, nil
	}

	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.addition, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func (p *Parser) addition() (ast.Expr, error) {
	return p.leftAssocBinary(p.multiplication, token.MINUS, token.PLUS)
}

func (p *Parser) multiplication() (ast.Expr, error) {
	return p.leftAssocBinary(p.unary, token.SLASH, token.STAR)
}

// leftAssocBinary implements one precedence level: parse one operand at
// the next-higher level, then loop while the current token is one of
// ops, each time pairing the accumulated left with a freshly parsed
// right (spec.md §4.2 "Associativity").
func (p *Parser) leftAssocBinary(operand func() (ast.Expr, error), ops ...token.Type) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.matchAny(ops...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.matchAny(token.BANG, token.MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.matchAny(token.FALSE):
		return &ast.Literal{Value: value.Boolean(false)}, nil
	case p.matchAny(token.TRUE):
		return &ast.Literal{Value: value.Boolean(true)}, nil
	case p.matchAny(token.NIL):
		return &ast.Literal{Value: value.Nil}, nil
	case p.matchAny(token.NUMBER):
		return &ast.Literal{Value: value.Number(p.previous().Literal.(float64))}, nil
	case p.matchAny(token.STRING):
		return &ast.Literal{Value: value.String(p.previous().Literal.(string))}, nil
	case p.matchAny(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}, nil
	case p.matchAny(token.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: expr}, nil
	default:
		return nil, parseerr.New(p.peek(), "Expect expression.")
	}
}
