// Package parser implements the recursive-descent parser from spec.md
// §4.2: tokens -> AST, consuming a start index and reporting how many
// tokens were consumed, grounded on original_source/src/parser/syntax/
// {expression,statement}.rs's (node, consumed) functions. Internally a
// cursor-based Parser struct is used rather than threading an explicit
// index through every recursive call, which is how the Rust original
// does it but is awkward in idiomatic Go; ParseStatement exposes the
// same (node, consumed, error) contract spec.md's driver design needs.
package parser

import (
	"fmt"

	"github.com/loxscript/glox/internal/ast"
	"github.com/loxscript/glox/internal/loxerr"
	"github.com/loxscript/glox/internal/token"
)

const maxArguments = 255

// Parser walks a fixed token slice starting at a given position.
type Parser struct {
	tokens []*token.Token
	pos    int
}

func newParser(tokens []*token.Token, start int) *Parser {
	return &Parser{tokens: tokens, pos: start}
}

// ParseStatement parses exactly one statement starting at toks[start],
// returning the statement and the number of tokens it consumed.
func ParseStatement(toks []*token.Token, start int) (ast.Stmt, int, error) {
	p := newParser(toks, start)
	stmt, err := p.statement()
	if err != nil {
		return nil, 0, err
	}
	return stmt, p.pos - start, nil
}

// ParseExpression parses a single expression starting at toks[start] (no
// trailing ';' expected), returning how many tokens it consumed. Exposed
// for tooling and tests that work on a bare expression.
func ParseExpression(toks []*token.Token, start int) (ast.Expr, int, error) {
	p := newParser(toks, start)
	expr, err := p.expression()
	if err != nil {
		return nil, 0, err
	}
	return expr, p.pos - start, nil
}

// --- token cursor helpers ---

func (p *Parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return &token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) check(t token.Type) bool { return p.peek().Type == t }

func (p *Parser) advance() *token.Token {
	tok := p.peek()
	if tok.Type != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) matchAny(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(t token.Type, msg string) (*token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	got := p.peek()
	return nil, loxerr.NewParseError(got.Line, fmt.Sprintf("%s, got %s '%s'", msg, got.Type, got.Lexeme))
}

// --- statements ---

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.check(token.Print):
		return p.printStatement()
	case p.check(token.Var):
		return p.varDeclaration()
	case p.check(token.If):
		return p.ifStatement()
	case p.check(token.While):
		return p.whileStatement()
	case p.check(token.For):
		return p.forStatement()
	case p.check(token.LeftBrace):
		return p.block()
	case p.check(token.Fun):
		return p.funDeclaration()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	p.advance() // 'print'
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "expected ';' after value"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: expr}, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	p.advance() // 'var'
	name, err := p.expect(token.Identifier, "expected variable name")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.matchAny(token.Equal) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: *name, Init: init}, nil
}

func (p *Parser) block() (*ast.BlockStmt, error) {
	if _, err := p.expect(token.LeftBrace, "expected '{'"); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.check(token.EOF) {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.expect(token.RightBrace, "expected '}' after block"); err != nil {
		return nil, err
	}
	return &ast.BlockStmt{Statements: stmts}, nil
}

// ifStatement parses `if (cond) then (else else)?`. Dangling-else binds
// to the nearest unmatched `if`, achieved naturally by recursing into
// statement() for the else-branch instead of tracking an explicit stack.
func (p *Parser) ifStatement() (ast.Stmt, error) {
	p.advance() // 'if'
	if _, err := p.expect(token.LeftParen, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParen, "expected ')' after condition"); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.matchAny(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Cond: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	p.advance() // 'while'
	if _, err := p.expect(token.LeftParen, "expected '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParen, "expected ')' after condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body}, nil
}

// forStatement parses C-style `for (init?; cond?; step?) body`. INIT is
// either a var-declaration or an expression-statement (each consumes its
// own ';'); if INIT is absent, its ';' must still appear.
func (p *Parser) forStatement() (ast.Stmt, error) {
	p.advance() // 'for'
	if _, err := p.expect(token.LeftParen, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var init ast.Stmt
	var err error
	switch {
	case p.matchAny(token.Semicolon):
		init = nil
	case p.check(token.Var):
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var step ast.Expr
	if !p.check(token.RightParen) {
		step, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RightParen, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{Init: init, Cond: cond, Step: step, Body: body}, nil
}

func (p *Parser) funDeclaration() (ast.Stmt, error) {
	p.advance() // 'fun'
	name, err := p.expect(token.Identifier, "expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LeftParen, "expected '(' after function name"); err != nil {
		return nil, err
	}
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArguments {
				return nil, loxerr.NewParseError(p.peek().Line, fmt.Sprintf("can't have more than %d parameters", maxArguments))
			}
			param, err := p.expect(token.Identifier, "expected parameter name")
			if err != nil {
				return nil, err
			}
			for _, seen := range params {
				if seen.Lexeme == param.Lexeme {
					return nil, loxerr.NewParseError(param.Line, "duplicate parameter name '"+param.Lexeme+"'")
				}
			}
			params = append(params, *param)
			if !p.matchAny(token.Comma) {
				break
			}
		}
	}
	if _, err := p.expect(token.RightParen, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunDeclStmt{Name: *name, Params: params, Body: body}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expression: expr}, nil
}

// --- expressions ---

// expression first attempts assignment; on failure (not an IDENT followed
// by '='), falls back to logicOr, per spec.md §4.2's "Assignment
// disambiguation". Right-associativity comes from assignment recursing
// into itself for the right-hand side.
func (p *Parser) expression() (ast.Expr, error) {
	if p.check(token.Identifier) && p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Type == token.Equal {
		name := p.advance()
		p.advance() // '='
		val, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Name: *name, Val: val}, nil
	}
	return p.logicOr()
}

func (p *Parser) logicOr() (ast.Expr, error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.check(token.Or) {
		op := p.advance()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{Left: expr, Op: *op, Right: right}
	}
	return expr, nil
}

func (p *Parser) logicAnd() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.check(token.And) {
		op := p.advance()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{Left: expr, Op: *op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.check(token.EqualEqual) || p.check(token.BangEqual) {
		op := p.advance()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Op: *op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.check(token.Greater) || p.check(token.GreaterEqual) || p.check(token.Less) || p.check(token.LessEqual) {
		op := p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Op: *op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.check(token.Minus) || p.check(token.Plus) {
		op := p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Op: *op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.check(token.Slash) || p.check(token.Star) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Op: *op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.check(token.Bang) || p.check(token.Minus) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: *op, Right: right}, nil
	}
	return p.call()
}

// call parses a function call only when an identifier is immediately
// followed by '(', per spec.md §4.2; otherwise it falls through to primary.
func (p *Parser) call() (ast.Expr, error) {
	if p.check(token.Identifier) && p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Type == token.LeftParen {
		callee := p.advance()
		p.advance() // '('
		var args []ast.Expr
		if !p.check(token.RightParen) {
			for {
				if len(args) >= maxArguments {
					return nil, loxerr.NewParseError(p.peek().Line, fmt.Sprintf("can't have more than %d arguments", maxArguments))
				}
				arg, err := p.expression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.matchAny(token.Comma) {
					break
				}
			}
		}
		paren, err := p.expect(token.RightParen, "expected ')' after arguments")
		if err != nil {
			return nil, err
		}
		return &ast.CallExpr{Callee: *callee, Paren: *paren, Arguments: args}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.check(token.False), p.check(token.True), p.check(token.Nil),
		p.check(token.StringTok), p.check(token.NumberTok):
		return &ast.LiteralExpr{Value: *p.advance()}, nil
	case p.check(token.Identifier):
		name := p.advance()
		return &ast.VariableExpr{Name: *name}, nil
	case p.check(token.LeftParen):
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.GroupExpr{Expression: expr}, nil
	default:
		got := p.peek()
		return nil, loxerr.NewParseError(got.Line, fmt.Sprintf("expected expression, got %s '%s'", got.Type, got.Lexeme))
	}
}
