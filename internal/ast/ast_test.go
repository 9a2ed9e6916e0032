package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxscript/glox/internal/token"
)

func TestPrinterParenthesizesBinaryExpressions(t *testing.T) {
	expr := &BinaryExpr{
		Left:  &LiteralExpr{Value: token.New(token.NumberTok, "1", token.NewInteger(1), 1)},
		Op:    token.New(token.Plus, "+", nil, 1),
		Right: &LiteralExpr{Value: token.New(token.NumberTok, "2", token.NewInteger(2), 1)},
	}
	p := &Printer{}
	assert.Equal(t, "(+ 1 2)", p.Print(expr))
}

func TestCloneExprProducesIndependentTree(t *testing.T) {
	name := token.New(token.Identifier, "x", nil, 1)
	orig := &AssignExpr{Name: name, Val: &VariableExpr{Name: name}}
	clone := CloneExpr(orig).(*AssignExpr)

	assert.Equal(t, orig.Name.Lexeme, clone.Name.Lexeme)
	assert.NotSame(t, orig.Val, clone.Val)
}

func TestCloneStmtDeepCopiesNestedBlocks(t *testing.T) {
	inner := &BlockStmt{Statements: []Stmt{&PrintStmt{Expression: &LiteralExpr{Value: token.New(token.True, "true", nil, 1)}}}}
	outer := &FunDeclStmt{Name: token.New(token.Identifier, "f", nil, 1), Body: inner}

	clone := CloneStmt(outer).(*FunDeclStmt)
	assert.NotSame(t, outer.Body, clone.Body)
	assert.NotSame(t, outer.Body.Statements[0], clone.Body.Statements[0])
	assert.Equal(t, len(outer.Body.Statements), len(clone.Body.Statements))
}

func TestCloneExprNilIsNil(t *testing.T) {
	assert.Nil(t, CloneExpr(nil))
}
