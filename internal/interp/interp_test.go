package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxscript/glox/internal/ast"
	"github.com/loxscript/glox/internal/parser"
	"github.com/loxscript/glox/internal/scanner"
	"github.com/loxscript/glox/internal/value"
)

func evalExpr(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, err := scanner.Scan(src)
	assert.NoError(t, err)
	expr, _, err := parser.ParseExpression(toks, 0)
	assert.NoError(t, err)
	in := New(NewBufferPrinter())
	v, err := in.Eval(expr)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func TestOperatorPrecedenceMulBeforeAdd(t *testing.T) {
	out, err := evalExpr(t, "2 + 3 * 4")
	assert.NoError(t, err)
	assert.Equal(t, "14", out)
}

func TestOperatorPrecedenceMulThenAdd(t *testing.T) {
	out, err := evalExpr(t, "2 * 3 + 4")
	assert.NoError(t, err)
	assert.Equal(t, "10", out)
}

func TestOperatorPrecedenceUnaryMinusBindsTighterThanMul(t *testing.T) {
	out, err := evalExpr(t, "-2 * 3")
	assert.NoError(t, err)
	assert.Equal(t, "-6", out)
}

func TestClockNativeReturnsDecimal(t *testing.T) {
	toks, err := scanner.Scan("clock();")
	assert.NoError(t, err)
	stmt, _, err := parser.ParseStatement(toks, 0)
	assert.NoError(t, err)
	in := New(NewBufferPrinter())
	assert.NoError(t, in.Exec(stmt))

	v, err := in.Eval(stmt.(*ast.ExprStmt).Expression)
	assert.NoError(t, err)
	assert.Equal(t, value.KindNumber, v.Kind())
	assert.False(t, v.AsNumber().IsInteger())
}

func TestCallArityCheckedBeforeBodyRuns(t *testing.T) {
	toks, err := scanner.Scan(`fun f(a){ print "should not run"; }`)
	assert.NoError(t, err)
	decl, _, err := parser.ParseStatement(toks, 0)
	assert.NoError(t, err)

	buf := NewBufferPrinter()
	in := New(buf)
	assert.NoError(t, in.Exec(decl))

	callToks, err := scanner.Scan(`f(1,2);`)
	assert.NoError(t, err)
	callStmt, _, err := parser.ParseStatement(callToks, 0)
	assert.NoError(t, err)
	assert.Error(t, in.Exec(callStmt))
	assert.Equal(t, "", buf.String())
}
