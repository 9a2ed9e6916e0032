package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxscript/glox/internal/token"
)

func TestIsTruthyIsStrict(t *testing.T) {
	truthy, err := Bool(true).IsTruthy()
	assert.NoError(t, err)
	assert.True(t, truthy)

	truthy, err = Nil.IsTruthy()
	assert.NoError(t, err)
	assert.False(t, truthy)

	_, err = Num(token.NewInteger(1)).IsTruthy()
	assert.Error(t, err, "a non-Boolean/non-Nil value must not be truth-typed")
}

func TestLogicAndOrAreNotShortCircuited(t *testing.T) {
	// Both operands are always evaluated by the caller; LogicAnd/LogicOr
	// themselves just combine two already-evaluated truthiness checks.
	r, err := Bool(false).LogicAnd(Bool(true))
	assert.NoError(t, err)
	assert.False(t, r.AsBool())

	r, err = Bool(true).LogicOr(Bool(false))
	assert.NoError(t, err)
	assert.True(t, r.AsBool())

	_, err = Bool(true).LogicAnd(Num(token.NewInteger(1)))
	assert.Error(t, err)
}

func TestAddStringAlwaysWinsOuterType(t *testing.T) {
	r, err := Str("x=").Add(Num(token.NewInteger(5)))
	assert.NoError(t, err)
	assert.Equal(t, "x=5", r.AsString())

	r, err = Num(token.NewDecimal(1.5)).Add(Str("!"))
	assert.NoError(t, err)
	assert.Equal(t, "1.5!", r.AsString())
}

func TestArithmeticRequiresNumberOperands(t *testing.T) {
	_, err := Str("a").Sub(Str("b"))
	assert.Error(t, err)

	r, err := Num(token.NewInteger(4)).Sub(Num(token.NewInteger(1)))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), r.AsNumber().Int64())
}

func TestEqIsKindAware(t *testing.T) {
	assert.True(t, Nil.Eq(Nil).AsBool())
	assert.False(t, Bool(true).Eq(Num(token.NewInteger(1))).AsBool())
	assert.True(t, Num(token.NewInteger(2)).Eq(Num(token.NewDecimal(2.0))).AsBool())
}

func TestStringInterningSharesBackingStorage(t *testing.T) {
	a := Str("shared")
	b := Str("shared")
	assert.Equal(t, a.AsString(), b.AsString())
}

func TestValueStringRendering(t *testing.T) {
	assert.Equal(t, "(Nil)", Nil.String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "3.5", Num(token.NewDecimal(3.5)).String())
	assert.Equal(t, "hi", Str("hi").String())
}
