// Package value implements the Lox runtime value domain: a tagged union
// over Nil/Boolean/Number/String/Function with operator dispatch, grounded
// on original_source/parser/types/object.rs's Object enum.
package value

import (
	"fmt"

	"github.com/josharian/intern"

	"github.com/loxscript/glox/internal/ast"
	"github.com/loxscript/glox/internal/token"
)

// Kind tags which variant a Value holds.
type Kind int

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindFunction
)

// Value is the Lox runtime value domain. The zero Value is Nil.
type Value struct {
	kind Kind
	b    bool
	n    token.Number
	s    string // interned via github.com/josharian/intern
	fn   *FunctionValue
}

// FunctionValue is a first-class function: a parameter-name sequence and
// a cloned copy of its body statement (see ast.CloneStmt). Rebinding a
// function name to a new FunDeclStmt replaces the slot; it never mutates
// an existing FunctionValue in place, matching spec.md §3's "identical
// function names rebind the slot."
type FunctionValue struct {
	Name   string
	Params []token.Token
	Body   *ast.BlockStmt
}

// Arity returns the declared parameter count.
func (f *FunctionValue) Arity() int { return len(f.Params) }

func (f *FunctionValue) String() string { return "<fn " + f.Name + ">" }

var Nil = Value{kind: KindNil}

// Bool constructs a Boolean Value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Num constructs a Number Value.
func Num(n token.Number) Value { return Value{kind: KindNumber, n: n} }

// Str constructs a String Value, interning its payload so repeated
// occurrences of identical text share one backing string (spec.md §3:
// "shared immutable text").
func Str(s string) Value { return Value{kind: KindString, s: intern.String(s)} }

// Fn constructs a Function Value.
func Fn(f *FunctionValue) Value { return Value{kind: KindFunction, fn: f} }

func (v Value) Kind() Kind                { return v.kind }
func (v Value) IsNil() bool               { return v.kind == KindNil }
func (v Value) AsBool() bool              { return v.b }
func (v Value) AsNumber() token.Number    { return v.n }
func (v Value) AsString() string          { return v.s }
func (v Value) AsFunction() *FunctionValue { return v.fn }

// IsTruthy implements spec.md §4.3/§9's strict truthiness rule: only
// Boolean and Nil are truth-typed, everything else is a type error.
// Grounded on original_source's Object::is_true.
func (v Value) IsTruthy() (bool, error) {
	switch v.kind {
	case KindBoolean:
		return v.b, nil
	case KindNil:
		return false, nil
	default:
		return false, fmt.Errorf("%s is not a Boolean value", v.typeName())
	}
}

func (v Value) typeName() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBoolean:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindFunction:
		return "Function"
	default:
		return "unknown"
	}
}

// Not implements unary `!`: defined for Boolean (negate) and Nil (false).
func (v Value) Not() (Value, error) {
	switch v.kind {
	case KindBoolean:
		return Bool(!v.b), nil
	case KindNil:
		return Bool(false), nil
	default:
		return Value{}, fmt.Errorf("operand of '!' must be a Boolean or nil, got %s", v.typeName())
	}
}

// Neg implements unary `-`: defined for Number only.
func (v Value) Neg() (Value, error) {
	if v.kind != KindNumber {
		return Value{}, fmt.Errorf("operand of '-' must be a Number, got %s", v.typeName())
	}
	return Num(v.n.Neg()), nil
}

// Add implements `+`: Number+Number, String+String, or String+Number in
// either order (the Number is stringified; String always wins the outer
// type), per spec.md §4.3.
func (v Value) Add(o Value) (Value, error) {
	switch {
	case v.kind == KindNumber && o.kind == KindNumber:
		return Num(v.n.Add(o.n)), nil
	case v.kind == KindString && o.kind == KindString:
		return Str(v.s + o.s), nil
	case v.kind == KindString && o.kind == KindNumber:
		return Str(v.s + o.n.String()), nil
	case v.kind == KindNumber && o.kind == KindString:
		return Str(v.n.String() + o.s), nil
	default:
		return Value{}, fmt.Errorf("operands of '+' must be two Numbers, two Strings, or a String and a Number, got %s and %s", v.typeName(), o.typeName())
	}
}

func (v Value) numPair(o Value, op string) (token.Number, token.Number, error) {
	if v.kind != KindNumber || o.kind != KindNumber {
		return token.Number{}, token.Number{}, fmt.Errorf("operands of '%s' must both be Numbers, got %s and %s", op, v.typeName(), o.typeName())
	}
	return v.n, o.n, nil
}

// Sub implements binary `-`, defined for two Numbers only.
func (v Value) Sub(o Value) (Value, error) {
	a, b, err := v.numPair(o, "-")
	if err != nil {
		return Value{}, err
	}
	return Num(a.Sub(b)), nil
}

// Mul implements `*`, defined for two Numbers only.
func (v Value) Mul(o Value) (Value, error) {
	a, b, err := v.numPair(o, "*")
	if err != nil {
		return Value{}, err
	}
	return Num(a.Mul(b)), nil
}

// Div implements `/`, defined for two Numbers only; division by a zero
// of either tag is a caller-reported arithmetic error (Div itself just
// reports the type mismatch case — the interpreter checks IsZero so it
// can attach a loxerr.ArithmeticError instead of a generic type error).
func (v Value) Div(o Value) (Value, error) {
	a, b, err := v.numPair(o, "/")
	if err != nil {
		return Value{}, err
	}
	return Num(a.Div(b)), nil
}

// Less, LessEq, Greater, GreaterEq implement comparison, defined only on
// two Numbers (with promotion).
func (v Value) Less(o Value) (Value, error) {
	a, b, err := v.numPair(o, "<")
	if err != nil {
		return Value{}, err
	}
	return Bool(a.Less(b)), nil
}

func (v Value) LessEq(o Value) (Value, error) {
	a, b, err := v.numPair(o, "<=")
	if err != nil {
		return Value{}, err
	}
	return Bool(a.LessEq(b)), nil
}

func (v Value) Greater(o Value) (Value, error) {
	a, b, err := v.numPair(o, ">")
	if err != nil {
		return Value{}, err
	}
	return Bool(a.Greater(b)), nil
}

func (v Value) GreaterEq(o Value) (Value, error) {
	a, b, err := v.numPair(o, ">=")
	if err != nil {
		return Value{}, err
	}
	return Bool(a.GreaterEq(b)), nil
}

// Eq implements `==`: Nil==Nil is true, same-tag values compare by
// payload, mixed tags are always unequal except Integer/Decimal which
// compare numerically.
func (v Value) Eq(o Value) Value {
	if v.kind == KindNil && o.kind == KindNil {
		return Bool(true)
	}
	if v.kind != o.kind {
		return Bool(false)
	}
	switch v.kind {
	case KindBoolean:
		return Bool(v.b == o.b)
	case KindNumber:
		return Bool(v.n.Eq(o.n))
	case KindString:
		return Bool(v.s == o.s)
	case KindFunction:
		return Bool(v.fn == o.fn)
	default:
		return Bool(false)
	}
}

// Ne implements `!=` as the negation of Eq.
func (v Value) Ne(o Value) Value {
	eq := v.Eq(o)
	return Bool(!eq.b)
}

// LogicAnd and LogicOr implement `and`/`or` per spec.md §4.3/§9: both
// operands are evaluated unconditionally by the caller (no short circuit)
// and each must independently satisfy IsTruthy; the result is a fresh
// Boolean formed from the two truthiness checks, grounded on
// original_source's Object::logic_and/logic_or.
func (v Value) LogicAnd(o Value) (Value, error) {
	vt, err := v.IsTruthy()
	if err != nil {
		return Value{}, err
	}
	ot, err := o.IsTruthy()
	if err != nil {
		return Value{}, err
	}
	return Bool(vt && ot), nil
}

func (v Value) LogicOr(o Value) (Value, error) {
	vt, err := v.IsTruthy()
	if err != nil {
		return Value{}, err
	}
	ot, err := o.IsTruthy()
	if err != nil {
		return Value{}, err
	}
	return Bool(vt || ot), nil
}

// String renders v for `print`: booleans as true/false, nil as "(Nil)",
// numbers via Number.String, strings raw, functions via their debug form.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "(Nil)"
	case KindBoolean:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return v.n.String()
	case KindString:
		return v.s
	case KindFunction:
		return v.fn.String()
	default:
		return "<invalid value>"
	}
}
