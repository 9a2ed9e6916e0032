package ast

import (
	"fmt"
	"strings"
)

// Printer pretty-prints an expression tree in parenthesized prefix
// notation, generalized from the teacher's ASTPrinter (which only handled
// Binary/Group/Literal/Unary) to every expression node spec.md names.
// Kept as a debug utility behind the CLI's --print-ast flag (used by check).
type Printer struct{}

// Print renders e as a parenthesized prefix-notation string.
func (p *Printer) Print(e Expr) string {
	result, err := e.Accept(p)
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	return result.(string)
}

func (p *Printer) parenthesize(name string, exprs ...Expr) (interface{}, error) {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		s, err := e.Accept(p)
		if err != nil {
			return nil, err
		}
		b.WriteString(s.(string))
	}
	b.WriteByte(')')
	return b.String(), nil
}

func (p *Printer) VisitAssign(e *AssignExpr) (interface{}, error) {
	return p.parenthesize("= "+e.Name.Lexeme, e.Val)
}

func (p *Printer) VisitBinary(e *BinaryExpr) (interface{}, error) {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitLogical(e *LogicalExpr) (interface{}, error) {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitGroup(e *GroupExpr) (interface{}, error) {
	return p.parenthesize("group", e.Expression)
}

func (p *Printer) VisitLiteral(e *LiteralExpr) (interface{}, error) {
	if e.Value.Literal != nil {
		return fmt.Sprintf("%v", e.Value.Literal), nil
	}
	return e.Value.Lexeme, nil
}

func (p *Printer) VisitUnary(e *UnaryExpr) (interface{}, error) {
	return p.parenthesize(e.Op.Lexeme, e.Right)
}

func (p *Printer) VisitVariable(e *VariableExpr) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (p *Printer) VisitCall(e *CallExpr) (interface{}, error) {
	return p.parenthesize("call "+e.Callee.Lexeme, e.Arguments...)
}
