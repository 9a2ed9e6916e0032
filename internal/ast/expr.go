// Package ast holds the syntax tree node types produced by the parser and
// consumed by the evaluator, using the Visitor-pattern shape from the
// teacher's ast_expr.go/ast_stmt.go generalized to the full spec.md node set.
package ast

import "github.com/loxscript/glox/internal/token"

// ExprVisitor is implemented by anything that walks an expression tree
// (the evaluator, the debug printer).
type ExprVisitor interface {
	VisitAssign(e *AssignExpr) (interface{}, error)
	VisitBinary(e *BinaryExpr) (interface{}, error)
	VisitLogical(e *LogicalExpr) (interface{}, error)
	VisitGroup(e *GroupExpr) (interface{}, error)
	VisitLiteral(e *LiteralExpr) (interface{}, error)
	VisitUnary(e *UnaryExpr) (interface{}, error)
	VisitVariable(e *VariableExpr) (interface{}, error)
	VisitCall(e *CallExpr) (interface{}, error)
}

// Expr is any expression AST node.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// AssignExpr is `name = val`, right-associative.
type AssignExpr struct {
	Name token.Token
	Val  Expr
}

func (e *AssignExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssign(e) }

// BinaryExpr is a left-associative arithmetic/comparison/equality operation.
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *BinaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinary(e) }

// LogicalExpr is `and`/`or`. Kept distinct from BinaryExpr because its
// evaluation rule (spec.md §4.3: both sides evaluated, each independently
// truthy-checked) differs from arithmetic/comparison dispatch.
type LogicalExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *LogicalExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogical(e) }

// GroupExpr is a parenthesized expression.
type GroupExpr struct {
	Expression Expr
}

func (e *GroupExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroup(e) }

// LiteralExpr wraps one of nil|true|false|String|Number token literals.
type LiteralExpr struct {
	Value token.Token
}

func (e *LiteralExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteral(e) }

// UnaryExpr is a prefix `!` or `-`.
type UnaryExpr struct {
	Op    token.Token
	Right Expr
}

func (e *UnaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnary(e) }

// VariableExpr is an identifier reference.
type VariableExpr struct {
	Name token.Token
}

func (e *VariableExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariable(e) }

// CallExpr is `callee(args...)`. Per spec.md §3 the callee is resolved by
// name, not by an arbitrary expression, so Callee is the identifier token
// rather than an Expr.
type CallExpr struct {
	Callee    token.Token
	Paren     token.Token // closing ')' token, used to attach error locations
	Arguments []Expr
}

func (e *CallExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCall(e) }

// CloneExpr deep-copies an expression subtree. Used when a FunDeclStmt's
// body is captured into a value.FunctionValue, so later reassignment of
// the declaring statement's AST (impossible here, but also redeclaration
// of the same function name) can never alias a live call's body.
func CloneExpr(e Expr) Expr {
	switch n := e.(type) {
	case nil:
		return nil
	case *AssignExpr:
		return &AssignExpr{Name: n.Name, Val: CloneExpr(n.Val)}
	case *BinaryExpr:
		return &BinaryExpr{Left: CloneExpr(n.Left), Op: n.Op, Right: CloneExpr(n.Right)}
	case *LogicalExpr:
		return &LogicalExpr{Left: CloneExpr(n.Left), Op: n.Op, Right: CloneExpr(n.Right)}
	case *GroupExpr:
		return &GroupExpr{Expression: CloneExpr(n.Expression)}
	case *LiteralExpr:
		return &LiteralExpr{Value: n.Value}
	case *UnaryExpr:
		return &UnaryExpr{Op: n.Op, Right: CloneExpr(n.Right)}
	case *VariableExpr:
		return &VariableExpr{Name: n.Name}
	case *CallExpr:
		args := make([]Expr, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = CloneExpr(a)
		}
		return &CallExpr{Callee: n.Callee, Paren: n.Paren, Arguments: args}
	default:
		panic("ast: CloneExpr: unknown expression node")
	}
}
