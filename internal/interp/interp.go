// Package interp implements the tree-walking evaluator from spec.md §4.3:
// an AST walker over ast.Expr/ast.Stmt backed by an environ.Environment,
// grounded on the teacher's interpreter.go (Visitor dispatch shape) and
// original_source/src/parser/vm/vm.rs (eval/exec dispatch tables, frame
// push/pop around calls and blocks).
package interp

import (
	"github.com/sirupsen/logrus"

	"github.com/loxscript/glox/internal/ast"
	"github.com/loxscript/glox/internal/environ"
	"github.com/loxscript/glox/internal/loxerr"
	"github.com/loxscript/glox/internal/token"
	"github.com/loxscript/glox/internal/value"
)

// Printer is the sink for `print` statement output. In "test mode" it can
// buffer for later retrieval (see BufferPrinter); otherwise it flushes to
// process stdout, per spec.md §5: "The print sink is scoped to the
// interpreter instance; in 'test mode' it buffers output ... otherwise it
// flushes to process stdout."
type Printer interface {
	Println(s string)
}

// Interpreter walks statements and expressions, evaluating them against
// an environ.Environment and sending `print` output to a Printer.
type Interpreter struct {
	env *environ.Environment
	out Printer
	log *logrus.Entry
}

// New returns an Interpreter with a fresh global environment, native
// functions registered, and output sent to out.
func New(out Printer) *Interpreter {
	in := &Interpreter{
		env: environ.New(),
		out: out,
		log: logrus.WithField("component", "interp"),
	}
	registerNatives(in.env)
	return in
}

// Clear resets the environment to a single global frame holding only the
// native functions, leaving the print sink and logger untouched.
func (in *Interpreter) Clear() {
	in.env.Clear()
	registerNatives(in.env)
}

// Exec executes a single statement.
func (in *Interpreter) Exec(s ast.Stmt) error {
	return s.Accept(in)
}

// Eval evaluates a single expression.
func (in *Interpreter) Eval(e ast.Expr) (value.Value, error) {
	result, err := e.Accept(in)
	if err != nil {
		return value.Value{}, err
	}
	return result.(value.Value), nil
}

// --- statement visitor ---

func (in *Interpreter) VisitExprStmt(s *ast.ExprStmt) error {
	_, err := in.Eval(s.Expression)
	return err
}

func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := in.Eval(s.Expression)
	if err != nil {
		return err
	}
	in.out.Println(v.String())
	return nil
}

func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	v := value.Nil
	if s.Init != nil {
		var err error
		v, err = in.Eval(s.Init)
		if err != nil {
			return err
		}
	}
	in.env.Define(s.Name.Lexeme, v)
	return nil
}

// VisitBlockStmt pushes a new scope, executes children in order, and
// pops the scope on exit via defer -- including when a statement
// propagates an error, per spec.md §5's exception-safe scope retirement.
func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return in.executeBlock(s.Statements)
}

func (in *Interpreter) executeBlock(stmts []ast.Stmt) error {
	in.env.PushScope()
	defer in.env.PopScope()
	for _, stmt := range stmts {
		if err := in.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := in.Eval(s.Cond)
	if err != nil {
		return err
	}
	truthy, err := cond.IsTruthy()
	if err != nil {
		return asTypeError(s.Cond, err)
	}
	if truthy {
		return in.Exec(s.Then)
	}
	if s.Else != nil {
		return in.Exec(s.Else)
	}
	return nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := in.Eval(s.Cond)
		if err != nil {
			return err
		}
		truthy, err := cond.IsTruthy()
		if err != nil {
			return asTypeError(s.Cond, err)
		}
		if !truthy {
			return nil
		}
		if err := in.Exec(s.Body); err != nil {
			return err
		}
	}
}

// VisitForStmt pushes a scope for the loop's init-declared variable (if
// any), per spec.md §4.3's "For: push a new scope; execute init if
// present; ...; Pop the scope on exit."
func (in *Interpreter) VisitForStmt(s *ast.ForStmt) error {
	in.env.PushScope()
	defer in.env.PopScope()

	if s.Init != nil {
		if err := in.Exec(s.Init); err != nil {
			return err
		}
	}
	for {
		if s.Cond != nil {
			cond, err := in.Eval(s.Cond)
			if err != nil {
				return err
			}
			truthy, err := cond.IsTruthy()
			if err != nil {
				return asTypeError(s.Cond, err)
			}
			if !truthy {
				return nil
			}
		}
		if err := in.Exec(s.Body); err != nil {
			return err
		}
		if s.Step != nil {
			if _, err := in.Eval(s.Step); err != nil {
				return err
			}
		}
	}
}

func (in *Interpreter) VisitFunDeclStmt(s *ast.FunDeclStmt) error {
	fn := &value.FunctionValue{
		Name:   s.Name.Lexeme,
		Params: append([]token.Token(nil), s.Params...),
		Body:   ast.CloneStmt(s.Body).(*ast.BlockStmt),
	}
	in.log.Debugf("declared function %s/%d", fn.Name, fn.Arity())
	in.env.Define(s.Name.Lexeme, value.Fn(fn))
	return nil
}

// --- expression visitor ---

func (in *Interpreter) VisitLiteral(e *ast.LiteralExpr) (interface{}, error) {
	tok := e.Value
	switch tok.Type {
	case token.Nil:
		return value.Nil, nil
	case token.True:
		return value.Bool(true), nil
	case token.False:
		return value.Bool(false), nil
	case token.StringTok:
		return value.Str(tok.Literal.(string)), nil
	case token.NumberTok:
		return value.Num(tok.Literal.(token.Number)), nil
	default:
		return nil, loxerr.NewTypeError(tok, "not a literal token")
	}
}

func (in *Interpreter) VisitVariable(e *ast.VariableExpr) (interface{}, error) {
	v, err := in.env.Get(e.Name)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (in *Interpreter) VisitGroup(e *ast.GroupExpr) (interface{}, error) {
	return in.Eval(e.Expression)
}

func (in *Interpreter) VisitUnary(e *ast.UnaryExpr) (interface{}, error) {
	right, err := in.Eval(e.Right)
	if err != nil {
		return nil, err
	}
	var result value.Value
	switch e.Op.Type {
	case token.Bang:
		result, err = right.Not()
	case token.Minus:
		result, err = right.Neg()
	default:
		return nil, loxerr.NewTypeError(e.Op, "unsupported unary operator")
	}
	if err != nil {
		return nil, loxerr.NewTypeError(e.Op, err.Error())
	}
	return result, nil
}

func (in *Interpreter) VisitAssign(e *ast.AssignExpr) (interface{}, error) {
	v, err := in.Eval(e.Val)
	if err != nil {
		return nil, err
	}
	if err := in.env.Assign(e.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (in *Interpreter) VisitLogical(e *ast.LogicalExpr) (interface{}, error) {
	left, err := in.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.Eval(e.Right)
	if err != nil {
		return nil, err
	}
	var result value.Value
	switch e.Op.Type {
	case token.And:
		result, err = left.LogicAnd(right)
	case token.Or:
		result, err = left.LogicOr(right)
	default:
		return nil, loxerr.NewTypeError(e.Op, "unsupported logical operator")
	}
	if err != nil {
		return nil, loxerr.NewTypeError(e.Op, err.Error())
	}
	return result, nil
}

func (in *Interpreter) VisitBinary(e *ast.BinaryExpr) (interface{}, error) {
	left, err := in.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.Eval(e.Right)
	if err != nil {
		return nil, err
	}

	if e.Op.Type == token.Slash {
		if right.Kind() == value.KindNumber && right.AsNumber().IsZero() {
			return nil, loxerr.NewArithmeticError(e.Op, "division by zero")
		}
	}

	var result value.Value
	switch e.Op.Type {
	case token.Plus:
		result, err = left.Add(right)
	case token.Minus:
		result, err = left.Sub(right)
	case token.Star:
		result, err = left.Mul(right)
	case token.Slash:
		result, err = left.Div(right)
	case token.Greater:
		result, err = left.Greater(right)
	case token.GreaterEqual:
		result, err = left.GreaterEq(right)
	case token.Less:
		result, err = left.Less(right)
	case token.LessEqual:
		result, err = left.LessEq(right)
	case token.EqualEqual:
		result = left.Eq(right)
	case token.BangEqual:
		result = left.Ne(right)
	default:
		return nil, loxerr.NewTypeError(e.Op, "unsupported binary operator")
	}
	if err != nil {
		return nil, loxerr.NewTypeError(e.Op, err.Error())
	}
	return result, nil
}

// VisitCall implements spec.md §4.3's call semantics: look up the
// callee, check it's a Function with matching arity, evaluate arguments
// left-to-right, push a frame named after the callee, bind parameters,
// execute the body, and pop the frame (via defer, so a body error still
// retires it). A call to a user-defined function always yields Nil (no
// return-value mechanism); a call to a native yields the native's result.
func (in *Interpreter) VisitCall(e *ast.CallExpr) (interface{}, error) {
	callee, err := in.env.Get(e.Callee)
	if err != nil {
		return nil, err
	}
	if callee.Kind() != value.KindFunction {
		return nil, loxerr.NewTypeError(e.Callee, "can only call functions")
	}
	fn := callee.AsFunction()
	if len(e.Arguments) != fn.Arity() {
		return nil, loxerr.NewArityError(e.Paren, fn.Arity(), len(e.Arguments))
	}

	args := make([]value.Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		v, err := in.Eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if native, ok := isNative(fn); ok {
		return native.call(args)
	}

	in.log.Debugf("call %s (%d args), depth %d -> %d", fn.Name, len(args), in.env.Depth(), in.env.Depth()+1)
	in.env.PushFrame(fn.Name)
	defer in.env.PopFrame()
	for i, param := range fn.Params {
		in.env.Define(param.Lexeme, args[i])
	}
	if err := in.executeBlock(fn.Body.Statements); err != nil {
		return nil, err
	}
	return value.Nil, nil
}

// asTypeError wraps a truthiness failure from a condition expression,
// locating the closest token in the expression tree to attach the error
// to (conditions don't always carry one directly, e.g. a GroupExpr).
func asTypeError(e ast.Expr, err error) error {
	return loxerr.NewTypeError(conditionToken(e), err.Error())
}

func conditionToken(e ast.Expr) token.Token {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return n.Value
	case *ast.VariableExpr:
		return n.Name
	case *ast.AssignExpr:
		return n.Name
	case *ast.UnaryExpr:
		return n.Op
	case *ast.BinaryExpr:
		return n.Op
	case *ast.LogicalExpr:
		return n.Op
	case *ast.CallExpr:
		return n.Paren
	case *ast.GroupExpr:
		return conditionToken(n.Expression)
	default:
		return token.Token{Type: token.EOF}
	}
}
