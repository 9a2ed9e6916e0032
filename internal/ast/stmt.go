package ast

import "github.com/loxscript/glox/internal/token"

// StmtVisitor is implemented by anything that walks a statement tree.
type StmtVisitor interface {
	VisitExprStmt(s *ExprStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitForStmt(s *ForStmt) error
	VisitFunDeclStmt(s *FunDeclStmt) error
}

// Stmt is any statement AST node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// ExprStmt is an expression terminated by ';', evaluated and discarded.
type ExprStmt struct{ Expression Expr }

func (s *ExprStmt) Accept(v StmtVisitor) error { return v.VisitExprStmt(s) }

// PrintStmt is `print expr;`.
type PrintStmt struct{ Expression Expr }

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt is `var name [= expr];`. Init is nil when no initializer is given.
type VarStmt struct {
	Name token.Token
	Init Expr
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt is `{ stmts... }`.
type BlockStmt struct{ Statements []Stmt }

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt is `if (cond) then [else else]`. Else is nil when absent.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// ForStmt is C-style `for (init; cond; step) body`; each clause may be nil.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Step Expr
	Body Stmt
}

func (s *ForStmt) Accept(v StmtVisitor) error { return v.VisitForStmt(s) }

// FunDeclStmt is `fun name(params...) { body }`. Body is always a BlockStmt.
type FunDeclStmt struct {
	Name   token.Token
	Params []token.Token
	Body   *BlockStmt
}

func (s *FunDeclStmt) Accept(v StmtVisitor) error { return v.VisitFunDeclStmt(s) }

// CloneStmt deep-copies a statement subtree. FunctionValue stores the
// result of CloneStmt(body) rather than a reference to the declaring
// FunDeclStmt, per spec.md §3's "Function ... owns a cloned copy of its
// body statement" and the Design Notes' "Store as cloned AST subtrees
// rather than references to avoid lifetime entanglement."
func CloneStmt(s Stmt) Stmt {
	switch n := s.(type) {
	case nil:
		return nil
	case *ExprStmt:
		return &ExprStmt{Expression: CloneExpr(n.Expression)}
	case *PrintStmt:
		return &PrintStmt{Expression: CloneExpr(n.Expression)}
	case *VarStmt:
		return &VarStmt{Name: n.Name, Init: CloneExpr(n.Init)}
	case *BlockStmt:
		return cloneBlock(n)
	case *IfStmt:
		return &IfStmt{Cond: CloneExpr(n.Cond), Then: CloneStmt(n.Then), Else: CloneStmt(n.Else)}
	case *WhileStmt:
		return &WhileStmt{Cond: CloneExpr(n.Cond), Body: CloneStmt(n.Body)}
	case *ForStmt:
		return &ForStmt{
			Init: CloneStmt(n.Init),
			Cond: CloneExpr(n.Cond),
			Step: CloneExpr(n.Step),
			Body: CloneStmt(n.Body),
		}
	case *FunDeclStmt:
		return &FunDeclStmt{Name: n.Name, Params: append([]token.Token(nil), n.Params...), Body: cloneBlock(n.Body)}
	default:
		panic("ast: CloneStmt: unknown statement node")
	}
}

func cloneBlock(b *BlockStmt) *BlockStmt {
	if b == nil {
		return nil
	}
	stmts := make([]Stmt, len(b.Statements))
	for i, st := range b.Statements {
		stmts[i] = CloneStmt(st)
	}
	return &BlockStmt{Statements: stmts}
}
