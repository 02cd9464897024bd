/*
File    : lox-go/ast/ast.go
*/

// Package ast defines the Lox abstract syntax tree: a tagged set of
// expression and statement nodes dispatched through the Visitor interface.
// Each node is immutable once built by the parser and owns its children
// exclusively -- there are no shared subtrees and no cycles.
package ast

import (
	"github.com/akashmaji946/lox-go/token"
	"github.com/akashmaji946/lox-go/value"
)

// Expr is any expression AST node.
type Expr interface {
	AcceptExpr(v ExprVisitor) any
}

// Stmt is any statement AST node.
type Stmt interface {
	AcceptStmt(v StmtVisitor)
}

// ExprVisitor dispatches over every Expr variant. Implementations return an
// `any` because different traversals need different result types (the
// evaluator returns a value.Value; a future pretty-printer would return a
// string).
type ExprVisitor interface {
	VisitLiteralExpr(e *Literal) any
	VisitGroupingExpr(e *Grouping) any
	VisitUnaryExpr(e *Unary) any
	VisitBinaryExpr(e *Binary) any
	VisitTernaryExpr(e *Ternary) any
	VisitVariableExpr(e *Variable) any
	VisitAssignExpr(e *Assign) any
}

// StmtVisitor dispatches over every Stmt variant.
type StmtVisitor interface {
	VisitExpressionStmt(s *Expression)
	VisitExpressionResultStmt(s *ExpressionResult)
	VisitPrintStmt(s *Print)
	VisitVarStmt(s *Var)
	VisitBlockStmt(s *Block)
}

// Literal holds a scanned NUMBER, STRING, true, false, or nil value.
type Literal struct {
	Value value.Value
}

func (e *Literal) AcceptExpr(v ExprVisitor) any { return v.VisitLiteralExpr(e) }

// Grouping is a parenthesized sub-expression: `( expr )`.
type Grouping struct {
	Expression Expr
}

func (e *Grouping) AcceptExpr(v ExprVisitor) any { return v.VisitGroupingExpr(e) }

// Unary is a prefix operator applied to one operand: `!expr`, `-expr`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (e *Unary) AcceptExpr(v ExprVisitor) any { return v.VisitUnaryExpr(e) }

// Binary is an infix operator applied to two operands. It also represents
// the comma operator (`,`), whose left operand is evaluated and discarded.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Binary) AcceptExpr(v ExprVisitor) any { return v.VisitBinaryExpr(e) }

// Ternary is the `cond ? then : else` conditional expression.
type Ternary struct {
	Cond  Expr
	Qmark token.Token
	Then  Expr
	Colon token.Token
	Else  Expr
}

func (e *Ternary) AcceptExpr(v ExprVisitor) any { return v.VisitTernaryExpr(e) }

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

func (e *Variable) AcceptExpr(v ExprVisitor) any { return v.VisitVariableExpr(e) }

// Assign is `name = value`.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) AcceptExpr(v ExprVisitor) any { return v.VisitAssignExpr(e) }

// Expression is a bare expression statement whose result is discarded.
type Expression struct {
	Expression Expr
}

func (s *Expression) AcceptStmt(v StmtVisitor) { v.VisitExpressionStmt(s) }

// ExpressionResult wraps a bare expression parsed in REPL mode so its value
// can be echoed back to the user instead of discarded.
type ExpressionResult struct {
	Expression Expr
}

func (s *ExpressionResult) AcceptStmt(v StmtVisitor) { v.VisitExpressionResultStmt(s) }

// Print is a `print expr;` statement.
type Print struct {
	Expression Expr
}

func (s *Print) AcceptStmt(v StmtVisitor) { v.VisitPrintStmt(s) }

// Var is a `var name = initializer;` or `var name;` declaration.
// Initializer is nil when the declaration has no initializer, which binds
// the name to Lox's uninitialized sentinel rather than to nil.
type Var struct {
	Name        token.Token
	Initializer Expr
}

func (s *Var) AcceptStmt(v StmtVisitor) { v.VisitVarStmt(s) }

// Block is a `{ ... }` statement list executed in a fresh child scope.
type Block struct {
	Statements []Stmt
}

func (s *Block) AcceptStmt(v StmtVisitor) { v.VisitBlockStmt(s) }
