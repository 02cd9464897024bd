/*
File    : lox-go/interp/evaluator.go
*/
package interp

import (
	"fmt"
	"io"

	"github.com/akashmaji946/lox-go/ast"
	"github.com/akashmaji946/lox-go/report"
	"github.com/akashmaji946/lox-go/token"
	"github.com/akashmaji946/lox-go/value"
)

// Interpreter walks the AST via visitor dispatch (ast.ExprVisitor /
// ast.StmtVisitor), evaluating expressions to value.Value and executing
// statements for effect. It holds an output writer for `print` and the
// current lexical scope, and dispatches each node kind to its own visitor
// method rather than a single monolithic switch.
type Interpreter struct {
	Globals *Environment
	env     *Environment
	rep     *report.Reporter
	Out     io.Writer

	// Last holds the most recent ExpressionResult value for the REPL to
	// echo, and HasLast reports whether one was produced this statement
	// list (a plain Print/Var/Expression/Block run leaves it unset).
	Last    value.Value
	HasLast bool
}

// New creates an Interpreter with a fresh global environment, writing
// `print` output to out and diagnostics through rep.
func New(out io.Writer, rep *report.Reporter) *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{Globals: globals, env: globals, rep: rep, Out: out}
}

// Interpret executes a parsed program. It stops at the first runtime
// error, reporting it through the shared reporter; a runtime error never
// panics out to the caller, while any other panic is re-raised.
func (in *Interpreter) Interpret(statements []ast.Stmt) {
	in.HasLast = false
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(*RuntimeError); ok {
				rerr.Report(in.rep)
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range statements {
		in.execute(stmt)
	}
}

func (in *Interpreter) execute(stmt ast.Stmt) {
	stmt.AcceptStmt(in)
}

func (in *Interpreter) evaluate(expr ast.Expr) value.Value {
	return expr.AcceptExpr(in).(value.Value)
}

// --- statement visitors ---

func (in *Interpreter) VisitExpressionStmt(s *ast.Expression) {
	in.evaluate(s.Expression)
}

func (in *Interpreter) VisitExpressionResultStmt(s *ast.ExpressionResult) {
	in.Last = in.evaluate(s.Expression)
	in.HasLast = true
}

func (in *Interpreter) VisitPrintStmt(s *ast.Print) {
	v := in.evaluate(s.Expression)
	fmt.Fprintln(in.Out, stringify(v))
}

func (in *Interpreter) VisitVarStmt(s *ast.Var) {
	if s.Initializer != nil {
		in.env.Define(s.Name.Lexeme, in.evaluate(s.Initializer))
		return
	}
	in.env.DefineUninitialized(s.Name.Lexeme)
}

func (in *Interpreter) VisitBlockStmt(s *ast.Block) {
	in.executeBlock(s.Statements, NewEnvironment(in.env))
}

// executeBlock runs statements in env, guaranteeing the caller's previous
// environment is restored on every exit path -- normal completion or a
// RuntimeError panic unwinding through. The deferred restore runs before
// the panic continues propagating to Interpret's top-level recover.
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()
	for _, stmt := range statements {
		in.execute(stmt)
	}
}

// --- expression visitors ---

func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) any {
	return e.Value
}

func (in *Interpreter) VisitGroupingExpr(e *ast.Grouping) any {
	return in.evaluate(e.Expression)
}

func (in *Interpreter) VisitVariableExpr(e *ast.Variable) any {
	v, rerr := in.env.Get(e.Name)
	if rerr != nil {
		panic(rerr)
	}
	return v
}

func (in *Interpreter) VisitAssignExpr(e *ast.Assign) any {
	v := in.evaluate(e.Value)
	if rerr := in.env.Assign(e.Name, v); rerr != nil {
		panic(rerr)
	}
	return v
}

func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) any {
	right := in.evaluate(e.Right)
	switch e.Operator.Type {
	case token.BANG:
		return value.Bool(!right.IsTruthy())
	case token.MINUS:
		checkNumberOperand(e.Operator, right)
		return value.Number(-right.AsNumber())
	}
	panic(NewRuntimeError(e.Operator, "Unknown unary operator."))
}

func (in *Interpreter) VisitTernaryExpr(e *ast.Ternary) any {
	if in.evaluate(e.Cond).IsTruthy() {
		return in.evaluate(e.Then)
	}
	return in.evaluate(e.Else)
}

func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) any {
	// Left is always evaluated first and unconditionally, even for `,`,
	// whose whole point is observing the left operand's side effects
	// before discarding its value.
	left := in.evaluate(e.Left)
	right := in.evaluate(e.Right)

	switch e.Operator.Type {
	case token.COMMA:
		return right
	case token.EQUAL_EQUAL:
		return value.Bool(isEqual(left, right))
	case token.BANG_EQUAL:
		return value.Bool(!isEqual(left, right))
	case token.GREATER:
		checkComparisonOperands(e.Operator, left, right)
		return value.Bool(compareValues(left, right) > 0)
	case token.GREATER_EQUAL:
		checkComparisonOperands(e.Operator, left, right)
		return value.Bool(compareValues(left, right) >= 0)
	case token.LESS:
		checkComparisonOperands(e.Operator, left, right)
		return value.Bool(compareValues(left, right) < 0)
	case token.LESS_EQUAL:
		checkComparisonOperands(e.Operator, left, right)
		return value.Bool(compareValues(left, right) <= 0)
	case token.MINUS:
		checkNumberOperands(e.Operator, left, right)
		return value.Number(left.AsNumber() - right.AsNumber())
	case token.STAR:
		checkNumberOperands(e.Operator, left, right)
		return value.Number(left.AsNumber() * right.AsNumber())
	case token.SLASH:
		checkNumberOperands(e.Operator, left, right)
		if right.AsNumber() == 0 {
			panic(NewRuntimeError(e.Operator, "Division by zero."))
		}
		return value.Number(left.AsNumber() / right.AsNumber())
	case token.PLUS:
		return addOperands(e.Operator, left, right)
	}
	panic(NewRuntimeError(e.Operator, "Unknown binary operator."))
}

// addOperands implements Lox's strict `+` rule: both Number or both
// String, never auto-stringifying a mixed pair.
func addOperands(op token.Token, left, right value.Value) value.Value {
	if left.Kind() == value.KindNumber && right.Kind() == value.KindNumber {
		return value.Number(left.AsNumber() + right.AsNumber())
	}
	if left.Kind() == value.KindString && right.Kind() == value.KindString {
		return value.String(left.AsString() + right.AsString())
	}
	panic(NewRuntimeError(op, "Operands must be two numbers or two strings."))
}

// compareValues returns -1/0/1 for left relative to right. Callers must
// have already verified (via checkComparisonOperands) that both are
// Number or both are String.
func compareValues(left, right value.Value) int {
	if left.Kind() == value.KindNumber {
		a, b := left.AsNumber(), right.AsNumber()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	a, b := left.AsString(), right.AsString()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// isEqual: different tags are never equal; same-tag equality defers to
// value.Value.Equals (structural, NaN != NaN via native float comparison).
func isEqual(a, b value.Value) bool {
	return a.Equals(b)
}

func checkNumberOperand(op token.Token, v value.Value) {
	if v.Kind() != value.KindNumber {
		panic(NewRuntimeError(op, "Operand must be a number."))
	}
}

func checkNumberOperands(op token.Token, a, b value.Value) {
	if a.Kind() != value.KindNumber || b.Kind() != value.KindNumber {
		panic(NewRuntimeError(op, "Operands must be numbers."))
	}
}

func checkComparisonOperands(op token.Token, a, b value.Value) {
	bothNumber := a.Kind() == value.KindNumber && b.Kind() == value.KindNumber
	bothString := a.Kind() == value.KindString && b.Kind() == value.KindString
	if !bothNumber && !bothString {
		panic(NewRuntimeError(op, "Operands must be two numbers or two strings."))
	}
}

// stringify renders a value the way Lox's `print` statement does: no
// surrounding quotes around strings. REPL echo instead uses value.Value's
// Quoted() form.
func stringify(v value.Value) string {
	return v.String()
}
