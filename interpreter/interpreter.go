/*
File    : golox/interpreter/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interpreter tree-walks a parsed Lox program. Interpreter.eval and
// Interpreter.execute never return a Go error for control flow: instead,
// every evaluation produces exactly one object.Value, and the four
// sentinel kinds - *object.ReturnSignal, *object.BreakSignal,
// *object.ContinueSignal, *object.RuntimeError - are threaded back up
// through statement sequencing by a simple GetType() check, mirroring the
// teacher's eval_statements.go (`IsError(result)`,
// `result.(*std.ReturnValue)`, `result.GetType() == std.BreakType`)
// generalized to cover Lox's break/continue/return/runtime-error quartet in
// one uniform mechanism instead of one ad hoc check per kind.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/akmaji/golox/callable"
	"github.com/akmaji/golox/environment"
	"github.com/akmaji/golox/object"
	"github.com/akmaji/golox/parser"
)

// Interpreter holds all state needed to execute a parsed program: the
// global scope, the current scope, the resolver's variable-distance table,
// and the stream print writes to.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	locals  map[parser.Expr]int
	Writer  io.Writer
}

// New creates an Interpreter with the standard library of builtins already
// defined in its global scope and Writer defaulted to os.Stdout.
func New() *Interpreter {
	globals := environment.New(nil)
	interp := &Interpreter{
		Globals: globals,
		env:     globals,
		locals:  make(map[parser.Expr]int),
		Writer:  os.Stdout,
	}
	registerBuiltins(globals)
	return interp
}

// SetWriter redirects `print` output, used by tests to capture it and by
// the REPL and the file runner to send it to their own writer.
func (i *Interpreter) SetWriter(w io.Writer) {
	i.Writer = w
}

// Resolve records that expr's name is bound `distance` scopes outward from
// wherever it is evaluated. Called exclusively by Resolver.
func (i *Interpreter) Resolve(expr parser.Expr, distance int) {
	i.locals[expr] = distance
}

// Interpret runs a full program's statements in sequence. It returns the
// first *object.RuntimeError encountered, or nil on a clean run. A
// top-level `break`/`continue`/`return` can never reach here uncaught,
// since the resolver rejects them before execution starts.
func (i *Interpreter) Interpret(statements []parser.Stmt) *object.RuntimeError {
	for _, stmt := range statements {
		result := i.execute(stmt)
		if rtErr, ok := result.(*object.RuntimeError); ok {
			return rtErr
		}
	}
	return nil
}

// ExecuteBlock runs body with env as the current scope (callers pass a
// freshly created child scope), restoring the interpreter's previous scope
// before returning. It implements
// callable.Interpreter so Function.Call can invoke it without callable
// importing this package. The returned Value is whatever signal stopped
// the block (ReturnSignal, BreakSignal, ContinueSignal, RuntimeError) or
// object.NilValue if every statement ran to completion.
func (i *Interpreter) ExecuteBlock(body []parser.Stmt, env *environment.Environment) object.Value {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range body {
		if result := i.execute(stmt); result != nil && object.IsSignal(result) {
			return result
		}
	}
	return object.NilValue
}

var _ callable.Interpreter = (*Interpreter)(nil)

// runtimeError builds a *object.RuntimeError at line, used throughout
// eval_expressions.go and eval_statements.go instead of a Go error return.
func runtimeError(line int, format string, args ...interface{}) *object.RuntimeError {
	return &object.RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}
