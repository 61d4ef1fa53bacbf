/*
File    : golox/callable/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package callable implements Lox's two callable value kinds - user-defined
// functions/methods and classes - plus the class instances classes
// produce. It depends on object, environment, and parser (for the AST
// nodes a Function closes over), but never on interpreter: interpreter
// depends on callable, not the other way around. A Function's Call method
// still needs to run statements, so it asks for an Interpreter - a small
// interface callable declares for its own use, which the concrete
// interpreter.Interpreter satisfies structurally without either package
// importing the other.
package callable

import (
	"github.com/akmaji/golox/environment"
	"github.com/akmaji/golox/object"
	"github.com/akmaji/golox/parser"
)

// Interpreter is the minimal surface callable needs to execute a function
// body: run its statements in a fresh environment and return whatever
// control-flow Value fell out (a ReturnSignal, an error, or Nil for falling
// off the end).
type Interpreter interface {
	ExecuteBlock(body []parser.Stmt, env *environment.Environment) object.Value
}

// Callable is implemented by every Value that can appear on the left of a
// call expression: Function and Class.
type Callable interface {
	object.Value
	Arity() int
	Call(interp Interpreter, args []object.Value) object.Value
}
