/*
File    : golox/callable/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package callable

import (
	"fmt"

	"github.com/akmaji/golox/environment"
	"github.com/akmaji/golox/object"
	"github.com/akmaji/golox/parser"
)

// Function is a user-defined function or method: its declaration plus the
// Environment it closed over at definition time. Capturing Closure by
// pointer (never by copy) is what lets a function see later mutations made
// to its defining scope through any other alias of it.
type Function struct {
	Declaration   *parser.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

func (f *Function) GetType() object.ValueType { return object.FunctionType }

func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Bind returns a copy of f whose closure additionally defines "this" as
// instance, used when a method is looked up off an Instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Call runs the function body in a fresh environment nested under its
// closure, with parameters bound to args positionally. An `init` method
// always returns the bound instance regardless of what its body returns,
// including a bare `return;`.
func (f *Function) Call(interp Interpreter, args []object.Value) object.Value {
	callEnv := environment.New(f.Closure)
	for i, param := range f.Declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	result := interp.ExecuteBlock(f.Declaration.Body, callEnv)

	if object.IsError(result) {
		return result
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this")
	}
	if ret, ok := result.(*object.ReturnSignal); ok {
		return ret.Value
	}
	return object.NilValue
}

// NativeFunction wraps a host-implemented builtin (clock, length, ...) as a
// Callable.
type NativeFunction struct {
	Name     string
	Params   int
	Function func(args []object.Value) object.Value
}

func (n *NativeFunction) GetType() object.ValueType { return object.FunctionType }
func (n *NativeFunction) ToString() string          { return "<native fn>" }
func (n *NativeFunction) Arity() int                { return n.Params }

func (n *NativeFunction) Call(_ Interpreter, args []object.Value) object.Value {
	return n.Function(args)
}
