/*
File    : golox/interpreter/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package interpreter

import (
	"time"

	"github.com/akmaji/golox/callable"
	"github.com/akmaji/golox/environment"
	"github.com/akmaji/golox/object"
)

// registerBuiltins defines the small native standard library every Lox
// program starts with: clock, length, type, and str. Each is a
// callable.NativeFunction so it participates in call expressions exactly
// like a user-defined function, arity check included.
func registerBuiltins(globals *environment.Environment) {
	globals.Define("clock", &callable.NativeFunction{
		Name:   "clock",
		Params: 0,
		Function: func(_ []object.Value) object.Value {
			return &object.Number{Value: float64(time.Now().UnixNano()) / 1e9}
		},
	})

	globals.Define("length", &callable.NativeFunction{
		Name:   "length",
		Params: 1,
		Function: func(args []object.Value) object.Value {
			switch v := args[0].(type) {
			case *object.Array:
				return &object.Number{Value: float64(len(v.Elements))}
			case *object.String:
				return &object.Number{Value: float64(len(v.Value))}
			default:
				return runtimeError(0, "length() expects an array or a string.")
			}
		},
	})

	globals.Define("type", &callable.NativeFunction{
		Name:   "type",
		Params: 1,
		Function: func(args []object.Value) object.Value {
			return &object.String{Value: string(args[0].GetType())}
		},
	})

	globals.Define("str", &callable.NativeFunction{
		Name:   "str",
		Params: 1,
		Function: func(args []object.Value) object.Value {
			return &object.String{Value: args[0].ToString()}
		},
	})
}
