/*
File    : golox/interpreter/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package interpreter

import (
	"fmt"

	"github.com/akmaji/golox/callable"
	"github.com/akmaji/golox/environment"
	"github.com/akmaji/golox/object"
	"github.com/akmaji/golox/parser"
)

// execute runs a single statement and returns object.NilValue on normal
// completion, or one of the four control-flow signal kinds that must stop
// the enclosing statement sequence.
func (i *Interpreter) execute(stmt parser.Stmt) object.Value {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		return firstIfSignal(i.eval(s.Expression))
	case *parser.PrintStmt:
		return i.executePrint(s)
	case *parser.VarStmt:
		return i.executeVar(s)
	case *parser.BlockStmt:
		return i.ExecuteBlock(s.Statements, environment.New(i.env))
	case *parser.IfStmt:
		return i.executeIf(s)
	case *parser.WhileStmt:
		return i.executeWhile(s)
	case *parser.FunctionStmt:
		i.env.Define(s.Name.Lexeme, &callable.Function{Declaration: s, Closure: i.env})
		return object.NilValue
	case *parser.ReturnStmt:
		return i.executeReturn(s)
	case *parser.ClassStmt:
		return i.executeClass(s)
	case *parser.BreakStmt:
		return &object.BreakSignal{}
	case *parser.ContinueStmt:
		return &object.ContinueSignal{}
	}
	panic(fmt.Sprintf("interpreter: unhandled statement type %T", stmt))
}

// firstIfSignal discards a plain expression-statement's value unless it is
// itself a control-flow signal (only possible if evaluating it produced a
// RuntimeError), in which case the signal must keep propagating.
func firstIfSignal(v object.Value) object.Value {
	if object.IsSignal(v) {
		return v
	}
	return object.NilValue
}

func (i *Interpreter) executePrint(s *parser.PrintStmt) object.Value {
	value := i.eval(s.Expression)
	if object.IsSignal(value) {
		return value
	}
	fmt.Fprintln(i.Writer, stringify(value))
	return object.NilValue
}

func (i *Interpreter) executeVar(s *parser.VarStmt) object.Value {
	var value object.Value = object.NilValue
	if s.Initializer != nil {
		value = i.eval(s.Initializer)
		if object.IsSignal(value) {
			return value
		}
	}
	i.env.Define(s.Name.Lexeme, value)
	return object.NilValue
}

func (i *Interpreter) executeIf(s *parser.IfStmt) object.Value {
	cond := i.eval(s.Condition)
	if object.IsSignal(cond) {
		return cond
	}
	if object.IsTruthy(cond) {
		return i.execute(s.Then)
	}
	if s.Else != nil {
		return i.execute(s.Else)
	}
	return object.NilValue
}

// executeWhile runs Body while Condition is truthy. A BreakSignal exits the
// loop and is swallowed here (it must not propagate past its own loop). A
// ContinueSignal is also swallowed, but - critically - Increment still runs
// before the next condition check, exactly as it would have if the body had
// completed normally. This is the fix for the desugared `for` loop's
// documented bug: without an explicit increment slot, a `continue` would
// jump straight back to the condition and skip the update expression
// forever.
func (i *Interpreter) executeWhile(s *parser.WhileStmt) object.Value {
	for {
		cond := i.eval(s.Condition)
		if object.IsSignal(cond) {
			return cond
		}
		if !object.IsTruthy(cond) {
			return object.NilValue
		}

		result := i.execute(s.Body)
		switch result.GetType() {
		case object.BreakType:
			return object.NilValue
		case object.ReturnType, object.ErrorType:
			return result
		case object.ContinueType:
			// fall through to run Increment below
		}

		if s.Increment != nil {
			if incResult := i.eval(s.Increment); object.IsSignal(incResult) {
				return incResult
			}
		}
	}
}

func (i *Interpreter) executeReturn(s *parser.ReturnStmt) object.Value {
	var value object.Value = object.NilValue
	if s.Value != nil {
		value = i.eval(s.Value)
		if object.IsSignal(value) {
			return value
		}
	}
	return &object.ReturnSignal{Value: value}
}

func (i *Interpreter) executeClass(s *parser.ClassStmt) object.Value {
	var superclass *callable.Class
	if s.Superclass != nil {
		superVal := i.lookUpVariable(s.Superclass.Name, s.Superclass)
		if object.IsSignal(superVal) {
			return superVal
		}
		sc, ok := superVal.(*callable.Class)
		if !ok {
			return runtimeError(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, object.NilValue)

	classEnv := i.env
	if superclass != nil {
		classEnv = environment.New(i.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*callable.Function)
	for _, methodDecl := range s.Methods {
		methods[methodDecl.Name.Lexeme] = &callable.Function{
			Declaration:   methodDecl,
			Closure:       classEnv,
			IsInitializer: methodDecl.Name.Lexeme == "init",
		}
	}

	class := &callable.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	i.env.Assign(s.Name.Lexeme, class)
	return object.NilValue
}
