/*
File    : golox/interpreter/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package interpreter

import (
	"fmt"

	"github.com/akmaji/golox/callable"
	"github.com/akmaji/golox/lexer"
	"github.com/akmaji/golox/object"
	"github.com/akmaji/golox/parser"
)

// eval evaluates a single expression to an object.Value. Like execute, the
// result may be a control-flow signal (only *object.RuntimeError is
// reachable from expression position) that the caller must check before
// using the value.
func (i *Interpreter) eval(expr parser.Expr) object.Value {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return literalValue(e.Value)
	case *parser.GroupingExpr:
		return i.eval(e.Expression)
	case *parser.VariableExpr:
		return i.lookUpVariable(e.Name, e)
	case *parser.AssignExpr:
		return i.evalAssign(e)
	case *parser.UnaryExpr:
		return i.evalUnary(e)
	case *parser.BinaryExpr:
		return i.evalBinary(e)
	case *parser.LogicalExpr:
		return i.evalLogical(e)
	case *parser.CallExpr:
		return i.evalCall(e)
	case *parser.GetExpr:
		return i.evalGet(e)
	case *parser.SetExpr:
		return i.evalSet(e)
	case *parser.ThisExpr:
		return i.lookUpVariable(e.Keyword, e)
	case *parser.SuperExpr:
		return i.evalSuper(e)
	case *parser.ArrayExpr:
		return i.evalArray(e)
	case *parser.IndexExpr:
		return i.evalIndex(e)
	case *parser.IndexSetExpr:
		return i.evalIndexSet(e)
	}
	panic(fmt.Sprintf("interpreter: unhandled expression type %T", expr))
}

func literalValue(v interface{}) object.Value {
	switch val := v.(type) {
	case nil:
		return object.NilValue
	case float64:
		return &object.Number{Value: val}
	case string:
		return &object.String{Value: val}
	case bool:
		return &object.Boolean{Value: val}
	default:
		return object.NilValue
	}
}

// lookUpVariable resolves a name either through the resolver's precomputed
// distance (a local) or by walking up from Globals (a global or an
// undeclared-at-resolve-time reference, which is itself a runtime error if
// never defined).
func (i *Interpreter) lookUpVariable(name lexer.Token, expr parser.Expr) object.Value {
	if distance, ok := i.locals[expr]; ok {
		if v := i.env.GetAt(distance, name.Lexeme); v != nil {
			return v
		}
		return runtimeError(name.Line, "Undefined variable '%s'.", name.Lexeme)
	}
	if v, ok := i.Globals.Get(name.Lexeme); ok {
		return v
	}
	return runtimeError(name.Line, "Undefined variable '%s'.", name.Lexeme)
}

func (i *Interpreter) evalAssign(e *parser.AssignExpr) object.Value {
	value := i.eval(e.Value)
	if object.IsSignal(value) {
		return value
	}

	if distance, ok := i.locals[e]; ok {
		i.env.AssignAt(distance, e.Name.Lexeme, value)
		return value
	}
	if i.Globals.Assign(e.Name.Lexeme, value) {
		return value
	}
	return runtimeError(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
}

func (i *Interpreter) evalUnary(e *parser.UnaryExpr) object.Value {
	right := i.eval(e.Right)
	if object.IsSignal(right) {
		return right
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		num, ok := right.(*object.Number)
		if !ok {
			return runtimeError(e.Operator.Line, "Operand must be a number.")
		}
		return &object.Number{Value: -num.Value}
	case lexer.BANG:
		return &object.Boolean{Value: !object.IsTruthy(right)}
	}
	panic("interpreter: unreachable unary operator " + string(e.Operator.Type))
}

func (i *Interpreter) evalLogical(e *parser.LogicalExpr) object.Value {
	left := i.eval(e.Left)
	if object.IsSignal(left) {
		return left
	}
	if e.Operator.Type == lexer.OR {
		if object.IsTruthy(left) {
			return left
		}
	} else if !object.IsTruthy(left) {
		return left
	}
	return i.eval(e.Right)
}

func (i *Interpreter) evalBinary(e *parser.BinaryExpr) object.Value {
	left := i.eval(e.Left)
	if object.IsSignal(left) {
		return left
	}
	right := i.eval(e.Right)
	if object.IsSignal(right) {
		return right
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		return evalAdd(left, right, e.Operator.Line)
	case lexer.MINUS:
		return numericBinary(left, right, e.Operator.Line, func(a, b float64) float64 { return a - b })
	case lexer.STAR:
		return numericBinary(left, right, e.Operator.Line, func(a, b float64) float64 { return a * b })
	case lexer.SLASH:
		return i.evalDivide(left, right, e.Operator.Line)
	case lexer.PERCENT:
		return i.evalModulo(left, right, e.Operator.Line)
	case lexer.GREATER:
		return numericCompare(left, right, e.Operator.Line, func(a, b float64) bool { return a > b })
	case lexer.GREATER_EQUAL:
		return numericCompare(left, right, e.Operator.Line, func(a, b float64) bool { return a >= b })
	case lexer.LESS:
		return numericCompare(left, right, e.Operator.Line, func(a, b float64) bool { return a < b })
	case lexer.LESS_EQUAL:
		return numericCompare(left, right, e.Operator.Line, func(a, b float64) bool { return a <= b })
	case lexer.EQUAL_EQUAL:
		return &object.Boolean{Value: object.IsEqual(left, right)}
	case lexer.BANG_EQUAL:
		return &object.Boolean{Value: !object.IsEqual(left, right)}
	}
	panic("interpreter: unreachable binary operator " + string(e.Operator.Type))
}

// evalAdd implements `+` overloading: two numbers add, two strings
// concatenate, two arrays concatenate into a new array, and a string paired
// with any other value coerces the other side through stringify rather than
// erroring - so `"count: " + 3` works the way script authors expect without
// an explicit cast.
func evalAdd(left, right object.Value, line int) object.Value {
	if ln, ok := left.(*object.Number); ok {
		if rn, ok := right.(*object.Number); ok {
			return &object.Number{Value: ln.Value + rn.Value}
		}
	}
	if la, ok := left.(*object.Array); ok {
		if ra, ok := right.(*object.Array); ok {
			combined := make([]object.Value, 0, len(la.Elements)+len(ra.Elements))
			combined = append(combined, la.Elements...)
			combined = append(combined, ra.Elements...)
			return &object.Array{Elements: combined}
		}
	}
	_, leftIsString := left.(*object.String)
	_, rightIsString := right.(*object.String)
	if leftIsString || rightIsString {
		return &object.String{Value: stringify(left) + stringify(right)}
	}
	return runtimeError(line, "Operands must be two numbers, two strings, or two arrays.")
}

func numericBinary(left, right object.Value, line int, op func(a, b float64) float64) object.Value {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return runtimeError(line, "Operands must be numbers.")
	}
	return &object.Number{Value: op(ln.Value, rn.Value)}
}

func numericCompare(left, right object.Value, line int, op func(a, b float64) bool) object.Value {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return runtimeError(line, "Operands must be numbers.")
	}
	return &object.Boolean{Value: op(ln.Value, rn.Value)}
}

func (i *Interpreter) evalDivide(left, right object.Value, line int) object.Value {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return runtimeError(line, "Operands must be numbers.")
	}
	if rn.Value == 0 {
		return runtimeError(line, "Division by zero.")
	}
	return &object.Number{Value: ln.Value / rn.Value}
}

func (i *Interpreter) evalModulo(left, right object.Value, line int) object.Value {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return runtimeError(line, "Operands must be numbers.")
	}
	if rn.Value == 0 {
		return runtimeError(line, "Division by zero.")
	}
	return &object.Number{Value: floatMod(ln.Value, rn.Value)}
}

func (i *Interpreter) evalCall(e *parser.CallExpr) object.Value {
	callee := i.eval(e.Callee)
	if object.IsSignal(callee) {
		return callee
	}

	args := make([]object.Value, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		arg := i.eval(argExpr)
		if object.IsSignal(arg) {
			return arg
		}
		args = append(args, arg)
	}

	fn, ok := callee.(callable.Callable)
	if !ok {
		return runtimeError(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return runtimeError(e.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(i, args)
}

func (i *Interpreter) evalGet(e *parser.GetExpr) object.Value {
	obj := i.eval(e.Object)
	if object.IsSignal(obj) {
		return obj
	}
	instance, ok := obj.(*callable.Instance)
	if !ok {
		return runtimeError(e.Name.Line, "Only instances have properties.")
	}
	v, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		return runtimeError(e.Name.Line, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return v
}

func (i *Interpreter) evalSet(e *parser.SetExpr) object.Value {
	obj := i.eval(e.Object)
	if object.IsSignal(obj) {
		return obj
	}
	instance, ok := obj.(*callable.Instance)
	if !ok {
		return runtimeError(e.Name.Line, "Only instances have fields.")
	}

	value := i.eval(e.Value)
	if object.IsSignal(value) {
		return value
	}
	instance.Set(e.Name.Lexeme, value)
	return value
}

func (i *Interpreter) evalSuper(e *parser.SuperExpr) object.Value {
	distance := i.locals[e]
	superVal := i.env.GetAt(distance, "super")
	superclass, ok := superVal.(*callable.Class)
	if !ok {
		return runtimeError(e.Keyword.Line, "Superclass not found.")
	}

	thisVal := i.env.GetAt(distance-1, "this")
	instance, ok := thisVal.(*callable.Instance)
	if !ok {
		return runtimeError(e.Keyword.Line, "'this' not found for super call.")
	}

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return runtimeError(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance)
}

func (i *Interpreter) evalArray(e *parser.ArrayExpr) object.Value {
	elements := make([]object.Value, 0, len(e.Elements))
	for _, elemExpr := range e.Elements {
		v := i.eval(elemExpr)
		if object.IsSignal(v) {
			return v
		}
		elements = append(elements, v)
	}
	return &object.Array{Elements: elements}
}

// evalIndex applies `[]` to either an array (yielding the element) or a
// string (yielding its single-character substring at that position); any
// other operand is a runtime error.
func (i *Interpreter) evalIndex(e *parser.IndexExpr) object.Value {
	obj := i.eval(e.Object)
	if object.IsSignal(obj) {
		return obj
	}

	idx := i.eval(e.Index)
	if object.IsSignal(idx) {
		return idx
	}
	idxNum, ok := idx.(*object.Number)
	if !ok {
		return runtimeError(e.Bracket.Line, "Array index must be a number.")
	}
	pos := int(idxNum.Value)

	switch target := obj.(type) {
	case *object.Array:
		if pos < 0 || pos >= len(target.Elements) {
			return runtimeError(e.Bracket.Line, "Array index out of bounds.")
		}
		return target.Elements[pos]
	case *object.String:
		if pos < 0 || pos >= len(target.Value) {
			return runtimeError(e.Bracket.Line, "String index out of bounds.")
		}
		return &object.String{Value: string(target.Value[pos])}
	default:
		return runtimeError(e.Bracket.Line, "Only arrays and strings can be indexed.")
	}
}

func (i *Interpreter) evalIndexSet(e *parser.IndexSetExpr) object.Value {
	obj := i.eval(e.Object)
	if object.IsSignal(obj) {
		return obj
	}
	arr, ok := obj.(*object.Array)
	if !ok {
		return runtimeError(e.Bracket.Line, "Only arrays can be indexed.")
	}

	idx := i.eval(e.Index)
	if object.IsSignal(idx) {
		return idx
	}
	idxNum, ok := idx.(*object.Number)
	if !ok {
		return runtimeError(e.Bracket.Line, "Array index must be a number.")
	}

	value := i.eval(e.Value)
	if object.IsSignal(value) {
		return value
	}

	pos := int(idxNum.Value)
	if pos < 0 || pos >= len(arr.Elements) {
		return runtimeError(e.Bracket.Line, "Array index out of bounds.")
	}
	arr.Elements[pos] = value
	return value
}
