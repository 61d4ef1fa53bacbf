/*
File    : golox/object/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the runtime value model shared by the
// environment, callable, and interpreter packages. Every Lox value -
// numbers, strings, booleans, nil, arrays, callables, and class instances -
// implements Value. object has no dependency on any other golox package so
// that environment, callable, and interpreter can all build on it without
// creating an import cycle.
package object

import (
	"fmt"
	"math"
)

// ValueType identifies the runtime category of a Value, used for error
// messages and type() queries.
type ValueType string

const (
	NumberType   ValueType = "number"
	StringType   ValueType = "string"
	BooleanType  ValueType = "boolean"
	NilType      ValueType = "nil"
	ArrayType    ValueType = "array"
	FunctionType ValueType = "function"
	ClassType    ValueType = "class"
	InstanceType ValueType = "instance"
)

// Value is implemented by every runtime datum the interpreter can produce or
// operate on.
type Value interface {
	// GetType reports the value's runtime category.
	GetType() ValueType
	// ToString renders the value the way `print` and string concatenation
	// do: no surrounding quotes on strings, "nil" for Nil, and so on.
	ToString() string
}

// Number is a double-precision floating point value. Lox has no separate
// integer type.
type Number struct {
	Value float64
}

func (n *Number) GetType() ValueType { return NumberType }

// ToString formats n the way a Lox program expects: integral values print
// without a trailing ".0", matching the convention used throughout the
// standard Lox test suite this grammar descends from.
func (n *Number) ToString() string {
	if n.Value == 0 && math.Signbit(n.Value) {
		return "-0"
	}
	if n.Value == float64(int64(n.Value)) {
		return fmt.Sprintf("%d", int64(n.Value))
	}
	return fmt.Sprintf("%v", n.Value)
}

// String is a Lox string value.
type String struct {
	Value string
}

func (s *String) GetType() ValueType { return StringType }
func (s *String) ToString() string   { return s.Value }

// Boolean is a Lox boolean value.
type Boolean struct {
	Value bool
}

func (b *Boolean) GetType() ValueType { return BooleanType }
func (b *Boolean) ToString() string   { return fmt.Sprintf("%t", b.Value) }

// Nil is Lox's singleton absent value. Nil is the only value ever compared
// equal to Nil.
type Nil struct{}

func (*Nil) GetType() ValueType { return NilType }
func (*Nil) ToString() string   { return "nil" }

// NilValue is the single shared Nil instance; callers should use it instead
// of allocating &Nil{} so that identity checks against Nil stay cheap.
var NilValue = &Nil{}

// Array is a mutable, fixed-identity sequence of Values. Two arrays are
// equal only if they are the same underlying allocation: Array[1,2] ==
// Array[1,2] built separately is false, matching Lox's reference-equality
// rule for composite values.
type Array struct {
	Elements []Value
}

func (a *Array) GetType() ValueType { return ArrayType }

func (a *Array) ToString() string {
	result := "["
	for i, elem := range a.Elements {
		if i > 0 {
			result += ", "
		}
		result += elem.ToString()
	}
	return result + "]"
}

// IsTruthy implements Lox's truthiness rule: everything is truthy except
// Nil and the boolean false.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case *Nil:
		return false
	case *Boolean:
		return val.Value
	default:
		return true
	}
}

// IsEqual implements Lox's `==`: Nil equals only Nil, Number/String/Boolean
// compare structurally, and every other value (Array, callables, instances)
// compares by reference identity.
func IsEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch av := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}
