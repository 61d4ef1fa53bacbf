/*
File    : golox/object/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_ToString_DropsTrailingZeroForIntegralValues(t *testing.T) {
	assert.Equal(t, "3", (&Number{Value: 3}).ToString())
	assert.Equal(t, "3.5", (&Number{Value: 3.5}).ToString())
	assert.Equal(t, "0", (&Number{Value: 0}).ToString())
}

func TestNumber_ToString_KeepsSignOnNegativeZero(t *testing.T) {
	assert.Equal(t, "-0", (&Number{Value: math.Copysign(0, -1)}).ToString())
}

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(NilValue))
	assert.False(t, IsTruthy(&Boolean{Value: false}))
	assert.True(t, IsTruthy(&Boolean{Value: true}))
	assert.True(t, IsTruthy(&Number{Value: 0}))
	assert.True(t, IsTruthy(&String{Value: ""}))
}

func TestIsEqual_StructuralForPrimitives(t *testing.T) {
	assert.True(t, IsEqual(&Number{Value: 1}, &Number{Value: 1}))
	assert.True(t, IsEqual(&String{Value: "a"}, &String{Value: "a"}))
	assert.True(t, IsEqual(NilValue, NilValue))
	assert.False(t, IsEqual(&Number{Value: 1}, &String{Value: "1"}))
}

func TestIsEqual_ReferenceForArrays(t *testing.T) {
	a := &Array{Elements: []Value{&Number{Value: 1}}}
	b := &Array{Elements: []Value{&Number{Value: 1}}}
	assert.False(t, IsEqual(a, b), "separately built arrays with equal contents must not be == equal")
	assert.True(t, IsEqual(a, a))
}

func TestIsSignal(t *testing.T) {
	assert.True(t, IsSignal(&ReturnSignal{Value: NilValue}))
	assert.True(t, IsSignal(&BreakSignal{}))
	assert.True(t, IsSignal(&ContinueSignal{}))
	assert.True(t, IsSignal(&RuntimeError{Line: 1, Message: "boom"}))
	assert.False(t, IsSignal(&Number{Value: 1}))
}
