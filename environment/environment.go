/*
File    : golox/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements Lox's lexical scope chain.
//
// Unlike the teacher's Scope, which snapshots variable bindings with
// Scope.Copy() when a closure captures its defining scope, Environment
// always shares the enclosing scope by pointer. A closure that captures an
// Environment sees every later mutation other code makes through that same
// chain - required for a counter-style closure (increment a shared counter
// across repeated calls) to behave correctly, which a copy-based scope
// cannot do.
package environment

import "github.com/akmaji/golox/object"

// Environment binds variable names to values in a single lexical scope and
// chains to its Enclosing scope for lookups that miss locally.
type Environment struct {
	values    map[string]object.Value
	Enclosing *Environment
}

// New creates a fresh Environment nested inside enclosing. Pass nil to
// create the global scope.
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]object.Value), Enclosing: enclosing}
}

// Define binds name to value in this scope, shadowing any binding of the
// same name in an enclosing scope. Redeclaring a name already defined in
// this exact scope simply replaces it, matching `var x = 1; var x = 2;` at
// the top level.
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get resolves name by walking the scope chain outward from e. ok is false
// if name is bound nowhere in the chain.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, false
}

// Assign updates the nearest existing binding of name in the scope chain.
// ok is false if name is bound nowhere in the chain, in which case no
// binding is created.
func (e *Environment) Assign(name string, value object.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return false
}

// ancestor walks distance scopes outward from e. The resolver guarantees
// distance is always reachable for every call site that uses it.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name directly from the scope distance levels outward,
// bypassing the walk-until-found search. The interpreter calls this only
// for variable reads the resolver has already bound to a local slot; global
// reads go through Get instead.
func (e *Environment) GetAt(distance int, name string) object.Value {
	v, ok := e.ancestor(distance).values[name]
	if !ok {
		return nil
	}
	return v
}

// AssignAt writes value into the scope distance levels outward, mirroring
// GetAt.
func (e *Environment) AssignAt(distance int, name string, value object.Value) {
	e.ancestor(distance).values[name] = value
}
