/*
File    : golox/callable/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package callable

import "github.com/akmaji/golox/object"

// Class is a Lox class: a name, an optional single Superclass, and its own
// methods. Method lookup walks the superclass chain, so a subclass need not
// redeclare inherited methods.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) GetType() object.ValueType { return object.ClassType }
func (c *Class) ToString() string          { return c.Name }

// FindMethod looks up name on c, then on c's ancestors in order, returning
// the first match.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of the class's `init` method, or 0 if it has none -
// calling a class with no initializer always takes zero arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class (or an ancestor) defines
// `init`, runs it bound to that instance before returning it. The
// instance is returned regardless of whatever `init`'s body returns, per
// Function.Call's IsInitializer handling.
func (c *Class) Call(interp Interpreter, args []object.Value) object.Value {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		bound := init.Bind(instance)
		if result := bound.Call(interp, args); object.IsError(result) {
			return result
		}
	}
	return instance
}

// Instance is a live object built from a Class: a mutable field table plus
// the class it was constructed from, used for method dispatch.
type Instance struct {
	Class  *Class
	Fields map[string]object.Value
}

// NewInstance allocates a field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]object.Value)}
}

func (i *Instance) GetType() object.ValueType { return object.InstanceType }
func (i *Instance) ToString() string          { return i.Class.Name + " instance" }

// Get resolves a property read: an instance field shadows a method of the
// same name, matching the book's convention that fields are checked first.
func (i *Instance) Get(name string) (object.Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set assigns a field on the instance, creating it if absent. Lox instances
// are open: any field name can be assigned at any time.
func (i *Instance) Set(name string, value object.Value) {
	i.Fields[name] = value
}
