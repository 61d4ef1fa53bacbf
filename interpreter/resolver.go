/*
File    : golox/interpreter/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package interpreter

import (
	"fmt"

	"github.com/akmaji/golox/parser"
)

// Resolver is a static analysis pass that runs over the AST once, before
// any statement is executed. It computes, for every variable reference,
// `this` expression, and `super` expression, how many enclosing scopes
// separate the reference from the scope where the name was declared - the
// "distance" the environment chain must walk at runtime - and records it
// in an Interpreter's locals table via Resolve.
//
// The reference Lox implementation this grammar is modeled on never ships a
// resolver: variables are looked up by walking the environment chain at
// every read, which is both slower and, for closures that shadow an
// already-captured name, observably wrong. Adding this pass fixes that, and
// doubles as the place static checks (return outside a function, `this`
// outside a method, break/continue outside a loop) belong, since none of
// them can be safely deferred to runtime without risking partial side
// effects before the error surfaces.
type Resolver struct {
	interp *Interpreter
	scopes []map[string]bool

	currentFunction functionKind
	currentClass    classKind
	loopDepth       int

	Errors []*ResolveError
}

type functionKind int

const (
	noFunction functionKind = iota
	inFunction
	inMethod
	inInitializer
)

type classKind int

const (
	noClass classKind = iota
	inClass
	inSubclass
)

// ResolveError reports a statically-detectable misuse: `return` outside a
// function, `this`/`super` outside a method, `super` in a class with no
// superclass, a class inheriting from itself, `break`/`continue` outside a
// loop, a local name declared twice in one scope, or a local variable
// reading its own not-yet-initialized declaration.
type ResolveError struct {
	Line    int
	Message string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("[linha %d] Erro: %s", e.Line, e.Message)
}

// NewResolver creates a Resolver that will record scope distances into
// interp.
func NewResolver(interp *Interpreter) *Resolver {
	return &Resolver{interp: interp}
}

// Resolve walks every top-level statement. Callers should treat any
// recorded Errors as fatal and not proceed to Interpret.
func (r *Resolver) Resolve(statements []parser.Stmt) []*ResolveError {
	r.resolveStmts(statements)
	return r.Errors
}

func (r *Resolver) resolveStmts(statements []parser.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks name as present but not yet usable in the innermost scope,
// catching `var a = a;` at the point `a` is read in its own initializer.
func (r *Resolver) declare(name string, line int) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name]; ok {
		r.errorf(line, "Already a variable named '%s' in this scope.", name)
	}
	scope[name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

func (r *Resolver) errorf(line int, format string, args ...interface{}) {
	r.Errors = append(r.Errors, &ResolveError{Line: line, Message: fmt.Sprintf(format, args...)})
}

// resolveLocal searches the scope stack from innermost outward for name,
// recording the distance on the interpreter the first time it finds a
// declaring scope. A miss leaves the reference to be resolved as global at
// runtime.
func (r *Resolver) resolveLocal(expr parser.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.interp.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) resolveStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *parser.PrintStmt:
		r.resolveExpr(s.Expression)
	case *parser.VarStmt:
		r.declare(s.Name.Lexeme, s.Name.Line)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name.Lexeme)
	case *parser.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *parser.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *parser.WhileStmt:
		r.resolveExpr(s.Condition)
		r.loopDepth++
		r.resolveStmt(s.Body)
		r.loopDepth--
		if s.Increment != nil {
			r.resolveExpr(s.Increment)
		}
	case *parser.FunctionStmt:
		r.declare(s.Name.Lexeme, s.Name.Line)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s, inFunction)
	case *parser.ReturnStmt:
		if r.currentFunction == noFunction {
			r.errorf(s.Keyword.Line, "Can't return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *parser.ClassStmt:
		r.resolveClass(s)
	case *parser.BreakStmt:
		if r.loopDepth == 0 {
			r.errorf(s.Keyword.Line, "Can't use 'break' outside of a loop.")
		}
	case *parser.ContinueStmt:
		if r.loopDepth == 0 {
			r.errorf(s.Keyword.Line, "Can't use 'continue' outside of a loop.")
		}
	}
}

func (r *Resolver) resolveFunction(fn *parser.FunctionStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Lexeme, param.Line)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *Resolver) resolveClass(stmt *parser.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = inClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(stmt.Name.Lexeme, stmt.Name.Line)
	r.define(stmt.Name.Lexeme)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.errorf(stmt.Superclass.Name.Line, "A class can't inherit from itself.")
		}
		r.currentClass = inSubclass
		r.resolveExpr(stmt.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range stmt.Methods {
		kind := inMethod
		if method.Name.Lexeme == "init" {
			kind = inInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()
	if stmt.Superclass != nil {
		r.endScope()
	}
}

func (r *Resolver) resolveExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.VariableExpr:
		if len(r.scopes) > 0 {
			if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
				r.errorf(e.Name.Line, "Can't read local variable '%s' in its own initializer.", e.Name.Lexeme)
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)
	case *parser.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)
	case *parser.UnaryExpr:
		r.resolveExpr(e.Right)
	case *parser.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *parser.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *parser.GroupingExpr:
		r.resolveExpr(e.Expression)
	case *parser.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *parser.GetExpr:
		r.resolveExpr(e.Object)
	case *parser.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *parser.ThisExpr:
		if r.currentClass == noClass {
			r.errorf(e.Keyword.Line, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")
	case *parser.SuperExpr:
		if r.currentClass == noClass {
			r.errorf(e.Keyword.Line, "Can't use 'super' outside of a class.")
		} else if r.currentClass != inSubclass {
			r.errorf(e.Keyword.Line, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, "super")
	case *parser.ArrayExpr:
		for _, elem := range e.Elements {
			r.resolveExpr(elem)
		}
	case *parser.IndexExpr:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Index)
	case *parser.IndexSetExpr:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Index)
		r.resolveExpr(e.Value)
	case *parser.LiteralExpr:
		// no subexpressions, nothing to resolve
	}
}
