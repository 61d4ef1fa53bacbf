/*
File    : golox/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a token stream into an abstract syntax tree and
// exposes the recursive-descent Parser that builds it. Expression and
// statement nodes are plain tagged structs dispatched on with a type switch
// in the interpreter and resolver; no visitor interface is required.
//
// Every *pointer* to an expression node is usable as a map key, which the
// resolver relies on to attach a scope depth to a specific syntactic
// occurrence of a variable, "this", or "super" reference.
package parser

import "github.com/akmaji/golox/lexer"

// Expr is the marker interface implemented by every expression node.
type Expr interface {
	exprNode()
}

// Stmt is the marker interface implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// LiteralExpr wraps a constant value produced directly by the lexer
// (numbers, strings, true/false/nil).
type LiteralExpr struct {
	Value interface{}
}

// VariableExpr reads the current value bound to Name.
type VariableExpr struct {
	Name lexer.Token
}

// AssignExpr stores Value under Name in the environment chain.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

// UnaryExpr applies a prefix operator ('-' or '!') to Right.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

// BinaryExpr applies an infix operator to Left and Right, evaluated in that
// order.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// LogicalExpr implements short-circuiting "and"/"or".
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// GroupingExpr is a parenthesized sub-expression, kept distinct from its
// inner expression only so the AST mirrors the source shape.
type GroupingExpr struct {
	Expression Expr
}

// CallExpr invokes Callee with Arguments. Paren is the closing ')' token,
// kept for error reporting at the call site.
type CallExpr struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

// GetExpr reads a property or bound method named Name off Object.
type GetExpr struct {
	Object Expr
	Name   lexer.Token
}

// SetExpr assigns Value to the property named Name on Object.
type SetExpr struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

// ThisExpr resolves the receiver inside a method body.
type ThisExpr struct {
	Keyword lexer.Token
}

// SuperExpr resolves Method on the enclosing class's superclass.
type SuperExpr struct {
	Keyword lexer.Token
	Method  lexer.Token
}

// ArrayExpr constructs a fresh array from Elements, evaluated left to right.
type ArrayExpr struct {
	Elements []Expr
}

// IndexExpr reads Object[Index]. Bracket is the opening '[' token, kept for
// error reporting.
type IndexExpr struct {
	Object  Expr
	Index   Expr
	Bracket lexer.Token
}

// IndexSetExpr assigns Value to Object[Index].
type IndexSetExpr struct {
	Object  Expr
	Index   Expr
	Value   Expr
	Bracket lexer.Token
}

func (*LiteralExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
func (*ThisExpr) exprNode()     {}
func (*SuperExpr) exprNode()    {}
func (*ArrayExpr) exprNode()    {}
func (*IndexExpr) exprNode()    {}
func (*IndexSetExpr) exprNode() {}

// ExpressionStmt evaluates Expression for its side effects and discards the
// result.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates Expression and writes its stringified form.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares Name in the current scope, bound to the value of
// Initializer (nil means "bind nil").
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// BlockStmt executes Statements in a fresh child environment.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt executes Then when Condition is truthy, else Else (which may be
// nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt repeatedly executes Body while Condition is truthy. Increment,
// when non-nil, is the desugared `for` loop's update expression: it runs
// after Body on every iteration, including one that exits via `continue`,
// so a `continue` inside a `for` body never skips the update.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
	Increment Expr
}

// FunctionStmt declares a named function (or, inside a ClassStmt, a
// method).
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// ReturnStmt unwinds the current function call, carrying Value (nil means
// "return nil").
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

// ClassStmt declares a class named Name, optionally extending Superclass,
// with the given Methods.
type ClassStmt struct {
	Name       lexer.Token
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

// BreakStmt exits the nearest enclosing loop.
type BreakStmt struct {
	Keyword lexer.Token
}

// ContinueStmt jumps to the next iteration of the nearest enclosing loop.
type ContinueStmt struct {
	Keyword lexer.Token
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ClassStmt) stmtNode()      {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}
