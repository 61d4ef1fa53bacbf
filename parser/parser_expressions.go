/*
File    : golox/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package parser

import "github.com/akmaji/golox/lexer"

// expression is the entry point for parsing any expression.
func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment parses "=", "+=" and "-=" at the lowest precedence, right
// associative. Plain "=" may target a variable, a property (Get -> Set), or
// an array slot (Index -> IndexSet). Compound assignment ("+=", "-=") is
// deliberately restricted to a bare variable target: `obj.x += 1` and
// `arr[0] += 1` are parse errors rather than silently mis-desugaring, since
// there is no single l-value expression both sides of a compound op can
// safely re-evaluate without double side effects.
func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *VariableExpr:
			return &AssignExpr{Name: target.Name, Value: value}
		case *GetExpr:
			return &SetExpr{Object: target.Object, Name: target.Name, Value: value}
		case *IndexExpr:
			return &IndexSetExpr{Object: target.Object, Index: target.Index, Value: value, Bracket: target.Bracket}
		}
		// Reported, not thrown: an invalid target doesn't invalidate the
		// rest of the parse, so this returns the left-hand expr unchanged
		// rather than panicking into synchronize.
		p.Errors = append(p.Errors, p.errorAt(equals, "Invalid assignment target.").err)
		return expr
	}

	if p.match(lexer.PLUS_EQUAL, lexer.MINUS_EQUAL) {
		op := p.previous()
		value := p.assignment()

		variable, ok := expr.(*VariableExpr)
		if !ok {
			p.Errors = append(p.Errors, p.errorAt(op, "Invalid assignment target.").err)
			return expr
		}

		binOp := lexer.NewToken(lexer.PLUS, "+", nil, op.Line)
		if op.Type == lexer.MINUS_EQUAL {
			binOp = lexer.NewToken(lexer.MINUS, "-", nil, op.Line)
		}
		return &AssignExpr{
			Name:  variable.Name,
			Value: &BinaryExpr{Left: &VariableExpr{Name: variable.Name}, Operator: binOp, Right: value},
		}
	}

	return expr
}

func (p *Parser) or() Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.and()
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR, lexer.PERCENT) {
		op := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right := p.unary()
		return &UnaryExpr{Operator: op, Right: right}
	}
	return p.call()
}

// call parses a primary expression followed by any chain of calls,
// property accesses, and index operations: f(1)(2).x[0].
func (p *Parser) call() Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = &GetExpr{Object: expr, Name: name}
		case p.match(lexer.LEFT_BRACKET):
			bracket := p.previous()
			index := p.expression()
			p.consume(lexer.RIGHT_BRACKET, "Expect ']' after index.")
			expr = &IndexExpr{Object: expr, Index: index, Bracket: bracket}
		default:
			return expr
		}
	}
}

// maxArguments bounds both call arguments and function parameters, matching
// the book's 255-argument ceiling (a byte-sized opcode operand in the
// reference bytecode VM this grammar was originally designed to compile to).
const maxArguments = 255

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArguments {
				panic(p.errorAt(p.peek(), "Can't have more than 255 arguments."))
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &CallExpr{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE):
		return &LiteralExpr{Value: false}
	case p.match(lexer.TRUE):
		return &LiteralExpr{Value: true}
	case p.match(lexer.NIL):
		return &LiteralExpr{Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &LiteralExpr{Value: p.previous().Literal}
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		return &SuperExpr{Keyword: keyword, Method: method}
	case p.match(lexer.THIS):
		return &ThisExpr{Keyword: p.previous()}
	case p.match(lexer.IDENTIFIER):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &GroupingExpr{Expression: expr}
	case p.match(lexer.LEFT_BRACKET):
		return p.arrayLiteral()
	}
	panic(p.errorAt(p.peek(), "Expect expression."))
}

func (p *Parser) arrayLiteral() Expr {
	var elements []Expr
	if !p.check(lexer.RIGHT_BRACKET) {
		for {
			elements = append(elements, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_BRACKET, "Expect ']' after array elements.")
	return &ArrayExpr{Elements: elements}
}
