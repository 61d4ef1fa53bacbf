/*
File    : golox/interpreter/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akmaji/golox/lexer"
	"github.com/akmaji/golox/parser"
)

// run lexes, parses, resolves, and interprets src, returning everything
// `print` wrote. It fails the test immediately on any lex/parse/resolve
// error, since those are out of scope for these interpreter-level tests.
func run(t *testing.T, src string) (string, *Interpreter) {
	t.Helper()

	l := lexer.New(src)
	tokens, err := l.ScanTokens()
	require.NoError(t, err)

	p := parser.NewParser(tokens)
	statements, parseErrs := p.Parse()
	require.Empty(t, parseErrs)

	interp := New()
	var buf bytes.Buffer
	interp.SetWriter(&buf)

	resolver := NewResolver(interp)
	resolveErrs := resolver.Resolve(statements)
	require.Empty(t, resolveErrs)

	rtErr := interp.Interpret(statements)
	require.Nil(t, rtErr, "unexpected runtime error: %v", rtErr)

	return buf.String(), interp
}

func lines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestArithmeticAndPrecedence(t *testing.T) {
	out, _ := run(t, `print 1 + 2 * 3;`)
	assert.Equal(t, []string{"7"}, lines(out))
}

func TestStringConcatenationCoercesNonStringOperand(t *testing.T) {
	out, _ := run(t, `print "count: " + 3;`)
	assert.Equal(t, []string{"count: 3"}, lines(out))
}

func TestModuloOperator(t *testing.T) {
	out, _ := run(t, `print 7 % 3;`)
	assert.Equal(t, []string{"1"}, lines(out))
}

func TestCompoundAssignment(t *testing.T) {
	out, _ := run(t, `
		var x = 5;
		x += 3;
		print x;
		x -= 10;
		print x;
	`)
	assert.Equal(t, []string{"8", "-2"}, lines(out))
}

func TestArrayLiteralIndexAndAssign(t *testing.T) {
	out, _ := run(t, `
		var a = [1, 2, 3];
		print a[1];
		a[1] = 99;
		print a[1];
	`)
	assert.Equal(t, []string{"2", "99"}, lines(out))
}

func TestArrayReferenceEquality(t *testing.T) {
	out, _ := run(t, `
		var a = [1];
		var b = [1];
		print a == b;
		print a == a;
	`)
	assert.Equal(t, []string{"false", "true"}, lines(out))
}

func TestForLoopDesugaring(t *testing.T) {
	out, _ := run(t, `
		for (var i = 0; i < 3; i = i + 1) print i;
	`)
	assert.Equal(t, []string{"0", "1", "2"}, lines(out))
}

func TestBreakExitsLoop(t *testing.T) {
	out, _ := run(t, `
		for (var i = 0; i < 10; i = i + 1) {
			if (i == 3) break;
			print i;
		}
	`)
	assert.Equal(t, []string{"0", "1", "2"}, lines(out))
}

func TestContinueStillRunsForLoopIncrement(t *testing.T) {
	// Regression test for the documented "continue skips the increment"
	// bug: without running Increment on a `continue`, this loop would spin
	// forever on i == 1.
	out, _ := run(t, `
		for (var i = 0; i < 5; i = i + 1) {
			if (i == 1) continue;
			print i;
		}
	`)
	assert.Equal(t, []string{"0", "2", "3", "4"}, lines(out))
}

func TestWhileLoopBreakAndContinue(t *testing.T) {
	out, _ := run(t, `
		var i = 0;
		while (i < 5) {
			i = i + 1;
			if (i == 2) continue;
			if (i == 4) break;
			print i;
		}
	`)
	assert.Equal(t, []string{"1", "3"}, lines(out))
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, _ := run(t, `
		fun add(a, b) {
			return a + b;
		}
		print add(2, 3);
	`)
	assert.Equal(t, []string{"5"}, lines(out))
}

func TestClosureCapturesSharedMutableState(t *testing.T) {
	// The classic Lox counter-closure test: each call to the function
	// returned by makeCounter must see the *same* captured `count`, not a
	// frozen snapshot - the behavior a copy-on-capture scope cannot give.
	out, _ := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	assert.Equal(t, []string{"1", "2", "3"}, lines(out))
}

func TestClassInstantiationFieldsAndMethods(t *testing.T) {
	out, _ := run(t, `
		class Greeter {
			init(name) {
				this.name = name;
			}
			greet() {
				print "Hello, " + this.name;
			}
		}
		var g = Greeter("world");
		g.greet();
	`)
	assert.Equal(t, []string{"Hello, world"}, lines(out))
}

func TestInitAlwaysReturnsInstance(t *testing.T) {
	out, _ := run(t, `
		class Thing {
			init() {
				return;
			}
		}
		var t = Thing();
		print type(t);
	`)
	assert.Equal(t, []string{"instance"}, lines(out))
}

func TestInheritanceAndSuper(t *testing.T) {
	out, _ := run(t, `
		class Animal {
			speak() {
				print "...";
			}
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "Woof";
			}
		}
		Dog().speak();
	`)
	assert.Equal(t, []string{"...", "Woof"}, lines(out))
}

func TestBuiltins(t *testing.T) {
	out, _ := run(t, `
		print length([1, 2, 3]);
		print length("hello");
		print type(1);
		print type("x");
		print type(true);
		print type(nil);
		print str(42);
	`)
	assert.Equal(t, []string{"3", "5", "number", "string", "boolean", "nil", "42"}, lines(out))
}

func TestTypeDistinguishesFunctionClassAndInstance(t *testing.T) {
	out, _ := run(t, `
		fun f() {}
		class C {}
		print type(f);
		print type(C);
		print type(C());
		print type([1]);
	`)
	assert.Equal(t, []string{"function", "class", "instance", "array"}, lines(out))
}

func TestStringIndexingYieldsSingleCharacterSubstring(t *testing.T) {
	out, _ := run(t, `
		var s = "hello";
		print s[0];
		print s[4];
	`)
	assert.Equal(t, []string{"h", "o"}, lines(out))
}

func TestStringIndexOutOfBoundsIsRuntimeError(t *testing.T) {
	l := lexer.New(`print "hi"[5];`)
	tokens, err := l.ScanTokens()
	require.NoError(t, err)
	p := parser.NewParser(tokens)
	statements, parseErrs := p.Parse()
	require.Empty(t, parseErrs)

	interp := New()
	resolver := NewResolver(interp)
	require.Empty(t, resolver.Resolve(statements))

	rtErr := interp.Interpret(statements)
	require.NotNil(t, rtErr)
	assert.Contains(t, rtErr.Error(), "out of bounds")
}

func TestClosureResolvesAgainstDeclarationTimeBinding(t *testing.T) {
	// The classic Lox resolver regression test (spec design note on the
	// missing resolver pass): `show` must print the global `a` that was
	// visible when it was declared, not the block-local `a` that shadows it
	// afterward at the call site.
	out, _ := run(t, `
		var a = "global";
		{
			fun show() { print a; }
			var a = "block";
			show();
		}
	`)
	assert.Equal(t, []string{"global"}, lines(out))
}

func TestRuntimeErrorInInitBodyPropagatesInsteadOfReturningInstance(t *testing.T) {
	// Regression test: an `init` method always returns `this`, but only once
	// its body has finished without error - a RuntimeError raised partway
	// through must still abort construction and be reported, not be
	// swallowed by the "init always returns this" rule.
	l := lexer.New(`
		class A {
			init() {
				x;
			}
		}
		var a = A();
		print a;
	`)
	tokens, err := l.ScanTokens()
	require.NoError(t, err)
	p := parser.NewParser(tokens)
	statements, parseErrs := p.Parse()
	require.Empty(t, parseErrs)

	interp := New()
	resolver := NewResolver(interp)
	require.Empty(t, resolver.Resolve(statements))

	rtErr := interp.Interpret(statements)
	require.NotNil(t, rtErr)
	assert.Contains(t, rtErr.Error(), "Undefined variable")
}

func TestNativeFunctionStringifiesWithoutName(t *testing.T) {
	out, _ := run(t, `print clock;`)
	assert.Equal(t, []string{"<native fn>"}, lines(out))
}

func TestRuntimeErrorOnDivisionByZero(t *testing.T) {
	l := lexer.New(`print 1 / 0;`)
	tokens, err := l.ScanTokens()
	require.NoError(t, err)
	p := parser.NewParser(tokens)
	statements, parseErrs := p.Parse()
	require.Empty(t, parseErrs)

	interp := New()
	resolver := NewResolver(interp)
	require.Empty(t, resolver.Resolve(statements))

	rtErr := interp.Interpret(statements)
	require.NotNil(t, rtErr)
	assert.Contains(t, rtErr.Error(), "Division by zero")
}

func TestResolverRejectsBreakOutsideLoop(t *testing.T) {
	l := lexer.New(`break;`)
	tokens, err := l.ScanTokens()
	require.NoError(t, err)
	p := parser.NewParser(tokens)
	statements, parseErrs := p.Parse()
	require.Empty(t, parseErrs)

	interp := New()
	resolver := NewResolver(interp)
	errs := resolver.Resolve(statements)
	require.NotEmpty(t, errs)
}

func TestResolverRejectsReturnOutsideFunction(t *testing.T) {
	l := lexer.New(`return 1;`)
	tokens, err := l.ScanTokens()
	require.NoError(t, err)
	p := parser.NewParser(tokens)
	statements, parseErrs := p.Parse()
	require.Empty(t, parseErrs)

	interp := New()
	resolver := NewResolver(interp)
	errs := resolver.Resolve(statements)
	require.NotEmpty(t, errs)
}

func TestResolverRejectsThisOutsideClass(t *testing.T) {
	l := lexer.New(`print this;`)
	tokens, err := l.ScanTokens()
	require.NoError(t, err)
	p := parser.NewParser(tokens)
	statements, parseErrs := p.Parse()
	require.Empty(t, parseErrs)

	interp := New()
	resolver := NewResolver(interp)
	errs := resolver.Resolve(statements)
	require.NotEmpty(t, errs)
}

func TestNegativeZeroStringifiesWithSign(t *testing.T) {
	out, _ := run(t, `print -0.0;`)
	assert.Equal(t, []string{"-0"}, lines(out))
}
