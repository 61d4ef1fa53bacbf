/*
File    : golox/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Lox interpreter. It provides two
modes of operation:
 1. REPL mode (no arguments): interactive read-eval-print loop
 2. File mode (one argument): execute a single Lox source file

Exit codes follow the convention this CLI was specified against: 0 on a
clean run, 64 on a usage error (wrong argument count), 65 on an uncaught
lex or parse error, 70 on an uncaught runtime error, and 74 if the given
file cannot be read.
*/
package main

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/akmaji/golox/interpreter"
	"github.com/akmaji/golox/lexer"
	"github.com/akmaji/golox/parser"
	"github.com/akmaji/golox/repl"
)

const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitNoInput  = 74
)

var redColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches on argument count and returns the process exit code,
// without calling os.Exit itself - kept separate from main so the CLI
// contract (§6.4's 0/64/65/70/74 table) can be exercised directly by tests.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	switch len(args) {
	case 1:
		repl.New(stdin, stdout).Run()
		return exitOK
	case 2:
		return runFile(args[1], stdout, stderr)
	default:
		redColor.Fprintln(stderr, "Usage: golox [script]")
		return exitUsage
	}
}

// runFile reads and executes a single source file, translating each stage
// of failure into the process exit code the CLI contract assigns it.
func runFile(path string, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(stderr, "Could not read file '%s': %v\n", path, err)
		return exitNoInput
	}

	l := lexer.New(string(source))
	tokens, lexErr := l.ScanTokens()
	if lexErr != nil {
		redColor.Fprintln(stderr, lexErr.Error())
		return exitDataErr
	}

	p := parser.NewParser(tokens)
	statements, parseErrs := p.Parse()
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			redColor.Fprintln(stderr, e.Error())
		}
		return exitDataErr
	}

	interp := interpreter.New()
	interp.SetWriter(stdout)
	resolver := interpreter.NewResolver(interp)
	if resolveErrs := resolver.Resolve(statements); len(resolveErrs) > 0 {
		for _, e := range resolveErrs {
			redColor.Fprintln(stderr, e.Error())
		}
		return exitDataErr
	}

	if rtErr := interp.Interpret(statements); rtErr != nil {
		redColor.Fprintln(stderr, rtErr.Error())
		return exitSoftware
	}
	return exitOK
}
