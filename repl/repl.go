/*
File    : golox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Lox interactive Read-Eval-Print Loop. The REPL
keeps a single Interpreter alive for the whole session, so a variable or
function declared on one line is still visible on the next - the same
contract a script file gets, just entered one line at a time.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akmaji/golox/interpreter"
	"github.com/akmaji/golox/lexer"
	"github.com/akmaji/golox/parser"
)

var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

const prompt = "lox> "

// Repl drives an interactive session over reader/writer.
type Repl struct {
	reader io.Reader
	writer io.Writer
	interp *interpreter.Interpreter
}

// New creates a Repl backed by an Interpreter whose `print` output goes to
// writer.
func New(reader io.Reader, writer io.Writer) *Repl {
	interp := interpreter.New()
	interp.SetWriter(writer)
	return &Repl{reader: reader, writer: writer, interp: interp}
}

// Run starts the read-eval-print loop. It returns when the user exits via
// Ctrl+D, Ctrl+C, or typing ".exit".
func (r *Repl) Run() {
	greenColor.Fprintln(r.writer, "Lox interactive REPL")
	cyanColor.Fprintln(r.writer, "Type Lox statements and press enter. Type '.exit' to quit.")
	blueColor.Fprintln(r.writer, strings.Repeat("-", 60))

	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
		Stdin:  io.NopCloser(r.reader),
		Stdout: r.writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			r.writer.Write([]byte("Goodbye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			r.writer.Write([]byte("Goodbye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(line)
	}
}

// evalLine lexes, parses, resolves, and interprets a single line of input
// against the session's persistent Interpreter, reporting any error
// without ending the session.
func (r *Repl) evalLine(line string) {
	l := lexer.New(line)
	tokens, lexErr := l.ScanTokens()
	if lexErr != nil {
		redColor.Fprintln(r.writer, lexErr.Error())
		return
	}

	p := parser.NewParser(tokens)
	statements, parseErrs := p.Parse()
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			redColor.Fprintln(r.writer, e.Error())
		}
		return
	}

	resolver := interpreter.NewResolver(r.interp)
	if resolveErrs := resolver.Resolve(statements); len(resolveErrs) > 0 {
		for _, e := range resolveErrs {
			redColor.Fprintln(r.writer, e.Error())
		}
		return
	}

	if rtErr := r.interp.Interpret(statements); rtErr != nil {
		redColor.Fprintln(r.writer, rtErr.Error())
	}
}
