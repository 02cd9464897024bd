/*
File    : lox-go/repl/repl.go
*/

// Package repl implements the Read-Eval-Print Loop for the Lox
// interpreter. The REPL provides an interactive environment where users
// can enter Lox statements or bare expressions line by line, see
// immediate results, navigate command history, and receive colored
// feedback for different kinds of output.
//
// Evaluation is routed through scanner -> parser -> interp, and a
// speculative bare-expression parse is tried first so the REPL can echo
// `1 + 2` without a trailing semicolon.
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/akashmaji946/lox-go/ast"
	"github.com/akashmaji946/lox-go/interp"
	"github.com/akashmaji946/lox-go/parser"
	"github.com/akashmaji946/lox-go/report"
	"github.com/akashmaji946/lox-go/scanner"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for one interactive session:
// banner text, version/author/license strings, the separator line, and
// the prompt/history path. These are plain strings so the REPL has no
// direct dependency on how they were sourced (config.Config, flags, ...).
type Repl struct {
	Banner      string
	Version     string
	Author      string
	Line        string
	License     string
	Prompt      string
	HistoryFile string
}

// NewRepl creates a Repl with the given cosmetic configuration.
func NewRepl(banner, version, author, line, license, prompt, historyFile string) *Repl {
	return &Repl{
		Banner:      banner,
		Version:     version,
		Author:      author,
		Line:        line,
		License:     license,
		Prompt:      prompt,
		HistoryFile: historyFile,
	}
}

// PrintBannerInfo writes the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type a statement or expression and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type 'exit' or 'quit' to leave, or press Ctrl-D")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against stdinReader/writer until `exit`,
// `quit`, or EOF. Each non-empty line resets the reporter's error flags
// before it is evaluated. Diagnostics are written to diagOut (stdout or
// stderr, per config.Config.DiagnosticsToStderr).
func (r *Repl) Start(stdinReader io.Reader, writer io.Writer, diagOut io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		HistoryFile:     r.HistoryFile,
		Stdin:           io.NopCloser(bufio.NewReader(stdinReader)),
		Stdout:          writer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	rep := report.New(diagOut)
	in := interp.New(writer, rep)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		rl.SaveHistory(line)

		rep.Reset()
		r.evalLine(line, rep, in, writer)
	}
}

// evalLine tries the REPL's speculative bare-expression parse first
// (`1 + 2` with no trailing `;`), falling back to ordinary statement
// parsing when that fails. A successfully evaluated ExpressionResult is
// echoed in yellow, quoted per value.Value.Quoted().
func (r *Repl) evalLine(line string, rep *report.Reporter, in *interp.Interpreter, writer io.Writer) {
	toks := scanner.New(line, rep).ScanTokens()
	if rep.HadParseError {
		// the scanner already reported a real (non-speculative) diagnostic
		return
	}

	if exprStmt, ok := parser.New(toks, rep).ParseExpression(); ok {
		in.Interpret([]ast.Stmt{exprStmt})
		if !rep.HadRuntimeError && in.HasLast {
			yellowColor.Fprintf(writer, "%s\n", in.Last.Quoted())
		}
		return
	}

	// The speculative attempt above stayed silent on failure (parser.silent)
	// and left the reporter untouched; reuse the same token stream for a
	// normal statement parse rather than rescanning.
	stmts := parser.New(toks, rep).Parse()
	if rep.HadParseError {
		return
	}
	in.Interpret(stmts)
}
