/*
File    : lox-go/report/report.go
*/

// Package report implements the process-wide diagnostic reporter shared by
// the scanner, parser, and evaluator. It tracks the two sticky flags the
// driver uses to pick an exit code: HadParseError and HadRuntimeError.
package report

import (
	"fmt"
	"io"

	"github.com/akashmaji946/lox-go/token"
)

// Reporter accumulates diagnostics for a single run (one file execution, or
// one REPL iteration) and writes them to Out as they occur.
type Reporter struct {
	Out             io.Writer
	HadParseError   bool
	HadRuntimeError bool
}

// New creates a Reporter that writes diagnostics to w.
func New(w io.Writer) *Reporter {
	return &Reporter{Out: w}
}

// Reset clears both error flags. The REPL calls this before evaluating each
// input line so
// a previous iteration's error doesn't leak into the next one's exit logic.
func (r *Reporter) Reset() {
	r.HadParseError = false
	r.HadRuntimeError = false
}

// ScanError reports a scanner-stage diagnostic with no token context.
func (r *Reporter) ScanError(line int, message string) {
	r.report(line, "", message)
	r.HadParseError = true
}

// ParseError reports a parser-stage diagnostic anchored at tok.
func (r *Reporter) ParseError(tok token.Token, message string) {
	var where string
	if tok.Type == token.EOF {
		where = "at end"
	} else {
		where = fmt.Sprintf("at '%s'", tok.Lexeme)
	}
	r.report(tok.Line, where, message)
	r.HadParseError = true
}

// RuntimeError reports an evaluator-stage diagnostic: the message first,
// then the offending line.
func (r *Reporter) RuntimeError(tok token.Token, message string) {
	fmt.Fprintf(r.Out, "%s\n[line %d]\n", message, tok.Line)
	r.HadRuntimeError = true
}

// report prints a uniform "[line L] Error WHERE: MESSAGE" diagnostic.
func (r *Reporter) report(line int, where, message string) {
	if where == "" {
		fmt.Fprintf(r.Out, "[line %d] Error: %s\n", line, message)
	} else {
		fmt.Fprintf(r.Out, "[line %d] Error %s: %s\n", line, where, message)
	}
}
