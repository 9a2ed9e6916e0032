// Package driver implements the scan -> parse-one -> execute loop
// described in spec.md §4.4: a batch Run over a whole source string and
// a RunInteractiveLine wrapper reused by the REPL, both aborting and
// discarding the remainder on the first error. Grounded on the teacher's
// main.go run()/runPrompt() shape, generalized to call into
// internal/scanner, internal/parser, and internal/interp instead of its
// inline scan/parse/eval calls.
package driver

import (
	"github.com/sirupsen/logrus"

	"github.com/loxscript/glox/internal/interp"
	"github.com/loxscript/glox/internal/parser"
	"github.com/loxscript/glox/internal/scanner"
	"github.com/loxscript/glox/internal/token"
)

// Driver owns one Interpreter and drives it over source text one
// statement at a time.
type Driver struct {
	interp *interp.Interpreter
	log    *logrus.Entry
}

// New returns a Driver printing to out.
func New(out interp.Printer) *Driver {
	return &Driver{
		interp: interp.New(out),
		log:    logrus.WithField("component", "driver"),
	}
}

// Reset clears all previously defined variables and functions, leaving
// natives and the print sink intact. Used between independent REPL
// sessions or test cases, not between ordinary REPL lines (the REPL
// wants state to persist line-to-line).
func (d *Driver) Reset() {
	d.interp.Clear()
}

// Run implements spec.md §4.4 exactly: scan the whole source once, then
// repeatedly parse one statement starting at the current token offset,
// advance the offset by however many tokens that statement consumed,
// and execute it immediately before parsing the next one. The first
// parse or execution error aborts the run and discards any remaining
// source; already-executed statements' effects (including `print`
// output) are not rolled back.
func (d *Driver) Run(source string) error {
	toks, err := scanner.Scan(source)
	if err != nil {
		return err
	}

	pos := 0
	for {
		if toks[pos].Type == token.EOF {
			return nil
		}
		stmt, consumed, err := parser.ParseStatement(toks, pos)
		if err != nil {
			return err
		}
		pos += consumed
		if err := d.interp.Exec(stmt); err != nil {
			return err
		}
	}
}

// RunInteractiveLine is the same operation as Run, reused by the REPL
// for a single line of input; state from earlier lines (variables,
// functions) persists across calls since they share the same
// Interpreter/Environment.
func (d *Driver) RunInteractiveLine(line string) error {
	return d.Run(line)
}
