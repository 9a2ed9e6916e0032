package interp

import (
	"bufio"
	"io"
	"strings"
)

// StdoutPrinter flushes each `print` line immediately to an underlying
// writer (process stdout in normal operation).
type StdoutPrinter struct {
	w *bufio.Writer
}

// NewStdoutPrinter wraps w for line-buffered print output.
func NewStdoutPrinter(w io.Writer) *StdoutPrinter {
	return &StdoutPrinter{w: bufio.NewWriter(w)}
}

func (p *StdoutPrinter) Println(s string) {
	p.w.WriteString(s)
	p.w.WriteByte('\n')
	p.w.Flush()
}

// BufferPrinter accumulates print output in memory instead of flushing
// it, for "test mode" per spec.md §5.
type BufferPrinter struct {
	lines []string
}

// NewBufferPrinter returns an empty BufferPrinter.
func NewBufferPrinter() *BufferPrinter {
	return &BufferPrinter{}
}

func (p *BufferPrinter) Println(s string) {
	p.lines = append(p.lines, s)
}

// Lines returns every line printed so far, in order.
func (p *BufferPrinter) Lines() []string {
	return p.lines
}

// String joins all printed lines with newlines, trailing newline included
// when there is at least one line.
func (p *BufferPrinter) String() string {
	if len(p.lines) == 0 {
		return ""
	}
	return strings.Join(p.lines, "\n") + "\n"
}
