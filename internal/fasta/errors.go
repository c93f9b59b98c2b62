// internal/fasta/errors.go
package fasta

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrMalformed classifies content that does not follow the marker/line layout.
	ErrMalformed = errors.New("fasta: unexpected line format")
	// ErrIO classifies failures of the underlying stream (open or read).
	ErrIO = errors.New("fasta: i/o error")
)

const maxErrText = 40

// ParseError reports a line that does not fit the record structure.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	txt := e.Text
	if len(txt) > maxErrText {
		cut := maxErrText
		for cut > 0 && !utf8.RuneStart(txt[cut]) {
			cut--
		}
		txt = txt[:cut] + "..."
	}
	return fmt.Sprintf("fasta: line %d: unexpected line format: %q", e.Line, txt)
}

func (e *ParseError) Unwrap() error { return ErrMalformed }

// ReadError wraps an error from opening, reading or closing the input stream.
type ReadError struct {
	Op   string // "open", "read" or "close"
	Path string // empty when the stream was not opened by path
	Line int    // line being read when the error occurred, 0 if none
	Err  error
}

func (e *ReadError) Error() string {
	var b strings.Builder
	b.WriteString("fasta: ")
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteByte(' ')
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *ReadError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrIO) match any ReadError.
func (e *ReadError) Is(target error) bool { return target == ErrIO }
