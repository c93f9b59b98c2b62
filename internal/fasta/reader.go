// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"io"
)

// Marker starts every record's first line.
const Marker = '>'

const defaultBufSize = 64 * 1024

// Reader parses records one at a time from a stream.
//
// A Reader keeps one line of lookahead: the marker line that ended the
// previous record is held until the next call to Next. It is not safe for
// concurrent use.
type Reader struct {
	br   *bufio.Reader
	line int

	pending    string
	hasPending bool

	seq  []byte // scratch payload, cloned into each Record
	long []byte // lines longer than the bufio buffer
	err  error  // sticky: io.EOF, *ParseError or *ReadError
}

// NewReader returns a Reader with a 64 KiB line buffer. Longer lines are
// still accepted.
func NewReader(r io.Reader) *Reader { return NewReaderSize(r, defaultBufSize) }

// NewReaderSize is NewReader with an explicit buffer size. A stream
// returned by Open, or a *bufio.Reader of at least size bytes, is read
// through its existing buffer.
func NewReaderSize(r io.Reader, size int) *Reader {
	if m, ok := r.(*multiReadCloser); ok {
		r = m.Reader
	}
	return &Reader{
		br:  bufio.NewReaderSize(r, size),
		seq: make([]byte, 0, size),
	}
}

// Line returns the number of the last line consumed (1-based).
func (r *Reader) Line() int { return r.line }

// Next returns the next complete record. At the end of the stream it returns
// io.EOF, and keeps returning it. A content problem yields a *ParseError
// (errors.Is ErrMalformed), a stream failure a *ReadError (errors.Is ErrIO);
// either one ends the Reader.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}

	var header string
	if r.hasPending {
		header, r.pending, r.hasPending = r.pending, "", false
	} else {
		for {
			line, err := r.readLine()
			if err != nil {
				return r.fail(err)
			}
			if len(line) == 0 {
				continue // blank lines before the first marker
			}
			if line[0] != Marker {
				return r.fail(&ParseError{Line: r.line, Text: string(line)})
			}
			header = string(line[1:])
			break
		}
	}

	r.seq = r.seq[:0]
	for {
		line, err := r.readLine()
		if err == io.EOF {
			r.err = io.EOF
			break
		}
		if err != nil {
			return r.fail(err)
		}
		if len(line) > 0 && line[0] == Marker {
			r.pending, r.hasPending = string(line[1:]), true
			break
		}
		r.seq = append(r.seq, line...)
	}

	rec := Record{Header: header}
	if len(r.seq) > 0 {
		rec.Seq = bytes.Clone(r.seq)
	}
	return rec, nil
}

func (r *Reader) fail(err error) (Record, error) {
	r.err = err
	return Record{}, err
}

// readLine returns the next line with its terminator ("\n" or "\r\n")
// removed. The slice is only valid until the next call.
func (r *Reader) readLine() ([]byte, error) {
	line, err := r.br.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		r.long = append(r.long[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.br.ReadSlice('\n')
			r.long = append(r.long, line...)
		}
		line = r.long
	}
	switch {
	case err == io.EOF && len(line) == 0:
		return nil, io.EOF
	case err != nil && err != io.EOF:
		return nil, &ReadError{Op: "read", Line: r.line + 1, Err: err}
	}
	r.line++
	return trimEOL(line), nil
}

func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

// ReadAll parses every record in r.
func ReadAll(r io.Reader) ([]Record, error) {
	fr := NewReader(r)
	var out []Record
	for {
		rec, err := fr.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}
