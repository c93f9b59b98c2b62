// internal/fasta/open.go
package fasta

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path for reading. "-" is stdin, which Close leaves open.
// Gzip input is detected by magic number (1F 8B) or a .gz suffix.
// Failures are returned as *ReadError.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return wrapGzip(path, io.NopCloser(os.Stdin))
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Op: "open", Path: path, Err: err}
	}
	return wrapGzip(path, fh)
}

func wrapGzip(path string, rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(rc, defaultBufSize)
	sig, _ := br.Peek(2)
	gz := len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b
	// an empty input is an empty stream, whatever its name
	if len(sig) == 0 || (!gz && !strings.HasSuffix(path, ".gz")) {
		return &multiReadCloser{Reader: br, closers: []io.Closer{rc}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = rc.Close()
		return nil, &ReadError{Op: "open", Path: path, Err: err}
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}, nil
}
