package app

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// isBrokenPipe reports whether writing stdout failed because the reader
// went away (e.g. `fastabench x.fa | head -1`).
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed))
}
