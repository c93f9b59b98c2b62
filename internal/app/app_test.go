package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, isBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)))
	assert.True(t, isBrokenPipe(io.ErrClosedPipe))
	assert.False(t, isBrokenPipe(errors.New("other")))
	assert.False(t, isBrokenPipe(nil))
}

func TestFlushWriterFlushesEachWrite(t *testing.T) {
	var buf bytes.Buffer
	fw := flushWriter{bufio.NewWriter(&buf)}
	n, err := fw.Write([]byte("."))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, ".", buf.String())
}

func writeFA(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "x.fa")
	require.NoError(t, os.WriteFile(fn, []byte(">a\nACGT\n"), 0o644))
	return fn
}

func TestBrokenPipeExitsZero(t *testing.T) {
	var errBuf bytes.Buffer
	code := Run([]string{"-q", writeFA(t)}, failWriter{syscall.EPIPE}, &errBuf)
	assert.Equal(t, ExitOK, code)
}

func TestWriteErrorExitsThree(t *testing.T) {
	var errBuf bytes.Buffer
	code := Run([]string{"-q", writeFA(t)}, failWriter{errors.New("disk full")}, &errBuf)
	assert.Equal(t, ExitWrite, code)
	assert.Contains(t, errBuf.String(), "disk full")
}

func TestCanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	code := RunContext(ctx, []string{"-q", writeFA(t)}, &out, &errBuf)
	assert.Equal(t, ExitCanceled, code)
}
