// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastabench/internal/app"
	"fastabench/internal/report"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func run(args ...string) (int, string, string) {
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEndText(t *testing.T) {
	fa := write(t, "itest.fa", ">seq1 desc\nACGT\nACGT\n>seq2\nTT\n")

	code, out, errOut := run("-R", "2", fa)
	require.Equal(t, app.ExitOK, code, errOut)

	assert.Equal(t, 2, strings.Count(out, "2 FASTA records -- 2 allocated (0.000% waste)"))
	assert.Contains(t, out, "seconds taken for processing total")
	assert.Contains(t, out, "On average: 0 minutes,")
	assert.True(t, strings.HasPrefix(out, ". 2 FASTA records"), out)
}

func TestEndToEndJSON(t *testing.T) {
	a := write(t, "a.fa", ">a\nA\n>b\nC\n>c\nG\n")
	b := write(t, "b.fa", ">x\nACGT\n")

	code, out, errOut := run("--json", "-R", "3", a, b)
	require.Equal(t, app.ExitOK, code, errOut)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first report.File
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, a, first.File)
	assert.Equal(t, 3, first.Repeats)
	require.Len(t, first.Runs, 3)
	for _, r := range first.Runs {
		assert.Equal(t, 3, r.Records)
		assert.Equal(t, 4, r.Allocated)
		assert.InDelta(t, 25.0, r.WastePct, 1e-9)
	}
}

func TestMalformedFileFails(t *testing.T) {
	good := write(t, "good.fa", ">a\nA\n")
	bad := write(t, "bad.fa", "not fasta\n")

	code, out, errOut := run("-q", good, bad, good)
	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, errOut, "unexpected line format")
	assert.Contains(t, errOut, "Processing '"+bad+"' failed -- exiting")
	// the first file was reported before the failure, the third never ran
	assert.Equal(t, 1, strings.Count(out, "On average"))
}

func TestMissingFileFails(t *testing.T) {
	code, _, errOut := run(filepath.Join(t.TempDir(), "missing.fa"))
	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, errOut, "missing.fa")
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-R", "many", "x.fa"},
		{"--bogus"},
		{},
	} {
		code, _, errOut := run(args...)
		assert.Equal(t, app.ExitFailure, code, "%v", args)
		assert.Contains(t, errOut, "Usage:", "%v", args)
	}
}

func TestEmptyFileIsNoData(t *testing.T) {
	code, out, errOut := run("-q", write(t, "empty.fa", ""))
	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, out, " 0 FASTA records -- 1 allocated (100.000% waste)")
	assert.Contains(t, errOut, "No data processed")
}

func TestOutOfMemoryLimit(t *testing.T) {
	fa := write(t, "x.fa", ">a\n>b\n>c\n")
	code, _, errOut := run("-q", "--limit", "2", fa)
	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, errOut, "cannot grow")
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := run("-h")
	assert.Equal(t, app.ExitOK, code)
	assert.Contains(t, out, "Usage: fastabench")

	code, out, _ = run("--version")
	assert.Equal(t, app.ExitOK, code)
	assert.Contains(t, out, "fastabench version")
}
