package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastabench/internal/bench"
)

func sample() bench.FileResult {
	run := bench.RunStats{Records: 5, Allocated: 8, Waste: 37.5, Bytes: 40, Wall: 2 * time.Second, CPU: time.Second}
	return bench.FileResult{
		Path:      "x.fa",
		Runs:      []bench.RunStats{run, run},
		TotalWall: 4 * time.Second,
		TotalCPU:  2 * time.Second,
	}
}

func TestRunLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunLine(&buf, sample().Runs[0]))
	assert.Equal(t, " 5 FASTA records -- 8 allocated (37.500% waste)\n", buf.String())
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample()))
	assert.Equal(t,
		"4.000000 seconds taken for processing total (cpu 2.000000)\n"+
			"On average: 0 minutes, 2.000000 second per run\n",
		buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample()))

	var got File
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, FromResult(sample()), got)
	assert.Equal(t, 2, got.Repeats)
	assert.Equal(t, int64(2*time.Second), got.AvgWall)
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}
