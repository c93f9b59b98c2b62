// internal/report/text.go
package report

import (
	"fmt"
	"io"

	"fastabench/internal/bench"
)

// RunLine is the per-repetition summary line.
func RunLine(w io.Writer, s bench.RunStats) error {
	_, err := fmt.Fprintf(w, " %d FASTA records -- %d allocated (%.3f%% waste)\n",
		s.Records, s.Allocated, s.Waste)
	return err
}

// WriteText prints the totals and per-run average for one file.
func WriteText(w io.Writer, r bench.FileResult) error {
	if _, err := fmt.Fprintf(w, "%f seconds taken for processing total (cpu %f)\n",
		r.TotalWall.Seconds(), r.TotalCPU.Seconds()); err != nil {
		return err
	}
	m, sec := bench.SplitMinutes(r.AvgWall())
	_, err := fmt.Fprintf(w, "On average: %d minutes, %f second per run\n", m, sec)
	return err
}
