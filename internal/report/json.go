// internal/report/json.go
package report

import (
	"io"

	"github.com/bytedance/sonic"

	"fastabench/internal/bench"
)

// Run is the wire form of bench.RunStats.
type Run struct {
	Records   int     `json:"records"`
	Allocated int     `json:"allocated"`
	WastePct  float64 `json:"waste_pct"`
	Bytes     int64   `json:"bytes"`
	WallNS    int64   `json:"wall_ns"`
	CPUNS     int64   `json:"cpu_ns"`
}

// File is the wire form of bench.FileResult.
type File struct {
	File      string `json:"file"`
	Repeats   int    `json:"repeats"`
	Runs      []Run  `json:"runs"`
	TotalWall int64  `json:"total_wall_ns"`
	TotalCPU  int64  `json:"total_cpu_ns"`
	AvgWall   int64  `json:"avg_wall_ns"`
	AvgCPU    int64  `json:"avg_cpu_ns"`
}

// FromResult converts a driver result into its wire form.
func FromResult(r bench.FileResult) File {
	f := File{
		File:      r.Path,
		Repeats:   len(r.Runs),
		Runs:      make([]Run, 0, len(r.Runs)),
		TotalWall: int64(r.TotalWall),
		TotalCPU:  int64(r.TotalCPU),
		AvgWall:   int64(r.AvgWall()),
		AvgCPU:    int64(r.AvgCPU()),
	}
	for _, s := range r.Runs {
		f.Runs = append(f.Runs, Run{
			Records:   s.Records,
			Allocated: s.Allocated,
			WastePct:  s.Waste,
			Bytes:     s.Bytes,
			WallNS:    int64(s.Wall),
			CPUNS:     int64(s.CPU),
		})
	}
	return f
}

// WriteJSON writes r as one line of JSON.
func WriteJSON(w io.Writer, r bench.FileResult) error {
	b, err := sonic.Marshal(FromResult(r))
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
