// internal/bench/bench.go
package bench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"fastabench/internal/cputime"
	"fastabench/internal/fasta"
	"fastabench/internal/store"
)

// ProgressEvery is how many records pass between progress dots.
const ProgressEvery = 10000

// Options configures a benchmark run.
type Options struct {
	Repeats  int       // <= 0 is treated as 1
	Progress io.Writer // nil disables progress dots
	Limit    int       // store slot limit, 0 = unlimited
}

// RunStats describes one repetition over one file.
type RunStats struct {
	Records   int
	Allocated int
	Waste     float64
	Bytes     int64
	Wall      time.Duration
	CPU       time.Duration
}

// FileResult aggregates the repetitions over one file.
type FileResult struct {
	Path      string
	Runs      []RunStats
	TotalWall time.Duration
	TotalCPU  time.Duration
}

// Records is the record count of the last repetition.
func (r FileResult) Records() int {
	if len(r.Runs) == 0 {
		return 0
	}
	return r.Runs[len(r.Runs)-1].Records
}

// AvgWall is the mean wall time per repetition.
func (r FileResult) AvgWall() time.Duration { return avg(r.TotalWall, len(r.Runs)) }

// AvgCPU is the mean CPU time per repetition.
func (r FileResult) AvgCPU() time.Duration { return avg(r.TotalCPU, len(r.Runs)) }

func avg(total time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return total / time.Duration(n)
}

// FileError reports which file and repetition failed.
type FileError struct {
	Path string
	Rep  int // 1-based
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s (repetition %d): %v", e.Path, e.Rep, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// LoadFile runs one repetition: it parses path to the end into a fresh
// store, then disposes of the store. The stream is closed on every path.
func LoadFile(path string, opt Options) (RunStats, error) {
	return load(path, func() (io.ReadCloser, error) { return fasta.Open(path) }, opt)
}

// opener yields a fresh stream for one repetition.
type opener func() (io.ReadCloser, error)

// stdinOpener reads (and decompresses) stdin once so that every
// repetition parses the same bytes.
func stdinOpener() (opener, error) {
	rc, err := fasta.Open("-")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &fasta.ReadError{Op: "read", Path: "-", Err: err}
	}
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}, nil
}

func load(path string, open opener, opt Options) (stats RunStats, err error) {
	rc, err := open()
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = &fasta.ReadError{Op: "close", Path: path, Err: cerr}
		}
	}()

	st := store.New(
		store.WithLimit(opt.Limit),
		store.WithGrowHook(func(from, to int) {
			logx.Debugf("store grow %s: %d -> %d slots", path, from, to)
		}),
	)

	startWall := time.Now()
	startCPU := cputime.Now()

	if err := fill(fasta.NewReader(rc), st, opt.Progress); err != nil {
		st.Clear()
		return stats, err
	}

	stats = RunStats{
		Records:   st.Len(),
		Allocated: st.Cap(),
		Waste:     st.Waste(),
		Bytes:     st.Bytes(),
		Wall:      time.Since(startWall),
		CPU:       cputime.Since(startCPU),
	}
	released := 0
	st.Drain(func(fasta.Record) { released++ })
	logx.Debugf("%s: released %d records", path, released)
	return stats, nil
}

func fill(r *fasta.Reader, st *store.Store, progress io.Writer) error {
	for {
		if progress != nil && st.Len()%ProgressEvery == 0 {
			_, _ = io.WriteString(progress, ".")
		}
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := st.Append(rec); err != nil {
			return err
		}
	}
}

// Repeat runs LoadFile opt.Repeats times over path. Stdin ("-") is read
// into memory once and replayed for each repetition. The context is checked
// between repetitions; the first error aborts the remaining ones.
// each, when non-nil, is called after every successful repetition.
func Repeat(ctx context.Context, path string, opt Options, each func(rep int, s RunStats)) (FileResult, error) {
	n := opt.Repeats
	if n <= 0 {
		n = 1
	}
	res := FileResult{Path: path, Runs: make([]RunStats, 0, n)}
	open := opener(func() (io.ReadCloser, error) { return fasta.Open(path) })
	if path == "-" {
		var err error
		if open, err = stdinOpener(); err != nil {
			return res, &FileError{Path: path, Rep: 1, Err: err}
		}
	}
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		s, err := load(path, open, opt)
		if err != nil {
			return res, &FileError{Path: path, Rep: i, Err: err}
		}
		logx.Infof("%s rep %d/%d: %d records, %d slots, wall %s, cpu %s",
			path, i, n, s.Records, s.Allocated, s.Wall, s.CPU)
		res.Runs = append(res.Runs, s)
		res.TotalWall += s.Wall
		res.TotalCPU += s.CPU
		if each != nil {
			each(i, s)
		}
	}
	return res, nil
}

// SplitMinutes splits d into whole minutes and the remaining seconds.
func SplitMinutes(d time.Duration) (int, float64) {
	secs := d.Seconds()
	m := int(secs / 60)
	return m, secs - float64(60*m)
}
