// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/gops/agent"

	"fastabench/internal/bench"
	"fastabench/internal/cli"
	"fastabench/internal/logging"
	"fastabench/internal/report"
	"fastabench/internal/version"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1 // usage error, failed file, or no data
	ExitWrite    = 3
	ExitCanceled = 130
)

// flushWriter makes progress dots visible while a load is running.
type flushWriter struct{ w *bufio.Writer }

func (f flushWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, f.w.Flush()
}

func finish(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); isBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitWrite
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("fastabench")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return finish(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitFailure
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fastabench version %s\n", version.Version)
		return finish(outw, stderr, ExitOK)
	}

	if err := logging.Setup(stderr, opts.LogLevel); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	if opts.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			logging.Warnf(stderr, opts.Quiet, "gops agent not started: %v", err)
		} else {
			defer agent.Close()
		}
	}

	bo := bench.Options{Repeats: opts.Repeats, Limit: opts.Limit}
	if !opts.Quiet && !opts.JSON {
		bo.Progress = flushWriter{outw}
	}

	total := 0
	for _, path := range opts.Files {
		res, err := bench.Repeat(parent, path, bo, func(_ int, s bench.RunStats) {
			if !opts.JSON {
				_ = report.RunLine(outw, s)
			}
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return finish(outw, stderr, ExitCanceled)
			}
			_ = outw.Flush()
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			_, _ = fmt.Fprintf(stderr, "Error: Processing '%s' failed -- exiting\n", path)
			return ExitFailure
		}

		if opts.JSON {
			err = report.WriteJSON(outw, res)
		} else {
			err = report.WriteText(outw, res)
		}
		if isBrokenPipe(err) {
			return ExitOK
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitWrite
		}
		total += res.Records()
	}

	if total == 0 {
		_ = outw.Flush()
		_, _ = fmt.Fprintln(stderr, "No data processed -- provide the name of a file on the command line")
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitFailure
	}
	return finish(outw, stderr, ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
