// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Files []string

	// Benchmark
	Repeats int
	Limit   int

	// Output
	JSON     bool
	Quiet    bool
	LogLevel string
	Gops     bool

	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError and the tool's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}

func register(fs *flag.FlagSet, o *Options, help *bool) {
	fs.IntVar(&o.Repeats, "R", 1, "number of times to repeat the load [1]")
	fs.IntVar(&o.Repeats, "repeats", 1, "alias of -R")
	fs.IntVar(&o.Limit, "limit", 0, "max record slots per load (0 = unlimited) [0]")

	fs.BoolVar(&o.JSON, "json", false, "emit one JSON document per file [false]")
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress progress dots and warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.StringVar(&o.LogLevel, "log-level", "error", "diagnostics level: debug | info | error [error]")
	fs.BoolVar(&o.Gops, "gops", false, "run a gops diagnostics agent while benchmarking [false]")

	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(help, "h", false, "show this help message [false]")
	fs.BoolVar(help, "help", false, "show this help message [false]")
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and file arguments may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	register(fs, &opt, &help)

	flagArgs, posArgs := splitArgs(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	// anything the FlagSet did not consume (e.g. after "--") is a file too
	posArgs = append(posArgs, fs.Args()...)

	files, err := expandPaths(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Files = files
	return opt, validate(opt)
}

func validate(o Options) error {
	if o.Repeats < 1 {
		return fmt.Errorf("cannot use repeats requested %d (must be ≥ 1)", o.Repeats)
	}
	if o.Limit < 0 {
		return errors.New("--limit must be ≥ 0")
	}
	switch strings.ToLower(o.LogLevel) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("invalid --log-level %q", o.LogLevel)
	}
	return nil
}
