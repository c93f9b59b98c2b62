// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"fastabench/internal/version"
)

func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – FASTA load benchmark\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [<OPTIONS>] <file> [<file> ...]\n\n", name)
		fmt.Fprintln(out, "Prints timing of loading and storing FASTA records.")
		fmt.Fprintln(out, "Files may be gzip-compressed; '-' reads STDIN.")

		fmt.Fprintln(out, "\nBenchmark:")
		fmt.Fprintf(out, "  -R, --repeats int       Number of times to repeat load [%s]\n", def("R"))
		fmt.Fprintln(out, "                          Time reported will be average time.")
		fmt.Fprintf(out, "      --limit int         Max record slots per load (0=unlimited) [%s]\n", def("limit"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --json              One JSON document per file [%s]\n", def("json"))
		fmt.Fprintf(out, "  -q, --quiet             No progress dots or warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --log-level string  Diagnostics on STDERR: debug | info | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "      --gops              Run a gops agent while benchmarking [%s]\n", def("gops"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -v, --version           Print version and exit")
		fmt.Fprintln(out, "  -h, --help              Show this help and exit")
	}
}
