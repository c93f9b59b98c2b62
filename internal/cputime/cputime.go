// Package cputime reads the CPU time consumed by the current process,
// the figure the benchmark reports next to wall-clock time.
package cputime

import "time"

// Since returns the CPU time used since start, a value obtained from Now.
func Since(start time.Duration) time.Duration {
	return Now() - start
}
