//go:build !unix

package cputime

import "time"

var epoch = time.Now()

// Now falls back to wall time where getrusage is unavailable.
func Now() time.Duration { return time.Since(epoch) }
