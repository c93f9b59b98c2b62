// internal/logging/log.go
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

// Levels accepted by --log-level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelError = "error"
)

// Setup routes logx diagnostics to dst at the given level, plain-encoded.
// It may be called more than once; the last call wins.
func Setup(dst io.Writer, level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	logx.MustSetup(logx.LogConf{
		ServiceName: "fastabench",
		Mode:        "console",
		Encoding:    "plain",
		Level:       level,
	})
	logx.DisableStat()
	logx.SetWriter(logx.NewWriter(dst))
	logx.SetLevel(lvl)
	return nil
}

func parseLevel(level string) (uint32, error) {
	switch strings.ToLower(level) {
	case LevelDebug:
		return logx.DebugLevel, nil
	case LevelInfo:
		return logx.InfoLevel, nil
	case LevelError, "":
		return logx.ErrorLevel, nil
	}
	return 0, fmt.Errorf("invalid --log-level %q (want debug | info | error)", level)
}

// Warnf prints a user-facing warning unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
