// Package log sets up the process-wide charmbracelet logger from
// configuration.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.Default()

// ParseLevel maps a level name to a log.Level, defaulting to info for an empty
// string.
func ParseLevel(level string) (log.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return log.InfoLevel, nil
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("unknown log level %q: %w", level, err)
	}
	return parsed, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// InitLog builds the default logger. Output goes to path when it is set,
// otherwise to stdout. The returned closer releases the log file, if any.
func InitLog(appName, level, path string) (*log.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	}

	l := New(out, appName, lvl)
	SetDefault(l)
	return l, closer, nil
}

// New returns a logger in the house format: prefixed with the app name, with
// timestamps and caller locations.
func New(out io.Writer, appName string, level log.Level) *log.Logger {
	l := log.New(out)
	l.SetPrefix(appName)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)
	l.SetReportCaller(true)
	l.SetLevel(level)
	return l
}

// SetDefault replaces the logger returned by Default and used by the package
// level helpers.
func SetDefault(l *log.Logger) {
	logger = l
	log.SetDefault(l)
}

func Default() *log.Logger {
	return logger
}

func Error(format string, args ...any) {
	logger.Errorf(format, args...)
}

func Info(format string, args ...any) {
	logger.Infof(format, args...)
}

func Debug(format string, args ...any) {
	logger.Debugf(format, args...)
}
