// Package log provides named, leveled loggers for the CLI and renderer,
// backed by go-logging. All loggers share one backend so the output sink
// and verbosity are set once, process-wide.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level selects how chatty the loggers are. Render progress sits at Notice,
// the default; -v raises to Info and -vv to Debug.
type Level int

const (
	Error Level = iota
	Warning
	Notice
	Info
	Debug
)

var levels = map[Level]logging.Level{
	Error:   logging.ERROR,
	Warning: logging.WARNING,
	Notice:  logging.NOTICE,
	Info:    logging.INFO,
	Debug:   logging.DEBUG,
}

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

// Logger is the slice of go-logging the tracer uses.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Noticef(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for the named subsystem.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetOutput points every logger at sink and resets the level to Notice.
func SetOutput(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(levels[Notice], "")
	logging.SetBackend(backend)
}

// SetLevel adjusts verbosity for every logger.
func SetLevel(level Level) {
	backend.SetLevel(levels[level], "")
}

func init() {
	SetOutput(os.Stderr)
}
