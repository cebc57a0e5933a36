package log

import (
	"fmt"
	"io"
	"log"
	"strings"
)

type LogLevel int

const (
	TRACE LogLevel = 5
	DEBUG LogLevel = 10
	INFO  LogLevel = 20
	WARN  LogLevel = 30
	ERROR LogLevel = 40
)

func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "trace"
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

var (
	trace    *log.Logger
	dbg      *log.Logger
	info     *log.Logger
	warn     *log.Logger
	err      *log.Logger
	minLevel LogLevel = TRACE
)

// Init routes all loggers to w. Nothing is logged until Init is called with a
// non-nil writer. Closing w is the caller's business.
func Init(w io.Writer, level LogLevel) {
	trace = nil
	dbg = nil
	info = nil
	warn = nil
	err = nil

	minLevel = level
	if w == nil {
		return
	}
	flags := log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile
	trace = log.New(w, "TRACE ", flags)
	dbg = log.New(w, "DEBUG ", flags)
	info = log.New(w, "INFO  ", flags)
	warn = log.New(w, "WARN  ", flags)
	err = log.New(w, "ERROR ", flags)
}

func ParseLevel(value string) (LogLevel, error) {
	switch strings.ToLower(value) {
	case "trace":
		return TRACE, nil
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "err", "error":
		return ERROR, nil
	}
	return 0, fmt.Errorf("%s: invalid log level", value)
}

type Logger interface {
	Tracef(string, ...any)
	Debugf(string, ...any)
	Infof(string, ...any)
	Warnf(string, ...any)
	Errorf(string, ...any)
}

type logger struct {
	name      string
	calldepth int
}

// NewLogger returns a logger that prefixes every message with [name].
// calldepth is passed to log.Logger.Output; use 2 when calling the returned
// logger directly.
func NewLogger(name string, calldepth int) Logger {
	return &logger{name: name, calldepth: calldepth}
}

func (l *logger) format(message string, args ...any) string {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	if l.name != "" {
		message = fmt.Sprintf("[%s] %s", l.name, message)
	}
	return message
}

func (l *logger) output(out *log.Logger, level LogLevel, message string, args ...any) {
	if out == nil || minLevel > level {
		return
	}
	message = l.format(message, args...)
	out.Output(l.calldepth+1, message) //nolint:errcheck // we can't do anything with what we log
}

func (l *logger) Tracef(message string, args ...any) {
	l.output(trace, TRACE, message, args...)
}

func (l *logger) Debugf(message string, args ...any) {
	l.output(dbg, DEBUG, message, args...)
}

func (l *logger) Infof(message string, args ...any) {
	l.output(info, INFO, message, args...)
}

func (l *logger) Warnf(message string, args ...any) {
	l.output(warn, WARN, message, args...)
}

func (l *logger) Errorf(message string, args ...any) {
	l.output(err, ERROR, message, args...)
}

var root = logger{calldepth: 3}

func Tracef(message string, args ...any) {
	root.Tracef(message, args...)
}

func Debugf(message string, args ...any) {
	root.Debugf(message, args...)
}

func Infof(message string, args ...any) {
	root.Infof(message, args...)
}

func Warnf(message string, args ...any) {
	root.Warnf(message, args...)
}

func Errorf(message string, args ...any) {
	root.Errorf(message, args...)
}
