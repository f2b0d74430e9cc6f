package raycast3d

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes "[name run=<id>] LEVEL: msg" lines through the
// standard log package. Loggers derived with WithRun share the sinks and the
// debug switch of their parent.
type DefaultLogger struct {
	name  string
	runID string
	debug *atomic.Bool
	out   *log.Logger
	err   *log.Logger
}

func NewDefaultLogger(name string, debug bool) *DefaultLogger {
	return newLogger(name, debug, os.Stdout, os.Stderr)
}

func newLogger(name string, debug bool, out, errOut io.Writer) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	l := &DefaultLogger{
		name:  name,
		debug: new(atomic.Bool),
		out:   log.New(out, "", flags),
		err:   log.New(errOut, "", flags),
	}
	l.debug.Store(debug)
	return l
}

func (l *DefaultLogger) DebugEnabled() bool    { return l.debug.Load() }
func (l *DefaultLogger) SetDebug(enabled bool) { l.debug.Store(enabled) }

// WithRun tags every line with a (shortened) run ID.
func (l *DefaultLogger) WithRun(id string) *DefaultLogger {
	if len(id) > 8 {
		id = id[:8]
	}
	return &DefaultLogger{name: l.name, runID: id, debug: l.debug, out: l.out, err: l.err}
}

func (l *DefaultLogger) line(level string, format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	switch {
	case l.name != "" && l.runID != "":
		return fmt.Sprintf("[%s run=%s] %s: %s", l.name, l.runID, level, msg)
	case l.runID != "":
		return fmt.Sprintf("[run=%s] %s: %s", l.runID, level, msg)
	case l.name != "":
		return fmt.Sprintf("[%s] %s: %s", l.name, level, msg)
	}
	return level + ": " + msg
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.out.Print(l.line("DEBUG", format, args...))
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.out.Print(l.line("INFO", format, args...))
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.err.Print(l.line("WARN", format, args...))
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.err.Print(l.line("ERROR", format, args...))
}

type nopLogger struct{}

func NewNopLogger() Logger                             { return &nopLogger{} }
func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}

var (
	logMu  sync.RWMutex
	logger Logger = NewDefaultLogger("raycast3d", false)
	once   sync.Once
)

// SetLogger replaces the package logger; nil installs a no-op logger.
func SetLogger(l Logger) {
	if l == nil {
		l = NewNopLogger()
	}
	logMu.Lock()
	logger = l
	logMu.Unlock()
}

func Log() Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

func DebugLog(format string, args ...any) {
	if !Debug {
		return
	}
	Log().Debugf(format, args...)
}

func DebugLogOnce(format string, args ...any) {
	if !Debug {
		return
	}
	once.Do(func() {
		Log().Debugf(format, args...)
	})
}
