// Package logging provides named logrus loggers that share one level and
// one output.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	loggers = make(map[string]*logHandle)

	level    = logrus.InfoLevel
	output   io.Writer = os.Stderr
	colorful           = isatty.IsTerminal(os.Stderr.Fd())
)

type logHandle struct {
	logrus.Logger

	name     string
	colorful bool
}

func (l *logHandle) Format(e *logrus.Entry) ([]byte, error) {
	lvl := strings.ToUpper(e.Level.String())
	if l.colorful {
		var color int
		switch e.Level {
		case logrus.DebugLevel, logrus.TraceLevel:
			color = 34
		case logrus.WarnLevel:
			color = 33
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			color = 31
		default:
			color = 32
		}
		lvl = fmt.Sprintf("\033[1;%dm%s\033[0m", color, lvl)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s[%d] <%s>: %s",
		e.Time.Format("2006/01/02 15:04:05.000000"), l.name, os.Getpid(), lvl, strings.TrimRight(e.Message, "\n"))
	for k, v := range e.Data {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func newLogger(name string) *logHandle {
	l := &logHandle{Logger: *logrus.New(), name: name, colorful: colorful}
	l.Formatter = l
	l.Level = level
	l.Out = output
	return l
}

// GetLogger returns the logger registered under name, creating it on first use.
func GetLogger(name string) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return &l.Logger
	}
	l := newLogger(name)
	loggers[name] = l
	return &l.Logger
}

// SetLogLevel changes the level of every existing and future logger.
func SetLogLevel(lvl logrus.Level) {
	mu.Lock()
	defer mu.Unlock()

	level = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
}

// ParseLevel accepts logrus level names; an empty name means info.
func ParseLevel(name string) (logrus.Level, error) {
	if name == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(name)
}

func DisableLogColor() {
	mu.Lock()
	defer mu.Unlock()

	colorful = false
	for _, l := range loggers {
		l.colorful = false
	}
}

// SetOutput redirects every logger. Full-screen displays point this at a
// file so log lines do not tear the terminal.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	output = w
	for _, l := range loggers {
		l.SetOutput(w)
	}
}

// SetOutFile appends log output to path and disables colors.
func SetOutFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	DisableLogColor()
	SetOutput(f)
	GetLogger("sortviz").Infof("log opened at %s", time.Now().Format(time.RFC3339))
	return f, nil
}
