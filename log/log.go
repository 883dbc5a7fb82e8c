// Package log provides the package-level logger used by the message
// parser to record recovered/tolerated parse errors at Debug level.
//
// The parser is fail-open: malformed input never produces an error, but a
// trace of what was tolerated is useful when debugging a host application.
// Nothing above Debug is ever logged by this library.
package log

import (
	"io/ioutil"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface the message package depends on: a
// logrus.FieldLogger plus level accessors that take and return level
// names. GetLogger returns implementations of it; a caller hands one to
// the parser through the Logger field of its options.
type Logger interface {
	logrus.FieldLogger
	SetLevel(level string)
	GetLevel() string
}

type wrapped struct {
	*logrus.Logger
}

// SetLevel sets the log level by name, ignoring unrecognised values.
func (w *wrapped) SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	w.Level = lvl
}

// GetLevel returns the current log level as a string.
func (w *wrapped) GetLevel() string {
	return w.Level.String()
}

var (
	mu    sync.Mutex
	cache = map[string]Logger{}
	// Default is the logger used when no explicit Logger has been set on a
	// parser. It discards output until configured otherwise.
	Default Logger
)

func init() {
	Default, _ = GetLogger("off")
}

// GetLogger returns the Logger for dest, creating and caching it the first
// time it's asked for. dest can be one of:
//
//	"off"    - discard all output
//	"stdout" - write to standard output
//	"stderr" - write to standard error
//	a path   - append to (or create) the named file
//
// Subsequent calls with the same dest return the cached Logger.
func GetLogger(dest string) (Logger, error) {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := cache[dest]; ok {
		return l, nil
	}

	base := logrus.New()
	l := &wrapped{Logger: base}

	switch dest {
	case "off":
		base.Out = ioutil.Discard
	case "stdout":
		base.Out = os.Stdout
	case "stderr", "":
		base.Out = os.Stderr
	default:
		f, err := os.OpenFile(dest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			base.Out = os.Stderr
			cache[dest] = l
			return l, err
		}
		base.Out = f
		base.Formatter = &logrus.TextFormatter{DisableColors: true}
	}

	cache[dest] = l
	return l, nil
}
