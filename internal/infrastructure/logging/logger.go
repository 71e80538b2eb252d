package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New returns the application logger writing to stderr at the given level
// ("debug", "info", "warn", "error"). An unknown level falls back to info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "financement",
	})
}
