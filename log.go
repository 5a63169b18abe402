package affordance

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Str("pkg", "affordance").
		Logger()
	logger.Store(&l)
}

// SetLogger replaces the package logger. Configuration warnings are logged
// at warn level and per-frame stats at debug level.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

// Log returns the package logger.
func Log() *zerolog.Logger {
	return logger.Load()
}
