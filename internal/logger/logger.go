package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup initializes a zerolog logger.
//   - level: log level string (trace, debug, info, warn, error)
//   - format: "json" for machine consumption, "pretty" for terminal output
//
// Logs go to stderr so they never interleave with the interactive prompt
// on stdout.
func Setup(level, format string) zerolog.Logger {
	var writer io.Writer = os.Stderr

	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(writer).
		With().
		Timestamp().
		Logger()
}
