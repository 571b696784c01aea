package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New builds the process logger. Output goes to stderr so the rate command
// can keep stdout for its report line. LOG_LEVEL is read directly because
// config loading itself needs a logger.
func New() zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return SetLevel(os.Stderr, level)
}

func SetLevel(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger.Level(level)
}

var Module = fx.Provide(New)
