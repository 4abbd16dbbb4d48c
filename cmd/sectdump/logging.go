package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type logConfig struct {
	Level  string
	Pretty bool
}

// newLogger creates a logger writing to stderr, keeping stdout free for section data.
func newLogger(cfg logConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	var output io.Writer = os.Stderr
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}
