package dt885x

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogConfig selects the level and destination of driver logs.
type LogConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"` // "stdout" or "stderr"
	Pretty bool   `toml:"pretty"`
}

// NewLogger builds a zerolog logger from cfg. An empty level means info.
func NewLogger(cfg LogConfig) (zerolog.Logger, error) {
	var output io.Writer = os.Stderr
	if cfg.Output == "stdout" {
		output = os.Stdout
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), err
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}
