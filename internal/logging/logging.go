// Package logging configures the application logger.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Open returns a logger appending JSON lines to the given file. The TUI owns
// the terminal, so recovered failures go to a state file instead of stderr.
func Open(path string) (zerolog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), func() {}, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	logger := zerolog.New(file).With().Timestamp().Logger()
	return logger, func() { _ = file.Close() }, nil
}
