// Package logging builds the bolt loggers used by the simulator.
package logging

import (
	"io"
	"strings"

	"github.com/felixgeelhaar/bolt/v3"
)

// Config configures a logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is the output format (json or console).
	Format string `yaml:"format"`
}

// DefaultConfig keeps the terminal quiet: only warnings and errors show up
// next to the interactive session.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
	}
}

var levels = map[string]bolt.Level{
	"trace": bolt.TRACE,
	"debug": bolt.DEBUG,
	"info":  bolt.INFO,
	"warn":  bolt.WARN,
	"error": bolt.ERROR,
}

// ValidLevel reports whether s names a known level.
func ValidLevel(s string) bool {
	_, ok := levels[strings.ToLower(s)]
	return ok
}

// ValidFormat reports whether s names a known output format.
func ValidFormat(s string) bool {
	switch strings.ToLower(s) {
	case "json", "console":
		return true
	}
	return false
}

// ParseLevel converts a level name to bolt.Level, falling back to info.
func ParseLevel(s string) bolt.Level {
	if l, ok := levels[strings.ToLower(s)]; ok {
		return l
	}
	return bolt.INFO
}

// New creates a logger writing to w.
func New(config Config, w io.Writer) *bolt.Logger {
	if w == nil {
		w = io.Discard
	}

	var handler bolt.Handler
	if strings.ToLower(config.Format) == "json" {
		handler = bolt.NewJSONHandler(w)
	} else {
		handler = bolt.NewConsoleHandler(w)
	}

	return bolt.New(handler).SetLevel(ParseLevel(config.Level))
}

// Nop returns a logger that drops everything.
func Nop() *bolt.Logger {
	return bolt.New(bolt.NewJSONHandler(io.Discard)).SetLevel(bolt.ERROR)
}
