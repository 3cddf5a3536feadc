// Package config loads the simulator configuration.
package config

import (
	"errors"
	"fmt"

	"toyrobot/internal/interpreter"
	"toyrobot/internal/logging"
)

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrUnsupportedFormat is returned for anything but a YAML file.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrInvalidDimensions is returned for a table narrower or shorter than
	// one unit. It is the interpreter's sentinel, so errors.Is matches at
	// either layer.
	ErrInvalidDimensions = interpreter.ErrInvalidDimensions
	// ErrInvalidLogging is returned for an unknown log level or format.
	ErrInvalidLogging = errors.New("invalid logging configuration")
)

// Config is the full simulator configuration.
type Config struct {
	Table TableConfig `yaml:"table"`

	// MultiDigit allows PLACE coordinates of more than one digit. Off by
	// default, matching the classic single digit grammar.
	MultiDigit bool `yaml:"multi_digit"`

	Log logging.Config `yaml:"log"`
}

// TableConfig sets the table dimensions.
type TableConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the built-in configuration: a 5x5 table.
func Default() *Config {
	return &Config{
		Table: TableConfig{Width: 5, Height: 5},
		Log:   logging.DefaultConfig(),
	}
}

// Validate checks the configuration for values the simulator cannot run with.
func (c *Config) Validate() error {
	if c.Table.Width < 1 || c.Table.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Table.Width, c.Table.Height)
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: level %q", ErrInvalidLogging, c.Log.Level)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("%w: format %q", ErrInvalidLogging, c.Log.Format)
	}
	return nil
}
