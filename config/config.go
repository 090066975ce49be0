// Package config loads lineq settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lineq/document"
	"github.com/katalvlaran/lineq/matrix"
	"github.com/katalvlaran/lineq/parser"
	"github.com/katalvlaran/lineq/solver"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the complete application configuration
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Solver SolverConfig `toml:"solver"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// ParserConfig holds input limits
type ParserConfig struct {
	MaxDigits     int `toml:"max_digits"`
	MaxLineLength int `toml:"max_line_length"`
}

// SolverConfig holds the numeric method and its parameters
type SolverConfig struct {
	Method        string  `toml:"method"`
	Tolerance     float64 `toml:"tolerance"`
	MaxIterations int     `toml:"max_iterations"`
	Omega         float64 `toml:"omega"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format    string `toml:"format"` // "text" or "yaml"
	Precision int    `toml:"precision"`
	Color     bool   `toml:"color"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Color = true
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML file. An empty path or a missing file yields Default;
// keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, cfg.Validate()
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Parser.MaxDigits == 0 {
		c.Parser.MaxDigits = parser.DefaultMaxDigits
	}
	if c.Parser.MaxLineLength == 0 {
		c.Parser.MaxLineLength = document.DefaultMaxLineLength
	}
	if c.Solver.Method == "" {
		c.Solver.Method = solver.MethodGauss.String()
	}
	if c.Solver.Tolerance == 0 {
		c.Solver.Tolerance = matrix.DefaultTolerance
	}
	if c.Solver.MaxIterations == 0 {
		c.Solver.MaxIterations = matrix.DefaultMaxIterations
	}
	if c.Solver.Omega == 0 {
		c.Solver.Omega = matrix.DefaultOmega
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Precision == 0 {
		c.Output.Precision = 6
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate rejects values no component can use.
func (c *Config) Validate() error {
	switch {
	case c.Parser.MaxDigits < 0:
		return fmt.Errorf("%w: parser.max_digits %d", ErrInvalid, c.Parser.MaxDigits)
	case c.Parser.MaxLineLength < 0:
		return fmt.Errorf("%w: parser.max_line_length %d", ErrInvalid, c.Parser.MaxLineLength)
	case !(c.Solver.Tolerance > 0):
		return fmt.Errorf("%w: solver.tolerance %v", ErrInvalid, c.Solver.Tolerance)
	case c.Solver.MaxIterations < 0:
		return fmt.Errorf("%w: solver.max_iterations %d", ErrInvalid, c.Solver.MaxIterations)
	case !(c.Solver.Omega > 0 && c.Solver.Omega < 2):
		return fmt.Errorf("%w: solver.omega %v", ErrInvalid, c.Solver.Omega)
	case c.Output.Format != "text" && c.Output.Format != "yaml":
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	case c.Output.Precision < 0 || c.Output.Precision > 17:
		return fmt.Errorf("%w: output.precision %d", ErrInvalid, c.Output.Precision)
	case c.Log.Format != "text" && c.Log.Format != "json":
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if _, err := solver.ParseMethod(c.Solver.Method); err != nil {
		return fmt.Errorf("%w: solver.method: %v", ErrInvalid, err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return nil
}

// SolverOptions converts the solver section into solver options.
func (c *Config) SolverOptions() ([]solver.Option, error) {
	m, err := solver.ParseMethod(c.Solver.Method)
	if err != nil {
		return nil, err
	}
	return []solver.Option{
		solver.WithMethod(m),
		solver.WithTolerance(c.Solver.Tolerance),
		solver.WithMaxIterations(c.Solver.MaxIterations),
		solver.WithOmega(c.Solver.Omega),
	}, nil
}

// DocumentOptions converts the parser section into document options.
func (c *Config) DocumentOptions() []document.Option {
	return []document.Option{
		document.WithMaxLineLength(c.Parser.MaxLineLength),
		document.WithParserOptions(parser.WithMaxDigits(c.Parser.MaxDigits)),
	}
}
