// path: internal/config/config.go

// Package config loads runtime settings from EVOCHECK_* environment
// variables. Command-line flags registered through BindFlags take precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/jonklee99/PKHeX-Gengar/internal/evolution/oracles"
	"github.com/jonklee99/PKHeX-Gengar/internal/logging"
	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

// Config is the process configuration shared by the server and the CLI.
type Config struct {
	Addr        string        `env:"ADDR" envDefault:":8080"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON     bool          `env:"LOG_JSON" envDefault:"false"`
	Oracle      string        `env:"ORACLE" envDefault:"learnset"`
	Learnsets   string        `env:"LEARNSETS"`
	StaticMoves string        `env:"STATIC_MOVES"`
	RulesPath   string        `env:"RULES"`
	MaxBody     int64         `env:"MAX_BODY" envDefault:"1048576"`
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
}

const envPrefix = "EVOCHECK_"

var (
	ErrUnknownOracle = errors.New("config: unknown oracle")
	ErrEmptyAddr     = errors.New("config: empty listen address")
	ErrBadMaxBody    = errors.New("config: max body must be positive")
	ErrNoLearnsets   = errors.New("config: learnset oracle needs EVOCHECK_LEARNSETS or -learnsets")
)

// Load reads the environment.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads the given environment map, or the process environment when
// environ is nil.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: envPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BindFlags registers flags on fs whose defaults are the values already in c.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "emit JSON logs")
	fs.StringVar(&c.Oracle, "oracle", c.Oracle, fmt.Sprintf("move oracle %v", oracles.Names()))
	fs.StringVar(&c.Learnsets, "learnsets", c.Learnsets, "learnset YAML file for the learnset oracle")
	fs.StringVar(&c.StaticMoves, "static-moves", c.StaticMoves, "comma-separated knowable moves for the static oracle")
	fs.StringVar(&c.RulesPath, "rules", c.RulesPath, "override rule table YAML (default: embedded)")
	fs.Int64Var(&c.MaxBody, "max-body", c.MaxBody, "request body limit in bytes")
	fs.DurationVar(&c.ReadTimeout, "read-timeout", c.ReadTimeout, "HTTP read timeout")
}

// Validate checks the fields that have a closed set of values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return ErrEmptyAddr
	}
	if c.MaxBody <= 0 {
		return ErrBadMaxBody
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	known := false
	for _, name := range oracles.Names() {
		if name == c.Oracle {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w %q; valid: %v", ErrUnknownOracle, c.Oracle, oracles.Names())
	}
	if c.Oracle == oracles.Learnset && strings.TrimSpace(c.Learnsets) == "" {
		return ErrNoLearnsets
	}
	if _, err := ParseMovesCSV(c.StaticMoves); err != nil {
		return err
	}
	return nil
}

// Logging returns the logger settings. Validate must have passed.
func (c Config) Logging(service string) logging.Config {
	lvl, _ := logging.ParseLevel(c.LogLevel)
	return logging.Config{Level: lvl, JSON: c.LogJSON, Service: service}
}

// OracleConfig returns the factory settings for the configured oracle.
func (c Config) OracleConfig() (oracles.Config, error) {
	moves, err := ParseMovesCSV(c.StaticMoves)
	if err != nil {
		return oracles.Config{}, err
	}
	return oracles.Config{LearnsetPath: c.Learnsets, Moves: moves}, nil
}

// ParseMovesCSV parses a comma-separated list of move names or numbers.
// An empty string yields an empty list.
func ParseMovesCSV(s string) (shared.MoveList, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make(shared.MoveList, 0, len(parts))
	for _, p := range parts {
		m, ok := shared.ParseMove(strings.TrimSpace(p))
		if !ok {
			return nil, fmt.Errorf("invalid move %q", p)
		}
		out = append(out, m)
	}
	return out, nil
}
