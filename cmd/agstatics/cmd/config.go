package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/graphstatics/statics"
)

// Environment variables read by the CLI (a .env file in the working
// directory is loaded first).
const (
	EnvKmax      = "AGS_KMAX"
	EnvTol       = "AGS_TOL"
	EnvCondLimit = "AGS_COND_LIMIT"
	EnvCondWarn  = "AGS_COND_WARN"
	EnvDebug     = "AGS_DEBUG"
	EnvJobs      = "AGS_JOBS"
)

// DefaultJobs bounds how many files are analysed at once.
const DefaultJobs = 4

// Config holds the solver settings shared by every command.
type Config struct {
	Kmax      int     `validate:"min=1"`
	Tol       float64 `validate:"gt=0"`
	CondLimit float64 `validate:"gt=1"`
	CondWarn  float64 `validate:"gt=1,ltefield=CondLimit"`
	Jobs      int     `validate:"min=1,max=256"`
	Debug     bool
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		Kmax:      statics.DefaultKmax,
		Tol:       statics.DefaultTol,
		CondLimit: statics.DefaultCondLimit,
		CondWarn:  statics.DefaultCondWarn,
		Jobs:      DefaultJobs,
	}
}

// loadDotenv loads .env if present and reports whether it was found.
func loadDotenv() bool {
	return godotenv.Load() == nil
}

// FromEnv overlays the AGS_* variables on c. Unparseable values are errors.
func (c Config) FromEnv() (Config, error) {
	var err error
	if c.Kmax, err = envInt(EnvKmax, c.Kmax); err != nil {
		return c, err
	}
	if c.Tol, err = envFloat(EnvTol, c.Tol); err != nil {
		return c, err
	}
	if c.CondLimit, err = envFloat(EnvCondLimit, c.CondLimit); err != nil {
		return c, err
	}
	if c.CondWarn, err = envFloat(EnvCondWarn, c.CondWarn); err != nil {
		return c, err
	}
	if c.Jobs, err = envInt(EnvJobs, c.Jobs); err != nil {
		return c, err
	}
	if c.Debug, err = envBool(EnvDebug, c.Debug); err != nil {
		return c, err
	}

	return c, nil
}

// Validate checks the ranges declared in the struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Options turns the config into solver options.
func (c Config) Options() []statics.Option {
	return []statics.Option{
		statics.WithKmax(c.Kmax),
		statics.WithTolerance(c.Tol),
		statics.WithCondLimit(c.CondLimit),
		statics.WithCondWarn(c.CondWarn),
	}
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("config: %s=%q: %w", key, v, err)
	}

	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("config: %s=%q: %w", key, v, err)
	}

	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("config: %s=%q: %w", key, v, err)
	}

	return b, nil
}
