package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gowib/internal/failure"
)

// Config holds defaults for the command-line flags. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	LoadMax int            // GOWIB_LOAD_MAX
	Method  failure.Method // GOWIB_METHOD
	Addr    string         // GOWIB_ADDR
	Rate    float64        // GOWIB_RATE, requests per second per client
	Burst   int            // GOWIB_BURST
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LoadMax: failure.DefaultLoadMax,
		Method:  failure.MethodBisect,
		Addr:    ":8080",
		Rate:    2,
		Burst:   5,
	}
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. A missing default .env is skipped; a named file must exist.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			files = []string{".env"}
		}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a variable lookup, falling back to Default.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("GOWIB_LOAD_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("GOWIB_LOAD_MAX must be a positive integer, got %q", v)
		}
		cfg.LoadMax = n
	}
	if v := getenv("GOWIB_METHOD"); v != "" {
		m, err := failure.ParseMethod(v)
		if err != nil {
			return Config{}, fmt.Errorf("GOWIB_METHOD: %w", err)
		}
		cfg.Method = m
	}
	if v := getenv("GOWIB_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("GOWIB_RATE"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return Config{}, fmt.Errorf("GOWIB_RATE must be a positive number, got %q", v)
		}
		cfg.Rate = r
	}
	if v := getenv("GOWIB_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("GOWIB_BURST must be a positive integer, got %q", v)
		}
		cfg.Burst = n
	}
	return cfg, nil
}

// SearchOptions converts the config into failure search options.
func (c Config) SearchOptions() failure.Options {
	opts := failure.DefaultOptions()
	opts.LoadMax = c.LoadMax
	opts.Method = c.Method
	return opts
}
