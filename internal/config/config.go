// Package config loads the benchmark configuration from a YAML file and
// the environment.
package config

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/changx03/custom-vector-multithread/internal/bench"
)

// Environment variables overriding file values.
const (
	EnvThreads  = "VECTORBENCH_THREADS"
	EnvRuns     = "VECTORBENCH_RUNS"
	EnvLogLevel = "VECTORBENCH_LOG_LEVEL"
)

// Config is the benchmark configuration.
type Config struct {
	TypicalSizes []int  `yaml:"typical_sizes"`
	Threads      int    `yaml:"threads"`
	Runs         int    `yaml:"runs"`     // trials per thread
	MaxSize      int    `yaml:"max_size"` // clamp for sampled lengths
	Seed         uint64 `yaml:"seed"`     // 0 picks a time based seed
	MemoryLimit  string `yaml:"memory_limit"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		TypicalSizes: append([]int(nil), bench.DefaultTypicalSizes...),
		Threads:      bench.DefaultThreads,
		Runs:         bench.DefaultRuns,
		MaxSize:      bench.DefaultMaxSize,
		LogLevel:     zerolog.LevelInfoValue,
	}
}

// LoadConfig is Load followed by Validate.
func LoadConfig(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// Load reads the file at path on top of Default and applies environment
// overrides. An empty path skips the file. The result is not validated, so
// callers layering further overrides call Validate themselves.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "cannot read config file")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, "cannot parse config")
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if s := os.Getenv(EnvThreads); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvThreads)
		}
		c.Threads = n
	}
	if s := os.Getenv(EnvRuns); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvRuns)
		}
		c.Runs = n
	}
	if s := os.Getenv(EnvLogLevel); s != "" {
		c.LogLevel = s
	}
	return nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if len(c.TypicalSizes) == 0 {
		errs = append(errs, errors.New("typical_sizes must not be empty"))
	}
	for _, n := range c.TypicalSizes {
		if n < 1 {
			errs = append(errs, errors.Newf("typical size %d must be positive", n))
		}
	}
	if c.Threads < 1 {
		errs = append(errs, errors.Newf("threads %d must be positive", c.Threads))
	}
	if c.Runs < 1 {
		errs = append(errs, errors.Newf("runs %d must be positive", c.Runs))
	}
	if c.MaxSize < 1 {
		errs = append(errs, errors.Newf("max_size %d must be positive", c.MaxSize))
	}
	if _, err := c.MemoryLimitBytes(); err != nil {
		errs = append(errs, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, errors.Wrap(err, "log_level"))
	}

	return errors.Join(errs...)
}

// MemoryLimitBytes parses MemoryLimit ("64MiB", "1 GB"). Empty means no
// limit and yields 0.
func (c Config) MemoryLimitBytes() (int64, error) {
	if c.MemoryLimit == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(c.MemoryLimit)
	if err != nil {
		return 0, errors.Wrapf(err, "memory_limit %q", c.MemoryLimit)
	}
	if n > 1<<62 {
		return 0, errors.Newf("memory_limit %q is too large", c.MemoryLimit)
	}
	return int64(n), nil
}

// Level returns the parsed log level. Call after Validate.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// BenchOptions converts the configuration into runner options. Call after
// Validate.
func (c Config) BenchOptions() bench.Options {
	limit, _ := c.MemoryLimitBytes()
	return bench.Options{
		TypicalSizes: c.TypicalSizes,
		Threads:      c.Threads,
		Runs:         c.Runs,
		MaxSize:      c.MaxSize,
		Seed:         c.Seed,
		MemoryLimit:  limit,
	}
}
