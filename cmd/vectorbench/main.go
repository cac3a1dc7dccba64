// Command vectorbench compares the sized vector with the builtin slice
// across several typical-size hypotheses under concurrent load.
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/changx03/custom-vector-multithread/internal/bench"
	"github.com/changx03/custom-vector-multithread/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	overrides := config.Default()

	cmd := &cobra.Command{
		Use:           "vectorbench",
		Short:         "Benchmark the sized vector against the builtin slice",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
				With().Timestamp().Logger()

			cfg, err := loadConfig(configPath, cmd.Flags(), overrides)
			if err != nil {
				logger.Error().Err(err).Msg("failed to load config")
				return err
			}
			logger = logger.Level(cfg.Level())
			if cfg.Seed == 0 {
				cfg.Seed = uint64(time.Now().UnixNano())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			runner := bench.NewRunner(cfg.BenchOptions(), cmd.OutOrStdout(), logger)
			if _, err := runner.Run(ctx); err != nil {
				logger.Error().Err(err).Msg("benchmark failed")
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	flags.IntSliceVar(&overrides.TypicalSizes, "sizes", overrides.TypicalSizes, "typical sizes to compare")
	flags.IntVarP(&overrides.Threads, "threads", "t", overrides.Threads, "concurrent workers per measurement")
	flags.IntVarP(&overrides.Runs, "runs", "n", overrides.Runs, "trials per worker")
	flags.IntVar(&overrides.MaxSize, "max-size", overrides.MaxSize, "clamp for sampled lengths")
	flags.Uint64Var(&overrides.Seed, "seed", 0, "random seed, 0 for time based")
	flags.StringVar(&overrides.MemoryLimit, "memory-limit", "", "per-block memory limit for the vector, e.g. 64MiB")
	flags.StringVar(&overrides.LogLevel, "log-level", overrides.LogLevel, "log level (debug, info, warn, error)")

	cmd.SetContext(context.Background())
	return cmd
}

// loadConfig loads the file and environment, then applies the flags that
// were set explicitly on the command line. Validation runs once, on the
// merged result.
func loadConfig(path string, flags *pflag.FlagSet, overrides config.Config) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "sizes":
			cfg.TypicalSizes = overrides.TypicalSizes
		case "threads":
			cfg.Threads = overrides.Threads
		case "runs":
			cfg.Runs = overrides.Runs
		case "max-size":
			cfg.MaxSize = overrides.MaxSize
		case "seed":
			cfg.Seed = overrides.Seed
		case "memory-limit":
			cfg.MemoryLimit = overrides.MemoryLimit
		case "log-level":
			cfg.LogLevel = overrides.LogLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
