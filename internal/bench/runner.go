package bench

import (
	"context"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultTypicalSizes are the typical-size hypotheses compared by default.
var DefaultTypicalSizes = []int{8, 64, 100, 200, 500}

const (
	DefaultThreads = 4
	DefaultRuns    = 1_000_000

	// cancelCheckInterval is the number of trials between context checks.
	cancelCheckInterval = 1024
)

// Options configures a Runner.
type Options struct {
	TypicalSizes []int
	Threads      int   // concurrent workers per measurement
	Runs         int   // trials per worker
	MaxSize      int   // clamp for sampled lengths
	Seed         uint64
	MemoryLimit  int64 // per-block limit handed to the vector, zero for none
}

func (o Options) withDefaults() Options {
	out := o
	if len(out.TypicalSizes) == 0 {
		out.TypicalSizes = DefaultTypicalSizes
	}
	if out.Threads <= 0 {
		out.Threads = DefaultThreads
	}
	if out.Runs <= 0 {
		out.Runs = DefaultRuns
	}
	if out.MaxSize <= 0 {
		out.MaxSize = DefaultMaxSize
	}
	return out
}

// Measurement is the outcome of running one implementation for one
// typical size.
type Measurement struct {
	Name     string
	Elapsed  time.Duration   // wall clock from first spawn to last join
	Workers  []time.Duration // per-worker busy time
	Trials   int
	Elements int64 // total pushes across all trials
}

// Result pairs the custom vector and builtin slice measurements for one
// typical size.
type Result struct {
	TypicalSize int
	Custom      Measurement
	Builtin     Measurement
}

// Speedup returns how many times faster the custom vector was. Returns 0
// if the custom measurement took no time.
func (r Result) Speedup() float64 {
	if r.Custom.Elapsed <= 0 {
		return 0
	}
	return r.Builtin.Elapsed.Seconds() / r.Custom.Elapsed.Seconds()
}

// Runner drives the comparison.
type Runner struct {
	opts Options
	out  io.Writer
	log  zerolog.Logger
}

// NewRunner creates a Runner writing its report to out. Zero option fields
// take their defaults.
func NewRunner(opts Options, out io.Writer, logger zerolog.Logger) *Runner {
	return &Runner{opts: opts.withDefaults(), out: out, log: logger}
}

// Options returns the effective options.
func (r *Runner) Options() Options {
	return r.opts
}

// Run compares both implementations for every configured typical size and
// writes one report section per size.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	r.log.Info().
		Ints("typical_sizes", r.opts.TypicalSizes).
		Int("threads", r.opts.Threads).
		Str("runs_per_thread", humanize.Comma(int64(r.opts.Runs))).
		Int("max_size", r.opts.MaxSize).
		Uint64("seed", r.opts.Seed).
		Msg("starting benchmark")

	results := make([]Result, 0, len(r.opts.TypicalSizes))
	for _, n := range r.opts.TypicalSizes {
		res, err := r.Compare(ctx, n)
		if err != nil {
			return results, err
		}
		if err := Report(r.out, res); err != nil {
			return results, errors.Wrap(err, "writing report")
		}
		results = append(results, res)
	}
	return results, nil
}

// Compare measures the custom vector and then the builtin slice for one
// typical size. Both see the same sequence of trial lengths.
func (r *Runner) Compare(ctx context.Context, typicalSize int) (Result, error) {
	if typicalSize < 1 {
		return Result{}, errors.Newf("typical size %d must be positive", typicalSize)
	}
	custom, err := r.Measure(ctx, "custom vector", typicalSize, VectorFactory(typicalSize, r.opts.MemoryLimit))
	if err != nil {
		return Result{}, err
	}
	builtin, err := r.Measure(ctx, "builtin slice", typicalSize, SliceFactory())
	if err != nil {
		return Result{}, err
	}
	return Result{TypicalSize: typicalSize, Custom: custom, Builtin: builtin}, nil
}

// Measure runs Threads independent workers, each performing Runs trials
// with containers from factory, and reports the elapsed wall-clock time.
// The first failing worker cancels the others.
func (r *Runner) Measure(
	ctx context.Context, name string, typicalSize int, factory Factory,
) (Measurement, error) {
	workers := make([]time.Duration, r.opts.Threads)
	elements := make([]int64, r.opts.Threads)

	g, ctx := errgroup.WithContext(ctx)
	start := time.Now()
	for w := 0; w < r.opts.Threads; w++ {
		w := w
		g.Go(func() error {
			s := NewSampler(typicalSize, r.opts.MaxSize, r.opts.Seed+uint64(w))
			began := time.Now()
			for i := 0; i < r.opts.Runs; i++ {
				if i%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				n, err := Trial(factory, s)
				if err != nil {
					return errors.Wrapf(err, "worker %d, trial %d", w, i)
				}
				elements[w] += int64(n)
			}
			workers[w] = time.Since(began)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Measurement{}, errors.Wrapf(err, "measuring %s with typical size %d", name, typicalSize)
	}

	m := Measurement{
		Name:    name,
		Elapsed: time.Since(start),
		Workers: workers,
		Trials:  r.opts.Threads * r.opts.Runs,
	}
	for _, n := range elements {
		m.Elements += n
	}
	r.logMeasurement(typicalSize, m)
	return m, nil
}

// Trial samples a length, fills a fresh container built with an unknown
// size hint, and checks its final size. It returns the sampled length.
func Trial(factory Factory, s *Sampler) (int, error) {
	size := s.Next()
	c, err := factory(0)
	if err != nil {
		return 0, errors.Wrap(err, "constructing container")
	}
	if rel, ok := c.(releaser); ok {
		defer rel.Release()
	}
	for j := 0; j < size; j++ {
		if err := c.Push(j); err != nil {
			return 0, errors.Wrapf(err, "push %d of %d", j+1, size)
		}
	}
	if got := c.Size(); got != size {
		return 0, errors.AssertionFailedf("size %d after %d pushes", got, size)
	}
	return size, nil
}

func (r *Runner) logMeasurement(typicalSize int, m Measurement) {
	e := r.log.Debug()
	if !e.Enabled() {
		return
	}
	data := make(stats.Float64Data, len(m.Workers))
	for i, d := range m.Workers {
		data[i] = d.Seconds()
	}
	mean, _ := stats.Mean(data)
	lo, _ := stats.Min(data)
	hi, _ := stats.Max(data)
	sd, _ := stats.StandardDeviation(data)
	e.Str("impl", m.Name).
		Int("typical_size", typicalSize).
		Dur("elapsed", m.Elapsed).
		Str("trials", humanize.Comma(int64(m.Trials))).
		Str("pushes", humanize.Comma(m.Elements)).
		Float64("worker_mean_s", mean).
		Float64("worker_min_s", lo).
		Float64("worker_max_s", hi).
		Float64("worker_stddev_s", sd).
		Msg("measurement done")
}
