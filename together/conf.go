package together

import (
	"time"

	"github.com/yegor256/together/internal/cpu"
)

// Option is a functional option for configuring a Runner.
type Option func(*config)

type config struct {
	workers      int
	shutdownWait time.Duration

	// onLaunch observes the randomized launch order. Test hook only,
	// not reachable through the public API.
	onLaunch func(worker int)
}

const (
	// minWorkers keeps a race test meaningful even on a single-core
	// host: two workers racing plus one more to stir the scheduler.
	minWorkers = 3

	defaultShutdownWait = time.Minute
)

// WithWorkers sets the number of concurrent workers.
// If not specified, defaults to max(available CPUs, 3).
func WithWorkers(count int) Option {
	return func(cfg *config) {
		if count > 0 {
			cfg.workers = count
		}
	}
}

// WithShutdownWait bounds each of the two teardown waits (graceful,
// then forced). If not specified, defaults to one minute. This bounds
// cleanup only; it is not a timeout on the action itself.
func WithShutdownWait(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.shutdownWait = d
		}
	}
}

func createConfig(opts ...Option) *config {
	cfg := &config{
		workers:      max(cpu.Available(), minWorkers),
		shutdownWait: defaultShutdownWait,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
