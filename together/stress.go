package together

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// StressOption is a functional option for configuring a Stress driver.
type StressOption func(*stressConfig)

type stressConfig struct {
	limiter *rate.Limiter
}

// WithTrialRate caps how many invocations may start per second.
// Useful when the action under test talks to something that should not
// be hammered at full speed, such as a temp-dir heavy filesystem.
// If not specified, trials run back to back.
//
// Example:
//
//	together.WithTrialRate(50, 10) // 50 trials/sec, burst of 10
func WithTrialRate(perSecond float64, burst int) StressOption {
	return func(cfg *stressConfig) {
		if perSecond > 0 && burst > 0 {
			cfg.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// Stress repeats whole invocations of a Runner to raise the odds of
// hitting a rare interleaving. One invocation is one trial; trials run
// sequentially so every trial gets the full worker set to itself.
//
// This is repetition of complete runs, not retry: the first failing
// trial stops the stress run, because that failure is the finding.
//
// Type parameters:
//   - T: The result type produced by each worker
type Stress[T any] struct {
	runner *Runner[T]
	trials int
	conf   *stressConfig
}

// NewStress creates a stress driver that will run the given Runner
// for the given number of trials.
func NewStress[T any](runner *Runner[T], trials int, opts ...StressOption) *Stress[T] {
	cfg := &stressConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Stress[T]{
		runner: runner,
		trials: trials,
		conf:   cfg,
	}
}

// Run performs the trials and returns how many completed. On the first
// failing invocation it stops and returns the failure, wrapped with the
// zero-based trial index. Cancelling ctx stops between trials and also
// aborts the invocation in flight.
func (s *Stress[T]) Run(ctx context.Context) (int, error) {
	for trial := 0; trial < s.trials; trial++ {
		if s.conf.limiter != nil {
			if err := s.conf.limiter.Wait(ctx); err != nil {
				return trial, err
			}
		}

		if _, err := s.runner.Run(ctx); err != nil {
			return trial, fmt.Errorf("trial %d: %w", trial, err)
		}
	}

	return s.trials, nil
}
