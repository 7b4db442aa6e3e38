package together

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yegor256/together/internal/sequence"
	"github.com/yegor256/together/internal/types"
)

// Action is the operation under test. It receives the worker
// identifier, an integer in [0, N), so a worker can tell itself apart
// from the others; the identifier carries no other meaning. The action
// may return an error or panic, both fail the invocation.
//
// Type parameters:
//   - T: The result type produced by each worker
type Action[T any] func(worker int) (T, error)

// Runner runs one Action across a fixed set of workers that are all
// released through a shared one-shot gate. A Runner is cheap and
// reusable; every Run call builds a fresh gate, fresh futures, and
// fresh worker goroutines.
//
// Type parameters:
//   - T: The result type produced by each worker
type Runner[T any] struct {
	action Action[T]
	conf   *config
}

// New creates a Runner for the given action.
//
// Default configuration:
//   - workers: max(available CPUs, 3)
//   - shutdown wait: 1 minute per teardown phase
//
// Example:
//
//	runner := together.New(func(worker int) (string, error) {
//	    return fmt.Sprintf("worker %d", worker), nil
//	}, together.WithWorkers(16))
func New[T any](action Action[T], opts ...Option) *Runner[T] {
	return &Runner[T]{
		action: action,
		conf:   createConfig(opts...),
	}
}

// Workers returns the number of workers a Run call will use.
func (r *Runner[T]) Workers() int {
	return r.conf.workers
}

// Run executes one invocation: N workers are launched in randomized
// order, parked on a shared gate, released together, and their results
// collected in ascending worker order.
//
// Either all N results are returned, or Run fails as a whole; there are
// no partial results. Cancelling ctx while Run awaits a worker fails
// the invocation with an error wrapping ctx.Err(). Teardown runs on
// every path; if the workers outlive both bounded teardown waits, Run
// returns ErrShutdownTimeout regardless of how the invocation went.
func (r *Runner[T]) Run(ctx context.Context) (*Results[T], error) {
	n := r.conf.workers

	gate := make(chan struct{})
	futures := make([]*types.Future[T], n)
	for i := range futures {
		futures[i] = types.NewFuture[T]()
	}

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	for _, worker := range sequence.Shuffled(n) {
		if r.conf.onLaunch != nil {
			r.conf.onLaunch(worker)
		}

		future := futures[worker]
		g.Go(func() error {
			select {
			case <-gate:
			case <-wctx.Done():
				var zero T
				future.Resolve(types.Outcome[T]{Value: zero, Worker: worker, Err: wctx.Err()})
				return wctx.Err()
			}

			value, err := apply(r.action, worker)
			future.Resolve(types.Outcome[T]{Value: value, Worker: worker, Err: err})
			return err
		})
	}

	// Every worker is parked behind the gate before this point, so one
	// close wakes them all at once.
	close(gate)

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	items := make([]T, n)
	var firstErr error
	for worker := 0; worker < n; worker++ {
		value, _, err := futures[worker].GetWithContext(ctx)
		if err != nil {
			if ctx.Err() != nil {
				firstErr = fmt.Errorf("interrupted while awaiting worker %d: %w", worker, err)
			} else {
				firstErr = fmt.Errorf("worker %d failed: %w", worker, err)
			}
			break
		}
		items[worker] = value
	}

	if err := r.teardown(cancel, done); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return newResults(items), nil
}

// List runs one invocation and materializes the results eagerly.
func (r *Runner[T]) List(ctx context.Context) ([]T, error) {
	results, err := r.Run(ctx)
	if err != nil {
		return nil, err
	}
	return results.List(), nil
}

// teardown waits for the workers to finish: first gracefully, then
// after force-cancelling their context. Failing both waits means the
// invocation leaked goroutines, which outranks whatever the invocation
// itself produced.
func (r *Runner[T]) teardown(cancel context.CancelFunc, done <-chan struct{}) error {
	if err := waitUntil(done, r.conf.shutdownWait); err == nil {
		return nil
	}

	cancel()
	if err := waitUntil(done, r.conf.shutdownWait); err != nil {
		return fmt.Errorf("workers still running after forced cancellation: %w", ErrShutdownTimeout)
	}
	return nil
}

// apply invokes the action with panic recovery, so one panicking worker
// turns into a failed invocation instead of a crashed test process.
func apply[T any](action Action[T], worker int) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("worker %d panicked: %v\nstack trace:\n%s", worker, r, buf[:n])
		}
	}()

	return action(worker)
}
