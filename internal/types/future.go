// Package types holds the result-handle plumbing shared between the
// coordinating goroutine and the workers it releases.
package types

import (
	"context"
	"sync"
)

// Outcome is what one worker eventually produces: a value or an error,
// tagged with the worker identifier that produced it.
type Outcome[T any] struct {
	Value  T
	Worker int
	Err    error
}

// Future is a single-assignment handle for one worker's outcome.
// The worker resolves it exactly once; the coordinator may read it any
// number of times and always sees the same outcome.
type Future[T any] struct {
	result chan Outcome[T]

	mu     sync.Mutex
	done   bool
	cached Outcome[T]
}

// NewFuture creates an unresolved future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{
		result: make(chan Outcome[T], 1),
	}
}

// Resolve publishes the worker's outcome. Must be called at most once
// per future; the executor guarantees this by giving each worker its
// own handle.
func (f *Future[T]) Resolve(o Outcome[T]) {
	f.result <- o
}

// Get blocks until the future is resolved and returns the outcome.
func (f *Future[T]) Get() (T, int, error) {
	if o, ok := f.load(); ok {
		return o.Value, o.Worker, o.Err
	}

	o := <-f.result
	f.store(o)
	return o.Value, o.Worker, o.Err
}

// GetWithContext blocks until the future is resolved or the context
// ends, whichever comes first. A context error leaves the future
// unresolved from the caller's point of view; a later call may still
// retrieve the real outcome.
func (f *Future[T]) GetWithContext(ctx context.Context) (T, int, error) {
	if o, ok := f.load(); ok {
		return o.Value, o.Worker, o.Err
	}

	select {
	case o := <-f.result:
		f.store(o)
		return o.Value, o.Worker, o.Err
	case <-ctx.Done():
		var zero T
		return zero, 0, ctx.Err()
	}
}

// IsReady reports whether the outcome can be read without blocking.
func (f *Future[T]) IsReady() bool {
	if _, ok := f.load(); ok {
		return true
	}
	return len(f.result) > 0
}

func (f *Future[T]) load() (Outcome[T], bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cached, f.done
}

func (f *Future[T]) store(o Outcome[T]) {
	f.mu.Lock()
	f.cached = o
	f.done = true
	f.mu.Unlock()
}
