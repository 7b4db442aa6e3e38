package types

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFuture_Get(t *testing.T) {
	t.Run("successful outcome", func(t *testing.T) {
		future := NewFuture[string]()

		go func() {
			time.Sleep(50 * time.Millisecond)
			future.Resolve(Outcome[string]{Value: "success", Worker: 4})
		}()

		value, worker, err := future.Get()

		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if value != "success" {
			t.Errorf("expected value 'success', got %v", value)
		}
		if worker != 4 {
			t.Errorf("expected worker 4, got %d", worker)
		}
	})

	t.Run("error outcome", func(t *testing.T) {
		future := NewFuture[string]()
		expectedErr := errors.New("worker failed")

		go func() {
			future.Resolve(Outcome[string]{Worker: 1, Err: expectedErr})
		}()

		value, worker, err := future.Get()

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if value != "" {
			t.Errorf("expected empty value, got %v", value)
		}
		if worker != 1 {
			t.Errorf("expected worker 1, got %d", worker)
		}
	})

	t.Run("repeated Get returns the same outcome", func(t *testing.T) {
		future := NewFuture[int]()

		go func() {
			future.Resolve(Outcome[int]{Value: 123, Worker: 2})
		}()

		value1, worker1, err1 := future.Get()
		value2, worker2, err2 := future.Get()

		if value1 != value2 || worker1 != worker2 || err1 != err2 {
			t.Errorf("Get calls returned different outcomes")
		}
		if value1 != 123 {
			t.Errorf("expected value 123, got %v", value1)
		}
	})
}

func TestFuture_GetWithContext(t *testing.T) {
	t.Run("resolved before deadline", func(t *testing.T) {
		future := NewFuture[string]()
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		go func() {
			time.Sleep(50 * time.Millisecond)
			future.Resolve(Outcome[string]{Value: "success", Worker: 7})
		}()

		value, worker, err := future.GetWithContext(ctx)

		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if value != "success" {
			t.Errorf("expected value 'success', got %v", value)
		}
		if worker != 7 {
			t.Errorf("expected worker 7, got %d", worker)
		}
	})

	t.Run("deadline before resolution", func(t *testing.T) {
		future := NewFuture[string]()
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		go func() {
			time.Sleep(200 * time.Millisecond)
			future.Resolve(Outcome[string]{Value: "too late", Worker: 9})
		}()

		_, _, err := future.GetWithContext(ctx)

		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected context.DeadlineExceeded, got %v", err)
		}
	})

	t.Run("cancellation does not consume the outcome", func(t *testing.T) {
		future := NewFuture[string]()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, _, err := future.GetWithContext(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}

		future.Resolve(Outcome[string]{Value: "still here", Worker: 3})

		value, worker, err := future.Get()
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if value != "still here" || worker != 3 {
			t.Errorf("lost the outcome after a cancelled wait: %q worker %d", value, worker)
		}
	})
}

func TestFuture_IsReady(t *testing.T) {
	future := NewFuture[int]()

	if future.IsReady() {
		t.Error("fresh future should not be ready")
	}

	future.Resolve(Outcome[int]{Value: 1})

	if !future.IsReady() {
		t.Error("resolved future should be ready")
	}

	// Still ready after the outcome was read and cached.
	_, _, _ = future.Get()
	if !future.IsReady() {
		t.Error("future should stay ready after Get")
	}
}
