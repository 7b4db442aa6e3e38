package together

import (
	"errors"
	"time"
)

var (
	// ErrShutdownTimeout reports that worker goroutines were still
	// running after both the graceful and the forced teardown waits.
	// It means the invocation leaked goroutines and is surfaced even
	// when every result was already collected.
	ErrShutdownTimeout = errors.New("error in shutting down: timeout reached")
)

// waitUntil blocks until either the done channel is closed or the
// timeout is reached. A timeout of zero or less waits forever.
func waitUntil(d <-chan struct{}, timeout time.Duration) error {
	if timeout <= 0 {
		<-d
		return nil
	}

	select {
	case <-d:
		return nil
	case <-time.After(timeout):
		return ErrShutdownTimeout
	}
}
