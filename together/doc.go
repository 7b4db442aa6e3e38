// Package together is a small concurrency test harness: it runs one
// user-supplied action across N workers that are all released at the
// same instant, then collects every worker's result into a single
// ordered sequence.
//
// The point is to flush out race conditions. Starting goroutines in a
// plain loop lets scheduling jitter spread their entry into the
// critical section over time; together queues all workers behind a
// one-shot release gate first, so the jitter is spent before the gate
// opens and the workers hit the code under test as a pack.
//
// # Basic Usage
//
//	runner := together.New(func(worker int) (int, error) {
//	    // touch the object under test
//	    return worker, nil
//	})
//	results, err := runner.Run(context.Background())
//	if err != nil {
//	    // at least one worker failed
//	}
//	fmt.Println(results) // "[0, 1, 2, ...]" in worker order
//
// Without options the runner uses max(available CPUs, 3) workers, so a
// race test stays meaningful even on a single-core CI box.
//
// # Semantics
//
// One Run call is one invocation. The gate, the workers, and their
// result handles belong to that invocation alone and are discarded
// afterwards. Either all N results come back, ordered by worker
// identifier, or the invocation fails as a whole; partial results are
// never returned. The first observed failure wins, later ones are
// discarded.
//
// Workers are launched in a freshly randomized order each invocation.
// That order is deliberately unobservable through the results, which
// are always sorted by worker identifier; code under test must not
// rely on it.
//
// # Failure Modes
//
//   - The action returned an error or panicked: Run returns an error
//     wrapping the original cause (errors.Is / errors.As reach it).
//   - The caller's context ended while Run was awaiting a worker: Run
//     returns an error wrapping ctx.Err().
//   - The workers were still running after both the graceful and the
//     forced shutdown waits: Run returns ErrShutdownTimeout, even when
//     every result had already been collected, because leaked worker
//     goroutines invalidate the test process.
//
// A hung action hangs the invocation: the harness adds no timeout of
// its own around the action, since hanging is a real behavior the test
// should see. Cancel the context to get out.
//
// # Stress Runs
//
// A single invocation may not hit a rare interleaving. Stress repeats
// whole invocations back to back:
//
//	stress := together.NewStress(runner, 1000)
//	completed, err := stress.Run(context.Background())
//
// The first failing invocation stops the run; that failure is the
// finding.
package together
