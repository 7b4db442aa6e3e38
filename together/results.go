package together

import (
	"fmt"
	"iter"
	"strings"
)

// Results is the complete outcome of one successful invocation: exactly
// one value per worker, ordered by ascending worker identifier no
// matter in which order the workers actually finished. It belongs to
// the invocation that produced it and is never mutated afterwards.
//
// Type parameters:
//   - R: The result type produced by each worker
type Results[R any] struct {
	items []R
}

func newResults[R any](items []R) *Results[R] {
	return &Results[R]{items: items}
}

// Len returns the number of results, which equals the worker count of
// the invocation.
func (r *Results[R]) Len() int {
	return len(r.items)
}

// Values iterates the results in ascending worker order.
//
//	for v := range results.Values() {
//	    ...
//	}
func (r *Results[R]) Values() iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, v := range r.items {
			if !yield(v) {
				return
			}
		}
	}
}

// List returns the results as a fresh slice, in ascending worker order.
func (r *Results[R]) List() []R {
	out := make([]R, len(r.items))
	copy(out, r.items)
	return out
}

// String renders the results as "[v0, v1, ..., vN-1]" in worker order,
// which is what a failing assertion ends up printing.
func (r *Results[R]) String() string {
	var text strings.Builder
	text.WriteByte('[')
	for i, v := range r.items {
		if i > 0 {
			text.WriteString(", ")
		}
		fmt.Fprintf(&text, "%v", v)
	}
	text.WriteByte(']')
	return text.String()
}
