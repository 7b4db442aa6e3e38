package together

import (
	"testing"
)

func TestResults_String(t *testing.T) {
	t.Run("several values", func(t *testing.T) {
		results := newResults([]int{0, 1, 2})
		if results.String() != "[0, 1, 2]" {
			t.Errorf("expected [0, 1, 2], got %s", results.String())
		}
	})

	t.Run("one value", func(t *testing.T) {
		results := newResults([]int{0})
		if results.String() != "[0]" {
			t.Errorf("expected [0], got %s", results.String())
		}
	})

	t.Run("string values", func(t *testing.T) {
		results := newResults([]string{"a", "b"})
		if results.String() != "[a, b]" {
			t.Errorf("expected [a, b], got %s", results.String())
		}
	})
}

func TestResults_Values(t *testing.T) {
	results := newResults([]int{10, 20, 30})

	var got []int
	for v := range results.Values() {
		got = append(got, v)
	}

	if len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("expected [10 20 30] in order, got %v", got)
	}

	// Early break must not disturb a later iteration.
	for range results.Values() {
		break
	}
	count := 0
	for range results.Values() {
		count++
	}
	if count != 3 {
		t.Errorf("expected 3 values on re-iteration, got %d", count)
	}
}

func TestResults_List(t *testing.T) {
	results := newResults([]int{1, 2, 3})

	list := results.List()
	list[0] = 99

	if results.List()[0] != 1 {
		t.Error("mutating the returned list must not affect the results")
	}
	if results.Len() != 3 {
		t.Errorf("expected Len 3, got %d", results.Len())
	}
}
