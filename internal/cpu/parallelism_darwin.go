//go:build darwin

package cpu

import "runtime"

// Available returns the number of logical CPUs. macOS exposes no
// per-process affinity mask, so the machine-wide count is the best
// answer available.
func Available() int {
	return runtime.NumCPU()
}
