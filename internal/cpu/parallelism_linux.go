//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Available returns the number of CPUs the current process may actually
// run on, read from the scheduler affinity mask. This is more honest
// than runtime.NumCPU in containers or under taskset, where the mask is
// narrower than the machine.
func Available() int {
	var mask unix.CPUSet
	if err := unix.SchedGetaffinity(0, &mask); err != nil {
		return runtime.NumCPU()
	}

	if n := mask.Count(); n > 0 {
		return n
	}
	return runtime.NumCPU()
}
