//go:build windows

package cpu

import "runtime"

// Available returns the number of logical CPUs. Reading the process
// affinity mask on Windows needs a kernel32 round trip that is not
// worth it for a default worker count; NumCPU is close enough.
func Available() int {
	return runtime.NumCPU()
}
