package pool

import "runtime"

// HardwareConcurrency reports how many CPUs this process may run on, never less than 1.
// It is a pure query; callers inject the result where a worker count is needed.
func HardwareConcurrency() int {
	if n := schedulableCPUs(); n > 0 {
		return n
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
