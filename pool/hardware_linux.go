//go:build linux

package pool

import "golang.org/x/sys/unix"

// schedulableCPUs counts the CPUs in the calling thread's affinity mask.
func schedulableCPUs() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0
	}
	return set.Count()
}
