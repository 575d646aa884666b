//go:build !linux

package pool

import "runtime"

func schedulableCPUs() int {
	return runtime.NumCPU()
}
