package parallel_test

import (
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangekit/parallel"
	"rangekit/pool"
)

func TestForEach_BlocksUntilSettled(t *testing.T) {
	input := make([]int64, 10_000)
	for i := range input {
		input[i] = int64(i)
	}

	var sum atomic.Int64
	err := parallel.ForEach(slices.Values(input), func(v int64) {
		sum.Add(v * 2)
	})
	require.NoError(t, err)

	// 2 * (0 + 1 + ... + n-1)
	n := int64(len(input))
	assert.Equal(t, n*(n-1), sum.Load())
}

func TestForEachSlice_DoublesIntoSlots(t *testing.T) {
	input := []int{0, 1, 2, 3, 4}
	out := make([]int, len(input))

	err := parallel.ForEachSlice(input, func(v int) {
		out[v] = v * 2
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, out)
}

func TestForEachN(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		wantErr error
	}{
		{name: "single worker", workers: 1},
		{name: "many workers", workers: 16},
		{name: "zero workers", workers: 0, wantErr: pool.ErrInvalidWorkerCount},
		{name: "negative workers", workers: -2, wantErr: pool.ErrInvalidWorkerCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var count atomic.Int32
			err := parallel.ForEachN(tt.workers, slices.Values(make([]struct{}, 100)), func(struct{}) {
				count.Add(1)
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, int32(0), count.Load())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int32(100), count.Load())
		})
	}
}

func TestForEach_EmptyInput(t *testing.T) {
	called := false
	err := parallel.ForEachSlice([]int{}, func(int) { called = true })
	require.NoError(t, err)
	assert.False(t, called)
}

func TestForEach_NilFunc(t *testing.T) {
	assert.ErrorIs(t, parallel.ForEachSlice([]int{1}, nil), pool.ErrNilTask)
}

func TestForEachOn_ReturnsWithoutWaiting(t *testing.T) {
	p, err := pool.New(4)
	require.NoError(t, err)

	gate := make(chan struct{})
	var done atomic.Int32
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}

	err = parallel.ForEachOn(p, slices.Values(input), func(int) {
		<-gate
		done.Add(1)
	})
	require.NoError(t, err)

	// every task is parked on the gate, so nothing can have finished yet
	assert.Equal(t, int32(0), done.Load())

	close(gate)
	p.Close()
	assert.Equal(t, int32(len(input)), done.Load())
}

func TestForEachOn_CapturesSnapshot(t *testing.T) {
	p, err := pool.New(2)
	require.NoError(t, err)

	gate := make(chan struct{})
	src := []int{10, 20, 30}

	var mu sync.Mutex
	var seen []int
	err = parallel.ForEachOn(p, slices.Values(src), func(v int) {
		<-gate
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	})
	require.NoError(t, err)

	// mutate the source after submission, before any task has run
	for i := range src {
		src[i] = -1
	}
	close(gate)
	p.Close()

	slices.Sort(seen)
	assert.Equal(t, []int{10, 20, 30}, seen)
}

func TestForEachOn_SharedPoolAcrossCalls(t *testing.T) {
	p, err := pool.New(3)
	require.NoError(t, err)

	var total atomic.Int64
	for range 5 {
		require.NoError(t, parallel.ForEachOn(p, slices.Values([]int64{1, 2, 3}), func(v int64) {
			total.Add(v)
		}))
	}
	p.Wait()
	assert.Equal(t, int64(30), total.Load())
	p.Close()
}

func TestForEachOn_ClosedPool(t *testing.T) {
	p, err := pool.New(1)
	require.NoError(t, err)
	p.Close()

	var calls atomic.Int32
	err = parallel.ForEachOn(p, slices.Values([]int{1, 2, 3}), func(int) { calls.Add(1) })
	assert.ErrorIs(t, err, pool.ErrPoolClosed)
	assert.Equal(t, int32(0), calls.Load())
}

func TestForEach_PanicHandlerOption(t *testing.T) {
	var panics atomic.Int32
	var ran atomic.Int32

	err := parallel.ForEachSlice([]int{1, 2, 3, 4}, func(v int) {
		if v%2 == 0 {
			panic(v)
		}
		ran.Add(1)
	}, pool.WithPanicHandler(func(int, any, []byte) { panics.Add(1) }))

	require.NoError(t, err)
	assert.Equal(t, int32(2), panics.Load())
	assert.Equal(t, int32(2), ran.Load())
}

func BenchmarkForEach(b *testing.B) {
	input := make([]int, 100_000)
	for i := range input {
		input[i] = i
	}
	heavyWork := func(v int) int {
		for i := 0; i < 1000; i++ {
			v = (v + i*i) % 10000
		}
		return v
	}

	b.Run("Serial", func(b *testing.B) {
		for b.Loop() {
			for _, v := range input {
				heavyWork(v)
			}
		}
	})

	b.Run("Ephemeral", func(b *testing.B) {
		for b.Loop() {
			_ = parallel.ForEachSlice(input, func(v int) { heavyWork(v) })
		}
	})

	b.Run("Shared", func(b *testing.B) {
		p, _ := pool.New(pool.HardwareConcurrency())
		defer p.Close()
		for b.Loop() {
			_ = parallel.ForEachOn(p, slices.Values(input), func(v int) { heavyWork(v) })
			p.Wait()
		}
	})
}
