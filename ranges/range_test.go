package ranges_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangekit/ranges"
)

func TestRange_Basic(t *testing.T) {
	r := ranges.New[int](4)
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0, r.Len())
	assert.GreaterOrEqual(t, r.Cap(), 4)

	r.PushBack(10, 20, 30)
	assert.Equal(t, 3, r.Len())

	v, err := r.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)
	assert.Equal(t, 30, r.At(2))

	require.NoError(t, r.Set(1, 25))
	assert.Equal(t, 25, r.At(1))

	front, err := r.Front()
	require.NoError(t, err)
	assert.Equal(t, 10, front)
	back, err := r.Back()
	require.NoError(t, err)
	assert.Equal(t, 30, back)

	r.Clear()
	assert.True(t, r.IsEmpty())
}

func TestRange_Bounds(t *testing.T) {
	r := ranges.Of(1, 2, 3)

	tests := []struct {
		name string
		err  error
	}{
		{"Get negative", func() error { _, err := r.Get(-1); return err }()},
		{"Get past end", func() error { _, err := r.Get(3); return err }()},
		{"Set past end", r.Set(3, 0)},
		{"Insert past end", r.Insert(4, 0)},
		{"Erase past end", func() error { _, err := r.Erase(3); return err }()},
		{"EraseRange inverted", r.EraseRange(2, 1)},
		{"Swap past end", r.Swap(0, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, ranges.ErrIndexOutOfBounds)
		})
	}
	assert.Equal(t, []int{1, 2, 3}, r.Slice(), "failed operations must not modify the range")

	empty := ranges.New[int](0)
	_, err := empty.Front()
	assert.ErrorIs(t, err, ranges.ErrEmptyRange)
	_, err = empty.Back()
	assert.ErrorIs(t, err, ranges.ErrEmptyRange)
	_, err = empty.PopBack()
	assert.ErrorIs(t, err, ranges.ErrEmptyRange)
}

func TestRange_InsertErase(t *testing.T) {
	r := ranges.Of(1, 2, 3)

	require.NoError(t, r.Insert(1, 10))
	assert.Equal(t, []int{1, 10, 2, 3}, r.Slice())

	require.NoError(t, r.InsertAll(r.Len(), 4, 5))
	assert.Equal(t, []int{1, 10, 2, 3, 4, 5}, r.Slice())

	require.NoError(t, r.InsertAll(0, 8, 9))
	assert.Equal(t, []int{8, 9, 1, 10, 2, 3, 4, 5}, r.Slice())

	v, err := r.Erase(3)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	require.NoError(t, r.EraseRange(0, 2))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, r.Slice())

	last, err := r.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 5, last)
	assert.Equal(t, []int{1, 2, 3, 4}, r.Slice())

	require.NoError(t, r.Swap(0, 3))
	assert.Equal(t, []int{4, 2, 3, 1}, r.Slice())
}

func TestRange_Capacity(t *testing.T) {
	r := ranges.Of(1, 2)

	r.Resize(4)
	assert.Equal(t, []int{1, 2, 0, 0}, r.Slice())
	r.Resize(6, 9)
	assert.Equal(t, []int{1, 2, 0, 0, 9, 9}, r.Slice())
	r.Resize(1)
	assert.Equal(t, []int{1}, r.Slice())

	r.Reserve(100)
	assert.GreaterOrEqual(t, r.Cap(), 100)
	assert.Equal(t, 1, r.Len())

	r.ShrinkToFit()
	assert.Equal(t, 1, r.Cap())
}

func TestRange_CloneIsIndependent(t *testing.T) {
	r := ranges.Of("a", "b")
	c := r.Clone()
	require.NoError(t, c.Set(0, "z"))

	assert.Equal(t, "a", r.At(0))
	assert.Equal(t, "z", c.At(0))

	s := r.Slice()
	s[1] = "y"
	assert.Equal(t, "b", r.At(1))
}

func TestRange_SwapContents(t *testing.T) {
	a, b := ranges.Of(1, 2), ranges.Of(3)
	a.SwapContents(b)
	assert.Equal(t, []int{3}, a.Slice())
	assert.Equal(t, []int{1, 2}, b.Slice())
}

func TestRange_Iterators(t *testing.T) {
	r := ranges.Of("a", "b", "c")
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(r.Values()))

	var idx []int
	for i, v := range r.All() {
		idx = append(idx, i)
		assert.Equal(t, r.At(i), v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)

	var back []string
	for _, v := range r.Backward() {
		back = append(back, v)
	}
	assert.Equal(t, []string{"c", "b", "a"}, back)
	assert.Equal(t, "[a b c]", r.String())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"Of", ranges.Of(3, 1, 2).Slice(), []int{3, 1, 2}},
		{"FromSlice", ranges.FromSlice([]int{5, 6}).Slice(), []int{5, 6}},
		{"Span", ranges.Span(2, 6).Slice(), []int{2, 3, 4, 5}},
		{"Span empty", ranges.Span(6, 2).Slice(), []int{}},
		{"Step up", ranges.Step(0, 10, 3).Slice(), []int{0, 3, 6, 9}},
		{"Step down", ranges.Step(5, 0, -2).Slice(), []int{5, 3, 1}},
		{"Step zero", ranges.Step(0, 10, 0).Slice(), []int{}},
		{"Step away", ranges.Step(0, 10, -1).Slice(), []int{}},
		{"Fill constant", ranges.Fill(3, 7, false).Slice(), []int{7, 7, 7}},
		{"Fill increment", ranges.Fill(4, 7, true).Slice(), []int{7, 8, 9, 10}},
		{"Fill none", ranges.Fill(0, 7, true).Slice(), []int{}},
		{"Repeat", ranges.Repeat(2, 4).Slice(), []int{4, 4}},
		{"GenerateIndexed", ranges.GenerateIndexed(4, func(i int) int { return i * i }).Slice(), []int{0, 1, 4, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConstructors_UnsignedStep(t *testing.T) {
	got := ranges.Step[uint8](250, 255, 2).Slice()
	assert.Equal(t, []uint8{250, 252, 254}, got)
}

func TestGenerate(t *testing.T) {
	next := 0
	r := ranges.Generate(3, func() int {
		next += 10
		return next
	})
	assert.Equal(t, []int{10, 20, 30}, r.Slice())
}

func TestAssign(t *testing.T) {
	r := ranges.Of(1, 2, 3, 4)

	r.Assign(9, 8)
	assert.Equal(t, []int{9, 8}, r.Slice())

	r.AssignGenerateIndexed(3, func(i int) int { return -i })
	assert.Equal(t, []int{0, -1, -2}, r.Slice())

	r.AssignGenerate(2, func() int { return 5 })
	assert.Equal(t, []int{5, 5}, r.Slice())
}

func TestCompare(t *testing.T) {
	assert.True(t, ranges.Equal(ranges.Of(1, 2), ranges.Of(1, 2)))
	assert.False(t, ranges.Equal(ranges.Of(1, 2), ranges.Of(2, 1)))

	assert.Equal(t, 0, ranges.Compare(ranges.Of(1, 2), ranges.Of(1, 2)))
	assert.Equal(t, -1, ranges.Compare(ranges.Of(1, 2), ranges.Of(1, 3)))
	assert.Equal(t, 1, ranges.Compare(ranges.Of(1, 2, 0), ranges.Of(1, 2)))
	assert.Equal(t, -1, ranges.Compare(ranges.Of[int](), ranges.Of(0)))
}
