package ranges

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrEmptyRange       = errors.New("range is empty")
)

// Range is a growable sequence of T with functional transformation operators.
// Mutating methods return the receiver so calls can be chained.
// A Range is not safe for concurrent mutation.
type Range[T any] struct {
	data []T
}

// New returns an empty Range with room for capacity elements.
func New[T any](capacity int) *Range[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Range[T]{
		data: make([]T, 0, capacity),
	}
}

func (r *Range[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(r.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return r.data[index], nil
}

// At returns the element at index and panics when it is out of bounds, like slice indexing.
func (r *Range[T]) At(index int) T {
	return r.data[index]
}

func (r *Range[T]) Set(index int, value T) error {
	if index < 0 || index >= len(r.data) {
		return ErrIndexOutOfBounds
	}
	r.data[index] = value
	return nil
}

func (r *Range[T]) Front() (T, error) {
	if len(r.data) == 0 {
		var zero T
		return zero, ErrEmptyRange
	}
	return r.data[0], nil
}

func (r *Range[T]) Back() (T, error) {
	if len(r.data) == 0 {
		var zero T
		return zero, ErrEmptyRange
	}
	return r.data[len(r.data)-1], nil
}

func (r *Range[T]) PushBack(values ...T) *Range[T] {
	r.data = append(r.data, values...)
	return r
}

// PopBack removes and returns the last element.
func (r *Range[T]) PopBack() (T, error) {
	if len(r.data) == 0 {
		var zero T
		return zero, ErrEmptyRange
	}
	last := r.data[len(r.data)-1]
	// clear the last element, let it be GCed
	clear(r.data[len(r.data)-1:])
	r.data = r.data[:len(r.data)-1]
	return last, nil
}

func (r *Range[T]) Insert(index int, value T) error {
	return r.InsertAll(index, value)
}

// InsertAll inserts values before index. index == Len() appends.
func (r *Range[T]) InsertAll(index int, values ...T) error {
	if index < 0 || index > len(r.data) {
		return ErrIndexOutOfBounds
	}
	r.data = slices.Insert(r.data, index, values...)
	return nil
}

// Erase removes and returns the element at index.
func (r *Range[T]) Erase(index int) (T, error) {
	if index < 0 || index >= len(r.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	removed := r.data[index]
	// slices.Delete zeroes the vacated tail
	r.data = slices.Delete(r.data, index, index+1)
	return removed, nil
}

// EraseRange removes elements from start (inclusive) to end (exclusive).
func (r *Range[T]) EraseRange(start, end int) error {
	if start < 0 || end > len(r.data) || start > end {
		return ErrIndexOutOfBounds
	}
	r.data = slices.Delete(r.data, start, end)
	return nil
}

// Resize changes the length to size. New elements are filled with fill when given,
// otherwise with the zero value.
func (r *Range[T]) Resize(size int, fill ...T) *Range[T] {
	if size < 0 {
		size = 0
	}
	if size <= len(r.data) {
		clear(r.data[size:])
		r.data = r.data[:size]
		return r
	}
	var v T
	if len(fill) > 0 {
		v = fill[0]
	}
	r.data = slices.Grow(r.data, size-len(r.data))
	for len(r.data) < size {
		r.data = append(r.data, v)
	}
	return r
}

// Reserve makes sure at least n elements fit without reallocating.
func (r *Range[T]) Reserve(n int) *Range[T] {
	if n > cap(r.data) {
		r.data = slices.Grow(r.data, n-len(r.data))
	}
	return r
}

// ShrinkToFit reduces the capacity of the underlying array to match the current size.
func (r *Range[T]) ShrinkToFit() *Range[T] {
	r.data = slices.Clip(r.data)
	return r
}

func (r *Range[T]) Swap(i, j int) error {
	if i < 0 || i >= len(r.data) || j < 0 || j >= len(r.data) {
		return ErrIndexOutOfBounds
	}
	r.data[i], r.data[j] = r.data[j], r.data[i]
	return nil
}

// SwapContents exchanges the elements of r and other.
func (r *Range[T]) SwapContents(other *Range[T]) *Range[T] {
	r.data, other.data = other.data, r.data
	return r
}

func (r *Range[T]) Len() int {
	return len(r.data)
}

func (r *Range[T]) Cap() int {
	return cap(r.data)
}

func (r *Range[T]) IsEmpty() bool {
	return len(r.data) == 0
}

func (r *Range[T]) Clear() *Range[T] {
	// clear the underlying array to let elements be GCed
	clear(r.data)
	r.data = r.data[:0]
	return r
}

// Clone returns a shallow copy of the range.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (r *Range[T]) Clone() *Range[T] {
	return &Range[T]{data: slices.Clone(r.data)}
}

// Slice returns a copy of the elements as a native slice.
func (r *Range[T]) Slice() []T {
	return slices.Clone(r.data)
}

// String implements fmt.Stringer for easier debugging.
func (r *Range[T]) String() string {
	return fmt.Sprintf("%v", r.data)
}

func (r *Range[T]) Values() iter.Seq[T] {
	return slices.Values(r.data)
}

func (r *Range[T]) All() iter.Seq2[int, T] {
	return slices.All(r.data)
}

func (r *Range[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(r.data)
}
