package ranges

import "slices"

// Integer is the set of types Span, Step and Fill can count with.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Of returns a Range holding values, in order.
func Of[T any](values ...T) *Range[T] {
	return &Range[T]{data: slices.Clone(values)}
}

// FromSlice copies s into a new Range.
func FromSlice[T any](s []T) *Range[T] {
	return &Range[T]{data: slices.Clone(s)}
}

// Span returns start, start+1, ... up to but excluding end.
// An end not above start yields an empty Range.
func Span[T Integer](start, end T) *Range[T] {
	return Step(start, end, 1)
}

// Step returns start, start+diff, ... while the value has not reached end.
// A negative diff counts down. A zero diff, or one pointing away from end, yields an
// empty Range.
func Step[T Integer](start, end, diff T) *Range[T] {
	r := New[T](0)
	var zero T
	switch {
	case diff > zero:
		for v := start; v < end; v += diff {
			r.data = append(r.data, v)
			if v+diff < v { // wrapped
				break
			}
		}
	case diff < zero:
		for v := start; v > end; v += diff {
			r.data = append(r.data, v)
			if v+diff > v {
				break
			}
		}
	}
	return r
}

// Fill returns count copies of start, or start, start+1, ... when increment is true.
func Fill[T Integer](count int, start T, increment bool) *Range[T] {
	r := New[T](max(count, 0))
	v := start
	for i := 0; i < count; i++ {
		r.data = append(r.data, v)
		if increment {
			v++
		}
	}
	return r
}

// Repeat returns count copies of value.
func Repeat[T any](count int, value T) *Range[T] {
	r := New[T](max(count, 0))
	for i := 0; i < count; i++ {
		r.data = append(r.data, value)
	}
	return r
}

// Generate returns count elements produced by successive calls to gen.
func Generate[T any](count int, gen func() T) *Range[T] {
	return New[T](0).AssignGenerate(count, gen)
}

// GenerateIndexed returns count elements where element i is gen(i).
func GenerateIndexed[T any](count int, gen func(int) T) *Range[T] {
	return New[T](0).AssignGenerateIndexed(count, gen)
}

// Assign replaces the contents with values.
func (r *Range[T]) Assign(values ...T) *Range[T] {
	clear(r.data)
	r.data = append(r.data[:0], values...)
	return r
}

// AssignGenerate replaces the contents with count elements produced by gen.
func (r *Range[T]) AssignGenerate(count int, gen func() T) *Range[T] {
	return r.AssignGenerateIndexed(count, func(int) T { return gen() })
}

// AssignGenerateIndexed replaces the contents with gen(0), ..., gen(count-1).
func (r *Range[T]) AssignGenerateIndexed(count int, gen func(int) T) *Range[T] {
	r.Clear()
	r.Reserve(count)
	for i := 0; i < count; i++ {
		r.data = append(r.data, gen(i))
	}
	return r
}
