package ranges

import "slices"

// Convert replaces every element v with f(v), in place.
func (r *Range[T]) Convert(f func(T) T) *Range[T] {
	for i, v := range r.data {
		r.data[i] = f(v)
	}
	return r
}

// ForEach calls f with a pointer to each element in order; f may modify the element.
func (r *Range[T]) ForEach(f func(*T)) *Range[T] {
	for i := range r.data {
		f(&r.data[i])
	}
	return r
}

// Filter keeps only the elements satisfying predicate, in place.
func (r *Range[T]) Filter(predicate func(T) bool) *Range[T] {
	r.data = slices.DeleteFunc(r.data, func(v T) bool { return !predicate(v) })
	return r
}

// Reverse reverses the elements in place.
func (r *Range[T]) Reverse() *Range[T] {
	slices.Reverse(r.data)
	return r
}

// Reversed returns a reversed copy, leaving r untouched.
func (r *Range[T]) Reversed() *Range[T] {
	return r.Clone().Reverse()
}

func (r *Range[T]) Sort(compare func(a, b T) int) *Range[T] {
	slices.SortFunc(r.data, compare)
	return r
}

// Map returns a new Range holding transform applied to each element of r.
func Map[T, R any](r *Range[T], transform func(T) R) *Range[R] {
	out := New[R](len(r.data))
	for _, v := range r.data {
		out.data = append(out.data, transform(v))
	}
	return out
}

// Reduce hands the whole range to f and returns its result.
func Reduce[T, R any](r *Range[T], f func(*Range[T]) R) R {
	return f(r)
}

// Fold aggregates the elements of r using the reducer function, starting from the initial value.
func Fold[T, R any](r *Range[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for _, v := range r.data {
		acc = reducer(acc, v)
	}
	return acc
}
