package ranges

import "cmp"

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Sum[T Number](r *Range[T]) T {
	var total T
	for _, v := range r.data {
		total += v
	}
	return total
}

func Min[T cmp.Ordered](r *Range[T]) (T, bool) {
	if len(r.data) == 0 {
		var zero T
		return zero, false
	}
	m := r.data[0]
	for _, v := range r.data[1:] {
		m = min(m, v)
	}
	return m, true
}

func Max[T cmp.Ordered](r *Range[T]) (T, bool) {
	if len(r.data) == 0 {
		var zero T
		return zero, false
	}
	m := r.data[0]
	for _, v := range r.data[1:] {
		m = max(m, v)
	}
	return m, true
}
