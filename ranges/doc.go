// Package ranges provides Range, a generic growable sequence with map, reduce, convert
// and for-each operators, plus async for-each backed by a worker pool.
package ranges
