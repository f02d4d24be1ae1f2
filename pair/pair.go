// Package pair holds at most two values and hands them out by move, so a
// single step of a reduction can produce zero, one or two results without
// allocating.
package pair

// Iter yields its remaining values in order. Slots before offset have
// already been yielded and are always the zero value.
type Iter[T any] struct {
	offset uint8
	data   [2]T
}

func Empty[T any]() Iter[T] {
	return Iter[T]{offset: 2}
}

func One[T any](v T) Iter[T] {
	var it Iter[T]
	it.offset = 1
	it.data[1] = v
	return it
}

func Two[T any](a, b T) Iter[T] {
	return Iter[T]{data: [2]T{a, b}}
}

// Next moves the next value out of the iterator. Once exhausted it keeps
// returning false.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.offset >= 2 {
		return zero, false
	}
	v := it.data[it.offset]
	it.data[it.offset] = zero
	it.offset++
	return v, true
}

// Len is the number of values not yet yielded.
func (it *Iter[T]) Len() int {
	return 2 - int(it.offset)
}
