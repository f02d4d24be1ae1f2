// Package scan provides lazy single-pass combinators over pull sources.
package scan

import (
	"iter"

	"github.com/Lolirofle/midi-notes-display/pair"
)

// Source is anything that can be pulled from until it reports false.
type Source[A any] interface {
	Next() (A, bool)
}

// SizeHinter is implemented by sources that can bound how many values they
// have left. ok is false when no upper bound is known.
type SizeHinter interface {
	SizeHint() (lower int, upper int, ok bool)
}

// Iter is a stateful filter: f sees every source value together with the
// mutable state and decides whether to emit something for it.
type Iter[A, S, B any] struct {
	src   Source[A]
	state S
	f     func(*S, A) (B, bool)
	done  bool
}

func FilterScan[A, S, B any](src Source[A], state S, f func(*S, A) (B, bool)) *Iter[A, S, B] {
	return &Iter[A, S, B]{src: src, state: state, f: f}
}

// Next pulls from the source until f emits a value or the source runs dry.
// After the source runs dry it is never pulled again.
func (it *Iter[A, S, B]) Next() (B, bool) {
	var zero B
	if it.done {
		return zero, false
	}
	for {
		a, ok := it.src.Next()
		if !ok {
			it.done = true
			return zero, false
		}
		if b, ok := it.f(&it.state, a); ok {
			return b, true
		}
	}
}

func (it *Iter[A, S, B]) SizeHint() (int, int, bool) {
	if it.done {
		return 0, 0, true
	}
	if h, ok := it.src.(SizeHinter); ok {
		if _, upper, ok := h.SizeHint(); ok {
			return 0, upper, true
		}
	}
	return 0, 0, false
}

// State exposes the scan state as it stands after the values pulled so far.
func (it *Iter[A, S, B]) State() *S {
	return &it.state
}

// ExpandIter is like Iter but each source value produces up to two outputs.
type ExpandIter[A, S, B any] struct {
	src   Source[A]
	state S
	f     func(*S, A) pair.Iter[B]
	cur   pair.Iter[B]
	done  bool
}

func Expand[A, S, B any](src Source[A], state S, f func(*S, A) pair.Iter[B]) *ExpandIter[A, S, B] {
	return &ExpandIter[A, S, B]{src: src, state: state, f: f, cur: pair.Empty[B]()}
}

func (it *ExpandIter[A, S, B]) Next() (B, bool) {
	for {
		if b, ok := it.cur.Next(); ok {
			return b, true
		}
		if it.done {
			var zero B
			return zero, false
		}
		a, ok := it.src.Next()
		if !ok {
			it.done = true
			continue
		}
		it.cur = it.f(&it.state, a)
	}
}

// SizeHint is advisory: the upper bound assumes every remaining source value
// expands to two outputs.
func (it *ExpandIter[A, S, B]) SizeHint() (int, int, bool) {
	pending := it.cur.Len()
	if it.done {
		return pending, pending, true
	}
	if h, ok := it.src.(SizeHinter); ok {
		if _, upper, ok := h.SizeHint(); ok {
			return pending, pending + 2*upper, true
		}
	}
	return pending, 0, false
}

func (it *ExpandIter[A, S, B]) State() *S {
	return &it.state
}

// Collect drains src into a slice.
func Collect[A any](src Source[A]) []A {
	var res []A
	if h, ok := src.(SizeHinter); ok {
		if lower, _, _ := h.SizeHint(); lower > 0 {
			res = make([]A, 0, lower)
		}
	}
	for {
		a, ok := src.Next()
		if !ok {
			return res
		}
		res = append(res, a)
	}
}

// All adapts src for use in a range statement. Breaking out of the loop
// leaves the rest of src unconsumed.
func All[A any](src Source[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			a, ok := src.Next()
			if !ok || !yield(a) {
				return
			}
		}
	}
}

func Fold[A, R any](src Source[A], init R, f func(R, A) R) R {
	acc := init
	for {
		a, ok := src.Next()
		if !ok {
			return acc
		}
		acc = f(acc, a)
	}
}
