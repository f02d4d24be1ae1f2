package scan

type SliceSource[A any] struct {
	xs []A
	i  int
}

func Slice[A any](xs []A) *SliceSource[A] {
	return &SliceSource[A]{xs: xs}
}

func (s *SliceSource[A]) Next() (A, bool) {
	if s.i >= len(s.xs) {
		var zero A
		return zero, false
	}
	a := s.xs[s.i]
	s.i++
	return a, true
}

func (s *SliceSource[A]) SizeHint() (int, int, bool) {
	n := len(s.xs) - s.i
	return n, n, true
}

// FlattenSource walks every inner slice in outer order without copying.
type FlattenSource[A any] struct {
	xss   [][]A
	outer int
	inner int
}

func Flatten[A any](xss [][]A) *FlattenSource[A] {
	return &FlattenSource[A]{xss: xss}
}

func (s *FlattenSource[A]) Next() (A, bool) {
	for s.outer < len(s.xss) {
		xs := s.xss[s.outer]
		if s.inner < len(xs) {
			a := xs[s.inner]
			s.inner++
			return a, true
		}
		s.outer++
		s.inner = 0
	}
	var zero A
	return zero, false
}

func (s *FlattenSource[A]) SizeHint() (int, int, bool) {
	var n int
	for i := s.outer; i < len(s.xss); i++ {
		n += len(s.xss[i])
	}
	if s.outer < len(s.xss) {
		n -= s.inner
	}
	return n, n, true
}
