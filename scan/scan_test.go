package scan

import (
	"testing"

	"github.com/Lolirofle/midi-notes-display/pair"
	"github.com/stretchr/testify/assert"
)

// countingSource records how many times it was pulled, including pulls
// after it ran dry.
type countingSource struct {
	xs    []int
	pulls int
}

func (s *countingSource) Next() (int, bool) {
	s.pulls++
	if len(s.xs) == 0 {
		return 0, false
	}
	x := s.xs[0]
	s.xs = s.xs[1:]
	return x, true
}

func evensDoubled(_ *struct{}, x int) (int, bool) {
	if x%2 != 0 {
		return 0, false
	}
	return x * 2, true
}

func TestFilterScanSkipsUntilEmit(t *testing.T) {
	src := &countingSource{xs: []int{1, 3, 4, 5, 6}}
	it := FilterScan(src, struct{}{}, evensDoubled)

	assert := assert.New(t)
	v, ok := it.Next()
	assert.True(ok)
	assert.Equal(8, v)
	assert.Equal(3, src.pulls, "should stop pulling as soon as a value is emitted")

	v, ok = it.Next()
	assert.True(ok)
	assert.Equal(12, v)
	assert.Equal(5, src.pulls)
}

func TestFilterScanStaysExhausted(t *testing.T) {
	src := &countingSource{xs: []int{1, 3}}
	it := FilterScan(src, struct{}{}, evensDoubled)

	assert := assert.New(t)
	_, ok := it.Next()
	assert.False(ok)
	pulls := src.pulls

	src.xs = []int{2}
	_, ok = it.Next()
	assert.False(ok)
	assert.Equal(pulls, src.pulls, "exhausted iterator must not pull again")
}

func TestFilterScanThreadsState(t *testing.T) {
	runningSum := func(sum *int, x int) (int, bool) {
		*sum += x
		return *sum, *sum%3 == 0
	}
	it := FilterScan[int, int, int](Slice([]int{1, 2, 3, 1, 2}), 0, runningSum)

	assert := assert.New(t)
	assert.Equal([]int{3, 6, 9}, Collect[int](it))
	assert.Equal(9, *it.State())
}

func TestFilterScanSizeHint(t *testing.T) {
	it := FilterScan(Slice([]int{1, 2, 3, 4}), struct{}{}, evensDoubled)

	assert := assert.New(t)
	lower, upper, ok := it.SizeHint()
	assert.True(ok)
	assert.Equal(0, lower)
	assert.Equal(4, upper)

	noHint := FilterScan(&countingSource{}, struct{}{}, evensDoubled)
	_, _, ok = noHint.SizeHint()
	assert.False(ok)
}

func TestExpand(t *testing.T) {
	// 0 -> nothing, odd -> itself, even -> itself twice
	f := func(_ *struct{}, x int) pair.Iter[int] {
		switch {
		case x == 0:
			return pair.Empty[int]()
		case x%2 == 1:
			return pair.One(x)
		default:
			return pair.Two(x, x)
		}
	}
	it := Expand(Slice([]int{0, 1, 2, 0, 3, 4}), struct{}{}, f)

	assert := assert.New(t)
	_, upper, ok := it.SizeHint()
	assert.True(ok)
	assert.Equal(12, upper)
	assert.Equal([]int{1, 2, 2, 3, 4, 4}, Collect[int](it))

	_, ok = it.Next()
	assert.False(ok)
}

func TestFlatten(t *testing.T) {
	src := Flatten([][]int{{}, {1, 2}, {}, {3}, {}})

	assert := assert.New(t)
	lower, upper, ok := src.SizeHint()
	assert.True(ok)
	assert.Equal(3, lower)
	assert.Equal(3, upper)

	src.Next()
	lower, _, _ = src.SizeHint()
	assert.Equal(2, lower)

	assert.Equal([]int{2, 3}, Collect[int](src))
	lower, _, _ = src.SizeHint()
	assert.Equal(0, lower)
}

func TestFold(t *testing.T) {
	sum := Fold[int, int](Slice([]int{1, 2, 3}), 10, func(acc, x int) int {
		return acc + x
	})
	assert.Equal(t, 16, sum)
}

func TestAllStopsOnBreak(t *testing.T) {
	src := &countingSource{xs: []int{1, 2, 3, 4}}
	var seen []int
	for x := range All[int](src) {
		seen = append(seen, x)
		if x == 2 {
			break
		}
	}

	assert := assert.New(t)
	assert.Equal([]int{1, 2}, seen)
	assert.Equal(2, src.pulls)
}
