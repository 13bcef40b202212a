package queue

import (
	"strconv"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestIterator(t *testing.T) {
	rq := newIntQueue(t, 5, 1, 8, 7, 9)
	assert.Equal(t, "{1, 8, 7, 9}", rq.String())

	sb := strings.Builder{}
	sb.WriteString("{")
	for i, v := range rq.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString("}")
	assert.Equal(t, "{1, 8, 7, 9}", sb.String())
}

func TestIteratorIsRestartable(t *testing.T) {
	rq := rotated(t, 4, 2)
	_, err := rq.AddAll(1, 2, 3, 4)
	assert.NilError(t, err)

	first, second := rq.Iterator(), rq.Iterator()
	v, ok := first.Next()
	assert.Assert(t, ok)
	assert.Equal(t, 1, v)

	var got []int
	for second.HasNext() {
		v, _ := second.Next()
		got = append(got, v)
	}
	assert.DeepEqual(t, []int{1, 2, 3, 4}, got)
	_, ok = second.Next()
	assert.Assert(t, !ok)

	v, ok = first.Next()
	assert.Assert(t, ok)
	assert.Equal(t, 2, v)
}

func TestIteratorBoundIsSnapshot(t *testing.T) {
	rq := newIntQueue(t, 8, 1, 2, 3)
	it := rq.Iterator()
	assert.NilError(t, rq.Push(4))

	var got []int
	for it.HasNext() {
		v, _ := it.Next()
		got = append(got, v)
	}
	assert.DeepEqual(t, []int{1, 2, 3}, got)
}

func TestIteratorAfterReallocation(t *testing.T) {
	rq := newIntQueue(t, 2, 1, 2)
	it := rq.Iterator()
	assert.NilError(t, rq.Push(3))
	assert.Equal(t, 4, rq.Cap())

	var got []int
	for it.HasNext() {
		v, _ := it.Next()
		got = append(got, v)
	}
	assert.DeepEqual(t, []int{1, 2}, got)
}

func TestIteratorRemoveUnsupported(t *testing.T) {
	rq := newIntQueue(t, 2, 1)
	it := rq.Iterator()
	it.Next()
	assert.ErrorIs(t, it.Remove(), ErrUnsupported)
	assert.Equal(t, 1, rq.Len())
}

func TestValuesStopsEarly(t *testing.T) {
	rq := newIntQueue(t, 4, 1, 2, 3, 4)
	var got []int
	for v := range rq.Values() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.DeepEqual(t, []int{1, 2}, got)

	count := 0
	for range newIntQueue(t, 1).Values() {
		count++
	}
	assert.Equal(t, 0, count)
}
