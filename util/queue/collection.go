package queue

import (
	"fmt"
	"reflect"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Add pushes value and reports true. It only fails when the growth
// function breaks its contract.
func (rq *RingQueue[TYPE]) Add(value TYPE) (bool, error) {
	if err := rq.Push(value); err != nil {
		return false, err
	}
	return true, nil
}

// Offer is Add without the error.
func (rq *RingQueue[TYPE]) Offer(value TYPE) bool {
	return rq.Push(value) == nil
}

// Find returns the logical index of the first element matching pred, or -1.
func (rq *RingQueue[TYPE]) Find(pred func(TYPE) bool) int {
	for i := 0; i < rq.size; i++ {
		if pred(rq.at(i)) {
			return i
		}
	}
	return -1
}

func (rq *RingQueue[TYPE]) IndexOf(value TYPE) int {
	return rq.Find(func(v TYPE) bool { return v == value })
}

func (rq *RingQueue[TYPE]) Contains(value TYPE) bool {
	return rq.IndexOf(value) >= 0
}

// RemoveValue removes the first element equal to value.
func (rq *RingQueue[TYPE]) RemoveValue(value TYPE) bool {
	i := rq.IndexOf(value)
	if i < 0 {
		return false
	}
	rq.removeAt(i)
	return true
}

func (rq *RingQueue[TYPE]) ContainsAll(values ...TYPE) bool {
	present := mapset.NewThreadUnsafeSet[TYPE](rq.ToSlice()...)
	return present.Contains(values...)
}

// AddAll pushes values in order and reports whether any were added. On a
// growth failure the values pushed before it stay in the queue.
func (rq *RingQueue[TYPE]) AddAll(values ...TYPE) (bool, error) {
	for i, v := range values {
		if err := rq.Push(v); err != nil {
			return i > 0, err
		}
	}
	return len(values) > 0, nil
}

// RemoveIf removes every element matching pred and reports whether the
// queue changed.
func (rq *RingQueue[TYPE]) RemoveIf(pred func(TYPE) bool) bool {
	changed := false
	for i := 0; i < rq.size; {
		if pred(rq.at(i)) {
			rq.removeAt(i)
			changed = true
			continue
		}
		i++
	}
	return changed
}

func (rq *RingQueue[TYPE]) RemoveAll(values ...TYPE) bool {
	set := mapset.NewThreadUnsafeSet[TYPE](values...)
	return rq.RemoveIf(func(v TYPE) bool { return set.Contains(v) })
}

func (rq *RingQueue[TYPE]) RetainAll(values ...TYPE) bool {
	set := mapset.NewThreadUnsafeSet[TYPE](values...)
	return rq.RemoveIf(func(v TYPE) bool { return !set.Contains(v) })
}

// ToSlice returns a new slice holding the elements front to back.
func (rq *RingQueue[TYPE]) ToSlice() []TYPE {
	out := make([]TYPE, rq.size)
	rq.copyTo(out)
	return out
}

// ToArray copies the elements into dst when it is long enough and returns
// it, zeroing the slot after the last element if dst has room to spare.
// Otherwise a new slice of exactly Len() elements is returned.
func (rq *RingQueue[TYPE]) ToArray(dst []TYPE) []TYPE {
	if len(dst) < rq.size {
		return rq.ToSlice()
	}
	rq.copyTo(dst)
	if len(dst) > rq.size {
		var zero TYPE
		dst[rq.size] = zero
	}
	return dst
}

// Clear empties the queue but keeps the allocated buffer.
func (rq *RingQueue[TYPE]) Clear() {
	var zero TYPE
	for i := range rq.list {
		rq.list[i] = zero
	}
	rq.size = 0
	rq.head = 0
	rq.tail = 0
}

func (rq *RingQueue[TYPE]) String() string {
	sb := strings.Builder{}
	sb.WriteString("{")
	for i := 0; i < rq.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		v := rq.at(i)
		if isNil(v) {
			sb.WriteString("null")
		} else {
			sb.WriteString(fmt.Sprint(v))
		}
	}
	sb.WriteString("}")
	return sb.String()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
