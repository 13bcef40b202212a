package queue

import "github.com/pkg/errors"

// DefaultCapacity is the starting capacity used by NewDefaultRingQueue.
const DefaultCapacity = 100

// GrowthFunc maps the current capacity of a full queue to the capacity of
// the block that replaces it. The result must be larger than the argument.
type GrowthFunc func(capacity int) int

// Double is the default growth policy.
func Double(capacity int) int {
	return capacity * 2
}

// Stats counts the structural events of a RingQueue since it was created.
type Stats struct {
	Reallocations uint64
	Inserts       uint64
	Removals      uint64
}

// RingQueue is a growable double-ended queue stored in a circular buffer.
// Logical element i lives at list[(head+i) % capacity]. It is not safe for
// concurrent use, see ConcurrentQueue.
type RingQueue[TYPE comparable] struct {
	list     []TYPE
	capacity int
	head     int
	tail     int
	size     int
	growth   GrowthFunc
	stats    Stats
}

func NewRingQueue[TYPE comparable](capacity int) (*RingQueue[TYPE], error) {
	return NewRingQueueWithGrowth[TYPE](capacity, Double)
}

// NewRingQueueWithGrowth creates a queue that reallocates with growth once
// full. A nil growth falls back to Double.
func NewRingQueueWithGrowth[TYPE comparable](capacity int, growth GrowthFunc) (*RingQueue[TYPE], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	if growth == nil {
		growth = Double
	}
	return &RingQueue[TYPE]{
		list:     make([]TYPE, capacity),
		capacity: capacity,
		head:     0,
		tail:     0,
		size:     0,
		growth:   growth,
	}, nil
}

func NewDefaultRingQueue[TYPE comparable]() *RingQueue[TYPE] {
	rq, _ := NewRingQueueWithGrowth[TYPE](DefaultCapacity, Double)
	return rq
}

// Push appends value at the tail, reallocating first when the buffer is full.
func (rq *RingQueue[TYPE]) Push(value TYPE) error {
	if rq.size == rq.capacity {
		if err := rq.grow(); err != nil {
			return err
		}
	}
	rq.list[rq.tail] = value
	rq.tail = (rq.tail + 1) % rq.capacity
	rq.size++
	rq.stats.Inserts++
	return nil
}

func (rq *RingQueue[TYPE]) grow() error {
	newCapacity := rq.growth(rq.capacity)
	if newCapacity <= rq.capacity {
		return errors.Wrapf(ErrGrowthPolicyViolation, "capacity %d grew to %d", rq.capacity, newCapacity)
	}
	list := make([]TYPE, newCapacity)
	rq.copyTo(list)
	rq.list = list
	rq.capacity = newCapacity
	rq.head = 0
	rq.tail = rq.size
	rq.stats.Reallocations++
	return nil
}

// copyTo writes the live elements front to back into dst, which must hold
// at least size elements.
func (rq *RingQueue[TYPE]) copyTo(dst []TYPE) {
	end := rq.head + rq.size
	if end <= rq.capacity {
		copy(dst, rq.list[rq.head:end])
		return
	}
	n := copy(dst, rq.list[rq.head:])
	copy(dst[n:rq.size], rq.list[:end-rq.capacity])
}

func (rq *RingQueue[TYPE]) physical(index int) int {
	return (rq.head + index) % rq.capacity
}

func (rq *RingQueue[TYPE]) at(index int) TYPE {
	return rq.list[rq.physical(index)]
}

// removeAt drops the element at logical index, 0 <= index < size.
func (rq *RingQueue[TYPE]) removeAt(index int) TYPE {
	var zero TYPE
	pos := rq.physical(index)
	value := rq.list[pos]
	rq.stats.Removals++

	if index == 0 {
		rq.list[pos] = zero
		rq.head = (rq.head + 1) % rq.capacity
		rq.size--
		return value
	}

	last := (rq.tail - 1 + rq.capacity) % rq.capacity
	if index < rq.size-1 {
		// shift everything after pos one slot toward the front
		if pos < last {
			copy(rq.list[pos:last], rq.list[pos+1:last+1])
		} else {
			copy(rq.list[pos:rq.capacity-1], rq.list[pos+1:])
			rq.list[rq.capacity-1] = rq.list[0]
			copy(rq.list[:last], rq.list[1:last+1])
		}
	}
	rq.list[last] = zero
	rq.tail = last
	rq.size--
	return value
}

func (rq *RingQueue[TYPE]) checkIndex(index int) error {
	if index < 0 || index >= rq.size {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, rq.size)
	}
	return nil
}

// Get returns the element at logical index, counted from the front.
func (rq *RingQueue[TYPE]) Get(index int) (TYPE, error) {
	if err := rq.checkIndex(index); err != nil {
		var zero TYPE
		return zero, err
	}
	return rq.at(index), nil
}

func (rq *RingQueue[TYPE]) RemoveAt(index int) (TYPE, error) {
	if err := rq.checkIndex(index); err != nil {
		var zero TYPE
		return zero, err
	}
	return rq.removeAt(index), nil
}

// Dequeue removes and returns the front element, ErrEmptyQueue if there is none.
func (rq *RingQueue[TYPE]) Dequeue() (TYPE, error) {
	value, ok := rq.Poll()
	if !ok {
		return value, ErrEmptyQueue
	}
	return value, nil
}

// Poll removes and returns the front element. ok is false on an empty queue.
func (rq *RingQueue[TYPE]) Poll() (value TYPE, ok bool) {
	if rq.size == 0 {
		return value, false
	}
	return rq.removeAt(0), true
}

func (rq *RingQueue[TYPE]) PollBack() (value TYPE, ok bool) {
	if rq.size == 0 {
		return value, false
	}
	return rq.removeAt(rq.size - 1), true
}

// Element returns the front element without removing it, ErrEmptyQueue if
// there is none.
func (rq *RingQueue[TYPE]) Element() (TYPE, error) {
	value, ok := rq.Peek()
	if !ok {
		return value, ErrEmptyQueue
	}
	return value, nil
}

func (rq *RingQueue[TYPE]) Peek() (value TYPE, ok bool) {
	if rq.size == 0 {
		return value, false
	}
	return rq.list[rq.head], true
}

func (rq *RingQueue[TYPE]) PeekBack() (value TYPE, ok bool) {
	if rq.size == 0 {
		return value, false
	}
	return rq.at(rq.size - 1), true
}

func (rq *RingQueue[TYPE]) Len() int {
	return rq.size
}

func (rq *RingQueue[TYPE]) Cap() int {
	return rq.capacity
}

func (rq *RingQueue[TYPE]) IsEmpty() bool {
	return rq.size == 0
}

func (rq *RingQueue[TYPE]) Stats() Stats {
	return rq.stats
}
