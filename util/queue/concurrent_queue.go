package queue

import (
	"iter"
	"sync"

	"go.uber.org/atomic"
)

// ConcurrentQueue guards a RingQueue with a single lock for its whole
// lifetime. The zero value is an empty queue with DefaultCapacity.
type ConcurrentQueue[TYPE comparable] struct {
	rq     *RingQueue[TYPE]
	length atomic.Int64
	mtx    sync.RWMutex
}

func NewConcurrentQueue[TYPE comparable](capacity int, growth GrowthFunc) (*ConcurrentQueue[TYPE], error) {
	rq, err := NewRingQueueWithGrowth[TYPE](capacity, growth)
	if err != nil {
		return nil, err
	}
	return &ConcurrentQueue[TYPE]{rq: rq}, nil
}

// queue must be called with the write lock held.
func (cq *ConcurrentQueue[TYPE]) queue() *RingQueue[TYPE] {
	if cq.rq == nil {
		cq.rq = NewDefaultRingQueue[TYPE]()
	}
	return cq.rq
}

func (cq *ConcurrentQueue[TYPE]) storeLength() {
	cq.length.Store(int64(cq.rq.Len()))
}

func (cq *ConcurrentQueue[TYPE]) Enqueue(value TYPE) error {
	cq.mtx.Lock()
	defer cq.mtx.Unlock()
	err := cq.queue().Push(value)
	cq.storeLength()
	return err
}

func (cq *ConcurrentQueue[TYPE]) Dequeue() (TYPE, error) {
	cq.mtx.Lock()
	defer cq.mtx.Unlock()
	value, err := cq.queue().Dequeue()
	cq.storeLength()
	return value, err
}

func (cq *ConcurrentQueue[TYPE]) Poll() (TYPE, bool) {
	cq.mtx.Lock()
	defer cq.mtx.Unlock()
	value, ok := cq.queue().Poll()
	cq.storeLength()
	return value, ok
}

func (cq *ConcurrentQueue[TYPE]) RemoveValue(value TYPE) bool {
	cq.mtx.Lock()
	defer cq.mtx.Unlock()
	removed := cq.queue().RemoveValue(value)
	cq.storeLength()
	return removed
}

func (cq *ConcurrentQueue[TYPE]) Clear() {
	cq.mtx.Lock()
	defer cq.mtx.Unlock()
	cq.queue().Clear()
	cq.storeLength()
}

// Front returns the head element without removing it.
func (cq *ConcurrentQueue[TYPE]) Front() (TYPE, bool) {
	cq.mtx.RLock()
	defer cq.mtx.RUnlock()
	if cq.rq == nil {
		var zero TYPE
		return zero, false
	}
	return cq.rq.Peek()
}

func (cq *ConcurrentQueue[TYPE]) Contains(value TYPE) bool {
	cq.mtx.RLock()
	defer cq.mtx.RUnlock()
	return cq.rq != nil && cq.rq.Contains(value)
}

// SnapShot copies the elements front to back under the read lock.
func (cq *ConcurrentQueue[TYPE]) SnapShot() []TYPE {
	cq.mtx.RLock()
	defer cq.mtx.RUnlock()
	if cq.rq == nil {
		return []TYPE{}
	}
	return cq.rq.ToSlice()
}

// Values iterates over a snapshot, the lock is not held while yielding.
func (cq *ConcurrentQueue[TYPE]) Values() iter.Seq[TYPE] {
	snapshot := cq.SnapShot()
	return func(yield func(TYPE) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

func (cq *ConcurrentQueue[TYPE]) Len() int {
	return int(cq.length.Load())
}

func (cq *ConcurrentQueue[TYPE]) Empty() bool {
	return cq.length.Load() == 0
}
