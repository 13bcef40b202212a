package queue

import "iter"

// Iterator walks the elements that were in the queue when it was created.
// It captures head and size at creation and resolves each position against
// the queue's current buffer, so later mutation changes what it reads but
// never how many elements it yields. It does not detect concurrent
// modification.
type Iterator[TYPE comparable] struct {
	rq    *RingQueue[TYPE]
	head  int
	count int
	next  int
}

func (rq *RingQueue[TYPE]) Iterator() *Iterator[TYPE] {
	return &Iterator[TYPE]{
		rq:    rq,
		head:  rq.head,
		count: rq.size,
	}
}

func (it *Iterator[TYPE]) HasNext() bool {
	return it.next < it.count
}

func (it *Iterator[TYPE]) Next() (value TYPE, ok bool) {
	if it.next >= it.count {
		return value, false
	}
	value = it.rq.list[(it.head+it.next)%len(it.rq.list)]
	it.next++
	return value, true
}

// Remove always fails, use RingQueue.RemoveValue or RemoveIf instead.
func (it *Iterator[TYPE]) Remove() error {
	return ErrUnsupported
}

// Values yields the elements front to back.
func (rq *RingQueue[TYPE]) Values() iter.Seq[TYPE] {
	return func(yield func(TYPE) bool) {
		it := rq.Iterator()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// All yields logical index and element pairs front to back.
func (rq *RingQueue[TYPE]) All() iter.Seq2[int, TYPE] {
	return func(yield func(int, TYPE) bool) {
		it := rq.Iterator()
		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}
