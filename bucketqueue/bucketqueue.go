// Package bucketqueue is a fixed-level priority queue built from an array of
// FIFO lists. Priority p in [1..levels] maps to bucket p-1; Pop and Peek scan
// buckets in ascending index order, so lower numbers win and arrival order
// breaks ties within a level.
package bucketqueue

import (
	"errors"

	"triage/list"
)

var (
	ErrEmpty           = errors.New("bucketqueue: empty queue")
	ErrInvalidPriority = errors.New("bucketqueue: priority out of range")
	ErrInvalidLevels   = errors.New("bucketqueue: level count must be positive")
)

// Queue dispatches elements into per-priority FIFO buckets and tracks the
// total across all of them. total equals the sum of bucket lengths after
// every operation.
type Queue[T any] struct {
	buckets []*list.List[T]
	total   int
}

// New builds a queue with the given number of priority levels. Level 1 is
// the most urgent.
func New[T any](levels int) (*Queue[T], error) {
	if levels < 1 {
		return nil, ErrInvalidLevels
	}
	q := &Queue[T]{buckets: make([]*list.List[T], levels)}
	for i := range q.buckets {
		q.buckets[i] = list.New[T](list.Append)
	}
	return q, nil
}

// Add files v under priority (1 = most urgent). Invalid priorities are
// rejected without touching any bucket.
func (q *Queue[T]) Add(v T, priority int) error {
	if priority < 1 || priority > len(q.buckets) {
		return ErrInvalidPriority
	}
	q.buckets[priority-1].Add(v)
	q.total++
	return nil
}

// Pop removes the oldest element of the most urgent non-empty bucket.
func (q *Queue[T]) Pop() (T, error) {
	for _, b := range q.buckets {
		if b.Empty() {
			continue
		}
		v, _ := b.Pop() // bucket verified non-empty
		q.total--
		return v, nil
	}
	var zero T
	return zero, ErrEmpty
}

// Peek returns what Pop would return without removing it.
func (q *Queue[T]) Peek() (T, error) {
	for _, b := range q.buckets {
		if b.Empty() {
			continue
		}
		v, _ := b.Peek()
		return v, nil
	}
	var zero T
	return zero, ErrEmpty
}

// Contains scans buckets in priority order and reports whether any element
// satisfies pred.
func (q *Queue[T]) Contains(pred func(T) bool) bool {
	for _, b := range q.buckets {
		if b.Contains(pred) {
			return true
		}
	}
	return false
}

// LevelLen reports how many elements wait at one priority level.
func (q *Queue[T]) LevelLen(priority int) (int, error) {
	if priority < 1 || priority > len(q.buckets) {
		return 0, ErrInvalidPriority
	}
	return q.buckets[priority-1].Len(), nil
}

func (q *Queue[T]) Len() int    { return q.total }
func (q *Queue[T]) Empty() bool { return q.total == 0 }
func (q *Queue[T]) Levels() int { return len(q.buckets) }
