// ============================================================================
// FIXED-CAPACITY CIRCULAR QUEUE — INDEX RING VARIANT
// ============================================================================
//
// Bounded FIFO with wraparound over a fully opened dynamic-array window.
// The package carries two interchangeable layouts:
//
//   - Queue (this file): front/rear/count cursors over array slots; logical
//     position i lives in physical slot (front + i) mod capacity
//   - Chain (chain.go): circular singly linked arena chain whose tail
//     always references the head
//
// Both expose the identical method set and observable behavior; tests drive
// them through one contract suite. Capacity is fixed at construction and
// never changes: a full queue rejects enqueues rather than growing.
//
// Safety model:
//   - Single-threaded by contract: no locks, no atomics
//   - Failed operations never mutate state (full enqueue and empty dequeue
//     are pure rejections)
//   - Vacated slots are zeroed so stale elements never pin heap objects

package ring

import (
	"errors"

	"triage/dynarray"
)

// ============================================================================
// ERRORS
// ============================================================================

var (
	ErrEmpty           = errors.New("ring: empty queue")
	ErrFull            = errors.New("ring: queue full")
	ErrIndexOutOfRange = errors.New("ring: index out of range")
	ErrInvalidCapacity = errors.New("ring: capacity must be positive")
)

// ============================================================================
// INDEX RING
// ============================================================================

// Queue is the index-ring layout: a window of capacity array slots with
// wrapping front/rear cursors. rear trails at -1 until the first enqueue.
type Queue[T any] struct {
	slots    *dynarray.Array[T]
	capacity int
	front    int
	rear     int
	count    int
}

// New builds an empty ring with the given fixed capacity.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	// The array floor is two slots; a one-slot ring leaves the spare
	// permanently unused.
	window := capacity
	if window < dynarray.MinCapacity {
		window = dynarray.MinCapacity
	}
	slots, err := dynarray.NewWithLen[T](window, window)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{slots: slots, capacity: capacity, rear: -1}, nil
}

// Size reports the number of queued elements.
//
//go:inline
func (q *Queue[T]) Size() int { return q.count }

// Cap reports the fixed capacity.
//
//go:inline
func (q *Queue[T]) Cap() int { return q.capacity }

// Empty reports whether nothing is queued.
//
//go:inline
func (q *Queue[T]) Empty() bool { return q.count == 0 }

// Full reports whether every slot is occupied.
//
//go:inline
func (q *Queue[T]) Full() bool { return q.count == q.capacity }

// Enqueue appends v behind the rear cursor, wrapping into freed slots.
func (q *Queue[T]) Enqueue(v T) error {
	if q.count == q.capacity {
		return ErrFull
	}
	q.rear = (q.rear + 1) % q.capacity
	_ = q.slots.Set(q.rear, v) // cursor stays inside the opened window
	q.count++
	return nil
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	v, _ := q.slots.Get(q.front)
	var zero T
	_ = q.slots.Set(q.front, zero)
	q.front = (q.front + 1) % q.capacity
	q.count--
	return v, nil
}

// PeekFront returns the front element without removing it.
func (q *Queue[T]) PeekFront() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.slots.Get(q.front)
}

// GetAt returns the element at logical position i (0 = front). Valid for
// 0 ≤ i < Size().
func (q *Queue[T]) GetAt(i int) (T, error) {
	if i < 0 || i >= q.count {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return q.slots.Get((q.front + i) % q.capacity)
}

// FindPosition scans front to rear and returns the 1-based logical position
// of the first element satisfying pred, or -1 when nothing matches.
func (q *Queue[T]) FindPosition(pred func(T) bool) int {
	for i := 0; i < q.count; i++ {
		v, _ := q.slots.Get((q.front + i) % q.capacity)
		if pred(v) {
			return i + 1
		}
	}
	return -1
}
