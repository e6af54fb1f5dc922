// ============================================================================
// GOLDEN-RATIO DYNAMIC ARRAY
// ============================================================================
//
// Contiguous growable array with a deterministic golden-ratio capacity
// schedule, positional access, and recursive merge sort.
//
// Core capabilities:
//   - Amortized O(1) append with grow-on-full (newCap = floor(cap × 1.618))
//   - Idle-triggered shrink (cap > 20 and length ≤ floor(cap / 1.618²))
//   - Positional insert/remove with suffix shifting
//   - Top-down merge sort over contiguous halves, right-preferred ties
//
// Capacity model:
//   - capacity = allocated slots, length = occupied prefix, length ≤ capacity
//   - Capacity changes through exactly two formulas (grow and shrink);
//     no other operation reallocates
//   - Arithmetic is exact rational (×1618/1000 family), never floating
//     point, so the schedule is identical on every platform
//   - Minimum construction capacity is 2: floor(1 × 1.618) = 1, so a
//     one-slot array could never grow
//
// Safety model:
//   - Single-threaded by contract: no locks, no atomics
//   - Failed operations never partially mutate state (bounds are checked
//     before any reallocation or shift)
//   - Vacated slots are zeroed so stale elements never pin heap objects

package dynarray

import "errors"

// ============================================================================
// CAPACITY SCHEDULE CONSTANTS
// ============================================================================

// The golden ratio as the exact rational 1618/1000. Growth multiplies by it,
// shrink divides by it, and the shrink trigger divides by its square
// (2618/1000). Integer arithmetic keeps floor semantics deterministic.
const (
	growNum = 1618
	growDen = 1000

	shrinkNum = 1000
	shrinkDen = 1618

	idleNum = 1000
	idleDen = 2618

	// shrinkFloor is the capacity at or below which shrink never fires.
	shrinkFloor = 20

	// MinCapacity is the smallest constructible capacity.
	MinCapacity = 2
)

// ============================================================================
// ERRORS
// ============================================================================

var (
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")
	ErrInvalidCapacity = errors.New("dynarray: capacity must be at least 2")
	ErrInvalidLength   = errors.New("dynarray: length exceeds capacity")
)

// ============================================================================
// CORE DATA STRUCTURE
// ============================================================================

// Array is a growable contiguous container. The backing slice always has
// len(buf) == capacity; the first length slots are the live elements.
type Array[T any] struct {
	buf    []T
	length int
}

// ============================================================================
// CONSTRUCTION
// ============================================================================

// New allocates an empty array with the given starting capacity.
// Capacities below MinCapacity are rejected.
func New[T any](capacity int) (*Array[T], error) {
	return NewWithLen[T](capacity, 0)
}

// NewWithLen allocates an array whose first length slots are live zero
// values. Composing containers use this to pre-open a fixed window of
// addressable slots (the circular queue builds on a fully opened array).
func NewWithLen[T any](capacity, length int) (*Array[T], error) {
	if capacity < MinCapacity {
		return nil, ErrInvalidCapacity
	}
	if length < 0 || length > capacity {
		return nil, ErrInvalidLength
	}
	return &Array[T]{buf: make([]T, capacity), length: length}, nil
}

// ============================================================================
// ACCESSORS
// ============================================================================

// Len reports the number of live elements.
//
//go:inline
func (a *Array[T]) Len() int { return a.length }

// Cap reports the allocated slot count.
//
//go:inline
func (a *Array[T]) Cap() int { return len(a.buf) }

// Empty reports whether no elements are live.
//
//go:inline
func (a *Array[T]) Empty() bool { return a.length == 0 }

// Get returns the element at index i. Valid for 0 ≤ i < Len().
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.length {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return a.buf[i], nil
}

// Set overwrites the element at index i. Valid for 0 ≤ i < Len().
// Set never changes length or capacity.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.length {
		return ErrIndexOutOfRange
	}
	a.buf[i] = v
	return nil
}

// ============================================================================
// MUTATION — APPEND / INSERT / REMOVE
// ============================================================================

// Append adds v after the last live element, growing first when full.
func (a *Array[T]) Append(v T) {
	if a.length == len(a.buf) {
		a.grow()
	}
	a.buf[a.length] = v
	a.length++
}

// Insert places v at index i, shifting the suffix right. Valid for
// 0 ≤ i ≤ Len() (i == Len() appends). Returns false without touching the
// array on an invalid index, so callers can probe positions cheaply.
func (a *Array[T]) Insert(i int, v T) bool {
	if i < 0 || i > a.length {
		return false
	}
	if a.length == len(a.buf) {
		a.grow()
	}
	copy(a.buf[i+1:a.length+1], a.buf[i:a.length])
	a.buf[i] = v
	a.length++
	return true
}

// RemoveAt deletes the element at index i, shifting the suffix left.
// Valid for 0 ≤ i < Len(); returns false (no-op) otherwise. A successful
// remove may shrink the array.
func (a *Array[T]) RemoveAt(i int) bool {
	if i < 0 || i >= a.length {
		return false
	}
	copy(a.buf[i:a.length-1], a.buf[i+1:a.length])
	a.length--
	var zero T
	a.buf[a.length] = zero
	a.shrinkIfIdle()
	return true
}

// DeleteLast drops the final element. Returns false on an empty array.
// A successful delete may shrink the array.
func (a *Array[T]) DeleteLast() bool {
	if a.length == 0 {
		return false
	}
	a.length--
	var zero T
	a.buf[a.length] = zero
	a.shrinkIfIdle()
	return true
}

// ============================================================================
// CAPACITY SCHEDULE
// ============================================================================

// grow reallocates to floor(cap × 1.618) and copies the live prefix.
// Callers invoke it only when length == capacity.
func (a *Array[T]) grow() {
	next := len(a.buf) * growNum / growDen
	nb := make([]T, next)
	copy(nb, a.buf[:a.length])
	a.buf = nb
}

// shrinkIfIdle reallocates to floor(cap / 1.618) when the array is both
// large (cap > 20) and mostly idle (length ≤ floor(cap / 1.618²)). The
// trigger bound is strictly below the new capacity, so the live prefix
// always survives the copy.
func (a *Array[T]) shrinkIfIdle() {
	c := len(a.buf)
	if c <= shrinkFloor || a.length > c*idleNum/idleDen {
		return
	}
	next := c * shrinkNum / shrinkDen
	nb := make([]T, next)
	copy(nb, a.buf[:next])
	a.buf = nb
}

// ============================================================================
// SORTING
// ============================================================================

// Sort orders the live elements ascending by less using a recursive
// top-down merge sort. The left half of each split is the first ⌊n/2⌋
// elements. On ties the RIGHT element is emitted first (an element moves
// left only when strictly less), which is this container's historical
// contract; the linked list sorts with the opposite preference.
func (a *Array[T]) Sort(less func(x, y T) bool) {
	if a.length < 2 {
		return
	}
	scratch := make([]T, a.length/2+1)
	mergeSort(a.buf[:a.length], scratch, less)
}

// mergeSort recursively splits data into contiguous halves and merges them
// back in order. scratch must hold at least ⌊len(data)/2⌋ elements.
func mergeSort[T any](data, scratch []T, less func(x, y T) bool) {
	n := len(data)
	if n < 2 {
		return
	}
	mid := n / 2
	mergeSort(data[:mid], scratch, less)
	mergeSort(data[mid:], scratch, less)

	// Stash the left half, then merge it with the in-place right half.
	// The write cursor never catches the right cursor (w = l + r - mid ≤ r),
	// so unread right elements are never overwritten.
	copy(scratch[:mid], data[:mid])
	l, r, w := 0, mid, 0
	for l < mid && r < n {
		if less(scratch[l], data[r]) {
			data[w] = scratch[l]
			l++
		} else {
			data[w] = data[r]
			r++
		}
		w++
	}
	for l < mid {
		data[w] = scratch[l]
		l++
		w++
	}
}
