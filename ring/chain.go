// ============================================================================
// FIXED-CAPACITY CIRCULAR QUEUE — LINKED CHAIN VARIANT
// ============================================================================
//
// Circular singly linked chain over a fixed slot arena. Occupied nodes form
// a cycle: the tail's next handle is always the head (a lone node loops to
// itself), so no nil link ever appears inside the chain. Free slots thread
// through a separate free-list.
//
// The contract is identical to the index ring in ring.go; only the walk
// costs differ (GetAt and FindPosition follow links instead of computing a
// slot index).

package ring

type idx32 uint32

const nilIdx idx32 = ^idx32(0)

// cnode is one arena slot. Occupied slots link the cycle; free slots reuse
// next as the free-list link.
type cnode[T any] struct {
	val  T
	next idx32
}

// Chain is the linked-chain layout of the circular queue.
type Chain[T any] struct {
	slots []cnode[T]
	free  idx32
	head  idx32
	tail  idx32
	count int
}

// NewChain builds an empty chain queue with the given fixed capacity.
func NewChain[T any](capacity int) (*Chain[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	c := &Chain[T]{
		slots: make([]cnode[T], capacity),
		head:  nilIdx,
		tail:  nilIdx,
	}
	for i := capacity - 1; i > 0; i-- {
		c.slots[i-1].next = idx32(i)
	}
	c.slots[capacity-1].next = nilIdx
	c.free = 0
	return c, nil
}

// Size reports the number of queued elements.
//
//go:inline
func (c *Chain[T]) Size() int { return c.count }

// Cap reports the fixed capacity.
//
//go:inline
func (c *Chain[T]) Cap() int { return len(c.slots) }

// Empty reports whether nothing is queued.
//
//go:inline
func (c *Chain[T]) Empty() bool { return c.count == 0 }

// Full reports whether every slot is occupied.
//
//go:inline
func (c *Chain[T]) Full() bool { return c.count == len(c.slots) }

// Enqueue claims a free slot for v and links it in as the new tail, keeping
// the tail→head cycle closed.
func (c *Chain[T]) Enqueue(v T) error {
	if c.count == len(c.slots) {
		return ErrFull
	}
	h := c.free
	c.free = c.slots[h].next
	c.slots[h].val = v
	if c.count == 0 {
		c.head, c.tail = h, h
		c.slots[h].next = h
	} else {
		c.slots[h].next = c.head
		c.slots[c.tail].next = h
		c.tail = h
	}
	c.count++
	return nil
}

// Dequeue unlinks and returns the head, re-closing the cycle around it.
func (c *Chain[T]) Dequeue() (T, error) {
	if c.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	h := c.head
	v := c.slots[h].val
	if c.count == 1 {
		c.head, c.tail = nilIdx, nilIdx
	} else {
		c.head = c.slots[h].next
		c.slots[c.tail].next = c.head
	}
	var zero T
	c.slots[h].val = zero
	c.slots[h].next = c.free
	c.free = h
	c.count--
	return v, nil
}

// PeekFront returns the head element without unlinking it.
func (c *Chain[T]) PeekFront() (T, error) {
	if c.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return c.slots[c.head].val, nil
}

// GetAt walks i links from the head. Valid for 0 ≤ i < Size().
func (c *Chain[T]) GetAt(i int) (T, error) {
	if i < 0 || i >= c.count {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	cur := c.head
	for ; i > 0; i-- {
		cur = c.slots[cur].next
	}
	return c.slots[cur].val, nil
}

// FindPosition walks the cycle from the head and returns the 1-based
// position of the first element satisfying pred, or -1 when nothing
// matches.
func (c *Chain[T]) FindPosition(pred func(T) bool) int {
	cur := c.head
	for i := 0; i < c.count; i++ {
		if pred(c.slots[cur].val) {
			return i + 1
		}
		cur = c.slots[cur].next
	}
	return -1
}
