// ============================================================================
// ARENA-BACKED SINGLY LINKED LIST
// ============================================================================
//
// Singly linked list over a growable slot arena. One type covers the whole
// list family: the insertion strategy (append, prepend, ordered) is a value
// chosen at construction, not a subtype.
//
// Architecture overview:
//   - Nodes live in a flat []node arena addressed by 32-bit handles
//   - Handles are indices: arena growth reallocates storage but never
//     invalidates a link
//   - Recycled slots chain through a free-list head; fresh slots come from
//     extending the arena
//   - nilIdx (all-ones) terminates every chain
//
// Operation set:
//   - Add (strategy-dependent), Pop/Peek from the head, Contains, Reverse,
//     Clear, recursive merge sort with alternating split, and a
//     space-delimited text dump/restore
//
// Ordering contract:
//   - Sort splits the chain node-by-node into two alternating sublists and
//     merges with LEFT preference on ties (the array sorts with the
//     opposite preference; both directions are pinned by tests)
//
// Safety model:
//   - Single-threaded by contract: no locks, no atomics
//   - Failed operations never partially mutate state; Restore builds the
//     incoming chain aside and installs it only on full success
//   - Released slots are zeroed so stale elements never pin heap objects

package list

import (
	"errors"

	"triage/utils"
)

// ============================================================================
// HANDLES AND ARENA SLOTS
// ============================================================================

type idx32 uint32

// nilIdx terminates chains and the free-list.
const nilIdx idx32 = ^idx32(0)

// node is a single arena slot: one element plus the handle of its successor.
// Free slots reuse next as the free-list link.
type node[T any] struct {
	val  T
	next idx32
}

// ============================================================================
// INSERTION STRATEGY
// ============================================================================

// Mode selects where Add links new elements.
type Mode uint8

const (
	// Append links at the tail: Pop returns elements oldest first (FIFO).
	Append Mode = iota
	// Prepend links at the head: Pop returns elements newest first (LIFO).
	Prepend
	// ordered is set by NewOrdered; it needs the comparison closure and is
	// not constructible through New.
	ordered
)

// ============================================================================
// ERRORS
// ============================================================================

var (
	ErrEmpty   = errors.New("list: empty list")
	ErrBadDump = errors.New("list: malformed dump")
)

// ============================================================================
// CORE DATA STRUCTURE
// ============================================================================

// List is a singly linked list with a construction-time insertion strategy.
// The zero value is not usable; construct through New or NewOrdered.
type List[T any] struct {
	nodes  []node[T]
	free   idx32
	head   idx32
	tail   idx32
	length int
	mode   Mode
	less   func(a, b T) bool // ordered mode only
}

// New builds an empty list with the given insertion mode. Only Append and
// Prepend are valid here; ordered insertion carries a comparison and goes
// through NewOrdered.
func New[T any](mode Mode) *List[T] {
	if mode != Append && mode != Prepend {
		panic("list: unknown insertion mode")
	}
	return &List[T]{free: nilIdx, head: nilIdx, tail: nilIdx, mode: mode}
}

// NewOrdered builds an empty list whose Add keeps elements ascending by
// less. Equal keys land after the equals already present.
func NewOrdered[T any](less func(a, b T) bool) *List[T] {
	if less == nil {
		panic("list: nil comparison")
	}
	return &List[T]{free: nilIdx, head: nilIdx, tail: nilIdx, mode: ordered, less: less}
}

// ============================================================================
// ARENA MANAGEMENT
// ============================================================================

// alloc claims a slot for v: recycled from the free-list when available,
// otherwise by extending the arena. Handles are stable across extension.
func (l *List[T]) alloc(v T) idx32 {
	if l.free != nilIdx {
		h := l.free
		n := &l.nodes[h]
		l.free = n.next
		n.val, n.next = v, nilIdx
		return h
	}
	l.nodes = append(l.nodes, node[T]{val: v, next: nilIdx})
	return idx32(len(l.nodes) - 1)
}

// release returns a slot to the free-list and drops its element.
func (l *List[T]) release(h idx32) {
	n := &l.nodes[h]
	var zero T
	n.val = zero
	n.next = l.free
	l.free = h
}

// ============================================================================
// CORE OPERATIONS
// ============================================================================

// Len reports the number of elements.
//
//go:inline
func (l *List[T]) Len() int { return l.length }

// Empty reports whether no elements are linked.
//
//go:inline
func (l *List[T]) Empty() bool { return l.length == 0 }

// Add inserts v per the construction-time strategy.
func (l *List[T]) Add(v T) {
	h := l.alloc(v)
	switch l.mode {
	case Prepend:
		l.nodes[h].next = l.head
		l.head = h
		if l.tail == nilIdx {
			l.tail = h
		}
	case ordered:
		l.linkOrdered(h)
	default: // Append
		if l.tail == nilIdx {
			l.head, l.tail = h, h
		} else {
			l.nodes[l.tail].next = h
			l.tail = h
		}
	}
	l.length++
}

// linkOrdered walks from the head and links h before the first element its
// value sorts below, keeping the chain ascending.
func (l *List[T]) linkOrdered(h idx32) {
	v := l.nodes[h].val
	if l.head == nilIdx {
		l.head, l.tail = h, h
		return
	}
	if l.less(v, l.nodes[l.head].val) {
		l.nodes[h].next = l.head
		l.head = h
		return
	}
	prev := l.head
	for next := l.nodes[prev].next; next != nilIdx; next = l.nodes[prev].next {
		if l.less(v, l.nodes[next].val) {
			break
		}
		prev = next
	}
	l.nodes[h].next = l.nodes[prev].next
	l.nodes[prev].next = h
	if l.nodes[h].next == nilIdx {
		l.tail = h
	}
}

// Pop unlinks and returns the head element. For Append mode that is the
// oldest element, for Prepend the newest.
func (l *List[T]) Pop() (T, error) {
	if l.head == nilIdx {
		var zero T
		return zero, ErrEmpty
	}
	h := l.head
	v := l.nodes[h].val
	l.head = l.nodes[h].next
	if l.head == nilIdx {
		l.tail = nilIdx
	}
	l.release(h)
	l.length--
	return v, nil
}

// Peek returns the head element without unlinking it.
func (l *List[T]) Peek() (T, error) {
	if l.head == nilIdx {
		var zero T
		return zero, ErrEmpty
	}
	return l.nodes[l.head].val, nil
}

// Contains reports whether any element satisfies pred, scanning from the
// head.
func (l *List[T]) Contains(pred func(T) bool) bool {
	for cur := l.head; cur != nilIdx; cur = l.nodes[cur].next {
		if pred(l.nodes[cur].val) {
			return true
		}
	}
	return false
}

// Reverse flips the chain in place. Empty and single-element lists are
// no-ops.
func (l *List[T]) Reverse() {
	if l.length < 2 {
		return
	}
	l.tail = l.head
	prev := nilIdx
	cur := l.head
	for cur != nilIdx {
		next := l.nodes[cur].next
		l.nodes[cur].next = prev
		prev = cur
		cur = next
	}
	l.head = prev
}

// Clear releases every node back to the free-list.
func (l *List[T]) Clear() {
	for cur := l.head; cur != nilIdx; {
		next := l.nodes[cur].next
		l.release(cur)
		cur = next
	}
	l.head, l.tail = nilIdx, nilIdx
	l.length = 0
}

// ============================================================================
// SORTING
// ============================================================================

// Sort orders the chain ascending by less with a recursive merge sort.
// The split is alternating (node 0, 2, 4, … to one sublist, 1, 3, 5, … to
// the other) and the merge prefers the LEFT element on ties.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.length < 2 {
		return
	}
	l.head = l.mergeSort(l.head, less)
	t := l.head
	for l.nodes[t].next != nilIdx {
		t = l.nodes[t].next
	}
	l.tail = t
}

func (l *List[T]) mergeSort(h idx32, less func(a, b T) bool) idx32 {
	if h == nilIdx || l.nodes[h].next == nilIdx {
		return h
	}
	a, b := l.splitAlternate(h)
	a = l.mergeSort(a, less)
	b = l.mergeSort(b, less)
	return l.merge(a, b, less)
}

// splitAlternate deals the chain into two sublists node by node, preserving
// relative order within each.
func (l *List[T]) splitAlternate(h idx32) (idx32, idx32) {
	a, b := nilIdx, nilIdx
	var at, bt idx32
	toA := true
	for cur := h; cur != nilIdx; {
		next := l.nodes[cur].next
		l.nodes[cur].next = nilIdx
		if toA {
			if a == nilIdx {
				a = cur
			} else {
				l.nodes[at].next = cur
			}
			at = cur
		} else {
			if b == nilIdx {
				b = cur
			} else {
				l.nodes[bt].next = cur
			}
			bt = cur
		}
		toA = !toA
		cur = next
	}
	return a, b
}

// merge splices two sorted chains into one. Ties take the left element
// (left loses only when the right is strictly less).
func (l *List[T]) merge(a, b idx32, less func(x, y T) bool) idx32 {
	head, tail := nilIdx, nilIdx
	for a != nilIdx && b != nilIdx {
		var pick idx32
		if !less(l.nodes[b].val, l.nodes[a].val) {
			pick, a = a, l.nodes[a].next
		} else {
			pick, b = b, l.nodes[b].next
		}
		if head == nilIdx {
			head = pick
		} else {
			l.nodes[tail].next = pick
		}
		tail = pick
	}
	rest := a
	if rest == nilIdx {
		rest = b
	}
	if head == nilIdx {
		return rest
	}
	l.nodes[tail].next = rest
	return head
}

// ============================================================================
// TEXT DUMP / RESTORE
// ============================================================================

// AppendDump renders "<count> <e1> <e2> … <eN>" onto dst and returns the
// extended slice. enc appends one element's token; tokens must not contain
// whitespace or the dump cannot be restored.
func (l *List[T]) AppendDump(dst []byte, enc func(dst []byte, v T) []byte) []byte {
	dst = utils.AppendInt(dst, int64(l.length))
	for cur := l.head; cur != nilIdx; cur = l.nodes[cur].next {
		dst = append(dst, ' ')
		dst = enc(dst, l.nodes[cur].val)
	}
	return dst
}

// Restore replaces the contents with the elements of a dump produced by
// AppendDump: a count token followed by exactly count element tokens,
// whitespace-delimited. The incoming chain is decoded in full before the
// old one is dropped, so a malformed dump (bad count, missing or trailing
// tokens, dec failure) leaves the list untouched. Elements are relinked in
// the order read regardless of the insertion mode.
func (l *List[T]) Restore(data []byte, dec func(tok []byte) (T, error)) error {
	tok, rest := nextToken(data)
	if tok == nil {
		return ErrBadDump
	}
	count, ok := utils.ParseInt(tok)
	if !ok || count < 0 {
		return ErrBadDump
	}

	// Cap the pre-allocation: the count token is untrusted until the
	// element tokens back it up.
	vals := make([]T, 0, min(count, 1<<16))
	for i := int64(0); i < count; i++ {
		tok, rest = nextToken(rest)
		if tok == nil {
			return ErrBadDump
		}
		v, err := dec(tok)
		if err != nil {
			return err
		}
		vals = append(vals, v)
	}
	if tok, _ = nextToken(rest); tok != nil {
		return ErrBadDump
	}

	l.Clear()
	for _, v := range vals {
		h := l.alloc(v)
		if l.tail == nilIdx {
			l.head, l.tail = h, h
		} else {
			l.nodes[l.tail].next = h
			l.tail = h
		}
	}
	l.length = len(vals)
	return nil
}

// nextToken slices the next whitespace-delimited token off data. A nil
// token means data held nothing but whitespace.
func nextToken(data []byte) (tok, rest []byte) {
	i := 0
	for i < len(data) && isSpace(data[i]) {
		i++
	}
	if i == len(data) {
		return nil, nil
	}
	j := i
	for j < len(data) && !isSpace(data[j]) {
		j++
	}
	return data[i:j], data[j:]
}

//go:inline
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
