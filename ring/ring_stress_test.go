package ring

import (
	"math/rand"
	"testing"
)

// TestVariantsBehaveIdentically drives both layouts with one random
// operation stream and demands byte-identical observables at every step.
func TestVariantsBehaveIdentically(t *testing.T) {
	const ops = 200000

	rng := rand.New(rand.NewSource(7))
	capacity := 1 + rng.Intn(16)

	iq, err := New[int](capacity)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cq, err := NewChain[int](capacity)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}

	for op := 0; op < ops; op++ {
		switch rng.Intn(6) {
		case 0, 1:
			v := rng.Intn(1000)
			e1, e2 := iq.Enqueue(v), cq.Enqueue(v)
			if e1 != e2 {
				t.Fatalf("op %d: Enqueue diverged: index=%v chain=%v", op, e1, e2)
			}
		case 2, 3:
			v1, e1 := iq.Dequeue()
			v2, e2 := cq.Dequeue()
			if v1 != v2 || e1 != e2 {
				t.Fatalf("op %d: Dequeue diverged: index=(%d,%v) chain=(%d,%v)", op, v1, e1, v2, e2)
			}
		case 4:
			v1, e1 := iq.PeekFront()
			v2, e2 := cq.PeekFront()
			if v1 != v2 || e1 != e2 {
				t.Fatalf("op %d: PeekFront diverged", op)
			}
		case 5:
			i := rng.Intn(capacity+2) - 1
			v1, e1 := iq.GetAt(i)
			v2, e2 := cq.GetAt(i)
			if v1 != v2 || e1 != e2 {
				t.Fatalf("op %d: GetAt(%d) diverged: index=(%d,%v) chain=(%d,%v)", op, i, v1, e1, v2, e2)
			}
		}

		if iq.Size() != cq.Size() || iq.Empty() != cq.Empty() || iq.Full() != cq.Full() {
			t.Fatalf("op %d: state diverged: size %d/%d", op, iq.Size(), cq.Size())
		}
		target := rng.Intn(1000)
		p1 := iq.FindPosition(func(v int) bool { return v == target })
		p2 := cq.FindPosition(func(v int) bool { return v == target })
		if p1 != p2 {
			t.Fatalf("op %d: FindPosition diverged: %d vs %d", op, p1, p2)
		}
	}
}

// TestWrapStressAgainstReference checks the index ring against a plain
// slice model across many wrap cycles.
func TestWrapStressAgainstReference(t *testing.T) {
	const ops = 100000

	rng := rand.New(rand.NewSource(8))
	capacity := 2 + rng.Intn(10)
	q, err := New[int](capacity)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ref := make([]int, 0, capacity)

	for op := 0; op < ops; op++ {
		if rng.Intn(2) == 0 {
			v := rng.Int()
			err := q.Enqueue(v)
			if len(ref) == capacity {
				if err != ErrFull {
					t.Fatalf("op %d: want ErrFull, got %v", op, err)
				}
			} else {
				if err != nil {
					t.Fatalf("op %d: Enqueue failed: %v", op, err)
				}
				ref = append(ref, v)
			}
		} else {
			got, err := q.Dequeue()
			if len(ref) == 0 {
				if err != ErrEmpty {
					t.Fatalf("op %d: want ErrEmpty, got %v", op, err)
				}
			} else {
				if err != nil || got != ref[0] {
					t.Fatalf("op %d: Dequeue: got (%d, %v), want %d", op, got, err, ref[0])
				}
				ref = ref[1:]
			}
		}

		if q.Size() != len(ref) {
			t.Fatalf("op %d: size drifted: got %d, want %d", op, q.Size(), len(ref))
		}
		if len(ref) > 0 {
			i := rng.Intn(len(ref))
			got, err := q.GetAt(i)
			if err != nil || got != ref[i] {
				t.Fatalf("op %d: GetAt(%d): got (%d, %v), want %d", op, i, got, err, ref[i])
			}
		}
	}
}
