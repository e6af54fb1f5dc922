// Package idindex tests validate the patient-ID index under collision,
// wraparound, update, and growth, including equivalence with a reference map.
package idindex

import (
	"math/rand"
	"testing"
)

// -----------------------------------------------------------------------------
// ░░ Constructor and Allocation Semantics ░░
// -----------------------------------------------------------------------------

func TestNewSizesTable(t *testing.T) {
	ix := New(8)
	if ix.mask == 0 {
		t.Fatal("mask should be non-zero")
	}
	if len(ix.keys) != 16 || len(ix.vals) != 16 {
		t.Fatalf("expected 16-slot table, got keys=%d, vals=%d", len(ix.keys), len(ix.vals))
	}
	if ix.Len() != 0 {
		t.Fatalf("fresh index: len=%d", ix.Len())
	}
}

func TestNewClampsTinySeeds(t *testing.T) {
	for _, seed := range []int{-1, 0, 1, 3} {
		ix := New(seed)
		if len(ix.keys) < 8 {
			t.Fatalf("New(%d): table of %d slots is below the floor", seed, len(ix.keys))
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Basic Put / Get Semantics ░░
// -----------------------------------------------------------------------------

func TestPutAndGet(t *testing.T) {
	ix := New(16)
	for i := 1; i <= 16; i++ {
		ix.Put(uint32(i), uint32(i*10))
	}
	if ix.Len() != 16 {
		t.Fatalf("len=%d, want 16", ix.Len())
	}
	for i := 1; i <= 16; i++ {
		v, ok := ix.Get(uint32(i))
		if !ok || v != uint32(i*10) {
			t.Fatalf("Get(%d) = %d,%v ; want %d,true", i, v, ok, i*10)
		}
	}
}

func TestGetMiss(t *testing.T) {
	ix := New(4)
	ix.Put(1, 123)
	if _, ok := ix.Get(99); ok {
		t.Fatal("Get(99) should return false for missing key")
	}
}

// -----------------------------------------------------------------------------
// ░░ Update Behavior ░░
// -----------------------------------------------------------------------------

func TestPutUpdatesExistingKey(t *testing.T) {
	ix := New(8)
	ix.Put(42, 100)
	ix.Put(42, 200)
	if ix.Len() != 1 {
		t.Fatalf("len=%d after double Put of one key, want 1", ix.Len())
	}
	v, ok := ix.Get(42)
	if !ok || v != 200 {
		t.Fatalf("Get(42) = %d,%v ; want 200,true", v, ok)
	}
}

// -----------------------------------------------------------------------------
// ░░ Collision and Wraparound ░░
// -----------------------------------------------------------------------------

func TestCollidingKeysAllSurvive(t *testing.T) {
	ix := New(8) // 16 slots, mask 15
	// All keys share the ideal slot 1 (key & 15 == 1).
	keys := []uint32{1, 17, 33, 49, 65}
	for i, k := range keys {
		ix.Put(k, uint32(i+1))
	}
	for i, k := range keys {
		v, ok := ix.Get(k)
		if !ok || v != uint32(i+1) {
			t.Fatalf("Get(%d) = %d,%v ; want %d,true", k, v, ok, i+1)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Growth ░░
// -----------------------------------------------------------------------------

func TestGrowthPreservesEntries(t *testing.T) {
	ix := New(4) // 8 slots; doubles well before 100 entries
	for i := 1; i <= 100; i++ {
		ix.Put(uint32(i), uint32(i)*3)
	}
	if ix.Len() != 100 {
		t.Fatalf("len=%d, want 100", ix.Len())
	}
	if len(ix.keys) < 200 {
		t.Fatalf("table of %d slots exceeds 50%% load", len(ix.keys))
	}
	for i := 1; i <= 100; i++ {
		v, ok := ix.Get(uint32(i))
		if !ok || v != uint32(i)*3 {
			t.Fatalf("Get(%d) after growth = %d,%v ; want %d,true", i, v, ok, i*3)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Stress: Randomized Equivalence with Reference Map ░░
// -----------------------------------------------------------------------------

func TestStressAgainstReferenceMap(t *testing.T) {
	const iterations = 200000

	rng := rand.New(rand.NewSource(10))
	ix := New(16)
	ref := make(map[uint32]uint32)

	for i := 0; i < iterations; i++ {
		if rng.Intn(2) == 0 {
			k := uint32(1 + rng.Intn(5000))
			v := rng.Uint32()
			ix.Put(k, v)
			ref[k] = v
		} else {
			k := uint32(1 + rng.Intn(5000))
			got, ok := ix.Get(k)
			want, wantOK := ref[k]
			if ok != wantOK || got != want {
				t.Fatalf("iter %d: Get(%d) = %d,%v ; want %d,%v", i, k, got, ok, want, wantOK)
			}
		}
		if ix.Len() != len(ref) {
			t.Fatalf("iter %d: len drifted: got %d, want %d", i, ix.Len(), len(ref))
		}
	}
}
