// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ ROBIN HOOD ID INDEX
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Hospital Triage System
// Component: Patient-ID → Registry-Slot Hash Index
//
// Description:
//   Robin Hood hash map from patient IDs to registry slots, giving lookups and status checks
//   O(1) registry resolution instead of a linear scan. Single-threaded, open-addressed, with
//   deterministic displacement patterns.
//
// Design Principles:
//   - Power-of-2 sizing for mask-based slot arithmetic
//   - Robin Hood displacement minimizes probe distances
//   - Parallel key/value arrays for cache-friendly probing
//   - Zero key as the empty sentinel (patient IDs start at 1)
//   - Grows by doubling at 50% load, so probes stay short forever
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package idindex

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TYPE DEFINITIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Index maps uint32 patient IDs to uint32 registry slots. The zero value is
// not usable; construct through New.
//
// ⚠️ Key 0 is reserved as the empty-slot sentinel and must never be inserted.
type Index struct {
	keys  []uint32 // Key array (0 = empty sentinel)
	vals  []uint32 // Value array (parallel to keys)
	mask  uint32   // Size mask for fast modulo operation
	count int      // Live entries
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// UTILITY FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// nextPow2 calculates the smallest power of 2 greater than or equal to n.
//
//go:nosplit
//go:inline
func nextPow2(n int) uint32 {
	s := uint32(1)
	for s < uint32(n) {
		s <<= 1
	}
	return s
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CONSTRUCTOR
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// New creates an index sized for roughly seed live entries. The table is
// allocated at double the seed (rounded up to a power of 2) so the load
// factor starts under 50%, and it doubles itself whenever growth would
// cross that line.
func New(seed int) *Index {
	if seed < 4 {
		seed = 4
	}
	sz := nextPow2(seed * 2)
	return &Index{
		keys: make([]uint32, sz),
		vals: make([]uint32, sz),
		mask: sz - 1,
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CORE OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Put inserts or updates the slot stored under key using Robin Hood
// displacement: entries sitting closer to their ideal slot than the probe
// give way, which keeps worst-case probe distances tight.
//
//go:nosplit
func (ix *Index) Put(key, val uint32) {
	if (ix.count+1)*2 > len(ix.keys) {
		ix.grow()
	}
	if ix.insert(key, val) {
		ix.count++
	}
}

// insert places (key, val), displacing richer entries as it walks. Reports
// whether a new entry was created (false means an existing key was
// updated in place).
func (ix *Index) insert(key, val uint32) bool {
	i := key & ix.mask
	dist := uint32(0)

	for {
		k := ix.keys[i]

		// Empty slot: claim it.
		if k == 0 {
			ix.keys[i], ix.vals[i] = key, val
			return true
		}

		// Existing key: update the slot value.
		if k == key {
			ix.vals[i] = val
			return false
		}

		// Robin Hood displacement check: if the occupant is closer to its
		// ideal slot than we are to ours, swap and keep walking with the
		// displaced entry.
		kDist := (i + ix.mask + 1 - (k & ix.mask)) & ix.mask
		if kDist < dist {
			key, ix.keys[i] = ix.keys[i], key
			val, ix.vals[i] = ix.vals[i], val
			dist = kDist
		}

		i = (i + 1) & ix.mask
		dist++
	}
}

// Get retrieves the slot stored under key. The Robin Hood invariant allows
// the probe to stop early: passing an entry closer to its ideal slot than
// the probe distance proves the key is absent.
//
//go:nosplit
func (ix *Index) Get(key uint32) (uint32, bool) {
	i := key & ix.mask
	dist := uint32(0)

	for {
		k := ix.keys[i]

		if k == 0 {
			return 0, false
		}
		if k == key {
			return ix.vals[i], true
		}

		kDist := (i + ix.mask + 1 - (k & ix.mask)) & ix.mask
		if kDist < dist {
			return 0, false
		}

		i = (i + 1) & ix.mask
		dist++
	}
}

// Len reports the number of live entries.
//
//go:inline
func (ix *Index) Len() int { return ix.count }

// grow doubles the table and re-seats every entry. Handles stay valid
// because callers hold keys, not positions.
func (ix *Index) grow() {
	oldKeys, oldVals := ix.keys, ix.vals
	sz := uint32(len(oldKeys)) * 2
	ix.keys = make([]uint32, sz)
	ix.vals = make([]uint32, sz)
	ix.mask = sz - 1
	for i, k := range oldKeys {
		if k != 0 {
			ix.insert(k, oldVals[i])
		}
	}
}
