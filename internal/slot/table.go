// Package slot implements the fixed-slot record table (§4.2): a
// `MAX_RECORDS`-sized vector mapping `id → (slot, offset, length, bloom)`,
// backed by a text arena for the byte storage.
//
// The per-slot layout mirrors the flattened row design of the teacher's
// slot table (coregx-coregex/nfa/slot_table.go: one preallocated array,
// indexed directly instead of allocated per entry); the id→slot index
// follows the map-guarded bounded cache shape of
// coregx-coregex/dfa/lazy/cache.go.
package slot

import (
	"github.com/RafaCalRob/FlashFuzzy/internal/arena"
	"github.com/RafaCalRob/FlashFuzzy/internal/simd"
)

// Record is one slot's contents (§3 "Record").
type Record struct {
	Live      bool
	ID        uint32
	Offset    int
	Length    int
	Signature uint64
}

// Table is the fixed-capacity record table (§4.2).
type Table struct {
	arena      *arena.Arena
	records    []Record
	idToSlot   map[uint32]int
	count      int
	highWater  int // one past the highest slot index ever occupied
	maxTextLen int
}

// New creates a Table with room for maxRecords slots, backed by ar for text
// storage, rejecting record text longer than maxTextLen (§3 "MAX_TEXT_LEN").
func New(ar *arena.Arena, maxRecords, maxTextLen int) *Table {
	return &Table{
		arena:      ar,
		records:    make([]Record, maxRecords),
		idToSlot:   make(map[uint32]int, maxRecords),
		maxTextLen: maxTextLen,
	}
}

// Add folds the case of text in place, validates it, and stores it under
// id (§4.2 "add"). Returns false on empty/over-length text, arena
// exhaustion, or slot exhaustion; the table is left unmodified on failure.
//
// Re-adding an id that is already live replaces it in place, reusing the
// same slot (§3 Invariants: "re-adding a live id replaces in place"); the
// previous arena allocation is not reclaimed until Compact (§4.2).
func (t *Table) Add(id uint32, text []byte) bool {
	if len(text) == 0 || len(text) > t.maxTextLen {
		return false
	}

	simd.FoldASCII(text)
	sig := simd.Signature(text)

	slotIdx, existed := t.idToSlot[id]
	if !existed {
		var ok bool
		slotIdx, ok = t.firstFreeSlot()
		if !ok {
			return false
		}
	}

	offset, err := t.arena.Alloc(text)
	if err != nil {
		return false
	}

	t.records[slotIdx] = Record{
		Live:      true,
		ID:        id,
		Offset:    offset,
		Length:    len(text),
		Signature: sig,
	}
	if !existed {
		t.idToSlot[id] = slotIdx
		t.count++
		if slotIdx+1 > t.highWater {
			t.highWater = slotIdx + 1
		}
	}
	return true
}

// firstFreeSlot returns the lowest-index empty slot (§4.2 "first-fit from
// index 0"), bounded by the high-water mark so churn on a dense prefix
// stays cheap, growing the table's working set by one slot only when the
// existing prefix has no room.
func (t *Table) firstFreeSlot() (int, bool) {
	for i := 0; i < t.highWater; i++ {
		if !t.records[i].Live {
			return i, true
		}
	}
	if t.highWater < len(t.records) {
		return t.highWater, true
	}
	return 0, false
}

// Remove tombstones the slot holding id (§4.2 "remove"). The slot becomes
// immediately reusable; arena bytes are reclaimed only by Compact.
func (t *Table) Remove(id uint32) bool {
	slotIdx, ok := t.idToSlot[id]
	if !ok {
		return false
	}
	t.records[slotIdx] = Record{}
	delete(t.idToSlot, id)
	t.count--
	return true
}

// Reset clears all slots and the backing arena, preserving capacity
// (§4.2 "reset").
func (t *Table) Reset() {
	for i := range t.records {
		t.records[i] = Record{}
	}
	for id := range t.idToSlot {
		delete(t.idToSlot, id)
	}
	t.count = 0
	t.highWater = 0
	t.arena.Reset()
}

// Count returns the number of live records (§4.2 "count").
func (t *Table) Count() int {
	return t.count
}

// Capacity returns the maximum number of records the table can hold.
func (t *Table) Capacity() int {
	return len(t.records)
}

// HighWater returns one past the highest slot index ever occupied; callers
// scanning slot order only need to visit [0, HighWater).
func (t *Table) HighWater() int {
	return t.highWater
}

// At returns the record stored at slotIdx and whether it is live. Used by
// the matcher to scan in slot order (§2 "Control flow for a query").
func (t *Table) At(slotIdx int) (Record, bool) {
	r := t.records[slotIdx]
	return r, r.Live
}

// Text returns the byte slice for the record at slotIdx, aliasing the
// arena. Only valid for a live slot.
func (t *Table) Text(slotIdx int) []byte {
	r := t.records[slotIdx]
	return t.arena.Slice(r.Offset, r.Length)
}

// Compact rewrites the arena so live records occupy a dense prefix in
// slot order, updating each live record's offset, and returns the number
// of bytes reclaimed (§4.1 "compact").
func (t *Table) Compact() int {
	entries := make([]arena.CompactEntry, 0, t.count)
	liveSlots := make([]int, 0, t.count)
	for i := 0; i < t.highWater; i++ {
		if t.records[i].Live {
			entries = append(entries, arena.CompactEntry{
				Offset: t.records[i].Offset,
				Length: t.records[i].Length,
			})
			liveSlots = append(liveSlots, i)
		}
	}

	reclaimed := t.arena.Compact(entries)

	for i, slotIdx := range liveSlots {
		t.records[slotIdx].Offset = entries[i].Offset
	}
	return reclaimed
}
