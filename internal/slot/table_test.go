package slot

import (
	"bytes"
	"testing"

	"github.com/RafaCalRob/FlashFuzzy/internal/arena"
)

func newTestTable(maxRecords, maxTextLen, arenaCap int) *Table {
	return New(arena.New(arenaCap), maxRecords, maxTextLen)
}

func TestAddAndCount(t *testing.T) {
	tbl := newTestTable(10, 255, 1024)
	if !tbl.Add(1, []byte("Hello")) {
		t.Fatal("Add(1) should succeed")
	}
	if tbl.Count() != 1 {
		t.Errorf("Count() = %d, want 1", tbl.Count())
	}
	rec, live := tbl.At(0)
	if !live || rec.ID != 1 {
		t.Fatalf("At(0) = %+v, live=%v", rec, live)
	}
	if got := tbl.Text(0); !bytes.Equal(got, []byte("hello")) {
		t.Errorf("Text(0) = %q, want folded %q", got, "hello")
	}
}

func TestAddRejectsEmptyAndOverLength(t *testing.T) {
	tbl := newTestTable(10, 4, 1024)
	if tbl.Add(1, []byte("")) {
		t.Error("Add with empty text should fail")
	}
	if tbl.Add(2, []byte("toolong")) {
		t.Error("Add with over-length text should fail")
	}
	if tbl.Count() != 0 {
		t.Errorf("Count() = %d, want 0", tbl.Count())
	}
}

func TestAddReplacesInPlace(t *testing.T) {
	tbl := newTestTable(10, 255, 1024)
	tbl.Add(1, []byte("first"))
	firstSlot, _ := tbl.idToSlot[1]
	tbl.Add(1, []byte("second"))
	secondSlot := tbl.idToSlot[1]
	if firstSlot != secondSlot {
		t.Errorf("re-adding id 1 moved slot from %d to %d, want same slot", firstSlot, secondSlot)
	}
	if tbl.Count() != 1 {
		t.Errorf("Count() after replace = %d, want 1", tbl.Count())
	}
	if got := tbl.Text(secondSlot); !bytes.Equal(got, []byte("second")) {
		t.Errorf("Text after replace = %q, want %q", got, "second")
	}
}

func TestRemoveFreesSlotForReuse(t *testing.T) {
	tbl := newTestTable(2, 255, 1024)
	tbl.Add(1, []byte("aaaa"))
	tbl.Add(2, []byte("bbbb"))
	if tbl.Add(3, []byte("cccc")) {
		t.Fatal("Add(3) should fail: table is full") // sanity: capacity 2
	}
	if !tbl.Remove(1) {
		t.Fatal("Remove(1) should succeed")
	}
	if tbl.Count() != 1 {
		t.Errorf("Count() after remove = %d, want 1", tbl.Count())
	}
	if !tbl.Add(3, []byte("cccc")) {
		t.Fatal("Add(3) should succeed after freeing a slot")
	}
	if tbl.Count() != 2 {
		t.Errorf("Count() after reuse = %d, want 2", tbl.Count())
	}
}

func TestRemoveUnknownIDFails(t *testing.T) {
	tbl := newTestTable(4, 255, 1024)
	if tbl.Remove(99) {
		t.Error("Remove of unknown id should return false")
	}
}

func TestReset(t *testing.T) {
	tbl := newTestTable(4, 255, 1024)
	tbl.Add(1, []byte("abcd"))
	tbl.Add(2, []byte("efgh"))
	tbl.Reset()
	if tbl.Count() != 0 {
		t.Errorf("Count() after Reset = %d, want 0", tbl.Count())
	}
	if tbl.arena.Used() != 0 {
		t.Errorf("arena Used() after Reset = %d, want 0", tbl.arena.Used())
	}
	if !tbl.Add(1, []byte("fresh")) {
		t.Fatal("Add after Reset should succeed")
	}
}

func TestCompactPreservesLiveRecordsAndReclaims(t *testing.T) {
	tbl := newTestTable(4, 255, 1024)
	tbl.Add(1, []byte("aaaa"))
	tbl.Add(2, []byte("bbbb"))
	tbl.Add(3, []byte("cccc"))
	tbl.Remove(2)

	before := tbl.arena.Used()
	reclaimed := tbl.Compact()
	if reclaimed != 4 {
		t.Errorf("reclaimed = %d, want 4", reclaimed)
	}
	if tbl.arena.Used() != before-4 {
		t.Errorf("arena.Used() after compact = %d, want %d", tbl.arena.Used(), before-4)
	}

	rec1, live1 := tbl.At(0)
	if !live1 || rec1.ID != 1 {
		t.Fatalf("slot 0 after compact = %+v live=%v, want id 1", rec1, live1)
	}
	if got := tbl.Text(0); !bytes.Equal(got, []byte("aaaa")) {
		t.Errorf("id 1 text after compact = %q, want %q", got, "aaaa")
	}

	rec3, live3 := tbl.At(2)
	if !live3 || rec3.ID != 3 {
		t.Fatalf("slot 2 after compact = %+v live=%v, want id 3", rec3, live3)
	}
	if got := tbl.Text(2); !bytes.Equal(got, []byte("cccc")) {
		t.Errorf("id 3 text after compact = %q, want %q", got, "cccc")
	}
}

func TestCapacityExhaustion(t *testing.T) {
	tbl := newTestTable(1, 255, 1024)
	if !tbl.Add(1, []byte("a")) {
		t.Fatal("first Add should succeed")
	}
	if tbl.Add(2, []byte("b")) {
		t.Error("Add beyond slot capacity should fail")
	}
}

func TestArenaExhaustionLeavesTableUnmodified(t *testing.T) {
	tbl := newTestTable(4, 255, 4)
	if !tbl.Add(1, []byte("abcd")) {
		t.Fatal("first Add should fit exactly")
	}
	if tbl.Add(2, []byte("e")) {
		t.Error("Add beyond arena capacity should fail")
	}
	if tbl.Count() != 1 {
		t.Errorf("Count() = %d, want 1 (failed add must not be counted)", tbl.Count())
	}
}
