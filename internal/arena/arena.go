// Package arena implements the fixed-capacity text arena (§4.1): a single
// contiguous buffer holding all record bytes, allocated bump-only with no
// per-object free.
//
// The design follows the flattened, fully preallocated buffer pattern used
// by the teacher's slot table (coregx-coregex/nfa/slot_table.go), which
// keeps one big backing array and hands out sub-slices rather than
// allocating per record.
package arena

import "errors"

// ErrOutOfSpace is returned by Alloc when the arena has no room left for
// the requested length (§4.1 "alloc fails when the new bump pointer would
// exceed ARENA_CAP").
var ErrOutOfSpace = errors.New("arena: out of space")

// Arena is a contiguous, pre-allocated byte buffer with bump allocation.
// It is not safe for concurrent use (§5: the whole engine is single
// threaded).
type Arena struct {
	buf  []byte
	bump int
}

// New creates an Arena with the given fixed capacity.
func New(capacity int) *Arena {
	return &Arena{buf: make([]byte, capacity)}
}

// Cap returns the arena's total capacity in bytes.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Used returns the number of bytes currently allocated (the bump pointer).
func (a *Arena) Used() int {
	return a.bump
}

// Available returns the number of bytes still free.
func (a *Arena) Available() int {
	return len(a.buf) - a.bump
}

// Alloc copies text into the arena and returns the offset it was written
// at. Returns ErrOutOfSpace if the arena does not have room; in that case
// the arena is left unmodified.
func (a *Arena) Alloc(text []byte) (offset int, err error) {
	n := len(text)
	if n > a.Available() {
		return 0, ErrOutOfSpace
	}
	offset = a.bump
	copy(a.buf[offset:offset+n], text)
	a.bump += n
	return offset, nil
}

// Slice returns the byte range [offset, offset+length) previously
// allocated. The returned slice aliases the arena's backing array and must
// not be retained past the next Compact or Reset.
func (a *Arena) Slice(offset, length int) []byte {
	return a.buf[offset : offset+length]
}

// Reset clears the arena, resetting the bump pointer to zero. The
// underlying buffer is reused; its contents are not cleared for
// performance (every byte from 0 to bump is overwritten before ever being
// read again, since Alloc always starts at the new bump position).
func (a *Arena) Reset() {
	a.bump = 0
}

// CompactEntry describes one live record's current placement, as needed by
// Compact to rewrite the arena in slot order.
type CompactEntry struct {
	Offset int
	Length int
}

// Compact rewrites the arena so that the records named by entries (in the
// order given, which must be slot order per §4.2) occupy a dense prefix
// with no gaps, and returns the number of bytes reclaimed (§4.1 "compact").
// The new offsets are reported through entries, not the return value.
//
// entries is mutated in place: each entry's Offset field is updated to its
// new location. Signatures and ids are not touched here; callers (the
// record table) update those separately since the arena has no notion of
// them.
func (a *Arena) Compact(entries []CompactEntry) (reclaimed int) {
	scratch := make([]byte, a.bump)
	pos := 0
	for i := range entries {
		e := entries[i]
		copy(scratch[pos:pos+e.Length], a.buf[e.Offset:e.Offset+e.Length])
		entries[i].Offset = pos
		pos += e.Length
	}
	reclaimed = a.bump - pos
	copy(a.buf, scratch[:pos])
	a.bump = pos
	return reclaimed
}
