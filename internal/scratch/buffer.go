// Package scratch implements the shared write buffer (§4.6): a single
// reusable area hosts write bytes into before calling AddRecord or
// PreparePattern, eliminating a host→core copy.
//
// The "extra row of preallocated scratch space appended to a bigger
// buffer" framing follows coregx-coregex/nfa/slot_table.go's
// scratchOffset field.
package scratch

// Buffer is a single write buffer, sized to the larger of MAX_PATTERN_LEN
// and MAX_TEXT_LEN (§4.6). It is not safe for concurrent use and is
// overwritten by every write, matching the engine's single-threaded,
// cooperative model (§5).
type Buffer struct {
	buf       []byte
	committed int
}

// New creates a Buffer with the given capacity.
func New(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, capacity)}
}

// Cap returns the buffer's total capacity.
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// GetWriteBuffer returns a slice of length n for the host to copy bytes
// into, or nil if n exceeds the buffer's capacity (§6 "get_write_buffer";
// §7 "0 if len > cap").
func (b *Buffer) GetWriteBuffer(n int) []byte {
	if n < 0 || n > len(b.buf) {
		return nil
	}
	return b.buf[:n]
}

// CommitWrite marks the first n bytes of the buffer as the current payload
// (§6 "commit_write"). It does not validate n against what was previously
// requested from GetWriteBuffer; the host is trusted to have written
// exactly what it committed (§5: single-threaded, cooperative).
func (b *Buffer) CommitWrite(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(b.buf) {
		n = len(b.buf)
	}
	b.committed = n
}

// Payload returns the bytes committed by the most recent CommitWrite.
func (b *Buffer) Payload() []byte {
	return b.buf[:b.committed]
}
