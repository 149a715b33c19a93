// Package flashfuzzy is an in-memory fuzzy string search engine: given a
// bounded corpus of short text records, it answers approximate substring
// queries and returns the top-K records whose text contains a span similar
// to a query pattern within a bounded edit distance, ranked by score.
//
// The engine is a single-threaded index built from three tightly coupled
// subsystems: a fixed-capacity text arena, a per-record 64-bit signature
// filter, and a bit-parallel Wu–Manber approximate matcher, feeding a
// bounded top-K result collector. It is designed to embed behind a narrow
// value-typed boundary (see Index's methods) so it can be driven from a
// host runtime with no Go-specific types crossing the boundary: every
// input and output is an integer, a byte slice, or a boolean.
//
// Basic usage:
//
//	idx := flashfuzzy.NewIndex()
//	buf := idx.GetWriteBuffer(len("Mechanical Keyboard"))
//	copy(buf, "Mechanical Keyboard")
//	idx.CommitWrite(len("Mechanical Keyboard"))
//	idx.AddRecord(2)
//
//	buf = idx.GetWriteBuffer(len("keybord"))
//	copy(buf, "keybord")
//	idx.CommitWrite(len("keybord"))
//	idx.PreparePattern()
//
//	n := idx.Search()
//	for i := uint32(0); i < n; i++ {
//	    id := idx.GetResultID(i)
//	    _ = id
//	}
package flashfuzzy

import (
	"github.com/RafaCalRob/FlashFuzzy/internal/arena"
	"github.com/RafaCalRob/FlashFuzzy/internal/collector"
	"github.com/RafaCalRob/FlashFuzzy/internal/conv"
	"github.com/RafaCalRob/FlashFuzzy/internal/matcher"
	"github.com/RafaCalRob/FlashFuzzy/internal/scratch"
	"github.com/RafaCalRob/FlashFuzzy/internal/signature"
	"github.com/RafaCalRob/FlashFuzzy/internal/slot"
)

// Capacity defaults (§3 "Arena", "Record."). A caller embedding the engine
// in a constrained host can instead use NewIndexWithCapacity to tune these.
const (
	DefaultMaxRecords = 100_000
	DefaultMaxTextLen = 4095
	DefaultArenaCap   = 4 * 1024 * 1024

	// MaxPatternLen is the largest query pattern length the matcher can
	// hold (§3 "MAX_PATTERN_LEN").
	MaxPatternLen = matcher.MaxPatternLen

	// MaxErrorsLimit is the largest max_errors a caller may configure
	// (§3 Invariants: "max_errors ≤ 3").
	MaxErrorsLimit = matcher.MaxErrors

	// MaxResultsLimit is the largest max_results a caller may configure
	// (§3 Invariants: "max_results ≤ 100").
	MaxResultsLimit = 100

	// Default query options (§8 "End-to-end scenarios").
	DefaultThreshold  = 250 // 0.25 on the [0,1000] wire scale
	DefaultMaxErrors  = 2
	DefaultMaxResults = 50
)

// Index is the engine's single value-typed entry surface (§6). All methods
// take and return plain integers, bytes, or booleans so that a
// thin host binding can expose them unmodified across an FFI/WASM
// boundary. Index is not safe for concurrent use (§5).
type Index struct {
	arena      *arena.Arena
	table      *slot.Table
	scratch    *scratch.Buffer
	collector  *collector.Collector
	pattern    *matcher.Pattern
	lastResult []collector.Candidate

	maxRecords int
	maxTextLen int

	threshold  uint32 // [0,1000]
	maxErrors  uint32 // [0,3]
	maxResults uint32 // [1,100]
}

// NewIndex creates an Index with default capacities (§6 "init") and calls
// Init.
func NewIndex() *Index {
	idx := &Index{}
	idx.InitWithCapacity(DefaultMaxRecords, DefaultMaxTextLen, DefaultArenaCap)
	return idx
}

// NewIndexWithCapacity creates an Index with caller-chosen pool sizes, for
// hosts that want a smaller or larger corpus than the defaults.
func NewIndexWithCapacity(maxRecords, maxTextLen, arenaCap int) *Index {
	idx := &Index{}
	idx.InitWithCapacity(maxRecords, maxTextLen, arenaCap)
	return idx
}

// Init (re-)installs the engine's pools at default capacity (§6 "init").
// It is idempotent: calling it again after pools already exist is a no-op,
// matching §8 "init applied twice equals init applied once".
func (idx *Index) Init() {
	idx.InitWithCapacity(DefaultMaxRecords, DefaultMaxTextLen, DefaultArenaCap)
}

// InitWithCapacity is Init parameterized by pool size; it only allocates
// once per Index value (idempotent), so later calls with different
// arguments are ignored once pools exist — call Reset, not Init, to clear
// an already-initialized Index.
func (idx *Index) InitWithCapacity(maxRecords, maxTextLen, arenaCap int) {
	if idx.table != nil {
		return
	}

	idx.maxRecords = maxRecords
	idx.maxTextLen = maxTextLen

	scratchCap := maxTextLen
	if MaxPatternLen > scratchCap {
		scratchCap = MaxPatternLen
	}

	idx.arena = arena.New(arenaCap)
	idx.table = slot.New(idx.arena, maxRecords, maxTextLen)
	idx.scratch = scratch.New(scratchCap)
	idx.collector = collector.New(MaxResultsLimit)

	idx.threshold = DefaultThreshold
	idx.maxErrors = DefaultMaxErrors
	idx.maxResults = DefaultMaxResults
}

// Reset clears all records and the arena, preserving pool capacity (§6
// "reset").
func (idx *Index) Reset() {
	idx.table.Reset()
	idx.pattern = nil
	idx.collector.Reset()
	idx.lastResult = nil
}

// GetWriteBuffer returns a slice of length n for the host to copy bytes
// into ahead of AddRecord or PreparePattern, or nil if n exceeds the
// buffer's capacity (§6 "get_write_buffer"; §7 "0 if len > cap").
func (idx *Index) GetWriteBuffer(n int) []byte {
	return idx.scratch.GetWriteBuffer(n)
}

// CommitWrite marks the first n bytes of the write buffer as the current
// payload (§6 "commit_write").
func (idx *Index) CommitWrite(n int) {
	idx.scratch.CommitWrite(n)
}

// AddRecord consumes the scratch buffer as record text under id (§6
// "add_record"), folding case and rejecting empty or over-length input
// (§4.2 "add"). Returns false on input rejection or resource exhaustion.
func (idx *Index) AddRecord(id uint32) bool {
	return idx.table.Add(id, idx.scratch.Payload())
}

// RemoveRecord tombstones the slot holding id (§6 "remove_record").
func (idx *Index) RemoveRecord(id uint32) bool {
	return idx.table.Remove(id)
}

// Compact rewrites the arena to reclaim space from removed/replaced
// records, returning the number of bytes reclaimed (§6 "compact").
func (idx *Index) Compact() uint32 {
	return uint32(idx.table.Compact())
}

// PreparePattern consumes the scratch buffer as the query pattern (§6
// "prepare_pattern"), folding case, truncating to MaxPatternLen, and
// building the bit-parallel masks used by Search.
func (idx *Index) PreparePattern() {
	idx.pattern = matcher.Prepare(idx.scratch.Payload(), int(idx.maxErrors))
}

// Search scans all live records in slot order, admitting each through the
// signature filter before running the approximate matcher, and returns the
// number of accepted results now readable via GetResult* (§6 "search";
// §2 "Control flow for a query").
//
// Search before PreparePattern has ever been called returns 0 (§7 "State
// violation").
func (idx *Index) Search() uint32 {
	idx.collector.Reset()

	if idx.pattern != nil && idx.pattern.Len() > 0 {
		patSig := idx.pattern.Signature()
		threshold := float64(idx.threshold) / 1000.0
		highWater := idx.table.HighWater()

		for i := 0; i < highWater; i++ {
			rec, live := idx.table.At(i)
			if !live {
				continue
			}
			if !signature.Admits(rec.Signature, patSig) {
				continue
			}

			text := idx.table.Text(i)
			m, ok := matcher.Scan(text, idx.pattern)
			if !ok || m.Score < threshold {
				continue
			}

			idx.collector.Offer(collector.Candidate{
				ID:    rec.ID,
				Score: int(conv.ScoreToWire(m.Score)),
				Start: m.Start,
				End:   m.End,
			})
		}
	}

	idx.lastResult = idx.collector.Drain(int(idx.maxResults))
	return uint32(len(idx.lastResult))
}

// resultAt returns the i'th result of the last Search, or the zero value
// and false if i is out of range (§7 "get_result_* past the last search's
// count returns 0").
func (idx *Index) resultAt(i uint32) (collector.Candidate, bool) {
	if int(i) >= len(idx.lastResult) {
		return collector.Candidate{}, false
	}
	return idx.lastResult[i], true
}

// GetResultID returns the identifier of the i'th result of the last
// Search, or 0 if i is out of range (§6 "get_result_id").
func (idx *Index) GetResultID(i uint32) uint32 {
	r, _ := idx.resultAt(i)
	return r.ID
}

// GetResultScore returns the wire-encoded score ([0,1000]) of the i'th
// result of the last Search, or 0 if i is out of range (§6
// "get_result_score").
func (idx *Index) GetResultScore(i uint32) uint32 {
	r, _ := idx.resultAt(i)
	return uint32(r.Score)
}

// GetResultStart returns the match span's start offset of the i'th result
// of the last Search, or 0 if i is out of range (§6 "get_result_start").
func (idx *Index) GetResultStart(i uint32) uint32 {
	r, _ := idx.resultAt(i)
	return uint32(r.Start)
}

// GetResultEnd returns the match span's end offset of the i'th result of
// the last Search, or 0 if i is out of range (§6 "get_result_end").
func (idx *Index) GetResultEnd(i uint32) uint32 {
	r, _ := idx.resultAt(i)
	return uint32(r.End)
}

// SetThreshold sets the minimum score (in [0,1000]) a match must reach to
// be accepted, clamping out-of-range input (§6 "set_threshold"; §7
// "configuration setters clamp to the valid range").
func (idx *Index) SetThreshold(t uint32) {
	if t > 1000 {
		t = 1000
	}
	idx.threshold = t
}

// SetMaxErrors sets the error budget in [0,3] (§6 "set_max_errors").
func (idx *Index) SetMaxErrors(k uint32) {
	if k > uint32(MaxErrorsLimit) {
		k = uint32(MaxErrorsLimit)
	}
	idx.maxErrors = k
}

// SetMaxResults sets the collector capacity in [1,100] (§6
// "set_max_results").
func (idx *Index) SetMaxResults(r uint32) {
	if r < 1 {
		r = 1
	}
	if r > uint32(MaxResultsLimit) {
		r = uint32(MaxResultsLimit)
	}
	idx.maxResults = r
}

// GetRecordCount returns the number of live records (§6
// "get_record_count").
func (idx *Index) GetRecordCount() uint32 {
	return uint32(idx.table.Count())
}

// GetStringPoolUsed returns the number of arena bytes currently in use
// (§6 "get_string_pool_used").
func (idx *Index) GetStringPoolUsed() uint32 {
	return uint32(idx.arena.Used())
}

// GetAvailableMemory returns the number of arena bytes still free, the
// only dynamically consumed resource in the engine (§3 "Arena"; §6
// "get_available_memory").
func (idx *Index) GetAvailableMemory() uint32 {
	return uint32(idx.arena.Available())
}
