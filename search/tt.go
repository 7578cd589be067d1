package search

import (
	"sync"
	"unsafe"

	"carocore/board"
)

// TTFlag indicates what type of bound a stored score represents.
// Grounded on blunext-chess/engine/tt.go.
type TTFlag uint8

const (
	TTFlagNone  TTFlag = 0
	TTFlagExact TTFlag = 1
	TTFlagLower TTFlag = 2
	TTFlagUpper TTFlag = 3
)

// TTEntry is a single transposition table entry.
type TTEntry struct {
	Hash     uint32
	BestMove board.Move
	Score    int16
	Depth    int8
	Flag     TTFlag
}

// TranspositionTable is the shared resource spec.md §5 names: the core
// exposes it only as a capability the injected search_fn may use; its
// locking discipline (here, a single RWMutex, "always replace" on write)
// is this package's own contract, not part of the spec's C5 driver
// contract. Grounded on blunext-chess/engine/tt.go, made safe for
// concurrent Lazy-SMP workers with a mutex since the teacher's version was
// single-threaded.
type TranspositionTable struct {
	mu      sync.RWMutex
	entries []TTEntry
	mask    uint64
}

// DefaultHashMB is the default table size in megabytes.
const DefaultHashMB = 64

const ttEntryBytes = uint64(unsafe.Sizeof(TTEntry{}))

// NewTranspositionTable creates a table sized to the nearest power of two
// number of entries fitting in sizeMB megabytes.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	if sizeMB <= 0 {
		sizeMB = DefaultHashMB
	}
	numEntries := (uint64(sizeMB) * 1024 * 1024) / ttEntryBytes
	size := uint64(1)
	for size*2 <= numEntries {
		size *= 2
	}
	if size == 0 {
		size = 1
	}
	return &TranspositionTable{
		entries: make([]TTEntry, size),
		mask:    size - 1,
	}
}

func (tt *TranspositionTable) index(hash uint64) uint64 {
	return hash & tt.mask
}

// Probe looks up hash. Returns the entry and true if present and verified.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	entry := tt.entries[tt.index(hash)]
	if entry.Flag == TTFlagNone {
		return TTEntry{}, false
	}
	if entry.Hash != uint32(hash>>32) {
		return TTEntry{}, false
	}
	return entry, true
}

// Store saves an entry, always replacing whatever was at that index.
func (tt *TranspositionTable) Store(hash uint64, score int16, depth int8, flag TTFlag, bestMove board.Move) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	tt.entries[tt.index(hash)] = TTEntry{
		Hash:     uint32(hash >> 32),
		Score:    score,
		Depth:    depth,
		Flag:     flag,
		BestMove: bestMove,
	}
}

// Clear resets every entry.
func (tt *TranspositionTable) Clear() {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// Size returns the number of entry slots.
func (tt *TranspositionTable) Size() uint64 {
	return uint64(len(tt.entries))
}

// Hashfull returns the permille of sampled entries that are in use, for
// telemetry (spec.md §5's shared-resource contract).
func (tt *TranspositionTable) Hashfull() int {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	sample := uint64(1000)
	if sample > uint64(len(tt.entries)) {
		sample = uint64(len(tt.entries))
	}
	used := 0
	for i := uint64(0); i < sample; i++ {
		if tt.entries[i].Flag != TTFlagNone {
			used++
		}
	}
	if sample == 0 {
		return 0
	}
	return int(uint64(used) * 1000 / sample)
}
