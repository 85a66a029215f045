package engine

import (
	"unsafe"

	"xfchess-engine/chessmg"
)

// TTFlag records how an entry's score relates to the true value.
type TTFlag uint8

const (
	// AlphaFlag marks an upper bound: every move failed low.
	AlphaFlag TTFlag = iota
	// BetaFlag marks a lower bound from a beta cutoff.
	BetaFlag
	ExactFlag
)

const (
	// DefaultTTSizeMB is the table size used when none is configured.
	DefaultTTSizeMB = 16
	clusterSize     = 4
)

type TTEntry struct {
	Hash  uint64
	Move  chessmg.Move
	Score int32
	Depth int8
	Flag  TTFlag
}

// TransTable is a fixed-size hash table of search results, bucketed in
// clusters of four entries.
type TransTable struct {
	entries      []TTEntry
	clusterCount uint64
}

// NewTransTable allocates a table of roughly sizeMB megabytes.
func NewTransTable(sizeMB int) *TransTable {
	if sizeMB <= 0 {
		sizeMB = DefaultTTSizeMB
	}
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	clusterCount := uint64(sizeMB) * 1024 * 1024 / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	return &TransTable{
		entries:      make([]TTEntry, clusterCount*clusterSize),
		clusterCount: clusterCount,
	}
}

// Clear empties every entry without releasing memory.
func (tt *TransTable) Clear() {
	clear(tt.entries)
}

func (tt *TransTable) cluster(hash uint64) []TTEntry {
	base := hash % tt.clusterCount * clusterSize
	return tt.entries[base : base+clusterSize]
}

// Probe returns the entry stored for hash, if any.
func (tt *TransTable) Probe(hash uint64) (TTEntry, bool) {
	for _, e := range tt.cluster(hash) {
		if e.Hash == hash && hash != 0 {
			return e, true
		}
	}
	return TTEntry{}, false
}

// useEntry reports whether e is deep enough and bounded tightly enough to
// replace a search of depth plies at ply, and the score to return if so.
func useEntry(e TTEntry, depth int, alpha, beta int32, ply int) (bool, int32) {
	if int(e.Depth) < depth {
		return false, 0
	}
	score := scoreFromTT(e.Score, ply)
	switch e.Flag {
	case ExactFlag:
		return true, score
	case AlphaFlag:
		if score <= alpha {
			return true, alpha
		}
	case BetaFlag:
		if score >= beta {
			return true, beta
		}
	}
	return false, 0
}

// Store saves a result, overwriting the same position if present, then an
// empty slot, then the shallowest entry in the cluster.
func (tt *TransTable) Store(hash uint64, depth, ply int, move chessmg.Move, score int32, flag TTFlag) {
	c := tt.cluster(hash)
	target := -1
	for i := range c {
		if c[i].Hash == hash {
			target = i
			break
		}
	}
	if target == -1 {
		for i := range c {
			if c[i].Hash == 0 {
				target = i
				break
			}
		}
	}
	if target == -1 {
		target = 0
		for i := 1; i < len(c); i++ {
			if c[i].Depth < c[target].Depth {
				target = i
			}
		}
	}
	c[target] = TTEntry{
		Hash:  hash,
		Move:  move,
		Score: scoreToTT(score, ply),
		Depth: int8(Clamp(depth, 0, MaxPly)),
		Flag:  flag,
	}
}

// Mate scores are stored relative to the node, not the root.
func scoreToTT(score int32, ply int) int32 {
	switch {
	case score > MateThreshold:
		return score + int32(ply)
	case score < -MateThreshold:
		return score - int32(ply)
	}
	return score
}

func scoreFromTT(score int32, ply int) int32 {
	switch {
	case score > MateThreshold:
		return score - int32(ply)
	case score < -MateThreshold:
		return score + int32(ply)
	}
	return score
}
