package engine

import "xfchess-engine/chessmg"

// stateStack holds the Zobrist key of every position from the start of the
// game to the current search node. Keys below root belong to the game.
type stateStack struct {
	keys []uint64
	root int
}

// reset seeds the stack with the game's prior positions and the root.
// A trailing history key equal to the root is not counted twice.
func (st *stateStack) reset(b *chessmg.Board, history []uint64) {
	if n := len(history); n > 0 && history[n-1] == b.Hash() {
		history = history[:n-1]
	}
	st.keys = append(st.keys[:0], history...)
	st.keys = append(st.keys, b.Hash())
	st.root = len(st.keys) - 1
}

func (st *stateStack) push(key uint64) { st.keys = append(st.keys, key) }

func (st *stateStack) pop() { st.keys = st.keys[:len(st.keys)-1] }

// isRepetition reports a drawing repetition at the top of the stack, looking
// back no further than the last irreversible move. Repeating a position
// first seen inside the search tree is enough; a position from the game
// itself must have occurred twice before.
func (st *stateStack) isRepetition(rule50 int) bool {
	top := len(st.keys) - 1
	key := st.keys[top]
	start := Max(top-rule50, 0)
	count := 0
	for i := top - 2; i >= start; i -= 2 {
		if st.keys[i] != key {
			continue
		}
		if i >= st.root {
			return true
		}
		count++
		if count >= 2 {
			return true
		}
	}
	return false
}
