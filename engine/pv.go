package engine

import (
	"strings"

	"xfchess-engine/chessmg"
)

// PVLine is a principal variation, best move first.
type PVLine struct {
	Moves []chessmg.Move
}

// Update replaces the line with m followed by child.
func (pv *PVLine) Update(m chessmg.Move, child PVLine) {
	pv.Moves = append(pv.Moves[:0], m)
	pv.Moves = append(pv.Moves, child.Moves...)
}

func (pv *PVLine) Clear() {
	pv.Moves = pv.Moves[:0]
}

// Clone returns a copy that does not share storage with pv.
func (pv PVLine) Clone() PVLine {
	return PVLine{Moves: append([]chessmg.Move(nil), pv.Moves...)}
}

// GetPVMove returns the first move of the line, or NullMove if empty.
func (pv PVLine) GetPVMove() chessmg.Move {
	if len(pv.Moves) == 0 {
		return chessmg.NullMove
	}
	return pv.Moves[0]
}

func (pv PVLine) String() string {
	parts := make([]string, len(pv.Moves))
	for i, m := range pv.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
