package engine

import "xfchess-engine/chessmg"

// Keeps history scores below the killer and counter offsets.
const historyMaxVal = 2000

/*
History and counter moves: when a quiet move causes a beta cutoff we remember
the move that answered the opponent's previous move (counter move), and raise
its from-to history score so it sorts earlier in sibling nodes. Quiet moves
tried before the cutoff lose history.
*/
type historyTable struct {
	score   [2][64][64]int32
	counter [2][64][64]chessmg.Move
}

func (h *historyTable) get(c chessmg.Color, m chessmg.Move) int32 {
	return h.score[c][m.From()][m.To()]
}

func (h *historyTable) counterFor(c chessmg.Color, prev chessmg.Move) chessmg.Move {
	if prev == chessmg.NullMove {
		return chessmg.NullMove
	}
	return h.counter[c][prev.From()][prev.To()]
}

func (h *historyTable) storeCounter(c chessmg.Color, prev, m chessmg.Move) {
	if prev == chessmg.NullMove {
		return
	}
	h.counter[c][prev.From()][prev.To()] = m
}

func (h *historyTable) increment(c chessmg.Color, m chessmg.Move, depth int) {
	s := &h.score[c][m.From()][m.To()]
	*s += int32(depth * depth)
	if *s >= historyMaxVal {
		h.age(c)
	}
}

func (h *historyTable) decrement(c chessmg.Color, m chessmg.Move) {
	h.score[c][m.From()][m.To()] /= 4
}

func (h *historyTable) age(c chessmg.Color) {
	for from := range h.score[c] {
		for to := range h.score[c][from] {
			h.score[c][from][to] /= 8
		}
	}
}

func (h *historyTable) clear() {
	*h = historyTable{}
}
