package engine

import "xfchess-engine/chessmg"

// killerTable keeps two quiet moves per ply that recently caused a cutoff.
type killerTable [MaxPly + 1][2]chessmg.Move

func (k *killerTable) insert(m chessmg.Move, ply int) {
	if m != k[ply][0] {
		k[ply][1] = k[ply][0]
		k[ply][0] = m
	}
}

// slot returns 0 or 1 for a killer at ply, -1 otherwise.
func (k *killerTable) slot(m chessmg.Move, ply int) int {
	switch m {
	case chessmg.NullMove:
		return -1
	case k[ply][0]:
		return 0
	case k[ply][1]:
		return 1
	}
	return -1
}

func (k *killerTable) clear() {
	*k = killerTable{}
}
