package chessmg

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return pc.run(b, depth)
}

// perftCtx keeps one move buffer per depth so the walk does not allocate.
type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) run(b *Board, depth int) uint64 {
	if pc.bufs[depth] == nil {
		pc.bufs[depth] = make([]Move, 0, 256)
	}
	moves := b.GenerateMovesInto(pc.bufs[depth])
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		nodes += pc.run(b, depth-1)
		b.UnmakeMove(m, st)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range b.GenerateMoves() {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		out[m] = Perft(b, depth-1)
		b.UnmakeMove(m, st)
	}
	return out
}
