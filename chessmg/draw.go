package chessmg

// IsDrawBy50 reports whether a hundred half-moves have passed without a
// capture or pawn move.
func (b *Board) IsDrawBy50() bool { return b.halfmoveClock >= 100 }

// IsDrawByRepetition reports threefold repetition. history holds the Zobrist
// keys of earlier positions, oldest first; a trailing entry equal to the
// current key is ignored so callers may pass either form.
func (b *Board) IsDrawByRepetition(history []uint64) bool {
	return b.RepetitionCount(history) >= 3
}

// RepetitionCount returns how many times the current position has occurred,
// counting itself. Only the last halfmoveClock plies can repeat it.
func (b *Board) RepetitionCount(history []uint64) int {
	end := len(history)
	if end > 0 && history[end-1] == b.zobristKey {
		end--
	}
	start := end - b.halfmoveClock
	if start < 0 {
		start = 0
	}
	n := 1
	for i := end - 2; i >= start; i -= 2 {
		if history[i] == b.zobristKey {
			n++
		}
	}
	return n
}

// InsufficientMaterial reports positions where neither side can mate:
// bare kings, a single minor piece, or only bishops all on one square color.
func (b *Board) InsufficientMaterial() bool {
	for c := White; c <= Black; c++ {
		if b.pieceBB[c][Pawn]|b.pieceBB[c][Rook]|b.pieceBB[c][Queen] != 0 {
			return false
		}
	}
	knights := b.pieceBB[White][Knight] | b.pieceBB[Black][Knight]
	bishops := b.pieceBB[White][Bishop] | b.pieceBB[Black][Bishop]
	minors := (knights | bishops).Count()
	if minors <= 1 {
		return true
	}
	if knights != 0 {
		return false
	}
	const darkSquares Bitboard = 0xAA55AA55AA55AA55
	return bishops&darkSquares == 0 || bishops&^darkSquares == 0
}
