package engine

import "xfchess-engine/chessmg"

// PieceValue is the material worth of each piece type in centipawns.
// The king carries no material value.
var PieceValue = [7]int32{
	chessmg.Pawn:   100,
	chessmg.Knight: 300,
	chessmg.Bishop: 300,
	chessmg.Rook:   500,
	chessmg.Queen:  900,
}

// IsEndgame reports whether the king should use its endgame table: queens
// are off, or at most six pieces other than kings and pawns remain.
func IsEndgame(b *chessmg.Board) bool {
	var queens, pieces int
	for c := chessmg.White; c <= chessmg.Black; c++ {
		queens += b.Pieces(c, chessmg.Queen).Count()
		for pt := chessmg.Knight; pt <= chessmg.Queen; pt++ {
			pieces += b.Pieces(c, pt).Count()
		}
	}
	return queens == 0 || pieces <= 6
}

// MobilityWeight is the bonus per available move.
const MobilityWeight int32 = 5

// EvaluateWhite scores the position from White's point of view:
// material, piece-square bonuses and mobility.
func EvaluateWhite(b *chessmg.Board) int32 {
	return materialPST(b) + MobilityWeight*(mobility(b, chessmg.White)-mobility(b, chessmg.Black))
}

func materialPST(b *chessmg.Board) int32 {
	endgame := IsEndgame(b)
	var score int32
	for c := chessmg.White; c <= chessmg.Black; c++ {
		var side int32
		for pt := chessmg.Pawn; pt <= chessmg.King; pt++ {
			table := &pst[pt]
			if pt == chessmg.King && endgame {
				table = &kingEndgamePST
			}
			for bb := b.Pieces(c, pt); bb != 0; {
				sq := bb.PopLSB()
				side += PieceValue[pt] + table[pstIndex(c, sq)]
			}
		}
		if c == chessmg.White {
			score += side
		} else {
			score -= side
		}
	}
	return score
}

// mobility counts c's pseudo-legal moves whichever side is to move.
// Castling and en passant are not counted; a promotion counts once per
// piece it may become.
func mobility(b *chessmg.Board, c chessmg.Color) int32 {
	occ := b.AllOccupancy()
	targets := ^b.Occupancy(c)
	var n int
	for bb := b.Pieces(c, chessmg.Knight); bb != 0; {
		n += (chessmg.KnightAttacks(bb.PopLSB()) & targets).Count()
	}
	for bb := b.Pieces(c, chessmg.Bishop); bb != 0; {
		n += (chessmg.BishopAttacks(bb.PopLSB(), occ) & targets).Count()
	}
	for bb := b.Pieces(c, chessmg.Rook); bb != 0; {
		n += (chessmg.RookAttacks(bb.PopLSB(), occ) & targets).Count()
	}
	for bb := b.Pieces(c, chessmg.Queen); bb != 0; {
		n += (chessmg.QueenAttacks(bb.PopLSB(), occ) & targets).Count()
	}
	for bb := b.Pieces(c, chessmg.King); bb != 0; {
		n += (chessmg.KingAttacks(bb.PopLSB()) & targets).Count()
	}
	return int32(n + pawnMobility(b, c, occ))
}

func pawnMobility(b *chessmg.Board, c chessmg.Color, occ chessmg.Bitboard) int {
	push, startRank, lastRank := chessmg.Square(8), 1, 7
	if c == chessmg.Black {
		push, startRank, lastRank = -8, 6, 0
	}
	them := b.Occupancy(c.Other())
	var n int
	for bb := b.Pieces(c, chessmg.Pawn); bb != 0; {
		sq := bb.PopLSB()
		dests := chessmg.PawnAttacks(c, sq) & them
		if one := sq + push; !occ.Has(one) {
			dests = dests.Set(one)
			if two := one + push; sq.Rank() == startRank && !occ.Has(two) {
				dests = dests.Set(two)
			}
		}
		if (sq + push).Rank() == lastRank {
			n += 4 * dests.Count()
		} else {
			n += dests.Count()
		}
	}
	return n
}

// Evaluate scores the position for the side to move.
func Evaluate(b *chessmg.Board) int32 {
	if b.SideToMove() == chessmg.White {
		return EvaluateWhite(b)
	}
	return -EvaluateWhite(b)
}

// TerminalScore scores a position with no legal moves, or a rule draw, from
// the side to move at ply. Checkmate takes precedence over the draw rules.
// terminal is false when play continues.
func TerminalScore(b *chessmg.Board, ply int) (score int32, terminal bool) {
	if !b.HasLegalMoves() {
		if b.InCheck(b.SideToMove()) {
			return MatedIn(ply), true
		}
		return DrawScore, true
	}
	if b.IsDrawBy50() || b.InsufficientMaterial() {
		return DrawScore, true
	}
	return 0, false
}
