package engine

import "xfchess-engine/chessmg"

var seePieceValue = [7]int32{
	chessmg.Pawn:   100,
	chessmg.Knight: 300,
	chessmg.Bishop: 300,
	chessmg.Rook:   500,
	chessmg.Queen:  900,
	chessmg.King:   5000,
}

// see estimates the material balance of the exchange sequence started by a
// capture on m.To(), both sides recapturing with their least valuable piece.
// Sliders behind a recapturing piece join the exchange once it leaves.
func see(b *chessmg.Board, m chessmg.Move) int32 {
	var gain [32]int32
	to := m.To()
	from := m.From()

	victim := m.CapturedPiece().Type()
	if m.IsEnPassant() {
		victim = chessmg.Pawn
	}
	gain[0] = seePieceValue[victim]
	attacker := m.MovedPiece().Type()
	if m.IsPromotion() {
		gain[0] += seePieceValue[m.PromotionType()] - seePieceValue[chessmg.Pawn]
		attacker = m.PromotionType()
	}

	occ := b.AllOccupancy().Clear(from)
	if m.IsEnPassant() {
		occ = occ.Clear(chessmg.NewSquare(to.File(), from.Rank()))
	}
	side := b.SideToMove().Other()
	depth := 0

	for depth < len(gain)-1 {
		attackers := b.AttackersWithOccupancy(to, occ) & b.Occupancy(side)
		if attackers == 0 {
			break
		}
		sq, pt := leastValuable(b, attackers, side)
		depth++
		gain[depth] = seePieceValue[attacker] - gain[depth-1]
		if Max(-gain[depth-1], gain[depth]) < 0 {
			break
		}
		occ = occ.Clear(sq)
		attacker = pt
		side = side.Other()
	}

	for depth > 0 {
		gain[depth-1] = -Max(-gain[depth-1], gain[depth])
		depth--
	}
	return gain[0]
}

func leastValuable(b *chessmg.Board, set chessmg.Bitboard, c chessmg.Color) (chessmg.Square, chessmg.PieceType) {
	for pt := chessmg.Pawn; pt <= chessmg.King; pt++ {
		if sub := set & b.Pieces(c, pt); sub != 0 {
			return sub.LSB(), pt
		}
	}
	return chessmg.NoSquare, chessmg.NoPieceType
}
