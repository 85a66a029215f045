package engine

import "xfchess-engine/chessmg"

type scoredMove struct {
	move  chessmg.Move
	score int32
}

// Most Valuable Victim - Least Valuable Aggressor, indexed [victim][attacker].
var mvvLva = [7][7]int32{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

/*
Move ordering offsets, highest first:
  - the hash move (previous iteration's best or TT move)
  - promotions, by the promoted piece
  - captures, by MVV-LVA
  - killers, then the counter move, then history for the remaining quiets
*/
const (
	pvOffset        int32 = 25000
	promotionOffset int32 = 20000
	captureOffset   int32 = 15000
	killerOffset    int32 = 4000
	counterOffset   int32 = 3000
)

func captureScore(m chessmg.Move) int32 {
	victim := m.CapturedPiece().Type()
	if m.IsEnPassant() {
		victim = chessmg.Pawn
	}
	return mvvLva[victim][m.MovedPiece().Type()]
}

// scoreMoves fills dst with moves and their ordering scores for a full-width
// node at ply.
func (s *Searcher) scoreMoves(dst []scoredMove, b *chessmg.Board, moves []chessmg.Move, ply int, hashMove, prevMove chessmg.Move) []scoredMove {
	side := b.SideToMove()
	counter := s.history.counterFor(side, prevMove)
	dst = dst[:0]
	for _, m := range moves {
		var score int32
		switch {
		case m == hashMove:
			score = pvOffset
		case m.IsPromotion():
			score = promotionOffset + PieceValue[m.PromotionType()] + captureScore(m)
		case m.IsCapture():
			score = captureOffset + captureScore(m)
		default:
			if k := s.killers.slot(m, ply); k >= 0 {
				score = killerOffset + int32(1-k)*200
			} else {
				score = s.history.get(side, m)
				if m == counter {
					score += counterOffset
				}
			}
		}
		dst = append(dst, scoredMove{move: m, score: score})
	}
	return dst
}

// scoreCaptures orders quiescence moves: promotions above captures, captures
// by MVV-LVA.
func scoreCaptures(dst []scoredMove, moves []chessmg.Move) []scoredMove {
	dst = dst[:0]
	for _, m := range moves {
		score := captureScore(m)
		if m.IsPromotion() {
			score += captureOffset + PieceValue[m.PromotionType()]
		}
		dst = append(dst, scoredMove{move: m, score: score})
	}
	return dst
}

// orderNextMove swaps the best-scored move at or after index into index.
func orderNextMove(index int, moves []scoredMove) {
	best := index
	for i := index + 1; i < len(moves); i++ {
		if moves[i].score > moves[best].score {
			best = i
		}
	}
	moves[index], moves[best] = moves[best], moves[index]
}
