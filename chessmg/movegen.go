package chessmg

// generation filters
const (
	genAll = iota
	genCaptures // captures, en passant and every promotion
)

var promoOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

type castleSpec struct {
	right        CastlingRights
	king, target Square
	rook         Square
	empty        Bitboard // must be vacant
	safe         Bitboard // must not be attacked, king square included
}

var castleSpecs [2][2]castleSpec

func init() {
	// squares of one rank from a to b, both ends included
	span := func(a, b Square) Bitboard {
		if a > b {
			a, b = b, a
		}
		var bb Bitboard
		for sq := a; sq <= b; sq++ {
			bb |= SquareBB(sq)
		}
		return bb
	}
	mk := func(right CastlingRights, king, target, rook Square) castleSpec {
		empty := span(king, rook) &^ SquareBB(king) &^ SquareBB(rook)
		return castleSpec{right, king, target, rook, empty, span(king, target)}
	}
	castleSpecs[White] = [2]castleSpec{
		mk(CastlingWhiteK, E1, G1, H1),
		mk(CastlingWhiteQ, E1, C1, A1),
	}
	castleSpecs[Black] = [2]castleSpec{
		mk(CastlingBlackK, E8, G8, H8),
		mk(CastlingBlackQ, E8, C8, A8),
	}
}

// GeneratePseudoMovesInto appends every move that obeys piece movement rules
// to dst[:0]. Moves that leave the mover's king attacked are included.
// Castling is only emitted when its full precondition holds.
func (b *Board) GeneratePseudoMovesInto(dst []Move) []Move {
	return b.generatePseudo(dst[:0], genAll, ^Bitboard(0))
}

// GeneratePseudoMoves allocates and returns the pseudo-legal moves.
func (b *Board) GeneratePseudoMoves() []Move {
	return b.GeneratePseudoMovesInto(make([]Move, 0, 128))
}

func (b *Board) generatePseudo(moves []Move, filter int, fromMask Bitboard) []Move {
	us := b.sideToMove
	them := us.Other()
	own := b.occupancy[us]
	opp := b.occupancy[them]
	occ := own | opp

	targets := ^own
	if filter == genCaptures {
		targets = opp
	}

	pawnMove := func(from, to Square, captured Piece, flag MoveFlag) {
		if to.Rank() == 0 || to.Rank() == 7 {
			for _, pt := range promoOrder {
				moves = append(moves, NewMove(from, to, b.squares[from], captured, PieceFromType(us, pt), flag))
			}
			return
		}
		if filter == genCaptures && captured == NoPiece {
			return
		}
		moves = append(moves, NewMove(from, to, b.squares[from], captured, NoPiece, flag))
	}

	forward, startRank, lastRank := Square(8), 1, 7
	if us == Black {
		forward, startRank, lastRank = -8, 6, 0
	}
	for pawns := b.pieceBB[us][Pawn] & fromMask; pawns != 0; {
		from := pawns.PopLSB()
		one := from + forward
		if one.Valid() && !occ.Has(one) && (filter == genAll || one.Rank() == lastRank) {
			pawnMove(from, one, NoPiece, FlagNone)
			if two := one + forward; from.Rank() == startRank && !occ.Has(two) && filter == genAll {
				moves = append(moves, NewMove(from, two, b.squares[from], NoPiece, NoPiece, FlagDoublePush))
			}
		}
		att := pawnAttacks[us][from]
		for caps := att & opp; caps != 0; {
			to := caps.PopLSB()
			pawnMove(from, to, b.squares[to], FlagNone)
		}
		if ep := b.enPassantSquare; ep != NoSquare && att.Has(ep) {
			moves = append(moves, NewMove(from, ep, b.squares[from], PieceFromType(them, Pawn), NoPiece, FlagEnPassant))
		}
	}

	for pt := Knight; pt <= King; pt++ {
		for pcs := b.pieceBB[us][pt] & fromMask; pcs != 0; {
			from := pcs.PopLSB()
			var att Bitboard
			switch pt {
			case Knight:
				att = knightAttacks[from]
			case Bishop:
				att = BishopAttacks(from, occ)
			case Rook:
				att = RookAttacks(from, occ)
			case Queen:
				att = QueenAttacks(from, occ)
			case King:
				att = kingAttacks[from]
			}
			for t := att & targets; t != 0; {
				to := t.PopLSB()
				moves = append(moves, NewMove(from, to, b.squares[from], b.squares[to], NoPiece, FlagNone))
			}
		}
	}

	if filter == genAll && b.castlingRights != 0 {
		king := PieceFromType(us, King)
		rook := PieceFromType(us, Rook)
		for _, cs := range castleSpecs[us] {
			if !b.castlingRights.Has(cs.right) || !fromMask.Has(cs.king) {
				continue
			}
			if b.squares[cs.king] != king || b.squares[cs.rook] != rook || occ&cs.empty != 0 {
				continue
			}
			if b.anyAttacked(cs.safe, them) {
				continue
			}
			moves = append(moves, NewMove(cs.king, cs.target, king, NoPiece, NoPiece, FlagCastle))
		}
	}
	return moves
}

func (b *Board) anyAttacked(set Bitboard, by Color) bool {
	for s := set; s != 0; {
		if b.IsSquareAttacked(s.PopLSB(), by) {
			return true
		}
	}
	return false
}

// legalFilter keeps the moves of pseudo that do not leave the mover in check.
func (b *Board) legalFilter(pseudo []Move) []Move {
	legal := pseudo[:0]
	for _, m := range pseudo {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			legal = append(legal, m)
		}
	}
	return legal
}

// GenerateMovesInto appends every legal move to dst[:0]. The order is unspecified.
func (b *Board) GenerateMovesInto(dst []Move) []Move {
	return b.legalFilter(b.generatePseudo(dst[:0], genAll, ^Bitboard(0)))
}

// GenerateMoves allocates and returns the legal moves.
func (b *Board) GenerateMoves() []Move { return b.GenerateMovesInto(make([]Move, 0, 128)) }

// GenerateCapturesInto appends legal captures, en passant captures and all
// promotions to dst[:0].
func (b *Board) GenerateCapturesInto(dst []Move) []Move {
	return b.legalFilter(b.generatePseudo(dst[:0], genCaptures, ^Bitboard(0)))
}

// GenerateCaptures allocates and returns the legal tactical moves.
func (b *Board) GenerateCaptures() []Move { return b.GenerateCapturesInto(make([]Move, 0, 32)) }

// GenerateMovesFrom returns the legal moves of the piece on sq. It is empty
// when sq is empty or holds a piece of the side not to move.
func (b *Board) GenerateMovesFrom(sq Square) []Move {
	if !sq.Valid() {
		return nil
	}
	p := b.squares[sq]
	if p == NoPiece || p.Color() != b.sideToMove {
		return nil
	}
	return b.legalFilter(b.generatePseudo(make([]Move, 0, 32), genAll, SquareBB(sq)))
}

// HasLegalMoves reports whether the side to move can move at all.
func (b *Board) HasLegalMoves() bool {
	var buf [256]Move
	for _, m := range b.generatePseudo(buf[:0], genAll, ^Bitboard(0)) {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is mated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move has no move but is not in check.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// GivesCheck reports whether the legal move m checks the opponent.
func (b *Board) GivesCheck(m Move) bool {
	ok, st := b.MakeMove(m)
	if !ok {
		return false
	}
	check := b.InCheck(b.sideToMove)
	b.UnmakeMove(m, st)
	return check
}
