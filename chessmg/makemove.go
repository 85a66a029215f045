package chessmg

// MoveState is what MakeMove records so UnmakeMove can restore the position.
type MoveState struct {
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
}

// castleKeep[sq] is ANDed into the rights whenever a move leaves or lands on sq.
var castleKeep [64]CastlingRights

type castleRook struct{ from, to Square }

// rook squares for a castling king landing on c1, g1, c8 or g8
var castleRooks = map[Square]castleRook{
	G1: {H1, F1},
	C1: {A1, D1},
	G8: {H8, F8},
	C8: {A8, D8},
}

func init() {
	for i := range castleKeep {
		castleKeep[i] = CastlingAll
	}
	castleKeep[E1] &^= CastlingWhiteK | CastlingWhiteQ
	castleKeep[H1] &^= CastlingWhiteK
	castleKeep[A1] &^= CastlingWhiteQ
	castleKeep[E8] &^= CastlingBlackK | CastlingBlackQ
	castleKeep[H8] &^= CastlingBlackK
	castleKeep[A8] &^= CastlingBlackQ
}

// MakeMove plays m, which must come from this position's generator. It
// reports ok=false and leaves the board untouched if m would leave the
// mover's king attacked.
func (b *Board) MakeMove(m Move) (ok bool, st MoveState) {
	st = MoveState{
		prevCastling:  b.castlingRights,
		prevEnPassant: b.enPassantSquare,
		prevHalfmove:  b.halfmoveClock,
		prevFullmove:  b.fullmoveNumber,
		prevZobrist:   b.zobristKey,
	}
	us := b.sideToMove
	from, to := m.From(), m.To()
	moved := m.MovedPiece()

	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.File()]
		b.enPassantSquare = NoSquare
	}

	switch m.Flag() {
	case FlagEnPassant:
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		st.captured = b.removePiece(capSq)
	default:
		st.captured = b.removePiece(to)
	}

	b.removePiece(from)
	if promo := m.PromotionPiece(); promo != NoPiece {
		b.addPiece(to, promo)
	} else {
		b.addPiece(to, moved)
	}

	if m.Flag() == FlagCastle {
		r := castleRooks[to]
		b.movePiece(r.from, r.to)
	}

	if cr := b.castlingRights & castleKeep[from] & castleKeep[to]; cr != b.castlingRights {
		b.zobristKey ^= zobristCastle[b.castlingRights] ^ zobristCastle[cr]
		b.castlingRights = cr
	}

	if m.Flag() == FlagDoublePush {
		ep := (from + to) / 2
		b.enPassantSquare = ep
		b.zobristKey ^= zobristEnPassant[ep.File()]
	}

	b.sideToMove = us.Other()
	b.zobristKey ^= zobristSide

	if ks := b.KingSquare(us); ks == NoSquare || b.IsSquareAttacked(ks, us.Other()) {
		b.UnmakeMove(m, st)
		return false, st
	}

	if moved.Type() == Pawn || st.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}
	return true, st
}

// UnmakeMove reverts m, which must be the last move made with state st.
func (b *Board) UnmakeMove(m Move, st MoveState) {
	b.sideToMove = b.sideToMove.Other()
	us := b.sideToMove
	from, to := m.From(), m.To()

	if m.Flag() == FlagCastle {
		r := castleRooks[to]
		b.movePiece(r.to, r.from)
	}

	b.removePiece(to)
	b.addPiece(from, m.MovedPiece())

	if st.captured != NoPiece {
		capSq := to
		if m.Flag() == FlagEnPassant {
			capSq = to - 8
			if us == Black {
				capSq = to + 8
			}
		}
		b.addPiece(capSq, st.captured)
	}

	b.castlingRights = st.prevCastling
	b.enPassantSquare = st.prevEnPassant
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
	b.zobristKey = st.prevZobrist
}

// NullState records what MakeNullMove changed.
type NullState struct {
	prevEnPassant Square
	prevHalfmove  int
	prevZobrist   uint64
}

// MakeNullMove passes the turn without moving a piece.
func (b *Board) MakeNullMove() NullState {
	st := NullState{b.enPassantSquare, b.halfmoveClock, b.zobristKey}
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.File()]
		b.enPassantSquare = NoSquare
	}
	b.halfmoveClock++
	b.sideToMove = b.sideToMove.Other()
	b.zobristKey ^= zobristSide
	return st
}

// UnmakeNullMove reverts MakeNullMove.
func (b *Board) UnmakeNullMove(st NullState) {
	b.sideToMove = b.sideToMove.Other()
	b.enPassantSquare = st.prevEnPassant
	b.halfmoveClock = st.prevHalfmove
	b.zobristKey = st.prevZobrist
}

// Apply plays a legal move and returns a function that undoes it.
// It panics if m is illegal in this position.
func (b *Board) Apply(m Move) func() {
	ok, st := b.MakeMove(m)
	if !ok {
		panic("chessmg: Apply of illegal move " + m.String())
	}
	return func() { b.UnmakeMove(m, st) }
}
