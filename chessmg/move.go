package chessmg

import "fmt"

// Move packs a move into 32 bits. It carries the moved and captured pieces
// so make/unmake need no board lookups, which ties a Move to the position
// it was generated from.
type Move uint32

// field layout, LSB first
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 4 bits
	moveCaptureShift = 16 // 4 bits
	movePromoteShift = 20 // 4 bits
	moveFlagShift    = 24 // 2 bits
)

// MoveFlag marks moves with side effects beyond the from/to squares.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagCastle
	FlagEnPassant
	FlagDoublePush
)

// NullMove is the zero move; no legal move encodes to it.
const NullMove Move = 0

// NewMove builds a move from its parts.
func NewMove(from, to Square, piece, captured, promotion Piece, flag MoveFlag) Move {
	return Move(uint32(from&0x3F) |
		uint32(to&0x3F)<<moveToShift |
		uint32(piece&0xF)<<movePieceShift |
		uint32(captured&0xF)<<moveCaptureShift |
		uint32(promotion&0xF)<<movePromoteShift |
		uint32(flag&0x3)<<moveFlagShift)
}

func (m Move) From() Square { return Square(uint32(m) >> moveFromShift & 0x3F) }
func (m Move) To() Square { return Square(uint32(m) >> moveToShift & 0x3F) }
func (m Move) MovedPiece() Piece { return Piece(uint32(m) >> movePieceShift & 0xF) }
func (m Move) CapturedPiece() Piece { return Piece(uint32(m) >> moveCaptureShift & 0xF) }
func (m Move) PromotionPiece() Piece { return Piece(uint32(m) >> movePromoteShift & 0xF) }
func (m Move) Flag() MoveFlag { return MoveFlag(uint32(m) >> moveFlagShift & 0x3) }
func (m Move) PromotionType() PieceType { return m.PromotionPiece().Type() }

func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }
func (m Move) IsPromotion() bool { return m.PromotionPiece() != NoPiece }
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }
func (m Move) IsCastle() bool { return m.Flag() == FlagCastle }
func (m Move) IsDoublePush() bool { return m.Flag() == FlagDoublePush }
func (m Move) IsKingsideCastle() bool {
	return m.IsCastle() && m.To().File() == 6
}
func (m Move) IsQueensideCastle() bool {
	return m.IsCastle() && m.To().File() == 2
}

// IsQuiet reports whether the move neither captures nor promotes.
func (m Move) IsQuiet() bool { return !m.IsCapture() && !m.IsPromotion() }

// String gives coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.PromotionType().String()
	}
	return s
}

// ParseMove resolves coordinate notation against the legal moves of b.
// A missing promotion suffix selects the queen.
func (b *Board) ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NullMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return NullMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	promo := Queen
	if len(s) == 5 {
		promo = pieceFromLetter(s[4] &^ 0x20).Type()
		if promo < Knight || promo > Queen {
			return NullMove, fmt.Errorf("%w: bad promotion in %q", ErrInvalidMove, s)
		}
	}
	if m, ok := b.FindMove(from, to, promo); ok {
		return m, nil
	}
	return NullMove, fmt.Errorf("%w: %s", ErrIllegalMove, s)
}

// FindMove returns the legal move from -> to, picking promo for promotions.
func (b *Board) FindMove(from, to Square, promo PieceType) (Move, bool) {
	if !from.Valid() || !to.Valid() {
		return NullMove, false
	}
	for _, m := range b.GenerateMovesFrom(from) {
		if m.To() != to {
			continue
		}
		if m.IsPromotion() && m.PromotionType() != promo {
			continue
		}
		return m, true
	}
	return NullMove, false
}
