package chessmg

import (
	"fmt"
	"strings"
)

// Color is the side owning a piece or having the move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind, ordered Pawn < Knight < Bishop < Rook < Queen < King.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeLetters = [...]byte{'?', 'p', 'n', 'b', 'r', 'q', 'k'}

func (pt PieceType) String() string {
	if pt > King {
		return "?"
	}
	return string(pieceTypeLetters[pt])
}

// Piece is a colored piece, or NoPiece for an empty square.
// Black pieces carry bit 3; the low three bits hold the PieceType.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)
	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
)

// PieceFromType combines a side and a type. NoPieceType yields NoPiece.
func PieceFromType(c Color, pt PieceType) Piece {
	if pt == NoPieceType || pt > King {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool { return p == NoPiece }

// Type returns the colorless type.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the owner. NoPiece reports White; check IsEmpty first.
func (p Piece) Color() Color { return Color(p>>3) & 1 }

// Flip swaps the owner, leaving the type unchanged.
func (p Piece) Flip() Piece {
	if p == NoPiece {
		return NoPiece
	}
	return p ^ 8
}

// Letter is the FEN letter, uppercase for White.
func (p Piece) Letter() byte {
	if p == NoPiece {
		return '.'
	}
	ch := pieceTypeLetters[p.Type()]
	if p.Color() == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string { return string(p.Letter()) }

func pieceFromLetter(ch byte) Piece {
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return PieceFromType(c, Pawn)
	case 'N':
		return PieceFromType(c, Knight)
	case 'B':
		return PieceFromType(c, Bishop)
	case 'R':
		return PieceFromType(c, Rook)
	case 'Q':
		return PieceFromType(c, Queen)
	case 'K':
		return PieceFromType(c, King)
	}
	return NoPiece
}

// Square is a board index 0..63, rank-major with a1 = 0 and h8 = 63.
type Square int

const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A8 Square = iota + 56
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

func (s Square) File() int { return int(s) & 7 }
func (s Square) Rank() int { return int(s) >> 3 }
func (s Square) Valid() bool { return s >= 0 && s < 64 }

// Mirror flips the square vertically (a1 <-> a8).
func (s Square) Mirror() Square { return s ^ 56 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// CastlingRights is a bitmask of the four castling permissions.
type CastlingRights uint8

const (
	CastlingWhiteK CastlingRights = 1 << iota
	CastlingWhiteQ
	CastlingBlackK
	CastlingBlackQ

	CastlingNone CastlingRights = 0
	CastlingAll                 = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// Has reports whether all bits of r are present.
func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r == r }

// Mirror swaps the white and black rights.
func (cr CastlingRights) Mirror() CastlingRights {
	return (cr&(CastlingWhiteK|CastlingWhiteQ))<<2 | (cr&(CastlingBlackK|CastlingBlackQ))>>2
}

func (cr CastlingRights) String() string {
	if cr == 0 {
		return "-"
	}
	var sb strings.Builder
	for i, ch := range "KQkq" {
		if cr&(1<<uint(i)) != 0 {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
