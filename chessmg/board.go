package chessmg

import "strings"

// Board is a chess position. Per-color per-type bitboards and the square
// array are two views of the same placement; both change only through
// addPiece and removePiece so they never diverge.
type Board struct {
	pieceBB   [2][7]Bitboard // indexed by Color and PieceType
	occupancy [2]Bitboard
	squares   [64]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	fullmoveNumber  int

	zobristKey uint64
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return b
}

func newEmptyBoard() *Board {
	return &Board{enPassantSquare: NoSquare, fullmoveNumber: 1}
}

// Copy returns an independent copy of the position.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

func (b *Board) SideToMove() Color { return b.sideToMove }
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the Zobrist key of the position.
func (b *Board) Hash() uint64 { return b.zobristKey }

// PieceAt returns the piece on sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// Pieces returns the bitboard of c's pieces of type pt.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard { return b.pieceBB[c][pt] }

// Occupancy returns every square holding one of c's pieces.
func (b *Board) Occupancy(c Color) Bitboard { return b.occupancy[c] }

// AllOccupancy returns every occupied square.
func (b *Board) AllOccupancy() Bitboard { return b.occupancy[White] | b.occupancy[Black] }

// KingSquare returns c's king square, or NoSquare if there is none.
func (b *Board) KingSquare(c Color) Square { return b.pieceBB[c][King].LSB() }

// SetPiece puts p on sq, replacing whatever was there.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from sq.
func (b *Board) ClearSquare(sq Square) { b.removePiece(sq) }

// SetSideToMove changes the side to move, keeping the hash in sync.
func (b *Board) SetSideToMove(c Color) {
	if b.sideToMove != c {
		b.sideToMove = c
		b.zobristKey ^= zobristSide
	}
}

// SetCastlingRights replaces the castling rights, keeping the hash in sync.
func (b *Board) SetCastlingRights(cr CastlingRights) {
	b.zobristKey ^= zobristCastle[b.castlingRights] ^ zobristCastle[cr]
	b.castlingRights = cr
}

func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	bit := SquareBB(sq)
	c := p.Color()
	b.squares[sq] = p
	b.occupancy[c] |= bit
	b.pieceBB[c][p.Type()] |= bit
	b.zobristKey ^= zobristPiece[p][sq]
}

func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece
	}
	bit := SquareBB(sq)
	c := p.Color()
	b.squares[sq] = NoPiece
	b.occupancy[c] &^= bit
	b.pieceBB[c][p.Type()] &^= bit
	b.zobristKey ^= zobristPiece[p][sq]
	return p
}

func (b *Board) movePiece(from, to Square) {
	b.addPiece(to, b.removePiece(from))
}

// Validate reports whether the square array, the bitboards and the hash agree.
func (b *Board) Validate() bool {
	var occ [2]Bitboard
	var pbb [2][7]Bitboard
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == NoPiece {
			continue
		}
		if p.Type() == NoPieceType || p.Type() > King {
			return false
		}
		occ[p.Color()] |= SquareBB(sq)
		pbb[p.Color()][p.Type()] |= SquareBB(sq)
	}
	if occ != b.occupancy || pbb != b.pieceBB {
		return false
	}
	if b.occupancy[White]&b.occupancy[Black] != 0 {
		return false
	}
	return b.zobristKey == b.ComputeZobrist()
}

// Mirror returns the color-flipped position: ranks reversed, piece colors
// swapped, side to move and castling rights exchanged.
func (b *Board) Mirror() *Board {
	m := newEmptyBoard()
	for sq := Square(0); sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			m.addPiece(sq.Mirror(), p.Flip())
		}
	}
	m.sideToMove = b.sideToMove.Other()
	m.castlingRights = b.castlingRights.Mirror()
	if b.enPassantSquare != NoSquare {
		m.enPassantSquare = b.enPassantSquare.Mirror()
	}
	m.halfmoveClock = b.halfmoveClock
	m.fullmoveNumber = b.fullmoveNumber
	m.zobristKey = m.ComputeZobrist()
	return m
}

// String renders the board as eight ranks, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteByte(b.squares[NewSquare(file, rank)].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
