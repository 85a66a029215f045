package chessmg

import "math/rand"

var (
	zobristPiece     [16][64]uint64 // indexed by Piece code
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64 // by file
	zobristSide      uint64    // black to move
)

func init() {
	// fixed seed so hashes are reproducible across runs
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist recomputes the hash from scratch.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq, p := range b.squares {
		if p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castlingRights]
	if b.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	return key
}
