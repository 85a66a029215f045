package chessmg

import "math/bits"

// Bitboard is a set of squares, bit i set means square i is a member.
type Bitboard uint64

// SquareBB returns a bitboard with only sq set.
func SquareBB(sq Square) Bitboard { return Bitboard(1) << uint(sq) }

// Has reports whether sq is in the set.
func (b Bitboard) Has(sq Square) bool { return b&SquareBB(sq) != 0 }

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

func (b Bitboard) Union(o Bitboard) Bitboard { return b | o }
func (b Bitboard) Intersect(o Bitboard) Bitboard { return b & o }

// Count returns the number of squares in the set.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// Empty reports whether the set has no squares.
func (b Bitboard) Empty() bool { return b == 0 }

// LSB returns the lowest square in the set, or NoSquare if empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest square in the set, or NoSquare if empty.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest square. The set must be non-empty.
func (b *Bitboard) PopLSB() Square {
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// Squares returns the members in ascending order. Each call allocates a fresh slice.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for bb := b; bb != 0; {
		out = append(out, bb.PopLSB())
	}
	return out
}

// ForEach calls fn for every member in ascending order.
func (b Bitboard) ForEach(fn func(Square)) {
	for bb := b; bb != 0; {
		fn(bb.PopLSB())
	}
}

// FlipVertical mirrors the set across the horizontal axis (a1 <-> a8).
func (b Bitboard) FlipVertical() Bitboard { return Bitboard(bits.ReverseBytes64(uint64(b))) }
