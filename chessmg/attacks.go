package chessmg

var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	// pawnAttacks[c][sq] are the squares a pawn of color c on sq attacks.
	pawnAttacks [2][64]Bitboard

	// Rays exclude the origin. Rook: 0=N 1=S 2=E 3=W. Bishop: 0=NE 1=NW 2=SE 3=SW.
	rookRays   [64][4]Bitboard
	bishopRays [64][4]Bitboard

	// between[a][b] holds the squares strictly between two aligned squares.
	between [64][64]Bitboard

	rookMask    [64]Bitboard
	bishopMask  [64]Bitboard
	rookTable   [64][]Bitboard
	bishopTable [64][]Bitboard
)

// increasing directions pick the first blocker with LSB, the rest with MSB
var rookRayUp = [4]bool{true, false, true, false}
var bishopRayUp = [4]bool{true, true, false, false}

func init() {
	initStepAttacks()
	initRays()
	initSliderTables()
}

func stepMask(sq int, offsets [][2]int) Bitboard {
	file, rank := sq%8, sq/8
	var m Bitboard
	for _, off := range offsets {
		r, f := rank+off[0], file+off[1]
		if r >= 0 && r < 8 && f >= 0 && f < 8 {
			m |= SquareBB(NewSquare(f, r))
		}
	}
	return m
}

func initStepAttacks() {
	knight := [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	king := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for sq := 0; sq < 64; sq++ {
		knightAttacks[sq] = stepMask(sq, knight)
		kingAttacks[sq] = stepMask(sq, king)
		pawnAttacks[White][sq] = stepMask(sq, [][2]int{{1, -1}, {1, 1}})
		pawnAttacks[Black][sq] = stepMask(sq, [][2]int{{-1, -1}, {-1, 1}})
	}
}

func walk(sq, dr, df int, edge bool) Bitboard {
	var ray Bitboard
	r, f := sq/8+dr, sq%8+df
	for r >= 0 && r < 8 && f >= 0 && f < 8 {
		if edge {
			// slider masks drop the last square of each ray
			nr, nf := r+dr, f+df
			if nr < 0 || nr > 7 || nf < 0 || nf > 7 {
				break
			}
		}
		ray |= SquareBB(NewSquare(f, r))
		r, f = r+dr, f+df
	}
	return ray
}

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func initRays() {
	for sq := 0; sq < 64; sq++ {
		for d := 0; d < 4; d++ {
			rookRays[sq][d] = walk(sq, rookDirs[d][0], rookDirs[d][1], false)
			bishopRays[sq][d] = walk(sq, bishopDirs[d][0], bishopDirs[d][1], false)
		}
	}
	for a := 0; a < 64; a++ {
		for d := 0; d < 4; d++ {
			for _, rays := range []*[64][4]Bitboard{&rookRays, &bishopRays} {
				ray := rays[a][d]
				for bb := ray; bb != 0; {
					t := bb.PopLSB()
					between[a][t] = ray &^ rays[t][d] &^ SquareBB(t)
				}
			}
		}
	}
}

func initSliderTables() {
	for sq := 0; sq < 64; sq++ {
		var rm, bm Bitboard
		for d := 0; d < 4; d++ {
			rm |= walk(sq, rookDirs[d][0], rookDirs[d][1], true)
			bm |= walk(sq, bishopDirs[d][0], bishopDirs[d][1], true)
		}
		rookMask[sq], bishopMask[sq] = rm, bm

		rookTable[sq] = make([]Bitboard, 1<<rm.Count())
		for idx := range rookTable[sq] {
			rookTable[sq][idx] = rookRayAttacks(sq, pdep(uint64(idx), rm))
		}
		bishopTable[sq] = make([]Bitboard, 1<<bm.Count())
		for idx := range bishopTable[sq] {
			bishopTable[sq][idx] = bishopRayAttacks(sq, pdep(uint64(idx), bm))
		}
	}
}

// pext gathers the bits of x selected by mask into the low bits.
func pext(x, mask Bitboard) uint64 {
	var res uint64
	var i uint
	for m := mask; m != 0; i++ {
		sq := m.PopLSB()
		if x.Has(sq) {
			res |= 1 << i
		}
	}
	return res
}

// pdep scatters the low bits of x into the positions set in mask.
func pdep(x uint64, mask Bitboard) Bitboard {
	var res Bitboard
	var i uint
	for m := mask; m != 0; i++ {
		sq := m.PopLSB()
		if x>>i&1 != 0 {
			res |= SquareBB(sq)
		}
	}
	return res
}

func slide(rays *[64][4]Bitboard, up *[4]bool, sq int, occ Bitboard) Bitboard {
	var att Bitboard
	for d := 0; d < 4; d++ {
		ray := rays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			first := blockers.MSB()
			if up[d] {
				first = blockers.LSB()
			}
			ray &^= rays[first][d]
		}
		att |= ray
	}
	return att
}

func rookRayAttacks(sq int, occ Bitboard) Bitboard { return slide(&rookRays, &rookRayUp, sq, occ) }
func bishopRayAttacks(sq int, occ Bitboard) Bitboard { return slide(&bishopRays, &bishopRayUp, sq, occ) }

// RookAttacks returns the squares a rook on sq attacks given occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return rookTable[sq][pext(occ, rookMask[sq])]
}

// BishopAttacks returns the squares a bishop on sq attacks given occupancy occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return bishopTable[sq][pext(occ, bishopMask[sq])]
}

// QueenAttacks is the union of rook and bishop attacks.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

func (b *Board) attackersWithOcc(sq Square, by Color, occ Bitboard) Bitboard {
	p := &b.pieceBB[by]
	att := pawnAttacks[by.Other()][sq] & p[Pawn]
	att |= knightAttacks[sq] & p[Knight]
	att |= kingAttacks[sq] & p[King]
	att |= BishopAttacks(sq, occ) & (p[Bishop] | p[Queen])
	att |= RookAttacks(sq, occ) & (p[Rook] | p[Queen])
	return att
}

// AttackersOf returns every piece of color by attacking sq.
func (b *Board) AttackersOf(sq Square, by Color) Bitboard {
	return b.attackersWithOcc(sq, by, b.AllOccupancy())
}

// AttackersWithOccupancy returns pieces of both colors attacking sq when the
// board is occupied by occ. Pieces outside occ are ignored.
func (b *Board) AttackersWithOccupancy(sq Square, occ Bitboard) Bitboard {
	return (b.attackersWithOcc(sq, White, occ) | b.attackersWithOcc(sq, Black, occ)) & occ
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.isAttackedWithOcc(sq, by, b.AllOccupancy())
}

func (b *Board) isAttackedWithOcc(sq Square, by Color, occ Bitboard) bool {
	p := &b.pieceBB[by]
	if pawnAttacks[by.Other()][sq]&p[Pawn] != 0 ||
		knightAttacks[sq]&p[Knight] != 0 ||
		kingAttacks[sq]&p[King] != 0 {
		return true
	}
	if bq := p[Bishop] | p[Queen]; bq != 0 && BishopAttacks(sq, occ)&bq != 0 {
		return true
	}
	rq := p[Rook] | p[Queen]
	return rq != 0 && RookAttacks(sq, occ)&rq != 0
}

// InCheck reports whether c's king is attacked.
func (b *Board) InCheck(c Color) bool {
	ks := b.KingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ks, c.Other())
}

// Between returns the squares strictly between a and b when they share a
// rank, file or diagonal, and the empty set otherwise.
func Between(a, b Square) Bitboard { return between[a][b] }
