package chessmg_test

import (
	"testing"

	"xfchess-engine/chessmg"
)

type snapshot struct {
	fen  string
	hash uint64
	ep   chessmg.Square
	cr   chessmg.CastlingRights
	hmc  int
}

func snap(b *chessmg.Board) snapshot {
	return snapshot{b.FEN(), b.Hash(), b.EnPassantSquare(), b.CastlingRights(), b.HalfmoveClock()}
}

// Every legal move, made and unmade, must restore the position exactly,
// and the incremental hash must match a from-scratch recomputation.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := []string{
		chessmg.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		b := mustFEN(t, fen)
		before := snap(b)
		for _, m := range b.GenerateMoves() {
			ok, st := b.MakeMove(m)
			if !ok {
				t.Fatalf("%s: legal move %s rejected", fen, m)
			}
			if !b.Validate() {
				t.Fatalf("%s: board inconsistent after %s", fen, m)
			}
			b.UnmakeMove(m, st)
			if after := snap(b); after != before {
				t.Fatalf("%s: %s did not round trip\n got  %+v\n want %+v", fen, m, after, before)
			}
		}
	}
}

func TestMakeMoveRejectsSelfCheck(t *testing.T) {
	// pinned knight on e2
	b := mustFEN(t, "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1")
	fen := b.FEN()
	for _, m := range b.GeneratePseudoMoves() {
		if m.From() != chessmg.Square(12) {
			continue
		}
		if ok, _ := b.MakeMove(m); ok {
			t.Fatalf("pinned knight move %s accepted", m)
		}
		if b.FEN() != fen {
			t.Fatalf("rejected move %s changed the board: %s", m, b.FEN())
		}
	}
}

func TestMakeMoveClocks(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/4P3/4K1N1 w - - 7 20")
	play(t, b, "g1f3")
	if b.HalfmoveClock() != 8 {
		t.Fatalf("halfmove after knight move: got %d want %d", b.HalfmoveClock(), 8)
	}
	play(t, b, "e8d8")
	if b.FullmoveNumber() != 21 {
		t.Fatalf("fullmove after black move: got %d want %d", b.FullmoveNumber(), 21)
	}
	play(t, b, "e2e4")
	if b.HalfmoveClock() != 0 {
		t.Fatalf("halfmove after pawn move: got %d want %d", b.HalfmoveClock(), 0)
	}
	if b.EnPassantSquare().String() != "e3" {
		t.Fatalf("en passant target: got %s want e3", b.EnPassantSquare())
	}
}

func TestCastlingRightsLost(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{"king move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1f1"}, "kq"},
		{"rook move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"h1h2"}, "Qkq"},
		{"rook captured", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"a1a8"}, "Kk"},
		{"castled", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"e8c8"}, "KQ"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustFEN(t, tc.fen)
			for _, mv := range tc.moves {
				play(t, b, mv)
			}
			if got := b.CastlingRights().String(); got != tc.want {
				t.Fatalf("rights: got %s want %s", got, tc.want)
			}
		})
	}
}

func TestCastleMovesRook(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	undo := b.Apply(parse(t, b, "e1g1"))
	if b.PieceAt(chessmg.F1) != chessmg.WhiteRook || b.PieceAt(chessmg.H1) != chessmg.NoPiece {
		t.Fatalf("rook not moved to f1:\n%s", b)
	}
	undo()
	if b.PieceAt(chessmg.H1) != chessmg.WhiteRook || b.PieceAt(chessmg.E1) != chessmg.WhiteKing {
		t.Fatalf("castle not undone:\n%s", b)
	}
}

func TestNullMoveRoundTrip(t *testing.T) {
	b := mustFEN(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	before := snap(b)
	st := b.MakeNullMove()
	if b.SideToMove() != chessmg.Black || b.EnPassantSquare() != chessmg.NoSquare {
		t.Fatalf("null move: side %s ep %s", b.SideToMove(), b.EnPassantSquare())
	}
	if b.Hash() != b.ComputeZobrist() {
		t.Fatalf("null move hash drift")
	}
	b.UnmakeNullMove(st)
	if snap(b) != before {
		t.Fatalf("null move did not round trip")
	}
}

func parse(t *testing.T, b *chessmg.Board, mv string) chessmg.Move {
	t.Helper()
	m, err := b.ParseMove(mv)
	if err != nil {
		t.Fatalf("ParseMove(%s) on %s: %v", mv, b.FEN(), err)
	}
	return m
}

func play(t *testing.T, b *chessmg.Board, mv string) {
	t.Helper()
	b.Apply(parse(t, b, mv))
}
