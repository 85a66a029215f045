package chessmg_test

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"

	"xfchess-engine/chessmg"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		chessmg.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 12 40",
	}
	for _, fen := range fens {
		if got := mustFEN(t, fen).FEN(); got != fen {
			t.Fatalf("FEN round trip: got %q want %q", got, fen)
		}
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
		"rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQ - 0 1",
	}
	for _, fen := range bad {
		if _, err := chessmg.ParseFEN(fen); !errors.Is(err, chessmg.ErrInvalidFEN) {
			t.Fatalf("ParseFEN(%q): got %v want ErrInvalidFEN", fen, err)
		}
	}
}

func TestStartPosition(t *testing.T) {
	b := chessmg.NewBoard()
	if b.SideToMove() != chessmg.White || b.CastlingRights() != chessmg.CastlingAll {
		t.Fatalf("start: side %s rights %s", b.SideToMove(), b.CastlingRights())
	}
	if b.EnPassantSquare() != chessmg.NoSquare || b.HalfmoveClock() != 0 || b.FullmoveNumber() != 1 {
		t.Fatalf("start clocks: ep %s hmc %d fmn %d", b.EnPassantSquare(), b.HalfmoveClock(), b.FullmoveNumber())
	}
	if got := b.AllOccupancy().Count(); got != 32 {
		t.Fatalf("start occupancy: got %d want %d", got, 32)
	}
	if got := b.Pieces(chessmg.Black, chessmg.Pawn).Count(); got != 8 {
		t.Fatalf("black pawns: got %d want %d", got, 8)
	}
	if b.KingSquare(chessmg.White) != chessmg.E1 || b.KingSquare(chessmg.Black) != chessmg.E8 {
		t.Fatalf("king squares: %s %s", b.KingSquare(chessmg.White), b.KingSquare(chessmg.Black))
	}
}

func TestMirror(t *testing.T) {
	b := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w Kq - 0 1")
	m := b.Mirror()
	want := "r3k2r/pppbbppp/2n2q1P/1P2p3/3pn3/BN2PNP1/P1PPQPB1/R3K2R b Qk - 0 1"
	if got := m.FEN(); got != want {
		t.Fatalf("mirror: got %q want %q", got, want)
	}
	if !m.Validate() {
		t.Fatalf("mirrored board inconsistent")
	}
	if got := m.Mirror().FEN(); got != b.FEN() {
		t.Fatalf("double mirror: got %q want %q", got, b.FEN())
	}
	if got, want := chessmg.Perft(m, 2), chessmg.Perft(b, 2); got != want {
		t.Fatalf("mirrored perft: got %d want %d", got, want)
	}
}

func TestBitboardOps(t *testing.T) {
	var bb chessmg.Bitboard
	bb = bb.Set(chessmg.A1).Set(chessmg.H8).Set(chessmg.E1)
	if bb.Count() != 3 || !bb.Has(chessmg.E1) || bb.Has(chessmg.E8) {
		t.Fatalf("set/has: %#x", uint64(bb))
	}
	if got := bb.Squares(); !slices.Equal(got, []chessmg.Square{chessmg.A1, chessmg.E1, chessmg.H8}) {
		t.Fatalf("squares: got %v", got)
	}
	// Squares is a fresh sequence each call
	if got := bb.Squares(); len(got) != 3 {
		t.Fatalf("second Squares call: got %v", got)
	}
	if bb.LSB() != chessmg.A1 || bb.MSB() != chessmg.H8 {
		t.Fatalf("lsb/msb: %s %s", bb.LSB(), bb.MSB())
	}
	if first := bb.PopLSB(); first != chessmg.A1 || bb.Count() != 2 {
		t.Fatalf("pop: got %s left %d", first, bb.Count())
	}
	bb = bb.Clear(chessmg.E1)
	if bb != chessmg.SquareBB(chessmg.H8) {
		t.Fatalf("clear: %#x", uint64(bb))
	}
	if chessmg.Bitboard(0).LSB() != chessmg.NoSquare {
		t.Fatalf("empty LSB should be NoSquare")
	}
	if got := chessmg.Between(chessmg.A1, chessmg.H8).Count(); got != 6 {
		t.Fatalf("between a1 h8: got %d want %d", got, 6)
	}
	if got := chessmg.Between(chessmg.A1, chessmg.Square(10)); got != 0 {
		t.Fatalf("between unaligned squares: %#x", uint64(got))
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := chessmg.ParseSquare("e4")
	if err != nil || sq != chessmg.Square(28) {
		t.Fatalf("e4: got %d, %v", sq, err)
	}
	if _, err := chessmg.ParseSquare("i9"); !errors.Is(err, chessmg.ErrInvalidSquare) {
		t.Fatalf("i9: got %v want ErrInvalidSquare", err)
	}
}

func TestParseMoveErrors(t *testing.T) {
	b := chessmg.NewBoard()
	if _, err := b.ParseMove("e2e5"); !errors.Is(err, chessmg.ErrIllegalMove) {
		t.Fatalf("e2e5: got %v want ErrIllegalMove", err)
	}
	if _, err := b.ParseMove("zz"); !errors.Is(err, chessmg.ErrInvalidMove) {
		t.Fatalf("zz: got %v want ErrInvalidMove", err)
	}
}
