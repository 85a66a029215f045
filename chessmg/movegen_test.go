package chessmg_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"xfchess-engine/chessmg"
)

func moveStrings(moves []chessmg.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func TestCastlingPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		castle  string
		allowed bool
	}{
		{"both clear", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", true},
		{"queenside clear", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", true},
		{"in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", "e1g1", false},
		{"through attacked f1", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", "e1g1", false},
		{"onto attacked g1", "r3k2r/8/8/8/8/8/6r1/R3K2R w KQkq - 0 1", "e1g1", false},
		{"b1 attacked is fine", "r3k2r/8/8/8/8/8/1r6/R3K2R w KQkq - 0 1", "e1c1", true},
		{"blocked", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1c1", false},
		{"no right", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", "e1g1", false},
		{"black kingside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", true},
		{"black through check", "r3k2r/8/8/8/8/8/8/R3KR2 b KQkq - 0 1", "e8g8", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustFEN(t, tc.fen)
			got := slices.Contains(moveStrings(b.GenerateMoves()), tc.castle)
			if got != tc.allowed {
				t.Fatalf("%s legal: got %v want %v", tc.castle, got, tc.allowed)
			}
		})
	}
}

func TestEnPassantWindow(t *testing.T) {
	b := mustFEN(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	play(t, b, "d7d5")
	if b.EnPassantSquare().String() != "d6" {
		t.Fatalf("target after double push: got %s want d6", b.EnPassantSquare())
	}
	moves := moveStrings(b.GenerateMoves())
	if !slices.Contains(moves, "e5d6") {
		t.Fatalf("en passant missing: %v", moves)
	}
	m := parse(t, b, "e5d6")
	if !m.IsEnPassant() || m.CapturedPiece() != chessmg.BlackPawn {
		t.Fatalf("e5d6 flags: ep=%v captured=%s", m.IsEnPassant(), m.CapturedPiece())
	}

	// a quiet pair of moves closes the window
	play(t, b, "e1d1")
	play(t, b, "e8d8")
	if b.EnPassantSquare() != chessmg.NoSquare {
		t.Fatalf("target should expire, got %s", b.EnPassantSquare())
	}
	if slices.Contains(moveStrings(b.GenerateMoves()), "e5d6") {
		t.Fatalf("en passant still offered after the window closed")
	}
}

func TestEnPassantCapture(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")
	undo := b.Apply(parse(t, b, "e5d6"))
	if b.PieceAt(chessmg.Square(35)) != chessmg.NoPiece {
		t.Fatalf("captured pawn still on d5")
	}
	if b.PieceAt(chessmg.Square(43)) != chessmg.WhitePawn {
		t.Fatalf("capturing pawn not on d6")
	}
	undo()
	if b.PieceAt(chessmg.Square(35)) != chessmg.BlackPawn {
		t.Fatalf("undo did not restore d5")
	}
}

// En passant that would expose the king along the rank is illegal.
func TestEnPassantHorizontalPin(t *testing.T) {
	b := mustFEN(t, "8/8/8/K2pP2r/8/8/8/7k w - d6 0 2")
	if slices.Contains(moveStrings(b.GenerateMoves()), "e5d6") {
		t.Fatalf("en passant exposing the king was generated")
	}
}

func TestPromotionChoices(t *testing.T) {
	b := mustFEN(t, "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	var push, capture []string
	for _, m := range b.GenerateMovesFrom(chessmg.Square(48)) {
		if !m.IsPromotion() {
			t.Fatalf("non-promotion pawn move %s", m)
		}
		if m.IsCapture() {
			capture = append(capture, m.String())
		} else {
			push = append(push, m.String())
		}
	}
	sort.Strings(push)
	sort.Strings(capture)
	if want := []string{"a7a8b", "a7a8n", "a7a8q", "a7a8r"}; !slices.Equal(push, want) {
		t.Fatalf("push promotions: got %v want %v", push, want)
	}
	if want := []string{"a7b8b", "a7b8n", "a7b8q", "a7b8r"}; !slices.Equal(capture, want) {
		t.Fatalf("capture promotions: got %v want %v", capture, want)
	}
	m := parse(t, b, "a7a8n")
	b.Apply(m)
	if b.PieceAt(chessmg.Square(56)) != chessmg.WhiteKnight {
		t.Fatalf("underpromotion placed %s", b.PieceAt(chessmg.Square(56)))
	}
}

func TestGenerateMovesFrom(t *testing.T) {
	b := chessmg.NewBoard()
	if got := moveStrings(b.GenerateMovesFrom(chessmg.Square(12))); !slices.Equal(got, []string{"e2e3", "e2e4"}) {
		t.Fatalf("e2 hints: got %v", got)
	}
	if got := b.GenerateMovesFrom(chessmg.Square(28)); len(got) != 0 {
		t.Fatalf("empty square produced %v", got)
	}
	if got := b.GenerateMovesFrom(chessmg.Square(52)); len(got) != 0 {
		t.Fatalf("opponent piece produced %v", got)
	}
	if got := b.GenerateMovesFrom(chessmg.NoSquare); got != nil {
		t.Fatalf("invalid square produced %v", got)
	}
}

func TestCapturesSubsetOfLegal(t *testing.T) {
	b := mustFEN(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	var want []string
	for _, m := range b.GenerateMoves() {
		if m.IsCapture() || m.IsPromotion() {
			want = append(want, m.String())
		}
	}
	sort.Strings(want)
	if got := moveStrings(b.GenerateCaptures()); !slices.Equal(got, want) {
		t.Fatalf("captures: got %v want %v", got, want)
	}
}

func TestSliderAttacksMatchDragontooth(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		occ := rnd.Uint64() & rnd.Uint64()
		sq := rnd.Intn(64)
		if got, want := uint64(chessmg.RookAttacks(chessmg.Square(sq), chessmg.Bitboard(occ))),
			dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ); got != want {
			t.Fatalf("rook sq=%d occ=%#x: got %#x want %#x", sq, occ, got, want)
		}
		if got, want := uint64(chessmg.BishopAttacks(chessmg.Square(sq), chessmg.Bitboard(occ))),
			dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ); got != want {
			t.Fatalf("bishop sq=%d occ=%#x: got %#x want %#x", sq, occ, got, want)
		}
	}
}

func TestAttackQueries(t *testing.T) {
	b := mustFEN(t, "4r2k/8/8/8/1b6/8/8/4K3 w - - 0 1")
	if !b.InCheck(chessmg.White) {
		t.Fatalf("expected check from e8 rook")
	}
	if got := b.AttackersOf(chessmg.E1, chessmg.Black).Count(); got != 2 {
		t.Fatalf("attackers of e1: got %d want %d", got, 2)
	}
	b.SetPiece(chessmg.Square(20), chessmg.WhitePawn) // e3 blocks the rook
	if got := b.AttackersOf(chessmg.E1, chessmg.Black).Count(); got != 1 {
		t.Fatalf("attackers of e1 after block: got %d want %d", got, 1)
	}
	if !b.Validate() {
		t.Fatalf("SetPiece left the board inconsistent")
	}
}

func TestStatusDetection(t *testing.T) {
	mate := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !mate.InCheckmate() || mate.InStalemate() {
		t.Fatalf("fool's mate not detected")
	}
	stale := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if !stale.InStalemate() || stale.InCheckmate() {
		t.Fatalf("stalemate not detected")
	}
	open := mustFEN(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")
	if open.InCheckmate() || open.InStalemate() || !open.HasLegalMoves() {
		t.Fatalf("position with moves reported terminal")
	}
}
