package engine

import "testing"

func TestSEE(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want int32
	}{
		{"revealed slider", "6k1/4q1p1/4n3/8/2B5/8/8/6K1 w - - 0 1", "c4e6", 0},
		{"en passant", "k7/8/8/3pP3/8/8/8/6K1 w - d6 0 1", "e5d6", 100},
		{"defended pawn", "4k3/8/2p5/3p4/8/8/8/3QK3 w - - 0 1", "d1d5", -800},
		{"free rook", "4k3/8/8/3r4/8/8/8/3QK3 w - - 0 1", "d1d5", 500},
		{"battery", "4k3/3r4/8/3p4/8/8/3R4/3RK3 w - - 0 1", "d2d5", 100},
		{"outnumbered battery", "3rk3/3r4/8/3p4/8/8/3R4/3RK3 w - - 0 1", "d2d5", -400},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustFEN(t, tc.fen)
			if got := see(b, mustMove(t, b, tc.move)); got != tc.want {
				t.Fatalf("see(%s): got %d want %d", tc.move, got, tc.want)
			}
		})
	}
}
