package chessmg_test

import (
	"os"
	"strings"
	"testing"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"xfchess-engine/chessmg"
)

type perftCase struct {
	Name  string   `yaml:"name"`
	FEN   string   `yaml:"fen"`
	Nodes []uint64 `yaml:"nodes"`
}

func loadPerftCases(t *testing.T) []perftCase {
	t.Helper()
	data, err := os.ReadFile("testdata/perft.yaml")
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var doc struct {
		Positions []perftCase `yaml:"positions"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode fixtures: %v", err)
	}
	if len(doc.Positions) == 0 {
		t.Fatalf("no perft fixtures")
	}
	return doc.Positions
}

func mustFEN(t testing.TB, fen string) *chessmg.Board {
	t.Helper()
	b, err := chessmg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestPerftInitialPosition(t *testing.T) {
	b := chessmg.NewBoard()
	for depth, want := range []uint64{1, 20, 400, 8902} {
		if got := chessmg.Perft(b, depth); got != want {
			t.Fatalf("perft depth%d: got %d want %d", depth, got, want)
		}
	}
	if b.FEN() != chessmg.FENStartPos {
		t.Fatalf("perft mutated the board: %s", b.FEN())
	}
}

func TestPerftFixtures(t *testing.T) {
	for _, tc := range loadPerftCases(t) {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			b := mustFEN(t, tc.FEN)
			for i, want := range tc.Nodes {
				depth := i + 1
				if depth > 2 && testing.Short() {
					break
				}
				if got := chessmg.Perft(b, depth); got != want {
					t.Fatalf("%s depth%d: got %d want %d", tc.Name, depth, got, want)
				}
			}
			if !b.Validate() {
				t.Fatalf("%s: board out of sync after perft", tc.Name)
			}
		})
	}
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var n uint64
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		n += dragontoothPerft(b, depth-1)
		undo()
	}
	return n
}

// Per-move subtree counts must agree with dragontoothmg, which pinpoints the
// offending root move when the totals differ.
func TestPerftDivideMatchesDragontooth(t *testing.T) {
	for _, tc := range loadPerftCases(t) {
		b := mustFEN(t, tc.FEN)
		ref := dragontoothmg.ParseFen(tc.FEN)

		want := make(map[string]uint64)
		for _, m := range ref.GenerateLegalMoves() {
			undo := ref.Apply(m)
			want[strings.ToLower(m.String())] = dragontoothPerft(&ref, 1)
			undo()
		}
		got := make(map[string]uint64)
		for m, n := range chessmg.PerftDivide(b, 2) {
			got[m.String()] = n
		}
		if len(got) != len(want) {
			t.Fatalf("%s: %d root moves, dragontooth has %d", tc.Name, len(got), len(want))
		}
		for _, mv := range maps.Keys(want) {
			if got[mv] != want[mv] {
				t.Fatalf("%s %s: got %d want %d", tc.Name, mv, got[mv], want[mv])
			}
		}
	}
}

func TestPerftMatchesGooseMG(t *testing.T) {
	for _, tc := range loadPerftCases(t) {
		ref, err := goosemg.ParseFEN(tc.FEN)
		if err != nil {
			t.Fatalf("goosemg ParseFEN(%s): %v", tc.Name, err)
		}
		b := mustFEN(t, tc.FEN)
		if got, want := chessmg.Perft(b, 2), goosemg.Perft(ref, 2); got != want {
			t.Fatalf("%s depth2: got %d want %d", tc.Name, got, want)
		}
	}
}
