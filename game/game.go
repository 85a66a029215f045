// Package game holds the canonical record of a match and is the entry point
// for playing moves, probing legality and asking the engine for a reply.
package game

import (
	"fmt"
	"time"

	"xfchess-engine/chessmg"
	"xfchess-engine/engine"
)

// DefaultSecsPerMove is the search budget of a new Game.
const DefaultSecsPerMove = 1.5

type playedMove struct {
	move  chessmg.Move
	state chessmg.MoveState
}

// Game is one match: the board, the moves played so far and the engine
// settings used by Reply. A Game is not safe for concurrent use; separate
// Games share nothing.
type Game struct {
	// SecsPerMove is the wall-clock budget Reply gives the search. A value
	// that is not positive limits Reply to a single iteration.
	SecsPerMove float64
	// MaxDepth caps the search depth when positive.
	MaxDepth int
	// TTSizeMB sizes the transposition table. Reply reallocates the table
	// when it changes.
	TTSizeMB int
	// OnIteration receives search progress during Reply.
	OnIteration func(engine.Info)

	board    *chessmg.Board
	played   []playedMove
	keys     []uint64
	searcher *engine.Searcher
	ttSizeMB int
}

// Reply is the engine's move and what it found.
type Reply struct {
	Move   chessmg.Move
	Score  int32
	Depth  int
	MateIn int
	// State is the game state after Move was played.
	State State
}

// NewGame starts a game from the standard initial position.
func NewGame() *Game {
	g := &Game{SecsPerMove: DefaultSecsPerMove, TTSizeMB: engine.DefaultTTSizeMB}
	g.setBoard(chessmg.NewBoard())
	return g
}

// NewGameFromFEN starts a game from the position in fen.
func NewGameFromFEN(fen string) (*Game, error) {
	b, err := chessmg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{SecsPerMove: DefaultSecsPerMove, TTSizeMB: engine.DefaultTTSizeMB}
	g.setBoard(b)
	return g, nil
}

// Reset returns the game to the initial position, keeping its settings.
func (g *Game) Reset() {
	g.setBoard(chessmg.NewBoard())
}

func (g *Game) setBoard(b *chessmg.Board) {
	g.board = b
	g.played = g.played[:0]
	g.keys = append(g.keys[:0], b.Hash())
}

func validSquare(sq int) bool { return sq >= 0 && sq < 64 }

// IsLegalMove reports whether the side to move may play from -> to.
func (g *Game) IsLegalMove(from, to int) bool {
	_, err := g.resolve(from, to, chessmg.Queen)
	return err == nil
}

// DoMove plays from -> to, promoting to a queen where applicable. With
// commit false the move is only validated and the game is left unchanged.
func (g *Game) DoMove(from, to int, commit bool) (chessmg.Move, error) {
	return g.DoMovePromote(from, to, chessmg.Queen, commit)
}

// DoMovePromote is DoMove with an explicit promotion piece. promo must be a
// knight, bishop, rook or queen and only matters when the move promotes.
func (g *Game) DoMovePromote(from, to int, promo chessmg.PieceType, commit bool) (chessmg.Move, error) {
	m, err := g.resolve(from, to, promo)
	if err != nil {
		return chessmg.NullMove, err
	}
	if commit {
		g.apply(m)
	}
	return m, nil
}

func (g *Game) resolve(from, to int, promo chessmg.PieceType) (chessmg.Move, error) {
	if !validSquare(from) || !validSquare(to) {
		return chessmg.NullMove, fmt.Errorf("%w: %d -> %d", ErrInvalidSquare, from, to)
	}
	if promo < chessmg.Knight || promo > chessmg.Queen {
		return chessmg.NullMove, fmt.Errorf("%w: %s", ErrInvalidPromotion, promo)
	}
	m, ok := g.board.FindMove(chessmg.Square(from), chessmg.Square(to), promo)
	if !ok {
		return chessmg.NullMove, fmt.Errorf("%w: %s%s", ErrIllegalMove, chessmg.Square(from), chessmg.Square(to))
	}
	return m, nil
}

func (g *Game) apply(m chessmg.Move) {
	ok, st := g.board.MakeMove(m)
	if !ok {
		panic("game: apply of illegal move " + m.String())
	}
	g.played = append(g.played, playedMove{move: m, state: st})
	g.keys = append(g.keys, g.board.Hash())
}

// Undo takes back the last move. It returns false if no move was played.
func (g *Game) Undo() (chessmg.Move, bool) {
	n := len(g.played)
	if n == 0 {
		return chessmg.NullMove, false
	}
	last := g.played[n-1]
	g.board.UnmakeMove(last.move, last.state)
	g.played = g.played[:n-1]
	g.keys = g.keys[:len(g.keys)-1]
	return last.move, true
}

// State reports checkmate and stalemate before the draw rules, and check
// last.
func (g *Game) State() State {
	b := g.board
	inCheck := b.InCheck(b.SideToMove())
	switch {
	case !b.HasLegalMoves():
		if inCheck {
			return Checkmate
		}
		return Stalemate
	case b.IsDrawBy50():
		return DrawFiftyMove
	case b.IsDrawByRepetition(g.keys):
		return DrawRepetition
	case b.InsufficientMaterial():
		return DrawInsufficientMaterial
	case inCheck:
		return Check
	}
	return Playing
}

// Reply searches for the side to move within SecsPerMove and plays the
// result. When the game is already over nothing is played, ok is false and
// the reply carries the terminal state.
func (g *Game) Reply() (r Reply, ok bool) {
	if st := g.State(); st.IsTerminal() {
		return Reply{State: st}, false
	}
	res := g.search().Search(g.board, g.keys, g.limits())
	if res.GameOver {
		return Reply{State: g.State()}, false
	}
	g.apply(res.Move)
	return Reply{
		Move:   res.Move,
		Score:  res.Score,
		Depth:  res.Depth,
		MateIn: res.MateIn,
		State:  g.State(),
	}, true
}

func (g *Game) search() *engine.Searcher {
	if g.searcher == nil || g.ttSizeMB != g.TTSizeMB {
		g.searcher = engine.NewSearcher(g.TTSizeMB)
		g.ttSizeMB = g.TTSizeMB
	}
	return g.searcher
}

func (g *Game) limits() engine.Limits {
	l := engine.Limits{
		Budget:      time.Duration(g.SecsPerMove * float64(time.Second)),
		Depth:       g.MaxDepth,
		OnIteration: g.OnIteration,
	}
	if l.Budget <= 0 {
		l.Budget, l.Depth = 0, 1
	}
	return l
}

// LegalMovesFrom lists the legal moves of the piece on sq. An empty square
// or an opponent's piece yields no moves.
func (g *Game) LegalMovesFrom(sq int) ([]chessmg.Move, error) {
	if !validSquare(sq) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSquare, sq)
	}
	return g.board.GenerateMovesFrom(chessmg.Square(sq)), nil
}

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq int) (chessmg.Piece, error) {
	if !validSquare(sq) {
		return chessmg.NoPiece, fmt.Errorf("%w: %d", ErrInvalidSquare, sq)
	}
	return g.board.PieceAt(chessmg.Square(sq)), nil
}

func (g *Game) SideToMove() chessmg.Color { return g.board.SideToMove() }

// Board returns a copy of the current position.
func (g *Game) Board() *chessmg.Board { return g.board.Copy() }

func (g *Game) FEN() string { return g.board.FEN() }

// History returns the moves played so far, oldest first.
func (g *Game) History() []chessmg.Move {
	out := make([]chessmg.Move, len(g.played))
	for i, p := range g.played {
		out[i] = p.move
	}
	return out
}
