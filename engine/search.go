package engine

import (
	"time"

	"xfchess-engine/chessmg"
)

// DeltaMargin is added to a capture's gain before quiescence gives up on it.
const DeltaMargin int32 = 200

// Limits bounds one Search call.
type Limits struct {
	// Budget is the soft time limit. No new iteration starts once it is
	// spent. A non-positive budget stops after the first iteration unless
	// Depth or Infinite is set, in which case time is not limited.
	Budget time.Duration
	// Depth caps the iteration depth when positive.
	Depth int
	// Infinite lifts the time limit when Budget is not positive. Without a
	// Depth the search runs to MaxPly.
	Infinite bool
	// OnIteration, if set, is called after every completed iteration.
	OnIteration func(Info)
}

// Info describes a completed iteration.
type Info struct {
	Depth   int
	Score   int32
	Nodes   uint64
	Elapsed time.Duration
	PV      PVLine
}

// Result is the outcome of a search.
type Result struct {
	Move  chessmg.Move
	Score int32
	Depth int
	// MateIn is the distance to mate in plies: positive when the side to
	// move mates, negative when it is mated, zero otherwise.
	MateIn int
	PV     PVLine
	Stats  Stats
	// GameOver is set when the root position has no legal moves.
	GameOver bool
}

// Searcher runs iterative-deepening alpha-beta searches. It owns every
// table the search touches, so separate Searchers are independent. A
// Searcher is not safe for concurrent use.
type Searcher struct {
	tt      *TransTable
	killers killerTable
	history historyTable
	states  stateStack
	timer   TimeHandler
	stats   Stats

	rootMove chessmg.Move
	moveBuf  [MaxPly + 1][]chessmg.Move
	scoreBuf [MaxPly + 1][]scoredMove
}

// NewSearcher returns a Searcher with a transposition table of ttSizeMB
// megabytes, or DefaultTTSizeMB if ttSizeMB is not positive.
func NewSearcher(ttSizeMB int) *Searcher {
	return &Searcher{tt: NewTransTable(ttSizeMB)}
}

// Search finds the best move for the side to move in b. history holds the
// Zobrist keys of the game's earlier positions, oldest first, for
// repetition detection. b is not modified.
func (s *Searcher) Search(b *chessmg.Board, history []uint64, limits Limits) Result {
	b = b.Copy()
	s.tt.Clear()
	s.killers.clear()
	s.history.clear()
	s.stats = Stats{}
	s.rootMove = chessmg.NullMove
	s.states.reset(b, history)
	s.timer.startSearch(limits.Budget, limits.Infinite || limits.Depth > 0)

	rootMoves := b.GenerateMoves()
	if len(rootMoves) == 0 {
		score, _ := TerminalScore(b, 0)
		return Result{Score: score, MateIn: MatePlies(score), GameOver: true}
	}

	maxDepth := MaxPly - 1
	if limits.Depth > 0 {
		maxDepth = Min(limits.Depth, maxDepth)
	}

	result := Result{Move: rootMoves[0]}
	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && s.timer.TimeStatus() {
			break
		}
		s.timer.startIteration()
		var pv PVLine
		score := s.alphabeta(b, -Infinity, Infinity, depth, 0, &pv, chessmg.NullMove)
		s.timer.endIteration()

		if m := pv.GetPVMove(); m != chessmg.NullMove {
			result.Move = m
			s.rootMove = m
		}
		result.Score = score
		result.Depth = depth
		result.MateIn = MatePlies(score)
		result.PV = pv.Clone()

		if limits.OnIteration != nil {
			limits.OnIteration(Info{
				Depth:   depth,
				Score:   score,
				Nodes:   s.stats.Nodes + s.stats.QNodes,
				Elapsed: s.timer.Elapsed(),
				PV:      result.PV,
			})
		}

		if IsMateScore(score) {
			break
		}
		if len(rootMoves) == 1 && limits.Depth == 0 {
			break
		}
	}
	result.Stats = s.stats
	return result
}

func (s *Searcher) alphabeta(b *chessmg.Board, alpha, beta int32, depth, ply int, pv *PVLine, prevMove chessmg.Move) int32 {
	pv.Clear()
	s.stats.Nodes++
	isRoot := ply == 0

	if !isRoot {
		if s.states.isRepetition(b.HalfmoveClock()) || b.InsufficientMaterial() {
			return DrawScore
		}
		// Mate on the hundredth halfmove still counts.
		if b.IsDrawBy50() && !b.InCheckmate() {
			return DrawScore
		}
	}
	if ply >= MaxPly {
		return Evaluate(b)
	}

	side := b.SideToMove()
	inCheck := b.InCheck(side)
	if inCheck {
		depth++
	}
	if depth <= 0 {
		return s.quiescence(b, alpha, beta, ply, pv)
	}

	hash := b.Hash()
	var hashMove chessmg.Move
	if entry, hit := s.tt.Probe(hash); hit {
		s.stats.TTHits++
		hashMove = entry.Move
		if !isRoot {
			if ok, score := useEntry(entry, depth, alpha, beta, ply); ok {
				s.stats.TTCutoffs++
				return score
			}
		}
	}
	if isRoot && s.rootMove != chessmg.NullMove {
		hashMove = s.rootMove
	}

	moves := b.GenerateMovesInto(s.moveBuf[ply][:0])
	s.moveBuf[ply] = moves
	if len(moves) == 0 {
		if inCheck {
			return MatedIn(ply)
		}
		return DrawScore
	}

	list := s.scoreMoves(s.scoreBuf[ply], b, moves, ply, hashMove, prevMove)
	s.scoreBuf[ply] = list

	flag := AlphaFlag
	bestMove := hashMove
	var child PVLine
	for i := range list {
		orderNextMove(i, list)
		m := list[i].move

		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		s.states.push(b.Hash())
		score := -s.alphabeta(b, -beta, -alpha, depth-1, ply+1, &child, m)
		s.states.pop()
		b.UnmakeMove(m, st)

		if score >= beta {
			s.stats.BetaCutoffs++
			if m.IsQuiet() {
				s.killers.insert(m, ply)
				s.history.storeCounter(side, prevMove, m)
				s.history.increment(side, m, depth)
				for _, tried := range list[:i] {
					if tried.move.IsQuiet() {
						s.history.decrement(side, tried.move)
					}
				}
			}
			s.tt.Store(hash, depth, ply, m, beta, BetaFlag)
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = m
			flag = ExactFlag
			pv.Update(m, child)
		}
	}

	s.tt.Store(hash, depth, ply, bestMove, alpha, flag)
	return alpha
}

// quiescence resolves captures and promotions until the position is quiet.
// In check every evasion is searched and a position without one is mate.
func (s *Searcher) quiescence(b *chessmg.Board, alpha, beta int32, ply int, pv *PVLine) int32 {
	pv.Clear()
	s.stats.QNodes++
	if ply >= MaxPly {
		return Evaluate(b)
	}

	inCheck := b.InCheck(b.SideToMove())
	var standPat int32
	var moves []chessmg.Move
	if inCheck {
		moves = b.GenerateMovesInto(s.moveBuf[ply][:0])
		if len(moves) == 0 {
			return MatedIn(ply)
		}
	} else {
		standPat = Evaluate(b)
		if standPat >= beta {
			s.stats.QStandPatCutoffs++
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
		moves = b.GenerateCapturesInto(s.moveBuf[ply][:0])
	}
	s.moveBuf[ply] = moves

	list := scoreCaptures(s.scoreBuf[ply], moves)
	s.scoreBuf[ply] = list

	var child PVLine
	for i := range list {
		orderNextMove(i, list)
		m := list[i].move

		if !inCheck {
			if standPat+captureGain(m)+DeltaMargin < alpha {
				s.stats.DeltaPrunes++
				continue
			}
			if !m.IsPromotion() && see(b, m) < 0 {
				s.stats.SEEPrunes++
				continue
			}
		}

		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		score := -s.quiescence(b, -beta, -alpha, ply+1, &child)
		b.UnmakeMove(m, st)

		if score >= beta {
			s.stats.QBetaCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
			pv.Update(m, child)
		}
	}
	return alpha
}

// captureGain is the most material m can win outright.
func captureGain(m chessmg.Move) int32 {
	var gain int32
	switch {
	case m.IsEnPassant():
		gain = PieceValue[chessmg.Pawn]
	case m.IsCapture():
		gain = PieceValue[m.CapturedPiece().Type()]
	}
	if m.IsPromotion() {
		gain += PieceValue[m.PromotionType()] - PieceValue[chessmg.Pawn]
	}
	return gain
}
