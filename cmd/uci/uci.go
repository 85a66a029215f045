package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"xfchess-engine/chessmg"
	"xfchess-engine/engine"
	"xfchess-engine/game"
	"xfchess-engine/internal/config"
)

const (
	engineName   = "xfchess"
	engineAuthor = "xfchess authors"
)

type uci struct {
	cfg config.Config
	g   *game.Game
	out io.Writer
}

func newUCI(cfg config.Config, out io.Writer) *uci {
	u := &uci{cfg: cfg, out: out}
	u.newGame()
	return u
}

func (u *uci) newGame() {
	u.g = game.NewGame()
	u.cfg.Apply(u.g)
	if u.cfg.LogInfo {
		u.g.OnIteration = u.printInfo
	}
}

func (u *uci) println(a ...any) {
	fmt.Fprintln(u.out, a...)
}

func (u *uci) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			u.println("id name", engineName)
			u.println("id author", engineAuthor)
			u.println("uciok")
		case "isready":
			u.println("readyok")
		case "ucinewgame":
			u.newGame()
		case "position":
			u.position(tokens[1:])
		case "go":
			u.goCmd(tokens[1:])
		case "d":
			u.println(u.g.Board())
			u.println("Fen:", u.g.FEN())
			u.println("State:", u.g.State())
		case "quit":
			return nil
		default:
			u.println("info string Unknown command:", strings.Join(tokens, " "))
		}
	}
	return scanner.Err()
}

func (u *uci) position(args []string) {
	if len(args) == 0 {
		u.println("info string Malformed position command")
		return
	}
	movesAt := slices.Index(args, "moves")
	if movesAt == -1 {
		movesAt = len(args)
	}

	switch strings.ToLower(args[0]) {
	case "startpos":
		u.newGame()
	case "fen":
		g, err := game.NewGameFromFEN(strings.Join(args[1:movesAt], " "))
		if err != nil {
			u.println("info string Invalid fen position:", err)
			return
		}
		u.g = g
		u.cfg.Apply(u.g)
		if u.cfg.LogInfo {
			u.g.OnIteration = u.printInfo
		}
	default:
		u.println("info string Invalid position subcommand")
		return
	}

	if movesAt+1 >= len(args) {
		return
	}
	for _, mv := range args[movesAt+1:] {
		m, err := u.g.Board().ParseMove(strings.ToLower(mv))
		if err != nil {
			u.println("info string Move", mv, "not found for position", u.g.FEN())
			return
		}
		promo := chessmg.Queen
		if m.IsPromotion() {
			promo = m.PromotionType()
		}
		if _, err := u.g.DoMovePromote(int(m.From()), int(m.To()), promo, true); err != nil {
			u.println("info string", err)
			return
		}
	}
}

// goCmd understands depth, movetime and the wtime/btime/winc/binc clock.
func (u *uci) goCmd(args []string) {
	var depth, moveTime, wTime, bTime, wInc, bInc int
	for i := 0; i < len(args); i++ {
		var dst *int
		switch strings.ToLower(args[i]) {
		case "depth":
			dst = &depth
		case "movetime":
			dst = &moveTime
		case "wtime":
			dst = &wTime
		case "btime":
			dst = &bTime
		case "winc":
			dst = &wInc
		case "binc":
			dst = &bInc
		case "infinite":
			continue
		default:
			u.println("info string Unknown go subcommand", args[i])
			continue
		}
		if i+1 >= len(args) {
			u.println("info string Malformed go command option", args[i])
			break
		}
		i++
		v, err := strconv.Atoi(args[i])
		if err != nil {
			u.println("info string Malformed go command option; could not convert", args[i-1])
			continue
		}
		*dst = v
	}

	budget := u.cfg.Budget()
	switch {
	case moveTime > 0:
		budget = time.Duration(moveTime) * time.Millisecond
	case u.g.SideToMove() == chessmg.White && wTime > 0:
		budget = clockBudget(wTime, wInc)
	case u.g.SideToMove() == chessmg.Black && bTime > 0:
		budget = clockBudget(bTime, bInc)
	}

	u.g.SecsPerMove = budget.Seconds()
	u.g.MaxDepth = u.cfg.MaxDepth
	if depth > 0 {
		u.g.MaxDepth = engine.Min(depth, engine.MaxPly-1)
	}
	defer u.cfg.Apply(u.g)

	r, ok := u.g.Reply()
	if !ok {
		u.println("info string game over:", r.State)
		u.println("bestmove (none)")
		return
	}
	u.println("bestmove", r.Move)
}

// clockBudget spends a fortieth of the remaining time plus the increment,
// never more than 70% of what is left.
func clockBudget(remainingMs, incMs int) time.Duration {
	const overheadMs, minMoveMs = 30, 5
	ms := remainingMs/40 + incMs
	ms = engine.Min(ms, remainingMs*7/10)
	ms = engine.Min(ms, remainingMs-overheadMs)
	ms = engine.Max(ms, minMoveMs)
	return time.Duration(ms) * time.Millisecond
}

func (u *uci) printInfo(info engine.Info) {
	ms := info.Elapsed.Milliseconds()
	nps := uint64(0)
	if ms > 0 {
		nps = info.Nodes * 1000 / uint64(ms)
	}
	u.println("info depth", info.Depth,
		"score", engine.FormatScore(info.Score),
		"nodes", info.Nodes,
		"time", ms,
		"nps", nps,
		"pv", info.PV)
}
