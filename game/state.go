package game

// State is the status of a game from the side to move's point of view.
type State int

const (
	Playing State = iota
	Check
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawRepetition
	DrawInsufficientMaterial
)

var stateNames = [...]string{
	Playing:                  "playing",
	Check:                    "check",
	Checkmate:                "checkmate",
	Stalemate:                "stalemate",
	DrawFiftyMove:            "draw (fifty-move rule)",
	DrawRepetition:           "draw (threefold repetition)",
	DrawInsufficientMaterial: "draw (insufficient material)",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// IsDraw reports whether s ends the game without a winner.
func (s State) IsDraw() bool {
	switch s {
	case Stalemate, DrawFiftyMove, DrawRepetition, DrawInsufficientMaterial:
		return true
	}
	return false
}

// IsTerminal reports whether no further moves may be played.
func (s State) IsTerminal() bool { return s == Checkmate || s.IsDraw() }
