package engine

import "fmt"

const (
	// MaxPly bounds the search tree height, extensions and quiescence included.
	MaxPly = 64

	MateScore     int32 = 30000
	MateThreshold int32 = MateScore - MaxPly
	DrawScore     int32 = 0
	// Infinity is strictly outside every reachable score.
	Infinity int32 = MateScore + 1
)

// MatedIn is the score of the side to move being checkmated at ply.
func MatedIn(ply int) int32 { return -MateScore + int32(ply) }

// MateIn is the score of delivering checkmate at ply.
func MateIn(ply int) int32 { return MateScore - int32(ply) }

// IsMateScore reports whether s encodes a forced mate for either side.
func IsMateScore(s int32) bool { return s > MateThreshold || s < -MateThreshold }

// MatePlies returns the distance to mate in plies, positive when the side
// to move mates and negative when it is mated. Zero for ordinary scores.
func MatePlies(s int32) int {
	switch {
	case s > MateThreshold:
		return int(MateScore - s)
	case s < -MateThreshold:
		return -int(MateScore + s)
	}
	return 0
}

// FormatScore renders s as a UCI score: "cp N" or "mate N" in full moves.
func FormatScore(s int32) string {
	if IsMateScore(s) {
		if p := MatePlies(s); p > 0 {
			return fmt.Sprintf("mate %d", (p+1)/2)
		} else {
			return fmt.Sprintf("mate %d", -((1-p)/2))
		}
	}
	return fmt.Sprintf("cp %d", s)
}
