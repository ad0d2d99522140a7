package game

// DiscDifference is the disc-count advantage of perspective over its opponent.
// Signed: a player behind on discs gets a negative score.
func DiscDifference(state *GameState, perspective Color) int {
	diff := state.Board.Count(Black) - state.Board.Count(White)
	if perspective == White {
		return -diff
	}
	return diff
}

// DiscRatio normalizes the disc difference to a score between -100 and 100,
// which keeps scores comparable across game phases.
func DiscRatio(state *GameState, perspective Color) int {
	mine := state.Board.Count(perspective)
	theirs := state.Board.Count(perspective.Opponent())
	return normalize(mine, theirs)
}

// normalize normalizes value relative to otherValue to a score between -100 and 100
func normalize(value, otherValue int) int {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return 100 * (value - otherValue) / total
}
