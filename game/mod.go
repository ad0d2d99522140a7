package game

const (
	BoardSize = 8
	NumCells  = BoardSize * BoardSize

	// Most legal moves an 8x8 position can offer at once
	MaxMoves = NumCells - 4
)

type StateHash uint64

// Evaluates the state to an integer score from the perspective player's
// point of view: positive is favorable, negative unfavorable.
type Evaluate func(state *GameState, perspective Color) int
