package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

type Agent interface {
	// FindMove returns an index into state.LegalMoves() and search metrics (if collected)
	FindMove(state *game.GameState) (int, metrics.SearchMetric, error)
}
