package agent

import (
	"errors"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

var ErrNoMoves = errors.New("no legal moves")

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the minimax search's choice.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(state *game.GameState) (int, metrics.SearchMetric, error) {
	if state.IsTerminal() {
		return 0, metrics.SearchMetric{}, ErrNoMoves
	}
	index, metric := a.minimax.Search(state)
	return index, metric, nil
}
