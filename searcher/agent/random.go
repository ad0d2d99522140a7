package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent picking uniformly among legal moves.
// Equal seeds replay the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (int, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, metrics.SearchMetric{}, ErrNoMoves
	}
	return a.rng.Intn(len(moves)), metrics.SearchMetric{}, nil
}
