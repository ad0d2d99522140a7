package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// Consecutive invalid indices tolerated from one agent before the game is abandoned
const MaxRejections = 10

type Runner interface {
	// Run plays a game till the side to move has no legal moves
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
