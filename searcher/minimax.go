package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(m *Minimax)

// Minimax is a fixed-depth, full-width search over copied states. A Minimax
// must not run two searches at once; parallelism is configured per search
// with WithGoroutines.
type Minimax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	minimize   bool
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines evaluates the root moves concurrently. The chosen move is
// the same as with a sequential search.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithMinimizingOpponent makes plies of the opponent pick their lowest score
// instead of the searching side's highest.
func WithMinimizingOpponent() Option {
	return func(m *Minimax) {
		m.minimize = true
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      Horizon,
		goroutines: 1,
		evaluate:   game.DiscDifference,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// SelectMoveIndex returns the index into state.LegalMoves() to play for the
// side to move.
func (m *Minimax) SelectMoveIndex(state *game.GameState) int {
	index, _ := m.Search(state)
	return index
}

// Search runs a full search for the side to move and reports its metrics.
func (m *Minimax) Search(state *game.GameState) (int, metrics.SearchMetric) {
	m.metrics.Start(m.depth, m.goroutines)
	index, score := m.BestMove(state, state.Player(), 0)
	m.metrics.SetScore(score)
	metric := m.metrics.Complete()

	log.Debug().
		Str("player", state.Player().String()).
		Int("moves", len(state.LegalMoves())).
		Int("index", index).
		Int("score", score).
		Int("nodes", metric.Nodes).
		Msg("search complete")

	return index, metric
}

// Evaluate scores state for perspective. At the horizon, or once the game is
// over, the evaluation function decides; otherwise the best reply does.
func (m *Minimax) Evaluate(state *game.GameState, perspective game.Color, depth int) int {
	m.metrics.AddNode()
	if depth >= m.depth || state.IsTerminal() {
		m.metrics.AddLeaf()
		return m.evaluate(state, perspective)
	}
	_, score := m.BestMove(state, perspective, depth)
	return score
}

// BestMove returns the index and score of the best legal move at depth. Ties
// keep the earliest move; a state without moves returns index 0 and its static
// score.
func (m *Minimax) BestMove(state *game.GameState, perspective game.Color, depth int) (int, int) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, m.evaluate(state, perspective)
	}

	var scores []int
	if depth == 0 && m.goroutines > 1 {
		scores = m.scoreParallel(state, perspective, depth)
	} else {
		scores = m.scoreSequential(state, perspective, depth)
	}

	minimize := m.minimize && state.Player() != perspective
	bestIndex, bestScore := 0, worst
	if minimize {
		bestScore = best
	}
	for i, score := range scores {
		if (!minimize && score > bestScore) || (minimize && score < bestScore) {
			bestIndex = i
			bestScore = score
		}
	}
	return bestIndex, bestScore
}

func (m *Minimax) scoreSequential(state *game.GameState, perspective game.Color, depth int) []int {
	scores := make([]int, len(state.LegalMoves()))
	for i := range scores {
		scores[i] = m.Evaluate(play(state, i), perspective, depth+1)
	}
	return scores
}

// Each root move is searched on its own copy and writes only its own score.
func (m *Minimax) scoreParallel(state *game.GameState, perspective game.Color, depth int) []int {
	scores := make([]int, len(state.LegalMoves()))

	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for i := range scores {
		i := i
		g.Go(func() error {
			scores[i] = m.Evaluate(play(state, i), perspective, depth+1)
			return nil
		})
	}
	_ = g.Wait()

	return scores
}

func play(state *game.GameState, index int) *game.GameState {
	child := state.Copy()
	if err := child.Play(index); err != nil {
		panic(err) // Index comes from the state's own move list
	}
	return child
}
