package searcher

import (
	"testing"

	"reversi/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// Row 0: B W _  (playing (2,0) flips one)
// Row 2: B W W _  (playing (3,2) flips two)
func twoChoiceBoard() game.Board {
	return game.Board{
		Black: 1<<0 | 1<<16,
		White: 1<<1 | 1<<17 | 1<<18,
	}
}

// reference is a direct transcription of the search rules used to check the
// optimized paths.
func reference(state *game.GameState, perspective game.Color, depth, horizon int, minimize bool) int {
	if depth >= horizon || state.IsTerminal() {
		return game.DiscDifference(state, perspective)
	}
	opponent := minimize && state.Player() != perspective
	result := 0
	for i := range state.LegalMoves() {
		child := state.Copy()
		if err := child.Play(i); err != nil {
			panic(err)
		}
		score := reference(child, perspective, depth+1, horizon, minimize)
		if i == 0 || (!opponent && score > result) || (opponent && score < result) {
			result = score
		}
	}
	return result
}

func randomPositions(t *testing.T, seed uint64, count int) []*game.GameState {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	states := []*game.GameState{game.NewGameState()}
	for len(states) < count {
		gs := game.NewGameState()
		plies := 4 + r.Intn(40)
		for i := 0; i < plies && !gs.IsTerminal(); i++ {
			require.NoError(t, gs.Play(r.Intn(len(gs.LegalMoves()))))
		}
		if !gs.IsTerminal() {
			states = append(states, gs)
		}
	}
	return states
}

func TestMinimaxEvaluate(t *testing.T) {
	t.Run("horizon returns signed disc difference", func(t *testing.T) {
		// One black disc against three white ones, black to move
		gs := game.NewGameStateFrom(game.Board{Black: 1, White: 1<<7 | 1<<56 | 1<<63}, true)
		m := NewMinimax()

		got := m.Evaluate(gs, game.Black, Horizon)

		require.Equal(t, -2, got, "Being behind should be a negative score, not a wrapped one")
		require.Equal(t, 2, m.Evaluate(gs, game.White, Horizon))
	})

	t.Run("terminal state before the horizon is scored statically", func(t *testing.T) {
		gs := game.NewGameStateFrom(game.Board{Black: 1, White: 1<<7 | 1<<56 | 1<<63}, true)
		m := NewMinimax()

		require.Equal(t, -2, m.Evaluate(gs, game.Black, 0))
	})

	t.Run("below the horizon defers to the best move", func(t *testing.T) {
		gs := game.NewGameStateFrom(twoChoiceBoard(), true)
		m := NewMinimax(WithDepth(1))

		require.Equal(t, 4, m.Evaluate(gs, game.Black, 0))
	})
}

func TestMinimaxBestMove(t *testing.T) {
	t.Run("picks the larger capture at depth one", func(t *testing.T) {
		gs := game.NewGameStateFrom(twoChoiceBoard(), true)
		require.Len(t, gs.LegalMoves(), 2)
		require.Equal(t, game.Square{X: 2, Y: 0}, gs.LegalMoves()[0].Square())
		require.Equal(t, game.Square{X: 3, Y: 2}, gs.LegalMoves()[1].Square())

		index, score := NewMinimax(WithDepth(1)).BestMove(gs, game.Black, 0)

		require.Equal(t, 1, index, "Move flipping two discs should win")
		require.Equal(t, 4, score, "Five black discs against one white")
	})

	t.Run("ties keep the earliest move", func(t *testing.T) {
		// The opening is symmetric, so every move scores the same
		gs := game.NewGameState()

		index, _ := NewMinimax().BestMove(gs, game.Black, 0)

		require.Equal(t, 0, index)
	})

	t.Run("no legal moves returns index zero", func(t *testing.T) {
		gs := game.NewGameStateFrom(game.Board{Black: 1, White: 1 << 63}, true)

		index, score := NewMinimax().BestMove(gs, game.Black, 0)

		require.Equal(t, 0, index)
		require.Equal(t, 0, score)
	})

	t.Run("matches the reference search", func(t *testing.T) {
		for _, minimize := range []bool{false, true} {
			options := []Option{WithDepth(3)}
			if minimize {
				options = append(options, WithMinimizingOpponent())
			}
			m := NewMinimax(options...)
			for _, gs := range randomPositions(t, 11, 12) {
				_, score := m.BestMove(gs, gs.Player(), 0)
				require.Equal(t, reference(gs, gs.Player(), 0, 3, minimize), score,
					"Score should match the reference (minimize=%v)", minimize)
			}
		}
	})
}

func TestMinimaxSelectMoveIndex(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		m := NewMinimax()
		for _, gs := range randomPositions(t, 3, 8) {
			first := m.SelectMoveIndex(gs)
			second := m.SelectMoveIndex(gs.Copy())
			require.Equal(t, first, second, "Identical states should select the same move")
			require.Less(t, first, len(gs.LegalMoves()))
		}
	})

	t.Run("parallel search agrees with sequential search", func(t *testing.T) {
		sequential := NewMinimax()
		parallel := NewMinimax(WithGoroutines(4))
		for _, gs := range randomPositions(t, 5, 8) {
			i1, m1 := sequential.Search(gs)
			i2, m2 := parallel.Search(gs)
			require.Equal(t, i1, i2)
			require.Equal(t, m1, m2, "No metrics are collected by default")
		}
	})

	t.Run("does not mutate the searched state", func(t *testing.T) {
		gs := game.NewGameState()
		before := gs.Copy()

		NewMinimax(WithGoroutines(2)).SelectMoveIndex(gs)

		require.Equal(t, before, gs)
	})

	t.Run("custom evaluation function", func(t *testing.T) {
		// Preferring fewer discs turns the two-choice position around
		fewer := func(state *game.GameState, perspective game.Color) int {
			return -game.DiscDifference(state, perspective)
		}
		gs := game.NewGameStateFrom(twoChoiceBoard(), true)

		index := NewMinimax(WithDepth(1), WithEvaluationFn(fewer)).SelectMoveIndex(gs)

		require.Equal(t, 0, index)
	})

	t.Run("collects metrics", func(t *testing.T) {
		m := NewMinimax(WithMetrics(), WithGoroutines(2))

		_, metric := m.Search(game.NewGameState())

		require.Equal(t, Horizon, metric.Depth)
		require.Equal(t, 2, metric.Goroutines)
		require.Greater(t, metric.Nodes, metric.Leaves)
		require.Positive(t, metric.Leaves)
	})
}

func TestNewMinimaxOptions(t *testing.T) {
	m := NewMinimax(WithDepth(0), WithGoroutines(-1), WithEvaluationFn(nil))

	require.Equal(t, Horizon, m.Depth(), "Invalid depth should keep the default")
	require.Equal(t, 1, m.goroutines)
	require.NotNil(t, m.evaluate)
	require.Equal(t, 6, NewMinimax(WithDepth(6)).Depth())
}
