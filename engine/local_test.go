package engine

import (
	"errors"
	"testing"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"

	"github.com/stretchr/testify/require"
)

// scriptedAgent returns its indices in order, then always the last one
type scriptedAgent struct {
	indices []int
	err     error
	calls   int
}

func (a *scriptedAgent) FindMove(state *game.GameState) (int, metrics.SearchMetric, error) {
	a.calls++
	if a.err != nil {
		return 0, metrics.SearchMetric{}, a.err
	}
	index := a.indices[len(a.indices)-1]
	if a.calls <= len(a.indices) {
		index = a.indices[a.calls-1]
	}
	return index, metrics.SearchMetric{}, nil
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without both agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(map[game.Color]agent.Agent{game.Black: agent.NewRandomAgent(1)})
		})
	})

	t.Run("plays a full game", func(t *testing.T) {
		var observed []Update
		e := LocalEngine(map[game.Color]agent.Agent{
			game.Black: agent.NewRandomAgent(1),
			game.White: agent.NewRandomAgent(2),
		}, WithObserver(func(u Update, state *game.GameState) {
			observed = append(observed, u)
			require.Equal(t, u.Hash, state.Hash())
		}))

		outcome, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.True(t, e.State.IsTerminal(), "Game should run till no legal moves remain")
		require.Equal(t, e.State.Winner(), outcome)
		require.Equal(t, outcome.String(), gameMetric.Winner)
		require.Equal(t, "Black", gameMetric.StartingPlayer)
		require.Equal(t, e.State.DiscCount(game.Black), gameMetric.BlackDiscs)
		require.Equal(t, e.State.DiscCount(game.White), gameMetric.WhiteDiscs)
		require.Equal(t, gameMetric.BlackDiscs+gameMetric.WhiteDiscs, 4+gameMetric.TotalMoves)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, e.Updates(), observed)
		require.Equal(t, game.Black, observed[0].Player)
		require.Equal(t, 1, moveMetrics[0].Step)
		require.Equal(t, observed[0].Move.String(), moveMetrics[0].Move)
	})

	t.Run("minimax against random records search metrics", func(t *testing.T) {
		e := LocalEngine(map[game.Color]agent.Agent{
			game.Black: agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(2), searcher.WithMetrics())),
			game.White: agent.NewRandomAgent(3),
		})

		_, _, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, "Black", moveMetrics[0].Player)
		require.Equal(t, 2, moveMetrics[0].Depth)
		require.Positive(t, moveMetrics[0].Nodes)
		require.Zero(t, moveMetrics[1].Nodes, "Random agent does not search")
	})

	t.Run("invalid index is retried", func(t *testing.T) {
		black := &scriptedAgent{indices: []int{7, 0}}
		e := LocalEngine(map[game.Color]agent.Agent{
			game.Black: black,
			game.White: agent.NewRandomAgent(1),
		})

		_, _, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Square{X: 4, Y: 2}, e.Updates()[0].Move.Square(), "Second answer should be played")
	})

	t.Run("gives up after repeated invalid indices", func(t *testing.T) {
		black := &scriptedAgent{indices: []int{-1}}
		e := LocalEngine(map[game.Color]agent.Agent{
			game.Black: black,
			game.White: agent.NewRandomAgent(1),
		})

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.Equal(t, MaxRejections, black.calls)
		require.Equal(t, game.NewGameState().Board, e.State.Board, "Rejected moves leave the state unchanged")
	})

	t.Run("agent error ends the game", func(t *testing.T) {
		quit := errors.New("quit")
		e := LocalEngine(map[game.Color]agent.Agent{
			game.Black: &scriptedAgent{err: quit},
			game.White: agent.NewRandomAgent(1),
		})

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, quit)
	})

	t.Run("starting from a terminal state", func(t *testing.T) {
		state := game.NewGameStateFrom(game.Board{Black: 0x00000000FFFFFFFF, White: 0xFFFFFFFF00000000}, true)
		e := LocalEngine(map[game.Color]agent.Agent{
			game.Black: &scriptedAgent{err: errors.New("should not be asked")},
			game.White: &scriptedAgent{err: errors.New("should not be asked")},
		}, WithState(state))

		outcome, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Tie, outcome)
		require.Zero(t, gameMetric.TotalMoves)
	})
}
