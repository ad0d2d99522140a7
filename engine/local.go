package engine

import (
	"errors"
	"fmt"
	"time"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State   *game.GameState
	Agents  map[game.Color]agent.Agent
	updates []Update
	observe Observer
}

type Update struct {
	Player game.Color
	Move   game.Move
	Hash   game.StateHash
}

// Observer is told about every move after it has been applied.
type Observer func(update Update, state *game.GameState)

type Option func(e *Engine)

func WithObserver(observe Observer) Option {
	return func(e *Engine) {
		if observe != nil {
			e.observe = observe
		}
	}
}

// WithState starts the game from state instead of the opening position.
func WithState(state *game.GameState) Option {
	return func(e *Engine) {
		if state != nil {
			e.State = state.Copy()
		}
	}
}

func LocalEngine(agents map[game.Color]agent.Agent, options ...Option) *Engine {
	if agents[game.Black] == nil || agents[game.White] == nil {
		panic("need an agent for black and for white")
	}

	eng := &Engine{
		State:   game.NewGameState(),
		Agents:  agents,
		observe: func(Update, *game.GameState) {},
	}
	for _, option := range options {
		option(eng)
	}
	return eng
}

// Updates returns the moves played so far.
func (e *Engine) Updates() []Update {
	return e.updates
}

// Run executes the entire game loop until the side to move has no legal moves.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.State.Player())

	step := 1
	rejections := 0
	for !e.State.IsTerminal() {
		player := e.State.Player()

		index, searchMetric, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			return game.Tie, gameMetric, moveMetrics, fmt.Errorf("%s agent failed: %w", player, err)
		}

		moves := e.State.LegalMoves()
		if err := e.State.Play(index); err != nil {
			if !errors.Is(err, game.ErrInvalidMove) {
				return game.Tie, gameMetric, moveMetrics, err
			}
			rejections++
			log.Warn().Err(err).Msgf("rejected move from %s", player)
			if rejections >= MaxRejections {
				return game.Tie, gameMetric, moveMetrics, fmt.Errorf("%s agent made %d invalid moves: %w", player, rejections, err)
			}
			continue
		}
		rejections = 0
		move := moves[index]

		log.Info().Msgf("%s plays %s (move %d of %d)", player, move, index+1, len(moves))

		u := Update{
			Player: player,
			Move:   move,
			Hash:   e.State.Hash(),
		}
		e.updates = append(e.updates, u)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		e.observe(u, e.State)
		step++
	}

	outcome := e.State.Winner()
	gameMetric.Winner = outcome.String()
	gameMetric.BlackDiscs = e.State.DiscCount(game.Black)
	gameMetric.WhiteDiscs = e.State.DiscCount(game.White)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.updates)

	log.Info().Msgf("game over after %d moves: %d-%d, winner: %s", gameMetric.TotalMoves, gameMetric.BlackDiscs, gameMetric.WhiteDiscs, outcome)

	return outcome, gameMetric, moveMetrics, nil
}

var _ Runner = (*Engine)(nil)
