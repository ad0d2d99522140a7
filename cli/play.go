package cli

import (
	"fmt"
	"io"

	"reversi/config"
	"reversi/engine"
	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"
)

// Agents seats the players: two humans, or one human and the minimax agent.
func Agents(cfg config.Config, in LineReader, out io.Writer) map[game.Color]agent.Agent {
	human := NewHumanAgent(in, out)
	if cfg.TwoPlayer {
		return map[game.Color]agent.Agent{game.Black: human, game.White: human}
	}

	options := []searcher.Option{
		searcher.WithDepth(cfg.Depth),
		searcher.WithGoroutines(cfg.Goroutines),
	}
	if cfg.Minimize {
		options = append(options, searcher.WithMinimizingOpponent())
	}
	return map[game.Color]agent.Agent{
		cfg.HumanColor:            human,
		cfg.HumanColor.Opponent(): agent.NewMinimaxAgent(searcher.NewMinimax(options...)),
	}
}

// Play runs an interactive game and renders the final position.
func Play(cfg config.Config, in LineReader, out io.Writer) (game.Outcome, error) {
	io.WriteString(out, "Type `help` for help\n")

	observe := func(u engine.Update, state *game.GameState) {
		if !cfg.TwoPlayer && u.Player != cfg.HumanColor {
			fmt.Fprintf(out, "%s plays %s\n", u.Player, u.Move)
		}
	}
	e := engine.LocalEngine(Agents(cfg, in, out), engine.WithObserver(observe))

	outcome, _, _, err := e.Run()
	if err != nil {
		return outcome, err
	}
	Render(out, e.State)
	return outcome, nil
}
