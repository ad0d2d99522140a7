package experiments

import (
	"fmt"
	"time"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

const (
	KindMinimax = "minimax"
	KindRandom  = "random"
)

type Options struct {
	Games      int // Per match up
	OutDir     string
	Seed       uint64
	Depth      int
	Goroutines int
}

type AgentSummary struct {
	ID           int
	Games        int
	Wins         int
	Losses       int
	Ties         int
	MeanNodes    float64
	StdDevNodes  float64
	MeanMoveTime time.Duration
}

type Summary struct {
	Dir    string
	Agents []AgentSummary
}

// RunDepthExperiment pairs minimax agents of depth 1 to opts.Depth against a
// random baseline.
func RunDepthExperiment(opts Options) (Summary, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom, Seed: opts.Seed}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 1; depth <= opts.Depth; depth++ {
		config := metrics.AgentConfig{ID: depth, Kind: KindMinimax, Depth: depth, Goroutines: opts.Goroutines}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	return runExperiment("depth", configs, matchUps, opts)
}

// RunParallelizationExperiment plays minimax agents that differ only in their
// goroutine count against each other. Their choices are identical, so only
// move times should differ.
func RunParallelizationExperiment(opts Options) (Summary, error) {
	configs := []metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 4, 8} {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Kind: KindMinimax, Depth: opts.Depth, Goroutines: goroutines})
	}
	sequential := configs[0]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{sequential, config})
	}

	return runExperiment("parallelization", configs, matchUps, opts)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, opts Options) (Summary, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < opts.Games; i++ {
			// Alternate colors so neither agent always moves first
			black, white := matchup[0], matchup[1]
			if i%2 == 1 {
				black, white = white, black
			}
			count++

			outcome, gameMetric, moveMetrics, err := runGame(black, white, opts.Seed+uint64(count))
			if err != nil {
				return Summary{}, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, outcome)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(opts.OutDir, name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return Summary{}, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Summary{}, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return Summary{}, err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	summary := Summary{Dir: writer.Dir()}
	for _, config := range configs {
		s := summarize(config.ID, gameRecords, moveRecords)
		log.Info().Msgf("agent %d (%s depth=%d goroutines=%d): %d games, %d wins, %d losses, %d ties, %.1f±%.1f nodes/move, %s/move",
			config.ID, config.Kind, config.Depth, config.Goroutines, s.Games, s.Wins, s.Losses, s.Ties, s.MeanNodes, s.StdDevNodes, s.MeanMoveTime)
		summary.Agents = append(summary.Agents, s)
	}
	return summary, nil
}

func summarize(id int, games []metrics.GameRecord, moves []metrics.MoveRecord) AgentSummary {
	s := AgentSummary{ID: id}
	colorByGame := map[int]string{}
	for _, g := range games {
		var color string
		switch id {
		case g.Black:
			color = game.Black.String()
		case g.White:
			color = game.White.String()
		default:
			continue
		}
		colorByGame[g.ID] = color
		s.Games++
		switch g.Winner {
		case color:
			s.Wins++
		case game.Tie.String():
			s.Ties++
		default:
			s.Losses++
		}
	}

	own := lo.Filter(moves, func(m metrics.MoveRecord, _ int) bool {
		color, ok := colorByGame[m.Game]
		return ok && color == m.Player
	})
	if len(own) == 0 {
		return s
	}
	nodes := lo.Map(own, func(m metrics.MoveRecord, _ int) float64 { return float64(m.Nodes) })
	durations := lo.Map(own, func(m metrics.MoveRecord, _ int) float64 { return float64(m.Duration) })
	s.MeanNodes, s.StdDevNodes = stat.MeanStdDev(nodes, nil)
	s.MeanMoveTime = time.Duration(stat.Mean(durations, nil))
	return s
}

// runGame executes a single game between two agents and returns the outcome
func runGame(black, white metrics.AgentConfig, seed uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.LocalEngine(map[game.Color]agent.Agent{
		game.Black: createAgent(black, seed),
		game.White: createAgent(white, seed+1),
	})
	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Kind == KindRandom {
		return agent.NewRandomAgent(config.Seed + seed)
	}

	options := []searcher.Option{}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	options = append(options, searcher.WithMetrics())
	return agent.NewMinimaxAgent(searcher.NewMinimax(options...))
}
