package main

import (
	"errors"
	"fmt"
	"os"

	"reversi/cli"
	"reversi/config"
	"reversi/experiments"
	"reversi/meta"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	settings   = config.NewViper()
	experiment string

	rootCmd = &cobra.Command{
		Use:           "reversi",
		Short:         "Play reversi against a minimax opponent or a second player",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := settings.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(settings)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(cfg.LogLevel)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			return nil
		},
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game in the terminal",
		RunE:  runPlay,
	}

	selfplayCmd = &cobra.Command{
		Use:   "selfplay",
		Short: "Run agent matchups and store game and move records as CSV",
		RunE:  runSelfplay,
	}
)

func init() {
	rootCmd.PersistentFlags().String(config.KeyLogLevel, meta.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int(config.KeyDepth, meta.Depth, "search depth in plies")
	rootCmd.PersistentFlags().Int(config.KeyGoroutines, meta.Goroutines, "goroutines for the root search")

	playCmd.Flags().Bool(config.KeyTwoPlayer, false, "two human players instead of one against the computer")
	playCmd.Flags().String(config.KeyColor, "black", "color of the human player in one-player mode (black or white)")
	playCmd.Flags().Bool(config.KeyMinimize, false, "let the computer assume a minimizing opponent")

	selfplayCmd.Flags().Int(config.KeyGames, meta.Games, "games per matchup")
	selfplayCmd.Flags().String(config.KeyOutDir, meta.OutDir, "directory for experiment records")
	selfplayCmd.Flags().Uint64(config.KeySeed, 1, "seed for random agents")
	selfplayCmd.Flags().StringVar(&experiment, "experiment", "depth", "experiment to run (depth or parallelization)")

	rootCmd.AddCommand(playCmd, selfplayCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(settings)
	if err != nil {
		return err
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		EOFPrompt:       "quit",
		InterruptPrompt: "^C",
	})
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer l.Close()

	_, err = cli.Play(cfg, l, l.Stdout())
	if errors.Is(err, cli.ErrQuit) {
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("game aborted")
	}
	return err
}

func runSelfplay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(settings)
	if err != nil {
		return err
	}
	opts := experiments.Options{
		Games:      cfg.Games,
		OutDir:     cfg.OutDir,
		Seed:       cfg.Seed,
		Depth:      cfg.Depth,
		Goroutines: cfg.Goroutines,
	}

	var summary experiments.Summary
	switch experiment {
	case "depth":
		summary, err = experiments.RunDepthExperiment(opts)
	case "parallelization":
		summary, err = experiments.RunParallelizationExperiment(opts)
	default:
		return fmt.Errorf("%w: unknown experiment %q", config.ErrInvalidConfig, experiment)
	}
	if err != nil {
		log.Error().Err(err).Msg("experiment failed")
		return err
	}

	fmt.Printf("records written to %s\n", summary.Dir)
	for _, s := range summary.Agents {
		fmt.Printf("agent %d: %d games, %d wins, %d losses, %d ties, %.1f nodes/move, %s/move\n",
			s.ID, s.Games, s.Wins, s.Losses, s.Ties, s.MeanNodes, s.MeanMoveTime)
	}
	return nil
}
