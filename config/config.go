package config

import (
	"errors"
	"fmt"
	"strings"

	"reversi/game"
	"reversi/meta"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Setting keys, also used as flag names
const (
	KeyTwoPlayer  = "two-player"
	KeyColor      = "color"
	KeyDepth      = "depth"
	KeyGoroutines = "goroutines"
	KeyMinimize   = "minimize"
	KeySeed       = "seed"
	KeyLogLevel   = "log-level"
	KeyGames      = "games"
	KeyOutDir     = "out"
)

type Config struct {
	TwoPlayer  bool
	HumanColor game.Color
	Depth      int
	Goroutines int
	Minimize   bool
	Seed       uint64
	LogLevel   zerolog.Level
	Games      int
	OutDir     string
}

// NewViper returns a viper instance with defaults and REVERSI_* environment overrides.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyTwoPlayer, false)
	v.SetDefault(KeyColor, "black")
	v.SetDefault(KeyDepth, meta.Depth)
	v.SetDefault(KeyGoroutines, meta.Goroutines)
	v.SetDefault(KeyMinimize, false)
	v.SetDefault(KeySeed, 1)
	v.SetDefault(KeyLogLevel, meta.LogLevel)
	v.SetDefault(KeyGames, meta.Games)
	v.SetDefault(KeyOutDir, meta.OutDir)

	v.SetEnvPrefix(meta.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		TwoPlayer:  v.GetBool(KeyTwoPlayer),
		Depth:      v.GetInt(KeyDepth),
		Goroutines: v.GetInt(KeyGoroutines),
		Minimize:   v.GetBool(KeyMinimize),
		Seed:       v.GetUint64(KeySeed),
		Games:      v.GetInt(KeyGames),
		OutDir:     v.GetString(KeyOutDir),
	}

	switch strings.ToLower(v.GetString(KeyColor)) {
	case "black", "b":
		cfg.HumanColor = game.Black
	case "white", "w":
		cfg.HumanColor = game.White
	default:
		return Config{}, fmt.Errorf("%w: color must be black or white, got %q", ErrInvalidConfig, v.GetString(KeyColor))
	}

	level, err := zerolog.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.LogLevel = level

	if cfg.Depth < 1 {
		return Config{}, fmt.Errorf("%w: depth must be at least 1, got %d", ErrInvalidConfig, cfg.Depth)
	}
	if cfg.Goroutines < 1 {
		return Config{}, fmt.Errorf("%w: goroutines must be at least 1, got %d", ErrInvalidConfig, cfg.Goroutines)
	}
	if cfg.Games < 1 {
		return Config{}, fmt.Errorf("%w: games must be at least 1, got %d", ErrInvalidConfig, cfg.Games)
	}
	return cfg, nil
}
