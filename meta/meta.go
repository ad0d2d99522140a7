// meta/meta.go
package meta

// Goroutines defines the default number of goroutines for the root search.
const Goroutines = 1

// Depth defines the default search horizon in plies.
const Depth = 4

// Games defines the default number of games per experiment matchup.
const Games = 10

// OutDir defines where experiment records are written.
const OutDir = "experiments"

const LogLevel = "warn"

// EnvPrefix prefixes environment overrides, e.g. REVERSI_DEPTH.
const EnvPrefix = "REVERSI"
