package searcher

import "math"

// Horizon is the default search depth in plies
const Horizon = 4

// Initial best score; any real score improves on it
const (
	worst = math.MinInt
	best  = math.MaxInt
)
