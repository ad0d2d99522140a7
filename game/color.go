package game

type Color uint8

const (
	Empty Color = iota
	Black
	White
)

func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// Outcome of a finished game, decided by disc count
type Outcome uint8

const (
	Tie Outcome = iota
	BlackWins
	WhiteWins
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "Black"
	case WhiteWins:
		return "White"
	}
	return "Tie"
}

// Winner returns the winning color, or Empty on a tie.
func (o Outcome) Winner() Color {
	switch o {
	case BlackWins:
		return Black
	case WhiteWins:
		return White
	}
	return Empty
}
